package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSpeakersCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var by []string

	cmd := &cobra.Command{
		Use:   "speakers",
		Short: "Break down a stored show by speaker",
		RunE: func(cmd *cobra.Command, args []string) error {
			show, _, err := ctx.openShow(dirFlag)
			if err != nil {
				return err
			}

			lines := show.Lines()
			if len(by) > 0 {
				lines = lines.By(by...)
			}

			out := cmd.OutOrStdout()
			speakers := lines.Speakers()
			if len(speakers) == 0 {
				fmt.Fprintln(out, "No speakers found")
				return nil
			}

			rows := make([][]string, 0, len(speakers))
			for _, speaker := range speakers {
				spoken := lines.By(speaker)
				rows = append(rows, []string{
					speaker,
					strconv.Itoa(spoken.Len()),
					strconv.Itoa(spoken.WordCount()),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Speaker", "Lines", "Words"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Show storage directory (defaults to storage.dir from config)")
	cmd.Flags().StringSliceVar(&by, "by", nil, "Restrict to lines spoken together by these speakers")
	return cmd
}
