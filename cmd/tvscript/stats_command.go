package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize a stored show season by season",
		RunE: func(cmd *cobra.Command, args []string) error {
			show, dir, err := ctx.openShow(dirFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title := cases.Title(language.English).String(filepath.Base(dir))
			fmt.Fprintf(out, "%s (%d seasons)\n", title, show.SeasonCount())

			rows := make([][]string, 0, show.SeasonCount())
			totalEpisodes, totalLines, totalWords := 0, 0, 0
			for _, season := range show.Seasons() {
				lines := season.Lines()
				episodes := len(season.Episodes())
				rows = append(rows, []string{
					season.Name,
					strconv.Itoa(episodes),
					strconv.Itoa(lines.Len()),
					strconv.Itoa(lines.WordCount()),
				})
				totalEpisodes += episodes
				totalLines += lines.Len()
				totalWords += lines.WordCount()
			}
			rows = append(rows, []string{
				"Total",
				strconv.Itoa(totalEpisodes),
				strconv.Itoa(totalLines),
				strconv.Itoa(totalWords),
			})

			fmt.Fprintln(out, renderTable(
				[]string{"Season", "Episodes", "Lines", "Words"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Show storage directory (defaults to storage.dir from config)")
	return cmd
}
