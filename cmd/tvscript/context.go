package main

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"tvscript/internal/config"
	"tvscript/internal/logging"
	"tvscript/internal/pagecache"
	"tvscript/internal/transcript"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// openShow hydrates a show from persisted transcripts. The storage
// directory comes from dirFlag when set, otherwise from configuration.
func (c *commandContext) openShow(dirFlag string) (*transcript.Show, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}

	dir := cfg.Storage.Dir
	if trimmed := strings.TrimSpace(dirFlag); trimmed != "" {
		if dir, err = config.ExpandPath(trimmed); err != nil {
			return nil, "", err
		}
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, "", err
	}

	show := transcript.NewShow(transcript.Options{
		StorageDir: dir,
		Logger:     logger,
	})
	if err := show.Hydrate(); err != nil {
		return nil, "", err
	}
	return show, dir, nil
}

func (c *commandContext) pageCache() (*pagecache.Cache, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	return pagecache.New(cfg.Cache.Dir, ttl, nil, logging.NewNop()), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
