package main

import (
	"strings"
	"sync"

	"log/slog"

	"github.com/spf13/cobra"

	"steamclip/internal/config"
	"steamclip/internal/journal"
	"steamclip/internal/logging"
	"steamclip/internal/services"
	"steamclip/internal/steam"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "Invalid configuration", err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "ensure directories", "Failed to create required directories", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// buildLogger constructs the process logger once: configured format, stderr
// plus the shared log file, optional --log-level override.
func (c *commandContext) buildLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}

		var levelOverride string
		if c.logLevelFlag != nil {
			levelOverride = strings.TrimSpace(*c.logLevelFlag)
		}

		logger, err := logging.NewFromConfig(cfg, levelOverride)
		if err != nil {
			c.loggerErr = services.Wrap(services.ErrValidation, "logging", "configure", "Invalid logging configuration", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) steamResolver(cfg *config.Config) *steam.Resolver {
	return steam.NewResolver(steam.WithExtraCandidates(cfg.Steam.ExtraRoots...))
}

// openJournal returns nil when journaling is disabled or the database cannot
// be opened; export runs proceed without history in that case.
func (c *commandContext) openJournal(cfg *config.Config, logger *slog.Logger) *journal.Store {
	if !cfg.Journal.Enabled {
		return nil
	}
	store, err := journal.Open(cfg)
	if err != nil {
		logger.Warn("journal unavailable, continuing without it", logging.Error(err))
		return nil
	}
	return store
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
