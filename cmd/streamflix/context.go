package main

import (
	"strings"
	"sync"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/config"
	"github.com/Waddenn/streamflix/internal/logging"
)

type commandContext struct {
	configFlag   *string
	apiURLFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger *logging.Logger
}

func newCommandContext(configFlag, apiURLFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		apiURLFlag:   apiURLFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig loads the config once. Flags override file and environment.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(*c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if v := strings.TrimSpace(*c.apiURLFlag); v != "" {
			cfg.API.BaseURL = strings.TrimRight(v, "/")
		}
		if v := strings.TrimSpace(*c.logLevelFlag); v != "" {
			cfg.Logging.Level = v
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger opens the log file described by the config.
func (c *commandContext) ensureLogger() (*logging.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	dir := cfg.Logging.Path
	if dir == "" {
		if dir, err = config.CacheDir(); err != nil {
			dir = ""
		}
	}
	c.logger = logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Dir:    dir,
	})
	return c.logger, nil
}

func (c *commandContext) client() (*catalog.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return catalog.NewClient(cfg.API, logger.Logger), nil
}

func (c *commandContext) close() {
	if c.logger != nil {
		_ = c.logger.Close()
	}
}
