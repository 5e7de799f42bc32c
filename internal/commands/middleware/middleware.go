package middleware

import (
	"context"

	"github.com/AKJUS/solana-vrf/internal/config"
	"github.com/AKJUS/solana-vrf/internal/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// ChainBeforeFuncs chains multiple BeforeFuncs together
func ChainBeforeFuncs(funcs ...cli.BeforeFunc) cli.BeforeFunc {
	return func(c *cli.Context) error {
		for _, fn := range funcs {
			if err := fn(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// StandardMiddlewareChain loads the config first so that its verbose
// setting applies to the logger.
func StandardMiddlewareChain() cli.BeforeFunc {
	return ChainBeforeFuncs(
		ConfigBeforeFunc,
		LoggerBeforeFunc,
	)
}

// ConfigBeforeFunc loads the config file, applies global flag overrides
// and stores the result in the context. An invalid file fails every command
// except `config set`, which runs on defaults so it can repair the file.
func ConfigBeforeFunc(c *cli.Context) error {
	repairing := isConfigSet(c)

	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}
	applyGlobalFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		if !repairing {
			return errors.Wrapf(err, "invalid config '%s'", config.GetConfigPath())
		}
		cfg = config.DefaultConfig()
		applyGlobalFlags(c, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.Context = context.WithValue(c.Context, config.ConfigKey, cfg)
	return nil
}

func applyGlobalFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}
}

func isConfigSet(c *cli.Context) bool {
	return c.Args().Get(0) == "config" && c.Args().Get(1) == "set"
}

// LoggerBeforeFunc initializes the logger and stores it in the context
func LoggerBeforeFunc(c *cli.Context) error {
	l := logger.NewLoggerWithWriter(GetConfig(c).Verbose, c.App.ErrWriter)
	c.Context = logger.WithLogger(c.Context, l)
	return nil
}

// GetConfig retrieves the effective config from the context
func GetConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.Context.Value(config.ConfigKey).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// GetLogger retrieves the logger from the context
func GetLogger(c *cli.Context) logger.Logger {
	return logger.FromContext(c.Context)
}

func ExitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}

	var log logger.Logger
	if c != nil && c.Context != nil {
		log = GetLogger(c)
	} else {
		log = logger.GetLogger()
	}

	if c != nil && c.Command != nil {
		log.Error("Command execution failed",
			zap.String("command", c.Command.Name),
			zap.Error(err))
	} else {
		log.Error("Command execution failed", zap.Error(err))
	}
}
