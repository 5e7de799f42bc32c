package commands

import (
	"fmt"

	"github.com/AKJUS/solana-vrf/internal/commands/middleware"
	"github.com/AKJUS/solana-vrf/internal/config"
	"github.com/AKJUS/solana-vrf/internal/output"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func configShowAction(c *cli.Context) error {
	cfg := middleware.GetConfig(c)
	return output.NewFormatter(cfg.Output, c.App.Writer).Print(cfg.ToMap())
}

func configSetAction(c *cli.Context) error {
	log := middleware.GetLogger(c)

	// Start from the file so global flag overrides are not persisted. The
	// file is validated on save, after the new values are applied.
	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}

	changed := false
	if c.IsSet("program-id") {
		cfg.ProgramId = c.String("program-id")
		changed = true
	}
	if c.IsSet("default-output") {
		cfg.Output = c.String("default-output")
		changed = true
	}
	if c.IsSet("encoding") {
		cfg.Encoding = programLog.Encoding(c.String("encoding"))
		changed = true
	}
	if c.IsSet("default-verbose") {
		cfg.Verbose = c.Bool("default-verbose")
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to set, see 'vrf-events config set --help'")
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	log.Info("Configuration saved", zap.String("path", config.GetConfigPath()))
	return nil
}
