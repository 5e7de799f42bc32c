package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/AKJUS/solana-vrf/internal/commands/middleware"
	"github.com/AKJUS/solana-vrf/internal/config"
	"github.com/AKJUS/solana-vrf/internal/output"
	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func logsAction(c *cli.Context) error {
	cfg := middleware.GetConfig(c)
	log := middleware.GetLogger(c)

	programId, err := resolveProgramId(c, cfg)
	if err != nil {
		return err
	}

	var input io.Reader = c.App.Reader
	if path := c.String("input"); path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		input = file
	}

	logs, err := programLog.ReadLogMessages(input)
	if err != nil {
		return err
	}
	log.Debug("Read log messages", zap.Int("count", len(logs)), zap.String("programId", programId))

	parsed := programLog.NewParser(programId, log.Zap()).ParseLogs(logs)

	if err := output.NewFormatter(cfg.Output, c.App.Writer).PrintEvents(parsed.Events); err != nil {
		return err
	}
	if len(parsed.Failures) > 0 && c.Bool("strict") {
		return fmt.Errorf("%d data records could not be decoded, first at log line %d: %w",
			len(parsed.Failures), parsed.Failures[0].LogIndex, parsed.Failures[0].Err)
	}
	return nil
}

// resolveProgramId prefers the --program-id flag over the configured program.
func resolveProgramId(c *cli.Context, cfg *config.Config) (string, error) {
	programId := cfg.ProgramId
	if c.IsSet("program-id") {
		programId = c.String("program-id")
	}
	if programId == "" {
		return "", nil
	}
	if _, err := events.PubkeyFromBase58(programId); err != nil {
		return "", fmt.Errorf("invalid program id: %w", err)
	}
	return programId, nil
}
