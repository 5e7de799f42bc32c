package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/AKJUS/solana-vrf/internal/commands/middleware"
	"github.com/AKJUS/solana-vrf/internal/output"
	"github.com/AKJUS/solana-vrf/pkg/logSequencer"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func streamAction(c *cli.Context) error {
	cfg := middleware.GetConfig(c)
	log := middleware.GetLogger(c)

	programId, err := resolveProgramId(c, cfg)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(cfg.Output, c.App.Writer)
	session := programLog.NewSession(programId, log.Zap())
	ls := logSequencer.NewLogSequencer(session, formatter.PrintEvent, log.Zap())
	if c.Bool("strict") {
		ls.WithDecodeErrorFunc(func(line string, err error) error {
			return fmt.Errorf("failed to decode '%s': %w", line, err)
		})
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	readErr := make(chan error, 1)
	go func() {
		readErr <- feedLines(ctx, c, ls.GetChannel())
	}()

	log.Info("Streaming program logs from stdin", zap.String("programId", programId))
	if err := ls.ProcessLogs(ctx); err != nil {
		return err
	}

	// The channel was closed by the reader, collect its result.
	if ctx.Err() == nil {
		return <-readErr
	}
	return nil
}

// feedLines copies stdin lines into the sequencer and closes its channel at EOF.
func feedLines(ctx context.Context, c *cli.Context, ch chan<- string) error {
	defer close(ch)

	scanner := bufio.NewScanner(c.App.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case ch <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read logs: %w", err)
	}
	return nil
}
