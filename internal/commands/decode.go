package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/AKJUS/solana-vrf/internal/commands/middleware"
	"github.com/AKJUS/solana-vrf/internal/output"
	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func decodeAction(c *cli.Context) error {
	cfg := middleware.GetConfig(c)
	log := middleware.GetLogger(c)

	encoding := cfg.Encoding
	if c.IsSet("encoding") {
		encoding = programLog.Encoding(c.String("encoding"))
	}

	payloads := c.Args().Slice()
	if len(payloads) == 0 || (len(payloads) == 1 && payloads[0] == "-") {
		var err error
		if payloads, err = readPayloadLines(c); err != nil {
			return err
		}
	}

	var decoded []*programLog.DecodedEvent
	failed := 0
	for i, payload := range payloads {
		payload = strings.TrimPrefix(strings.TrimSpace(payload), "Program data: ")

		raw, err := programLog.DecodePayload(payload, encoding)
		if err != nil {
			log.Error("Failed to decode payload", zap.Int("index", i), zap.Error(err))
			failed++
			continue
		}

		ev, err := events.TryFromBytes(raw)
		if err != nil {
			log.Error("Failed to decode event", zap.Int("index", i), zap.Error(err))
			failed++
			continue
		}
		log.Debug("Decoded event", zap.Int("index", i), zap.String("kind", string(ev.Kind())))
		decoded = append(decoded, &programLog.DecodedEvent{LogIndex: i, Kind: ev.Kind(), Event: ev})
	}

	if err := output.NewFormatter(cfg.Output, c.App.Writer).PrintEvents(decoded); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d payloads could not be decoded", failed, len(payloads))
	}
	return nil
}

func readPayloadLines(c *cli.Context) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(c.App.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payloads: %w", err)
	}
	return lines, nil
}
