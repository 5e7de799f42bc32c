package commands

import (
	"github.com/AKJUS/solana-vrf/internal/commands/middleware"
	"github.com/AKJUS/solana-vrf/internal/config"
	"github.com/AKJUS/solana-vrf/internal/version"
	"github.com/urfave/cli/v2"
)

// VrfEvents builds the vrf-events command line application.
func VrfEvents() *cli.App {
	return &cli.App{
		Name:    "vrf-events",
		Usage:   "Decode and summarize VRF callback program events",
		Version: version.GetFullVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json, yaml or table",
				Value:   config.OutputText,
			},
		},
		Before:         middleware.StandardMiddlewareChain(),
		ExitErrHandler: middleware.ExitErrHandler,
		Commands: []*cli.Command{
			DecodeCommand(),
			LogsCommand(),
			StreamCommand(),
			DiscriminatorsCommand(),
			ConfigCommand(),
		},
	}
}

func programIdFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "program-id",
		Usage: "Only decode data records logged by this program (defaults to the configured program)",
	}
}

// DecodeCommand returns the decode command
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode raw event payloads",
		ArgsUsage: "[payload...] (reads one payload per line from stdin when omitted)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "Payload encoding: base64, base58 or hex (defaults to the configured encoding)",
			},
		},
		Action: decodeAction,
	}
}

// LogsCommand returns the logs command
func LogsCommand() *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "Decode events from the log messages of a transaction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Input file (- for stdin): transaction JSON, JSON array or plain log lines",
				Value:   "-",
			},
			programIdFlag(),
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when a data record of the watched program cannot be decoded",
			},
		},
		Action: logsAction,
	}
}

// StreamCommand returns the stream command
func StreamCommand() *cli.Command {
	return &cli.Command{
		Name:  "stream",
		Usage: "Decode events from program logs piped to stdin, e.g. from `solana logs`",
		Flags: []cli.Flag{
			programIdFlag(),
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Stop on the first data record that cannot be decoded",
			},
		},
		Action: streamAction,
	}
}

// DiscriminatorsCommand returns the discriminators command
func DiscriminatorsCommand() *cli.Command {
	return &cli.Command{
		Name:   "discriminators",
		Usage:  "List known events in matching order with their discriminators",
		Action: discriminatorsAction,
	}
}

// ConfigCommand returns the config command
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShowAction,
			},
			{
				Name:  "set",
				Usage: "Set values in the configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "program-id",
						Usage: "Program whose data records are decoded",
					},
					&cli.StringFlag{
						Name:  "default-output",
						Usage: "Default output format",
					},
					&cli.StringFlag{
						Name:  "encoding",
						Usage: "Default payload encoding",
					},
					&cli.BoolFlag{
						Name:  "default-verbose",
						Usage: "Enable debug logging by default",
					},
				},
				Action: configSetAction,
			},
		},
	}
}
