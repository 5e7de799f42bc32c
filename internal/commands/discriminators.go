package commands

import (
	"github.com/AKJUS/solana-vrf/internal/commands/middleware"
	"github.com/AKJUS/solana-vrf/internal/output"
	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/urfave/cli/v2"
)

func discriminatorsAction(c *cli.Context) error {
	cfg := middleware.GetConfig(c)

	kinds := events.Kinds()
	rows := make([]output.DiscriminatorRow, 0, len(kinds))
	for i, kind := range kinds {
		d, _ := events.DiscriminatorOf(kind)
		rows = append(rows, output.DiscriminatorRow{
			Order:         i + 1,
			Kind:          string(kind),
			Discriminator: d.String(),
		})
	}
	return output.NewFormatter(cfg.Output, c.App.Writer).PrintDiscriminators(rows)
}
