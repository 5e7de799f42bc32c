package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AKJUS/solana-vrf/internal/commands"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	app := commands.VrfEvents()

	if err := app.RunContext(ctx, os.Args); err != nil {
		// Error already logged by middleware
		os.Exit(1)
	}
}
