// Package main provides the entry point for the songcrate application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/songcrateapp/songcrate/internal/cli"
	"github.com/songcrateapp/songcrate/internal/di"
	"github.com/songcrateapp/songcrate/internal/di/providers"
	"github.com/songcrateapp/songcrate/internal/logger"
)

func main() {
	// Create DI container
	injector := di.NewContainer()

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start songcrate: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)
	app := do.MustInvoke[*cli.App](injector)

	// Ctrl-C cancels the context, which ends the interactive loop
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := app.Run(ctx)

	// Shutdown all services in reverse order
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// Database needs explicit shutdown since it uses a wrapper type
	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}

	if runErr != nil {
		log.Error("Exited with error", "error", runErr)
		os.Exit(1)
	}
}
