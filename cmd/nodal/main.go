// Package main is the entry point for the nodal node graph runner.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/cmd/nodal/commands"
	"go.trai.ch/nodal/internal/app"
	_ "go.trai.ch/nodal/internal/wiring"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components. Node systems hold graph state, so every
	// run builds its components from a fresh cache.
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.WithCache(graft.NewMemoryCache()))
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdownTimeout)
		defer cancel()
		_ = components.Telemetry.Shutdown(shutdownCtx)
	}()

	// 2. Interface - CLI
	cli := commands.New(components)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
