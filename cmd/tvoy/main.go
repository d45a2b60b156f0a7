// Package main is the entry point for the tvoy CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/tvoy/cmd/tvoy/commands"
	"go.trai.ch/tvoy/internal/app"
	"go.trai.ch/tvoy/internal/core/domain"
	_ "go.trai.ch/tvoy/internal/wiring"
)

// Exit codes are part of the CLI contract.
const (
	exitFailure            = 1
	exitInputNotFound      = 2
	exitInterpreterMissing = 3
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return exitFailure
	}
	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsage):
			// Usage text was already printed by the command.
			return exitFailure
		case errors.Is(err, domain.ErrInputNotFound):
			components.Logger.Error(err)
			return exitInputNotFound
		case errors.Is(err, domain.ErrInterpreterNotFound):
			components.Logger.Error(err)
			return exitInterpreterMissing
		default:
			components.Logger.Error(err)
			return exitFailure
		}
	}
	return 0
}
