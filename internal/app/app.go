// Package app implements the application layer for tvoy.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic: validate the input, provision
// the environment, invoke the converter.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.PathResolver
	locator      ports.InterpreterLocator
	provisioner  ports.Provisioner
	executor     ports.Executor
	logger       ports.Logger
	telemetry    ports.Telemetry

	out io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.PathResolver,
	locator ports.InterpreterLocator,
	provisioner ports.Provisioner,
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		locator:      locator,
		provisioner:  provisioner,
		executor:     executor,
		logger:       logger,
		telemetry:    telemetry,
		out:          os.Stdout,
	}
}

// SetOutput redirects the success message. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run converts the report named by args[0], forwarding the remaining args to
// the converter verbatim.
//
// The order of checks is part of the contract: the input file is validated
// before any environment or install work happens, and the base interpreter is
// located before provisioning starts.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return domain.ErrUsage
	}

	settings, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	_, vertex := a.telemetry.Record(ctx, "resolve input")
	input, err := a.resolver.ResolveInput(args[0])
	vertex.Complete(err)
	if err != nil {
		return err
	}
	output := a.resolver.OutputPath(input, settings.OutputName)

	base, err := a.locator.Find(settings.Python)
	if err != nil {
		return err
	}

	stepCtx, vertex := a.telemetry.Record(ctx, "provision environment")
	err = a.provisioner.EnsureReady(stepCtx, base, settings.ManifestPath, settings.EnvDir)
	vertex.Complete(err)
	if err != nil {
		return err
	}

	req := &domain.Request{
		InputPath:   input,
		OutputPath:  output,
		ScriptPath:  settings.ScriptPath,
		EnvDir:      settings.EnvDir,
		IncludeCash: settings.IncludeCash,
		Debug:       settings.Debug,
		ExtraArgs:   append(append([]string{}, settings.ExtraArgs...), args[1:]...),
	}

	stepCtx, vertex = a.telemetry.Record(ctx, "convert report")
	err = a.executor.Execute(stepCtx, req, nil)
	vertex.Complete(err)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Done. Result written to %s\n", output)
	return nil
}
