// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the conversion script through the environment's interpreter.
// The child inherits the process environment with env entries applied on top.
// Stdout and stderr are streamed line-wise into the logger; a non-zero exit
// is returned as domain.ErrConversionFailed with exit code metadata.
func (e *Executor) Execute(ctx context.Context, req *domain.Request, env []string) error {
	python := filepath.Join(req.EnvDir, "bin", "python")
	args := append([]string{req.ScriptPath}, req.Args()...)

	cmd := exec.CommandContext(ctx, python, args...) //nolint:gosec // paths come from validated settings
	cmd.Env = mergeEnvironment(os.Environ(), env)

	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if v := ports.VertexFromContext(ctx); v != nil {
		cmd.Stdout = io.MultiWriter(cmd.Stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(cmd.Stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}

		convErr := zerr.With(zerr.Wrap(err, "conversion script failed"), "script", req.ScriptPath)
		convErr = zerr.With(convErr, "exit_code", exitCode)
		return errors.Join(domain.ErrConversionFailed, convErr)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// mergeEnvironment applies extra KEY=VALUE entries over the base environment.
func mergeEnvironment(base, extra []string) []string {
	envMap := make(map[string]string, len(base))
	order := make([]string, 0, len(base))

	apply := func(entries []string) {
		for _, entry := range entries {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}
	apply(base)
	apply(extra)

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
