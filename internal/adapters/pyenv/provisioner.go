// Package pyenv provisions Python virtual environments with stamp-based
// dependency install caching.
package pyenv

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Provisioner = (*Provisioner)(nil)

// Provisioner implements ports.Provisioner using `python -m venv` and pip.
type Provisioner struct {
	hasher ports.Hasher
	logger ports.Logger
}

// NewProvisioner creates a new Provisioner.
func NewProvisioner(hasher ports.Hasher, logger ports.Logger) *Provisioner {
	return &Provisioner{
		hasher: hasher,
		logger: logger,
	}
}

// EnsureReady makes envDir usable for the given manifest.
//
// The needs-install decision is an explicit function of the manifest digest
// and the stamp persisted in envDir; no other state is consulted. When the
// stamp matches, the call performs zero subprocess invocations. Otherwise the
// environment is created if needed, pip is upgraded, the full dependency set
// is installed, and only then is the stamp overwritten. A failure anywhere
// leaves the stamp untouched, so the next invocation retries from scratch.
func (p *Provisioner) EnsureReady(ctx context.Context, base, manifestPath, envDir string) error {
	digest, err := p.hasher.ManifestDigest(manifestPath)
	if err != nil {
		return errors.Join(domain.ErrProvisionFailed, err)
	}

	stampPath := filepath.Join(envDir, domain.StampFilename)
	stamp, err := ReadStamp(stampPath)
	if err != nil {
		return errors.Join(domain.ErrProvisionFailed, err)
	}

	if stamp == digest {
		if v := ports.VertexFromContext(ctx); v != nil {
			v.Cached()
		}
		p.logger.Info("dependencies unchanged, skipping install")
		return nil
	}

	if err := p.install(ctx, base, manifestPath, envDir, digest); err != nil {
		instErr := zerr.With(err, "manifest", manifestPath)
		instErr = zerr.With(instErr, "env_dir", envDir)
		return errors.Join(domain.ErrProvisionFailed, instErr)
	}

	if err := WriteStamp(stampPath, digest); err != nil {
		return errors.Join(domain.ErrProvisionFailed, err)
	}

	return nil
}

// install runs the full installation sequence. The stamp is written by the
// caller, strictly after this returns nil.
func (p *Provisioner) install(ctx context.Context, base, manifestPath, envDir, digest string) error {
	python := venvInterpreter(envDir)
	if _, err := os.Stat(python); err != nil {
		p.logger.Info("creating virtual environment: " + envDir)
		if err := p.run(ctx, base, "-m", "venv", envDir); err != nil {
			return err
		}
	}

	p.logger.Info("upgrading pip")
	if err := p.run(ctx, python, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return err
	}

	if digest == domain.DigestAbsent {
		p.logger.Info("no manifest found, installing fallback dependency set")
		args := append([]string{"-m", "pip", "install"}, domain.FallbackDependencies...)
		return p.run(ctx, python, args...)
	}

	p.logger.Info("installing dependencies from " + manifestPath)
	return p.run(ctx, python, "-m", "pip", "install", "-r", manifestPath)
}

// run executes a provisioning command, streaming stdout to the logger and
// buffering stderr for error metadata.
func (p *Provisioner) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // args are constructed from validated inputs

	var stderr bytes.Buffer
	cmd.Stdout = newLineWriter(p.logger)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		runErr := zerr.Wrap(err, "command failed")
		runErr = zerr.With(runErr, "command", name+" "+strings.Join(args, " "))
		return zerr.With(runErr, "stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// venvInterpreter returns the path of the interpreter inside the environment.
func venvInterpreter(envDir string) string {
	return filepath.Join(envDir, "bin", "python")
}

// lineWriter forwards subprocess output to the logger line by line.
type lineWriter struct {
	logger ports.Logger
}

func newLineWriter(logger ports.Logger) *lineWriter {
	return &lineWriter{logger: logger}
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	for line := range strings.SplitSeq(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line != "" {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
