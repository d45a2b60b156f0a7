package domain

import "go.trai.ch/zerr"

var (
	// ErrUsage is returned when the CLI is invoked without the required input file argument.
	ErrUsage = zerr.New("usage: tvoy <input-file> [extra args...]")

	// ErrInputNotFound is returned when the input report file does not exist.
	ErrInputNotFound = zerr.New("input file not found")

	// ErrInterpreterNotFound is returned when no base Python interpreter is available on PATH.
	ErrInterpreterNotFound = zerr.New("python interpreter not found")

	// ErrProvisionFailed is returned when creating the virtual environment or installing
	// dependencies fails.
	ErrProvisionFailed = zerr.New("environment provisioning failed")

	// ErrConversionFailed is returned when the external conversion script exits non-zero.
	ErrConversionFailed = zerr.New("conversion failed")
)
