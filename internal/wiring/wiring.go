// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tvoy/internal/adapters/config"
	_ "go.trai.ch/tvoy/internal/adapters/fs"
	_ "go.trai.ch/tvoy/internal/adapters/logger"
	_ "go.trai.ch/tvoy/internal/adapters/pyenv"
	_ "go.trai.ch/tvoy/internal/adapters/shell"
	_ "go.trai.ch/tvoy/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/tvoy/internal/app"
)
