package ports

import "go.trai.ch/tvoy/internal/core/domain"

// ConfigLoader defines the interface for loading the launcher configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns fully defaulted settings. A missing config file is not an
	// error; it yields the defaults.
	Load(cwd string) (*domain.Settings, error)
}
