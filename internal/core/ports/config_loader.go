package ports

import "go.trai.ch/depcheck/internal/core/domain"

// ConfigLoader defines the interface for loading check settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings from path. An empty path looks for the default file in cwd
	// and falls back to defaults when it does not exist.
	Load(cwd, path string) (domain.Settings, error)
}
