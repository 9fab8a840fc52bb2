// Package config provides the settings loader for depcheck.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the config file looked up in the working directory.
	DefaultFilename = "depcheck.yaml"
	// SupportedVersion is the config schema version this loader understands.
	SupportedVersion = "1"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a new FileConfigLoader for the default filename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename, Logger: log}
}

// Load returns the settings for a run. When path is empty the default file in cwd
// is used if present; a missing explicit path is an error.
func (l *FileConfigLoader) Load(cwd, path string) (domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = l.Filename
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	file, err := read(path)
	if err != nil {
		if !explicit && errors.Is(err, iofs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	if file.Version != "" && file.Version != SupportedVersion && l.Logger != nil {
		l.Logger.Warn("unsupported config version " + file.Version + " in " + path + ", reading it as version " + SupportedVersion)
	}

	return resolve(file, filepath.Dir(path))
}

func read(path string) (*Depcheckfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(errors.Join(domain.ErrConfigNotFound, err), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Depcheckfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return &file, nil
}

// resolve applies file on top of the defaults. Relative base directories are
// taken relative to the config file.
func resolve(file *Depcheckfile, configDir string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if file.BaseDir != "" {
		settings.BaseDir = file.BaseDir
		if !filepath.IsAbs(settings.BaseDir) {
			settings.BaseDir = filepath.Join(configDir, settings.BaseDir)
		}
	}

	if file.LocalePack != "" {
		settings.LocalePack = file.LocalePack
	}

	if file.Parallelism < 0 {
		return domain.Settings{}, zerr.With(zerr.New("parallelism must not be negative"), "parallelism", file.Parallelism)
	}
	if file.Parallelism > 0 {
		settings.Parallelism = file.Parallelism
	}

	if file.Output != "" {
		format, err := ParseOutputFormat(file.Output)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Output = format
	}

	return settings, nil
}

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (domain.OutputFormat, error) {
	switch f := domain.OutputFormat(s); f {
	case domain.OutputText, domain.OutputJSON:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, "expected text or json"), "output", s)
	}
}
