// Package app implements the application layer for depcheck.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/depcheck/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/core/ports"
	"go.trai.ch/depcheck/internal/engine/checker"
	"go.trai.ch/depcheck/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	checker      *checker.Checker
	locator      ports.ExecutableLocator
	logger       ports.Logger
	stdout       io.Writer
	getwd        func() (string, error)
}

// Components holds the resolved application graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

// CheckOptions holds the command-line overrides for a check. Zero values defer
// to the config file.
type CheckOptions struct {
	ConfigPath  string
	BaseDir     string
	LocalePack  string
	Parallelism int
	Output      string
}

// ManifestOptions holds the options for listing the manifest.
type ManifestOptions struct {
	ConfigPath string
	Output     string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	chk *checker.Checker,
	locator ports.ExecutableLocator,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		checker:      chk,
		locator:      locator,
		logger:       logger,
		stdout:       os.Stdout,
		getwd:        os.Getwd,
	}
}

// WithOutput sets the writer reports are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkingDir pins the directory used to find the default config file.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Check runs the dependency check and renders the report. A failed check
// returns an error matching domain.ErrDependencyCheckFailed after the report
// has been written.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	format, err := outputOverride(opts.Output)
	if err != nil {
		return err
	}
	a.logFormat(format)

	settings, err := a.settings(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.BaseDir != "" {
		settings.BaseDir = opts.BaseDir
	}
	if opts.LocalePack != "" {
		settings.LocalePack = opts.LocalePack
	}
	if opts.Parallelism > 0 {
		settings.Parallelism = opts.Parallelism
	}
	if format != "" {
		settings.Output = format
	}
	a.logFormat(settings.Output)

	if settings.BaseDir == "" {
		if settings.BaseDir, err = a.locator.Dir(); err != nil {
			return zerr.Wrap(err, "failed to determine base directory")
		}
	}

	if info, statErr := os.Stat(settings.BaseDir); statErr != nil || !info.IsDir() {
		a.logger.Warn("base directory " + settings.BaseDir + " is not accessible, every dependency will be reported missing")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	chk := a.checker.With(checker.WithParallelism(settings.Parallelism))
	rep := chk.Check(settings.BaseDir, settings.LocalePack)
	checked := chk.Manifest().Len() + 1

	if settings.Output == domain.OutputJSON {
		err = report.WriteJSON(a.stdout, rep, checked)
	} else {
		err = report.NewRenderer(a.stdout).Report(rep, checked)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to write report")
	}

	return rep.Err()
}

// Manifest renders the required dependencies and the configured locale pack.
func (a *App) Manifest(_ context.Context, opts ManifestOptions) error {
	format, err := outputOverride(opts.Output)
	if err != nil {
		return err
	}
	a.logFormat(format)

	settings, err := a.settings(opts.ConfigPath)
	if err != nil {
		return err
	}

	if format == "" {
		format = settings.Output
	}
	a.logFormat(format)

	m := a.checker.Manifest()
	if format == domain.OutputJSON {
		err = report.WriteManifestJSON(a.stdout, m, settings.LocalePack)
	} else {
		err = report.NewRenderer(a.stdout).Manifest(m, settings.LocalePack)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// logFormat switches the logger to JSON records when the report is JSON.
func (a *App) logFormat(format domain.OutputFormat) {
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(format == domain.OutputJSON)
	}
}

// outputOverride parses the --output flag. An empty flag defers to the config file.
func outputOverride(flag string) (domain.OutputFormat, error) {
	if flag == "" {
		return "", nil
	}
	return config.ParseOutputFormat(flag)
}

func (a *App) settings(configPath string) (domain.Settings, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
	}

	settings, err := a.configLoader.Load(cwd, configPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}
