package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExecutableLocator = (*Locator)(nil)

// Locator finds the directory of the running executable.
type Locator struct {
	executable func() (string, error)
}

// NewLocator creates a Locator backed by os.Executable.
func NewLocator() *Locator {
	return &Locator{executable: os.Executable}
}

// Dir returns the directory containing the running executable, with symlinks resolved.
// Failures match domain.ErrExecutableNotLocated.
func (l *Locator) Dir() (string, error) {
	exe, err := l.executable()
	if err != nil {
		return "", errors.Join(domain.ErrExecutableNotLocated, err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrExecutableNotLocated, err), "path", exe)
	}

	dir, err := filepath.Abs(filepath.Dir(resolved))
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrExecutableNotLocated, err), "path", resolved)
	}
	return dir, nil
}
