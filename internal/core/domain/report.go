package domain

import (
	"slices"
	"strings"
)

// Report is the outcome of a single dependency check.
// An empty Missing list means every dependency was found.
type Report struct {
	BaseDir    string
	LocalePack string
	Missing    []string
}

// OK reports whether nothing was missing.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Err returns nil when the report is clean and a *MissingDependenciesError otherwise.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return &MissingDependenciesError{
		Missing: slices.Clone(r.Missing),
		BaseDir: r.BaseDir,
	}
}

// MissingDependenciesError is returned when a check finds missing dependencies.
// It matches ErrDependencyCheckFailed with errors.Is.
type MissingDependenciesError struct {
	Missing []string
	BaseDir string
}

func (e *MissingDependenciesError) Error() string {
	var b strings.Builder
	b.WriteString("Unable to locate required runtime dependencies:\n")
	for _, m := range e.Missing {
		b.WriteString("Missing: ")
		b.WriteString(m)
		b.WriteByte('\n')
	}
	b.WriteString("Base directory: ")
	b.WriteString(e.BaseDir)
	return b.String()
}

// Is makes errors.Is(err, ErrDependencyCheckFailed) hold.
func (e *MissingDependenciesError) Is(target error) bool {
	return target == ErrDependencyCheckFailed
}
