// Package preflight lets a host application verify, before it starts, that
// the native runtime files it depends on were deployed next to its binary.
//
// Typical use at the top of main:
//
//	if err := preflight.AssertAllDependenciesPresent(""); err != nil {
//		log.Fatal(err)
//	}
package preflight

import (
	"go.trai.ch/depcheck/internal/adapters/fs"
	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/engine/checker"
)

// DefaultLocalePack is checked when no locale pack is given.
const DefaultLocalePack = domain.DefaultLocalePack

// ErrDependencyCheckFailed is matched by every error reporting missing dependencies.
var ErrDependencyCheckFailed = domain.ErrDependencyCheckFailed

// ErrExecutableNotLocated is matched when the running executable's directory cannot be found.
var ErrExecutableNotLocated = domain.ErrExecutableNotLocated

// MissingDependenciesError lists the missing items and the directory that was checked.
type MissingDependenciesError = domain.MissingDependenciesError

// CoreRuntimeDependencies returns a copy of the required core runtime files.
func CoreRuntimeDependencies() []string {
	return domain.CoreRuntimeDependencies()
}

// WrapperLayerDependencies returns a copy of the required wrapper layer files.
func WrapperLayerDependencies() []string {
	return domain.WrapperLayerDependencies()
}

func newChecker() *checker.Checker {
	return checker.NewChecker(domain.DefaultManifest(), fs.NewProber(), checker.WithLocator(fs.NewLocator()))
}

// CheckDependencies returns the dependencies missing from path, core runtime
// entries first, then wrapper layer entries, then localePackFile. It never fails:
// an unreadable path reports everything as missing.
func CheckDependencies(path, localePackFile string) []string {
	return newChecker().CheckDependencies(path, localePackFile)
}

// AssertAllDependenciesPresent checks the directory of the running executable.
// An empty localePackPath means DefaultLocalePack. The returned error is a
// *MissingDependenciesError when anything is missing.
func AssertAllDependenciesPresent(localePackPath string) error {
	return newChecker().AssertAllDependenciesPresent(localePackPath)
}

// MustAssertAllDependenciesPresent is like AssertAllDependenciesPresent but
// panics with the returned error.
func MustAssertAllDependenciesPresent(localePackPath string) {
	newChecker().MustAssertAllDependenciesPresent(localePackPath)
}
