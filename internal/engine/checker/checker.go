// Package checker implements the pre-flight runtime dependency validator.
package checker

import (
	"os"
	"path/filepath"

	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Checker verifies that every manifest entry and the locale pack exist in a base directory.
// It holds no mutable state and is safe for concurrent use.
type Checker struct {
	manifest    domain.Manifest
	prober      ports.FileProber
	locator     ports.ExecutableLocator
	parallelism int
}

// Option configures a Checker.
type Option func(*Checker)

// WithParallelism lets up to n probes run at once. Values below 2 probe sequentially.
func WithParallelism(n int) Option {
	return func(c *Checker) {
		c.parallelism = n
	}
}

// WithLocator sets the locator used by AssertAllDependenciesPresent.
func WithLocator(l ports.ExecutableLocator) Option {
	return func(c *Checker) {
		c.locator = l
	}
}

// NewChecker creates a Checker for the given manifest.
func NewChecker(manifest domain.Manifest, prober ports.FileProber, opts ...Option) *Checker {
	c := &Checker{
		manifest:    manifest,
		prober:      prober,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// With returns a copy of c with opts applied.
func (c *Checker) With(opts ...Option) *Checker {
	clone := *c
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Manifest returns the manifest the checker validates against.
func (c *Checker) Manifest() domain.Manifest {
	return c.manifest
}

// CheckDependencies returns every dependency missing from baseDir, in manifest order,
// followed by localePack if it is missing. An empty result means everything was found.
//
// A missing locale pack is reported exactly as given, not as the resolved path.
// An inaccessible baseDir makes every probe fail and is not reported separately.
func (c *Checker) CheckDependencies(baseDir, localePack string) []string {
	return c.Check(baseDir, localePack).Missing
}

// Check is CheckDependencies returning a full report.
func (c *Checker) Check(baseDir, localePack string) *domain.Report {
	entries := c.manifest.Entries()

	paths := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		paths = append(paths, filepath.Join(baseDir, entry))
	}
	paths = append(paths, ResolveLocalePack(baseDir, localePack))

	found := c.probe(paths)

	var missing []string
	for i, entry := range entries {
		if !found[i] {
			missing = append(missing, entry)
		}
	}
	if !found[len(entries)] {
		missing = append(missing, localePack)
	}

	return &domain.Report{
		BaseDir:    baseDir,
		LocalePack: localePack,
		Missing:    missing,
	}
}

// probe tests each path and returns the results by index.
func (c *Checker) probe(paths []string) []bool {
	found := make([]bool, len(paths))

	if c.parallelism < 2 {
		for i, p := range paths {
			found[i] = c.prober.Exists(p)
		}
		return found
	}

	var g errgroup.Group
	g.SetLimit(c.parallelism)
	for i, p := range paths {
		g.Go(func() error {
			found[i] = c.prober.Exists(p)
			return nil
		})
	}
	_ = g.Wait() // probes never fail

	return found
}

// AssertAllDependenciesPresent checks the directory of the running executable.
// An empty localePack means domain.DefaultLocalePack. It returns a
// *domain.MissingDependenciesError listing every missing item, or an error
// matching domain.ErrExecutableNotLocated when the directory cannot be found.
func (c *Checker) AssertAllDependenciesPresent(localePack string) error {
	if c.locator == nil {
		return domain.ErrExecutableNotLocated
	}

	baseDir, err := c.locator.Dir()
	if err != nil {
		return err
	}

	if localePack == "" {
		localePack = domain.DefaultLocalePack
	}

	return c.Check(baseDir, localePack).Err()
}

// MustAssertAllDependenciesPresent is like AssertAllDependenciesPresent but panics on failure.
// It is meant for the outermost layer of a host application.
func (c *Checker) MustAssertAllDependenciesPresent(localePack string) {
	if err := c.AssertAllDependenciesPresent(localePack); err != nil {
		panic(err)
	}
}

// ResolveLocalePack returns the path probed for localePack.
// Rooted references are used as-is; anything else is joined to baseDir.
// Forward slashes are accepted on every platform.
func ResolveLocalePack(baseDir, localePack string) string {
	p := filepath.FromSlash(localePack)
	if isRooted(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// isRooted reports whether p is absolute, starts with a separator or names a
// volume. On Windows `\locales\x.pak` and `C:x.pak` are rooted but not absolute.
func isRooted(p string) bool {
	if filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return true
	}
	return p != "" && os.IsPathSeparator(p[0])
}
