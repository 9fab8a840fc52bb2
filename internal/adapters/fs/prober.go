// Package fs implements filesystem adapters for dependency probing.
package fs

import (
	"os"

	"go.trai.ch/depcheck/internal/core/ports"
)

var _ ports.FileProber = (*Prober)(nil)

// Prober checks for the existence of files on the local filesystem.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Exists reports whether path names an existing non-directory file.
// Stat errors of any kind count as absent.
func (p *Prober) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
