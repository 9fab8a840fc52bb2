// Package ports defines the core interfaces for the application.
package ports

// FileProber tests whether a regular file exists at a path.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type FileProber interface {
	// Exists reports whether path names an existing file.
	// Any error while probing, including an unreadable parent directory, is reported as false.
	Exists(path string) bool
}
