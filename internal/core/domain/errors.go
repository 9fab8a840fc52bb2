package domain

import "go.trai.ch/zerr"

var (
	// ErrDependencyCheckFailed is matched by every error reporting missing runtime dependencies.
	ErrDependencyCheckFailed = zerr.New("dependency check failed")

	// ErrExecutableNotLocated is returned when the running executable's directory cannot be determined.
	ErrExecutableNotLocated = zerr.New("unable to locate executable directory")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidOutputFormat is returned for an unknown output format.
	ErrInvalidOutputFormat = zerr.New("invalid output format")
)
