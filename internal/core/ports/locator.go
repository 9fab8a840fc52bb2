package ports

// ExecutableLocator finds the directory that holds the running program.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ExecutableLocator interface {
	// Dir returns the absolute directory of the running executable.
	Dir() (string, error)
}
