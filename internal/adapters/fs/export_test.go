package fs

// NewLocatorWith creates a Locator that resolves the executable path with fn.
func NewLocatorWith(fn func() (string, error)) *Locator {
	return &Locator{executable: fn}
}
