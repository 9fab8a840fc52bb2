package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcheck/pkg/preflight"
)

func TestCheckDependencies(t *testing.T) {
	dir := t.TempDir()
	for _, name := range append(preflight.CoreRuntimeDependencies(), preflight.WrapperLayerDependencies()...) {
		if name == "pdf.dll" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	missing := preflight.CheckDependencies(dir, "locales/en-US.pak")
	assert.Equal(t, []string{"pdf.dll", "locales/en-US.pak"}, missing)
}

func TestAssertAllDependenciesPresent_TestBinary(t *testing.T) {
	// The test binary lives in a build cache directory without any runtime files.
	err := preflight.AssertAllDependenciesPresent("")
	require.Error(t, err)
	assert.ErrorIs(t, err, preflight.ErrDependencyCheckFailed)

	var missingErr *preflight.MissingDependenciesError
	require.ErrorAs(t, err, &missingErr)
	assert.Contains(t, missingErr.Missing, "libcef.dll")
	assert.Contains(t, missingErr.Missing, preflight.DefaultLocalePack)
	assert.NotEmpty(t, missingErr.BaseDir)
}

func TestMustAssertAllDependenciesPresent_TestBinary(t *testing.T) {
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		preflight.MustAssertAllDependenciesPresent("")
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "panic value %T is not an error", recovered)
	assert.ErrorIs(t, err, preflight.ErrDependencyCheckFailed)
}

func TestImportRegistersNoGraftNodes(t *testing.T) {
	assert.Empty(t, graft.Registry())
}
