package checker_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcheck/internal/adapters/fs"
	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/core/ports/mocks"
	"go.trai.ch/depcheck/internal/engine/checker"
	"go.uber.org/mock/gomock"
)

// populate writes every manifest entry into dir, skipping the names in skip.
func populate(t *testing.T, dir string, skip ...string) {
	t.Helper()
	for _, name := range domain.DefaultManifest().Entries() {
		if contains(skip, name) {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
}

func writeLocalePack(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "locales"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "en-US.pak"), []byte("x"), 0o600))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func newChecker(opts ...checker.Option) *checker.Checker {
	return checker.NewChecker(domain.DefaultManifest(), fs.NewProber(), opts...)
}

func TestCheckDependencies_AllPresent(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir)
	writeLocalePack(t, dir)

	missing := newChecker().CheckDependencies(dir, domain.DefaultLocalePack)
	assert.Empty(t, missing)
}

func TestCheckDependencies_OneCoreMissing(t *testing.T) {
	for _, name := range domain.CoreRuntimeDependencies() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			populate(t, dir, name)
			writeLocalePack(t, dir)

			missing := newChecker().CheckDependencies(dir, domain.DefaultLocalePack)
			assert.Equal(t, []string{name}, missing)
		})
	}
}

func TestCheckDependencies_EverythingMissing(t *testing.T) {
	dir := t.TempDir()

	missing := newChecker().CheckDependencies(dir, domain.DefaultLocalePack)

	want := append(domain.DefaultManifest().Entries(), domain.DefaultLocalePack)
	require.Len(t, missing, len(domain.CoreRuntimeDependencies())+len(domain.WrapperLayerDependencies())+1)
	assert.Equal(t, want, missing)
}

func TestCheckDependencies_BaseDirDoesNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-there")

	missing := newChecker().CheckDependencies(dir, domain.DefaultLocalePack)
	assert.Len(t, missing, domain.DefaultManifest().Len()+1)
}

func TestCheckDependencies_PdfAndLocaleMissing(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "pdf.dll")

	missing := newChecker().CheckDependencies(dir, "locales/en-US.pak")
	assert.Equal(t, []string{"pdf.dll", "locales/en-US.pak"}, missing)
}

func TestCheckDependencies_LocalePackResolution(t *testing.T) {
	t.Run("absolute missing is reported verbatim", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir)
		abs := filepath.Join(t.TempDir(), "fr.pak")

		missing := newChecker().CheckDependencies(dir, abs)
		assert.Equal(t, []string{abs}, missing)
	})

	t.Run("absolute present outside base dir", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir)
		abs := filepath.Join(t.TempDir(), "fr.pak")
		require.NoError(t, os.WriteFile(abs, []byte("x"), 0o600))

		assert.Empty(t, newChecker().CheckDependencies(dir, abs))
	})

	t.Run("relative missing is reported unresolved", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir)

		missing := newChecker().CheckDependencies(dir, "locales/de.pak")
		assert.Equal(t, []string{"locales/de.pak"}, missing)
	})

	t.Run("relative is resolved against base dir", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir)
		writeLocalePack(t, dir)

		assert.Empty(t, newChecker().CheckDependencies(dir, "locales/en-US.pak"))
	})
}

func TestCheckDependencies_Idempotent(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "cef.pak", "CefSharp.dll")

	c := newChecker()
	first := c.CheckDependencies(dir, domain.DefaultLocalePack)
	second := c.CheckDependencies(dir, domain.DefaultLocalePack)

	assert.Equal(t, []string{"cef.pak", "CefSharp.dll", domain.DefaultLocalePack}, first)
	assert.Equal(t, first, second)
}

func TestCheckDependencies_ParallelKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "libcef.dll", "cef_200_percent.pak", "CefSharp.BrowserSubprocess.exe")

	sequential := newChecker().CheckDependencies(dir, domain.DefaultLocalePack)
	parallel := newChecker(checker.WithParallelism(8)).CheckDependencies(dir, domain.DefaultLocalePack)

	assert.Equal(t, []string{
		"libcef.dll",
		"cef_200_percent.pak",
		"CefSharp.BrowserSubprocess.exe",
		domain.DefaultLocalePack,
	}, sequential)
	assert.Equal(t, sequential, parallel)
}

func TestCheck_ProbesJoinedPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := mocks.NewMockFileProber(ctrl)
	manifest := domain.NewManifest([]string{"a.dll"}, []string{"b.exe"})
	base := filepath.FromSlash("/opt/app")

	gomock.InOrder(
		prober.EXPECT().Exists(filepath.Join(base, "a.dll")).Return(true),
		prober.EXPECT().Exists(filepath.Join(base, "b.exe")).Return(false),
		prober.EXPECT().Exists(filepath.Join(base, "locales", "en-US.pak")).Return(false),
	)

	report := checker.NewChecker(manifest, prober).Check(base, domain.DefaultLocalePack)
	assert.Equal(t, base, report.BaseDir)
	assert.Equal(t, domain.DefaultLocalePack, report.LocalePack)
	assert.Equal(t, []string{"b.exe", domain.DefaultLocalePack}, report.Missing)
	assert.False(t, report.OK())
}

func TestAssertAllDependenciesPresent(t *testing.T) {
	t.Run("passes when everything is present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := t.TempDir()
		populate(t, dir)
		writeLocalePack(t, dir)

		locator := mocks.NewMockExecutableLocator(ctrl)
		locator.EXPECT().Dir().Return(dir, nil)

		err := newChecker(checker.WithLocator(locator)).AssertAllDependenciesPresent("")
		assert.NoError(t, err)
	})

	t.Run("fails listing every missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := t.TempDir()
		populate(t, dir, "pdf.dll", "CefSharp.Core.dll")

		locator := mocks.NewMockExecutableLocator(ctrl)
		locator.EXPECT().Dir().Return(dir, nil)

		err := newChecker(checker.WithLocator(locator)).AssertAllDependenciesPresent(domain.DefaultLocalePack)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDependencyCheckFailed)
		assert.Contains(t, err.Error(), "Missing: pdf.dll")
		assert.Contains(t, err.Error(), "Missing: CefSharp.Core.dll")
		assert.Contains(t, err.Error(), "Missing: "+domain.DefaultLocalePack)
		assert.Contains(t, err.Error(), dir)

		var missingErr *domain.MissingDependenciesError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"pdf.dll", "CefSharp.Core.dll", domain.DefaultLocalePack}, missingErr.Missing)
		assert.Equal(t, dir, missingErr.BaseDir)
	})

	t.Run("uses the given locale pack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := t.TempDir()
		populate(t, dir)

		locator := mocks.NewMockExecutableLocator(ctrl)
		locator.EXPECT().Dir().Return(dir, nil)

		err := newChecker(checker.WithLocator(locator)).AssertAllDependenciesPresent("locales/ja.pak")
		var missingErr *domain.MissingDependenciesError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"locales/ja.pak"}, missingErr.Missing)
	})

	t.Run("locator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locator := mocks.NewMockExecutableLocator(ctrl)
		locator.EXPECT().Dir().Return("", errors.Join(domain.ErrExecutableNotLocated, errors.New("boom")))

		err := newChecker(checker.WithLocator(locator)).AssertAllDependenciesPresent("")
		assert.ErrorIs(t, err, domain.ErrExecutableNotLocated)
		assert.NotErrorIs(t, err, domain.ErrDependencyCheckFailed)
	})

	t.Run("no locator", func(t *testing.T) {
		err := newChecker().AssertAllDependenciesPresent("")
		assert.ErrorIs(t, err, domain.ErrExecutableNotLocated)
	})
}

func TestMustAssertAllDependenciesPresent_Panics(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockExecutableLocator(ctrl)
	locator.EXPECT().Dir().Return(t.TempDir(), nil)

	assert.Panics(t, func() {
		newChecker(checker.WithLocator(locator)).MustAssertAllDependenciesPresent("")
	})
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocks.NewMockFileProber(ctrl)
	prober.EXPECT().Exists(gomock.Any()).Return(true).Times(domain.DefaultManifest().Len() + 1)

	base := checker.NewChecker(domain.DefaultManifest(), prober)
	derived := base.With(checker.WithParallelism(4))

	assert.NotSame(t, base, derived)
	assert.Empty(t, derived.CheckDependencies(t.TempDir(), domain.DefaultLocalePack))
}

func TestResolveLocalePack(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "x.pak")

	assert.Equal(t, abs, checker.ResolveLocalePack(base, abs))
	assert.Equal(t, filepath.Join(base, "locales", "en-US.pak"), checker.ResolveLocalePack(base, "locales/en-US.pak"))
}

func TestResolveLocalePack_Rooted(t *testing.T) {
	base := t.TempDir()
	rooted := string(filepath.Separator) + filepath.Join("locales", "x.pak")

	assert.Equal(t, rooted, checker.ResolveLocalePack(base, rooted))
	assert.Equal(t, rooted, checker.ResolveLocalePack(base, "/locales/x.pak"))
}

func TestResolveLocalePack_DriveRelative(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("drive letters only exist on windows")
	}

	assert.Equal(t, `C:locales\x.pak`, checker.ResolveLocalePack(`D:\app`, "C:locales/x.pak"))
	assert.Equal(t, `\locales\x.pak`, checker.ResolveLocalePack(`D:\app`, `\locales\x.pak`))
}
