package domain

import "slices"

// DefaultLocalePack is the locale pack checked when the caller does not name one.
// It is relative to the base directory.
const DefaultLocalePack = "locales/en-US.pak"

// Section names a manifest section.
type Section string

const (
	// SectionCoreRuntime holds the native libraries and resource packs of the embedded browser runtime.
	SectionCoreRuntime Section = "core-runtime"
	// SectionWrapperLayer holds the binding libraries and the browser subprocess executable.
	SectionWrapperLayer Section = "wrapper-layer"
)

var coreRuntimeDependencies = []string{
	"libcef.dll",
	"libEGL.dll",
	"libGLESv2.dll",
	"pdf.dll",
	"icudtl.dat",
	"ffmpegsumo.dll",
	"d3dcompiler_43.dll",
	"d3dcompiler_47.dll",
	"devtools_resources.pak",
	"cef.pak",
	"cef_100_percent.pak",
	"cef_200_percent.pak",
}

var wrapperLayerDependencies = []string{
	"CefSharp.Core.dll",
	"CefSharp.dll",
	"CefSharp.BrowserSubprocess.Core.dll",
	"CefSharp.BrowserSubprocess.exe",
}

// CoreRuntimeDependencies returns a copy of the core runtime manifest in definition order.
func CoreRuntimeDependencies() []string {
	return slices.Clone(coreRuntimeDependencies)
}

// WrapperLayerDependencies returns a copy of the wrapper layer manifest in definition order.
func WrapperLayerDependencies() []string {
	return slices.Clone(wrapperLayerDependencies)
}

// Manifest is an immutable, ordered set of required file names.
// The zero value is an empty manifest.
type Manifest struct {
	core    []string
	wrapper []string
}

// NewManifest creates a Manifest from the given core runtime and wrapper layer entries.
// The slices are copied.
func NewManifest(core, wrapper []string) Manifest {
	return Manifest{
		core:    slices.Clone(core),
		wrapper: slices.Clone(wrapper),
	}
}

// DefaultManifest returns the fixed manifest of the embedded runtime.
func DefaultManifest() Manifest {
	return NewManifest(coreRuntimeDependencies, wrapperLayerDependencies)
}

// Section returns a copy of the entries in the named section, or nil if the name is unknown.
func (m Manifest) Section(s Section) []string {
	switch s {
	case SectionCoreRuntime:
		return slices.Clone(m.core)
	case SectionWrapperLayer:
		return slices.Clone(m.wrapper)
	default:
		return nil
	}
}

// Sections lists the section names in check order.
func (m Manifest) Sections() []Section {
	return []Section{SectionCoreRuntime, SectionWrapperLayer}
}

// Entries returns every entry, core runtime first, then wrapper layer.
func (m Manifest) Entries() []string {
	entries := make([]string, 0, m.Len())
	entries = append(entries, m.core...)
	return append(entries, m.wrapper...)
}

// Len returns the total number of entries.
func (m Manifest) Len() int {
	return len(m.core) + len(m.wrapper)
}
