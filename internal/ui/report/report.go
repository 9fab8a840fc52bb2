// Package report renders dependency check results and manifests for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/ui/output"
	"go.trai.ch/depcheck/internal/ui/style"
)

// Document is the JSON form of a check report.
type Document struct {
	BaseDir    string   `json:"baseDir"`
	LocalePack string   `json:"localePack"`
	OK         bool     `json:"ok"`
	Checked    int      `json:"checked"`
	Missing    []string `json:"missing"`
}

// ManifestDocument is the JSON form of the manifest listing.
type ManifestDocument struct {
	CoreRuntime  []string `json:"coreRuntime"`
	WrapperLayer []string `json:"wrapperLayer"`
	LocalePack   string   `json:"localePack"`
}

// Renderer writes human-readable output with the shared palette.
type Renderer struct {
	w     io.Writer
	ok    lipgloss.Style
	fail  lipgloss.Style
	head  lipgloss.Style
	faint lipgloss.Style
}

// NewRenderer creates a Renderer writing to w. Colors are dropped for NO_COLOR, CI and non-terminal writers.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(output.ColorProfile(w))

	return &Renderer{
		w:     w,
		ok:    lr.NewStyle().Foreground(style.Green),
		fail:  lr.NewStyle().Foreground(style.Red),
		head:  lr.NewStyle().Foreground(style.Iris).Bold(true),
		faint: lr.NewStyle().Foreground(style.Slate),
	}
}

// Report writes the outcome of a check. checked is the number of probed items.
func (r *Renderer) Report(rep *domain.Report, checked int) error {
	var b strings.Builder

	if rep.OK() {
		b.WriteString(r.ok.Render(fmt.Sprintf("%s All %d runtime dependencies present", style.Check, checked)))
		b.WriteString("\n")
		b.WriteString(r.faint.Render("  Base directory: " + rep.BaseDir))
		b.WriteString("\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	b.WriteString(r.fail.Render(fmt.Sprintf("%s %d of %d runtime dependencies missing", style.Cross, len(rep.Missing), checked)))
	b.WriteString("\n")
	for _, m := range rep.Missing {
		b.WriteString("  " + r.fail.Render("Missing: "+m))
		b.WriteString("\n")
	}
	b.WriteString(r.faint.Render("  Base directory: " + rep.BaseDir))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Manifest writes every section of m followed by the locale pack.
func (r *Renderer) Manifest(m domain.Manifest, localePack string) error {
	var b strings.Builder

	for _, section := range m.Sections() {
		b.WriteString(r.head.Render(string(section)))
		b.WriteString("\n")
		for _, entry := range m.Section(section) {
			b.WriteString("  " + style.Dot + " " + entry + "\n")
		}
	}
	b.WriteString(r.head.Render("locale-pack"))
	b.WriteString("\n")
	b.WriteString("  " + style.Dot + " " + localePack + "\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// WriteJSON writes rep as an indented JSON Document.
func WriteJSON(w io.Writer, rep *domain.Report, checked int) error {
	missing := rep.Missing
	if missing == nil {
		missing = []string{}
	}

	return encode(w, Document{
		BaseDir:    rep.BaseDir,
		LocalePack: rep.LocalePack,
		OK:         rep.OK(),
		Checked:    checked,
		Missing:    missing,
	})
}

// WriteManifestJSON writes m as an indented JSON ManifestDocument.
func WriteManifestJSON(w io.Writer, m domain.Manifest, localePack string) error {
	return encode(w, ManifestDocument{
		CoreRuntime:  m.Section(domain.SectionCoreRuntime),
		WrapperLayer: m.Section(domain.SectionWrapperLayer),
		LocalePack:   localePack,
	})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
