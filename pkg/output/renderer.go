package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Renderer writes reports in a single format
type Renderer struct {
	w      io.Writer
	format Format
	styles styles
}

type styles struct {
	title   lipgloss.Style
	dest    lipgloss.Style
	source  lipgloss.Style
	arrow   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewRenderer creates a Renderer. FormatAuto is resolved against w when it
// is an *os.File and falls back to FormatText otherwise.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	lr := lipgloss.NewRenderer(w)
	if format != FormatTerminal {
		lr.SetColorProfile(termenv.Ascii)
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Msg("Creating renderer")

	return &Renderer{
		w:      w,
		format: format,
		styles: styles{
			title:   lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
			dest:    lr.NewStyle().Bold(true),
			source:  lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}),
			arrow:   lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#616161"}),
			muted:   lr.NewStyle().Faint(true),
			warning: lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FFB74D"}),
			failure: lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}),
		},
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes the report
func (r *Renderer) Render(report Report) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(r.w).Encode(report)
	default:
		_, err := io.WriteString(r.w, r.renderText(report))
		return err
	}
}

func (r *Renderer) renderText(report Report) string {
	var b strings.Builder

	b.WriteString(r.styles.title.Render(fmt.Sprintf("%s (layout: %s)", report.SourceRoot, report.Layout)))
	b.WriteString("\n\n")

	if len(report.Entries) == 0 {
		b.WriteString(r.styles.muted.Render("No files to deploy"))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	for _, e := range report.Entries {
		if w := lipgloss.Width(e.Destination); w > width {
			width = w
		}
	}

	dup := map[string]bool{}
	for _, d := range report.Duplicates {
		dup[d] = true
	}

	for _, e := range report.Entries {
		pad := strings.Repeat(" ", width-lipgloss.Width(e.Destination))
		line := fmt.Sprintf("  %s%s %s %s",
			r.styles.dest.Render(e.Destination), pad,
			r.styles.arrow.Render("<-"),
			r.styles.source.Render(report.displaySource(e.Source)))
		if e.Checksum != "" {
			line += " " + r.styles.muted.Render(e.Checksum)
		}
		if dup[e.Destination] {
			line += " " + r.styles.warning.Render("(duplicate)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d mapping", len(report.Entries))
	if len(report.Entries) != 1 {
		summary += "s"
	}
	if len(report.Duplicates) > 0 {
		summary += fmt.Sprintf(", %d duplicate destination", len(report.Duplicates))
		if len(report.Duplicates) != 1 {
			summary += "s"
		}
	}
	b.WriteString(r.styles.muted.Render(summary))
	b.WriteString("\n")
	return b.String()
}

// Warn writes a styled warning line
func (r *Renderer) Warn(format string, args ...interface{}) {
	fmt.Fprintln(r.w, r.styles.warning.Render("warning: ")+fmt.Sprintf(format, args...))
}

// Success writes a styled title line
func (r *Renderer) Success(format string, args ...interface{}) {
	fmt.Fprintln(r.w, r.styles.title.Render(fmt.Sprintf(format, args...)))
}

// Error writes err the way the CLI reports fatal failures
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.w, r.styles.failure.Render(fmt.Sprintf("Error: %v", err)))
}
