// Package diff renders the change between the original and corrected text as
// a unified diff.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
)

// GitHub terminal light theme palette.
var (
	colorAdded   = lipgloss.Color("#1a7f37")
	colorRemoved = lipgloss.Color("#cf222e")
	colorHunk    = lipgloss.Color("#0969da")
	colorMuted   = lipgloss.Color("#656d76")
)

// Unified returns a unified diff between original and corrected with three
// lines of context. It returns an empty string when the texts are equal.
func Unified(original, corrected string) (string, error) {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(corrected),
		FromFile: "original",
		ToFile:   "corrected",
		Context:  3,
	}

	out, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return "", fmt.Errorf("diff: %w", err)
	}

	return out, nil
}

// Printer writes unified diffs, coloring them when w is a color-capable
// terminal.
type Printer struct {
	w io.Writer

	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
	header  lipgloss.Style
}

// NewPrinter creates a Printer for w. The color profile is detected from w,
// so pipes and files receive plain text.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		added:   r.NewStyle().Foreground(colorAdded),
		removed: r.NewStyle().Foreground(colorRemoved),
		hunk:    r.NewStyle().Foreground(colorHunk),
		header:  r.NewStyle().Bold(true).Foreground(colorMuted),
	}
}

// Print writes the diff between original and corrected. Nothing is written
// when the texts are equal.
func (p *Printer) Print(original, corrected string) error {
	out, err := Unified(original, corrected)
	if err != nil {
		return err
	}

	if out == "" {
		return nil
	}

	var sb strings.Builder
	for _, line := range strings.SplitAfter(out, "\n") {
		if line == "" {
			continue
		}

		body := strings.TrimSuffix(line, "\n")
		sb.WriteString(p.style(body).Render(body))
		sb.WriteString("\n")
	}

	_, err = io.WriteString(p.w, sb.String())
	return err
}

func (p *Printer) style(line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return p.header
	case strings.HasPrefix(line, "@@"):
		return p.hunk
	case strings.HasPrefix(line, "+"):
		return p.added
	case strings.HasPrefix(line, "-"):
		return p.removed
	default:
		return lipgloss.NewStyle()
	}
}
