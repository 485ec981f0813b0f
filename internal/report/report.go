// Package report renders violation sequences as stable text reports.
package report

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/render"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/pkg/diff"
)

// Builder renders reports. The violation sequence arrives in
// evaluation order (source position, then registry order), which is
// already the report order; the builder preserves it, so identical
// input yields a byte-identical report.
type Builder struct {
	cfg   *config.StyleConfig
	rules style.Rules
}

// New creates a Builder for the given config and rule set.
func New(cfg *config.StyleConfig, rules style.Rules) *Builder {
	return &Builder{cfg: cfg, rules: rules}
}

// Render formats the violations of one source unit. The layout model
// is the one Evaluate produced; it backs the fix previews.
func (b *Builder) Render(unit string, m *layout.Model, violations []style.Violation) string {
	var out strings.Builder

	shown := 0
	advisory := 0
	for _, v := range violations {
		if v.Advisory {
			if !b.cfg.ShowAdvisory {
				continue
			}
			advisory++
		}
		shown++

		marker := ""
		if v.Advisory {
			marker = " (advisory)"
		}
		fmt.Fprintf(&out, "%s:%d:%d: %s%s: %s\n",
			unit, v.Span.StartLine, v.Span.StartCol, v.RuleID, marker, v.Message)

		if preview := b.preview(m, v); preview != "" {
			out.WriteString(preview)
		}
	}

	if shown == 0 {
		return ""
	}
	fmt.Fprintf(&out, "%s: %d finding(s), %d advisory\n", unit, shown, advisory)
	return out.String()
}

// preview renders the suggested layout as corrected text, shown as an
// indented diff against the current text. Advisory violations and
// constructs larger than the preview limit get no preview.
func (b *Builder) preview(m *layout.Model, v style.Violation) string {
	if v.Advisory || !b.cfg.ShowFixPreview || v.Node == nil {
		return ""
	}
	if v.Node.Span.EndLine-v.Node.Span.StartLine+1 > b.cfg.PreviewMaxLines {
		return ""
	}

	fixed, err := style.Canonicalize(v, m, b.rules)
	if err != nil {
		// A broken fix is surfaced as a finding about the tool itself
		// rather than silently dropped.
		return fmt.Sprintf("    (no preview: %v)\n", err)
	}

	before := padTo(m.Text(v.Node), v.Node.Span.StartCol)
	after := render.Node(v.Node, fixed, m)
	if before == after {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(diff.Lines(before, after), "\n"), "\n") {
		out.WriteString("    " + line + "\n")
	}
	return out.String()
}

// padTo left-pads the first line of text out to the given column, so
// the before text lines up with the renderer's output.
func padTo(text string, col int) string {
	if col <= 1 {
		return text
	}
	return strings.Repeat(" ", col-1) + text
}
