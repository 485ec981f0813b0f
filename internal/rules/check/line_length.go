package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// LineLength enforces the soft column limit. Only line-owning,
// splittable constructs are flagged: a long atomic token (a string
// literal, say) is never broken, so a node with fewer than two
// children produces no finding.
type LineLength struct {
	max   int
	width int
}

// NewLineLength builds the rule from config.
func NewLineLength(cfg *config.StyleConfig) *LineLength {
	return &LineLength{max: cfg.MaxLineLength, width: cfg.IndentWidth}
}

// ID returns the stable rule identifier.
func (*LineLength) ID() string { return "layout/line-length" }

// AppliesTo lists the constructs worth splitting.
func (*LineLength) AppliesTo() []syntax.Kind {
	return []syntax.Kind{
		syntax.KindDecl, syntax.KindSignature, syntax.KindImport,
		syntax.KindApp, syntax.KindOpApp,
		syntax.KindList, syntax.KindTuple, syntax.KindRecord,
	}
}

// Advisory reports that this rule carries a fix.
func (*LineLength) Advisory() bool { return false }

// Check flags a single-line node that owns its line and runs past the
// limit.
func (r *LineLength) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if info.Multiline || len(n.Children) < 2 {
		return nil
	}
	if n.Span.EndCol-1 <= r.max {
		return nil
	}
	// Nested expressions on the same long line would all fire; only
	// the node that starts the line reports.
	if m.Source().FirstCol(n.Span.StartLine) != info.Indent {
		return nil
	}

	return &style.Violation{
		Message: fmt.Sprintf("line runs to column %d, limit is %d", n.Span.EndCol-1, r.max),
	}
}

// Fix breaks the node across lines: the first child stays on the head
// line, the rest land on their own lines one indent step in.
func (r *LineLength) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fixed := info.Clone()
	fixed.Multiline = true
	for i := range fixed.ChildCols {
		if i == 0 {
			fixed.ChildCols[i] = 0
			continue
		}
		fixed.ChildCols[i] = info.Indent + r.width
	}
	return fixed
}
