package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// WhereClause places a declaration's where-clause on its own line, two
// columns in, with a blank line above it:
//
//	render x = body
//
//	  where
//	    body = ...
type WhereClause struct {
	width int
}

// NewWhereClause builds the rule from config.
func NewWhereClause(cfg *config.StyleConfig) *WhereClause {
	return &WhereClause{width: cfg.IndentWidth}
}

// ID returns the stable rule identifier.
func (*WhereClause) ID() string { return "where/indent-blank-line" }

// AppliesTo names the declaration that owns the where-clause.
func (*WhereClause) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindDecl}
}

// Advisory reports that this rule carries a fix.
func (*WhereClause) Advisory() bool { return false }

// Check flags a where-clause off its column or missing its blank line.
func (r *WhereClause) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	idx, w := whereChild(n)
	if w == nil {
		return nil
	}

	want := info.Indent + r.width
	if col := info.ChildCol(idx); col != want {
		return &style.Violation{
			Span:    w.Span,
			Message: fmt.Sprintf("where at column %d, want column %d", col, want),
		}
	}
	if info.ChildGap(idx) == 0 {
		return &style.Violation{
			Span:    w.Span,
			Message: "no blank line before the where clause",
		}
	}
	return nil
}

// Fix moves the where-clause to its column and inserts the blank line.
func (r *WhereClause) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	idx, w := whereChild(n)
	if w == nil {
		return info
	}

	fixed := info.Clone()
	fixed.Multiline = true
	fixed.ChildCols[idx] = info.Indent + r.width
	if fixed.ChildGaps[idx] == 0 {
		fixed.ChildGaps[idx] = 1
	}
	return fixed
}

// whereChild returns the index and node of the declaration's
// where-clause, or (0, nil).
func whereChild(n *syntax.Node) (int, *syntax.Node) {
	for i, c := range n.Children {
		if c.Kind == syntax.KindWhere {
			return i, c
		}
	}
	return 0, nil
}
