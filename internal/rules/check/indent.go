// Package check contains the individual style rule implementations.
package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// TwoSpaceIndent requires block children that start a fresh line to be
// indented exactly IndentWidth columns past their owner.
type TwoSpaceIndent struct {
	width int
}

// NewTwoSpaceIndent builds the rule from config.
func NewTwoSpaceIndent(cfg *config.StyleConfig) *TwoSpaceIndent {
	return &TwoSpaceIndent{width: cfg.IndentWidth}
}

// ID returns the stable rule identifier.
func (*TwoSpaceIndent) ID() string { return "indent/two-space" }

// AppliesTo lists generic block owners. Constructs with their own
// alignment discipline (data types, if, collections) have dedicated
// rules.
func (*TwoSpaceIndent) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindDecl, syntax.KindDo, syntax.KindLet, syntax.KindCase}
}

// Advisory reports that this rule carries a fix.
func (*TwoSpaceIndent) Advisory() bool { return false }

// Check flags the first fresh-line child whose column is off.
func (r *TwoSpaceIndent) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline {
		return nil
	}

	want := info.Indent + r.width
	for i, c := range n.Children {
		if c.Kind == syntax.KindWhere {
			continue // where placement belongs to where/indent-blank-line.
		}
		col := info.ChildCol(i)
		if col != 0 && col != want {
			return &style.Violation{
				Span:    c.Span,
				Message: fmt.Sprintf("indented to column %d, want column %d (two-space indent)", col, want),
			}
		}
	}
	return nil
}

// Fix moves every fresh-line child to the owner's column plus the
// indent width. Inline children stay inline.
func (r *TwoSpaceIndent) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fixed := info.Clone()
	want := info.Indent + r.width
	for i, c := range n.Children {
		if c.Kind == syntax.KindWhere {
			continue
		}
		if fixed.ChildCols[i] != 0 {
			fixed.ChildCols[i] = want
		}
	}
	return fixed
}
