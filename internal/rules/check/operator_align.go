package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// OperatorAlign requires the continuation lines of a multi-line
// operator chain to open at one shared column, operator first:
//
//	total = base
//	  + tax
//	  + tip
type OperatorAlign struct {
	width int
}

// NewOperatorAlign builds the rule from config.
func NewOperatorAlign(cfg *config.StyleConfig) *OperatorAlign {
	return &OperatorAlign{width: cfg.IndentWidth}
}

// ID returns the stable rule identifier.
func (*OperatorAlign) ID() string { return "expr/operator-align" }

// AppliesTo names infix applications.
func (*OperatorAlign) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindOpApp}
}

// Advisory reports that this rule carries a fix.
func (*OperatorAlign) Advisory() bool { return false }

// Check flags continuation lines that disagree on a column.
func (r *OperatorAlign) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline {
		return nil
	}

	first := 0
	for i := range n.Children {
		col := info.ChildCol(i)
		if col == 0 {
			continue
		}
		if first == 0 {
			first = col
			continue
		}
		if col != first {
			return &style.Violation{
				Span:    n.Children[i].Span,
				Message: fmt.Sprintf("operator line at column %d, previous lines at column %d", col, first),
			}
		}
	}
	return nil
}

// Fix aligns every continuation line at the first one's column, or one
// indent step in when the chain has no established column.
func (r *OperatorAlign) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	target := 0
	for i := range n.Children {
		if col := info.ChildCol(i); col != 0 {
			target = col
			break
		}
	}
	if target == 0 {
		target = info.Indent + r.width
	}

	fixed := info.Clone()
	for i := range fixed.ChildCols {
		if fixed.ChildCols[i] != 0 {
			fixed.ChildCols[i] = target
		}
	}
	return fixed
}
