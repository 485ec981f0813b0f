package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// IfAlign places then and else directly under the condition of a
// multi-line if:
//
//	if ready
//	   then launch
//	   else wait
//
// (then/else columns equal the condition's column).
type IfAlign struct{}

// NewIfAlign builds the rule.
func NewIfAlign() *IfAlign {
	return &IfAlign{}
}

// ID returns the stable rule identifier.
func (*IfAlign) ID() string { return "if/align-then-else" }

// AppliesTo names if-expressions.
func (*IfAlign) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindIf}
}

// Advisory reports that this rule carries a fix.
func (*IfAlign) Advisory() bool { return false }

// Check flags a multi-line if whose then or else is off the
// condition's column.
func (*IfAlign) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline || len(n.Children) < 3 {
		return nil
	}

	want := n.Children[0].Span.StartCol
	tcol, tok := info.Anchor(layout.AnchorThen)
	ecol, eok := info.Anchor(layout.AnchorElse)
	if tok && eok && tcol == want && ecol == want {
		return nil
	}

	return &style.Violation{
		Message: fmt.Sprintf("then/else not aligned under the condition (column %d)", want),
	}
}

// Fix puts then and else on their own lines at the condition's column.
func (*IfAlign) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	want := n.Children[0].Span.StartCol
	fixed := info.Clone()
	fixed.Multiline = true
	for i := range fixed.ChildCols {
		if i == 0 {
			fixed.ChildCols[i] = 0
			continue
		}
		fixed.ChildCols[i] = want
		fixed.ChildGaps[i] = 0
	}
	if fixed.Anchors == nil {
		fixed.Anchors = make(map[layout.Anchor][]int)
	}
	fixed.Anchors[layout.AnchorThen] = []int{want}
	fixed.Anchors[layout.AnchorElse] = []int{want}
	return fixed
}
