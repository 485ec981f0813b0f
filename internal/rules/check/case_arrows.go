package check

import (
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// CaseArrows aligns the -> arrows (and guard pipes, where present) of
// sibling case alternatives at one column.
type CaseArrows struct{}

// NewCaseArrows builds the rule.
func NewCaseArrows() *CaseArrows {
	return &CaseArrows{}
}

// ID returns the stable rule identifier.
func (*CaseArrows) ID() string { return "case/align-arrows" }

// AppliesTo names the case expression, whose Info aggregates the arrow
// columns of every alternative.
func (*CaseArrows) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindCase}
}

// Advisory reports that this rule carries a fix.
func (*CaseArrows) Advisory() bool { return false }

// Check flags alternatives whose arrows or guards disagree on a
// column.
func (*CaseArrows) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if len(n.ChildrenOf(syntax.KindCaseAlt)) < 2 || !info.Multiline {
		return nil
	}

	if !info.Aligned(layout.AnchorArrow) {
		return &style.Violation{
			Message: "case alternative arrows do not share a column",
		}
	}
	if !info.Aligned(layout.AnchorGuard) {
		return &style.Violation{
			Message: "case alternative guards do not share a column",
		}
	}
	return nil
}

// Fix pads every arrow out to the rightmost one.
func (*CaseArrows) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fixed := info.Clone()
	if fixed.Anchors == nil {
		fixed.Anchors = make(map[layout.Anchor][]int)
	}
	if cols := info.Anchors[layout.AnchorArrow]; len(cols) > 0 {
		fixed.Anchors[layout.AnchorArrow] = []int{maxCol(cols)}
	}
	if cols := info.Anchors[layout.AnchorGuard]; len(cols) > 0 {
		fixed.Anchors[layout.AnchorGuard] = []int{maxCol(cols)}
	}
	return fixed
}

func maxCol(cols []int) int {
	max := cols[0]
	for _, c := range cols[1:] {
		if c > max {
			max = c
		}
	}
	return max
}
