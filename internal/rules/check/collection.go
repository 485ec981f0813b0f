package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// CollectionLayout lays out multi-line list and tuple literals
// leading-comma style, commas under the opening bracket:
//
//	[ first
//	, second
//	]
type CollectionLayout struct{}

// NewCollectionLayout builds the rule.
func NewCollectionLayout() *CollectionLayout {
	return &CollectionLayout{}
}

// ID returns the stable rule identifier.
func (*CollectionLayout) ID() string { return "coll/literal-layout" }

// AppliesTo names list and tuple literals.
func (*CollectionLayout) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindList, syntax.KindTuple}
}

// Advisory reports that this rule carries a fix.
func (*CollectionLayout) Advisory() bool { return false }

// Check flags multi-line collections whose element lines or commas
// stray from the bracket column.
func (*CollectionLayout) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline || len(n.Children) < 2 {
		return nil
	}

	want := info.Indent
	for i := 1; i < len(n.Children); i++ {
		if col := info.ChildCol(i); col != want {
			return &style.Violation{
				Span:    n.Children[i].Span,
				Message: fmt.Sprintf("element line at column %d, want the bracket column %d", col, want),
			}
		}
	}
	if col, ok := info.Anchor(layout.AnchorComma); ok && col != want {
		return &style.Violation{
			Message: fmt.Sprintf("commas at column %d, want the bracket column %d", col, want),
		}
	}
	return nil
}

// Fix puts the first element beside the bracket and every other
// element on its own comma-led line at the bracket column.
func (*CollectionLayout) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fixed := info.Clone()
	fixed.Multiline = true
	for i := range fixed.ChildCols {
		if i == 0 {
			fixed.ChildCols[i] = 0
			continue
		}
		fixed.ChildCols[i] = info.Indent
	}
	if fixed.Anchors == nil {
		fixed.Anchors = make(map[layout.Anchor][]int)
	}
	fixed.Anchors[layout.AnchorComma] = []int{info.Indent}
	return fixed
}
