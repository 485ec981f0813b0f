package check

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// DataAlternatives lays out sum types with two or more constructors
// across lines, with = and every | sharing the column under the type
// name:
//
//	data Suit
//	     = Hearts
//	     | Spades
//	     deriving (Eq)
type DataAlternatives struct{}

// NewDataAlternatives builds the rule.
func NewDataAlternatives() *DataAlternatives {
	return &DataAlternatives{}
}

// ID returns the stable rule identifier.
func (*DataAlternatives) ID() string { return "data/multiline-alternatives" }

// AppliesTo names the data definition.
func (*DataAlternatives) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindData}
}

// Advisory reports that this rule carries a fix.
func (*DataAlternatives) Advisory() bool { return false }

// Check flags single-line sum types and misaligned =/| columns.
func (r *DataAlternatives) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	ctors := n.ChildrenOf(syntax.KindConstructor)
	if len(ctors) < 2 {
		return nil
	}

	if !info.Multiline {
		return &style.Violation{
			Message: fmt.Sprintf("sum type with %d alternatives on one line; lay the alternatives out vertically", len(ctors)),
		}
	}

	want := altCol(n)
	if !info.Aligned(layout.AnchorEquals, layout.AnchorPipe) {
		return &style.Violation{
			Message: "= and | of the alternatives do not share a column",
		}
	}
	if col, ok := info.Anchor(layout.AnchorEquals); ok && col != want {
		return &style.Violation{
			Message: fmt.Sprintf("alternatives aligned at column %d, want column %d (under the type name)", col, want),
		}
	}
	return nil
}

// Fix produces the vertical layout with every alternative line opening
// at the column under the type name.
func (r *DataAlternatives) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	want := altCol(n)
	fixed := info.Clone()
	fixed.Multiline = true
	for i, c := range n.Children {
		switch c.Kind {
		case syntax.KindConstructor, syntax.KindDeriving:
			fixed.ChildCols[i] = want
		default:
			fixed.ChildCols[i] = 0
		}
		fixed.ChildGaps[i] = 0
	}
	if fixed.Anchors == nil {
		fixed.Anchors = make(map[layout.Anchor][]int)
	}
	fixed.Anchors[layout.AnchorEquals] = []int{want}
	fixed.Anchors[layout.AnchorPipe] = []int{want}
	return fixed
}

// altCol is the column of the type name: the data keyword column plus
// len("data ").
func altCol(n *syntax.Node) int {
	return n.Span.StartCol + 5
}

// DerivingParens wants deriving clauses parenthesized even for a
// single class. Advisory: adding the parentheses is a token edit, not
// a re-layout, so the corrected clause is given in the message.
type DerivingParens struct{}

// NewDerivingParens builds the rule.
func NewDerivingParens() *DerivingParens {
	return &DerivingParens{}
}

// ID returns the stable rule identifier.
func (*DerivingParens) ID() string { return "data/deriving-parens" }

// AppliesTo names the data definition.
func (*DerivingParens) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindData}
}

// Advisory reports that this rule never re-layouts.
func (*DerivingParens) Advisory() bool { return true }

// Check flags an unparenthesized deriving clause.
func (*DerivingParens) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	d := n.FirstChild(syntax.KindDeriving)
	if d == nil {
		return nil
	}

	classes := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m.Text(d)), "deriving"))
	if classes == "" || strings.HasPrefix(classes, "(") {
		return nil
	}

	return &style.Violation{
		Span:    d.Span,
		Message: fmt.Sprintf("deriving clause is not parenthesized; write deriving (%s)", classes),
	}
}

// Fix returns the layout unchanged.
func (*DerivingParens) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}
