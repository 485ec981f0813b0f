package check

import (
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// DeclBlankLines requires a blank line between top-level declaration
// units. A unit is a declaration together with the doc comment and
// type signature attached above it; the pieces of one unit stay
// adjacent.
type DeclBlankLines struct{}

// NewDeclBlankLines builds the rule.
func NewDeclBlankLines() *DeclBlankLines {
	return &DeclBlankLines{}
}

// ID returns the stable rule identifier.
func (*DeclBlankLines) ID() string { return "decls/blank-line-between" }

// AppliesTo names the module so adjacent declarations are seen as a
// sequence.
func (*DeclBlankLines) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindModule}
}

// Advisory reports that this rule carries a fix.
func (*DeclBlankLines) Advisory() bool { return false }

// Check flags the first declaration unit not preceded by a blank line.
func (*DeclBlankLines) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	first := true
	for _, i := range unitStarts(n) {
		if first {
			first = false
			continue
		}
		if info.ChildGap(i) == 0 {
			return &style.Violation{
				Span:    n.Children[i].Span,
				Message: "no blank line before this declaration",
			}
		}
	}
	return nil
}

// Fix inserts one blank line before every unit after the first.
func (*DeclBlankLines) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fixed := info.Clone()
	first := true
	for _, i := range unitStarts(n) {
		if first {
			first = false
			continue
		}
		if fixed.ChildGaps[i] == 0 {
			fixed.ChildGaps[i] = 1
		}
	}
	return fixed
}

// unitStarts returns the child indices that begin a top-level
// declaration unit: a doc comment, signature, value declaration, or
// data definition that does not continue the unit started by its
// predecessor.
func unitStarts(module *syntax.Node) []int {
	var starts []int
	for i, c := range module.Children {
		switch c.Kind {
		case syntax.KindDocComment, syntax.KindSignature, syntax.KindDecl, syntax.KindData:
		default:
			continue
		}

		if i == 0 {
			continue // A leading doc comment documents the module itself.
		}

		prev := module.Children[i-1]
		switch {
		case prev.Kind == syntax.KindDocComment && c.Kind != syntax.KindDocComment:
			continue // Doc comment binds to what follows.
		case prev.Kind == syntax.KindSignature && c.Kind == syntax.KindDecl:
			continue // Signature and its definition stay together.
		}
		starts = append(starts, i)
	}
	return starts
}
