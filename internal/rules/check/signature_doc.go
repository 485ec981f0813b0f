package check

import (
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// SignatureDoc wants every top-level signature and data definition
// documented. Advisory: the checker cannot write the documentation.
type SignatureDoc struct{}

// NewSignatureDoc builds the rule.
func NewSignatureDoc() *SignatureDoc {
	return &SignatureDoc{}
}

// ID returns the stable rule identifier.
func (*SignatureDoc) ID() string { return "decls/signature-doc" }

// AppliesTo names the module so preceding siblings are visible.
func (*SignatureDoc) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindModule}
}

// Advisory reports that this rule never re-layouts.
func (*SignatureDoc) Advisory() bool { return true }

// Check flags the first undocumented signature or data definition.
func (*SignatureDoc) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	for i, c := range n.Children {
		if c.Kind != syntax.KindSignature && c.Kind != syntax.KindData {
			continue
		}
		if i > 0 && n.Children[i-1].Kind == syntax.KindDocComment {
			continue
		}
		return &style.Violation{
			Span:    c.Span,
			Message: "top-level definition has no documentation comment",
		}
	}
	return nil
}

// Fix returns the layout unchanged.
func (*SignatureDoc) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}
