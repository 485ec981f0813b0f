package check

import (
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// LetPreferWhere flags a let-block sitting directly in a declaration's
// right-hand side; the guide prefers a where-clause there. Advisory:
// extracting to where can change scoping, so the rewrite stays manual.
type LetPreferWhere struct{}

// NewLetPreferWhere builds the rule.
func NewLetPreferWhere() *LetPreferWhere {
	return &LetPreferWhere{}
}

// ID returns the stable rule identifier.
func (*LetPreferWhere) ID() string { return "let/prefer-where" }

// AppliesTo names let-blocks.
func (*LetPreferWhere) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindLet}
}

// Advisory reports that this rule never re-layouts.
func (*LetPreferWhere) Advisory() bool { return true }

// Check flags a let whose nearest enclosing block structure is the
// declaration itself. Lets inside do-blocks or where bindings are
// idiomatic and stay.
func (*LetPreferWhere) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	enclosing := n.Enclosing(syntax.KindDo, syntax.KindWhere, syntax.KindDecl)
	if enclosing == nil || enclosing.Kind != syntax.KindDecl {
		return nil
	}

	return &style.Violation{
		Message: "let in a right-hand side; prefer a where clause (manual change: scoping may differ)",
	}
}

// Fix returns the layout unchanged.
func (*LetPreferWhere) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}
