package check

import (
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// ModuleHeaderDoc requires every module to open with a documentation
// comment. Advisory: the checker cannot write the documentation.
type ModuleHeaderDoc struct{}

// NewModuleHeaderDoc builds the rule.
func NewModuleHeaderDoc() *ModuleHeaderDoc {
	return &ModuleHeaderDoc{}
}

// ID returns the stable rule identifier.
func (*ModuleHeaderDoc) ID() string { return "module/header-doc" }

// AppliesTo names the module node.
func (*ModuleHeaderDoc) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindModule}
}

// Advisory reports that this rule never re-layouts.
func (*ModuleHeaderDoc) Advisory() bool { return true }

// Check flags a module whose first child is not a doc comment.
func (*ModuleHeaderDoc) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if len(n.Children) > 0 && n.Children[0].Kind == syntax.KindDocComment {
		return nil
	}

	return &style.Violation{
		Span: syntax.Span{
			StartLine: n.Span.StartLine, StartCol: n.Span.StartCol,
			EndLine: n.Span.StartLine, EndCol: n.Span.StartCol + 1,
		},
		Message: "module does not open with a documentation comment",
	}
}

// Fix returns the layout unchanged.
func (*ModuleHeaderDoc) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}
