package check

import (
	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// ApplicationLayout forbids mixed application layout: either every
// argument rides the function's line, or every argument gets a line of
// its own.
type ApplicationLayout struct {
	width int
}

// NewApplicationLayout builds the rule from config.
func NewApplicationLayout(cfg *config.StyleConfig) *ApplicationLayout {
	return &ApplicationLayout{width: cfg.IndentWidth}
}

// ID returns the stable rule identifier.
func (*ApplicationLayout) ID() string { return "expr/application-layout" }

// AppliesTo names prefix applications.
func (*ApplicationLayout) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindApp}
}

// Advisory reports that this rule carries a fix.
func (*ApplicationLayout) Advisory() bool { return false }

// Check flags applications with some arguments inline and some broken
// out.
func (r *ApplicationLayout) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline || len(n.Children) < 3 {
		return nil
	}

	args := len(n.Children) - 1
	fresh := 0
	for i := 1; i < len(n.Children); i++ {
		if info.ChildCol(i) != 0 {
			fresh++
		}
	}

	if fresh == 0 || fresh == args {
		return nil
	}
	return &style.Violation{
		Message: "application mixes inline and broken-out arguments; use one layout for all of them",
	}
}

// Fix breaks every argument onto its own line, one indent step past
// the function.
func (r *ApplicationLayout) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fixed := info.Clone()
	fixed.Multiline = true
	for i := range fixed.ChildCols {
		if i == 0 {
			fixed.ChildCols[i] = 0
			continue
		}
		fixed.ChildCols[i] = info.Indent + r.width
	}
	return fixed
}
