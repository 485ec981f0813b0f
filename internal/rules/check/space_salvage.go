package check

import (
	"strings"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// SpaceSalvage notices a multi-line declaration that would fit on one
// line within the limit. The guide treats salvaging the space versus
// keeping the break as a judgment call, so this is advisory and never
// auto-fixed.
type SpaceSalvage struct {
	max int
}

// NewSpaceSalvage builds the rule from config.
func NewSpaceSalvage(cfg *config.StyleConfig) *SpaceSalvage {
	return &SpaceSalvage{max: cfg.MaxLineLength}
}

// ID returns the stable rule identifier.
func (*SpaceSalvage) ID() string { return "layout/space-salvage" }

// AppliesTo names declarations.
func (*SpaceSalvage) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindDecl}
}

// Advisory reports that this rule never re-layouts.
func (*SpaceSalvage) Advisory() bool { return true }

// Check flags a broken declaration that would fit unbroken. Blocks
// that are vertical for a structural reason (where, do) are left
// alone.
func (r *SpaceSalvage) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline {
		return nil
	}
	if n.FirstChild(syntax.KindWhere) != nil || n.FirstChild(syntax.KindDo) != nil {
		return nil
	}

	collapsed := len(strings.Join(strings.Fields(m.Text(n)), " "))
	if info.Indent-1+collapsed > r.max {
		return nil
	}

	return &style.Violation{
		Message: "declaration would fit on one line; salvaging the space is a judgment call",
	}
}

// Fix returns the layout unchanged.
func (*SpaceSalvage) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}
