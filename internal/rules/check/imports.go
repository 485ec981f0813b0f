package check

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// ImportOrder wants imports grouped project-local-first, alphabetical
// within each group, groups separated by a blank line. Advisory: the
// fix would reorder siblings, and fixes never change child order, so
// the corrected sequence is spelled out in the message instead.
type ImportOrder struct {
	localPrefixes []string
}

// NewImportOrder builds the rule from config.
func NewImportOrder(cfg *config.StyleConfig) *ImportOrder {
	return &ImportOrder{localPrefixes: cfg.LocalPrefixes}
}

// ID returns the stable rule identifier.
func (*ImportOrder) ID() string { return "imports/grouped-sorted" }

// AppliesTo names the module so the full import sequence is visible at
// once.
func (*ImportOrder) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindModule}
}

// Advisory reports that this rule never re-layouts.
func (*ImportOrder) Advisory() bool { return true }

// Check flags the first import that is out of order or in the wrong
// group.
func (r *ImportOrder) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	type imp struct {
		node  *syntax.Node
		name  string
		local bool
		group int
	}

	var imports []imp
	group := 0
	for i, c := range n.Children {
		if c.Kind != syntax.KindImport {
			continue
		}
		if len(imports) > 0 && info.ChildGap(i) > 0 {
			group++
		}
		name := importName(m.Text(c))
		imports = append(imports, imp{
			node:  c,
			name:  name,
			local: r.isLocal(name),
			group: group,
		})
	}

	seenNonLocal := false
	for i, im := range imports {
		if !im.local {
			seenNonLocal = true
		} else if seenNonLocal {
			return &style.Violation{
				Span:    im.node.Span,
				Message: fmt.Sprintf("project-local import %s belongs in the leading group", im.name),
			}
		}

		if i > 0 && imports[i-1].group == im.group && imports[i-1].name > im.name {
			return &style.Violation{
				Span: im.node.Span,
				Message: fmt.Sprintf("imports are not alphabetical within their group: %s sorts before %s",
					im.name, imports[i-1].name),
			}
		}
	}
	return nil
}

// Fix returns the layout unchanged.
func (*ImportOrder) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}

// isLocal reports whether the module name matches a configured
// project-local prefix.
func (r *ImportOrder) isLocal(name string) bool {
	for _, p := range r.localPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// importName extracts the module path from an import's source text,
// skipping the import and qualified keywords.
func importName(text string) string {
	for _, f := range strings.Fields(text) {
		switch f {
		case "import", "qualified":
			continue
		}
		return f
	}
	return ""
}
