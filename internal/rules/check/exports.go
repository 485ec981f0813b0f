package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// ExplicitExports requires modules to carry an explicit export list.
// Advisory: inventing the list would change the module's interface.
type ExplicitExports struct{}

// NewExplicitExports builds the rule.
func NewExplicitExports() *ExplicitExports {
	return &ExplicitExports{}
}

// ID returns the stable rule identifier.
func (*ExplicitExports) ID() string { return "module/explicit-exports" }

// AppliesTo names the module node.
func (*ExplicitExports) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindModule}
}

// Advisory reports that this rule never re-layouts.
func (*ExplicitExports) Advisory() bool { return true }

// Check flags modules without an export list.
func (*ExplicitExports) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if n.FirstChild(syntax.KindExportList) != nil {
		return nil
	}

	return &style.Violation{
		Span: syntax.Span{
			StartLine: n.Span.StartLine, StartCol: n.Span.StartCol,
			EndLine: n.Span.StartLine, EndCol: n.Span.StartCol + 1,
		},
		Message: "module exports everything; list the exports explicitly",
	}
}

// Fix returns the layout unchanged.
func (*ExplicitExports) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}

// ExportAlign lays out multi-line export lists one export per line,
// leading-comma style, indented one step past the module keyword:
//
//	module Foo
//	  ( bar
//	  , baz
//	  ) where
type ExportAlign struct {
	width int
}

// NewExportAlign builds the rule from config.
func NewExportAlign(cfg *config.StyleConfig) *ExportAlign {
	return &ExportAlign{width: cfg.IndentWidth}
}

// ID returns the stable rule identifier.
func (*ExportAlign) ID() string { return "module/export-align" }

// AppliesTo names the export list, which sees all exports as siblings.
func (*ExportAlign) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindExportList}
}

// Advisory reports that this rule carries a fix.
func (*ExportAlign) Advisory() bool { return false }

// Check verifies that a multi-line export list opens every line at the
// same column, with the commas on that column.
func (r *ExportAlign) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if !info.Multiline || len(n.Children) == 0 {
		return nil
	}

	want := r.wantCol(n)
	for i := range n.Children {
		if i == 0 {
			continue // First export rides the opening parenthesis line.
		}
		if col := info.ChildCol(i); col != want {
			return &style.Violation{
				Span:    n.Children[i].Span,
				Message: fmt.Sprintf("export line starts at column %d, want column %d", col, want),
			}
		}
	}
	if col, ok := info.Anchor(layout.AnchorComma); ok && col != want {
		return &style.Violation{
			Message: fmt.Sprintf("export commas at column %d, want column %d", col, want),
		}
	}
	return nil
}

// Fix aligns every export line and comma at the target column.
func (r *ExportAlign) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	want := r.wantCol(n)
	fixed := info.Clone()
	fixed.Multiline = true
	for i := range fixed.ChildCols {
		if i == 0 {
			continue
		}
		fixed.ChildCols[i] = want
	}
	if fixed.Anchors == nil {
		fixed.Anchors = make(map[layout.Anchor][]int)
	}
	fixed.Anchors[layout.AnchorComma] = []int{want}
	return fixed
}

// wantCol is one indent step past the enclosing module's column.
func (r *ExportAlign) wantCol(n *syntax.Node) int {
	col := 1
	if n.Parent != nil {
		col = n.Parent.Span.StartCol
	}
	return col + r.width
}
