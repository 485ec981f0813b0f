package check

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// RecordFieldAlign aligns the :: (or =, for record literals) of every
// field in a multi-line record at one column past the longest field
// name. Inline doc comments sit to the right of a field and never move
// the anchor.
type RecordFieldAlign struct{}

// NewRecordFieldAlign builds the rule.
func NewRecordFieldAlign() *RecordFieldAlign {
	return &RecordFieldAlign{}
}

// ID returns the stable rule identifier.
func (*RecordFieldAlign) ID() string { return "data/record-field-align" }

// AppliesTo names the record, which sees all fields as siblings.
func (*RecordFieldAlign) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindRecord}
}

// Advisory reports that this rule carries a fix.
func (*RecordFieldAlign) Advisory() bool { return false }

// Check flags multi-line records whose field separators disagree or
// sit short of the alignment column.
func (r *RecordFieldAlign) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	fields := n.ChildrenOf(syntax.KindField)
	if !info.Multiline || len(fields) < 2 {
		return nil
	}

	anchor := layout.AnchorDoubleColon
	if len(info.Anchors[anchor]) == 0 {
		anchor = layout.AnchorEquals
	}
	if len(info.Anchors[anchor]) == 0 {
		return nil
	}

	want := fieldAnchorCol(fields)
	if col, ok := info.Anchor(anchor); !ok || col != want {
		return &style.Violation{
			Message: fmt.Sprintf("record field %s separators are not aligned at column %d", anchor, want),
		}
	}
	return nil
}

// Fix sets the shared separator column.
func (r *RecordFieldAlign) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	fields := n.ChildrenOf(syntax.KindField)
	fixed := info.Clone()
	if fixed.Anchors == nil {
		fixed.Anchors = make(map[layout.Anchor][]int)
	}

	anchor := layout.AnchorDoubleColon
	if len(info.Anchors[anchor]) == 0 && len(info.Anchors[layout.AnchorEquals]) > 0 {
		anchor = layout.AnchorEquals
	}
	fixed.Anchors[anchor] = []int{fieldAnchorCol(fields)}
	return fixed
}

// fieldAnchorCol is one column past the end of the longest field name.
func fieldAnchorCol(fields []*syntax.Node) int {
	max := 0
	for _, f := range fields {
		if len(f.Children) == 0 {
			continue
		}
		if end := f.Children[0].Span.EndCol; end > max {
			max = end
		}
	}
	return max + 1
}
