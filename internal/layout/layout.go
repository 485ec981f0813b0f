// Package layout derives a semantic layout model from a parse tree and
// its source text.
package layout

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

// Anchor identifies a token column that sibling constructs are expected
// to share.
type Anchor int

const (
	// AnchorEquals is the column of = in declarations, bindings, and
	// sum-type definitions.
	AnchorEquals Anchor = iota
	// AnchorPipe is the column of | between sum-type alternatives.
	AnchorPipe
	// AnchorThen is the column of the then keyword.
	AnchorThen
	// AnchorElse is the column of the else keyword.
	AnchorElse
	// AnchorArrow is the column of -> in case alternatives.
	AnchorArrow
	// AnchorGuard is the column of a guard | in case alternatives.
	AnchorGuard
	// AnchorDoubleColon is the column of :: in signatures and record
	// fields.
	AnchorDoubleColon
	// AnchorComma is the column of , in multi-line collection and
	// export-list layouts.
	AnchorComma
)

// anchorNames is used in violation messages.
var anchorNames = map[Anchor]string{
	AnchorEquals:      "=",
	AnchorPipe:        "|",
	AnchorThen:        "then",
	AnchorElse:        "else",
	AnchorArrow:       "->",
	AnchorGuard:       "|",
	AnchorDoubleColon: "::",
	AnchorComma:       ",",
}

// String returns the token the anchor stands for.
func (a Anchor) String() string {
	if s, ok := anchorNames[a]; ok {
		return s
	}
	return "?"
}

// Info is the layout of a single node: where it sits, how its children
// are placed, and which anchor tokens appear at which columns. Info
// values are immutable once computed; a fix produces a new value.
type Info struct {
	// Indent is the 1-indexed column of the node's first token.
	Indent int

	// Multiline is true when the node's span covers more than one line.
	Multiline bool

	// ChildCols holds, per child, the column at which the child's line
	// begins (the line's first token, which may be a separator token
	// such as = or , rather than the child itself). Zero means the
	// child continues the previous line.
	ChildCols []int

	// ChildGaps holds, per child, the number of blank lines
	// immediately before the child's first line.
	ChildGaps []int

	// Anchors maps each anchor kind to every column it occurs at
	// within this node. Alignment holds when all columns agree.
	Anchors map[Anchor][]int
}

// Clone returns a deep copy, the starting point for every fix. The
// original Info is never mutated.
func (i Info) Clone() Info {
	c := i
	c.ChildCols = append([]int(nil), i.ChildCols...)
	c.ChildGaps = append([]int(nil), i.ChildGaps...)
	if i.Anchors != nil {
		c.Anchors = make(map[Anchor][]int, len(i.Anchors))
		for a, cols := range i.Anchors {
			c.Anchors[a] = append([]int(nil), cols...)
		}
	}
	return c
}

// Anchor returns the single agreed column of the anchor. ok is false
// when the anchor is absent or its occurrences disagree.
func (i Info) Anchor(a Anchor) (int, bool) {
	cols := i.Anchors[a]
	if len(cols) == 0 {
		return 0, false
	}
	for _, c := range cols[1:] {
		if c != cols[0] {
			return 0, false
		}
	}
	return cols[0], true
}

// Aligned reports whether every occurrence of all given anchors shares
// one column. Absent anchors are ignored; at least one occurrence must
// exist for the result to be meaningful.
func (i Info) Aligned(anchors ...Anchor) bool {
	first := 0
	seen := false
	for _, a := range anchors {
		for _, c := range i.Anchors[a] {
			if !seen {
				first = c
				seen = true
			} else if c != first {
				return false
			}
		}
	}
	return true
}

// ChildCol returns the line-start column for child i, or 0 when the
// child is inline. Out-of-range indices return 0.
func (i Info) ChildCol(idx int) int {
	if idx < 0 || idx >= len(i.ChildCols) {
		return 0
	}
	return i.ChildCols[idx]
}

// ChildGap returns the number of blank lines before child i.
func (i Info) ChildGap(idx int) int {
	if idx < 0 || idx >= len(i.ChildGaps) {
		return 0
	}
	return i.ChildGaps[idx]
}

// MalformedInputError reports a tree whose spans do not fit the source
// text. It is fatal for the source unit that produced it.
type MalformedInputError struct {
	Span   syntax.Span
	Reason string
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s at %d:%d-%d:%d",
		e.Reason, e.Span.StartLine, e.Span.StartCol, e.Span.EndLine, e.Span.EndCol)
}

// Model holds the computed Info for every node of one source unit.
type Model struct {
	src  *Source
	info map[*syntax.Node]Info
}

// Compute builds the layout model for the whole tree in one pass.
// It validates every span against the source text and fails with
// MalformedInputError on the first inconsistency; no partial model is
// produced.
func Compute(root *syntax.Node, src *Source) (*Model, error) {
	m := &Model{src: src, info: make(map[*syntax.Node]Info)}
	if err := m.compute(root); err != nil {
		return nil, err
	}
	return m, nil
}

// Source returns the unit's source text wrapper.
func (m *Model) Source() *Source {
	return m.src
}

// Info returns the computed layout of the node. Nodes outside the tree
// the model was computed for yield a zero Info.
func (m *Model) Info(n *syntax.Node) Info {
	return m.info[n]
}

// Text returns the source text covered by the node.
func (m *Model) Text(n *syntax.Node) string {
	return m.src.Slice(n.Span)
}

// compute fills in Info for n and its descendants, children first so
// parent anchor aggregation can read child results.
func (m *Model) compute(n *syntax.Node) error {
	if !m.src.contains(n.Span) {
		return &MalformedInputError{Span: n.Span, Reason: "span out of bounds"}
	}

	for _, c := range n.Children {
		if outsideParent(c.Span, n.Span) {
			return &MalformedInputError{Span: c.Span, Reason: "child span outside parent"}
		}
		if err := m.compute(c); err != nil {
			return err
		}
	}

	info := Info{
		Indent:    n.Span.StartCol,
		Multiline: n.Span.Multiline(),
		ChildCols: make([]int, len(n.Children)),
		ChildGaps: make([]int, len(n.Children)),
		Anchors:   m.anchorsFor(n),
	}

	prevLine := n.Span.StartLine
	for i, c := range n.Children {
		if c.Span.StartLine > prevLine {
			info.ChildCols[i] = m.src.FirstCol(c.Span.StartLine)
			for ln := prevLine + 1; ln < c.Span.StartLine; ln++ {
				if m.src.BlankLine(ln) {
					info.ChildGaps[i]++
				}
			}
		}
		prevLine = c.Span.EndLine
	}

	m.info[n] = info
	return nil
}

// outsideParent reports whether the child span escapes the parent span.
func outsideParent(child, parent syntax.Span) bool {
	if child.StartLine < parent.StartLine || child.EndLine > parent.EndLine {
		return true
	}
	if child.StartLine == parent.StartLine && child.StartCol < parent.StartCol {
		return true
	}
	if child.EndLine == parent.EndLine && child.EndCol > parent.EndCol {
		return true
	}
	return false
}
