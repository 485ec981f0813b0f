// Package render turns a node plus a layout into corrected source
// text. It is the output half of the canonicalizer: the rule computes
// where things go, the renderer puts them there.
package render

import (
	"strings"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// Node renders the node according to the given layout. Child text is
// taken verbatim from the source (re-indented as needed); only this
// node's line breaks, columns, and blank lines are under the layout's
// control, which keeps fixes local.
func Node(n *syntax.Node, info layout.Info, m *layout.Model) string {
	if len(n.Children) == 0 {
		return pad(info.Indent-1) + collapse(m.Text(n))
	}

	if n.Kind == syntax.KindCase {
		if col, ok := info.Anchor(layout.AnchorArrow); ok {
			return renderCase(n, info, m, col)
		}
	}

	if n.Kind == syntax.KindRecord && info.Multiline {
		for _, a := range []layout.Anchor{layout.AnchorDoubleColon, layout.AnchorEquals} {
			if col, ok := info.Anchor(a); ok {
				return renderRecord(n, info, m, a, col)
			}
		}
	}

	if !info.Multiline {
		return renderSingleLine(n, info, m)
	}
	return renderMultiline(n, info, m)
}

// renderSingleLine collapses the whole node onto one line.
func renderSingleLine(n *syntax.Node, info layout.Info, m *layout.Model) string {
	var b strings.Builder
	b.WriteString(pad(info.Indent - 1))
	b.WriteString(collapse(headText(n, m)))
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(collapse(gapText(n, i, m)))
		}
		b.WriteString(collapse(m.Text(c)))
	}
	b.WriteString(collapse(tailText(n, m)))
	return strings.TrimRight(b.String(), " ")
}

// renderMultiline places each child according to ChildCols/ChildGaps.
// A child with a nonzero column starts a fresh line there; the
// separator token from the gap before it (=, |, then, comma, ...)
// leads the line.
func renderMultiline(n *syntax.Node, info layout.Info, m *layout.Model) string {
	var lines []string
	cur := pad(info.Indent-1) + strings.TrimRight(collapse(headText(n, m)), " ")

	for i, c := range n.Children {
		gap := ""
		if i > 0 {
			gap = gapText(n, i, m)
		}

		col := info.ChildCol(i)
		if col == 0 {
			// Child continues the current line.
			if i > 0 {
				cur += collapse(gap)
			} else if !strings.HasSuffix(cur, " ") && cur != "" {
				cur += " "
			}
			cur += shiftTail(m.Text(c), len(cur)+1-c.Span.StartCol)
			continue
		}

		lines = append(lines, cur)
		for g := 0; g < info.ChildGap(i); g++ {
			lines = append(lines, "")
		}

		token := strings.TrimSpace(gap)
		cur = pad(col - 1)
		if token != "" {
			cur += token + " "
		}
		cur += shiftTail(m.Text(c), len(cur)+1-c.Span.StartCol)
	}
	lines = append(lines, cur)

	if tail := strings.TrimSpace(tailText(n, m)); tail != "" {
		lines = append(lines, pad(info.Indent-1)+tail)
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimRight(l, " "))
	}
	return strings.Join(out, "\n")
}

// renderRecord is renderMultiline with the field separators (:: or =)
// padded out to one shared column.
func renderRecord(n *syntax.Node, info layout.Info, m *layout.Model, sep layout.Anchor, sepCol int) string {
	var lines []string
	cur := pad(info.Indent-1) + strings.TrimRight(collapse(headText(n, m)), " ")

	for i, c := range n.Children {
		gap := ""
		if i > 0 {
			gap = gapText(n, i, m)
		}

		col := info.ChildCol(i)
		if col == 0 {
			if i > 0 {
				cur += collapse(gap)
			} else if !strings.HasSuffix(cur, " ") && cur != "" {
				cur += " "
			}
			cur += fieldText(c, m, sep, sepCol, len(cur)+1)
			continue
		}

		lines = append(lines, cur)
		for g := 0; g < info.ChildGap(i); g++ {
			lines = append(lines, "")
		}

		token := strings.TrimSpace(gap)
		cur = pad(col - 1)
		if token != "" {
			cur += token + " "
		}
		cur += fieldText(c, m, sep, sepCol, len(cur)+1)
	}
	lines = append(lines, cur)

	if tail := strings.TrimSpace(tailText(n, m)); tail != "" {
		lines = append(lines, pad(info.Indent-1)+tail)
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimRight(l, " "))
	}
	return strings.Join(out, "\n")
}

// fieldText renders one field with its separator at sepCol. Fields
// without the separator, and multi-line fields, are carried over
// unchanged.
func fieldText(c *syntax.Node, m *layout.Model, sep layout.Anchor, sepCol, lineCol int) string {
	fi := m.Info(c)
	orig, ok := fi.Anchor(sep)
	if c.Kind != syntax.KindField || !ok || c.Span.Multiline() {
		return shiftTail(m.Text(c), lineCol-c.Span.StartCol)
	}

	line := m.Source().Line(c.Span.StartLine)
	token := sep.String()
	before := strings.TrimRight(sliceRunes(line, c.Span.StartCol, orig), " ")
	after := strings.TrimSpace(sliceRunes(line, orig+len(token), c.Span.EndCol))

	shifted := lineCol + len([]rune(before))
	padWidth := sepCol - shifted
	if padWidth < 1 {
		padWidth = 1
	}
	return before + pad(padWidth) + token + " " + after
}

// renderCase lays out a case expression with every alternative's arrow
// padded to the given column. The head line (case ... of, scrutinee
// included) is collapsed as-is; only the alternatives are repositioned.
func renderCase(n *syntax.Node, info layout.Info, m *layout.Model, arrowCol int) string {
	firstAlt := -1
	for i, c := range n.Children {
		if c.Kind == syntax.KindCaseAlt {
			firstAlt = i
			break
		}
	}
	if firstAlt < 0 {
		return renderMultiline(n, info, m)
	}

	head := m.Source().Slice(syntax.Span{
		StartLine: n.Span.StartLine, StartCol: n.Span.StartCol,
		EndLine: n.Children[firstAlt].Span.StartLine, EndCol: n.Children[firstAlt].Span.StartCol,
	})

	lines := []string{pad(info.Indent-1) + strings.TrimRight(collapse(head), " ")}
	for i := firstAlt; i < len(n.Children); i++ {
		col := info.ChildCol(i)
		if col == 0 {
			col = info.Indent + 2
		}
		lines = append(lines, pad(col-1)+renderAlt(n.Children[i], m, arrowCol, col))
	}
	return strings.Join(lines, "\n")
}

// renderAlt renders one case alternative with its arrow at arrowCol.
// Multi-line alternatives are carried over with their bodies
// re-indented rather than re-flowed.
func renderAlt(alt *syntax.Node, m *layout.Model, arrowCol, lineCol int) string {
	ai := m.Info(alt)
	src := m.Source()

	origArrow, ok := ai.Anchor(layout.AnchorArrow)
	if !ok || alt.Span.Multiline() {
		return shiftTail(m.Text(alt), lineCol-alt.Span.StartCol)
	}

	line := src.Line(alt.Span.StartLine)
	before := strings.TrimRight(sliceRunes(line, alt.Span.StartCol, origArrow), " ")
	after := strings.TrimSpace(sliceRunes(line, origArrow+2, alt.Span.EndCol))

	// Columns are absolute; the pattern itself moves to lineCol, so the
	// arrow pad is measured from the shifted pattern end.
	shifted := lineCol + len([]rune(before))
	padWidth := arrowCol - shifted
	if padWidth < 1 {
		padWidth = 1
	}
	return before + pad(padWidth) + "-> " + after
}

// headText is the node's text before its first child.
func headText(n *syntax.Node, m *layout.Model) string {
	first := n.Children[0]
	return m.Source().Slice(syntax.Span{
		StartLine: n.Span.StartLine, StartCol: n.Span.StartCol,
		EndLine: first.Span.StartLine, EndCol: first.Span.StartCol,
	})
}

// gapText is the node's text between child i-1 and child i.
func gapText(n *syntax.Node, i int, m *layout.Model) string {
	prev, next := n.Children[i-1], n.Children[i]
	return m.Source().Slice(syntax.Span{
		StartLine: prev.Span.EndLine, StartCol: prev.Span.EndCol,
		EndLine: next.Span.StartLine, EndCol: next.Span.StartCol,
	})
}

// tailText is the node's text after its last child.
func tailText(n *syntax.Node, m *layout.Model) string {
	last := n.Children[len(n.Children)-1]
	return m.Source().Slice(syntax.Span{
		StartLine: last.Span.EndLine, StartCol: last.Span.EndCol,
		EndLine: n.Span.EndLine, EndCol: n.Span.EndCol,
	})
}

// collapse folds every whitespace run (newlines included) into a
// single space, preserving whether the text began or ended with
// whitespace. Atomic tokens are never split, only the space between
// them is rewritten.
func collapse(s string) string {
	if s == "" {
		return ""
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}

	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\n") != s {
		out += " "
	}
	return out
}

// shiftTail re-indents the continuation lines of a multi-line text by
// delta columns; the first line is left for the caller to place.
func shiftTail(text string, delta int) string {
	if delta == 0 || !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if delta > 0 {
			lines[i] = pad(delta) + lines[i]
			continue
		}
		trim := -delta
		cut := 0
		for cut < trim && cut < len(lines[i]) && lines[i][cut] == ' ' {
			cut++
		}
		lines[i] = lines[i][cut:]
	}
	return strings.Join(lines, "\n")
}

func pad(w int) string {
	if w <= 0 {
		return ""
	}
	return strings.Repeat(" ", w)
}

func sliceRunes(line string, start, end int) string {
	runes := []rune(line)
	if start < 1 {
		start = 1
	}
	if end > len(runes)+1 {
		end = len(runes) + 1
	}
	if start >= end {
		return ""
	}
	return string(runes[start-1 : end-1])
}
