package layout

import (
	"unicode"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

// segment is a single-line stretch of gap text between children.
type segment struct {
	line     int
	startCol int // 1-indexed, inclusive.
	endCol   int // exclusive.
}

// anchorsFor extracts anchor token columns for node kinds that carry
// them. Anchors live in the gap regions between children, so children
// (string literals included) never produce false hits.
func (m *Model) anchorsFor(n *syntax.Node) map[Anchor][]int {
	var out map[Anchor][]int
	add := func(a Anchor, cols []int) {
		if len(cols) == 0 {
			return
		}
		if out == nil {
			out = make(map[Anchor][]int)
		}
		out[a] = append(out[a], cols...)
	}

	switch n.Kind {
	case syntax.KindIf:
		gaps := m.gapSegments(n)
		add(AnchorThen, scanKeyword(m.src, gaps, "then"))
		add(AnchorElse, scanKeyword(m.src, gaps, "else"))

	case syntax.KindData:
		gaps := m.gapSegments(n)
		add(AnchorEquals, scanOperator(m.src, gaps, "="))
		add(AnchorPipe, scanOperator(m.src, gaps, "|"))

	case syntax.KindDecl, syntax.KindBinding, syntax.KindField, syntax.KindSignature:
		gaps := m.gapSegments(n)
		add(AnchorEquals, scanOperator(m.src, gaps, "="))
		add(AnchorDoubleColon, scanOperator(m.src, gaps, "::"))

	case syntax.KindCaseAlt:
		gaps := m.gapSegments(n)
		add(AnchorArrow, scanOperator(m.src, gaps, "->"))
		add(AnchorGuard, scanOperator(m.src, gaps, "|"))

	case syntax.KindList, syntax.KindTuple, syntax.KindExportList:
		add(AnchorComma, scanOperator(m.src, m.gapSegments(n), ","))

	case syntax.KindCase:
		// Aggregate the arrow and guard columns of the alternatives so
		// sibling-alignment checks can work from this node's Info alone.
		for _, alt := range n.ChildrenOf(syntax.KindCaseAlt) {
			ai := m.info[alt]
			add(AnchorArrow, ai.Anchors[AnchorArrow])
			add(AnchorGuard, ai.Anchors[AnchorGuard])
		}

	case syntax.KindRecord:
		add(AnchorComma, scanOperator(m.src, m.gapSegments(n), ","))
		for _, f := range n.ChildrenOf(syntax.KindField) {
			fi := m.info[f]
			add(AnchorDoubleColon, fi.Anchors[AnchorDoubleColon])
			add(AnchorEquals, fi.Anchors[AnchorEquals])
		}
	}

	return out
}

// gapSegments returns the single-line stretches of n's span not
// covered by any child.
func (m *Model) gapSegments(n *syntax.Node) []segment {
	var segs []segment

	line, col := n.Span.StartLine, n.Span.StartCol
	emit := func(endLine, endCol int) {
		for ln := line; ln <= endLine; ln++ {
			start := 1
			if ln == line {
				start = col
			}
			end := m.src.LineLen(ln) + 1
			if ln == endLine {
				end = endCol
			}
			if end > start {
				segs = append(segs, segment{line: ln, startCol: start, endCol: end})
			}
		}
	}

	for _, c := range n.Children {
		emit(c.Span.StartLine, c.Span.StartCol)
		line, col = c.Span.EndLine, c.Span.EndCol
	}
	emit(n.Span.EndLine, n.Span.EndCol)

	return segs
}

// scanKeyword finds every column where the keyword occurs as a whole
// word within the segments.
func scanKeyword(src *Source, segs []segment, kw string) []int {
	var cols []int
	for _, s := range segs {
		runes := []rune(src.Line(s.line))
		text := runes[s.startCol-1 : s.endCol-1]
		for i := 0; i+len(kw) <= len(text); i++ {
			if string(text[i:i+len(kw)]) != kw {
				continue
			}
			if i > 0 && wordRune(text[i-1]) {
				continue
			}
			if j := i + len(kw); j < len(text) && wordRune(text[j]) {
				continue
			}
			cols = append(cols, s.startCol+i)
		}
	}
	return cols
}

// scanOperator finds every column where the operator occurs within the
// segments, excluding occurrences embedded in a longer operator (== is
// not =, || is not |).
func scanOperator(src *Source, segs []segment, op string) []int {
	var cols []int
	for _, s := range segs {
		runes := []rune(src.Line(s.line))
		text := runes[s.startCol-1 : s.endCol-1]
		for i := 0; i+len(op) <= len(text); i++ {
			if string(text[i:i+len(op)]) != op {
				continue
			}
			if i > 0 && symbolRune(text[i-1]) {
				continue
			}
			if j := i + len(op); j < len(text) && symbolRune(text[j]) {
				continue
			}
			cols = append(cols, s.startCol+i)
		}
	}
	return cols
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

func symbolRune(r rune) bool {
	switch r {
	case '=', '|', '-', '>', '<', ':', '+', '*', '/', '.', '!', '&', '$', '~', '^':
		return true
	}
	return false
}
