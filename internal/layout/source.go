package layout

import (
	"strings"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

// Source wraps the raw text of one source unit and provides
// line/column addressed access for layout measurement.
type Source struct {
	text  string
	lines []string
}

// NewSource splits text into lines. A trailing newline does not
// produce an extra empty line.
func NewSource(text string) *Source {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Source{text: text, lines: lines}
}

// Text returns the full source text.
func (s *Source) Text() string {
	return s.text
}

// LineCount returns the number of source lines.
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Line returns the 1-indexed line, without its newline. Out-of-range
// lines return the empty string; span validity is checked up front by
// Compute, so callers past that point never see a bad index.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// LineLen returns the length of the 1-indexed line in columns.
func (s *Source) LineLen(n int) int {
	return len([]rune(s.Line(n)))
}

// BlankLine reports whether the 1-indexed line is empty or
// whitespace-only.
func (s *Source) BlankLine(n int) bool {
	return strings.TrimSpace(s.Line(n)) == ""
}

// FirstCol returns the 1-indexed column of the first non-whitespace
// character on the line, or 0 for a blank line.
func (s *Source) FirstCol(n int) int {
	line := s.Line(n)
	for i, r := range []rune(line) {
		if r != ' ' && r != '\t' {
			return i + 1
		}
	}
	return 0
}

// Slice returns the text covered by the span. Multi-line spans keep
// their internal newlines.
func (s *Source) Slice(sp syntax.Span) string {
	if sp.StartLine == sp.EndLine {
		return sliceCols(s.Line(sp.StartLine), sp.StartCol, sp.EndCol)
	}

	var b strings.Builder
	b.WriteString(sliceCols(s.Line(sp.StartLine), sp.StartCol, s.LineLen(sp.StartLine)+1))
	for ln := sp.StartLine + 1; ln < sp.EndLine; ln++ {
		b.WriteByte('\n')
		b.WriteString(s.Line(ln))
	}
	b.WriteByte('\n')
	b.WriteString(sliceCols(s.Line(sp.EndLine), 1, sp.EndCol))
	return b.String()
}

// contains reports whether the span fits inside the source text.
func (s *Source) contains(sp syntax.Span) bool {
	if sp.StartLine < 1 || sp.EndLine > len(s.lines) || sp.EndLine < sp.StartLine {
		return false
	}
	if sp.StartCol < 1 || sp.EndCol < 1 {
		return false
	}
	if sp.StartCol > s.LineLen(sp.StartLine)+1 {
		return false
	}
	if sp.EndCol > s.LineLen(sp.EndLine)+1 {
		return false
	}
	if sp.StartLine == sp.EndLine && sp.EndCol < sp.StartCol {
		return false
	}
	return true
}

// sliceCols cuts [start, end) columns from a single line, 1-indexed.
func sliceCols(line string, start, end int) string {
	runes := []rune(line)
	if start < 1 {
		start = 1
	}
	if end > len(runes)+1 {
		end = len(runes) + 1
	}
	if start > end {
		return ""
	}
	return string(runes[start-1 : end-1])
}
