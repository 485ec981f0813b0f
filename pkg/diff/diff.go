// Package diff renders compact line diffs for fix previews.
package diff

import (
	"fmt"
	"strings"
)

// Unified renders a labeled diff between oldText and newText. Returns
// an empty string if the inputs are identical. Previews cover a single
// construct, so every line is shown; there is no hunking.
func Unified(label, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", label)
	fmt.Fprintf(&b, "+++ %s (fixed)\n", label)
	b.WriteString(Lines(oldText, newText))
	return b.String()
}

// Lines renders a -/+/space line diff between two texts, computed from
// the longest common subsequence of their lines.
func Lines(oldText, newText string) string {
	a := splitLines(oldText)
	b := splitLines(newText)

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var out strings.Builder
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out.WriteString(" " + a[i] + "\n")
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out.WriteString("-" + a[i] + "\n")
			i++
		default:
			out.WriteString("+" + b[j] + "\n")
			j++
		}
	}
	for ; i < len(a); i++ {
		out.WriteString("-" + a[i] + "\n")
	}
	for ; j < len(b); j++ {
		out.WriteString("+" + b[j] + "\n")
	}
	return out.String()
}

// splitLines splits text into lines without trailing newlines. An
// empty text produces zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
