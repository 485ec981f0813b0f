package check

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// DoLetOrder wants let bindings inside a do-block declared just above
// their first use, bottom-up. Advisory: moving a statement reorders
// siblings, which fixes never do.
type DoLetOrder struct{}

// NewDoLetOrder builds the rule.
func NewDoLetOrder() *DoLetOrder {
	return &DoLetOrder{}
}

// ID returns the stable rule identifier.
func (*DoLetOrder) ID() string { return "do/let-bottom-up" }

// AppliesTo names the do-block, which sees its statements in sequence.
func (*DoLetOrder) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindDo}
}

// Advisory reports that this rule never re-layouts.
func (*DoLetOrder) Advisory() bool { return true }

// Check flags a let statement whose binding is not referenced by the
// statement that follows it.
func (*DoLetOrder) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	for i, c := range n.Children {
		if c.Kind != syntax.KindLet || i+1 >= len(n.Children) {
			continue
		}

		binding := c.FirstChild(syntax.KindBinding)
		if binding == nil || len(binding.Children) == 0 {
			continue
		}
		name := strings.TrimSpace(m.Text(binding.Children[0]))
		if name == "" {
			continue
		}

		if !referencesWord(m.Text(n.Children[i+1]), name) {
			return &style.Violation{
				Span:    c.Span,
				Message: fmt.Sprintf("binding %s is not used by the next statement; move the let down to where it is needed", name),
			}
		}
	}
	return nil
}

// Fix returns the layout unchanged.
func (*DoLetOrder) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}

// referencesWord reports whether name occurs in text as a whole word.
func referencesWord(text, name string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], name)
		if idx < 0 {
			return false
		}
		idx += start

		beforeOK := idx == 0 || !identRune(rune(text[idx-1]))
		end := idx + len(name)
		afterOK := end >= len(text) || !identRune(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func identRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}
