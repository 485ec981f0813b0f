package check

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// CompositionChain suggests laying out long single-line composition
// chains one stage per line. Advisory: whether to break is a judgment
// call the guide leaves open.
type CompositionChain struct {
	minStages int
	maxLine   int
}

// NewCompositionChain builds the rule from config.
func NewCompositionChain(cfg *config.StyleConfig) *CompositionChain {
	return &CompositionChain{minStages: cfg.CompositionLimit, maxLine: cfg.MaxLineLength}
}

// ID returns the stable rule identifier.
func (*CompositionChain) ID() string { return "expr/composition-chain" }

// AppliesTo names infix applications; only . chains match.
func (*CompositionChain) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindOpApp}
}

// Advisory reports that this rule never re-layouts.
func (*CompositionChain) Advisory() bool { return true }

// Check flags a long inline composition chain.
func (r *CompositionChain) Check(n *syntax.Node, info layout.Info, m *layout.Model) *style.Violation {
	if info.Multiline || len(n.Children) < r.minStages {
		return nil
	}
	if !isComposition(n, m) {
		return nil
	}
	if n.Span.EndCol-1 <= r.maxLine {
		return nil
	}

	return &style.Violation{
		Message: fmt.Sprintf("composition chain with %d stages overruns the line; consider one stage per line", len(n.Children)),
	}
}

// Fix returns the layout unchanged.
func (*CompositionChain) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	return info
}

// isComposition reports whether every operator between the children is
// the composition dot.
func isComposition(n *syntax.Node, m *layout.Model) bool {
	if len(n.Children) < 2 {
		return false
	}
	src := m.Source()
	for i := 1; i < len(n.Children); i++ {
		prev, next := n.Children[i-1], n.Children[i]
		gap := src.Slice(syntax.Span{
			StartLine: prev.Span.EndLine, StartCol: prev.Span.EndCol,
			EndLine: next.Span.StartLine, EndCol: next.Span.StartCol,
		})
		if strings.TrimSpace(gap) != "." {
			return false
		}
	}
	return true
}
