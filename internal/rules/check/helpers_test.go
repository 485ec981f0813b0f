package check

import (
	"testing"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

func defaults() *config.StyleConfig {
	return &config.DefaultConfig().Style
}

func span(sl, sc, el, ec int) syntax.Span {
	return syntax.Span{StartLine: sl, StartCol: sc, EndLine: el, EndCol: ec}
}

func node(kind syntax.Kind, sp syntax.Span, children ...*syntax.Node) *syntax.Node {
	n := &syntax.Node{Kind: kind, Span: sp, Children: children}
	for _, c := range children {
		c.Parent = n
	}
	return n
}

func model(t *testing.T, root *syntax.Node, src string) *layout.Model {
	t.Helper()
	m, err := layout.Compute(root, layout.NewSource(src))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return m
}
