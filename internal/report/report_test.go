package report

import (
	"testing"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/frontend"
	"github.com/donaldgifford/hstyle/internal/rules"
	"github.com/donaldgifford/hstyle/internal/style"
	"github.com/donaldgifford/hstyle/internal/syntax"
	"github.com/donaldgifford/hstyle/internal/testutil"
)

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

func TestRenderWithFixPreview(t *testing.T) {
	cfg := &config.DefaultConfig().Style
	ruleSet := rules.All(cfg)

	src := "data Suit = Hearts | Spades deriving (Eq)\n"
	data := node(syntax.KindData, span(1, 1, 1, 42),
		node(syntax.KindIdent, span(1, 6, 1, 10)),
		node(syntax.KindConstructor, span(1, 13, 1, 19)),
		node(syntax.KindConstructor, span(1, 22, 1, 28)),
		node(syntax.KindDeriving, span(1, 29, 1, 42)))

	violations, m, err := style.Evaluate(data, src, ruleSet)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	got := New(cfg, ruleSet).Render("suit.hs", m, violations)
	want := "suit.hs:1:1: data/multiline-alternatives: sum type with 2 alternatives on one line; lay the alternatives out vertically\n" +
		"    -data Suit = Hearts | Spades deriving (Eq)\n" +
		"    +data Suit\n" +
		"    +     = Hearts\n" +
		"    +     | Spades\n" +
		"    +     deriving (Eq)\n" +
		"suit.hs: 1 finding(s), 0 advisory\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderHidesAdvisory(t *testing.T) {
	cfg := &config.DefaultConfig().Style
	cfg.ShowAdvisory = false
	cfg.ShowFixPreview = false
	ruleSet := rules.All(cfg)

	src := "a = 1\nb = 2\n"
	mod := node(syntax.KindModule, span(1, 1, 2, 6),
		node(syntax.KindDecl, span(1, 1, 1, 6)),
		node(syntax.KindDecl, span(2, 1, 2, 6)))

	violations, m, err := style.Evaluate(mod, src, ruleSet)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	got := New(cfg, ruleSet).Render("Two.hs", m, violations)
	want := "Two.hs:2:1: decls/blank-line-between: no blank line before this declaration\n" +
		"Two.hs: 1 finding(s), 0 advisory\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderEmptyForCleanUnit(t *testing.T) {
	cfg := &config.DefaultConfig().Style
	ruleSet := rules.All(cfg)

	b := New(cfg, ruleSet)
	if got := b.Render("clean.hs", nil, nil); got != "" {
		t.Errorf("clean unit produced output: %q", got)
	}
}

func TestReportGolden(t *testing.T) {
	testutil.RunGoldenDir(t, "testdata", func(doc []byte) string {
		cfg := &config.DefaultConfig().Style
		// Previews are exercised by the unit tests; goldens pin the
		// finding lines.
		cfg.ShowFixPreview = false
		ruleSet := rules.All(cfg)

		unit, err := frontend.Decode(doc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		violations, m, err := style.Evaluate(unit.Tree, unit.Source, ruleSet)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		return New(cfg, ruleSet).Render(unit.Name, m, violations)
	})
}
