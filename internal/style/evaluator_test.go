package style

import (
	"errors"
	"reflect"
	"testing"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// stubRule lets tests script rule behavior.
type stubRule struct {
	id       string
	kinds    []syntax.Kind
	advisory bool
	check    func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation
	fix      func(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info
}

func (r *stubRule) ID() string               { return r.id }
func (r *stubRule) AppliesTo() []syntax.Kind { return r.kinds }
func (r *stubRule) Advisory() bool           { return r.advisory }

func (r *stubRule) Check(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
	if r.check == nil {
		return nil
	}
	return r.check(n, info, m)
}

func (r *stubRule) Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
	if r.fix == nil {
		return info
	}
	return r.fix(n, info, m)
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

// twoDeclModule builds:
//
//	a = x
//	b = y
func twoDeclModule() (*syntax.Node, string) {
	src := "a = x\nb = y\n"
	a := node(syntax.KindDecl, span(1, 1, 1, 6), node(syntax.KindIdent, span(1, 5, 1, 6)))
	b := node(syntax.KindDecl, span(2, 1, 2, 6), node(syntax.KindIdent, span(2, 5, 2, 6)))
	return node(syntax.KindModule, span(1, 1, 2, 6), a, b), src
}

func TestEvaluateVisitsEachApplicableNodeOnce(t *testing.T) {
	root, src := twoDeclModule()

	calls := 0
	counting := &stubRule{
		id:    "test/count",
		kinds: []syntax.Kind{syntax.KindIdent},
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			calls++
			return nil
		},
	}

	if _, _, err := Evaluate(root, src, Rules{counting}); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if calls != 2 {
		t.Errorf("rule ran %d times, want 2 (once per ident)", calls)
	}
}

func TestEvaluateOrderIsTraversalThenRegistry(t *testing.T) {
	root, src := twoDeclModule()

	mk := func(id string) *stubRule {
		return &stubRule{
			id:    id,
			kinds: []syntax.Kind{syntax.KindDecl},
			check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
				return &Violation{Message: "x"}
			},
		}
	}

	vs, _, err := Evaluate(root, src, Rules{mk("test/a"), mk("test/b")})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	var got []string
	for _, v := range vs {
		got = append(got, v.RuleID)
	}
	want := []string{"test/a", "test/b", "test/a", "test/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("violation order = %v, want %v", got, want)
	}

	if !vs[0].Span.Before(vs[2].Span) {
		t.Error("violations of the first declaration do not precede the second's")
	}
}

func TestEvaluateDeduplicates(t *testing.T) {
	root, src := twoDeclModule()

	fixedSpan := span(1, 1, 1, 2)
	dup := &stubRule{
		id:    "test/dup",
		kinds: []syntax.Kind{syntax.KindDecl},
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			return &Violation{Span: fixedSpan, Message: "same place every time"}
		},
	}

	vs, _, err := Evaluate(root, src, Rules{dup})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(vs) != 1 {
		t.Errorf("got %d violations, want 1 after (rule, span) dedupe", len(vs))
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	root, src := twoDeclModule()

	r := &stubRule{
		id:    "test/flag",
		kinds: []syntax.Kind{syntax.KindDecl},
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			return &Violation{Message: "flagged"}
		},
	}

	first, _, err := Evaluate(root, src, Rules{r})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, _, err := Evaluate(root, src, Rules{r})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated evaluation of identical input differs")
	}
}

func TestEvaluatePanicBecomesRuleInternalError(t *testing.T) {
	root, src := twoDeclModule()

	bad := &stubRule{
		id:    "test/panics",
		kinds: []syntax.Kind{syntax.KindDecl},
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			panic("boom")
		},
	}

	_, _, err := Evaluate(root, src, Rules{bad})
	var internal *RuleInternalError
	if !errors.As(err, &internal) {
		t.Fatalf("Evaluate err = %v, want RuleInternalError", err)
	}
	if internal.RuleID != "test/panics" {
		t.Errorf("RuleInternalError names %q, want test/panics", internal.RuleID)
	}
}

func TestEvaluateMalformedInput(t *testing.T) {
	root := node(syntax.KindModule, span(1, 1, 99, 1))

	_, _, err := Evaluate(root, "one line\n", Rules{})
	var malformed *layout.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("Evaluate err = %v, want MalformedInputError", err)
	}
}

func TestCanonicalizeVerifiesFix(t *testing.T) {
	root, src := twoDeclModule()

	// Flags declarations whose layout is not marked multiline; the fix
	// marks them multiline. Stable under re-check.
	good := &stubRule{
		id:    "test/good",
		kinds: []syntax.Kind{syntax.KindDecl},
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			if info.Multiline {
				return nil
			}
			return &Violation{Message: "single line"}
		},
		fix: func(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info {
			fixed := info.Clone()
			fixed.Multiline = true
			return fixed
		},
	}

	rules := Rules{good}
	vs, model, err := Evaluate(root, src, rules)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(vs) == 0 {
		t.Fatal("expected violations")
	}

	fixed, err := Canonicalize(vs[0], model, rules)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if !fixed.Multiline {
		t.Error("fix not applied")
	}
}

func TestCanonicalizeRejectsUnstableFix(t *testing.T) {
	root, src := twoDeclModule()

	unstable := &stubRule{
		id:    "test/unstable",
		kinds: []syntax.Kind{syntax.KindDecl},
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			return &Violation{Message: "always"}
		},
		// fix returns the layout unchanged, so the re-check fires again.
	}

	rules := Rules{unstable}
	vs, model, err := Evaluate(root, src, rules)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	_, err = Canonicalize(vs[0], model, rules)
	var internal *RuleInternalError
	if !errors.As(err, &internal) {
		t.Fatalf("Canonicalize err = %v, want RuleInternalError", err)
	}
	if internal.RuleID != "test/unstable" {
		t.Errorf("RuleInternalError names %q, want test/unstable", internal.RuleID)
	}
}

func TestCanonicalizeAdvisoryIsIdentity(t *testing.T) {
	root, src := twoDeclModule()

	advisory := &stubRule{
		id:       "test/advice",
		kinds:    []syntax.Kind{syntax.KindDecl},
		advisory: true,
		check: func(n *syntax.Node, info layout.Info, m *layout.Model) *Violation {
			return &Violation{Message: "think about it"}
		},
	}

	rules := Rules{advisory}
	vs, model, err := Evaluate(root, src, rules)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !vs[0].Advisory {
		t.Error("violation not marked advisory")
	}

	fixed, err := Canonicalize(vs[0], model, rules)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if !reflect.DeepEqual(fixed, model.Info(vs[0].Node)) {
		t.Error("advisory canonicalization changed the layout")
	}
}
