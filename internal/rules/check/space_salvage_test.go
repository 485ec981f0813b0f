package check

import (
	"testing"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

func TestSpaceSalvage(t *testing.T) {
	r := NewSpaceSalvage(defaults())

	src := "answer =\n    42\n"
	decl := node(syntax.KindDecl, span(1, 1, 2, 7),
		node(syntax.KindLiteral, span(2, 5, 2, 7)))
	m := model(t, decl, src)

	v := r.Check(decl, m.Info(decl), m)
	if v == nil {
		t.Fatal("salvageable break not flagged")
	}
	if !r.Advisory() {
		t.Error("salvage is a judgment call; rule should be advisory")
	}
}

func TestSpaceSalvageLeavesStructuralBreaks(t *testing.T) {
	r := NewSpaceSalvage(defaults())

	src := "f x = y\n\n  where\n    y = 1\n"
	decl := node(syntax.KindDecl, span(1, 1, 4, 10),
		node(syntax.KindIdent, span(1, 7, 1, 8)),
		node(syntax.KindWhere, span(3, 3, 4, 10)))
	m := model(t, decl, src)

	if v := r.Check(decl, m.Info(decl), m); v != nil {
		t.Errorf("where-bearing declaration flagged: %v", v.Message)
	}
}

func TestSpaceSalvageLeavesLongDeclarations(t *testing.T) {
	cfg := defaults()
	cfg.MaxLineLength = 10
	r := NewSpaceSalvage(cfg)

	src := "answer =\n    fortyTwo\n"
	decl := node(syntax.KindDecl, span(1, 1, 2, 13),
		node(syntax.KindIdent, span(2, 5, 2, 13)))
	m := model(t, decl, src)

	if v := r.Check(decl, m.Info(decl), m); v != nil {
		t.Errorf("declaration that would overflow flagged: %v", v.Message)
	}
}
