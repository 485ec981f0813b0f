package syntax

import "testing"

func TestKindRoundTrip(t *testing.T) {
	for name, kind := range kindNames {
		if got := kind.String(); got != name {
			t.Errorf("Kind %q round-trips to %q", name, got)
		}
		back, ok := KindFromString(name)
		if !ok || back != kind {
			t.Errorf("KindFromString(%q) = %v, %v", name, back, ok)
		}
	}

	if _, ok := KindFromString("no-such-kind"); ok {
		t.Error("unknown kind name resolved")
	}
}

func TestWalkPreOrder(t *testing.T) {
	leaf1 := &Node{Kind: KindIdent}
	leaf2 := &Node{Kind: KindLiteral}
	app := &Node{Kind: KindApp, Children: []*Node{leaf1, leaf2}}
	root := &Node{Kind: KindModule, Children: []*Node{app}}

	var order []Kind
	Walk(root, func(n *Node) bool {
		order = append(order, n.Kind)
		return true
	})

	want := []Kind{KindModule, KindApp, KindIdent, KindLiteral}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestWalkStopsDescent(t *testing.T) {
	leaf := &Node{Kind: KindIdent}
	app := &Node{Kind: KindApp, Children: []*Node{leaf}}
	root := &Node{Kind: KindModule, Children: []*Node{app}}

	visited := 0
	Walk(root, func(n *Node) bool {
		visited++
		return n.Kind != KindApp
	})

	if visited != 2 {
		t.Errorf("visited %d nodes, want 2 (descent into app stopped)", visited)
	}
}

func TestEnclosing(t *testing.T) {
	let := &Node{Kind: KindLet}
	do := &Node{Kind: KindDo, Children: []*Node{let}}
	let.Parent = do
	decl := &Node{Kind: KindDecl, Children: []*Node{do}}
	do.Parent = decl

	if got := let.Enclosing(KindDo, KindDecl); got != do {
		t.Errorf("Enclosing stopped at %v, want the do-block", got.Kind)
	}
	if got := let.Enclosing(KindDecl); got != decl {
		t.Errorf("Enclosing(KindDecl) = %v, want the declaration", got)
	}
	if got := decl.Enclosing(KindModule); got != nil {
		t.Errorf("Enclosing past the root = %v, want nil", got)
	}
}

func TestSpanOrdering(t *testing.T) {
	a := Span{StartLine: 1, StartCol: 5}
	b := Span{StartLine: 1, StartCol: 9}
	c := Span{StartLine: 3, StartCol: 1}

	if !a.Before(b) || !b.Before(c) || c.Before(a) {
		t.Error("span ordering is not by line then column")
	}
}
