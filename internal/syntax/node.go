// Package syntax defines the tree consumed from the external front-end.
package syntax

// Kind classifies a node in the front-end's parse tree.
type Kind int

const (
	// KindModule is the root node of a source unit.
	KindModule Kind = iota
	// KindDocComment is a documentation comment ({- | ... -} or -- |).
	KindDocComment
	// KindComment is an ordinary comment.
	KindComment
	// KindExportList is the parenthesized export list of a module header.
	KindExportList
	// KindExport is a single entry of an export list.
	KindExport
	// KindImport is an import statement.
	KindImport
	// KindSignature is a top-level type signature.
	KindSignature
	// KindDecl is a value or function declaration.
	KindDecl
	// KindData is a data-type definition.
	KindData
	// KindConstructor is one alternative of a data-type definition.
	KindConstructor
	// KindDeriving is the deriving clause of a data-type definition.
	KindDeriving
	// KindField is a named field of a record literal or record constructor.
	KindField
	// KindApp is a prefix function application.
	KindApp
	// KindOpApp is an infix operator application.
	KindOpApp
	// KindCase is a case expression (parent of its alternatives).
	KindCase
	// KindCaseAlt is a single case alternative (pattern and body).
	KindCaseAlt
	// KindDo is a do-block.
	KindDo
	// KindLet is a let-block (bindings plus the in-expression, if any).
	KindLet
	// KindBinding is a single binding (lhs and rhs) inside let or where.
	KindBinding
	// KindWhere is a where-clause attached to a declaration.
	KindWhere
	// KindIf is an if/then/else expression.
	KindIf
	// KindList is a list literal.
	KindList
	// KindTuple is a tuple literal.
	KindTuple
	// KindRecord is a record literal or record constructor body.
	KindRecord
	// KindIdent is an identifier (atomic).
	KindIdent
	// KindLiteral is a numeric, character, or string literal (atomic).
	KindLiteral
)

// kindNames maps the front-end's JSON kind strings to Kind values.
// The names are part of the interchange contract with the front-end.
var kindNames = map[string]Kind{
	"module":      KindModule,
	"doc-comment": KindDocComment,
	"comment":     KindComment,
	"export-list": KindExportList,
	"export":      KindExport,
	"import":      KindImport,
	"signature":   KindSignature,
	"decl":        KindDecl,
	"data":        KindData,
	"constructor": KindConstructor,
	"deriving":    KindDeriving,
	"field":       KindField,
	"app":         KindApp,
	"op-app":      KindOpApp,
	"case":        KindCase,
	"case-alt":    KindCaseAlt,
	"do":          KindDo,
	"let":         KindLet,
	"binding":     KindBinding,
	"where":       KindWhere,
	"if":          KindIf,
	"list":        KindList,
	"tuple":       KindTuple,
	"record":      KindRecord,
	"ident":       KindIdent,
	"literal":     KindLiteral,
}

// kindStrings is the inverse of kindNames, built once at init.
var kindStrings = func() map[Kind]string {
	m := make(map[Kind]string, len(kindNames))
	for s, k := range kindNames {
		m[k] = s
	}
	return m
}()

// KindFromString resolves a front-end kind name. The second result is
// false for names outside the interchange contract.
func KindFromString(s string) (Kind, bool) {
	k, ok := kindNames[s]
	return k, ok
}

// String returns the interchange name of the kind.
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return "unknown"
}

// Atomic reports whether nodes of this kind never have children.
func (k Kind) Atomic() bool {
	return k == KindIdent || k == KindLiteral || k == KindComment || k == KindDocComment
}

// Span is a half-open region of source text. Lines and columns are
// 1-indexed; EndCol points one past the last column of the node.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Multiline reports whether the span covers more than one source line.
func (s Span) Multiline() bool {
	return s.EndLine > s.StartLine
}

// Before orders spans by start position, for report sorting.
func (s Span) Before(o Span) bool {
	if s.StartLine != o.StartLine {
		return s.StartLine < o.StartLine
	}
	return s.StartCol < o.StartCol
}

// Node is a single element of the front-end's parse tree. Each node is
// owned by exactly one parent; the tree is immutable for the duration
// of a run.
type Node struct {
	Kind     Kind
	Span     Span
	Children []*Node

	// Parent is set when the tree is assembled by the front-end
	// adapter. It is nil for the root.
	Parent *Node
}

// ChildrenOf returns the children with the given kind, in order.
func (n *Node) ChildrenOf(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first child of the given kind, or nil.
func (n *Node) FirstChild(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Enclosing walks up the parent chain and returns the nearest ancestor
// with one of the given kinds, or nil.
func (n *Node) Enclosing(kinds ...Kind) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		for _, k := range kinds {
			if p.Kind == k {
				return p
			}
		}
	}
	return nil
}

// Walk visits n and every descendant in pre-order. Returning false from
// fn stops descent into the current node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
