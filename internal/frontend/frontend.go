// Package frontend adapts the external parser's exported trees. The
// front-end collaborator emits one JSON document per source unit,
// carrying the raw source text and a {kind, span, children} tree; this
// package decodes that interchange format into syntax nodes. No
// parsing of the subject language happens here or anywhere else in
// hstyle.
package frontend

import (
	"encoding/json"
	"fmt"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

// Unit is one decoded source unit: its name, its raw text, and the
// parse tree the front-end produced for it.
type Unit struct {
	Name   string
	Source string
	Tree   *syntax.Node
}

// jsonUnit mirrors the interchange document.
type jsonUnit struct {
	Name   string    `json:"name"`
	Source string    `json:"source"`
	Tree   *jsonNode `json:"tree"`
}

// jsonNode mirrors one tree node. Span is [startLine, startCol,
// endLine, endCol], 1-indexed, end-column exclusive.
type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     [4]int      `json:"span"`
	Children []*jsonNode `json:"children,omitempty"`
}

// Decode parses an interchange document. Structural problems (bad
// JSON, unknown kinds, a missing tree) fail here; span/text
// consistency is the layout model's job.
func Decode(data []byte) (*Unit, error) {
	var ju jsonUnit
	if err := json.Unmarshal(data, &ju); err != nil {
		return nil, fmt.Errorf("decoding unit document: %w", err)
	}

	if ju.Tree == nil {
		return nil, fmt.Errorf("unit document %q has no tree", ju.Name)
	}

	root, err := build(ju.Tree, nil)
	if err != nil {
		return nil, fmt.Errorf("unit document %q: %w", ju.Name, err)
	}

	return &Unit{Name: ju.Name, Source: ju.Source, Tree: root}, nil
}

// build converts a jsonNode subtree, wiring parent pointers as it goes.
func build(jn *jsonNode, parent *syntax.Node) (*syntax.Node, error) {
	kind, ok := syntax.KindFromString(jn.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", jn.Kind)
	}

	n := &syntax.Node{
		Kind: kind,
		Span: syntax.Span{
			StartLine: jn.Span[0],
			StartCol:  jn.Span[1],
			EndLine:   jn.Span[2],
			EndCol:    jn.Span[3],
		},
		Parent: parent,
	}

	if len(jn.Children) > 0 {
		n.Children = make([]*syntax.Node, 0, len(jn.Children))
		for _, jc := range jn.Children {
			c, err := build(jc, n)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)
		}
	}

	return n, nil
}
