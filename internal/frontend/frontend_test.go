package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

func TestDecode(t *testing.T) {
	doc := []byte(`{
		"name": "Pad.hs",
		"source": "a = 1\n",
		"tree": {
			"kind": "module",
			"span": [1, 1, 1, 6],
			"children": [
				{
					"kind": "decl",
					"span": [1, 1, 1, 6],
					"children": [{"kind": "literal", "span": [1, 5, 1, 6]}]
				}
			]
		}
	}`)

	unit, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "Pad.hs", unit.Name)
	assert.Equal(t, "a = 1\n", unit.Source)

	require.NotNil(t, unit.Tree)
	assert.Equal(t, syntax.KindModule, unit.Tree.Kind)
	require.Len(t, unit.Tree.Children, 1)

	decl := unit.Tree.Children[0]
	assert.Equal(t, syntax.KindDecl, decl.Kind)
	assert.Equal(t, syntax.Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 6}, decl.Span)
	assert.Same(t, unit.Tree, decl.Parent, "parent pointer not wired")

	require.Len(t, decl.Children, 1)
	assert.Same(t, decl, decl.Children[0].Parent)
}

func TestDecodeUnknownKind(t *testing.T) {
	doc := []byte(`{"name": "x", "source": "", "tree": {"kind": "lambda", "span": [1, 1, 1, 1]}}`)

	_, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown node kind "lambda"`)
}

func TestDecodeMissingTree(t *testing.T) {
	_, err := Decode([]byte(`{"name": "x", "source": "a\n"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no tree")
}

func TestDecodeBadJSON(t *testing.T) {
	_, err := Decode([]byte(`{"name":`))
	require.Error(t, err)
}
