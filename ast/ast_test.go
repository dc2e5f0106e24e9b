package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/eqlparser/lex"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "select", KindSelect.String())
	assert.Equal(t, "fragment", KindFragment.String())
	assert.Equal(t, "undefined", KindUndefined.String())
}

func TestKind_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestBase_Span(t *testing.T) {
	b := Base{SourceSpan: lex.Span{Start: 3, End: 9}}
	assert.Equal(t, lex.Span{Start: 3, End: 9}, b.Span())
}

func TestRegistry_LinkAndParent(t *testing.T) {
	r := NewRegistry()
	parent := &Block{}
	child := &Select{}

	r.Link(parent, child)

	got, ok := r.Parent(child)
	require.True(t, ok)
	require.Same(t, parent, got)

	_, ok = r.Parent(parent)
	assert.False(t, ok, "root node has no recorded parent")
}

func TestRegistry_Link_SkipsNilChildren(t *testing.T) {
	r := NewRegistry()
	parent := &Block{}

	assert.NotPanics(t, func() { r.Link(parent, nil) })
}

func TestIsNegative(t *testing.T) {
	neg := &Literal{LitKind: LiteralInt, Negative: true}
	pos := &Literal{LitKind: LiteralInt, Negative: false}
	other := &Parameter{Name: "x"}

	assert.True(t, IsNegative(neg))
	assert.False(t, IsNegative(pos))
	assert.False(t, IsNegative(other), "non-Literal nodes are never negative")
}
