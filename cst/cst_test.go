package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/lex"
)

func leafTok(kind lex.Kind, text string, start, end int) lex.Token {
	return lex.Token{Kind: kind, Text: text, Span: lex.Span{Start: start, End: end}}
}

func TestLeaf(t *testing.T) {
	n := Leaf(leafTok(lex.KindIdent, "foo", 0, 3))
	assert.True(t, n.Terminal)
	assert.Equal(t, "IDENT", n.Symbol)
	assert.Equal(t, "foo", n.Token.Text)
}

func TestReduce_And_Span_Union(t *testing.T) {
	left := Leaf(leafTok(lex.KindIdent, "a", 0, 1))
	right := Leaf(leafTok(lex.KindIdent, "b", 4, 5))
	prod := grammar.Production{NonTerminal: "Expr", Rule: []string{"IDENT", "IDENT"}, Action: "Expr_Pair", InlineIndex: -1}

	n := Reduce(prod, []*Node{left, right})
	assert.False(t, n.Terminal)
	assert.Equal(t, "Expr", n.Symbol)
	assert.Equal(t, lex.Span{Start: 0, End: 5}, n.Span())
}

func TestSpan_EpsilonReduction(t *testing.T) {
	prod := grammar.Production{NonTerminal: "OptFoo", Rule: nil, Action: "OptFoo_None", InlineIndex: -1}
	n := Reduce(prod, nil)
	assert.True(t, n.Span().Empty())
}

func TestEqual(t *testing.T) {
	a := Reduce(
		grammar.Production{NonTerminal: "Expr", Rule: []string{"IDENT"}, InlineIndex: 0},
		[]*Node{Leaf(leafTok(lex.KindIdent, "x", 0, 1))},
	)
	b := Reduce(
		grammar.Production{NonTerminal: "Expr", Rule: []string{"IDENT"}, InlineIndex: 0},
		[]*Node{Leaf(leafTok(lex.KindIdent, "x", 10, 11))},
	)
	assert.True(t, a.Equal(b), "Equal compares structure (Terminal/Symbol/Children), not span or literal text")

	d := Reduce(
		grammar.Production{NonTerminal: "Stmt", Rule: []string{"IDENT"}, InlineIndex: 0},
		[]*Node{Leaf(leafTok(lex.KindIdent, "x", 0, 1))},
	)
	assert.False(t, a.Equal(d), "different NonTerminal symbol makes the trees unequal")
}

func TestString_LeveledRendering(t *testing.T) {
	n := Reduce(
		grammar.Production{NonTerminal: "Block", Rule: []string{"IDENT", "IDENT"}, InlineIndex: -1},
		[]*Node{
			Leaf(leafTok(lex.KindIdent, "a", 0, 1)),
			Leaf(leafTok(lex.KindIdent, "b", 2, 3)),
		},
	)
	s := n.String()
	assert.Contains(t, s, "( Block )")
	assert.Contains(t, s, `(TERM IDENT "a")`)
	assert.Contains(t, s, `(TERM IDENT "b")`)
}
