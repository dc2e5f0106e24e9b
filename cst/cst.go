// Package cst holds the transient concrete syntax tree the parse engine
// builds and lower consumes (spec.md §4.5). A Node is a tagged union:
// either a terminal leaf carrying the lex.Token it was shifted from, or a
// production node carrying the grammar production it was reduced under
// and its ordered children.
//
// Adapted from internal/ictiobus/types/tree.go's ParseTree — same
// Terminal/Value/Source/Children shape, renamed to this package's own
// vocabulary and extended with the Production field the LR(1) driver
// needs to hand off to lower (the teacher's ParseTree carried only the
// symbol name, since tunascript's lowering step re-derives the
// production from context; ours carries the production explicitly so
// lower never has to re-discover it).
package cst

import (
	"fmt"
	"strings"

	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/lex"
)

const (
	levelEmpty        = "        "
	levelOngoing      = "  |     "
	levelPrefix       = "  |%s: "
	levelPrefixLast   = `  \%s: `
	levelPrefixPad    = '-'
	levelPrefixPadLen = 3
)

// Node is one CST node: a terminal leaf or a reduced production.
type Node struct {
	// Terminal is whether this node is a shifted token rather than a
	// reduced production.
	Terminal bool

	// Symbol is the grammar symbol at this node — the terminal name
	// (lex.Kind.Terminal()) for a leaf, or the nonterminal name for a
	// production node.
	Symbol string

	// Token is populated only when Terminal is true.
	Token lex.Token

	// Production is populated only when Terminal is false: the grammar
	// production this node was reduced under.
	Production grammar.Production

	// Children is this node's ordered children, left to right matching
	// Production.Rule. Empty for terminals and for epsilon reductions.
	Children []*Node
}

// Leaf builds a terminal CST node from a shifted token.
func Leaf(tok lex.Token) *Node {
	return &Node{Terminal: true, Symbol: tok.Kind.Terminal(), Token: tok}
}

// Reduce builds a production CST node from a reduction's matched
// right-hand-side children.
func Reduce(p grammar.Production, children []*Node) *Node {
	return &Node{Symbol: p.NonTerminal, Production: p, Children: children}
}

// Span reports the source span this node covers, by unioning the spans
// of its leaf descendants. A node with no leaf descendants (an epsilon
// reduction) reports an empty span.
func (n *Node) Span() lex.Span {
	if n.Terminal {
		return n.Token.Span
	}
	var span lex.Span
	first := true
	for _, c := range n.Children {
		cs := c.Span()
		if cs.Empty() && !c.Terminal && len(c.Children) == 0 {
			continue
		}
		if first {
			span = cs
			first = false
		} else {
			span = span.Union(cs)
		}
	}
	return span
}

// String returns a prettified, indentation-leveled representation
// suitable for line-by-line test comparisons — same rendering scheme as
// the teacher's ParseTree.String(), renamed fields.
func (n *Node) String() string {
	return n.leveledStr("", "")
}

func (n *Node) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if n.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %s %q)", n.Symbol, n.Token.Text))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", n.Symbol))
	}

	for i, c := range n.Children {
		sb.WriteRune('\n')
		var leveledFirst, leveledCont string
		if i+1 < len(n.Children) {
			leveledFirst = contPrefix + pad(levelPrefix, "")
			leveledCont = contPrefix + levelOngoing
		} else {
			leveledFirst = contPrefix + pad(levelPrefixLast, "")
			leveledCont = contPrefix + levelEmpty
		}
		sb.WriteString(c.leveledStr(leveledFirst, leveledCont))
	}

	return sb.String()
}

func pad(format, msg string) string {
	for len([]rune(msg)) < levelPrefixPadLen {
		msg = string(levelPrefixPad) + msg
	}
	return fmt.Sprintf(format, msg)
}

// Equal reports whether n and o have identical structure: same Terminal
// flag, same Symbol, and recursively equal Children.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Terminal != o.Terminal || n.Symbol != o.Symbol {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
