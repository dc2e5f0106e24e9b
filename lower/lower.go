// Package lower turns a completed cst.Node tree into an ast.Node tree
// (spec.md §4.5). The walk is iterative and explicit-stack rather than a
// naive recursive descent over the CST, because a pathologically deep
// expression (a long chain of `.field.field.field...` or nested
// parentheses) would otherwise risk overflowing the Go call stack on the
// same input that the table-driven parser handled just fine with its own
// explicit state stack.
//
// Grounded on the Syntax-Directed Translation Scheme idea spec.md §4.5
// describes (one semantic action per production, bound by the grammar's
// Production.Action name) and on internal/ictiobus/parse/lr.go's own
// explicit-stack style (util.Stack[*types.ParseTree] built alongside the
// state stack) — applied here to a second, separate pass over an
// already-built tree rather than during parsing itself, since CST and
// AST are spec.md §3.5/§3.6's deliberately distinct representations.
package lower

import (
	"github.com/dekarrin/eqlparser/ast"
	"github.com/dekarrin/eqlparser/cst"
	"github.com/dekarrin/eqlparser/diag"
	"github.com/dekarrin/eqlparser/lex"
)

// Result is one lowering's outcome.
type Result struct {
	Tree     ast.Node
	Registry *ast.Registry
}

// Lower walks root bottom-up (children before parents, so every action
// function only ever sees already-lowered child values) and returns the
// resulting AST root plus the parent registry built along the way.
func Lower(root *cst.Node) Result {
	reg := ast.NewRegistry()
	if root == nil {
		return Result{Registry: reg}
	}

	type frame struct {
		node     *cst.Node
		expanded bool
	}

	results := make(map[*cst.Node]any)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.node.Terminal {
			results[top.node] = top.node
			stack = stack[:len(stack)-1]
			continue
		}

		if !top.expanded {
			top.expanded = true
			for i := len(top.node.Children) - 1; i >= 0; i-- {
				c := top.node.Children[i]
				if _, done := results[c]; !done {
					stack = append(stack, frame{node: c})
				}
			}
			continue
		}

		kids := make([]any, len(top.node.Children))
		for i, c := range top.node.Children {
			kids[i] = results[c]
		}

		val := apply(top.node, kids, reg)
		results[top.node] = val
		stack = stack[:len(stack)-1]
	}

	final, _ := results[root]
	node, _ := final.(ast.Node)
	return Result{Tree: node, Registry: reg}
}

func apply(n *cst.Node, kids []any, reg *ast.Registry) any {
	if n.Production.InlineIndex >= 0 {
		if n.Production.InlineIndex >= len(kids) {
			return nil
		}
		return kids[n.Production.InlineIndex]
	}

	fn, ok := actions[n.Production.Action]
	if !ok {
		diag.Panicf("lower: no semantic action registered for production %q", n.Production.Action)
	}
	return fn(ctx{reg: reg, node: n}, kids)
}

// ctx carries per-production context into an action function: the
// registry (for linking parents) and the source CST node (for its
// span).
type ctx struct {
	reg  *ast.Registry
	node *cst.Node
}

func (c ctx) span() lex.Span {
	return c.node.Span()
}
