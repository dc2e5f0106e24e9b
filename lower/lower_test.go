package lower_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dekarrin/eqlparser/ast"
	"github.com/dekarrin/eqlparser/automaton"
	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/lex"
	"github.com/dekarrin/eqlparser/lower"
	"github.com/dekarrin/eqlparser/parse"
	"github.com/dekarrin/eqlparser/parsetab"
)

// buildEngine constructs a parse.Engine once per test file run (the
// same grammar+automaton+tables triple eql.BuildSpec assembles at
// process startup, spec.md §9 "Global parser state").
func buildEngine(t *testing.T) *parse.Engine {
	t.Helper()
	g := grammar.Build()
	dfa, err := automaton.Build(g)
	require.NoError(t, err)
	tables, err := parsetab.Generate(g, dfa)
	require.NoError(t, err)
	return parse.New(g, tables)
}

func parseAndLower(t *testing.T, eng *parse.Engine, start lex.Kind, text string) ast.Node {
	t.Helper()
	src := lex.NewSource(text, "<test>")
	toks, errs := lex.Tokenize(src)
	require.Empty(t, errs, "lex errors for %q", text)

	full := append([]lex.Token{lex.StartToken(start)}, toks...)
	res := eng.Parse(full)
	require.Empty(t, res.Diagnostics, "parse diagnostics for %q: %v", text, res.Diagnostics)
	require.NotNil(t, res.Tree, "no CST produced for %q", text)

	out := lower.Lower(res.Tree)
	require.NotNil(t, out.Tree, "lowering produced a nil AST for %q", text)
	return out.Tree
}

func TestLower_Block_Select(t *testing.T) {
	eng := buildEngine(t)
	root := parseAndLower(t, eng, lex.KindStartBlock, "SELECT Foo FILTER .x = 1;")

	block, ok := root.(*ast.Block)
	require.True(t, ok, "root is %T", root)
	require.Len(t, block.Statements, 1)

	sel, ok := block.Statements[0].(*ast.Select)
	require.True(t, ok, "statement is %T", block.Statements[0])
	require.NotNil(t, sel.Result)
	require.NotNil(t, sel.Filter)
}

func TestLower_Fragment_BinaryExprPrecedence(t *testing.T) {
	eng := buildEngine(t)
	root := parseAndLower(t, eng, lex.KindStartFragment, "1 + 2 * 3")

	frag, ok := root.(*ast.Fragment)
	require.True(t, ok, "root is %T", root)

	top, ok := frag.Body.(*ast.BinaryExpr)
	require.True(t, ok, "top level is %T", frag.Body)
	require.Equal(t, "+", top.Op)

	rhs, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok, "multiplication must bind tighter, so it's nested on the right, got %T", top.Right)
	require.Equal(t, "*", rhs.Op)
}

func TestLower_Fragment_DistinctFromOperators(t *testing.T) {
	eng := buildEngine(t)

	root := parseAndLower(t, eng, lex.KindStartFragment, "1 ?!= 2")
	expr := root.(*ast.Fragment).Body.(*ast.BinaryExpr)
	require.Equal(t, "?!=", expr.Op, "?!= lexes as KindDistinctFrom and must lower to the same operator text")

	root = parseAndLower(t, eng, lex.KindStartFragment, "1 ?= 2")
	expr = root.(*ast.Fragment).Body.(*ast.BinaryExpr)
	require.Equal(t, "?=", expr.Op, "?= lexes as KindNDistinctFrom and must lower to the same operator text")
}

func TestLower_Fragment_PostfixCast(t *testing.T) {
	eng := buildEngine(t)
	root := parseAndLower(t, eng, lex.KindStartFragment, "Foo::bar")

	frag := root.(*ast.Fragment)
	cast, ok := frag.Body.(*ast.Cast)
	require.True(t, ok, "expected a Cast, got %T", frag.Body)
	require.Equal(t, "bar", cast.TypeName)
}

func TestLower_Fragment_PathWithShape(t *testing.T) {
	eng := buildEngine(t)
	root := parseAndLower(t, eng, lex.KindStartFragment, "Foo { bar }")

	frag := root.(*ast.Fragment)
	path, ok := frag.Body.(*ast.Path)
	require.True(t, ok, "expected a Path, got %T", frag.Body)
	require.Len(t, path.Steps, 1)
	require.Equal(t, ast.StepShape, path.Steps[0].StepKind)
	require.NotNil(t, path.Steps[0].Shape)
	require.Len(t, path.Steps[0].Shape.Fields, 1)
	require.Equal(t, "bar", path.Steps[0].Shape.Fields[0].Name)
}

func TestLower_Block_Insert(t *testing.T) {
	eng := buildEngine(t)
	root := parseAndLower(t, eng, lex.KindStartBlock, "INSERT Foo { bar := 1 };")

	block := root.(*ast.Block)
	require.Len(t, block.Statements, 1)

	ins, ok := block.Statements[0].(*ast.Insert)
	require.True(t, ok, "statement is %T", block.Statements[0])
	require.Equal(t, "Foo", ins.TypeName)
	require.NotNil(t, ins.Shape)
	require.Len(t, ins.Shape.Fields, 1)
}

func TestLower_Block_AdminStatements(t *testing.T) {
	eng := buildEngine(t)

	root := parseAndLower(t, eng, lex.KindStartBlock, "ANALYZE SELECT Foo;")
	an := root.(*ast.Block).Statements[0].(*ast.Analyze)
	require.NotNil(t, an.Subject)

	root = parseAndLower(t, eng, lex.KindStartBlock, "DESCRIBE SCHEMA;")
	desc := root.(*ast.Block).Statements[0].(*ast.Describe)
	require.Equal(t, "schema", desc.ObjectKind)

	root = parseAndLower(t, eng, lex.KindStartBlock, "DESCRIBE Foo;")
	desc = root.(*ast.Block).Statements[0].(*ast.Describe)
	require.Equal(t, "type", desc.ObjectKind)
	require.Equal(t, "Foo", desc.Name)

	root = parseAndLower(t, eng, lex.KindStartBlock, "ADMINISTER vacuum();")
	admin := root.(*ast.Block).Statements[0].(*ast.Administer)
	require.Equal(t, "vacuum", admin.Name)
	require.Empty(t, admin.Args)

	root = parseAndLower(t, eng, lex.KindStartBlock, "CONFIGURE SESSION SET work_mem := 1;")
	cfg := root.(*ast.Block).Statements[0].(*ast.Configure)
	require.Equal(t, "work_mem", cfg.Name)
	require.NotNil(t, cfg.Value)

	root = parseAndLower(t, eng, lex.KindStartBlock, "CONFIGURE SESSION RESET work_mem;")
	cfg = root.(*ast.Block).Statements[0].(*ast.Configure)
	require.Equal(t, "work_mem", cfg.Name)
	require.Nil(t, cfg.Value)
}

func TestLower_Block_UpdateAndDelete(t *testing.T) {
	eng := buildEngine(t)

	root := parseAndLower(t, eng, lex.KindStartBlock, "UPDATE Foo FILTER .x = 1 SET { bar := 2 };")
	upd := root.(*ast.Block).Statements[0].(*ast.Update)
	require.Equal(t, "Foo", upd.TypeName)
	require.NotNil(t, upd.Filter)
	require.NotNil(t, upd.Set)

	root = parseAndLower(t, eng, lex.KindStartBlock, "DELETE Foo FILTER .x = 1;")
	del := root.(*ast.Block).Statements[0].(*ast.Delete)
	require.Equal(t, "Foo", del.TypeName)
	require.NotNil(t, del.Filter)
}

func TestLower_Registry_ParentLinks(t *testing.T) {
	eng := buildEngine(t)
	src := lex.NewSource("SELECT Foo FILTER .x = 1;", "<test>")
	toks, errs := lex.Tokenize(src)
	require.Empty(t, errs)
	full := append([]lex.Token{lex.StartToken(lex.KindStartBlock)}, toks...)
	res := eng.Parse(full)
	require.Empty(t, res.Diagnostics)

	out := lower.Lower(res.Tree)
	block := out.Tree.(*ast.Block)
	sel := block.Statements[0]

	parent, ok := out.Registry.Parent(sel)
	require.True(t, ok, "Select's parent should be recorded in the registry")
	require.Same(t, block, parent)
}
