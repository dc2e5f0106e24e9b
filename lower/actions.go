package lower

import (
	"github.com/dekarrin/eqlparser/ast"
	"github.com/dekarrin/eqlparser/cst"
	"github.com/dekarrin/eqlparser/lex"
)

// actions binds each non-inline grammar production (grammar/build.go) to
// the Go function that builds its AST node, by the production's Action
// name (spec.md §4.4 "reduction methods whose names encode their
// right-hand side"). Inline productions (InlineIndex >= 0) never reach
// this map — lower.apply forwards their one meaningful child directly.
var actions map[string]func(ctx, []any) any

func init() {
	actions = map[string]func(ctx, []any) any{}
	registerListActions()
	registerExprActions()
	registerShapeActions()
	registerStmtActions()
	registerDDLActions()
	registerSDLActions()
}

// --- generic helpers ---------------------------------------------------

func leaf(v any) *cst.Node { return v.(*cst.Node) }
func text(v any) string    { return leaf(v).Token.Text }
func val(v any) lex.Value  { return leaf(v).Token.Value }

func node(v any) ast.Node {
	if v == nil {
		return nil
	}
	n, _ := v.(ast.Node)
	return n
}

func items(v any) []any {
	if v == nil {
		return nil
	}
	l, _ := v.([]any)
	return l
}

func span(c ctx) lex.Span { return c.span() }

// --- list accumulators ---------------------------------------------------
// Every "_Empty"/"_One"/"_Append" production family builds up a plain
// []any accumulator; the production that finally consumes the list
// (Block_Stmts, Atom_Call, DDLCommand_CreateFunction, etc.) casts each
// element to the type it expects.

func registerListActions() {
	empty := func(ctx, []any) any { return []any{} }
	one := func(_ ctx, k []any) any { return []any{k[0]} }
	appendLast := func(_ ctx, k []any) any { return append(items(k[0]), k[len(k)-1]) }

	actions["StmtList_Empty"] = empty
	actions["StmtList_Append"] = appendLast

	actions["ExprListOpt_Empty"] = empty
	actions["ExprList_One"] = one
	actions["ExprList_Append"] = appendLast

	actions["ArgListOpt_Empty"] = empty
	actions["ArgList_One"] = one
	actions["ArgList_Append"] = appendLast

	actions["ShapeFieldList_One"] = one
	actions["ShapeFieldList_Append"] = appendLast

	actions["Block_Stmts"] = func(c ctx, k []any) any {
		var stmts []ast.Node
		for _, s := range items(k[0]) {
			stmts = append(stmts, node(s))
		}
		n := &ast.Block{Statements: stmts}
		n.SourceSpan = span(c)
		c.reg.Link(n, stmts...)
		return n
	}
	fragment := func(c ctx, k []any) any {
		n := &ast.Fragment{Body: node(k[0])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Body)
		return n
	}
	actions["Fragment_Expr"] = fragment
	actions["Fragment_Stmt"] = fragment

	actions["MigrationBody_Commands"] = func(c ctx, k []any) any {
		var cmds []ast.Node
		for _, cmd := range items(k[0]) {
			cmds = append(cmds, node(cmd))
		}
		n := &ast.MigrationBody{Commands: cmds}
		n.SourceSpan = span(c)
		c.reg.Link(n, cmds...)
		return n
	}
	actions["ExtensionBody_Items"] = func(c ctx, k []any) any {
		var its []ast.Node
		for _, it := range items(k[0]) {
			its = append(its, node(it))
		}
		n := &ast.ExtensionBody{Items: its}
		n.SourceSpan = span(c)
		c.reg.Link(n, its...)
		return n
	}
	actions["SDLDocument_Items"] = func(c ctx, k []any) any {
		var decls []*ast.SDLDecl
		var asNodes []ast.Node
		for _, it := range items(k[0]) {
			d := node(it).(*ast.SDLDecl)
			decls = append(decls, d)
			asNodes = append(asNodes, d)
		}
		n := &ast.SDLDocumentRoot{Decls: decls}
		n.SourceSpan = span(c)
		c.reg.Link(n, asNodes...)
		return n
	}

	actions["BindingList_One"] = one
	actions["BindingList_Append"] = appendLast

	actions["TypeNameList_One"] = one
	actions["TypeNameList_Append"] = appendLast

	actions["ParamListOpt_Empty"] = empty
	actions["ParamList_One"] = one
	actions["ParamList_Append"] = appendLast

	actions["AlterItemList_Empty"] = empty
	actions["AlterItemList_Append"] = appendLast

	actions["DDLCommandList_Empty"] = empty
	actions["DDLCommandList_Append"] = appendLast

	actions["ExtItemList_Empty"] = empty
	actions["ExtItemList_Append"] = appendLast

	actions["SDLItemList_Empty"] = empty
	actions["SDLItemList_Append"] = appendLast

	actions["SDLBodyList_Empty"] = empty
	actions["SDLBodyList_Append"] = appendLast
}

// --- expression actions --------------------------------------------------

func binary(op string) func(ctx, []any) any {
	return func(c ctx, k []any) any {
		n := &ast.BinaryExpr{Op: op, Left: node(k[0]), Right: node(k[2])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Left, n.Right)
		return n
	}
}

func setOp(op string) func(ctx, []any) any {
	return func(c ctx, k []any) any {
		n := &ast.SetOp{Op: op, Left: node(k[0]), Right: node(k[2])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Left, n.Right)
		return n
	}
}

func unary(op string) func(ctx, []any) any {
	return func(c ctx, k []any) any {
		n := &ast.UnaryExpr{Op: op, Operand: node(k[1])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Operand)
		return n
	}
}

var compOpNames = map[string]string{
	"EQUALS": "=", "NOTEQUALS": "!=", "DISTINCTFROM": "?!=", "NDISTINCTFROM": "?=",
	"GE": ">=", "LE": "<=", "LT": "<", "GT": ">", "IS": "is", "LIKE": "like", "ILIKE": "ilike",
}

func registerExprActions() {
	actions["UnionExpr_Union"] = setOp("union")
	actions["UnionExpr_Intersect"] = setOp("intersect")
	actions["UnionExpr_Except"] = setOp("except")
	actions["UnionExpr_IfElse"] = func(c ctx, k []any) any {
		n := &ast.IfElse{Then: node(k[0]), Cond: node(k[2]), Else: node(k[4])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Then, n.Cond, n.Else)
		return n
	}

	actions["OrExpr_Or"] = binary("or")
	actions["AndExpr_And"] = binary("and")
	actions["NotExpr_Not"] = unary("not")
	actions["NotExpr_Exists"] = unary("exists")
	actions["NotExpr_Distinct"] = unary("distinct")

	for termName, opSym := range compOpNames {
		actions["CompExpr_"+termName] = binary(opSym)
	}

	actions["CoalesceExpr_Coalesce"] = binary("??")
	actions["ConcatExpr_Concat"] = binary("++")
	actions["AddExpr_Add"] = binary("+")
	actions["AddExpr_Sub"] = binary("-")
	actions["MulExpr_Mul"] = binary("*")
	actions["MulExpr_Div"] = binary("/")
	actions["MulExpr_FloorDiv"] = binary("//")
	actions["MulExpr_Mod"] = binary("%")
	actions["UnaryExpr_Neg"] = unary("-")
	actions["UnaryExpr_Pos"] = unary("+")
	actions["PowExpr_Pow"] = binary("^")
	actions["PowExpr_PowAlt"] = binary("^")

	registerPathActions()
	registerAtomActions()
}

func registerPathActions() {
	step := func(root ast.Node, steps []ast.PathStep, s ast.PathStep) *ast.Path {
		if p, ok := root.(*ast.Path); ok {
			p.Steps = append(p.Steps, s)
			return p
		}
		return &ast.Path{Root: root, Steps: append(steps, s)}
	}

	actions["PathExpr_Cast"] = func(c ctx, k []any) any {
		n := &ast.Cast{Operand: node(k[0]), TypeName: k[2].(string)}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Operand)
		return n
	}
	actions["PathExpr_Forward"] = func(c ctx, k []any) any {
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepForward, Name: text(k[2])})
		n.SourceSpan = span(c)
		return n
	}
	actions["PathExpr_Backward"] = func(c ctx, k []any) any {
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepBackward, Name: text(k[2])})
		n.SourceSpan = span(c)
		return n
	}
	actions["PathExpr_LinkProp"] = func(c ctx, k []any) any {
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepLinkProp, Name: text(k[2])})
		n.SourceSpan = span(c)
		return n
	}
	actions["PathExpr_Index"] = func(c ctx, k []any) any {
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepIndex, Index: node(k[2])})
		n.SourceSpan = span(c)
		c.reg.Link(n, node(k[2]))
		return n
	}
	actions["PathExpr_Slice"] = func(c ctx, k []any) any {
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepSlice, SliceLo: node(k[2]), SliceHi: node(k[4])})
		n.SourceSpan = span(c)
		return n
	}
	actions["PathExpr_TypeIntersect"] = func(c ctx, k []any) any {
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepTypeIntersect, Name: k[3].(string)})
		n.SourceSpan = span(c)
		return n
	}
	actions["PathExpr_Shape"] = func(c ctx, k []any) any {
		shape := node(k[1]).(*ast.Shape)
		n := step(node(k[0]), nil, ast.PathStep{StepKind: ast.StepShape, Shape: shape})
		n.SourceSpan = span(c)
		c.reg.Link(n, shape)
		return n
	}
}

func registerAtomActions() {
	lit := func(kind ast.LiteralKind) func(ctx, []any) any {
		return func(c ctx, k []any) any {
			n := &ast.Literal{LitKind: kind, Value: val(k[0])}
			n.SourceSpan = span(c)
			return n
		}
	}
	actions["Atom_Ident"] = func(c ctx, k []any) any {
		n := &ast.Path{Steps: []ast.PathStep{{StepKind: ast.StepForward, Name: text(k[0])}}}
		n.SourceSpan = span(c)
		return n
	}
	actions["Atom_IConst"] = lit(ast.LiteralInt)
	actions["Atom_NIConst"] = lit(ast.LiteralBigInt)
	actions["Atom_FConst"] = lit(ast.LiteralFloat)
	actions["Atom_NFConst"] = lit(ast.LiteralDecimal)
	actions["Atom_SConst"] = lit(ast.LiteralString)
	actions["Atom_BConst"] = lit(ast.LiteralBytes)
	actions["Atom_Parameter"] = func(c ctx, k []any) any {
		n := &ast.Parameter{Name: val(k[0]).ParamName}
		n.SourceSpan = span(c)
		return n
	}
	actions["Atom_True"] = func(c ctx, k []any) any {
		n := &ast.Literal{LitKind: ast.LiteralBool, Bool: true}
		n.SourceSpan = span(c)
		return n
	}
	actions["Atom_False"] = func(c ctx, k []any) any {
		n := &ast.Literal{LitKind: ast.LiteralBool, Bool: false}
		n.SourceSpan = span(c)
		return n
	}
	actions["Atom_EmptyTuple"] = func(c ctx, k []any) any {
		n := &ast.Tuple{}
		n.SourceSpan = span(c)
		return n
	}
	actions["Atom_Tuple"] = func(c ctx, k []any) any {
		elems := []ast.Node{node(k[1])}
		for _, e := range items(k[3]) {
			elems = append(elems, node(e))
		}
		n := &ast.Tuple{Elements: elems}
		n.SourceSpan = span(c)
		c.reg.Link(n, elems...)
		return n
	}
	actions["Atom_Array"] = func(c ctx, k []any) any {
		var elems []ast.Node
		for _, e := range items(k[1]) {
			elems = append(elems, node(e))
		}
		n := &ast.Array{Elements: elems}
		n.SourceSpan = span(c)
		c.reg.Link(n, elems...)
		return n
	}
	actions["Atom_Call"] = func(c ctx, k []any) any {
		var args []ast.Arg
		for _, a := range items(k[2]) {
			args = append(args, a.(ast.Arg))
		}
		n := &ast.Call{Func: text(k[0]), Args: args}
		n.SourceSpan = span(c)
		for _, a := range args {
			c.reg.Link(n, a.Value)
		}
		return n
	}
	actions["Arg_Positional"] = func(_ ctx, k []any) any {
		return ast.Arg{Value: node(k[0])}
	}
	actions["Arg_Named"] = func(_ ctx, k []any) any {
		return ast.Arg{Name: text(k[0]), Value: node(k[2])}
	}
}

// --- shape actions ---------------------------------------------------

func registerShapeActions() {
	actions["Shape_Empty"] = func(c ctx, k []any) any {
		n := &ast.Shape{}
		n.SourceSpan = span(c)
		return n
	}
	actions["Shape_Fields"] = func(c ctx, k []any) any {
		var fields []ast.ShapeField
		for _, f := range items(k[1]) {
			fields = append(fields, f.(ast.ShapeField))
		}
		n := &ast.Shape{Fields: fields}
		n.SourceSpan = span(c)
		for _, f := range fields {
			c.reg.Link(n, f.Value)
		}
		return n
	}
	actions["ShapeField_Computed"] = func(_ ctx, k []any) any {
		return ast.ShapeField{Name: text(k[0]), Value: node(k[2])}
	}
	actions["ShapeField_Multi"] = func(_ ctx, k []any) any {
		return ast.ShapeField{Name: text(k[1]), Value: node(k[3]), Multi: true}
	}
	actions["ShapeField_Required"] = func(_ ctx, k []any) any {
		return ast.ShapeField{Name: text(k[1]), Value: node(k[3]), Required: true}
	}
	actions["ShapeField_LinkProp"] = func(_ ctx, k []any) any {
		return ast.ShapeField{Name: text(k[1]), Value: node(k[3]), LinkProp: true}
	}
	actions["ShapeField_Nested"] = func(_ ctx, k []any) any {
		return ast.ShapeField{Name: text(k[0]), NestedShape: node(k[2]).(*ast.Shape)}
	}
}

// --- statement actions -------------------------------------------------

func registerStmtActions() {
	actions["OptFilter_None"] = func(ctx, []any) any { return nil }
	actions["OptFilter_Some"] = func(_ ctx, k []any) any { return node(k[1]) }
	actions["OptOrderBy_None"] = func(ctx, []any) any { return nil }
	actions["OptOrderBy_Some"] = func(_ ctx, k []any) any { return node(k[1]) }
	actions["OptOffset_None"] = func(ctx, []any) any { return nil }
	actions["OptOffset_Some"] = func(_ ctx, k []any) any { return node(k[1]) }
	actions["OptLimit_None"] = func(ctx, []any) any { return nil }
	actions["OptLimit_Some"] = func(_ ctx, k []any) any { return node(k[1]) }

	actions["Binding"] = func(_ ctx, k []any) any {
		return ast.Binding{Name: text(k[0]), Value: node(k[2])}
	}

	actions["Stmt_Select"] = func(c ctx, k []any) any {
		n := &ast.Select{
			Result:  node(k[1]),
			Filter:  node(k[2]),
			OrderBy: node(k[3]),
			Offset:  node(k[4]),
			Limit:   node(k[5]),
		}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Result, n.Filter, n.OrderBy, n.Offset, n.Limit)
		return n
	}
	actions["Stmt_Insert"] = func(c ctx, k []any) any {
		n := &ast.Insert{TypeName: k[1].(string), Shape: node(k[2]).(*ast.Shape)}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Shape)
		return n
	}
	actions["Stmt_InsertBare"] = func(c ctx, k []any) any {
		n := &ast.Insert{TypeName: k[1].(string)}
		n.SourceSpan = span(c)
		return n
	}
	actions["Stmt_Update"] = func(c ctx, k []any) any {
		n := &ast.Update{TypeName: k[1].(string), Filter: node(k[2]), Set: node(k[4]).(*ast.Shape)}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Filter, n.Set)
		return n
	}
	actions["Stmt_Delete"] = func(c ctx, k []any) any {
		n := &ast.Delete{TypeName: k[1].(string), Filter: node(k[2])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Filter)
		return n
	}
	actions["Stmt_For"] = func(c ctx, k []any) any {
		n := &ast.For{Variable: text(k[1]), Iterable: node(k[3]), Body: node(k[5])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Iterable, n.Body)
		return n
	}
	actions["Stmt_Group"] = func(c ctx, k []any) any {
		var bindings []ast.Binding
		for _, b := range items(k[3]) {
			bindings = append(bindings, b.(ast.Binding))
		}
		n := &ast.Group{Subject: node(k[1]), Bindings: bindings, By: node(k[5]), Into: text(k[7]), Body: node(k[9])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Subject, n.By, n.Body)
		return n
	}
	actions["Stmt_StartTxn"] = txnVerb(ast.TxnStart)
	actions["Stmt_Commit"] = txnVerb(ast.TxnCommit)
	actions["Stmt_Rollback"] = txnVerb(ast.TxnRollback)
	actions["Stmt_ResetSession"] = txnVerb(ast.TxnResetSession)
	actions["Stmt_RollbackTo"] = func(c ctx, k []any) any {
		n := &ast.Transaction{Verb: ast.TxnRollbackTo, Savepoint: text(k[3])}
		n.SourceSpan = span(c)
		return n
	}
	actions["Stmt_DeclareSavepoint"] = func(c ctx, k []any) any {
		n := &ast.Transaction{Verb: ast.TxnDeclareSavepoint, Savepoint: text(k[2])}
		n.SourceSpan = span(c)
		return n
	}

	actions["Stmt_Analyze"] = func(c ctx, k []any) any {
		n := &ast.Analyze{Subject: node(k[1])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Subject)
		return n
	}
	actions["Stmt_DescribeSchema"] = func(c ctx, k []any) any {
		n := &ast.Describe{ObjectKind: "schema"}
		n.SourceSpan = span(c)
		return n
	}
	actions["Stmt_DescribeType"] = func(c ctx, k []any) any {
		n := &ast.Describe{ObjectKind: "type", Name: k[1].(string)}
		n.SourceSpan = span(c)
		return n
	}
	actions["Stmt_Administer"] = func(c ctx, k []any) any {
		var args []ast.Arg
		for _, a := range items(k[3]) {
			args = append(args, a.(ast.Arg))
		}
		n := &ast.Administer{Name: text(k[1]), Args: args}
		n.SourceSpan = span(c)
		for _, a := range args {
			c.reg.Link(n, a.Value)
		}
		return n
	}
	actions["Stmt_ConfigureSet"] = func(c ctx, k []any) any {
		n := &ast.Configure{Name: text(k[3]), Value: node(k[5])}
		n.SourceSpan = span(c)
		c.reg.Link(n, n.Value)
		return n
	}
	actions["Stmt_ConfigureReset"] = func(c ctx, k []any) any {
		n := &ast.Configure{Name: text(k[3])}
		n.SourceSpan = span(c)
		return n
	}
}

func txnVerb(v ast.TransactionVerb) func(ctx, []any) any {
	return func(c ctx, _ []any) any {
		n := &ast.Transaction{Verb: v}
		n.SourceSpan = span(c)
		return n
	}
}

// --- DDL actions -------------------------------------------------------

func registerDDLActions() {
	actions["OptExtending_None"] = func(ctx, []any) any { return "" }
	actions["OptExtending_Some"] = func(_ ctx, k []any) any { return text(k[1]) }
	actions["OptBody_None"] = func(ctx, []any) any { return nil }
	actions["OptBody_Some"] = func(_ ctx, k []any) any { return k[1] }

	actions["PropertyOrLink_Property"] = func(ctx, []any) any { return "property" }
	actions["PropertyOrLink_Link"] = func(ctx, []any) any { return "link" }

	actions["AlterItem_CreateField"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: "create_" + k[1].(string), Value: text(k[2]) + " -> " + k[4].(string)}
	}
	actions["AlterItem_DropField"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: "drop_" + k[1].(string), Value: text(k[2])}
	}
	actions["AlterItem_Rename"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: "rename_to", Value: text(k[2])}
	}

	actions["Param_Positional"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: text(k[0]), Value: k[2].(string)}
	}
	actions["Param_Variadic"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: "variadic_" + text(k[1]), Value: k[3].(string)}
	}

	actions["TypeName_Simple"] = func(_ ctx, k []any) any { return text(k[0]) }
	actions["TypeName_Qualified"] = func(_ ctx, k []any) any { return text(k[0]) + "::" + text(k[2]) }
	actions["TypeName_Array"] = func(_ ctx, k []any) any { return "array<" + k[2].(string) + ">" }
	actions["TypeName_Tuple"] = func(_ ctx, k []any) any {
		s := "tuple<"
		for i, e := range items(k[2]) {
			if i > 0 {
				s += ", "
			}
			s += e.(string)
		}
		return s + ">"
	}
	actions["DDLCommand_CreateType"] = func(c ctx, k []any) any {
		n := &ast.DDLCommand{Verb: "create", ObjectKind: "type", Name: text(k[2])}
		if ext := k[3].(string); ext != "" {
			n.Fields = append(n.Fields, ast.DDLField{Name: "extending", Value: ext})
		}
		for _, f := range items(k[4]) {
			n.Fields = append(n.Fields, f.(ast.DDLField))
		}
		n.SourceSpan = span(c)
		return n
	}
	actions["DDLCommand_AlterType"] = func(c ctx, k []any) any {
		n := &ast.DDLCommand{Verb: "alter", ObjectKind: "type", Name: text(k[2])}
		for _, f := range items(k[4]) {
			n.Fields = append(n.Fields, f.(ast.DDLField))
		}
		n.SourceSpan = span(c)
		return n
	}
	actions["DDLCommand_DropType"] = func(c ctx, k []any) any {
		n := &ast.DDLCommand{Verb: "drop", ObjectKind: "type", Name: text(k[2])}
		n.SourceSpan = span(c)
		return n
	}
	actions["DDLCommand_CreateFunction"] = func(c ctx, k []any) any {
		n := &ast.DDLCommand{Verb: "create", ObjectKind: "function", Name: text(k[2])}
		for _, p := range items(k[4]) {
			n.Fields = append(n.Fields, p.(ast.DDLField))
		}
		n.Fields = append(n.Fields, ast.DDLField{Name: "returns", Value: k[7].(string)})
		n.Fields = append(n.Fields, ast.DDLField{Name: "using", Child: node(k[9])})
		n.SourceSpan = span(c)
		c.reg.Link(n, node(k[9]))
		return n
	}
}

// --- SDL actions -------------------------------------------------------

func registerSDLActions() {
	actions["OptAbstract_None"] = func(ctx, []any) any { return false }
	actions["OptAbstract_Some"] = func(ctx, []any) any { return true }
	actions["OptRequired_None"] = func(ctx, []any) any { return false }
	actions["OptRequired_Some"] = func(ctx, []any) any { return true }
	actions["OptCardinality_None"] = func(ctx, []any) any { return "" }
	actions["OptCardinality_Multi"] = func(ctx, []any) any { return "multi" }
	actions["OptCardinality_Single"] = func(ctx, []any) any { return "single" }

	actions["SDLBodyItem_Property"] = sdlPointerField("property")
	actions["SDLBodyItem_Link"] = sdlPointerField("link")
	actions["SDLBodyItem_Constraint"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: "constraint", Value: text(k[1])}
	}
	actions["SDLBodyItem_Index"] = func(_ ctx, k []any) any {
		return ast.DDLField{Name: "index_on", Child: node(k[3])}
	}

	actions["SDLItem_Type"] = func(c ctx, k []any) any {
		n := &ast.SDLDecl{DeclKind: "type", Name: text(k[2])}
		if k[0].(bool) {
			n.Fields = append(n.Fields, ast.DDLField{Name: "abstract", Value: "true"})
		}
		if ext := k[3].(string); ext != "" {
			n.Fields = append(n.Fields, ast.DDLField{Name: "extending", Value: ext})
		}
		for _, f := range items(k[5]) {
			n.Fields = append(n.Fields, f.(ast.DDLField))
		}
		n.SourceSpan = span(c)
		return n
	}
	actions["SDLItem_Scalar"] = func(c ctx, k []any) any {
		n := &ast.SDLDecl{DeclKind: "scalar", Name: text(k[2])}
		if ext := k[3].(string); ext != "" {
			n.Fields = append(n.Fields, ast.DDLField{Name: "extending", Value: ext})
		}
		n.SourceSpan = span(c)
		return n
	}
	actions["SDLItem_Alias"] = func(c ctx, k []any) any {
		n := &ast.SDLDecl{DeclKind: "alias", Name: text(k[1])}
		n.Fields = append(n.Fields, ast.DDLField{Name: "expr", Child: node(k[3])})
		n.SourceSpan = span(c)
		c.reg.Link(n, node(k[3]))
		return n
	}
	actions["SDLItem_Global"] = func(c ctx, k []any) any {
		n := &ast.SDLDecl{DeclKind: "global", Name: text(k[1])}
		n.Fields = append(n.Fields, ast.DDLField{Name: "type", Value: k[3].(string)})
		n.SourceSpan = span(c)
		return n
	}
}

// sdlPointerField builds the DDLField for an SDLBodyItem_Property/Link
// production: {OptRequired, OptCardinality, "PROPERTY"|"LINK", IDENT,
// "ARROW", TypeName}.
func sdlPointerField(kind string) func(ctx, []any) any {
	return func(_ ctx, k []any) any {
		required := k[0].(bool)
		card := k[1].(string)
		value := k[5].(string)
		if card != "" {
			value = card + " " + value
		}
		if required {
			value = "required " + value
		}
		return ast.DDLField{Name: kind + ":" + text(k[3]), Value: value}
	}
}
