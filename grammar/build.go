package grammar

// Nonterminal names, exported so parse/lower/ast can refer to productions
// by name without re-declaring string literals (spec.md §4.4 "a
// collection of nonterminal classes"). This is new code — there is no
// teacher grammar declaration to adapt, since tunascript's grammar is a
// completely different (much smaller) language — grounded instead on the
// *pattern* of a hand-declared production list
// (tunascript/fe/sdts.ict.go's per-nonterminal binder functions) and on
// original_source/edb/edgeql/parser/grammar/*.py for which productions
// exist for each construct (SPEC_FULL.md §6).
const (
	NTStart = "Start"

	NTBlock      = "Block"
	NTFragment   = "Fragment"
	NTMigBody    = "MigrationBody"
	NTExtBody    = "ExtensionBody"
	NTSDLDoc     = "SDLDocument"
	NTStmtList   = "StmtList"
	NTStmt       = "Stmt"

	NTExpr         = "Expr"
	NTUnionExpr    = "UnionExpr"
	NTOrExpr       = "OrExpr"
	NTAndExpr      = "AndExpr"
	NTNotExpr      = "NotExpr"
	NTCompExpr     = "CompExpr"
	NTCoalesceExpr = "CoalesceExpr"
	NTConcatExpr   = "ConcatExpr"
	NTAddExpr      = "AddExpr"
	NTMulExpr      = "MulExpr"
	NTUnaryExpr    = "UnaryExpr"
	NTPowExpr      = "PowExpr"
	NTCastExpr     = "CastExpr"
	NTPathExpr     = "PathExpr"
	NTAtom         = "Atom"

	NTExprListOpt = "ExprListOpt"
	NTExprList    = "ExprList"
	NTArgListOpt  = "ArgListOpt"
	NTArgList     = "ArgList"
	NTArg         = "Arg"

	NTShape         = "Shape"
	NTShapeFieldList = "ShapeFieldList"
	NTShapeField     = "ShapeField"

	NTOptFilter  = "OptFilter"
	NTOptOrderBy = "OptOrderBy"
	NTOptOffset  = "OptOffset"
	NTOptLimit   = "OptLimit"

	NTBindingList = "BindingList"
	NTBinding     = "Binding"

	NTTypeName     = "TypeName"
	NTTypeNameList = "TypeNameList"

	NTDDLCommandList = "DDLCommandList"
	NTDDLCommand     = "DDLCommand"
	NTOptExtending   = "OptExtending"
	NTOptBody        = "OptBody"
	NTAlterItemList  = "AlterItemList"
	NTAlterItem      = "AlterItem"
	NTPropertyOrLink = "PropertyOrLink"
	NTParamListOpt   = "ParamListOpt"
	NTParamList      = "ParamList"
	NTParam          = "Param"

	NTSDLItemList  = "SDLItemList"
	NTSDLItem      = "SDLItem"
	NTSDLBodyList  = "SDLBodyList"
	NTSDLBodyItem  = "SDLBodyItem"
	NTOptAbstract  = "OptAbstract"
	NTOptRequired  = "OptRequired"
	NTOptCardinality = "OptCardinality"

	NTExtItemList = "ExtItemList"
	NTExtItem     = "ExtItem"
)

const noInline = -1

// Build declares the curated LR(1)-clean grammar subset described in
// SPEC_FULL.md §6: every dialect start symbol, the full layered-precedence
// expression grammar spec.md's "Key grammar regions" names, and a
// representative statement/DDL/SDL surface. The grammar's single Start
// nonterminal branches on which pseudo-start token (spec.md §4.2) was
// prepended to the token stream, so one set of tables serves all five
// dialects.
func Build() *Grammar {
	g := New(NTStart)

	addTerminals(g)

	g.AddRule(NTStart, []string{"STARTBLOCK", NTBlock}, "Start_Block", 1)
	g.AddRule(NTStart, []string{"STARTFRAGMENT", NTFragment}, "Start_Fragment", 1)
	g.AddRule(NTStart, []string{"STARTMIGRATION", NTMigBody}, "Start_Migration", 1)
	g.AddRule(NTStart, []string{"STARTEXTENSION", NTExtBody}, "Start_Extension", 1)
	g.AddRule(NTStart, []string{"STARTSDLDOCUMENT", NTSDLDoc}, "Start_SDL", 1)

	buildBlock(g)
	buildExpr(g)
	buildShape(g)
	buildDDL(g)
	buildSDL(g)

	return g
}

func addTerminals(g *Grammar) {
	for _, t := range []string{
		"STARTBLOCK", "STARTFRAGMENT", "STARTMIGRATION", "STARTEXTENSION", "STARTSDLDOCUMENT",
		"IDENT", "DUNDER", "ICONST", "NICONST", "FCONST", "NFCONST", "SCONST", "BCONST", "PARAMETER",
		"DOT", "DOTLT", "DOUBLECOLON", "COLONEQUALS", "ARROW", "COMMA",
		"LPAREN", "RPAREN", "LBRACE", "RBRACE", "LBRACKET", "RBRACKET",
		"SEMICOLON", "COLON", "AT",
		"EQUALS", "NOTEQUALS", "DISTINCTFROM", "NDISTINCTFROM", "GE", "LE", "LT", "GT",
		"PLUS", "MINUS", "STAR", "SLASH", "DOUBLESLASH", "DOUBLESTAR", "PERCENT", "CARET",
		"DOUBLEPLUS", "COALESCE", "AMP", "PIPE", "EXCLAIM",
		"NAMEDONLY", "SETTYPE", "EXTENSIONPACKAGE", "ORDERBY",
		"SELECT", "INSERT", "UPDATE", "DELETE", "FOR", "IN", "UNION", "INTERSECT", "EXCEPT",
		"GROUP", "USING", "BY", "INTO", "FILTER", "OFFSET", "LIMIT", "SET", "TYPE",
		"SCALAR", "ABSTRACT", "FUNCTION", "CREATE", "ALTER", "DROP", "EXTENDING", "WITH",
		"MODULE", "IF", "ELSE", "TRUE", "FALSE", "NOT", "AND", "OR", "EXISTS", "DISTINCT",
		"IS", "LIKE", "ILIKE", "NAMED", "ONLY", "EXTENSION", "PACKAGE",
		"START", "TRANSACTION", "COMMIT", "ROLLBACK", "DECLARE", "SAVEPOINT", "TO",
		"ANALYZE", "DESCRIBE", "ADMINISTER", "CONFIGURE",
		"MIGRATION", "SCHEMA", "LINK", "PROPERTY", "CONSTRAINT", "INDEX", "REQUIRED",
		"MULTI", "SINGLE", "ON", "OF", "AS", "OPTIONAL", "TUPLE", "ARRAY",
		"GLOBAL", "ALIAS", "RENAME", "RESET", "SESSION", "VARIADIC",
	} {
		g.AddTerm(t)
	}
}

func buildBlock(g *Grammar) {
	g.AddRule(NTBlock, []string{NTStmtList}, "Block_Stmts", noInline)
	g.AddRule(NTStmtList, []string{}, "StmtList_Empty", noInline)
	g.AddRule(NTStmtList, []string{NTStmtList, NTStmt, "SEMICOLON"}, "StmtList_Append", noInline)

	g.AddRule(NTFragment, []string{NTExpr}, "Fragment_Expr", noInline)
	g.AddRule(NTFragment, []string{NTStmt}, "Fragment_Stmt", noInline)

	g.AddRule(NTStmt, []string{"SELECT", NTExpr, NTOptFilter, NTOptOrderBy, NTOptOffset, NTOptLimit}, "Stmt_Select", noInline)
	g.AddRule(NTStmt, []string{"INSERT", NTTypeName, NTShape}, "Stmt_Insert", noInline)
	g.AddRule(NTStmt, []string{"INSERT", NTTypeName}, "Stmt_InsertBare", noInline)
	g.AddRule(NTStmt, []string{"UPDATE", NTTypeName, NTOptFilter, "SET", NTShape}, "Stmt_Update", noInline)
	g.AddRule(NTStmt, []string{"DELETE", NTTypeName, NTOptFilter}, "Stmt_Delete", noInline)
	g.AddRule(NTStmt, []string{"FOR", "IDENT", "IN", NTExpr, "UNION", NTExpr}, "Stmt_For", noInline)
	g.AddRule(NTStmt, []string{"GROUP", NTExpr, "USING", NTBindingList, "BY", NTExpr, "INTO", "IDENT", "UNION", NTExpr}, "Stmt_Group", noInline)
	g.AddRule(NTStmt, []string{"START", "TRANSACTION"}, "Stmt_StartTxn", noInline)
	g.AddRule(NTStmt, []string{"COMMIT"}, "Stmt_Commit", noInline)
	g.AddRule(NTStmt, []string{"ROLLBACK"}, "Stmt_Rollback", noInline)
	g.AddRule(NTStmt, []string{"ROLLBACK", "TO", "SAVEPOINT", "IDENT"}, "Stmt_RollbackTo", noInline)
	g.AddRule(NTStmt, []string{"DECLARE", "SAVEPOINT", "IDENT"}, "Stmt_DeclareSavepoint", noInline)
	g.AddRule(NTStmt, []string{"RESET", "SESSION"}, "Stmt_ResetSession", noInline)
	g.AddRule(NTStmt, []string{"ANALYZE", NTStmt}, "Stmt_Analyze", noInline)
	g.AddRule(NTStmt, []string{"DESCRIBE", "SCHEMA"}, "Stmt_DescribeSchema", noInline)
	g.AddRule(NTStmt, []string{"DESCRIBE", NTTypeName}, "Stmt_DescribeType", noInline)
	g.AddRule(NTStmt, []string{"ADMINISTER", "IDENT", "LPAREN", NTArgListOpt, "RPAREN"}, "Stmt_Administer", noInline)
	g.AddRule(NTStmt, []string{"CONFIGURE", "SESSION", "SET", "IDENT", "COLONEQUALS", NTExpr}, "Stmt_ConfigureSet", noInline)
	g.AddRule(NTStmt, []string{"CONFIGURE", "SESSION", "RESET", "IDENT"}, "Stmt_ConfigureReset", noInline)
	g.AddRule(NTStmt, []string{NTDDLCommand}, "Stmt_DDL", 0)

	g.AddRule(NTOptFilter, []string{}, "OptFilter_None", noInline)
	g.AddRule(NTOptFilter, []string{"FILTER", NTExpr}, "OptFilter_Some", noInline)
	g.AddRule(NTOptOrderBy, []string{}, "OptOrderBy_None", noInline)
	g.AddRule(NTOptOrderBy, []string{"ORDERBY", NTExpr}, "OptOrderBy_Some", noInline)
	g.AddRule(NTOptOffset, []string{}, "OptOffset_None", noInline)
	g.AddRule(NTOptOffset, []string{"OFFSET", NTExpr}, "OptOffset_Some", noInline)
	g.AddRule(NTOptLimit, []string{}, "OptLimit_None", noInline)
	g.AddRule(NTOptLimit, []string{"LIMIT", NTExpr}, "OptLimit_Some", noInline)

	g.AddRule(NTBindingList, []string{NTBinding}, "BindingList_One", noInline)
	g.AddRule(NTBindingList, []string{NTBindingList, "COMMA", NTBinding}, "BindingList_Append", noInline)
	g.AddRule(NTBinding, []string{"IDENT", "COLONEQUALS", NTExpr}, "Binding", noInline)
}

func buildExpr(g *Grammar) {
	g.AddRule(NTExpr, []string{NTUnionExpr}, "Expr_Pass", 0)
	g.AddRule(NTUnionExpr, []string{NTOrExpr}, "UnionExpr_Pass", 0)
	g.AddRule(NTUnionExpr, []string{NTUnionExpr, "UNION", NTOrExpr}, "UnionExpr_Union", noInline)
	g.AddRule(NTUnionExpr, []string{NTUnionExpr, "INTERSECT", NTOrExpr}, "UnionExpr_Intersect", noInline)
	g.AddRule(NTUnionExpr, []string{NTUnionExpr, "EXCEPT", NTOrExpr}, "UnionExpr_Except", noInline)
	g.AddRule(NTUnionExpr, []string{NTUnionExpr, "IF", NTOrExpr, "ELSE", NTUnionExpr}, "UnionExpr_IfElse", noInline)

	g.AddRule(NTOrExpr, []string{NTAndExpr}, "OrExpr_Pass", 0)
	g.AddRule(NTOrExpr, []string{NTOrExpr, "OR", NTAndExpr}, "OrExpr_Or", noInline)

	g.AddRule(NTAndExpr, []string{NTNotExpr}, "AndExpr_Pass", 0)
	g.AddRule(NTAndExpr, []string{NTAndExpr, "AND", NTNotExpr}, "AndExpr_And", noInline)

	g.AddRule(NTNotExpr, []string{NTCompExpr}, "NotExpr_Pass", 0)
	g.AddRule(NTNotExpr, []string{"NOT", NTNotExpr}, "NotExpr_Not", noInline)
	g.AddRule(NTNotExpr, []string{"EXISTS", NTCompExpr}, "NotExpr_Exists", noInline)
	g.AddRule(NTNotExpr, []string{"DISTINCT", NTCompExpr}, "NotExpr_Distinct", noInline)

	g.AddRule(NTCompExpr, []string{NTCoalesceExpr}, "CompExpr_Pass", 0)
	for _, op := range []string{"EQUALS", "NOTEQUALS", "DISTINCTFROM", "NDISTINCTFROM", "GE", "LE", "LT", "GT", "IS", "LIKE", "ILIKE"} {
		g.AddRule(NTCompExpr, []string{NTCompExpr, op, NTCoalesceExpr}, "CompExpr_"+op, noInline)
	}

	g.AddRule(NTCoalesceExpr, []string{NTConcatExpr}, "CoalesceExpr_Pass", 0)
	g.AddRule(NTCoalesceExpr, []string{NTCoalesceExpr, "COALESCE", NTConcatExpr}, "CoalesceExpr_Coalesce", noInline)

	g.AddRule(NTConcatExpr, []string{NTAddExpr}, "ConcatExpr_Pass", 0)
	g.AddRule(NTConcatExpr, []string{NTConcatExpr, "DOUBLEPLUS", NTAddExpr}, "ConcatExpr_Concat", noInline)

	g.AddRule(NTAddExpr, []string{NTMulExpr}, "AddExpr_Pass", 0)
	g.AddRule(NTAddExpr, []string{NTAddExpr, "PLUS", NTMulExpr}, "AddExpr_Add", noInline)
	g.AddRule(NTAddExpr, []string{NTAddExpr, "MINUS", NTMulExpr}, "AddExpr_Sub", noInline)

	g.AddRule(NTMulExpr, []string{NTUnaryExpr}, "MulExpr_Pass", 0)
	g.AddRule(NTMulExpr, []string{NTMulExpr, "STAR", NTUnaryExpr}, "MulExpr_Mul", noInline)
	g.AddRule(NTMulExpr, []string{NTMulExpr, "SLASH", NTUnaryExpr}, "MulExpr_Div", noInline)
	g.AddRule(NTMulExpr, []string{NTMulExpr, "DOUBLESLASH", NTUnaryExpr}, "MulExpr_FloorDiv", noInline)
	g.AddRule(NTMulExpr, []string{NTMulExpr, "PERCENT", NTUnaryExpr}, "MulExpr_Mod", noInline)

	g.AddRule(NTUnaryExpr, []string{NTPowExpr}, "UnaryExpr_Pass", 0)
	g.AddRule(NTUnaryExpr, []string{"MINUS", NTUnaryExpr}, "UnaryExpr_Neg", noInline)
	g.AddRule(NTUnaryExpr, []string{"PLUS", NTUnaryExpr}, "UnaryExpr_Pos", noInline)

	g.AddRule(NTPowExpr, []string{NTCastExpr}, "PowExpr_Pass", 0)
	g.AddRule(NTPowExpr, []string{NTCastExpr, "CARET", NTUnaryExpr}, "PowExpr_Pow", noInline)
	g.AddRule(NTPowExpr, []string{NTCastExpr, "DOUBLESTAR", NTUnaryExpr}, "PowExpr_PowAlt", noInline)

	g.AddRule(NTCastExpr, []string{NTPathExpr}, "CastExpr_Pass", 0)

	g.AddRule(NTPathExpr, []string{NTAtom}, "PathExpr_Pass", 0)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "DOUBLECOLON", NTTypeName}, "PathExpr_Cast", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "DOT", "IDENT"}, "PathExpr_Forward", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "DOTLT", "IDENT"}, "PathExpr_Backward", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "AT", "IDENT"}, "PathExpr_LinkProp", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "LBRACKET", NTExpr, "RBRACKET"}, "PathExpr_Index", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "LBRACKET", NTExpr, "COLON", NTExpr, "RBRACKET"}, "PathExpr_Slice", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, "LBRACKET", "IS", NTTypeName, "RBRACKET"}, "PathExpr_TypeIntersect", noInline)
	g.AddRule(NTPathExpr, []string{NTPathExpr, NTShape}, "PathExpr_Shape", noInline)

	g.AddRule(NTAtom, []string{"IDENT"}, "Atom_Ident", noInline)
	g.AddRule(NTAtom, []string{"ICONST"}, "Atom_IConst", noInline)
	g.AddRule(NTAtom, []string{"NICONST"}, "Atom_NIConst", noInline)
	g.AddRule(NTAtom, []string{"FCONST"}, "Atom_FConst", noInline)
	g.AddRule(NTAtom, []string{"NFCONST"}, "Atom_NFConst", noInline)
	g.AddRule(NTAtom, []string{"SCONST"}, "Atom_SConst", noInline)
	g.AddRule(NTAtom, []string{"BCONST"}, "Atom_BConst", noInline)
	g.AddRule(NTAtom, []string{"PARAMETER"}, "Atom_Parameter", noInline)
	g.AddRule(NTAtom, []string{"TRUE"}, "Atom_True", noInline)
	g.AddRule(NTAtom, []string{"FALSE"}, "Atom_False", noInline)
	g.AddRule(NTAtom, []string{"LPAREN", "RPAREN"}, "Atom_EmptyTuple", noInline)
	g.AddRule(NTAtom, []string{"LPAREN", NTExpr, "RPAREN"}, "Atom_Group", 1)
	g.AddRule(NTAtom, []string{"LPAREN", NTExpr, "COMMA", NTExprListOpt, "RPAREN"}, "Atom_Tuple", noInline)
	g.AddRule(NTAtom, []string{"LBRACKET", NTExprListOpt, "RBRACKET"}, "Atom_Array", noInline)
	g.AddRule(NTAtom, []string{"IDENT", "LPAREN", NTArgListOpt, "RPAREN"}, "Atom_Call", noInline)
	g.AddRule(NTAtom, []string{NTShape}, "Atom_Shape", 0)

	g.AddRule(NTExprListOpt, []string{}, "ExprListOpt_Empty", noInline)
	g.AddRule(NTExprListOpt, []string{NTExprList}, "ExprListOpt_Some", 0)
	g.AddRule(NTExprList, []string{NTExpr}, "ExprList_One", noInline)
	g.AddRule(NTExprList, []string{NTExprList, "COMMA", NTExpr}, "ExprList_Append", noInline)

	g.AddRule(NTArgListOpt, []string{}, "ArgListOpt_Empty", noInline)
	g.AddRule(NTArgListOpt, []string{NTArgList}, "ArgListOpt_Some", 0)
	g.AddRule(NTArgList, []string{NTArg}, "ArgList_One", noInline)
	g.AddRule(NTArgList, []string{NTArgList, "COMMA", NTArg}, "ArgList_Append", noInline)
	g.AddRule(NTArg, []string{NTExpr}, "Arg_Positional", noInline)
	g.AddRule(NTArg, []string{"IDENT", "COLONEQUALS", NTExpr}, "Arg_Named", noInline)
}

func buildShape(g *Grammar) {
	g.AddRule(NTShape, []string{"LBRACE", "RBRACE"}, "Shape_Empty", noInline)
	g.AddRule(NTShape, []string{"LBRACE", NTShapeFieldList, "RBRACE"}, "Shape_Fields", noInline)
	g.AddRule(NTShapeFieldList, []string{NTShapeField}, "ShapeFieldList_One", noInline)
	g.AddRule(NTShapeFieldList, []string{NTShapeFieldList, "COMMA", NTShapeField}, "ShapeFieldList_Append", noInline)

	g.AddRule(NTShapeField, []string{"IDENT", "COLONEQUALS", NTExpr}, "ShapeField_Computed", noInline)
	g.AddRule(NTShapeField, []string{"MULTI", "IDENT", "COLONEQUALS", NTExpr}, "ShapeField_Multi", noInline)
	g.AddRule(NTShapeField, []string{"REQUIRED", "IDENT", "COLONEQUALS", NTExpr}, "ShapeField_Required", noInline)
	g.AddRule(NTShapeField, []string{"AT", "IDENT", "COLONEQUALS", NTExpr}, "ShapeField_LinkProp", noInline)
	g.AddRule(NTShapeField, []string{"IDENT", "COLON", NTShape}, "ShapeField_Nested", noInline)
}

func buildDDL(g *Grammar) {
	g.AddRule(NTMigBody, []string{NTDDLCommandList}, "MigrationBody_Commands", noInline)
	g.AddRule(NTDDLCommandList, []string{}, "DDLCommandList_Empty", noInline)
	g.AddRule(NTDDLCommandList, []string{NTDDLCommandList, NTDDLCommand, "SEMICOLON"}, "DDLCommandList_Append", noInline)

	g.AddRule(NTDDLCommand, []string{"CREATE", "TYPE", "IDENT", NTOptExtending, NTOptBody}, "DDLCommand_CreateType", noInline)
	g.AddRule(NTDDLCommand, []string{"ALTER", "TYPE", "IDENT", "LBRACE", NTAlterItemList, "RBRACE"}, "DDLCommand_AlterType", noInline)
	g.AddRule(NTDDLCommand, []string{"DROP", "TYPE", "IDENT"}, "DDLCommand_DropType", noInline)
	g.AddRule(NTDDLCommand, []string{"CREATE", "FUNCTION", "IDENT", "LPAREN", NTParamListOpt, "RPAREN", "ARROW", NTTypeName, "USING", NTExpr}, "DDLCommand_CreateFunction", noInline)

	g.AddRule(NTOptExtending, []string{}, "OptExtending_None", noInline)
	g.AddRule(NTOptExtending, []string{"EXTENDING", "IDENT"}, "OptExtending_Some", noInline)
	g.AddRule(NTOptBody, []string{}, "OptBody_None", noInline)
	g.AddRule(NTOptBody, []string{"LBRACE", NTSDLBodyList, "RBRACE"}, "OptBody_Some", noInline)

	g.AddRule(NTAlterItemList, []string{}, "AlterItemList_Empty", noInline)
	g.AddRule(NTAlterItemList, []string{NTAlterItemList, NTAlterItem, "SEMICOLON"}, "AlterItemList_Append", noInline)
	g.AddRule(NTAlterItem, []string{"CREATE", NTPropertyOrLink, "IDENT", "ARROW", NTTypeName}, "AlterItem_CreateField", noInline)
	g.AddRule(NTAlterItem, []string{"DROP", NTPropertyOrLink, "IDENT"}, "AlterItem_DropField", noInline)
	g.AddRule(NTAlterItem, []string{"RENAME", "TO", "IDENT"}, "AlterItem_Rename", noInline)
	g.AddRule(NTPropertyOrLink, []string{"PROPERTY"}, "PropertyOrLink_Property", noInline)
	g.AddRule(NTPropertyOrLink, []string{"LINK"}, "PropertyOrLink_Link", noInline)

	g.AddRule(NTParamListOpt, []string{}, "ParamListOpt_Empty", noInline)
	g.AddRule(NTParamListOpt, []string{NTParamList}, "ParamListOpt_Some", 0)
	g.AddRule(NTParamList, []string{NTParam}, "ParamList_One", noInline)
	g.AddRule(NTParamList, []string{NTParamList, "COMMA", NTParam}, "ParamList_Append", noInline)
	g.AddRule(NTParam, []string{"IDENT", "COLON", NTTypeName}, "Param_Positional", noInline)
	g.AddRule(NTParam, []string{"VARIADIC", "IDENT", "COLON", NTTypeName}, "Param_Variadic", noInline)

	g.AddRule(NTTypeName, []string{"IDENT"}, "TypeName_Simple", noInline)
	g.AddRule(NTTypeName, []string{"IDENT", "DOUBLECOLON", "IDENT"}, "TypeName_Qualified", noInline)
	g.AddRule(NTTypeName, []string{"ARRAY", "LT", NTTypeName, "GT"}, "TypeName_Array", noInline)
	g.AddRule(NTTypeName, []string{"TUPLE", "LT", NTTypeNameList, "GT"}, "TypeName_Tuple", noInline)
	g.AddRule(NTTypeNameList, []string{NTTypeName}, "TypeNameList_One", noInline)
	g.AddRule(NTTypeNameList, []string{NTTypeNameList, "COMMA", NTTypeName}, "TypeNameList_Append", noInline)

	g.AddRule(NTExtBody, []string{NTExtItemList}, "ExtensionBody_Items", noInline)
	g.AddRule(NTExtItemList, []string{}, "ExtItemList_Empty", noInline)
	g.AddRule(NTExtItemList, []string{NTExtItemList, NTExtItem, "SEMICOLON"}, "ExtItemList_Append", noInline)
	g.AddRule(NTExtItem, []string{NTSDLItem}, "ExtItem_SDL", 0)
	g.AddRule(NTExtItem, []string{NTDDLCommand}, "ExtItem_DDL", 0)
}

func buildSDL(g *Grammar) {
	g.AddRule(NTSDLDoc, []string{NTSDLItemList}, "SDLDocument_Items", noInline)
	g.AddRule(NTSDLItemList, []string{}, "SDLItemList_Empty", noInline)
	g.AddRule(NTSDLItemList, []string{NTSDLItemList, NTSDLItem, "SEMICOLON"}, "SDLItemList_Append", noInline)

	g.AddRule(NTSDLItem, []string{NTOptAbstract, "TYPE", "IDENT", NTOptExtending, "LBRACE", NTSDLBodyList, "RBRACE"}, "SDLItem_Type", noInline)
	g.AddRule(NTSDLItem, []string{"SCALAR", "TYPE", "IDENT", NTOptExtending}, "SDLItem_Scalar", noInline)
	g.AddRule(NTSDLItem, []string{"ALIAS", "IDENT", "COLONEQUALS", NTExpr}, "SDLItem_Alias", noInline)
	g.AddRule(NTSDLItem, []string{"GLOBAL", "IDENT", "ARROW", NTTypeName}, "SDLItem_Global", noInline)

	g.AddRule(NTOptAbstract, []string{}, "OptAbstract_None", noInline)
	g.AddRule(NTOptAbstract, []string{"ABSTRACT"}, "OptAbstract_Some", noInline)

	g.AddRule(NTSDLBodyList, []string{}, "SDLBodyList_Empty", noInline)
	g.AddRule(NTSDLBodyList, []string{NTSDLBodyList, NTSDLBodyItem, "SEMICOLON"}, "SDLBodyList_Append", noInline)

	g.AddRule(NTSDLBodyItem, []string{NTOptRequired, NTOptCardinality, "PROPERTY", "IDENT", "ARROW", NTTypeName}, "SDLBodyItem_Property", noInline)
	g.AddRule(NTSDLBodyItem, []string{NTOptRequired, NTOptCardinality, "LINK", "IDENT", "ARROW", NTTypeName}, "SDLBodyItem_Link", noInline)
	g.AddRule(NTSDLBodyItem, []string{"CONSTRAINT", "IDENT"}, "SDLBodyItem_Constraint", noInline)
	g.AddRule(NTSDLBodyItem, []string{"INDEX", "ON", "LPAREN", NTExpr, "RPAREN"}, "SDLBodyItem_Index", noInline)

	g.AddRule(NTOptRequired, []string{}, "OptRequired_None", noInline)
	g.AddRule(NTOptRequired, []string{"REQUIRED"}, "OptRequired_Some", noInline)
	g.AddRule(NTOptCardinality, []string{}, "OptCardinality_None", noInline)
	g.AddRule(NTOptCardinality, []string{"MULTI"}, "OptCardinality_Multi", noInline)
	g.AddRule(NTOptCardinality, []string{"SINGLE"}, "OptCardinality_Single", noInline)
}
