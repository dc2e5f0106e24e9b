package ast

import "github.com/dekarrin/eqlparser/lex"

// --- Expressions -----------------------------------------------------

// Path is a chain of forward (.field), backward (.<field), link-property
// (@prop), index ([i]), slice ([a:b]), and type-intersection
// ([IS Type]) steps applied to a root expression.
type Path struct {
	Base
	Root  Node
	Steps []PathStep
}

func (*Path) Kind() Kind { return KindPath }

// PathStepKind tags which kind of step a PathStep represents.
type PathStepKind uint8

const (
	StepForward PathStepKind = iota
	StepBackward
	StepLinkProp
	StepIndex
	StepSlice
	StepTypeIntersect
	StepShape
)

// PathStep is one segment appended to a Path.
type PathStep struct {
	StepKind PathStepKind
	Name     string // for Forward/Backward/LinkProp/TypeIntersect
	Index    Node   // for Index
	SliceLo  Node   // for Slice (may be nil, meaning open-ended)
	SliceHi  Node   // for Slice (may be nil, meaning open-ended)
	Shape    *Shape // for Shape
}

// BinaryExpr is a two-operand operator application: comparison,
// logical and/or, coalesce, concat, arithmetic, power, or set operator.
type BinaryExpr struct {
	Base
	Op    string
	Left  Node
	Right Node
}

func (*BinaryExpr) Kind() Kind { return KindBinaryExpr }

// UnaryExpr is a single-operand prefix operator: not, unary minus/plus,
// exists, distinct.
type UnaryExpr struct {
	Base
	Op      string
	Operand Node
}

func (*UnaryExpr) Kind() Kind { return KindUnaryExpr }

// IfElse is the ternary conditional expression `A IF Cond ELSE B`.
type IfElse struct {
	Base
	Then Node
	Cond Node
	Else Node
}

func (*IfElse) Kind() Kind { return KindIfElse }

// SetOp is a UNION/INTERSECT/EXCEPT combination of two expressions. Kept
// distinct from BinaryExpr because set operators combine whole result
// sets rather than scalar operands, and normalize/lower treat them
// differently (spec.md §3.6 "Expressions" lists set literal/set
// operators as their own category).
type SetOp struct {
	Base
	Op    string
	Left  Node
	Right Node
}

func (*SetOp) Kind() Kind { return KindSetOp }

// Call is a function invocation with positional and/or named arguments.
type Call struct {
	Base
	Func string
	Args []Arg
}

func (*Call) Kind() Kind { return KindCall }

// Arg is one Call argument, positional (Name == "") or named.
type Arg struct {
	Name  string
	Value Node
}

// Cast is `Operand::TypeName` (spec.md §6's "Key grammar regions" type
// cast — see DESIGN.md's grammar/build.go entry for why this
// implementation uses the postfix spelling rather than EdgeQL's native
// prefix `<T>expr`: that is a curated-grammar decision, not an AST
// difference, so Cast's shape matches what the original cast expression
// would produce either way).
type Cast struct {
	Base
	Operand  Node
	TypeName string
}

func (*Cast) Kind() Kind { return KindCast }

// Tuple is a parenthesized, comma-separated expression list. A
// one-element tuple needs a trailing comma ("(a,)"); a single
// parenthesized expression without one is just grouping and lowers to
// its inner node directly, carrying no Tuple node at all.
type Tuple struct {
	Base
	Elements []Node
}

func (*Tuple) Kind() Kind { return KindTuple }

// Array is a bracketed expression list literal.
type Array struct {
	Base
	Elements []Node
}

func (*Array) Kind() Kind { return KindArray }

// Shape is a `{ field := expr, ... }` object-shape expression, applied
// either standalone or as a Path step.
type Shape struct {
	Base
	Fields []ShapeField
}

func (*Shape) Kind() Kind { return KindShape }

// ShapeField is one entry of a Shape.
type ShapeField struct {
	Name        string
	Value       Node
	Required    bool
	Multi       bool
	LinkProp    bool
	NestedShape *Shape // for `field: { ... }` nested-shape form
}

// LiteralKind tags which Go value a Literal holds.
type LiteralKind uint8

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralBigInt
	LiteralFloat
	LiteralDecimal
	LiteralBytes
	LiteralBool
)

// Literal is a constant value: string, integer (possibly
// arbitrary-precision), float/decimal, bytes, or boolean.
type Literal struct {
	Base
	LitKind  LiteralKind
	Value    lex.Value
	Bool     bool
	Negative bool // computed attribute (spec.md §3.6): folded unary minus
}

func (*Literal) Kind() Kind { return KindLiteral }

// Parameter is a `$name` or `$1` reference.
type Parameter struct {
	Base
	Name string
}

func (*Parameter) Kind() Kind { return KindParameter }

// --- Statements --------------------------------------------------------

// Select is a `SELECT expr FILTER ... ORDER BY ... OFFSET ... LIMIT ...`
// statement.
type Select struct {
	Base
	Result  Node
	Filter  Node // nil if absent
	OrderBy Node // nil if absent
	Offset  Node // nil if absent
	Limit   Node // nil if absent
}

func (*Select) Kind() Kind { return KindSelect }

// Insert is an `INSERT TypeName { ... }` statement.
type Insert struct {
	Base
	TypeName string
	Shape    *Shape // nil for a bare INSERT with no shape
}

func (*Insert) Kind() Kind { return KindInsert }

// Update is an `UPDATE TypeName FILTER ... SET { ... }` statement.
type Update struct {
	Base
	TypeName string
	Filter   Node
	Set      *Shape
}

func (*Update) Kind() Kind { return KindUpdate }

// Delete is a `DELETE TypeName FILTER ...` statement.
type Delete struct {
	Base
	TypeName string
	Filter   Node
}

func (*Delete) Kind() Kind { return KindDelete }

// For is a `FOR x IN expr UNION expr` iteration statement.
type For struct {
	Base
	Variable string
	Iterable Node
	Body     Node
}

func (*For) Kind() Kind { return KindFor }

// Group is a `GROUP expr USING bindings BY expr INTO alias UNION expr`
// statement.
type Group struct {
	Base
	Subject  Node
	Bindings []Binding
	By       Node
	Into     string
	Body     Node
}

func (*Group) Kind() Kind { return KindGroup }

// Binding is one `name := expr` entry of a Group's USING clause.
type Binding struct {
	Name  string
	Value Node
}

// TransactionVerb enumerates the transaction-control statement forms.
type TransactionVerb uint8

const (
	TxnStart TransactionVerb = iota
	TxnCommit
	TxnRollback
	TxnRollbackTo
	TxnDeclareSavepoint
	TxnResetSession
)

// Transaction is a transaction-control statement: START TRANSACTION,
// COMMIT, ROLLBACK [TO SAVEPOINT name], DECLARE SAVEPOINT name, or
// RESET SESSION.
type Transaction struct {
	Base
	Verb      TransactionVerb
	Savepoint string
}

func (*Transaction) Kind() Kind { return KindTransaction }

// Analyze is an `ANALYZE stmt` statement: run Subject and report its
// performance profile instead of its result (spec.md §3.6 "analyze").
type Analyze struct {
	Base
	Subject Node
}

func (*Analyze) Kind() Kind { return KindAnalyze }

// Describe is a `DESCRIBE SCHEMA` or `DESCRIBE <type>` statement
// (spec.md §3.6 "describe"). ObjectKind is "schema" for the former, or
// the describable object's kind ("type" today) for the latter; Name is
// empty for DESCRIBE SCHEMA.
type Describe struct {
	Base
	ObjectKind string
	Name       string
}

func (*Describe) Kind() Kind { return KindDescribe }

// Administer invokes a built-in administrative function, e.g.
// `ADMINISTER vacuum()` (spec.md §3.6 "administer"). Shares Call's
// Arg shape rather than introducing a second one.
type Administer struct {
	Base
	Name string
	Args []Arg
}

func (*Administer) Kind() Kind { return KindAdminister }

// Configure is a `CONFIGURE SESSION SET name := expr` or `CONFIGURE
// SESSION RESET name` statement (spec.md §3.6 "configure"). Value is
// nil for the RESET form.
type Configure struct {
	Base
	Name  string
	Value Node
}

func (*Configure) Kind() Kind { return KindConfigure }

// --- DDL / SDL -----------------------------------------------------

// DDLCommand is a schema-modifying command: CREATE/ALTER/DROP over any
// schema object kind spec.md §3.6 names (type, link, property,
// constraint, function, operator, cast, index, module, database, role,
// extension, migration). A single generic shape — Verb, ObjectKind,
// Name, plus an ordered Fields list — covers all of them rather than a
// dedicated Go type per (verb, object-kind) pair, matching spec.md
// §3.6's own framing of AST nodes as having "a canonical field list
// discoverable via reflection" rather than bespoke accessor methods per
// kind; DDLField keeps that field list ordered and named so callers can
// still recover exactly what a specific command carries.
type DDLCommand struct {
	Base
	Verb       string // "create", "alter", "drop"
	ObjectKind string // "type", "function", "property", "link", ...
	Name       string
	Fields     []DDLField
}

func (*DDLCommand) Kind() Kind { return KindDDL }

// DDLField is one named attribute of a DDLCommand or SDLDecl: an
// extends-clause, a nested property/link declaration, a function
// parameter, a USING body expression, and so on. Value and Child cover
// scalar and node-shaped attributes respectively; exactly one is set.
type DDLField struct {
	Name  string
	Value string
	Child Node
}

// SDLDecl is one declaration within an SDL document: a type, scalar
// type, alias, or global, optionally with a nested body of further
// SDLDecl entries (spec.md §3.6 "SDL declarations: parallel hierarchy
// used in schema-definition files"). Shares DDLCommand's generic
// field-list shape for the same reflection-friendly reason.
type SDLDecl struct {
	Base
	DeclKind string // "type", "scalar", "alias", "global"
	Name     string
	Fields   []DDLField
	Body     []*SDLDecl
}

func (*SDLDecl) Kind() Kind { return KindSDL }

// --- Roots -----------------------------------------------------------

// Block is the root node for the BLOCK dialect: an ordered list of
// statements.
type Block struct {
	Base
	Statements []Node
}

func (*Block) Kind() Kind { return KindBlock }

// Fragment is the root node for the FRAGMENT dialect: a single
// expression or statement.
type Fragment struct {
	Base
	Body Node
}

func (*Fragment) Kind() Kind { return KindFragment }

// MigrationBody is the root node for the MIGRATION dialect: an ordered
// list of DDL commands.
type MigrationBody struct {
	Base
	Commands []Node
}

func (*MigrationBody) Kind() Kind { return KindDDL }

// ExtensionBody is the root node for the EXTENSION dialect: an ordered
// list of SDL declarations and/or DDL commands.
type ExtensionBody struct {
	Base
	Items []Node
}

func (*ExtensionBody) Kind() Kind { return KindDDL }

// SDLDocumentRoot is the root node for the SDLDOCUMENT dialect: an
// ordered list of top-level SDL declarations.
type SDLDocumentRoot struct {
	Base
	Decls []*SDLDecl
}

func (*SDLDocumentRoot) Kind() Kind { return KindSDL }
