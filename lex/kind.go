package lex

// Kind identifies a token's lexical category: structural punctuation, a
// literal class, one tag per keyword, a pseudo-start token used for
// dialect selection, or end-of-input (spec.md §3.2). This is a closed set
// known at compile time, so — unlike the teacher's pluggable
// types.TokenClass interface (internal/ictiobus/types/class.go), built for
// a grammar whose terminal set is declared at runtime by a client of the
// ictiobus toolkit — it is a plain integer enum with a name table.
type Kind uint16

const (
	KindUndefined Kind = iota

	// end of input
	KindEOI

	// literal classes
	KindIdent
	KindDunder // __name__ where name is also a keyword (spec.md §4.1)
	KindIconst
	KindNiconst
	KindFconst
	KindNfconst
	KindSconst
	KindBconst
	KindParameter

	// structural punctuation / operators, longest-match first where
	// ambiguous (spec.md §4.1, "Operator fusing"/"matched with
	// longest-match priority")
	KindDot          // .
	KindDotLt        // .<
	KindDoubleColon  // ::
	KindColonEquals  // :=
	KindArrow        // ->
	KindComma        // ,
	KindLParen       // (
	KindRParen       // )
	KindLBrace       // {
	KindRBrace       // }
	KindLBracket     // [
	KindRBracket     // ]
	KindSemicolon    // ;
	KindColon        // :
	KindAt           // @
	KindEquals       // =
	KindNotEquals    // !=
	KindDistinctFrom // ?!=
	KindNDistinctFrom // ?=
	KindGe           // >=
	KindLe           // <=
	KindLt           // <
	KindGt           // >
	KindPlus         // +
	KindMinus        // -
	KindStar         // *
	KindSlash        // /
	KindDoubleSlash  // //
	KindDoubleStar   // **
	KindPercent      // %
	KindCaret        // ^
	KindDoublePlus   // ++
	KindCoalesce     // ??
	KindAmp          // &
	KindPipe         // |
	KindExclaim      // !
	KindDollar       // $ (only when not starting a parameter or dollar-quote)

	// fused two-word operators (spec.md §4.1, "Operator fusing")
	KindNamedOnly        // NAMED ONLY
	KindSetType          // SET TYPE
	KindExtensionPackage // EXTENSION PACKAGE
	KindOrderBy          // ORDER BY

	// pseudo-start tokens (spec.md §3.2, §4.2) — never produced by the
	// tokenizer; the caller of parse.Engine.Parse (eql's parse functions)
	// prepends one to select a dialect.
	KindStartBlock
	KindStartFragment
	KindStartMigration
	KindStartExtension
	KindStartSDLDocument

	// keywords — one Kind per keyword (spec.md §3.2). The grammar subset
	// implemented in grammar/build.go (SPEC_FULL.md §6) exercises most of
	// these directly; a handful are classified but only reachable once the
	// grammar is extended, matching spec.md's requirement that the keyword
	// table itself is authoritative independent of grammar coverage.
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
	KindFor
	KindIn
	KindUnion
	KindIntersect
	KindExcept
	KindGroup
	KindUsing
	KindBy
	KindInto
	KindFilter
	KindOrder
	KindOffset
	KindLimit
	KindSet
	KindType
	KindScalar
	KindAbstract
	KindFunction
	KindCreate
	KindAlter
	KindDrop
	KindExtending
	KindWith
	KindModule
	KindIf
	KindElse
	KindTrue
	KindFalse
	KindNot
	KindAnd
	KindOr
	KindExists
	KindDistinct
	KindIs
	KindLike
	KindIlike
	KindNamed
	KindOnly
	KindExtension
	KindPackage
	KindStart
	KindCommit
	KindRollback
	KindDeclare
	KindSavepoint
	KindTo
	KindAnalyze
	KindExplain
	KindDescribe
	KindAdminister
	KindConfigure
	KindMigration
	KindSchema
	KindLink
	KindProperty
	KindConstraint
	KindIndex
	KindRequired
	KindMultiCardinality
	KindSingleCardinality
	KindOn
	KindOf
	KindAs
	KindOptional
	KindTuple
	KindArray
	KindGlobal
	KindAlias
	KindDatabase
	KindRole
	KindCast
	KindOperator
	KindRename
	KindReset
	KindSession
	KindTransaction
	KindIsolation
	KindRead
	KindWrite
	KindDeferrable
	KindVariadic
	KindNamedOnlyKW // not produced by the tokenizer; a lone "named" is KindNamed
	KindRaise
	KindAssignment
	KindPopulate
	KindJson
	KindEmpty

	kindCount
)

var kindNames = [kindCount]string{
	KindUndefined:         "undefined",
	KindEOI:               "end of input",
	KindIdent:             "identifier",
	KindDunder:            "dunder identifier",
	KindIconst:            "integer",
	KindNiconst:           "big integer",
	KindFconst:            "float",
	KindNfconst:           "decimal",
	KindSconst:            "string",
	KindBconst:            "bytes",
	KindParameter:         "parameter",
	KindDot:               "'.'",
	KindDotLt:             "'.<'",
	KindDoubleColon:       "'::'",
	KindColonEquals:       "':='",
	KindArrow:             "'->'",
	KindComma:             "','",
	KindLParen:            "'('",
	KindRParen:            "')'",
	KindLBrace:            "'{'",
	KindRBrace:            "'}'",
	KindLBracket:          "'['",
	KindRBracket:          "']'",
	KindSemicolon:         "';'",
	KindColon:             "':'",
	KindAt:                "'@'",
	KindEquals:            "'='",
	KindNotEquals:         "'!='",
	KindDistinctFrom:      "'?!='",
	KindNDistinctFrom:     "'?='",
	KindGe:                "'>='",
	KindLe:                "'<='",
	KindLt:                "'<'",
	KindGt:                "'>'",
	KindPlus:              "'+'",
	KindMinus:             "'-'",
	KindStar:              "'*'",
	KindSlash:             "'/'",
	KindDoubleSlash:       "'//'",
	KindDoubleStar:        "'**'",
	KindPercent:           "'%'",
	KindCaret:             "'^'",
	KindDoublePlus:        "'++'",
	KindCoalesce:          "'??'",
	KindAmp:               "'&'",
	KindPipe:              "'|'",
	KindExclaim:           "'!'",
	KindDollar:            "'$'",
	KindNamedOnly:         "NAMED ONLY",
	KindSetType:           "SET TYPE",
	KindExtensionPackage:  "EXTENSION PACKAGE",
	KindOrderBy:           "ORDER BY",
	KindStartBlock:        "<start block>",
	KindStartFragment:     "<start fragment>",
	KindStartMigration:    "<start migration>",
	KindStartExtension:    "<start extension>",
	KindStartSDLDocument:  "<start sdl document>",
}

func init() {
	for _, kw := range keywordKindNames {
		kindNames[kw.kind] = i2human(kw.word)
	}
}

func i2human(word string) string {
	return "'" + word + "'"
}

// String returns the Kind's human-readable name (the same text Human
// returns); grammar terminal names come from Terminal instead.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "kind(?)"
}

// Human returns a human-readable rendering for use in diagnostics, mirroring
// types.TokenClass.Human() (internal/ictiobus/types/class.go).
func (k Kind) Human() string {
	return k.String()
}

// IsKeyword returns whether k is a dedicated keyword Kind (as opposed to a
// literal class, punctuation, pseudo-start, or EOI kind).
func (k Kind) IsKeyword() bool {
	return k >= KindSelect && k < kindCount
}
