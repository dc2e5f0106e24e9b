package lex

// terminalNames maps each Kind to its bare grammar terminal name — the
// symbol string grammar.Grammar.AddTerm declares and parsetab's ACTION
// table keys on (spec.md §6.1's "terminal_name"). This is the one place
// lex's closed Kind enum is translated into the plain-string vocabulary
// grammar/automaton/parsetab use, keeping those packages ignorant of lex
// (see grammar/grammar.go's package doc).
var terminalNames = [kindCount]string{
	KindEOI:               "$",
	KindIdent:              "IDENT",
	KindDunder:             "DUNDER",
	KindIconst:             "ICONST",
	KindNiconst:            "NICONST",
	KindFconst:             "FCONST",
	KindNfconst:            "NFCONST",
	KindSconst:             "SCONST",
	KindBconst:             "BCONST",
	KindParameter:          "PARAMETER",
	KindDot:                "DOT",
	KindDotLt:              "DOTLT",
	KindDoubleColon:        "DOUBLECOLON",
	KindColonEquals:        "COLONEQUALS",
	KindArrow:              "ARROW",
	KindComma:              "COMMA",
	KindLParen:             "LPAREN",
	KindRParen:             "RPAREN",
	KindLBrace:             "LBRACE",
	KindRBrace:             "RBRACE",
	KindLBracket:           "LBRACKET",
	KindRBracket:           "RBRACKET",
	KindSemicolon:          "SEMICOLON",
	KindColon:              "COLON",
	KindAt:                 "AT",
	KindEquals:             "EQUALS",
	KindNotEquals:          "NOTEQUALS",
	KindDistinctFrom:       "DISTINCTFROM",
	KindNDistinctFrom:      "NDISTINCTFROM",
	KindGe:                 "GE",
	KindLe:                 "LE",
	KindLt:                 "LT",
	KindGt:                 "GT",
	KindPlus:               "PLUS",
	KindMinus:              "MINUS",
	KindStar:               "STAR",
	KindSlash:              "SLASH",
	KindDoubleSlash:        "DOUBLESLASH",
	KindDoubleStar:         "DOUBLESTAR",
	KindPercent:            "PERCENT",
	KindCaret:              "CARET",
	KindDoublePlus:         "DOUBLEPLUS",
	KindCoalesce:           "COALESCE",
	KindAmp:                "AMP",
	KindPipe:               "PIPE",
	KindExclaim:            "EXCLAIM",
	KindDollar:             "DOLLAR",
	KindNamedOnly:          "NAMEDONLY",
	KindSetType:            "SETTYPE",
	KindExtensionPackage:   "EXTENSIONPACKAGE",
	KindOrderBy:            "ORDERBY",
	KindStartBlock:         "STARTBLOCK",
	KindStartFragment:      "STARTFRAGMENT",
	KindStartMigration:     "STARTMIGRATION",
	KindStartExtension:     "STARTEXTENSION",
	KindStartSDLDocument:   "STARTSDLDOCUMENT",
}

var kindByTerminal map[string]Kind

func init() {
	for _, kw := range keywordKindNames {
		terminalNames[kw.kind] = toUpperASCII(kw.word)
	}

	kindByTerminal = make(map[string]Kind, len(terminalNames))
	for k, name := range terminalNames {
		if name != "" {
			kindByTerminal[name] = Kind(k)
		}
	}
}

// KindFromTerminal reverse-maps a grammar terminal name (as produced by
// Kind.Terminal()) back to its Kind. Used only by parse's error-recovery
// token insertion, which needs to synthesize a placeholder Token for a
// terminal name it read out of parsetab.Tables.ExpectedTerminals.
func KindFromTerminal(terminal string) Kind {
	return kindByTerminal[terminal]
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// Terminal returns k's grammar terminal name.
func (k Kind) Terminal() string {
	if int(k) < len(terminalNames) && terminalNames[k] != "" {
		return terminalNames[k]
	}
	return k.String()
}
