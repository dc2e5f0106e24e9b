package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/eqlparser/automaton"
	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/lex"
	"github.com/dekarrin/eqlparser/parse"
	"github.com/dekarrin/eqlparser/parsetab"
)

func buildEngine(t *testing.T) *parse.Engine {
	t.Helper()
	g := grammar.Build()
	dfa, err := automaton.Build(g)
	require.NoError(t, err)
	tables, err := parsetab.Generate(g, dfa)
	require.NoError(t, err)
	return parse.New(g, tables)
}

func tokenize(t *testing.T, start lex.Kind, text string) []lex.Token {
	t.Helper()
	src := lex.NewSource(text, "<test>")
	toks, errs := lex.Tokenize(src)
	require.Empty(t, errs, "lex errors for %q", text)
	return append([]lex.Token{lex.StartToken(start)}, toks...)
}

func TestEngine_Parse_CleanAccept(t *testing.T) {
	eng := buildEngine(t)
	res := eng.Parse(tokenize(t, lex.KindStartBlock, "SELECT Foo FILTER .x = 1;"))

	assert.Empty(t, res.Diagnostics)
	require.NotNil(t, res.Tree)
}

func TestEngine_Parse_MissingSemicolon_RecoversByInsertion(t *testing.T) {
	eng := buildEngine(t)
	// Two back-to-back statements with the separating SEMICOLON dropped:
	// the parser should report one diagnostic and still recover a tree
	// covering both statements, since inserting SEMICOLON lets it proceed.
	res := eng.Parse(tokenize(t, lex.KindStartBlock, "SELECT Foo FILTER .x = 1 SELECT Bar;"))

	require.NotEmpty(t, res.Diagnostics, "a missing separator must be reported")
	assert.NotNil(t, res.Tree, "single-token insertion should still produce a tree")
}

func TestEngine_Parse_GarbageInput_PanicModeSyncsToSemicolon(t *testing.T) {
	eng := buildEngine(t)
	// ")))" can't be shifted or inserted around meaningfully; the driver
	// should skip forward to the SEMICOLON sync terminal and pick the
	// parse back up rather than aborting outright.
	res := eng.Parse(tokenize(t, lex.KindStartBlock, ") ) ) ; SELECT Foo;"))

	assert.NotEmpty(t, res.Diagnostics)
}

func TestEngine_Parse_ExplainAtTopLevel_CarriesAnalyzeHint(t *testing.T) {
	eng := buildEngine(t)
	// EXPLAIN is a keyword (lex/keywords.go) but has no grammar
	// production of its own (spec.md §3.6 never lists it as a statement
	// kind) — it's unexpected wherever a statement is expected, and that
	// diagnostic must redirect the user to ANALYZE (spec.md §4.3/§8).
	res := eng.Parse(tokenize(t, lex.KindStartBlock, "EXPLAIN SELECT Foo;"))

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, "use `analyze` to show query performance details", res.Diagnostics[0].Hint)
}

func TestEngine_Parse_EmptyInput_ReportsRatherThanPanics(t *testing.T) {
	eng := buildEngine(t)
	assert.NotPanics(t, func() {
		eng.Parse([]lex.Token{lex.StartToken(lex.KindStartBlock)})
	})
}
