package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, text string) []Token {
	t.Helper()
	src := NewSource(text, "<test>")
	toks, errs := Tokenize(src)
	require.Empty(t, errs, "expected no lexical errors for %q", text)
	return toks
}

func TestTokenize_Punctuation_LongestMatch(t *testing.T) {
	toks := tokenize(t, ":= :: .< ?!= ?= != >= <= ++ // ** -> ??")
	want := []Kind{
		KindColonEquals, KindDoubleColon, KindDotLt, KindDistinctFrom,
		KindNDistinctFrom, KindNotEquals, KindGe, KindLe, KindDoublePlus,
		KindDoubleSlash, KindDoubleStar, KindArrow, KindCoalesce,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestTokenize_Identifiers_And_Keywords(t *testing.T) {
	toks := tokenize(t, "select Foo SELECT __type__")
	require.Len(t, toks, 4)
	assert.Equal(t, KindSelect, toks[0].Kind)
	assert.Equal(t, KindIdent, toks[1].Kind)
	assert.Equal(t, KindSelect, toks[2].Kind)
	assert.Equal(t, KindDunder, toks[3].Kind)
}

func TestTokenize_PartialReservedKeyword_Bare(t *testing.T) {
	// "type" is PartialReserved; with nothing disambiguating before it, it
	// must still tokenize as the TYPE keyword, not as an identifier.
	toks := tokenize(t, "type")
	require.Len(t, toks, 1)
	assert.Equal(t, KindType, toks[0].Kind)
}

func TestTokenize_PartialReservedKeyword_AfterDot(t *testing.T) {
	toks := tokenize(t, ".type")
	require.Len(t, toks, 2)
	assert.Equal(t, KindDot, toks[0].Kind)
	assert.Equal(t, KindIdent, toks[1].Kind, "type used as a path step name right after '.' must lex as an identifier")
	assert.Equal(t, "type", toks[1].Text)
}

func TestTokenize_PartialReservedKeyword_AfterDotLt(t *testing.T) {
	toks := tokenize(t, ".<filter")
	require.Len(t, toks, 2)
	assert.Equal(t, KindDotLt, toks[0].Kind)
	assert.Equal(t, KindIdent, toks[1].Kind)
}

func TestTokenize_PartialReservedKeyword_AfterAt(t *testing.T) {
	toks := tokenize(t, "@required")
	require.Len(t, toks, 2)
	assert.Equal(t, KindAt, toks[0].Kind)
	assert.Equal(t, KindIdent, toks[1].Kind)
}

func TestTokenize_PartialReservedKeyword_AfterKeywordStaysKeyword(t *testing.T) {
	// "to" and "type" are PartialReserved, but ROLLBACK TO and CREATE TYPE
	// are fixed two-keyword grammar sequences in this grammar, not an
	// identifier position — partialReservedAsIdent deliberately does not
	// treat "after another keyword" as disambiguating (see its doc
	// comment), so both words must still lex as keywords here.
	toks := tokenize(t, "rollback to")
	require.Len(t, toks, 2)
	assert.Equal(t, KindRollback, toks[0].Kind)
	assert.Equal(t, KindTo, toks[1].Kind)

	toks = tokenize(t, "create type")
	require.Len(t, toks, 2)
	assert.Equal(t, KindCreate, toks[0].Kind)
	assert.Equal(t, KindType, toks[1].Kind)
}

func TestTokenize_OperatorFusing(t *testing.T) {
	toks := tokenize(t, "NAMED ONLY")
	require.Len(t, toks, 1)
	assert.Equal(t, KindNamedOnly, toks[0].Kind)
	assert.Equal(t, "NAMED ONLY", toks[0].Text)

	toks = tokenize(t, "order by")
	require.Len(t, toks, 1)
	assert.Equal(t, KindOrderBy, toks[0].Kind)
}

func TestTokenize_IntegerAndBigInteger(t *testing.T) {
	toks := tokenize(t, "42 99999999999999999999n")
	require.Len(t, toks, 2)
	assert.Equal(t, KindIconst, toks[0].Kind)
	assert.EqualValues(t, 42, toks[0].Value.Int)
	assert.Equal(t, KindNiconst, toks[1].Kind)
	assert.NotNil(t, toks[1].Value.BigInt)
}

func TestTokenize_FloatAndDecimal(t *testing.T) {
	toks := tokenize(t, "3.14 2.5n 1e10")
	require.Len(t, toks, 3)
	assert.Equal(t, KindFconst, toks[0].Kind)
	assert.Equal(t, KindNfconst, toks[1].Kind)
	assert.Equal(t, KindFconst, toks[2].Kind)
}

func TestTokenize_PlainStringWithEscapes(t *testing.T) {
	toks := tokenize(t, `'hello\nworld'`)
	require.Len(t, toks, 1)
	assert.Equal(t, KindSconst, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Value.Str)
}

func TestTokenize_RawString(t *testing.T) {
	toks := tokenize(t, `r'a\nb'`)
	require.Len(t, toks, 1)
	assert.Equal(t, KindSconst, toks[0].Kind)
	assert.Equal(t, `a\nb`, toks[0].Value.Str)
}

func TestTokenize_BytesLiteral(t *testing.T) {
	toks := tokenize(t, `b'abc'`)
	require.Len(t, toks, 1)
	assert.Equal(t, KindBconst, toks[0].Kind)
	assert.Equal(t, []byte("abc"), toks[0].Value.Bytes)
}

func TestTokenize_DollarQuoted(t *testing.T) {
	toks := tokenize(t, "$tag$hello world$tag$")
	require.Len(t, toks, 1)
	assert.Equal(t, KindSconst, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Value.Str)
}

func TestTokenize_ParameterReference(t *testing.T) {
	toks := tokenize(t, "$1 $name")
	require.Len(t, toks, 2)
	assert.Equal(t, KindParameter, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Value.ParamName)
	assert.Equal(t, KindParameter, toks[1].Kind)
	assert.Equal(t, "name", toks[1].Value.ParamName)
}

func TestTokenize_BacktickIdentifier(t *testing.T) {
	toks := tokenize(t, "`weird ``name```")
	require.Len(t, toks, 1)
	assert.Equal(t, KindIdent, toks[0].Kind)
	assert.Equal(t, "weird `name`", toks[0].Value.Str)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	src := NewSource("SELECT 'oops", "<test>")
	_, errs := Tokenize(src)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unterminated")
	assert.Equal(t, 7, errs[0].Span.Start)
}

func TestTokenize_CommentsAndWhitespace(t *testing.T) {
	toks := tokenize(t, "select # line comment\n/* block */ true")
	require.Len(t, toks, 2)
	assert.Equal(t, KindSelect, toks[0].Kind)
	assert.Equal(t, KindTrue, toks[1].Kind)
}
