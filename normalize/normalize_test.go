package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/eqlparser/lex"
)

func normalize(t *testing.T, text string) Result {
	t.Helper()
	src := lex.NewSource(text, "<test>")
	res, errs := Normalize(src)
	require.Empty(t, errs, "expected no lexical errors for %q", text)
	return res
}

func TestNormalize_ExtractsLiteral(t *testing.T) {
	res := normalize(t, "SELECT Foo FILTER .x = 42")
	require.Len(t, res.Variables, 1)
	assert.Equal(t, "int64", res.Variables[0].TypeTag)
	assert.Equal(t, "42", res.Variables[0].Text)
	assert.Contains(t, res.CanonicalText, "$__norm1_int64")
	assert.NotContains(t, res.CanonicalText, "42")
}

func TestNormalize_MultipleLiteralsInOrder(t *testing.T) {
	res := normalize(t, "SELECT 1 + 2.5")
	require.Len(t, res.Variables, 2)
	assert.Equal(t, 1, res.Variables[0].Index)
	assert.Equal(t, "int64", res.Variables[0].TypeTag)
	assert.Equal(t, 2, res.Variables[1].Index)
	assert.Equal(t, "float64", res.Variables[1].TypeTag)
}

func TestNormalize_StableCacheKey(t *testing.T) {
	a := normalize(t, "SELECT Foo FILTER .x = 42")
	b := normalize(t, "SELECT Foo FILTER .x = 99")
	assert.Equal(t, a.CanonicalText, b.CanonicalText, "same shape, different literal, same canonical text")
	assert.Equal(t, a.CacheKey, b.CacheKey, "same canonical text hashes the same")

	c := normalize(t, "SELECT Bar FILTER .x = 42")
	assert.NotEqual(t, a.CanonicalText, c.CanonicalText)
	assert.NotEqual(t, a.CacheKey, c.CacheKey)
}

func TestNormalize_CastOperandExempted(t *testing.T) {
	res := normalize(t, "SELECT 42::int64")
	assert.Empty(t, res.Variables, "a postfix cast operand literal is exempted from extraction")
	assert.Contains(t, res.CanonicalText, "42")
}

func TestNormalize_ComparisonNotTreatedAsCast(t *testing.T) {
	res := normalize(t, "SELECT x < 42")
	require.Len(t, res.Variables, 1, "a bare '<' before a literal is a comparison, not a cast")
	assert.Equal(t, "42", res.Variables[0].Text)
}

func TestNormalize_ChainedComparisonNotTreatedAsCast(t *testing.T) {
	// This grammar has no prefix-cast form, so "a < Foo > 42" can only be
	// the chained comparison CompExpr allows, never a cast: the literal
	// must still be extracted.
	res := normalize(t, "SELECT a < Foo > 42")
	require.Len(t, res.Variables, 1)
	assert.Equal(t, "42", res.Variables[0].Text)
}

func TestCastExempted_TooFewTrailingTokens(t *testing.T) {
	toks := []lex.Token{{Kind: lex.KindIconst}}
	assert.False(t, castExempted(toks, 0))
}
