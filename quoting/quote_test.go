package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeString(t *testing.T) {
	assert.Equal(t, `hello\nworld`, EscapeString("hello\nworld"))
	assert.Equal(t, `it\'s`, EscapeString("it's"))
	assert.Equal(t, `a\\b`, EscapeString(`a\b`))
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, `'hello'`, QuoteLiteral("hello"))
	assert.Equal(t, `'it\'s'`, QuoteLiteral("it's"))
}

func TestDollarQuoteLiteral_NoCollision(t *testing.T) {
	assert.Equal(t, "$$plain text$$", DollarQuoteLiteral("plain text"))
}

func TestDollarQuoteLiteral_GrowsTagOnCollision(t *testing.T) {
	text := "has $$ inside"
	quoted := DollarQuoteLiteral(text)
	assert.NotEqual(t, "$$"+text+"$$", quoted, "the $$ tag would collide with text, so the tag must grow")
	assert.Contains(t, quoted, text)
}

func TestNeedsQuoting_PlainIdentifier(t *testing.T) {
	assert.False(t, NeedsQuoting("foo_bar1", false, false))
}

func TestNeedsQuoting_EmptyAndLinkPropAndModulePath(t *testing.T) {
	assert.False(t, NeedsQuoting("", false, false))
	assert.False(t, NeedsQuoting("@prop", false, false))
	assert.False(t, NeedsQuoting("std::str", false, false))
}

func TestNeedsQuoting_ReservedKeyword(t *testing.T) {
	assert.True(t, NeedsQuoting("select", false, false), "reserved keyword needs quoting by default")
	assert.False(t, NeedsQuoting("select", true, false), "allowReserved permits it unquoted")
}

func TestNeedsQuoting_DunderExemptFromReservedCheck(t *testing.T) {
	assert.False(t, NeedsQuoting("__type__", false, false))
	assert.False(t, NeedsQuoting("__std__", false, false))
}

func TestNeedsQuoting_BareNumeric(t *testing.T) {
	assert.True(t, NeedsQuoting("123", false, false), "numeric without allowNum needs quoting")
	assert.False(t, NeedsQuoting("123", false, true), "allowNum permits a bare positive integer")
	assert.True(t, NeedsQuoting("007", false, true), "leading zero is not a valid bare integer form")
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "foo", QuoteIdent("foo", QuoteIdentOptions{}))
	assert.Equal(t, "`select`", QuoteIdent("select", QuoteIdentOptions{}))
	assert.Equal(t, "select", QuoteIdent("select", QuoteIdentOptions{AllowReserved: true}))
	assert.Equal(t, "`foo`", QuoteIdent("foo", QuoteIdentOptions{Force: true}))
}

func TestQuoteIdent_BacktickDoubling(t *testing.T) {
	assert.Equal(t, "`a``b`", QuoteIdent("a`b", QuoteIdentOptions{Force: true}))
}
