// Package quoting renders identifiers and string literals back into QL
// source text (spec.md §6.4, "Literal quoting/escaping"). Grounded
// directly on original_source/edb/edgeql/quote.py: escape_string,
// quote_literal, dollar_quote_literal, needs_quoting, quote_ident carry
// over with the same behavior, re-expressed in Go (regexp replacing
// Python's re, lex.ClassifyKeyword replacing the Python keyword table
// lookup).
package quoting

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dekarrin/eqlparser/lex"
)

var identOrNum = regexp.MustCompile(`^([^\W\d]\w*|[1-9]\d*|0)$`)
var identOnly = regexp.MustCompile(`^[^\W\d]\w*$`)

var stringEscapes = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\b", `\b`,
	"\f", `\f`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeString applies the lexical escaping rules for single-quoted
// string literals (spec.md §4.1 "String literals").
func EscapeString(s string) string {
	return stringEscapes.Replace(s)
}

// QuoteLiteral wraps s in single quotes, escaping its contents.
func QuoteLiteral(s string) string {
	return "'" + EscapeString(s) + "'"
}

// DollarQuoteLiteral wraps text in a dollar-quote tag ($$...$$ or
// $tag$...$tag$), growing the tag until it no longer collides with a
// substring already present in text.
func DollarQuoteLiteral(text string) string {
	quote := "$$"
	qq := 0

	for strings.Contains(text, quote) {
		if qq%16 < 10 {
			qq += 10 - qq%16
		}
		quote = "$" + reverse(strconv.FormatInt(int64(qq), 16)) + "$"
		qq++
	}

	return quote + text + quote
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// NeedsQuoting reports whether string must be backtick-quoted to be
// used as an identifier. allowReserved permits reserved keywords to
// pass unquoted (valid in a handful of grammar positions); allowNum
// permits a purely-numeric string to pass unquoted (valid as e.g. a
// positional tuple/shape field name).
func NeedsQuoting(s string, allowReserved, allowNum bool) bool {
	if s == "" || strings.HasPrefix(s, "@") || strings.Contains(s, "::") {
		return false
	}

	pattern := identOnly
	if allowNum {
		pattern = identOrNum
	}
	isAlnum := pattern.MatchString(s)

	lower := strings.ToLower(s)
	isReserved := lower != "__type__" && lower != "__std__"
	if isReserved {
		class, ok := lex.ClassifyKeyword(lower)
		isReserved = ok && class == lex.CurrentReserved
	}

	return !isAlnum || (!allowReserved && isReserved)
}

func quoteIdentRaw(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// QuoteIdentOptions customizes QuoteIdent's quoting decision.
type QuoteIdentOptions struct {
	Force         bool
	AllowReserved bool
	AllowNum      bool
}

// QuoteIdent backtick-quotes s if QuoteIdentOptions.Force is set or
// NeedsQuoting(s, ...) reports true; otherwise returns s unchanged.
func QuoteIdent(s string, opts QuoteIdentOptions) string {
	if opts.Force || NeedsQuoting(s, opts.AllowReserved, opts.AllowNum) {
		return quoteIdentRaw(s)
	}
	return s
}
