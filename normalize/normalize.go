// Package normalize implements the query normalizer (spec.md §4.6,
// component I): it extracts literal constants out of a tokenized query
// and replaces them with positional parameters, producing a canonical
// text and a stable cache key for plan-cache lookups. Grounded on
// spec.md §4.6's five-step algorithm; the cache key itself reuses
// golang.org/x/crypto/blake2b, already pulled in by the teacher's stack
// for content hashing elsewhere in the pack.
package normalize

import (
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/dekarrin/eqlparser/diag"
	"github.com/dekarrin/eqlparser/lex"
)

// Variable is one literal constant the normalizer lifted out of the
// source, in the order it was encountered.
type Variable struct {
	Index   int // 1-based positional parameter index
	TypeTag string
	Text    string // original source text of the literal
	Value   lex.Value
}

// Result is one normalization's outcome.
type Result struct {
	CanonicalText string
	Variables     []Variable
	CacheKey      [blake2b.Size256]byte
}

var literalKinds = map[lex.Kind]string{
	lex.KindIconst:  "int64",
	lex.KindNiconst: "bigint",
	lex.KindFconst:  "float64",
	lex.KindNfconst: "decimal",
	lex.KindSconst:  "str",
	lex.KindBconst:  "bytes",
}

// Normalize tokenizes src and lifts its eligible literal constants into
// positional parameters (spec.md §4.6 steps 1-3), then computes the
// canonical text and cache key (steps 4-5). Normalization failures are
// reported as the same diagnostics Tokenize itself would produce
// (spec.md §4.6 "Failure: normalization falls back to tokenization
// failures").
func Normalize(src *lex.Source) (Result, []*diag.Diagnostic) {
	toks, errs := lex.Tokenize(src)
	if len(errs) > 0 {
		return Result{}, errs
	}

	var vars []Variable
	var b strings.Builder
	index := 0

	for i, tok := range toks {
		if tok.Kind == lex.KindEOI {
			continue
		}

		tag, literal := literalKinds[tok.Kind]
		if literal && !castExempted(toks, i) {
			index++
			vars = append(vars, Variable{
				Index:   index,
				TypeTag: tag,
				Text:    tok.Text,
				Value:   tok.Value,
			})
			writeSep(&b, tok)
			b.WriteString(paramPlaceholder(index, tag))
			continue
		}

		writeSep(&b, tok)
		b.WriteString(tok.Text)
	}

	canonical := b.String()
	key := blake2b.Sum256([]byte(canonical))

	return Result{CanonicalText: canonical, Variables: vars, CacheKey: key}, nil
}

// castExempted reports whether the literal at toks[i] is the operand of
// a type cast (spec.md §4.6 step 2 exemption). This grammar only has a
// postfix cast, `PathExpr :: TypeName` (grammar/build.go's
// PathExpr_Cast) — there is no prefix `<T>expr` form to exempt — so the
// literal is the cast's operand when it's immediately followed by "::"
// and a type name, not immediately preceded by one: toks[i+1] is
// DOUBLECOLON and toks[i+2] starts a TypeName (always an IDENT, whether
// a simple or module-qualified name).
func castExempted(toks []lex.Token, i int) bool {
	if i+2 >= len(toks) {
		return false
	}
	return toks[i+1].Kind == lex.KindDoubleColon &&
		toks[i+2].Kind == lex.KindIdent
}

func paramPlaceholder(index int, tag string) string {
	return "$__norm" + strconv.Itoa(index) + "_" + tag
}

// writeSep inserts a single space before tok if the builder is
// non-empty, giving "minimal whitespace" joining (spec.md §4.6 step 4)
// without attempting to reproduce the original source's exact spacing.
func writeSep(b *strings.Builder, tok lex.Token) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	_ = tok
}
