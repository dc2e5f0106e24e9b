package lex

import (
	"unicode/utf8"

	"github.com/dekarrin/eqlparser/diag"
)

// Source is an immutable UTF-8 text buffer plus an optional filename
// (spec.md §3.1). A Source carries the token stream of the last
// successful Tokenize over it (Tokens); Tokenize, normalize.Normalize and
// eql's parse calls lex the text again rather than reading it.
type Source struct {
	// Text is the full, immutable source buffer.
	Text string

	// Filename is used only for diagnostics; it may be empty.
	Filename string

	tokens []Token
}

// NewSource builds a Source over text, optionally naming it for diagnostics.
func NewSource(text, filename string) *Source {
	return &Source{Text: text, Filename: filename}
}

// Tokens returns the cached token stream for this Source, or nil if
// Tokenize has not yet been run over it.
func (s *Source) Tokens() []Token {
	return s.tokens
}

// setTokens caches a freshly-lexed token stream on the Source.
func (s *Source) setTokens(toks []Token) {
	s.tokens = toks
}

// Point is a (byte-offset, line, column) triple (spec.md §3.1). Columns are
// 1-based character positions (not byte offsets — multi-byte runes count as
// one column); lines are 1-based.
type Point struct {
	Offset int
	Line   int
	Column int
}

// Span is a pair of byte offsets within a Source (spec.md §3.1, §6.2).
// Spans are resolved to Points on demand rather than carried eagerly, since
// most tokens are never inspected for line/column information (only ones
// that end up in a diagnostic are).
type Span struct {
	Start int
	End   int
}

// Empty returns whether the span covers zero bytes. The synthetic dialect
// start token (spec.md §3.2 invariant) carries an Empty span that precedes
// every lexical token.
func (sp Span) Empty() bool {
	return sp.Start == sp.End
}

// Diag converts sp to diag.Span for building a Diagnostic (diag cannot
// import lex, so the conversion lives on this side of the boundary).
func (sp Span) Diag() diag.Span {
	return diag.Span{Start: sp.Start, End: sp.End}
}

// Union returns the smallest Span covering both sp and o. Used by the
// lowerer (spec.md §4.5, "Span attribution") to compute a production's span
// as the union of its leftmost and rightmost child spans.
func (sp Span) Union(o Span) Span {
	if sp.Empty() && sp.Start == 0 && sp.End == 0 {
		return o
	}
	if o.Empty() && o.Start == 0 && o.End == 0 {
		return sp
	}
	start := sp.Start
	if o.Start < start {
		start = o.Start
	}
	end := sp.End
	if o.End > end {
		end = o.End
	}
	return Span{Start: start, End: end}
}

// Resolve converts sp's byte offsets into (start, end) Points against src's
// text, by scanning from the beginning of src. This is O(n) in the offset
// and is only ever called when rendering a diagnostic (spec.md §6.2, "The
// caller converts span to line/column as needed") — never on the parse hot
// path.
func (sp Span) Resolve(src *Source) (start, end Point) {
	return pointAt(src.Text, sp.Start), pointAt(src.Text, sp.End)
}

func pointAt(text string, offset int) Point {
	line, col := 1, 1
	i := 0
	for i < offset && i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return Point{Offset: offset, Line: line, Column: col}
}

// FullLine returns the complete text of the line containing byte offset
// off, matching the teacher's Token.FullLine() (internal/ictiobus/types/token.go)
// used by diagnostics to show the offending line in context.
func FullLine(text string, off int) string {
	if off < 0 {
		off = 0
	}
	if off > len(text) {
		off = len(text)
	}
	start := off
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	end := off
	for end < len(text) && text[end] != '\n' {
		end++
	}
	return text[start:end]
}
