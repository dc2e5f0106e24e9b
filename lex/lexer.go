package lex

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dekarrin/eqlparser/diag"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Tokenize converts src's text into a token vector (spec.md §4.1). It
// fails at the first ill-formed token, returning the tokens produced so
// far and a single-element diagnostic slice — the parser is never invoked
// on malformed input (spec.md §4.1 "Output"). On success the token vector
// is also stored on src (Source.Tokens); Tokenize itself always lexes
// src.Text afresh, and normalize.Normalize and eql's parse calls do not
// read the stored vector.
func Tokenize(src *Source) ([]Token, []*diag.Diagnostic) {
	lx := &lexer{text: src.Text, src: src}
	toks, errs := lx.run()
	if len(errs) == 0 {
		src.setTokens(toks)
	}
	return toks, errs
}

type lexer struct {
	text string
	src  *Source
	pos  int

	// prevKind is the Kind of the last token emitted, KindEOI before the
	// first. lexIdentOrPrefixed consults it to decide whether a
	// partial-reserved word (spec.md §3.3) is in one of its disambiguating
	// identifier positions.
	prevKind Kind
}

func (lx *lexer) run() ([]Token, []*diag.Diagnostic) {
	var toks []Token
	lx.prevKind = KindEOI
	for {
		lx.skipInsignificant()
		if lx.pos >= len(lx.text) {
			return toks, nil
		}
		tok, err := lx.next()
		if err != nil {
			return toks, []*diag.Diagnostic{err}
		}
		toks = append(toks, tok)
		lx.prevKind = tok.Kind
	}
}

// partialReservedAsIdent reports whether a partial-reserved word appearing
// right after the token of Kind prev must be treated as a plain identifier
// rather than its keyword Kind. spec.md §3.3 names four disambiguating
// contexts: immediately after `.`, `.<`, `@`, or another reserved keyword.
// This grammar only implements the first three: every PathExpr production
// that follows DOT/DOTLT/AT with something else takes exactly one IDENT
// and nothing else, so the context is unambiguous. The fourth ("after
// another reserved keyword") is NOT implemented here — this curated
// grammar has fixed two-keyword sequences where the second word is a
// partial-reserved keyword used as a keyword, not an identifier (ROLLBACK
// TO SAVEPOINT, CREATE/ALTER/DROP/SCALAR TYPE, and the "named only"
// operator fusing in tryFuseFollowing); a blanket "after any keyword"
// rule would misread all of those as identifier position. Extending the
// rule to cover genuine post-keyword identifier positions would require
// per-keyword-pair grammar knowledge the lexer doesn't have.
func partialReservedAsIdent(prev Kind) bool {
	switch prev {
	case KindDot, KindDotLt, KindAt:
		return true
	default:
		return false
	}
}

func (lx *lexer) skipInsignificant() {
	for lx.pos < len(lx.text) {
		c := lx.text[lx.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.pos++
		case c == '#':
			for lx.pos < len(lx.text) && lx.text[lx.pos] != '\n' {
				lx.pos++
			}
		case c == '/' && lx.peekAt(1) == '*':
			lx.pos += 2
			for lx.pos < len(lx.text) && !(lx.text[lx.pos] == '*' && lx.peekAt(1) == '/') {
				lx.pos++
			}
			if lx.pos < len(lx.text) {
				lx.pos += 2
			}
		default:
			return
		}
	}
}

func (lx *lexer) peekAt(off int) byte {
	if lx.pos+off >= len(lx.text) {
		return 0
	}
	return lx.text[lx.pos+off]
}

// fusedOp describes one of the fused operators of spec.md §4.1 "Operator
// fusing": two reserved words adjacent modulo whitespace/comments.
type fusedOp struct {
	first, second string
	kind          Kind
}

var fusedOps = []fusedOp{
	{"named", "only", KindNamedOnly},
	{"set", "type", KindSetType},
	{"extension", "package", KindExtensionPackage},
	{"order", "by", KindOrderBy},
}

func (lx *lexer) next() (Token, *diag.Diagnostic) {
	start := lx.pos
	c := lx.text[lx.pos]

	switch {
	case isIdentStart(c):
		return lx.lexIdentOrPrefixed(start)
	case c >= '0' && c <= '9':
		return lx.lexNumber(start)
	case c == '\'' || c == '"':
		return lx.lexPlainString(start, c, ValueString)
	case c == '`':
		return lx.lexBacktickIdent(start)
	case c == '$':
		return lx.lexDollarOrParameter(start)
	default:
		if tok, ok := lx.lexPunct(start); ok {
			return tok, nil
		}
	}

	return Token{}, diag.NewLexicalError(
		"invalid input byte",
		Span{Start: start, End: start + 1}.Diag(),
		"",
	)
}

// isIdentStart matches spec.md §4.1's identifier grammar exactly:
// [A-Za-z_] — no Unicode identifier extension.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (lx *lexer) lexIdentOrPrefixed(start int) (Token, *diag.Diagnostic) {
	// raw-string / byte-string prefixes: r'...'/r"..."/b'...'/b"..."
	c := lx.text[start]
	if (c == 'r' || c == 'R') && (lx.peekAt(1) == '\'' || lx.peekAt(1) == '"') {
		lx.pos++
		quote := lx.text[lx.pos]
		lx.pos++
		return lx.lexRawOrBytes(start, quote, false)
	}
	if (c == 'b' || c == 'B') && (lx.peekAt(1) == '\'' || lx.peekAt(1) == '"') {
		lx.pos++
		quote := lx.text[lx.pos]
		lx.pos++
		return lx.lexRawOrBytes(start, quote, true)
	}

	lx.pos = start
	for lx.pos < len(lx.text) && isIdentCont(lx.text[lx.pos]) {
		lx.pos++
	}
	word := lx.text[start:lx.pos]
	lower := toLowerASCII(word)

	if kw, ok := lookupKeyword(lower); ok {
		if kw.class == PartialReserved && partialReservedAsIdent(lx.prevKind) {
			return Token{Kind: KindIdent, Text: word, Span: Span{Start: start, End: lx.pos}, Value: StringValue(word)}, nil
		}
		if fused, ok2 := lx.tryFuseFollowing(kw.word); ok2 {
			return Token{Kind: fused, Text: lx.text[start:lx.pos], Span: Span{Start: start, End: lx.pos}}, nil
		}
		return Token{Kind: kw.kind, Text: word, Span: Span{Start: start, End: lx.pos}, Value: StringValue(word)}, nil
	}

	if strings.HasPrefix(word, "__") && strings.HasSuffix(word, "__") && len(word) > 4 {
		inner := toLowerASCII(word[2 : len(word)-2])
		if _, ok := lookupKeyword(inner); ok {
			return Token{Kind: KindDunder, Text: word, Span: Span{Start: start, End: lx.pos}, Value: StringValue(word)}, nil
		}
	}

	return Token{Kind: KindIdent, Text: word, Span: Span{Start: start, End: lx.pos}, Value: StringValue(word)}, nil
}

// tryFuseFollowing looks for a second reserved word (spec.md §4.1
// "Operator fusing") immediately following, modulo whitespace/comments,
// and if found, consumes it and returns the fused Kind.
func (lx *lexer) tryFuseFollowing(firstWord string) (Kind, bool) {
	save := lx.pos
	lx.skipInsignificant()
	second := lx.pos
	for lx.pos < len(lx.text) && isIdentCont(lx.text[lx.pos]) {
		lx.pos++
	}
	word := toLowerASCII(lx.text[second:lx.pos])
	for _, f := range fusedOps {
		if f.first == firstWord && f.second == word && word != "" {
			return f.kind, true
		}
	}
	lx.pos = save
	return 0, false
}

func (lx *lexer) lexNumber(start int) (Token, *diag.Diagnostic) {
	isFloat := false
	if lx.text[lx.pos] == '0' && lx.peekAt(1) >= '0' && lx.peekAt(1) <= '9' {
		// leading zero followed by another digit is disallowed outside of
		// "0" itself (spec.md §4.1 "Disallow leading zeros").
		return Token{}, diag.NewLexicalError(
			"invalid number: leading zeros are not allowed",
			Span{Start: start, End: lx.pos + 1}.Diag(),
			"",
		)
	}
	lx.scanDigits()
	if lx.pos < len(lx.text) && lx.text[lx.pos] == '.' && lx.peekAt(1) >= '0' && lx.peekAt(1) <= '9' {
		isFloat = true
		lx.pos++
		lx.scanDigits()
	}
	if lx.pos < len(lx.text) && (lx.text[lx.pos] == 'e' || lx.text[lx.pos] == 'E') {
		save := lx.pos
		lx.pos++
		if lx.pos < len(lx.text) && (lx.text[lx.pos] == '+' || lx.text[lx.pos] == '-') {
			lx.pos++
		}
		if lx.pos < len(lx.text) && lx.text[lx.pos] >= '0' && lx.text[lx.pos] <= '9' {
			isFloat = true
			lx.scanDigits()
		} else {
			lx.pos = save
		}
	}

	arbitrary := false
	if lx.pos < len(lx.text) && lx.text[lx.pos] == 'n' {
		arbitrary = true
		lx.pos++
	}

	raw := lx.text[start:lx.pos]
	digits := strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
	span := Span{Start: start, End: lx.pos}

	if !isFloat {
		if arbitrary {
			bi, ok := new(big.Int).SetString(digits, 10)
			if !ok {
				return Token{}, diag.NewLexicalError("invalid integer literal", span.Diag(), "")
			}
			return Token{Kind: KindNiconst, Text: raw, Span: span, Value: BigIntValue(bi)}, nil
		}
		if iv, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return Token{Kind: KindIconst, Text: raw, Span: span, Value: IntValue(iv)}, nil
		}
		bi, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return Token{}, diag.NewLexicalError("invalid number format", span.Diag(), "")
		}
		return Token{Kind: KindNiconst, Text: raw, Span: span, Value: BigIntValue(bi)}, nil
	}

	if arbitrary {
		d, err := decimal.NewFromString(digits)
		if err != nil {
			return Token{}, diag.NewLexicalError("invalid decimal literal", span.Diag(), "")
		}
		return Token{Kind: KindNfconst, Text: raw, Span: span, Value: DecimalValue(d)}, nil
	}
	fv, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Token{}, diag.NewLexicalError("invalid number format", span.Diag(), "")
	}
	return Token{Kind: KindFconst, Text: raw, Span: span, Value: FloatValue(fv)}, nil
}

func (lx *lexer) scanDigits() {
	for lx.pos < len(lx.text) {
		c := lx.text[lx.pos]
		if c >= '0' && c <= '9' {
			lx.pos++
			continue
		}
		if c == '_' && lx.pos+1 < len(lx.text) && lx.text[lx.pos+1] >= '0' && lx.text[lx.pos+1] <= '9' {
			lx.pos++
			continue
		}
		break
	}
}

// lexPlainString handles single/double quoted strings with C-style escapes
// (spec.md §4.1 "Plain"). vkind is not consulted: the result is always an
// SCONST. lexRawOrBytes reuses the same scan for byte literals and retags
// the result as a BCONST.
func (lx *lexer) lexPlainString(start int, quote byte, vkind ValueKind) (Token, *diag.Diagnostic) {
	lx.pos++ // opening quote
	var sb strings.Builder
	for {
		if lx.pos >= len(lx.text) {
			return Token{}, diag.NewLexicalError(
				"unterminated string literal",
				Span{Start: start, End: lx.pos}.Diag(),
				"string starting here is never closed",
			)
		}
		c := lx.text[lx.pos]
		if c == quote {
			lx.pos++
			break
		}
		if c == '\\' {
			decoded, size, hint, errd := decodeEscape(lx.text[lx.pos:])
			if errd != "" {
				return Token{}, diag.NewLexicalError(errd, Span{Start: lx.pos, End: lx.pos + size}.Diag(), hint)
			}
			sb.WriteString(decoded)
			lx.pos += size
			continue
		}
		r, size := utf8.DecodeRuneInString(lx.text[lx.pos:])
		sb.WriteRune(r)
		lx.pos += size
	}
	span := Span{Start: start, End: lx.pos}
	return Token{Kind: KindSconst, Text: lx.text[start:lx.pos], Span: span, Value: StringValue(sb.String())}, nil
}

// decodeEscape decodes one backslash escape starting at s[0]=='\\'. Returns
// the decoded text, the number of source bytes consumed, and either an
// error message (with optional hint) or empty strings on success.
func decodeEscape(s string) (decoded string, size int, hint string, errMsg string) {
	if len(s) < 2 {
		return "", 0, "", "unterminated escape sequence"
	}
	switch s[1] {
	case 'n':
		return "\n", 2, "", ""
	case 't':
		return "\t", 2, "", ""
	case 'r':
		return "\r", 2, "", ""
	case 'b':
		return "\b", 2, "", ""
	case 'f':
		return "\f", 2, "", ""
	case '\\':
		return "\\", 2, "", ""
	case '\'':
		return "'", 2, "", ""
	case '"':
		return "\"", 2, "", ""
	case 'u':
		if len(s) < 6 {
			return "", len(s), "", "invalid \\u escape: expected 4 hex digits"
		}
		v, err := strconv.ParseUint(s[2:6], 16, 32)
		if err != nil {
			return "", 6, "", "invalid \\u escape: expected 4 hex digits"
		}
		return string(rune(v)), 6, "", ""
	case ' ', '\t':
		return "", 2, "consider removing trailing whitespace", "invalid escape sequence: line continuation with trailing whitespace"
	case '\n':
		return "", 2, "", ""
	default:
		return "", 2, "", "invalid escape sequence"
	}
}

func (lx *lexer) lexRawOrBytes(start int, quote byte, isBytes bool) (Token, *diag.Diagnostic) {
	bodyStart := lx.pos
	if isBytes {
		lx.pos = bodyStart - 1
		tok, errd := lx.lexPlainString(start, quote, ValueBytes)
		if errd != nil {
			return tok, errd
		}
		tok.Kind = KindBconst
		tok.Value = BytesValue([]byte(tok.Value.Str))
		return tok, nil
	}
	for lx.pos < len(lx.text) && lx.text[lx.pos] != quote {
		lx.pos++
	}
	if lx.pos >= len(lx.text) {
		kindName := "string"
		if isBytes {
			kindName = "bytes"
		}
		return Token{}, diag.NewLexicalError(
			"unterminated raw "+kindName+" literal",
			Span{Start: start, End: lx.pos}.Diag(),
			"",
		)
	}
	body := lx.text[bodyStart:lx.pos]
	lx.pos++ // closing quote
	span := Span{Start: start, End: lx.pos}
	if isBytes {
		return Token{Kind: KindBconst, Text: lx.text[start:lx.pos], Span: span, Value: BytesValue([]byte(body))}, nil
	}
	return Token{Kind: KindSconst, Text: lx.text[start:lx.pos], Span: span, Value: StringValue(body)}, nil
}

func (lx *lexer) lexBacktickIdent(start int) (Token, *diag.Diagnostic) {
	lx.pos++ // opening backtick
	var sb strings.Builder
	for {
		if lx.pos >= len(lx.text) {
			return Token{}, diag.NewLexicalError(
				"unterminated quoted identifier",
				Span{Start: start, End: lx.pos}.Diag(),
				"",
			)
		}
		if lx.text[lx.pos] == '`' {
			if lx.peekAt(1) == '`' {
				sb.WriteByte('`')
				lx.pos += 2
				continue
			}
			lx.pos++
			break
		}
		r, size := utf8.DecodeRuneInString(lx.text[lx.pos:])
		sb.WriteRune(r)
		lx.pos += size
	}
	span := Span{Start: start, End: lx.pos}
	// NFC-normalize so two byte-distinct but canonically equal quoted
	// identifiers compare equal (spec.md §4.1).
	normalized := norm.NFC.String(sb.String())
	return Token{Kind: KindIdent, Text: lx.text[start:lx.pos], Span: span, Value: StringValue(normalized)}, nil
}

// lexDollarOrParameter handles both parameter references ($1, $name) and
// dollar-quoted strings ($tag$ ... $tag$), disambiguated by whether a
// matching closing delimiter can be found later in the source (spec.md
// §4.1 "Dollar-quoted" / "Parameter references").
func (lx *lexer) lexDollarOrParameter(start int) (Token, *diag.Diagnostic) {
	tagStart := lx.pos + 1
	p := tagStart
	for p < len(lx.text) && isIdentCont(lx.text[p]) {
		p++
	}
	if p < len(lx.text) && lx.text[p] == '$' {
		tag := lx.text[tagStart:p]
		delim := "$" + tag + "$"
		bodyStart := p + 1
		if idx := strings.Index(lx.text[bodyStart:], delim); idx >= 0 {
			bodyEnd := bodyStart + idx
			lx.pos = bodyEnd + len(delim)
			span := Span{Start: start, End: lx.pos}
			return Token{Kind: KindSconst, Text: lx.text[start:lx.pos], Span: span, Value: StringValue(lx.text[bodyStart:bodyEnd])}, nil
		}
	}

	// fall back to a parameter reference: $ident or $digits
	lx.pos = tagStart
	if lx.pos < len(lx.text) && lx.text[lx.pos] >= '0' && lx.text[lx.pos] <= '9' {
		for lx.pos < len(lx.text) && lx.text[lx.pos] >= '0' && lx.text[lx.pos] <= '9' {
			lx.pos++
		}
	} else {
		for lx.pos < len(lx.text) && isIdentCont(lx.text[lx.pos]) {
			lx.pos++
		}
	}
	if lx.pos == tagStart {
		return Token{}, diag.NewLexicalError(
			"invalid parameter reference: expected a name or number after '$'",
			Span{Start: start, End: start + 1}.Diag(),
			"",
		)
	}
	name := lx.text[tagStart:lx.pos]
	span := Span{Start: start, End: lx.pos}
	return Token{Kind: KindParameter, Text: lx.text[start:lx.pos], Span: span, Value: ParamValue(name)}, nil
}

type punct struct {
	text string
	kind Kind
}

// punctTable is longest-match-first (spec.md §4.1 "Punctuation and
// operators, matched with longest-match priority"); ordering within a
// shared prefix matters and is enforced by sorting on length, descending,
// once at init.
var punctTable = []punct{
	{":=", KindColonEquals},
	{"::", KindDoubleColon},
	{".<", KindDotLt},
	{"?!=", KindDistinctFrom},
	{"?=", KindNDistinctFrom},
	{"!=", KindNotEquals},
	{">=", KindGe},
	{"<=", KindLe},
	{"++", KindDoublePlus},
	{"//", KindDoubleSlash},
	{"**", KindDoubleStar},
	{"->", KindArrow},
	{"??", KindCoalesce},
	{".", KindDot},
	{",", KindComma},
	{"(", KindLParen},
	{")", KindRParen},
	{"{", KindLBrace},
	{"}", KindRBrace},
	{"[", KindLBracket},
	{"]", KindRBracket},
	{";", KindSemicolon},
	{":", KindColon},
	{"@", KindAt},
	{"=", KindEquals},
	{"<", KindLt},
	{">", KindGt},
	{"+", KindPlus},
	{"-", KindMinus},
	{"*", KindStar},
	{"/", KindSlash},
	{"%", KindPercent},
	{"^", KindCaret},
	{"&", KindAmp},
	{"|", KindPipe},
	{"!", KindExclaim},
}

func init() {
	// stable sort by descending length so longest-match-first holds
	// regardless of declaration order above.
	for i := 1; i < len(punctTable); i++ {
		for j := i; j > 0 && len(punctTable[j].text) > len(punctTable[j-1].text); j-- {
			punctTable[j], punctTable[j-1] = punctTable[j-1], punctTable[j]
		}
	}
}

func (lx *lexer) lexPunct(start int) (Token, bool) {
	rest := lx.text[start:]
	for _, p := range punctTable {
		if strings.HasPrefix(rest, p.text) {
			lx.pos = start + len(p.text)
			return Token{Kind: p.kind, Text: p.text, Span: Span{Start: start, End: lx.pos}}, true
		}
	}
	return Token{}, false
}
