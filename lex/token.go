package lex

import "fmt"

// Token is one lexical unit produced by Tokenize, or synthesized by the
// parser driver for a pseudo-start token (spec.md §3.2). Text always holds
// the exact source slice (for punctuation/keywords this is redundant with
// Kind, but it is kept so diagnostics can quote exactly what the user
// wrote, including original case on identifiers).
type Token struct {
	Kind  Kind
	Text  string
	Span  Span
	Value Value
}

// Human renders a token for use in diagnostics, mirroring the teacher's
// types.Token.String()/types.TokenClass.Human() pairing
// (internal/ictiobus/types/token.go): literal classes describe themselves
// generically ("identifier \"foo\""), everything else prints its own Kind
// human string.
func (t Token) Human() string {
	switch t.Kind {
	case KindIdent, KindDunder:
		return fmt.Sprintf("identifier %q", t.Text)
	case KindIconst, KindNiconst, KindFconst, KindNfconst:
		return fmt.Sprintf("number %q", t.Text)
	case KindSconst:
		return fmt.Sprintf("string %q", t.Text)
	case KindBconst:
		return fmt.Sprintf("bytes literal %q", t.Text)
	case KindParameter:
		return fmt.Sprintf("parameter %q", t.Text)
	case KindEOI:
		return "end of input"
	default:
		return t.Kind.Human()
	}
}

func (t Token) String() string {
	return t.Human()
}

// StartToken builds a synthetic pseudo-start token with an empty span at
// offset 0, which callers of parse.Engine.Parse (eql's parse functions)
// prepend as a dialect selector ahead of the real token stream (spec.md
// §4.2).
func StartToken(k Kind) Token {
	return Token{Kind: k, Span: Span{}}
}
