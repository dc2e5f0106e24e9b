// Package diag holds the error taxonomy shared by lex, parse, and
// normalize (spec.md §7): LexicalError, SyntaxError, IncompatibleSpec, and
// a panic-only InternalError for invariant violations. The originating
// icterrors package (internal/ictiobus/icterrors, referenced by
// internal/ictiobus/parse/lr.go as icterrors.NewSyntaxErrorFromToken and
// err.FullMessage()) was not itself present in the retrieved reference
// pack — only its call sites were — so this package reconstructs the same
// names and shape rather than copying source that was never seen.
package diag

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

const wrapWidth = 78

// Span is a pair of byte offsets, duplicated from lex.Span rather than
// imported: diag sits below lex in the import graph (lex constructs
// Diagnostics while tokenizing) so it cannot depend back on lex's package.
// lex.Span converts to/from this shape with plain field assignment, both
// being (Start, End int).
type Span struct {
	Start int
	End   int
}

// Kind identifies which of spec.md §7's three semantic error kinds (plus
// the internal-only fourth) a Diagnostic carries.
type Kind uint8

const (
	KindLexical Kind = iota
	KindSyntax
	KindIncompatibleSpec
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical error"
	case KindSyntax:
		return "syntax error"
	case KindIncompatibleSpec:
		return "incompatible parser spec"
	case KindInternal:
		return "internal error"
	default:
		return "error"
	}
}

// SyntaxVariant distinguishes the two flavors of SyntaxError named in
// spec.md §4.3/§7: a token that could not be placed at all, versus a token
// recovery inserted to let parsing continue.
type SyntaxVariant uint8

const (
	VariantNone SyntaxVariant = iota
	VariantUnexpected
	VariantMissing
)

// Diagnostic is the wire-level shape of spec.md §6.2: a message, a span,
// and optional hint/detail text. It is also the Go error carried through
// the pipeline (it implements error), mirroring icterrors' dual role as
// both a diagnostic payload and a Go error value.
type Diagnostic struct {
	Kind    Kind
	Variant SyntaxVariant
	Message string
	Span    Span
	Hint    string
	Details string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// FullMessage renders the message plus hint/details, mirroring the
// teacher's err.FullMessage() call sites in parse/lr.go and fishi.go.
func (d *Diagnostic) FullMessage() string {
	msg := d.Message
	if d.Hint != "" {
		msg += "\nhint: " + d.Hint
	}
	if d.Details != "" {
		msg += "\n" + d.Details
	}
	return msg
}

// Pretty word-wraps FullMessage to width using rosed, the way
// tunascript/syntax wraps long AST-node text (ast.go, expast.go,
// ast_tmpl.go: rosed.Edit(n.Text).Wrap(60).String()).
func (d *Diagnostic) Pretty(width int) string {
	if width <= 0 {
		width = wrapWidth
	}
	return rosed.Edit(d.FullMessage()).Wrap(width).String()
}

// NewLexicalError builds a LexicalError diagnostic (spec.md §4.1 "Failure
// semantics"), optionally with a hint.
func NewLexicalError(message string, span Span, hint string) *Diagnostic {
	return &Diagnostic{Kind: KindLexical, Message: message, Span: span, Hint: hint}
}

// NewSyntaxErrorFromToken builds an "Unexpected <token>" SyntaxError at
// span, mirroring icterrors.NewSyntaxErrorFromToken(msg, tok) as called
// from internal/ictiobus/parse/lr.go — the caller (parse package) supplies
// the offending token's already-rendered Human() text as part of message
// and its Span directly, since diag cannot import lex.Token (see Span
// above).
func NewSyntaxErrorFromToken(message string, span Span) *Diagnostic {
	return &Diagnostic{
		Kind:    KindSyntax,
		Variant: VariantUnexpected,
		Message: message,
		Span:    span,
	}
}

// NewMissingError builds a "Missing <thing>" secondary SyntaxError emitted
// by single-token recovery (spec.md §4.3 step 2), optionally with a hint
// (e.g. spec.md §8 scenario 3's "It appears that a ',' is missing in a
// shape before '...'"), mirroring NewLexicalError's hint parameter.
func NewMissingError(what string, gap Span, hint string) *Diagnostic {
	return &Diagnostic{
		Kind:    KindSyntax,
		Variant: VariantMissing,
		Message: fmt.Sprintf("Missing %s", what),
		Span:    gap,
		Hint:    hint,
	}
}

// NewIncompatibleSpec builds the error returned when a .bc parser-table
// artifact's version byte doesn't match what this build expects (spec.md
// §6.1 "Compatibility").
func NewIncompatibleSpec(message string) *Diagnostic {
	return &Diagnostic{Kind: KindIncompatibleSpec, Message: message}
}

// InternalError is panicked (never returned) when an invariant the parser
// depends on is violated — a state the table generator should have made
// unreachable. Kept as a distinct type from Diagnostic so a recover() at
// the package boundary (eql.Parse et al.) can tell "the input is bad" apart
// from "our tables are wrong" by type-asserting the recovered value.
type InternalError struct {
	Message string
}

func (e InternalError) Error() string { return "internal error: " + e.Message }

// Panicf panics with an InternalError built from a formatted message.
func Panicf(format string, args ...any) {
	panic(InternalError{Message: fmt.Sprintf(format, args...)})
}

// Ordered selects the single diagnostic the caller should lead with
// (spec.md §4.3 "Error selection when multiple arise"): the sole
// "Unexpected keyword" diagnostic if it's the only Unexpected one present;
// otherwise the earliest by span, and among ties, Unexpected before
// Missing.
func Ordered(ds []*Diagnostic) *Diagnostic {
	if len(ds) == 0 {
		return nil
	}

	unexpectedCount := 0
	var soleUnexpectedKeyword *Diagnostic
	for _, d := range ds {
		if d.Kind == KindSyntax && d.Variant == VariantUnexpected {
			unexpectedCount++
		}
	}
	if unexpectedCount == 1 {
		const kwPrefix = "Unexpected keyword"
		for _, d := range ds {
			if d.Kind == KindSyntax && d.Variant == VariantUnexpected {
				if len(d.Message) >= len(kwPrefix) && d.Message[:len(kwPrefix)] == kwPrefix {
					soleUnexpectedKeyword = d
				}
				break
			}
		}
		if soleUnexpectedKeyword != nil {
			return soleUnexpectedKeyword
		}
	}

	best := ds[0]
	for _, d := range ds[1:] {
		if d.Span.Start < best.Span.Start {
			best = d
			continue
		}
		if d.Span.Start == best.Span.Start {
			if best.Variant == VariantMissing && d.Variant == VariantUnexpected {
				best = d
			}
		}
	}
	return best
}
