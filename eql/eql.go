// Package eql is the public entry point for this parsing subsystem
// (spec.md §6.3): tokenize, normalize, and parse any of the five
// dialects, then lower a successful parse into an AST.
//
// Grounded on tunascript/tunascript.go's Interpreter.Parse/ParseReader
// wrapping pattern (AnalyzeString, unwrap a *syntaxerr.Error into a
// friendlier message) but generalized the other direction: the teacher
// keeps its compiled frontend on a stateful *Interpreter built once per
// session; spec.md §9's "Global parser state" design note calls instead
// for "encapsulate the tables behind an explicit handle passed through
// parsing calls; load once at process startup" — so here the frontend
// (grammar + tables) lives on an explicit *Spec handle: parsing is a
// method on *Spec, while Tokenize/Normalize/Lower are plain functions
// (Tokenize/Normalize don't even need a Spec, since they run below the
// grammar/parsetab layer).
package eql

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dekarrin/eqlparser/ast"
	"github.com/dekarrin/eqlparser/automaton"
	"github.com/dekarrin/eqlparser/cst"
	"github.com/dekarrin/eqlparser/diag"
	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/lex"
	"github.com/dekarrin/eqlparser/lower"
	"github.com/dekarrin/eqlparser/normalize"
	"github.com/dekarrin/eqlparser/parse"
	"github.com/dekarrin/eqlparser/parsetab"
)

// Spec is a loaded, immutable parser specification: the grammar plus
// its ACTION/GOTO tables (spec.md §4 invariant: "process-lifetime
// immutable"). One Spec serves any number of concurrent parses.
type Spec struct {
	grammar *grammar.Grammar
	engine  *parse.Engine
}

// BuildSpec constructs a Spec by building the grammar and its LR(1)
// automaton in-process, the fallback path when no precomputed .bc
// artifact is configured (config.Options.ArtifactPath == "").
func BuildSpec() (*Spec, error) {
	g := grammar.Build()
	dfa, err := automaton.Build(g)
	if err != nil {
		return nil, fmt.Errorf("build automaton: %w", err)
	}
	tables, err := parsetab.Generate(g, dfa)
	if err != nil {
		return nil, fmt.Errorf("generate tables: %w", err)
	}
	return &Spec{grammar: g, engine: parse.New(g, tables)}, nil
}

// PreloadSpec loads a precomputed .bc artifact from path (spec.md
// §6.1) instead of rebuilding the LR(1) automaton at startup. The
// grammar itself is still built in-process (it's deterministic
// Go code, not something the artifact serializes); only the derived
// ACTION/GOTO/production tables are read from disk.
func PreloadSpec(path string) (*Spec, error) {
	tables, derr := parsetab.LoadArtifactFile(path)
	if derr != nil {
		return nil, derr
	}
	g := grammar.Build()
	return &Spec{grammar: g, engine: parse.New(g, tables)}, nil
}

// Tokenize lexes src (spec.md §4.1). It does not require a Spec: the
// tokenizer has no grammar dependency.
func Tokenize(src *lex.Source) ([]lex.Token, []*diag.Diagnostic) {
	return lex.Tokenize(src)
}

// Normalize extracts src's literal constants into positional
// parameters and computes its canonical text and cache key (spec.md
// §4.6). Like Tokenize, this needs no Spec.
func Normalize(src *lex.Source) (normalize.Result, []*diag.Diagnostic) {
	return normalize.Normalize(src)
}

// ParserResult is one dialect parse's full outcome: the CST, the
// diagnostics recovery emitted, and enough bookkeeping for Summary.
type ParserResult struct {
	Tree        *cst.Node
	Diagnostics []*diag.Diagnostic
	TokenCount  int
	SourceBytes int
	Elapsed     time.Duration
}

// Summary renders a short human-readable line describing r, the way a
// CLI or log line would report a parse at a glance: source size,
// token count, diagnostic count, elapsed time. A debug/telemetry
// helper over go-humanize's own formatting, not a spec requirement.
func (r ParserResult) Summary() string {
	return fmt.Sprintf(
		"%s source, %s tokens, %s, %d diagnostic(s)",
		humanize.Bytes(uint64(r.SourceBytes)),
		humanize.Comma(int64(r.TokenCount)),
		r.Elapsed,
		len(r.Diagnostics),
	)
}

// Ok reports whether the parse produced a usable tree with no
// diagnostics at all.
func (r ParserResult) Ok() bool {
	return r.Tree != nil && len(r.Diagnostics) == 0
}

func (s *Spec) parseDialect(src *lex.Source, start lex.Kind) ParserResult {
	began := time.Now()

	toks, errs := lex.Tokenize(src)
	if len(errs) > 0 {
		return ParserResult{Diagnostics: errs, SourceBytes: len(src.Text), Elapsed: time.Since(began)}
	}

	full := make([]lex.Token, 0, len(toks)+1)
	full = append(full, lex.StartToken(start))
	full = append(full, toks...)

	res := s.engine.Parse(full)
	return ParserResult{
		Tree:        res.Tree,
		Diagnostics: res.Diagnostics,
		TokenCount:  len(toks),
		SourceBytes: len(src.Text),
		Elapsed:     time.Since(began),
	}
}

// ParseBlock parses src as the BLOCK dialect: a sequence of top-level
// statements and DDL (spec.md §4.2 "Dialect selection").
func (s *Spec) ParseBlock(src *lex.Source) ParserResult {
	return s.parseDialect(src, lex.KindStartBlock)
}

// ParseFragment parses src as the FRAGMENT dialect: a single
// expression or statement.
func (s *Spec) ParseFragment(src *lex.Source) ParserResult {
	return s.parseDialect(src, lex.KindStartFragment)
}

// ParseMigrationBody parses src as the MIGRATION dialect: the body of
// a CREATE MIGRATION command.
func (s *Spec) ParseMigrationBody(src *lex.Source) ParserResult {
	return s.parseDialect(src, lex.KindStartMigration)
}

// ParseExtension parses src as the EXTENSION dialect: the body of a
// CREATE EXTENSION PACKAGE command.
func (s *Spec) ParseExtension(src *lex.Source) ParserResult {
	return s.parseDialect(src, lex.KindStartExtension)
}

// ParseSDLDocument parses src as the SDLDOCUMENT dialect: a full
// schema file.
func (s *Spec) ParseSDLDocument(src *lex.Source) ParserResult {
	return s.parseDialect(src, lex.KindStartSDLDocument)
}

// Parse parses src in the given dialect, selected by the pseudo-start
// token kind (one of lex.KindStartBlock/Fragment/Migration/Extension/
// SDLDocument). Most callers want the dialect-named wrappers above;
// Parse exists for callers that pick the dialect dynamically.
func (s *Spec) Parse(src *lex.Source, dialect lex.Kind) ParserResult {
	return s.parseDialect(src, dialect)
}

// Lower lowers a completed parse's CST into an AST (spec.md §4.5). It
// returns a zero ast.Node if r's tree is nil (the parse failed before
// producing anything to lower).
func Lower(r ParserResult) lower.Result {
	if r.Tree == nil {
		return lower.Result{Registry: ast.NewRegistry()}
	}
	return lower.Lower(r.Tree)
}
