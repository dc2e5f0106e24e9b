// Package parse drives parsetab's ACTION/GOTO tables over a lex.Token
// stream to build a cst.Node tree (spec.md §4.2). This is the one place
// lex, grammar, and parsetab all meet: it translates lex.Kind to the
// plain terminal-name vocabulary via lex.Kind.Terminal(), looks up
// productions by id via the Grammar passed to Generate, and hands
// recovery duties to recovery.go.
//
// The core loop is internal/ictiobus/parse/lr.go's lrParser.Parse,
// Algorithm 4.44 from the dragon book, generalized: the teacher's
// version builds a types.ParseTree keyed purely by symbol name and
// looks up productions by re-deriving them from the grammar at reduce
// time (scanning g.Rule(A) for one whose RHS matches β); ours carries
// the production id directly in the ACTION table (parsetab.Action.
// Production) so the reduce step never needs that re-derivation, and it
// calls into error recovery instead of returning immediately on the
// first missing ACTION entry.
package parse

import (
	"github.com/dekarrin/eqlparser/cst"
	"github.com/dekarrin/eqlparser/diag"
	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/lex"
	"github.com/dekarrin/eqlparser/parsetab"
)

// Engine drives one parse given a fixed Grammar+Tables pair. Both are
// process-lifetime immutable (spec.md §4 invariant), so one Engine can
// serve many concurrent Parse calls.
type Engine struct {
	Grammar *grammar.Grammar
	Tables  *parsetab.Tables
}

// New builds an Engine over g's productions and t's tables. g and t must
// have been produced from the same grammar (parsetab.Generate(g, ...)),
// since production ids in t index into g.AllProductions().
func New(g *grammar.Grammar, t *parsetab.Tables) *Engine {
	return &Engine{Grammar: g, Tables: t}
}

// Result is one parse's outcome: the CST root (nil if parsing produced
// no tree at all, e.g. the token stream was empty and even recovery
// could not synthesize a start) plus every diagnostic recovery emitted,
// in emission order.
type Result struct {
	Tree        *cst.Node
	Diagnostics []*diag.Diagnostic
}

// Parse runs the shift/reduce driver over toks, which must begin with
// the appropriate dialect pseudo-start token (spec.md §4.2 "Dialect
// selection"). A trailing lex.KindEOI token is optional: once toks is
// exhausted the driver reads end of input as KindEOI.
func (e *Engine) Parse(toks []lex.Token) Result {
	d := &driver{
		engine: e,
		toks:   toks,
		states: []int{e.Tables.StartState},
	}
	return d.run()
}

type driver struct {
	engine *Engine
	toks   []lex.Token
	pos    int // index of the next unconsumed token

	states []int       // state stack
	bufTok []lex.Token  // shifted-token buffer, parallel to symbol stack positions
	roots  []*cst.Node // completed subtree stack

	diags []*diag.Diagnostic
}

func (d *driver) peekState() int {
	return d.states[len(d.states)-1]
}

func (d *driver) current() lex.Token {
	if d.pos >= len(d.toks) {
		end := 0
		if len(d.toks) > 0 {
			end = d.toks[len(d.toks)-1].Span.End
		}
		return lex.Token{Kind: lex.KindEOI, Span: lex.Span{Start: end, End: end}}
	}
	return d.toks[d.pos]
}

func (d *driver) advance() {
	if d.pos < len(d.toks) {
		d.pos++
	}
}

// run implements dragon-book Algorithm 4.44, extended to call
// recoverAt on ActionError instead of failing immediately.
func (d *driver) run() Result {
	for {
		s := d.peekState()
		a := d.current()
		terminal := a.Kind.Terminal()

		action, ok := d.engine.Tables.Lookup(s, terminal)
		if !ok {
			if !d.recoverAt(s, a) {
				return Result{Diagnostics: d.diags}
			}
			continue
		}

		switch action.Kind {
		case parsetab.ActionShift:
			d.bufTok = append(d.bufTok, a)
			d.states = append(d.states, action.Target)
			d.advance()

		case parsetab.ActionReduce:
			d.reduce(action.Production)

		case parsetab.ActionAccept:
			if len(d.roots) == 0 {
				return Result{Diagnostics: d.diags}
			}
			return Result{Tree: d.roots[len(d.roots)-1], Diagnostics: d.diags}

		default:
			if !d.recoverAt(s, a) {
				return Result{Diagnostics: d.diags}
			}
		}
	}
}

func (d *driver) reduce(prodID int) {
	info := d.engine.Tables.Productions[prodID]
	prod := grammar.Production{
		NonTerminal: info.NonTerminal,
		Action:      info.Action,
		InlineIndex: info.InlineIndex,
		Rule:        d.engine.lookupRule(prodID),
	}

	children := make([]*cst.Node, info.RHSLen)
	for i := info.RHSLen - 1; i >= 0; i-- {
		sym := prod.Rule[i]
		if d.engine.Grammar.IsTerminal(sym) {
			tok := d.bufTok[len(d.bufTok)-1]
			d.bufTok = d.bufTok[:len(d.bufTok)-1]
			children[i] = cst.Leaf(tok)
		} else {
			node := d.roots[len(d.roots)-1]
			d.roots = d.roots[:len(d.roots)-1]
			children[i] = node
		}
		d.states = d.states[:len(d.states)-1]
	}

	node := cst.Reduce(prod, children)
	d.roots = append(d.roots, node)

	t := d.peekState()
	goTo, ok := d.engine.Tables.LookupGoto(t, info.NonTerminal)
	if !ok {
		diag.Panicf("parse: no GOTO[%d, %s] after reducing production %d", t, info.NonTerminal, prodID)
	}
	d.states = append(d.states, goTo)
}

func (e *Engine) lookupRule(prodID int) []string {
	all := e.Grammar.AllProductions()
	if prodID < 0 || prodID >= len(all) {
		return nil
	}
	return all[prodID].Rule
}

