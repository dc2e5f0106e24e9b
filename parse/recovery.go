package parse

import (
	"fmt"
	"strings"

	"github.com/dekarrin/eqlparser/diag"
	"github.com/dekarrin/eqlparser/internal/util"
	"github.com/dekarrin/eqlparser/lex"
	"github.com/dekarrin/eqlparser/parsetab"
)

// lookaheadBound is how many tokens ahead a recovery candidate must parse
// cleanly before it's accepted — spec.md §4.3 step 2 says "at least 4".
const lookaheadBound = 4

// syncTerminals are the tokens panic-mode recovery skips forward to
// (spec.md §4.3 step 3).
var syncTerminals = map[string]bool{
	"SEMICOLON": true,
	"RBRACE":    true,
	"RPAREN":    true,
	"RBRACKET":  true,
	"$":         true,
}

// recoverAt implements spec.md §4.3: emit the primary "Unexpected"
// diagnostic, then attempt single-token insertion before falling back to
// panic-mode synchronization. Returns false only when no recovery is
// possible at all (panic-mode ran off the end of input with nothing left
// to synchronize on).
func (d *driver) recoverAt(s int, tok lex.Token) bool {
	d.diags = append(d.diags, d.unexpectedDiagnostic(tok))

	if candidate, ok := d.trySingleTokenInsertion(s); ok {
		hint := missingHint(candidate, tok)
		d.diags = append(d.diags, diag.NewMissingError(missingWhat(candidate), tok.Span.Diag(), hint))
		d.applyInsertion(candidate)
		return true
	}

	return d.panicModeSync()
}

func (d *driver) unexpectedDiagnostic(tok lex.Token) *diag.Diagnostic {
	var msg string
	if tok.Kind.IsKeyword() {
		msg = fmt.Sprintf("Unexpected keyword %s", tok.Human())
	} else {
		msg = fmt.Sprintf("Unexpected %s", tok.Human())
	}
	diagnostic := diag.NewSyntaxErrorFromToken(msg, tok.Span.Diag())
	if tok.Kind == lex.KindExplain {
		diagnostic.Hint = "use `analyze` to show query performance details"
	}
	return diagnostic
}

// missingHint attaches spec.md §4.3's domain-specific hints to a
// single-token-insertion recovery. Only the COMMA case has a spec-required
// wording (spec.md §8 scenario 3); every other candidate gets no hint.
func missingHint(candidate string, tok lex.Token) string {
	if candidate == "COMMA" {
		return fmt.Sprintf("It appears that a ',' is missing in a shape before '%s'", tok.Text)
	}
	return ""
}

// missingWhat renders terminal's human name for a "Missing ..."
// diagnostic: bare when the human name is quoted or bracketed, as for
// punctuation, keywords and pseudo-start kinds ("Missing ')'", "Missing
// 'select'"), articled for everything else ("Missing an identifier"),
// using util.ArticleFor to pick "a"/"an" the same way recovery messages
// would read naturally aloud.
func missingWhat(terminal string) string {
	human := terminalToKind(terminal).Human()
	if strings.HasPrefix(human, "'") || strings.HasPrefix(human, "<") {
		return human
	}
	return util.ArticleFor(human, false) + " " + human
}

// trySingleTokenInsertion tries, in sorted terminal-name order, every terminal
// with a defined ACTION in the current state; a candidate succeeds if
// inserting it lets the parser consume the next lookaheadBound real
// tokens (or run off the end of input) without hitting another error.
// Exactly one surviving candidate is required — an ambiguous recovery is
// no recovery at all.
func (d *driver) trySingleTokenInsertion(s int) (string, bool) {
	var winners []string
	for _, candidate := range d.engine.Tables.ExpectedTerminals(s) {
		states, ok := simulateStates(d.engine.Tables, cloneInts(d.states), candidate)
		if !ok {
			continue
		}
		if d.simulateLookahead(states) {
			winners = append(winners, candidate)
		}
	}
	if len(winners) == 1 {
		return winners[0], true
	}
	return "", false
}

// simulateLookahead feeds up to lookaheadBound real tokens, starting at
// d.pos, through states without mutating driver state, reporting whether
// every one of them found a valid ACTION (running off the end of input
// counts as success — there was nothing left to fail on).
func (d *driver) simulateLookahead(states []int) bool {
	pos := d.pos
	for i := 0; i < lookaheadBound; i++ {
		var tok lex.Token
		if pos >= len(d.toks) {
			tok = lex.Token{Kind: lex.KindEOI}
		} else {
			tok = d.toks[pos]
		}
		next, ok := simulateStates(d.engine.Tables, states, tok.Kind.Terminal())
		if !ok {
			return false
		}
		states = next
		if tok.Kind == lex.KindEOI {
			return true
		}
		pos++
	}
	return true
}

// simulateStates replays ACTION-driven reduces against a copy of a state
// stack until a shift of terminal (or accept) happens, without touching
// any CST/token bookkeeping — recovery only needs to know whether the
// grammar can make progress, not what tree it would build.
func simulateStates(t *parsetab.Tables, states []int, terminal string) ([]int, bool) {
	for steps := 0; steps < 10_000; steps++ {
		top := states[len(states)-1]
		action, ok := t.Lookup(top, terminal)
		if !ok {
			return nil, false
		}
		switch action.Kind {
		case parsetab.ActionShift:
			return append(states, action.Target), true
		case parsetab.ActionAccept:
			return states, true
		case parsetab.ActionReduce:
			info := t.Productions[action.Production]
			if len(states) <= info.RHSLen {
				return nil, false
			}
			states = states[:len(states)-info.RHSLen]
			goTo, ok := t.LookupGoto(states[len(states)-1], info.NonTerminal)
			if !ok {
				return nil, false
			}
			states = append(states, goTo)
		default:
			return nil, false
		}
	}
	return nil, false
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// applyInsertion performs the winning candidate's shift/reduce cascade
// for real: a synthetic, zero-span token stands in for the missing
// terminal so the CST still gets a leaf at the gap (spec.md §4.3's
// "continue parsing as if the recovery token were present").
func (d *driver) applyInsertion(terminal string) {
	gapSpan := lex.Span{}
	if d.pos < len(d.toks) {
		gapSpan = lex.Span{Start: d.toks[d.pos].Span.Start, End: d.toks[d.pos].Span.Start}
	}
	synthetic := lex.Token{Kind: terminalToKind(terminal), Text: "", Span: gapSpan}

	for {
		top := d.peekState()
		action, ok := d.engine.Tables.Lookup(top, terminal)
		if !ok {
			diag.Panicf("parse: recovery candidate %q has no action after all in state %d", terminal, top)
		}
		if action.Kind == parsetab.ActionShift {
			d.bufTok = append(d.bufTok, synthetic)
			d.states = append(d.states, action.Target)
			return
		}
		if action.Kind == parsetab.ActionReduce {
			d.reduce(action.Production)
			continue
		}
		diag.Panicf("parse: recovery candidate %q produced unexpected action kind %v", terminal, action.Kind)
	}
}

// panicModeSync implements spec.md §4.3 step 3: skip input tokens until a
// synchronizing token, then pop parser states until one of them has a
// valid action for it (or the state stack bottoms out), so the main loop
// can resume from there. If no state on the stack accepts a real sync
// token, the stack is restored and the sync token itself is skipped, so
// the main loop resumes with the token after it.
func (d *driver) panicModeSync() bool {
	for d.pos < len(d.toks) && !syncTerminals[d.toks[d.pos].Kind.Terminal()] {
		d.advance()
	}

	sync := "$"
	if d.pos < len(d.toks) {
		sync = d.toks[d.pos].Kind.Terminal()
	}

	states, bufTok, roots := d.states, d.bufTok, d.roots
	for len(d.states) > 1 {
		top := d.peekState()
		if _, ok := d.engine.Tables.Lookup(top, sync); ok {
			return true
		}
		d.states = d.states[:len(d.states)-1]
		if len(d.bufTok) > 0 {
			d.bufTok = d.bufTok[:len(d.bufTok)-1]
		} else if len(d.roots) > 0 {
			d.roots = d.roots[:len(d.roots)-1]
		}
	}

	if d.pos < len(d.toks) {
		d.states, d.bufTok, d.roots = states, bufTok, roots
		d.advance()
		return true
	}
	return false
}

// terminalToKind reverse-maps a grammar terminal name back to the
// lex.Kind that produces it, for synthesizing the placeholder token a
// recovered insertion needs. Only ever called with a name that came from
// Tables.ExpectedTerminals, so it is always one of lex's own terminal
// names.
func terminalToKind(terminal string) lex.Kind {
	return lex.KindFromTerminal(terminal)
}
