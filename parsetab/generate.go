package parsetab

import (
	"fmt"

	"github.com/dekarrin/eqlparser/automaton"
	"github.com/dekarrin/eqlparser/grammar"
)

// Generate builds Tables from a grammar and its precomputed canonical
// LR(1) automaton, assigning each DFA state a dense integer id (sorted by
// state key for determinism) and each grammar production a dense integer
// id (declaration order, via Grammar.AllProductions). It fails if any
// ACTION cell would need two entries — spec.md §4.2's "Determinism
// contract": "If table generation detects a conflict, the build fails."
//
// Conflict-error phrasing is grounded on the teacher's
// internal/ictiobus/parse/lraction.go makeLRConflictError, which
// distinguishes shift/reduce, reduce/reduce, and accept/* conflicts by
// name rather than reporting a single generic "conflict" error.
func Generate(g *grammar.Grammar, dfa *automaton.DFA) (*Tables, error) {
	stateKeys := dfa.StateKeys()
	stateIndex := make(map[string]int, len(stateKeys))
	for i, k := range stateKeys {
		stateIndex[k] = i
	}

	prods := g.AllProductions()
	prodIndex := make(map[string]int, len(prods))
	infos := make([]ProductionInfo, len(prods))
	for i, p := range prods {
		prodIndex[prodKey(p)] = i
		infos[i] = ProductionInfo{
			NonTerminal: p.NonTerminal,
			RHSLen:      len(p.Rule),
			Action:      p.Action,
			InlineIndex: p.InlineIndex,
		}
	}

	t := &Tables{
		StartState:  stateIndex[dfa.Start],
		Action:      make([]map[string]Action, len(stateKeys)),
		Goto:        make([]map[string]int, len(stateKeys)),
		Productions: infos,
		StartSymbol: g.Start,
	}
	for i := range stateKeys {
		t.Action[i] = map[string]Action{}
		t.Goto[i] = map[string]int{}
	}

	for _, key := range stateKeys {
		si := stateIndex[key]
		state := dfa.States[key]

		for sym, target := range state.Trans {
			ti := stateIndex[target]
			if g.IsTerminal(sym) {
				if err := setAction(t, si, sym, Action{Kind: ActionShift, Target: ti}); err != nil {
					return nil, err
				}
			} else {
				t.Goto[si][sym] = ti
			}
		}

		for _, item := range state.Items.Items() {
			if _, hasNext := item.NextSymbol(); hasNext {
				continue
			}
			if automaton.IsAcceptItem(item) {
				if err := setAction(t, si, grammar.EndOfInput, Action{Kind: ActionAccept}); err != nil {
					return nil, err
				}
				continue
			}
			key := prodKey(grammar.Production{NonTerminal: item.NonTerminal, Rule: item.Left})
			pid, ok := prodIndex[key]
			if !ok {
				return nil, fmt.Errorf("parsetab: reduce item %s has no matching production", item)
			}
			if err := setAction(t, si, item.Lookahead, Action{Kind: ActionReduce, Production: pid}); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func prodKey(p grammar.Production) string {
	s := p.NonTerminal + " ->"
	for _, sym := range p.Rule {
		s += " " + sym
	}
	return s
}

func setAction(t *Tables, state int, terminal string, a Action) error {
	existing, ok := t.Action[state][terminal]
	if !ok {
		t.Action[state][terminal] = a
		return nil
	}
	if existing == a {
		return nil
	}
	return conflictError(existing, a, terminal)
}

func conflictError(a, b Action, onInput string) error {
	switch {
	case a.Kind == ActionReduce && b.Kind == ActionShift, a.Kind == ActionShift && b.Kind == ActionReduce:
		reduce := a
		if a.Kind != ActionReduce {
			reduce = b
		}
		return fmt.Errorf("shift/reduce conflict detected on terminal %q (shift or reduce production %d)", onInput, reduce.Production)
	case a.Kind == ActionReduce && b.Kind == ActionReduce:
		return fmt.Errorf("reduce/reduce conflict detected on terminal %q (reduce production %d or %d)", onInput, a.Production, b.Production)
	case a.Kind == ActionAccept || b.Kind == ActionAccept:
		other := a
		if a.Kind == ActionAccept {
			other = b
		}
		return fmt.Errorf("accept/%s conflict detected on terminal %q", other, onInput)
	case a.Kind == ActionShift && b.Kind == ActionShift:
		return fmt.Errorf("(!) shift/shift conflict on terminal %q", onInput)
	default:
		return fmt.Errorf("LR action conflict on terminal %q (%s or %s)", onInput, a, b)
	}
}
