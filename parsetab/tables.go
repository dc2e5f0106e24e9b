// Package parsetab builds and serializes the ACTION/GOTO tables the parse
// engine drives (spec.md §4.2, §6.1). Tables are pure data: no grammar or
// automaton types leak into parse, so a table loaded from a .bc artifact
// (parsetab/artifact.go) is indistinguishable from one built fresh by
// Generate.
package parsetab

import (
	"fmt"
	"sort"
)

// ActionKind tags what a parser should do for (state, terminal).
type ActionKind uint8

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION table cell.
type Action struct {
	Kind ActionKind

	// Target is the next state for Shift.
	Target int

	// Production is the production id for Reduce.
	Production int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.Target)
	case ActionReduce:
		return fmt.Sprintf("reduce %d", a.Production)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// ProductionInfo is everything the parse/lower stages need to know about
// one production, indexed by its global id.
type ProductionInfo struct {
	NonTerminal string
	RHSLen      int
	Action      string
	// InlineIndex >= 0 marks inline forwarding (spec.md §4.2/§4.5).
	InlineIndex int
}

// Tables is the immutable, process-lifetime parser table set (spec.md §4
// invariant "Parser tables live for the lifetime of the process").
type Tables struct {
	StartState int

	// Action[state][terminal] -> Action. A nil/absent entry means no
	// action exists — the driver invokes error recovery (spec.md §4.3).
	Action []map[string]Action

	// Goto[state][nonterminal] -> next state.
	Goto []map[string]int

	Productions []ProductionInfo

	// StartSymbol is the augmented grammar's real start nonterminal name,
	// carried for diagnostics/artifact round-tripping (spec.md §6.1).
	StartSymbol string
}

// NumStates returns how many DFA states the table covers.
func (t *Tables) NumStates() int {
	return len(t.Action)
}

// Lookup returns the ACTION cell for (state, terminal) and whether one
// exists.
func (t *Tables) Lookup(state int, terminal string) (Action, bool) {
	if state < 0 || state >= len(t.Action) {
		return Action{}, false
	}
	a, ok := t.Action[state][terminal]
	return a, ok
}

// LookupGoto returns the GOTO cell for (state, nonterminal) and whether
// one exists.
func (t *Tables) LookupGoto(state int, nonTerminal string) (int, bool) {
	if state < 0 || state >= len(t.Goto) {
		return 0, false
	}
	s, ok := t.Goto[state][nonTerminal]
	return s, ok
}

// ExpectedTerminals returns the sorted terminal names with a defined
// ACTION in state, for use by error recovery (spec.md §4.3 step 2).
func (t *Tables) ExpectedTerminals(state int) []string {
	if state < 0 || state >= len(t.Action) {
		return nil
	}
	out := make([]string, 0, len(t.Action[state]))
	for term := range t.Action[state] {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
