// Package automaton builds the canonical LR(1) item-set DFA that
// parsetab.Generate turns into ACTION/GOTO tables (spec.md §4.2). The
// shape mirrors the teacher's internal/ictiobus/automaton package
// (DFA[E] keyed by string state names, transitions keyed by symbol name —
// internal/ictiobus/automaton/dfa.go) with E fixed to grammar.ItemSet and
// the state-merging/SLR/LALR variants the teacher supports for its
// pluggable client grammars dropped: this package always builds the full
// canonical LR(1) automaton (no core-merging), because the curated
// grammar subset declared in grammar/build.go (SPEC_FULL.md §6) is sized
// to keep the canonical automaton's state count manageable without the
// LALR merge step's added complexity.
package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/eqlparser/grammar"
	"github.com/dekarrin/eqlparser/internal/util"
)

// startMarker is the synthetic augmenting nonterminal's name: the single
// item [startMarker -> . Start, $] seeds the canonical construction, and
// reducing it (dot at the end, lookahead $) signals Accept rather than an
// ordinary reduction (spec.md §4.2 step 6).
const startMarker = "\x00start\x00"

// State is one DFA state: its LR(1) item set (kept for diagnostics and
// conflict messages) plus its outgoing transitions by grammar symbol.
type State struct {
	Key   string
	Items grammar.ItemSet
	Trans map[string]string
}

// DFA is the canonical LR(1) automaton.
type DFA struct {
	States map[string]*State
	Start  string
}

// IsAcceptItem reports whether it is the augmenting item with the dot at
// the end — i.e. the production that, when reduced, means Accept.
func IsAcceptItem(it grammar.LR1Item) bool {
	return it.NonTerminal == startMarker && len(it.Right) == 0
}

// Build constructs the canonical LR(1) automaton for g, starting from its
// declared Start symbol.
func Build(g *grammar.Grammar) (*DFA, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	startItem := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: startMarker, Right: []string{g.Start}},
		Lookahead: grammar.EndOfInput,
	}
	startSet := closure(g, grammar.NewItemSet(startItem))

	dfa := &DFA{States: map[string]*State{}}
	dfa.Start = startSet.Key()
	dfa.States[dfa.Start] = &State{Key: dfa.Start, Items: startSet, Trans: map[string]string{}}

	worklist := util.Stack[string]{}
	worklist.Push(dfa.Start)
	for !worklist.Empty() {
		key := worklist.Pop()
		state := dfa.States[key]

		symbols := symbolsAfterDot(state.Items)
		for _, sym := range symbols {
			moved := gotoSet(g, state.Items, sym)
			if len(moved) == 0 {
				continue
			}
			moved = closure(g, moved)
			mkey := moved.Key()
			if _, ok := dfa.States[mkey]; !ok {
				dfa.States[mkey] = &State{Key: mkey, Items: moved, Trans: map[string]string{}}
				worklist.Push(mkey)
			}
			state.Trans[sym] = mkey
		}
	}

	return dfa, nil
}

// closure computes the LR(1) closure of an item set (dragon-book style):
// for every item [A -> α.Bβ, a] with B a nonterminal, add
// [B -> .γ, b] for every production B -> γ and every b in FIRST(βa).
func closure(g *grammar.Grammar, items grammar.ItemSet) grammar.ItemSet {
	out := grammar.NewItemSet(items.Items()...)
	changed := true
	for changed {
		changed = false
		for _, it := range out.Items() {
			sym, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}
			beta := it.Right[1:]
			lookaheads := g.FollowOfSequence(beta, it.Lookahead)
			for _, prod := range g.Rule(sym) {
				for _, la := range lookaheads.Elements() {
					if la == grammar.Epsilon {
						continue
					}
					newItem := grammar.LR1Item{
						LR0Item:   grammar.LR0Item{NonTerminal: sym, Right: append([]string{}, prod.Rule...)},
						Lookahead: la,
					}
					if !out.Has(newItem) {
						out.Add(newItem)
						changed = true
					}
				}
			}
		}
	}
	return out
}

// gotoSet computes GOTO(items, sym): advance the dot over sym in every
// item of items that has sym immediately after its dot.
func gotoSet(g *grammar.Grammar, items grammar.ItemSet, sym string) grammar.ItemSet {
	out := grammar.ItemSet{}
	for _, it := range items.Items() {
		next, ok := it.NextSymbol()
		if !ok || next != sym {
			continue
		}
		out.Add(it.Advance())
	}
	return out
}

func symbolsAfterDot(items grammar.ItemSet) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items.Items() {
		sym, ok := it.NextSymbol()
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// StateKeys returns every state key, sorted, for deterministic iteration
// when generating tables.
func (d *DFA) StateKeys() []string {
	keys := make([]string, 0, len(d.States))
	for k := range d.States {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{%d states}", len(d.States))
}
