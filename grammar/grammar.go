// Package grammar declares the context-free grammar consumed by automaton
// and parsetab to build LR(1) parsing tables (spec.md §4.4). Grammar
// symbols are plain strings: terminal names matching lex.Kind.Terminal()
// (including the synthetic pseudo-start names), and
// nonterminal names chosen by the grammar author. Using strings rather
// than typed symbols mirrors the wire format of spec.md §6.1, which
// serializes the ACTION/GOTO tables as "(terminal_name, action)" pairs —
// the tables never need anything richer than a name to identify a symbol.
//
// internal/ictiobus/grammar/grammar.go itself (the teacher's own Grammar
// type) was not present in the retrieved reference pack — only
// grammar_test.go and item.go were — so the API below is reconstructed
// from grammar_test.go's call sites (Grammar.AddTerm, Grammar.AddRule,
// Grammar.Rule, Grammar.Terminals, Grammar.NonTerminals) rather than
// copied from source that was never seen.
package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/eqlparser/internal/util"
)

// Epsilon denotes an empty production right-hand side.
const Epsilon = ""

// EndOfInput is the lookahead terminal for the augmented start production
// (spec.md §4.2 "Accept").
const EndOfInput = "$"

// Production is one alternative for a nonterminal: a right-hand side
// symbol sequence, the name of the reduction method that implements its
// semantic action (spec.md §4.4 "reduction methods whose names encode
// their right-hand side"), and an optional inline-forwarding child index
// (spec.md §4.2 "Inline forwarding").
type Production struct {
	NonTerminal string
	Rule        []string
	Action      string

	// InlineIndex is the 0-based child index to forward directly when
	// >= 0; -1 means this production is not inline.
	InlineIndex int
}

func (p Production) String() string {
	rhs := "ε"
	if len(p.Rule) > 0 {
		rhs = ""
		for i, s := range p.Rule {
			if i > 0 {
				rhs += " "
			}
			rhs += s
		}
	}
	return fmt.Sprintf("%s -> %s", p.NonTerminal, rhs)
}

// Grammar is a context-free grammar over a closed terminal alphabet and an
// author-declared set of nonterminals.
type Grammar struct {
	Start string

	terminals    util.KeySet[string]
	nonTerminals []string
	rules        map[string][]Production

	firstCache  map[string]util.KeySet[string]
	followCache map[string]util.KeySet[string]
}

// New builds an empty Grammar with the given start symbol.
func New(start string) *Grammar {
	return &Grammar{
		Start:     start,
		terminals: util.NewKeySet[string](),
		rules:     map[string][]Production{},
	}
}

// AddTerm declares name as a terminal symbol.
func (g *Grammar) AddTerm(name string) {
	g.terminals.Add(name)
	g.invalidateCaches()
}

// AddRule appends one production for nt. inlineIndex is -1 for non-inline
// productions.
func (g *Grammar) AddRule(nt string, rhs []string, action string, inlineIndex int) {
	if _, ok := g.rules[nt]; !ok {
		g.nonTerminals = append(g.nonTerminals, nt)
	}
	g.rules[nt] = append(g.rules[nt], Production{
		NonTerminal: nt,
		Rule:        rhs,
		Action:      action,
		InlineIndex: inlineIndex,
	})
	g.invalidateCaches()
}

func (g *Grammar) invalidateCaches() {
	g.firstCache = nil
	g.followCache = nil
}

// Rule returns nt's productions in declaration order.
func (g *Grammar) Rule(nt string) []Production {
	return g.rules[nt]
}

// IsTerminal reports whether sym was declared via AddTerm.
func (g *Grammar) IsTerminal(sym string) bool {
	return sym != Epsilon && g.terminals.Has(sym)
}

// IsNonTerminal reports whether sym has at least one production.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

// Terminals returns the declared terminal names, sorted for determinism.
func (g *Grammar) Terminals() []string {
	el := g.terminals.Elements()
	sort.Strings(el)
	return el
}

// NonTerminals returns nonterminal names in first-declared order.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.nonTerminals))
	copy(out, g.nonTerminals)
	return out
}

// AllProductions returns every production across every nonterminal, in
// declaration order, each tagged with its 0-based global production id —
// this is the ordering parsetab uses for the "production-name vector"
// (spec.md §6.1).
func (g *Grammar) AllProductions() []Production {
	var all []Production
	for _, nt := range g.nonTerminals {
		all = append(all, g.rules[nt]...)
	}
	return all
}

// Validate checks that every symbol referenced on a production's
// right-hand side is either a declared terminal or a nonterminal with its
// own productions, and that the start symbol has at least one production.
func (g *Grammar) Validate() error {
	if _, ok := g.rules[g.Start]; !ok {
		return fmt.Errorf("grammar: start symbol %q has no productions", g.Start)
	}
	for _, nt := range g.nonTerminals {
		for _, p := range g.rules[nt] {
			for _, sym := range p.Rule {
				if sym == Epsilon {
					continue
				}
				if !g.IsTerminal(sym) && !g.IsNonTerminal(sym) {
					return fmt.Errorf("grammar: production %s references undeclared symbol %q", p, sym)
				}
			}
		}
	}
	return nil
}

// First computes FIRST(sym) — the set of terminals (and possibly
// Epsilon) that can begin a string derived from sym — memoized across
// calls until the next AddRule/AddTerm.
func (g *Grammar) First(sym string) util.KeySet[string] {
	if g.firstCache == nil {
		g.firstCache = map[string]util.KeySet[string]{}
	}
	if cached, ok := g.firstCache[sym]; ok {
		return cached
	}
	// visiting holds the nonterminals on the current expansion path, to
	// guard recursive nonterminals
	visiting := util.NewKeySet[string]()
	result := g.computeFirst(sym, visiting)
	g.firstCache[sym] = result
	return result
}

func (g *Grammar) computeFirst(sym string, visiting util.KeySet[string]) util.KeySet[string] {
	out := util.NewKeySet[string]()
	if sym == Epsilon {
		out.Add(Epsilon)
		return out
	}
	if g.IsTerminal(sym) {
		out.Add(sym)
		return out
	}
	if visiting.Has(sym) {
		return out
	}
	visiting.Add(sym)
	defer visiting.Remove(sym)
	for _, p := range g.rules[sym] {
		out.AddAll(g.firstOfSequence(p.Rule, visiting))
	}
	return out
}

func (g *Grammar) firstOfSequence(seq []string, visiting util.KeySet[string]) util.KeySet[string] {
	out := util.NewKeySet[string]()
	if len(seq) == 0 {
		out.Add(Epsilon)
		return out
	}
	allEps := true
	for _, sym := range seq {
		f := g.computeFirst(sym, visiting)
		for _, t := range f.Elements() {
			if t != Epsilon {
				out.Add(t)
			}
		}
		if !f.Has(Epsilon) {
			allEps = false
			break
		}
	}
	if allEps {
		out.Add(Epsilon)
	}
	return out
}

// Follow computes the classic FOLLOW(nt) set: terminals (and EndOfInput
// for the start symbol) that can immediately follow nt in some sentential
// form. Not used by the canonical LR(1) construction itself (which
// carries per-item lookaheads instead), but exposed for diagnostics that
// want "X can be followed by" independent of any specific parser state.
func (g *Grammar) Follow(nt string) util.KeySet[string] {
	if g.followCache == nil {
		g.followCache = map[string]util.KeySet[string]{}
		for _, n := range g.nonTerminals {
			g.followCache[n] = util.NewKeySet[string]()
		}
		g.followCache[g.Start].Add(EndOfInput)

		changed := true
		for changed {
			changed = false
			for _, lhs := range g.nonTerminals {
				for _, p := range g.rules[lhs] {
					for i, sym := range p.Rule {
						if !g.IsNonTerminal(sym) {
							continue
						}
						rest := p.Rule[i+1:]
						visiting := util.NewKeySet[string]()
						firstRest := g.firstOfSequence(rest, visiting)
						before := g.followCache[sym].Len()
						for _, t := range firstRest.Elements() {
							if t != Epsilon {
								g.followCache[sym].Add(t)
							}
						}
						if firstRest.Has(Epsilon) {
							g.followCache[sym].AddAll(g.followCache[lhs])
						}
						if g.followCache[sym].Len() != before {
							changed = true
						}
					}
				}
			}
		}
	}
	return g.followCache[nt]
}

// FollowOfSequence computes FIRST of a lookahead-bearing suffix: used by
// LR(1) closure to compute the lookahead set for items of the form
// [A -> α.Bβ, a] as FIRST(βa).
func (g *Grammar) FollowOfSequence(seq []string, trailing string) util.KeySet[string] {
	visiting := util.NewKeySet[string]()
	out := g.firstOfSequence(seq, visiting)
	if out.Has(Epsilon) {
		out.Remove(Epsilon)
		out.Add(trailing)
	}
	return out
}
