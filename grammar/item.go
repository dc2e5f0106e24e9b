package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a production with a dot position, adapted directly from the
// teacher's internal/ictiobus/grammar/item.go (same field names/shape);
// Left is everything before the dot, Right everything after.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

func (lr0 LR0Item) String() string {
	left := strings.Join(lr0.Left, " ")
	right := strings.Join(lr0.Right, " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s -> %s.%s", lr0.NonTerminal, left, right)
}

// NextSymbol returns the symbol immediately after the dot, and whether one
// exists (false at the end of a production).
func (lr0 LR0Item) NextSymbol() (string, bool) {
	if len(lr0.Right) == 0 {
		return "", false
	}
	return lr0.Right[0], true
}

// Advance returns the item with the dot moved one position to the right.
func (lr0 LR0Item) Advance() LR0Item {
	if len(lr0.Right) == 0 {
		return lr0
	}
	next := LR0Item{
		NonTerminal: lr0.NonTerminal,
		Left:        append(append([]string{}, lr0.Left...), lr0.Right[0]),
		Right:       append([]string{}, lr0.Right[1:]...),
	}
	return next
}

// LR1Item is an LR0Item annotated with a single lookahead terminal (or
// EndOfInput), adapted from the teacher's LR1Item.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (lr1 LR1Item) String() string {
	return fmt.Sprintf("[%s, %s]", lr1.LR0Item.String(), lr1.Lookahead)
}

func (lr1 LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: lr1.LR0Item.Advance(), Lookahead: lr1.Lookahead}
}

// ItemSet is a canonical LR(1) item set, keyed by each item's String() so
// sets can be compared/deduplicated by value (grammar/automaton's use of
// KeySet[string] rather than the teacher's VSet/SVSet machinery — see
// DESIGN.md).
type ItemSet map[string]LR1Item

func NewItemSet(items ...LR1Item) ItemSet {
	s := ItemSet{}
	for _, it := range items {
		s[it.String()] = it
	}
	return s
}

func (s ItemSet) Add(it LR1Item) {
	s[it.String()] = it
}

func (s ItemSet) Has(it LR1Item) bool {
	_, ok := s[it.String()]
	return ok
}

func (s ItemSet) Items() []LR1Item {
	out := make([]LR1Item, 0, len(s))
	for _, it := range s {
		out = append(out, it)
	}
	return out
}

// Key returns a canonical, order-independent identity string for the set,
// used as the automaton DFA's state name.
func (s ItemSet) Key() string {
	parts := s.sortedStrings()
	return strings.Join(parts, "\n")
}

func (s ItemSet) sortedStrings() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	// simple insertion sort keeps this package free of an extra import;
	// item sets are small (bounded by grammar size).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
