package util

import (
	"fmt"
	"sort"
	"strings"
)

// KeySet is a set of comparable keys backed by a map, trimmed from the
// teacher's internal/util KeySet[E]/ISet[E] hierarchy (which also carried
// StringSet and SVSet variants used by tunascript's translation layer) down
// to the one shape grammar and automaton actually need: membership,
// addition, union/difference for FIRST/FOLLOW set computation, and ordered
// string rendering for trace output.
type KeySet[E comparable] map[E]bool

// NewKeySet builds a KeySet optionally seeded from existing maps.
func NewKeySet[E comparable](of ...map[E]bool) KeySet[E] {
	s := KeySet[E]{}
	for _, m := range of {
		for k := range m {
			s[k] = true
		}
	}
	return s
}

// KeySetOf builds a KeySet from a slice of elements.
func KeySetOf[E comparable](sl []E) KeySet[E] {
	s := NewKeySet[E]()
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

// Add inserts value into the set.
func (s KeySet[E]) Add(value E) {
	s[value] = true
}

// Has returns whether value is in the set.
func (s KeySet[E]) Has(value E) bool {
	return s[value]
}

// Remove deletes value from the set, if present.
func (s KeySet[E]) Remove(value E) {
	delete(s, value)
}

// Len returns the number of elements in the set.
func (s KeySet[E]) Len() int {
	return len(s)
}

// Empty returns whether the set has no elements.
func (s KeySet[E]) Empty() bool {
	return len(s) == 0
}

// Elements returns the set's members in unspecified order.
func (s KeySet[E]) Elements() []E {
	el := make([]E, 0, len(s))
	for k := range s {
		el = append(el, k)
	}
	return el
}

// AddAll adds every element of o into s.
func (s KeySet[E]) AddAll(o KeySet[E]) {
	for k := range o {
		s[k] = true
	}
}

// Union returns a new KeySet containing every element of s and o.
func (s KeySet[E]) Union(o KeySet[E]) KeySet[E] {
	newS := s.Copy()
	newS.AddAll(o)
	return newS
}

// Difference returns a new KeySet containing elements of s not in o.
func (s KeySet[E]) Difference(o KeySet[E]) KeySet[E] {
	newS := s.Copy()
	for k := range o {
		newS.Remove(k)
	}
	return newS
}

// Copy returns a shallow duplicate of s.
func (s KeySet[E]) Copy() KeySet[E] {
	newS := make(KeySet[E], len(s))
	for k := range s {
		newS[k] = true
	}
	return newS
}

// StringOrdered renders the set's elements, sorted by their %v form, for
// deterministic output.
func (s KeySet[E]) StringOrdered() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, fmt.Sprintf("%v", k))
	}
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	for i := range convs {
		sb.WriteString(convs[i])
		if i+1 < len(convs) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}
