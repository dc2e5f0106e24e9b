// Package util holds small generic data structures shared by the grammar,
// automaton, and parse packages.
package util

// Stack is a simple LIFO stack. The zero value is an empty, ready-to-use
// stack. Of is exported so callers that need to inspect the full
// contents can do so without a copy.
type Stack[T any] struct {
	Of []T
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.Of = append(s.Of, v)
}

// Pop removes and returns the top of the stack. Panics if the stack is
// empty; callers must check Empty/Len first as automaton.Build does.
func (s *Stack[T]) Pop() T {
	n := len(s.Of)
	v := s.Of[n-1]
	s.Of = s.Of[:n-1]
	return v
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() T {
	return s.Of[len(s.Of)-1]
}

// Len returns the number of elements currently on the stack.
func (s *Stack[T]) Len() int {
	return len(s.Of)
}

// Empty returns whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.Of) == 0
}
