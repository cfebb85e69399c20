// Package xstack implements the fixed-capacity, explicit traversal stack
// used by the cell tree's locators (spec.md §4.2).
//
// Recursion is deliberately avoided in the hot traversal path: an explicit,
// pre-allocated array bounds memory use and keeps the walk trivially
// offloadable should a future caller want to batch it onto another
// execution model. Capacity must exceed the maximum possible tree depth;
// overflowing it is a fatal programming error, never induced by data alone
// (see spec.md §4.2 and §7).
package xstack

import "github.com/arl/assertgo"

// DefaultCapacity bounds tree depth for up to 2^32 faces (spec.md §4.2
// suggests 32 is already a safe upper bound; doubling it costs nothing and
// leaves headroom for unbalanced trees built by a naive splitter).
const DefaultCapacity = 64

// Stack is a fixed-capacity array of node indices with a size cursor.
type Stack struct {
	data []int32
	size int32
}

// New allocates a stack with the given capacity.
func New(capacity int32) *Stack {
	assert.True(capacity > 0, "xstack: capacity must be > 0, got %d", capacity)
	return &Stack{data: make([]int32, capacity)}
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v int32) {
	assert.True(s.size < int32(len(s.data)),
		"xstack: stack overflow, capacity=%d", len(s.data))
	s.data[s.size] = v
	s.size++
}

// Pop removes and returns the top of the stack.
func (s *Stack) Pop() int32 {
	assert.True(s.size > 0, "xstack: pop from empty stack")
	s.size--
	return s.data[s.size]
}

// Empty reports whether the stack holds no elements.
func (s *Stack) Empty() bool {
	return s.size == 0
}

// Reset clears the stack so it can be reused without reallocating.
func (s *Stack) Reset() {
	s.size = 0
}
