package stack

import "iter"

// node is a single link of a Stack or Queue. A node is referenced by exactly
// one predecessor, or by the container itself when it is the head.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a LIFO container built on a singly linked list where every node has
// a single owner. Node pointers never leave the package, so ownership only moves
// by relinking on Push and Pop.
//
// A zero value Stack is empty and ready to use. Stack is not safe for concurrent use.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.pushNode(&node[T]{value: value})
}

// Pop removes the top value and returns it. The boolean is false when the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	n := s.popNode()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.value, true
}

// PeekMut returns a pointer to the top value so it can be modified in place.
// The pointer stays valid until that value is popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.value, true
}

func (s *Stack[T]) Len() int {
	return s.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// IntoSeq returns an iter.Seq that pops every value off the stack, top first.
// Each value is produced exactly once. Breaking out of the loop early leaves
// the values that were not yet yielded on the stack.
func (s *Stack[T]) IntoSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := s.Pop()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// All returns an iter.Seq over the values from top to bottom without removing them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// AllMut is like All but yields a pointer to each value so it can be updated
// in place. Only one pointer is handed out per step; callers must not hold on
// to it past the step.
func (s *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Clear drops every node. The chain is cut one link at a time so that
// releasing a long stack never recurses.
func (s *Stack[T]) Clear() {
	release(s.head)
	s.head = nil
	s.size = 0
}

func (s *Stack[T]) pushNode(n *node[T]) {
	n.next = s.head
	s.head = n
	s.size++
}

func (s *Stack[T]) popNode() *node[T] {
	n := s.head
	if n == nil {
		return nil
	}
	s.head = n.next
	n.next = nil
	s.size--
	return n
}

func release[T any](n *node[T]) {
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}
