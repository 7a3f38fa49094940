package persistent

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// List is an immutable singly linked list. Append and Tail never modify
// existing nodes; they return a new List that shares the untouched suffix with
// the receiver. Because nodes are never written after construction, a List and
// every list derived from it may be read from many goroutines at once.
//
// The zero value is the empty list.
type List[T any] struct {
	head *node[T]
	size int
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Append returns a new list with value in front of the receiver's elements.
// The receiver is unchanged.
func (l List[T]) Append(value T) List[T] {
	return List[T]{
		head: &node[T]{value: value, next: l.head},
		size: l.size + 1,
	}
}

// Tail returns the list without its first element. The tail of an empty list
// is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next, size: l.size - 1}
}

// Head returns the first element of the list.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

func (l List[T]) Len() int {
	return l.size
}

func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// All returns an iter.Seq over the elements from head to end.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
