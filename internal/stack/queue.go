package stack

import "iter"

// Queue is a FIFO container built on the same singly linked nodes as Stack.
// It keeps a pointer to the last node so that Push is O(1). The tail pointer is
// nil exactly when head is nil, and tail.next is always nil.
//
// A zero value Queue is empty and ready to use. Queue is not safe for concurrent use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends value at the back of the queue.
func (q *Queue[T]) Push(value T) {
	n := &node[T]{value: value}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Pop removes the value at the front of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	n := q.head
	if n == nil {
		var zero T
		return zero, false
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n.value, true
}

// Peek returns the value at the front of the queue.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// PeekMut returns a pointer to the value at the front of the queue.
func (q *Queue[T]) PeekMut() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	return &q.head.value, true
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// IntoSeq returns an iter.Seq that pops every value in FIFO order.
func (q *Queue[T]) IntoSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := q.Pop()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// All returns an iter.Seq over the values from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// AllMut returns an iter.Seq over pointers to the values from front to back.
func (q *Queue[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Clear drops every node iteratively.
func (q *Queue[T]) Clear() {
	release(q.head)
	q.head = nil
	q.tail = nil
	q.size = 0
}
