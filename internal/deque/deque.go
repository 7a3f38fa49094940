package deque

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/listkit/listkit/internal/cell"
	"github.com/listkit/listkit/pkg/logger"
)

// entry is the mutable content of a deque node. Neighbours are shared
// references to other cells; both links are only rewritten through BorrowMut.
type entry[T any] struct {
	elem T
	prev *cell.RefCell[entry[T]]
	next *cell.RefCell[entry[T]]
}

// Deque is a doubly linked list whose nodes are shared between their
// neighbours and the Deque itself, with every node wrapped in a RefCell.
//
// After every operation the links are symmetric: a node's prev points at the
// node whose next points at it, the head has no prev, the tail has no next,
// and head and tail are both nil exactly when the deque is empty.
//
// Peek guards borrow the end node. While a guard is live any operation that
// has to rewrite that node fails fast: the violation is logged and the
// operation panics before any link is changed.
//
// Deque is not safe for concurrent use.
type Deque[T any] struct {
	head   *cell.RefCell[entry[T]]
	tail   *cell.RefCell[entry[T]]
	size   int
	logger logger.Logger
}

// Option configures a Deque.
type Option func(*options)

type options struct {
	logger logger.Logger
}

// WithLogger sets the logger that reports broken invariants before the deque panics.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns an empty Deque.
func New[T any](opts ...Option) *Deque[T] {
	o := options{
		logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Deque[T]{logger: o.logger}
}

// PushFront inserts elem before the current head.
func (d *Deque[T]) PushFront(elem T) {
	old := d.head
	guards := d.lock("push_front", old)
	n := cell.New(entry[T]{elem: elem, next: old})
	if old != nil {
		guards[0].Value().prev = n
	} else {
		d.tail = n
	}
	unlock(guards)

	d.head = n
	d.size++
}

// PushBack inserts elem after the current tail.
func (d *Deque[T]) PushBack(elem T) {
	old := d.tail
	guards := d.lock("push_back", old)
	n := cell.New(entry[T]{elem: elem, prev: old})
	if old != nil {
		guards[0].Value().next = n
	} else {
		d.head = n
	}
	unlock(guards)

	d.tail = n
	d.size++
}

// PopFront removes the head and returns its element.
func (d *Deque[T]) PopFront() (T, bool) {
	old := d.head
	if old == nil {
		var zero T
		return zero, false
	}

	next := d.neighbour("pop_front", old, func(e *entry[T]) *cell.RefCell[entry[T]] { return e.next })
	guards := d.lock("pop_front", old, next)
	guards[0].Value().next = nil
	if next != nil {
		guards[1].Value().prev = nil
	} else {
		d.tail = nil
	}
	unlock(guards)

	d.head = next
	d.size--
	return d.unwrap("pop_front", old), true
}

// PopBack removes the tail and returns its element.
func (d *Deque[T]) PopBack() (T, bool) {
	old := d.tail
	if old == nil {
		var zero T
		return zero, false
	}

	prev := d.neighbour("pop_back", old, func(e *entry[T]) *cell.RefCell[entry[T]] { return e.prev })
	guards := d.lock("pop_back", old, prev)
	guards[0].Value().prev = nil
	if prev != nil {
		guards[1].Value().next = nil
	} else {
		d.head = nil
	}
	unlock(guards)

	d.tail = prev
	d.size--
	return d.unwrap("pop_back", old), true
}

// PeekFront returns a shared view of the head element. The caller must
// Release it before the head node is modified or removed.
func (d *Deque[T]) PeekFront() (*cell.Ref[T], bool) {
	return d.peek("peek_front", d.head)
}

// PeekBack returns a shared view of the tail element.
func (d *Deque[T]) PeekBack() (*cell.Ref[T], bool) {
	return d.peek("peek_back", d.tail)
}

// PeekFrontMut returns an exclusive view of the head element.
func (d *Deque[T]) PeekFrontMut() (*cell.RefMut[T], bool) {
	return d.peekMut("peek_front_mut", d.head)
}

// PeekBackMut returns an exclusive view of the tail element.
func (d *Deque[T]) PeekBackMut() (*cell.RefMut[T], bool) {
	return d.peekMut("peek_back_mut", d.tail)
}

func (d *Deque[T]) Len() int {
	return d.size
}

func (d *Deque[T]) IsEmpty() bool {
	return d.head == nil
}

// All returns an iter.Seq over the elements from front to back. Each node is
// borrowed only while its element and successor are read, so the loop body
// may peek at the deque. The deque must not be modified during iteration.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.head; n != nil; {
			r := d.borrow("iterate", n)
			elem, next := r.Value().elem, r.Value().next
			r.Release()

			if !yield(elem) {
				return
			}
			n = next
		}
	}
}

// Clear unlinks every node. It fails without changing anything if any node
// is still borrowed.
func (d *Deque[T]) Clear() {
	nodes := make([]*cell.RefCell[entry[T]], 0, d.size)
	for n := d.head; n != nil; {
		if n.Borrowed() {
			d.fail("clear", &cell.BorrowError{Op: "clear", Err: cell.ErrStillBorrowed})
		}
		nodes = append(nodes, n)
		n = d.neighbour("clear", n, func(e *entry[T]) *cell.RefCell[entry[T]] { return e.next })
	}

	for _, n := range nodes {
		g := n.BorrowMut()
		g.Value().prev, g.Value().next = nil, nil
		g.Release()
	}
	d.head, d.tail = nil, nil
	d.size = 0
}

func (d *Deque[T]) peek(op string, n *cell.RefCell[entry[T]]) (*cell.Ref[T], bool) {
	if n == nil {
		return nil, false
	}
	return cell.MapRef(d.borrow(op, n), func(e *entry[T]) *T { return &e.elem }), true
}

func (d *Deque[T]) peekMut(op string, n *cell.RefCell[entry[T]]) (*cell.RefMut[T], bool) {
	if n == nil {
		return nil, false
	}
	r, err := n.TryBorrowMut()
	if err != nil {
		d.fail(op, err)
	}
	return cell.MapRefMut(r, func(e *entry[T]) *T { return &e.elem }), true
}

func (d *Deque[T]) borrow(op string, n *cell.RefCell[entry[T]]) *cell.Ref[entry[T]] {
	r, err := n.TryBorrow()
	if err != nil {
		d.fail(op, err)
	}
	return r
}

// neighbour reads one link of n under a shared borrow.
func (d *Deque[T]) neighbour(op string, n *cell.RefCell[entry[T]], fn func(*entry[T]) *cell.RefCell[entry[T]]) *cell.RefCell[entry[T]] {
	r := d.borrow(op, n)
	defer r.Release()
	return fn(r.Value())
}

// lock borrows every non-nil node mutably, in order. If one of them is
// already borrowed the guards taken so far are released and the deque fails
// before any link is changed.
func (d *Deque[T]) lock(op string, nodes ...*cell.RefCell[entry[T]]) []*cell.RefMut[entry[T]] {
	guards := make([]*cell.RefMut[entry[T]], 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		g, err := n.TryBorrowMut()
		if err != nil {
			unlock(guards)
			d.fail(op, err)
		}
		guards = append(guards, g)
	}
	return guards
}

func unlock[T any](guards []*cell.RefMut[T]) {
	for _, g := range guards {
		g.Release()
	}
}

// unwrap consumes a node that has already been detached from the deque.
func (d *Deque[T]) unwrap(op string, n *cell.RefCell[entry[T]]) T {
	e, err := n.Unwrap()
	if err != nil {
		d.fail(op, err)
	}
	return e.elem
}

func (d *Deque[T]) fail(op string, err error) {
	d.logger.Error("deque node is still borrowed",
		zap.String("op", op),
		zap.Int("len", d.size),
		zap.Error(err),
	)
	panic(fmt.Errorf("deque: %s: %w", op, err))
}
