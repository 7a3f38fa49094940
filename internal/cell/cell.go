package cell

// writing marks a RefCell that has a live RefMut.
const writing = -1

// RefCell holds a value that can be read or written through guards whose
// lifetimes are tracked at runtime. Any number of Ref guards, or exactly one
// RefMut guard, may be live at a time. Breaking that rule panics with a
// *BorrowError instead of letting two views of the value race.
//
// RefCell is not safe for concurrent use; it only catches aliasing mistakes
// within a single goroutine.
type RefCell[T any] struct {
	value T

	// borrow counts live Ref guards, or is writing while a RefMut is live.
	borrow   int
	consumed bool
}

func New[T any](value T) *RefCell[T] {
	return &RefCell[T]{value: value}
}

// TryBorrow returns a shared guard on the value, or an error if the value is
// mutably borrowed or has been unwrapped.
func (c *RefCell[T]) TryBorrow() (*Ref[T], error) {
	switch {
	case c.consumed:
		return nil, &BorrowError{Op: "borrow", Err: ErrConsumed}
	case c.borrow == writing:
		return nil, &BorrowError{Op: "borrow", Err: ErrAlreadyMutablyBorrowed}
	}

	c.borrow++
	return &Ref[T]{
		ptr:     &c.value,
		release: func() { c.borrow-- },
	}, nil
}

// TryBorrowMut returns an exclusive guard on the value, or an error if any
// other guard is live or the value has been unwrapped.
func (c *RefCell[T]) TryBorrowMut() (*RefMut[T], error) {
	switch {
	case c.consumed:
		return nil, &BorrowError{Op: "borrow_mut", Err: ErrConsumed}
	case c.borrow == writing:
		return nil, &BorrowError{Op: "borrow_mut", Err: ErrAlreadyMutablyBorrowed}
	case c.borrow > 0:
		return nil, &BorrowError{Op: "borrow_mut", Err: ErrAlreadyBorrowed}
	}

	c.borrow = writing
	return &RefMut[T]{
		ptr:     &c.value,
		release: func() { c.borrow = 0 },
	}, nil
}

// Borrow is like TryBorrow but panics on failure.
func (c *RefCell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// BorrowMut is like TryBorrowMut but panics on failure.
func (c *RefCell[T]) BorrowMut() *RefMut[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return r
}

// Unwrap consumes the cell and returns its value. It fails if any guard is
// still live. A consumed cell can no longer be borrowed.
func (c *RefCell[T]) Unwrap() (T, error) {
	var zero T
	switch {
	case c.consumed:
		return zero, &BorrowError{Op: "unwrap", Err: ErrConsumed}
	case c.borrow != 0:
		return zero, &BorrowError{Op: "unwrap", Err: ErrStillBorrowed}
	}

	value := c.value
	c.value = zero
	c.consumed = true
	return value, nil
}

// Borrowed reports whether any guard on the cell is live.
func (c *RefCell[T]) Borrowed() bool {
	return c.borrow != 0
}

// Readers returns the number of live Ref guards.
func (c *RefCell[T]) Readers() int {
	if c.borrow == writing {
		return 0
	}
	return c.borrow
}

// Writing reports whether a RefMut guard is live.
func (c *RefCell[T]) Writing() bool {
	return c.borrow == writing
}
