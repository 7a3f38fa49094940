package cell

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyBorrowed        = errors.New("value is already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("value is already mutably borrowed")
	ErrStillBorrowed          = errors.New("value is still borrowed")
	ErrConsumed               = errors.New("value has been unwrapped")
	ErrNotBorrowed            = errors.New("guard has already been released")
)

// BorrowError reports a violation of the borrowing rules of a RefCell.
type BorrowError struct {
	Op  string
	Err error
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("cell: %s: %v", e.Op, e.Err)
}

func (e *BorrowError) Unwrap() error {
	return e.Err
}
