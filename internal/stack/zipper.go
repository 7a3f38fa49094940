package stack

import "iter"

// Zipper is a sequence with a movable cursor, made of two independent stacks.
// The left stack holds the values before the cursor with the nearest one on
// top, and the right stack holds the values after it in the same way. The two
// sides never share nodes.
//
// A zero value Zipper is empty and ready to use.
type Zipper[T any] struct {
	left  Stack[T]
	right Stack[T]
}

// NewZipper returns an empty Zipper.
func NewZipper[T any]() *Zipper[T] {
	return &Zipper[T]{}
}

func (z *Zipper[T]) PushLeft(value T) {
	z.left.Push(value)
}

func (z *Zipper[T]) PushRight(value T) {
	z.right.Push(value)
}

func (z *Zipper[T]) PopLeft() (T, bool) {
	return z.left.Pop()
}

func (z *Zipper[T]) PopRight() (T, bool) {
	return z.right.Pop()
}

func (z *Zipper[T]) PeekLeft() (T, bool) {
	return z.left.Peek()
}

func (z *Zipper[T]) PeekRight() (T, bool) {
	return z.right.Peek()
}

func (z *Zipper[T]) PeekLeftMut() (*T, bool) {
	return z.left.PeekMut()
}

func (z *Zipper[T]) PeekRightMut() (*T, bool) {
	return z.right.PeekMut()
}

// GoLeft moves the cursor one step left: the top node of the left stack is
// detached and pushed, as the same node, onto the right stack. It returns
// false when there is nothing on the left.
func (z *Zipper[T]) GoLeft() bool {
	return shift(&z.left, &z.right)
}

// GoRight moves the cursor one step right. It returns false when there is
// nothing on the right.
func (z *Zipper[T]) GoRight() bool {
	return shift(&z.right, &z.left)
}

// Left returns an iter.Seq over the left side, nearest to the cursor first.
func (z *Zipper[T]) Left() iter.Seq[T] {
	return z.left.All()
}

// Right returns an iter.Seq over the right side, nearest to the cursor first.
func (z *Zipper[T]) Right() iter.Seq[T] {
	return z.right.All()
}

func (z *Zipper[T]) Len() int {
	return z.left.Len() + z.right.Len()
}

func (z *Zipper[T]) Clear() {
	z.left.Clear()
	z.right.Clear()
}

func shift[T any](from, to *Stack[T]) bool {
	n := from.popNode()
	if n == nil {
		return false
	}
	to.pushNode(n)
	return true
}
