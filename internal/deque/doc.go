// Package deque implements a double-ended queue whose nodes are shared by
// their neighbours and guarded by runtime-checked borrows.
//
// Every node lives in a cell.RefCell. Links are rewritten only under a
// mutable borrow, and the element of a removed node is taken out with
// RefCell.Unwrap. Peek guards therefore make conflicting operations fail
// loudly instead of corrupting the list.
package deque
