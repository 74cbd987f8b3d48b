package core

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadyBorrowed reports a borrow conflict on a shared Cell. It is
// a recoverable per-frame condition: the caller logs it and skips the
// conflicting operation.
var ErrAlreadyBorrowed = errors.New("cell already borrowed")

// Cell holds a value shared between the frame bridge and scenes with
// runtime borrow arbitration: any number of concurrent readers, or one
// writer, never both. A conflict returns ErrAlreadyBorrowed instead of
// blocking or panicking.
type Cell[T any] struct {
	// state < 0 means one writer holds the cell, state > 0 counts readers
	state atomic.Int32
	value T
}

// NewCell wraps v in a shareable cell.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Borrow runs fn with read access to the value.
func (c *Cell[T]) Borrow(fn func(T)) error {
	for {
		s := c.state.Load()
		if s < 0 {
			return ErrAlreadyBorrowed
		}
		if c.state.CompareAndSwap(s, s+1) {
			break
		}
	}
	defer c.state.Add(-1)
	fn(c.value)
	return nil
}

// BorrowMut runs fn with exclusive write access to the value.
func (c *Cell[T]) BorrowMut(fn func(*T)) error {
	if !c.state.CompareAndSwap(0, -1) {
		return ErrAlreadyBorrowed
	}
	defer c.state.Store(0)
	fn(&c.value)
	return nil
}
