// Package carousel cycles through a fixed list, one item at a time.
package carousel

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = errors.New("carousel: no items")
	ErrOutOfRange = errors.New("carousel: index out of range")
)

// Carousel holds a current index into an immutable, non-empty list.
// It is not safe for concurrent use.
type Carousel[T any] struct {
	items []T
	index int
}

// New copies items so later changes to the caller's slice are not seen.
func New[T any](items []T) (*Carousel[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &Carousel[T]{items: cp}, nil
}

func (c *Carousel[T]) Len() int   { return len(c.items) }
func (c *Carousel[T]) Index() int { return c.index }
func (c *Carousel[T]) Current() T { return c.items[c.index] }

// Next advances with wraparound.
func (c *Carousel[T]) Next() {
	c.index = c.PeekNext()
}

// Previous steps back with wraparound.
func (c *Carousel[T]) Previous() {
	c.index = c.PeekPrevious()
}

// PeekNext returns the index Next would move to.
func (c *Carousel[T]) PeekNext() int {
	return (c.index + 1) % len(c.items)
}

// PeekPrevious returns the index Previous would move to.
func (c *Carousel[T]) PeekPrevious() int {
	n := len(c.items)
	return (c.index - 1 + n) % n
}

// JumpTo selects index k.
func (c *Carousel[T]) JumpTo(k int) error {
	if k < 0 || k >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, k, len(c.items))
	}
	c.index = k
	return nil
}

// Items returns a copy of the list, in order.
func (c *Carousel[T]) Items() []T {
	cp := make([]T, len(c.items))
	copy(cp, c.items)
	return cp
}
