// Package nonempty provides an ordered collection that always holds at
// least one element.
package nonempty

import (
	"errors"
	"iter"
)

var ErrEmpty = errors.New("nonempty: empty collection")

// Slice is an immutable ordered sequence of one or more items.
type Slice[T any] struct {
	items []T
}

// New copies items into a Slice. It fails with ErrEmpty when items is empty.
func New[T any](items []T) (Slice[T], error) {
	if len(items) == 0 {
		return Slice[T]{}, ErrEmpty
	}
	out := make([]T, len(items))
	copy(out, items)
	return Slice[T]{items: out}, nil
}

// Of builds a Slice from at least one item.
func Of[T any](first T, rest ...T) Slice[T] {
	out := make([]T, 0, 1+len(rest))
	out = append(out, first)
	out = append(out, rest...)
	return Slice[T]{items: out}
}

func (s Slice[T]) Len() int { return len(s.items) }

// IsZero reports whether s was declared without a constructor.
func (s Slice[T]) IsZero() bool { return len(s.items) == 0 }

func (s Slice[T]) First() T { return s.items[0] }

func (s Slice[T]) At(i int) T { return s.items[i] }

// Items returns a copy of the elements in order.
func (s Slice[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All yields index/element pairs in insertion order.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
