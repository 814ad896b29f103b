// Package queue provides an unbounded FIFO with separate producing and
// consuming ends. Receiving never blocks.
package queue

import (
	"errors"
	"sync"

	"github.com/gammazero/deque"
)

// ErrClosed is returned by Send once either end has been closed.
var ErrClosed = errors.New("queue closed")

type state[T any] struct {
	mu     sync.Mutex
	items  deque.Deque[T]
	closed bool
}

// Sender is the producing end. It is safe for use by multiple goroutines.
type Sender[T any] struct {
	s *state[T]
}

// Receiver is the consuming end. Several values may share one Receiver; each
// queued item is delivered to exactly one TryRecv call.
type Receiver[T any] struct {
	s *state[T]
}

// New returns the two ends of an empty queue.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &state[T]{}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

// Send appends v. It fails with ErrClosed after Close on either end.
func (tx *Sender[T]) Send(v T) error {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	if tx.s.closed {
		return ErrClosed
	}
	tx.s.items.PushBack(v)
	return nil
}

// Close closes the queue and discards anything not yet received. It returns
// the number of discarded items.
func (tx *Sender[T]) Close() int {
	return tx.s.close()
}

// TryRecv removes and returns the oldest item. It returns false immediately
// when the queue is empty or closed.
func (rx *Receiver[T]) TryRecv() (T, bool) {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()

	var zero T
	if rx.s.closed || rx.s.items.Len() == 0 {
		return zero, false
	}
	return rx.s.items.PopFront(), true
}

// Len returns the number of queued items.
func (rx *Receiver[T]) Len() int {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	return rx.s.items.Len()
}

// Closed reports whether the queue has been closed.
func (rx *Receiver[T]) Closed() bool {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	return rx.s.closed
}

// Close disconnects the consumer. Later sends fail with ErrClosed.
func (rx *Receiver[T]) Close() int {
	return rx.s.close()
}

func (s *state[T]) close() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.closed = true
	n := s.items.Len()
	s.items.Clear()
	return n
}
