package pipe

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by send operations on a closed channel, including
// sends that were blocked when the channel closed.
var ErrClosed = errors.New("pipe: send on closed channel")

// ErrFull is returned by [Sender.TrySend] when a bounded channel has no
// free slot and no waiting receiver.
var ErrFull = errors.New("pipe: channel is full")

// ErrInvalidCapacity is returned by [New] for a negative capacity.
var ErrInvalidCapacity = errors.New("pipe: capacity must be non-negative")

// New creates a bounded channel holding at most capacity undelivered
// values and returns its two handles. A capacity of zero makes a
// rendezvous channel: every send waits for a receiver.
//
// New returns [ErrInvalidCapacity] if capacity is negative.
func New[T any](capacity int) (*Sender[T], *Receiver[T], error) {
	if capacity < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	c := &channel[T]{capacity: capacity}
	if capacity > 0 {
		c.buf = make([]T, 0, capacity)
	}
	return &Sender[T]{c: c}, &Receiver[T]{c: c}, nil
}

// NewUnbounded creates a channel whose sends never block. Values queue in
// memory until received, so producers are never subject to backpressure.
func NewUnbounded[T any]() (*Sender[T], *Receiver[T]) {
	c := &channel[T]{unbounded: true}
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}
