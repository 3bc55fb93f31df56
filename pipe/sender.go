package pipe

import "context"

// Sender is the producing end of a channel. It may be shared by any
// number of goroutines; the channel serializes concurrent sends and
// preserves each producer's own order.
type Sender[T any] struct {
	c *channel[T]
}

// Send enqueues v. On an unbounded channel Send always returns
// immediately. On a bounded channel Send blocks while the channel is
// full, until a receive frees a slot or the channel closes. Blocked
// senders are admitted in the order they blocked.
//
// Send returns [ErrClosed] if the channel is closed, including when the
// close happens while Send is blocked; in that case v was not enqueued.
func (s *Sender[T]) Send(v T) error {
	return s.c.send(v, nil, nil)
}

// SendContext is [Sender.Send] with cancellation. If ctx is done before
// a slot frees, SendContext returns the context error and v is not
// enqueued. A send that completed before the cancellation was observed
// returns nil; the value is delivered.
func (s *Sender[T]) SendContext(ctx context.Context, v T) error {
	return s.c.sendContext(ctx, v)
}

// TrySend enqueues v without blocking. It returns [ErrFull] when a
// bounded channel cannot accept the value right now, and [ErrClosed] on
// a closed channel.
func (s *Sender[T]) TrySend(v T) error {
	return s.c.trySend(v)
}

// Close transitions the channel to closed. It is idempotent. Pending and
// future sends fail with [ErrClosed]; values already buffered remain
// receivable until drained, after which receivers observe end-of-stream.
func (s *Sender[T]) Close() {
	s.c.close()
}

// Len reports the number of buffered, undelivered values.
func (s *Sender[T]) Len() int {
	return s.c.len()
}
