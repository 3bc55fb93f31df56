package pipe

import "context"

// Chan is a single-handle binding over the same channel semantics as a
// [Sender]/[Receiver] pair, for callers that keep both ends in one
// place, typically a handle captured by a spawned producer while the
// spawning side receives.
type Chan[T any] struct {
	c *channel[T]
}

// NewChan creates a bounded single-handle channel. A capacity of zero
// makes a rendezvous channel. Returns [ErrInvalidCapacity] if capacity
// is negative.
func NewChan[T any](capacity int) (*Chan[T], error) {
	s, _, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Chan[T]{c: s.c}, nil
}

// NewUnboundedChan creates a single-handle channel whose sends never block.
func NewUnboundedChan[T any]() *Chan[T] {
	s, _ := NewUnbounded[T]()
	return &Chan[T]{c: s.c}
}

// Send behaves like [Sender.Send].
func (c *Chan[T]) Send(v T) error {
	return c.c.send(v, nil, nil)
}

// SendContext behaves like [Sender.SendContext].
func (c *Chan[T]) SendContext(ctx context.Context, v T) error {
	return c.c.sendContext(ctx, v)
}

// TrySend behaves like [Sender.TrySend].
func (c *Chan[T]) TrySend(v T) error {
	return c.c.trySend(v)
}

// Recv behaves like [Receiver.Recv].
func (c *Chan[T]) Recv() (v T, ok bool) {
	v, ok, _ = c.c.recv(nil, nil)
	return v, ok
}

// RecvContext behaves like [Receiver.RecvContext].
func (c *Chan[T]) RecvContext(ctx context.Context) (T, bool, error) {
	return c.c.recvContext(ctx)
}

// TryRecv behaves like [Receiver.TryRecv].
func (c *Chan[T]) TryRecv() (T, bool) {
	return c.c.tryRecv()
}

// Close behaves like [Sender.Close].
func (c *Chan[T]) Close() {
	c.c.close()
}

// Len reports the number of buffered, undelivered values.
func (c *Chan[T]) Len() int {
	return c.c.len()
}

// Split returns a Sender/Receiver pair over the same underlying channel,
// bridging the two bindings.
func (c *Chan[T]) Split() (*Sender[T], *Receiver[T]) {
	return &Sender[T]{c: c.c}, &Receiver[T]{c: c.c}
}
