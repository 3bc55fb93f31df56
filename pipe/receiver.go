package pipe

import "context"

// Receiver is the consuming end of a channel. Concurrent receives are
// safe, but the package is designed around a single consumer.
type Receiver[T any] struct {
	c *channel[T]
}

// Recv dequeues the oldest value. It blocks while the channel is open
// and empty. ok is false only at end-of-stream: the channel is closed
// and every buffered value has been delivered. End-of-stream is not an
// error and repeats on every subsequent call.
func (r *Receiver[T]) Recv() (v T, ok bool) {
	v, ok, _ = r.c.recv(nil, nil)
	return v, ok
}

// RecvContext is [Recv] with cancellation. If ctx is done before a value
// arrives, RecvContext returns the context error and nothing was
// dequeued. A value delivered while the cancellation raced is still
// returned rather than lost.
func (r *Receiver[T]) RecvContext(ctx context.Context) (T, bool, error) {
	return r.c.recvContext(ctx)
}

// TryRecv dequeues the oldest value without blocking. ok is false when
// nothing is available right now, whether the channel is open or closed.
func (r *Receiver[T]) TryRecv() (T, bool) {
	return r.c.tryRecv()
}

// Len reports the number of buffered, undelivered values.
func (r *Receiver[T]) Len() int {
	return r.c.len()
}

// Drain receives and discards values until end-of-stream or ctx is done,
// and reports how many values were discarded. Use it to unblock
// producers of a channel being torn down.
func Drain[T any](ctx context.Context, r *Receiver[T]) (int, error) {
	n := 0
	for {
		_, ok, err := r.RecvContext(ctx)
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}
