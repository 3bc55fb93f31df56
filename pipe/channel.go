package pipe

import (
	"context"
	"sync"
)

// sendWaiter is a sender suspended on a full channel. The value travels
// with the waiter so that a receiver (or close) can resolve it without
// re-entering the sender's goroutine.
type sendWaiter[T any] struct {
	val   T
	err   error         // set before ready is closed; nil means delivered
	ready chan struct{} // closed exactly once, by whoever resolves the waiter
}

// recvWaiter is a receiver suspended on an empty channel.
type recvWaiter[T any] struct {
	val   T
	ok    bool // false means the channel closed while waiting
	ready chan struct{}
}

// channel is the shared state behind every Sender/Receiver/Chan handle.
// All mutation happens under mu; waiters park outside the lock on their
// ready channel. Invariants:
//
//   - buf is FIFO; len(buf) <= capacity when bounded.
//   - sendq is non-empty only when the channel is full (or capacity is 0),
//     recvq only when buf is empty; the two queues are never both
//     non-empty outside the lock.
//   - a waiter is resolved (err/val/ok set, ready closed) strictly before
//     it is removed from its queue, always under mu.
type channel[T any] struct {
	mu        sync.Mutex
	buf       []T
	capacity  int
	unbounded bool
	closed    bool

	sendq []*sendWaiter[T]
	recvq []*recvWaiter[T]

	sent     int64 // values accepted by a send
	received int64 // values handed to a receive
}

// send enqueues v, blocking while the channel is full. A nil done never
// aborts; otherwise done aborts the wait and the context error is
// returned via ctxErr.
func (c *channel[T]) send(v T, done <-chan struct{}, ctxErr func() error) error {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}

	// A waiting receiver implies an empty buffer: hand off directly so
	// the value never sits in a slot the receiver would immediately take.
	if len(c.recvq) > 0 {
		rw := c.recvq[0]
		c.recvq = c.recvq[1:]
		rw.val, rw.ok = v, true
		c.sent++
		c.received++
		close(rw.ready)
		c.mu.Unlock()
		return nil
	}

	if c.unbounded || len(c.buf) < c.capacity {
		c.buf = append(c.buf, v)
		c.sent++
		c.mu.Unlock()
		return nil
	}

	// Full (or rendezvous with nobody waiting): park.
	w := &sendWaiter[T]{val: v, ready: make(chan struct{})}
	c.sendq = append(c.sendq, w)
	c.mu.Unlock()

	if done == nil {
		<-w.ready
		return w.err
	}

	select {
	case <-w.ready:
		return w.err
	case <-done:
		c.mu.Lock()
		for i, q := range c.sendq {
			if q == w {
				// Still parked: nothing was enqueued, abort cleanly.
				c.sendq = append(c.sendq[:i], c.sendq[i+1:]...)
				c.mu.Unlock()
				return ctxErr()
			}
		}
		c.mu.Unlock()
		// Resolved concurrently with cancellation; honor the resolution.
		<-w.ready
		return w.err
	}
}

// trySend is the non-blocking form of send.
func (c *channel[T]) trySend(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if len(c.recvq) > 0 {
		rw := c.recvq[0]
		c.recvq = c.recvq[1:]
		rw.val, rw.ok = v, true
		c.sent++
		c.received++
		close(rw.ready)
		return nil
	}
	if c.unbounded || len(c.buf) < c.capacity {
		c.buf = append(c.buf, v)
		c.sent++
		return nil
	}
	return ErrFull
}

// recv dequeues the oldest value, blocking while the channel is open and
// empty. ok is false only at end-of-stream (closed and drained).
func (c *channel[T]) recv(done <-chan struct{}, ctxErr func() error) (T, bool, error) {
	var zero T
	c.mu.Lock()

	if len(c.buf) > 0 {
		v := c.buf[0]
		c.buf = c.buf[1:]
		c.received++
		// A slot freed: admit the oldest parked sender, keeping arrival order.
		if len(c.sendq) > 0 {
			w := c.sendq[0]
			c.sendq = c.sendq[1:]
			c.buf = append(c.buf, w.val)
			c.sent++
			close(w.ready)
		}
		c.mu.Unlock()
		return v, true, nil
	}

	// Empty buffer with parked senders is the rendezvous case.
	if len(c.sendq) > 0 {
		w := c.sendq[0]
		c.sendq = c.sendq[1:]
		c.sent++
		c.received++
		close(w.ready)
		c.mu.Unlock()
		return w.val, true, nil
	}

	if c.closed {
		c.mu.Unlock()
		return zero, false, nil
	}

	rw := &recvWaiter[T]{ready: make(chan struct{})}
	c.recvq = append(c.recvq, rw)
	c.mu.Unlock()

	if done == nil {
		<-rw.ready
		return rw.val, rw.ok, nil
	}

	select {
	case <-rw.ready:
		return rw.val, rw.ok, nil
	case <-done:
		c.mu.Lock()
		for i, q := range c.recvq {
			if q == rw {
				c.recvq = append(c.recvq[:i], c.recvq[i+1:]...)
				c.mu.Unlock()
				return zero, false, ctxErr()
			}
		}
		c.mu.Unlock()
		// A value was delivered while cancellation raced; it must not be lost.
		<-rw.ready
		return rw.val, rw.ok, nil
	}
}

// tryRecv is the non-blocking form of recv. ok is false when nothing is
// available right now, whether the channel is open or closed.
func (c *channel[T]) tryRecv() (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.buf) > 0 {
		v := c.buf[0]
		c.buf = c.buf[1:]
		c.received++
		if len(c.sendq) > 0 {
			w := c.sendq[0]
			c.sendq = c.sendq[1:]
			c.buf = append(c.buf, w.val)
			c.sent++
			close(w.ready)
		}
		return v, true
	}
	if len(c.sendq) > 0 {
		w := c.sendq[0]
		c.sendq = c.sendq[1:]
		c.sent++
		c.received++
		close(w.ready)
		return w.val, true
	}
	return zero, false
}

// close transitions the channel to Closed. Safe to call multiple times;
// only the first call has any effect. Parked senders fail with ErrClosed,
// parked receivers observe end-of-stream. Buffered values stay receivable.
func (c *channel[T]) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for _, w := range c.sendq {
		w.err = ErrClosed
		close(w.ready)
	}
	c.sendq = nil

	// Receivers park only on an empty buffer, so end-of-stream is correct
	// here without waiting for a drain.
	for _, rw := range c.recvq {
		rw.ok = false
		close(rw.ready)
	}
	c.recvq = nil
}

func (c *channel[T]) sendContext(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.send(v, ctx.Done(), func() error { return ctx.Err() })
}

func (c *channel[T]) recvContext(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return c.recv(ctx.Done(), func() error { return ctx.Err() })
}
