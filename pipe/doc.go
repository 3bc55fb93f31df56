// Package pipe provides typed, FIFO, optionally capacity-bounded channels
// with an explicit open/closed lifecycle.
//
// Go channels are powerful but have sharp edges: sends to closed channels
// panic, close is not idempotent, and there is no unbounded variant. pipe
// channels convert these panics into errors and add the missing shapes:
//
//   - [New]: a bounded channel. Capacity zero is a rendezvous channel
//     where a send completes only once a receiver is waiting. A send into
//     a full channel blocks until a receive frees a slot (backpressure).
//   - [NewUnbounded]: a channel whose sends never block; values queue in
//     memory until received.
//   - [NewChan] and [NewUnboundedChan]: the same channels behind a single
//     [Chan] handle instead of a split [Sender]/[Receiver] pair, for code
//     that keeps both ends in one place.
//
// # Delivery contract
//
// Receive order always equals send order, including while senders are
// blocked: blocked senders are admitted in the order they blocked. Every
// value accepted by a send is delivered to exactly one receive. Closing a
// channel fails pending and future sends with [ErrClosed] but leaves
// already-buffered values receivable; once the buffer drains, every
// receive reports end-of-stream as a plain "not ok" result, never an
// error.
//
// # Handles
//
// A [Sender] may be shared by any number of producer goroutines; the
// channel serializes them and preserves each producer's own order. A
// [Receiver] is intended for a single consumer, though concurrent
// receives are safe.
//
// Blocking calls have context-aware variants ([Sender.SendContext],
// [Receiver.RecvContext]) that abort cleanly on cancellation: an aborted
// send has enqueued nothing, an aborted receive has dequeued nothing.
package pipe
