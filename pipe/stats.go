package pipe

// Stats is a point-in-time snapshot of channel activity, taken under the
// channel's lock so the conservation invariant holds exactly:
// Sent == Received + Len.
type Stats struct {
	Sent             int64 // values accepted by a send
	Received         int64 // values handed to a receive
	Len              int   // buffered, undelivered values
	BlockedSenders   int   // sends parked waiting for a slot
	BlockedReceivers int   // receives parked waiting for data
	Closed           bool
}

func (c *channel[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.buf)
}

func (c *channel[T]) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Sent:             c.sent,
		Received:         c.received,
		Len:              len(c.buf),
		BlockedSenders:   len(c.sendq),
		BlockedReceivers: len(c.recvq),
		Closed:           c.closed,
	}
}

// Stats returns a consistent snapshot of the channel's counters.
func (s *Sender[T]) Stats() Stats { return s.c.stats() }

// Stats returns a consistent snapshot of the channel's counters.
func (r *Receiver[T]) Stats() Stats { return r.c.stats() }

// Stats returns a consistent snapshot of the channel's counters.
func (c *Chan[T]) Stats() Stats { return c.c.stats() }

// capacity and unbounded are immutable after construction, no lock needed.
func (c *channel[T]) capInfo() (n int, bounded bool) {
	return c.capacity, !c.unbounded
}

// Cap reports the channel's capacity; bounded is false for unbounded channels.
func (s *Sender[T]) Cap() (int, bool) { return s.c.capInfo() }

// Cap reports the channel's capacity; bounded is false for unbounded channels.
func (r *Receiver[T]) Cap() (int, bool) { return r.c.capInfo() }

// Cap reports the channel's capacity; bounded is false for unbounded channels.
func (c *Chan[T]) Cap() (int, bool) { return c.c.capInfo() }
