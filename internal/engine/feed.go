package engine

import "context"

// DefaultFeedBuffer is the number of outcomes the Feed holds before Publish
// blocks. At one cycle per second that is over an hour of stalled consumer.
const DefaultFeedBuffer = 4096

// Feed carries outcomes from the Sampler to the consumer in the order they
// were produced.
type Feed struct {
	ch chan Outcome
}

// NewFeed creates a Feed with the given buffer size.
func NewFeed(buffer int) *Feed {
	if buffer < 1 {
		buffer = 1
	}
	return &Feed{ch: make(chan Outcome, buffer)}
}

// Publish enqueues an outcome. It blocks only while the buffer is full and
// returns false if ctx is cancelled first.
func (f *Feed) Publish(ctx context.Context, o Outcome) bool {
	select {
	case f.ch <- o:
		return true
	case <-ctx.Done():
		return false
	}
}

// Drain returns every outcome currently queued, oldest first, without
// blocking. It returns nil when nothing is pending.
func (f *Feed) Drain() []Outcome {
	var out []Outcome
	for {
		select {
		case o := <-f.ch:
			out = append(out, o)
		default:
			return out
		}
	}
}

// Pending returns the number of queued outcomes.
func (f *Feed) Pending() int {
	return len(f.ch)
}
