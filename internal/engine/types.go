package engine

import (
	"math"
	"net"
	"time"
)

// DefaultAddress is the target every process starts with.
const DefaultAddress = "8.8.8.8"

// Outcome is the result of one sampling cycle as it travels through the Feed.
type Outcome struct {
	Cycle   uint64
	Address string
	IP      net.IP
	Latency time.Duration
	Err     *ProbeError
	At      time.Time
}

// OK reports whether the cycle produced a latency measurement.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Millis returns the measured latency in milliseconds.
func (o Outcome) Millis() float64 {
	return float64(o.Latency) / float64(time.Millisecond)
}

// Reason returns the failure classification, or ReasonNone on success.
func (o Outcome) Reason() FailureReason {
	if o.Err == nil {
		return ReasonNone
	}
	return o.Err.Reason
}

// Sample is one entry of the series as seen by the consumer.
type Sample struct {
	Index   uint64
	Latency float64 // milliseconds, meaningless when Lost
	Lost    bool
}

// Value returns the latency in milliseconds, or NaN for a lost sample so
// that charts render a gap rather than a zero.
func (s Sample) Value() float64 {
	if s.Lost {
		return math.NaN()
	}
	return s.Latency
}

// SamplerInfo provides summary information about a running sampler.
type SamplerInfo struct {
	Cycles       uint64
	Failures     int // consecutive failed cycles
	LastCycle    time.Time
	Pacing       Pacing
	ProbeTimeout time.Duration
}
