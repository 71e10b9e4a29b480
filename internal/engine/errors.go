package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAddress    = errors.New("address is empty")
	ErrInvalidHostname = errors.New("not a valid IP address or hostname")
	ErrNoAddresses     = errors.New("no addresses returned")
	ErrProbeTimeout    = errors.New("timed out waiting for echo reply")
	ErrUnreachable     = errors.New("destination unreachable")
)

// FailureReason classifies why a sampling cycle produced no measurement.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	InvalidAddress
	ResolutionFailed
	ProbeFailed
)

func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case InvalidAddress:
		return "invalid address"
	case ResolutionFailed:
		return "resolution failed"
	case ProbeFailed:
		return "probe failed"
	default:
		return fmt.Sprintf("FailureReason(%d)", int(r))
	}
}

// ProbeError is a classified sampling failure.
type ProbeError struct {
	Reason  FailureReason
	Address string
	Err     error
}

func (e *ProbeError) Error() string {
	switch e.Reason {
	case InvalidAddress:
		return fmt.Sprintf("invalid address %q: %v", e.Address, e.Err)
	case ResolutionFailed:
		return fmt.Sprintf("could not resolve address %q: %v", e.Address, e.Err)
	default:
		return fmt.Sprintf("ping failed: %v", e.Err)
	}
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// ReasonOf returns the classification carried by err, ProbeFailed for
// unclassified errors and ReasonNone for nil.
func ReasonOf(err error) FailureReason {
	if err == nil {
		return ReasonNone
	}
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ProbeFailed
}
