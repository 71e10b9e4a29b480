package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestProbeErrorMessages(t *testing.T) {
	tests := []struct {
		err  *ProbeError
		want string
	}{
		{&ProbeError{Reason: InvalidAddress, Address: "!!!", Err: ErrInvalidHostname},
			`invalid address "!!!": not a valid IP address or hostname`},
		{&ProbeError{Reason: ResolutionFailed, Address: "nope.invalid", Err: ErrNoAddresses},
			`could not resolve address "nope.invalid": no addresses returned`},
		{&ProbeError{Reason: ProbeFailed, Address: "8.8.8.8", Err: ErrProbeTimeout},
			"ping failed: timed out waiting for echo reply"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestReasonOf(t *testing.T) {
	if ReasonOf(nil) != ReasonNone {
		t.Error("nil error should have no reason")
	}
	wrapped := fmt.Errorf("cycle: %w", &ProbeError{Reason: ResolutionFailed, Err: ErrNoAddresses})
	if ReasonOf(wrapped) != ResolutionFailed {
		t.Errorf("expected ResolutionFailed through wrapping, got %v", ReasonOf(wrapped))
	}
	if ReasonOf(errors.New("boom")) != ProbeFailed {
		t.Error("unclassified error should count as ProbeFailed")
	}
	if !errors.Is(wrapped, ErrNoAddresses) {
		t.Error("ProbeError should unwrap to its cause")
	}
}

func TestFailureReasonString(t *testing.T) {
	if InvalidAddress.String() != "invalid address" {
		t.Errorf("unexpected %q", InvalidAddress.String())
	}
	if FailureReason(9).String() != "FailureReason(9)" {
		t.Errorf("unexpected %q", FailureReason(9).String())
	}
}
