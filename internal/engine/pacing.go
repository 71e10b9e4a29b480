package engine

import (
	"time"

	"github.com/tonhe/pinggraph/internal/config"
)

// Pacing is the delay policy between sampling cycles: a fixed delay after a
// success, and a failure delay that doubles with each consecutive failure up
// to Cap. With Cap equal to Failure the policy is a plain two-state backoff.
type Pacing struct {
	Success time.Duration
	Failure time.Duration
	Cap     time.Duration
}

// DefaultPacing returns 1s after success and 2s after failure.
func DefaultPacing() Pacing {
	return Pacing{
		Success: time.Second,
		Failure: 2 * time.Second,
		Cap:     2 * time.Second,
	}
}

// PacingFromConfig builds a normalized Pacing from the config.
func PacingFromConfig(cfg *config.Config) Pacing {
	return Pacing{
		Success: cfg.SuccessInterval,
		Failure: cfg.FailureInterval,
		Cap:     cfg.BackoffCap,
	}.Normalize()
}

// Normalize fills zero fields from DefaultPacing and enforces
// Success <= Failure <= Cap.
func (p Pacing) Normalize() Pacing {
	def := DefaultPacing()
	if p.Success <= 0 {
		p.Success = def.Success
	}
	if p.Failure <= 0 {
		p.Failure = def.Failure
	}
	if p.Failure < p.Success {
		p.Failure = p.Success
	}
	if p.Cap < p.Failure {
		p.Cap = p.Failure
	}
	return p
}

// Delay returns the wait before the next cycle given the number of
// consecutive failed cycles so far (0 after a success).
func (p Pacing) Delay(failures int) time.Duration {
	p = p.Normalize()
	if failures <= 0 {
		return p.Success
	}
	d := p.Failure
	for i := 1; i < failures && d < p.Cap; i++ {
		if d > p.Cap/2 {
			d = p.Cap
			break
		}
		d *= 2
	}
	if d > p.Cap {
		d = p.Cap
	}
	return d
}
