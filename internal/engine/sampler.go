package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sampler runs the sampling loop for a single target: read the address,
// resolve it, probe it, publish one Outcome, then wait according to Pacing.
type Sampler struct {
	target   *Target
	resolver Resolver
	prober   Prober
	feed     *Feed
	log      *zap.Logger

	// wait sleeps for d and reports false if ctx ended first.
	wait func(ctx context.Context, d time.Duration) bool

	mu           sync.RWMutex
	pacing       Pacing
	probeTimeout time.Duration
	cycles       uint64
	failures     int
	lastCycle    time.Time
}

// NewSampler creates a Sampler with default pacing and probe timeout.
func NewSampler(target *Target, resolver Resolver, prober Prober, feed *Feed, log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{
		target:       target,
		resolver:     resolver,
		prober:       prober,
		feed:         feed,
		log:          log,
		wait:         sleepContext,
		pacing:       DefaultPacing(),
		probeTimeout: DefaultProbeTimeout,
	}
}

// Apply replaces the pacing policy and probe timeout. It takes effect from
// the next cycle.
func (s *Sampler) Apply(p Pacing, probeTimeout time.Duration) {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pacing = p.Normalize()
	s.probeTimeout = probeTimeout
}

// Run executes sampling cycles until ctx is cancelled. Cancellation is
// observed between cycles and during the pacing wait.
func (s *Sampler) Run(ctx context.Context) error {
	s.log.Info("sampler started", zap.String("address", s.target.Address()))
	defer s.log.Info("sampler stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		out := s.cycle(ctx)
		if !s.feed.Publish(ctx, out) {
			return nil
		}

		if !s.wait(ctx, s.delay()) {
			return nil
		}
	}
}

// Info returns summary information about this sampler.
func (s *Sampler) Info() SamplerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SamplerInfo{
		Cycles:       s.cycles,
		Failures:     s.failures,
		LastCycle:    s.lastCycle,
		Pacing:       s.pacing,
		ProbeTimeout: s.probeTimeout,
	}
}

// cycle performs one resolve/probe/classify step and records the result in
// the Target. The address is snapshotted up front; no lock is held while
// resolving or probing.
func (s *Sampler) cycle(ctx context.Context) Outcome {
	address := s.target.Address()

	s.mu.Lock()
	s.cycles++
	cycleNum := s.cycles
	timeout := s.probeTimeout
	s.mu.Unlock()

	out := Outcome{Cycle: cycleNum, Address: address}

	ip, err := s.resolver.Resolve(ctx, address)
	if err != nil {
		out.Err = classify(address, err, ResolutionFailed)
	} else {
		out.IP = ip
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		latency, err := s.prober.Probe(probeCtx, ip)
		cancel()
		if err != nil {
			out.Err = classify(address, err, ProbeFailed)
		} else {
			out.Latency = latency
		}
	}
	out.At = time.Now()

	s.record(out)
	return out
}

// record updates the Target's error field and the failure streak.
func (s *Sampler) record(out Outcome) {
	if out.OK() {
		s.target.SetLastError("")
	} else {
		s.target.SetLastError(out.Err.Error())
	}

	s.mu.Lock()
	prevFailures := s.failures
	if out.OK() {
		s.failures = 0
	} else {
		s.failures++
	}
	s.lastCycle = out.At
	s.mu.Unlock()

	if out.OK() {
		s.log.Debug("cycle",
			zap.Uint64("cycle", out.Cycle),
			zap.String("address", out.Address),
			zap.Stringer("ip", out.IP),
			zap.Float64("latency_ms", out.Millis()))
		if prevFailures > 0 {
			s.log.Info("target recovered",
				zap.String("address", out.Address),
				zap.Int("failed_cycles", prevFailures))
		}
		return
	}

	s.log.Debug("cycle",
		zap.Uint64("cycle", out.Cycle),
		zap.String("address", out.Address),
		zap.Stringer("reason", out.Err.Reason),
		zap.Error(out.Err.Err))
	if prevFailures == 0 {
		s.log.Warn("target failing",
			zap.String("address", out.Address),
			zap.Stringer("reason", out.Err.Reason),
			zap.Error(out.Err.Err))
	}
}

// delay returns the pacing wait for the current failure streak.
func (s *Sampler) delay() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pacing.Delay(s.failures)
}

// classify wraps err as a *ProbeError, keeping an existing classification.
func classify(address string, err error, fallback FailureReason) *ProbeError {
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProbeError{Reason: fallback, Address: address, Err: err}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
