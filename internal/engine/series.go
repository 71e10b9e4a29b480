package engine

// Series is the consumer-owned record of samples since the last reset. It is
// unbounded when created with maxLen <= 0, otherwise the oldest samples are
// evicted once maxLen is reached. Series is not safe for concurrent use; it
// belongs to the consumer goroutine.
type Series struct {
	ring *RingBuffer[Sample]
	all  []Sample
	next uint64
	loss LossCounters

	// acc mirrors the buffer contents while nothing has been evicted.
	acc     Accumulator
	evicted bool
	cached  Stats
	cacheOK bool
	dirty   bool
}

// NewSeries creates an empty Series.
func NewSeries(maxLen int) *Series {
	s := &Series{}
	if maxLen > 0 {
		s.ring = NewRingBuffer[Sample](maxLen)
	}
	return s
}

// Append turns an outcome into the next Sample and stores it.
func (s *Series) Append(o Outcome) Sample {
	sample := Sample{Index: s.next, Lost: !o.OK()}
	if o.OK() {
		sample.Latency = o.Millis()
	}
	s.next++

	s.loss.Total++
	if sample.Lost {
		s.loss.Lost++
	}

	if s.ring != nil {
		if s.ring.Full() {
			s.evicted = true
		}
		s.ring.Add(sample)
	} else {
		s.all = append(s.all, sample)
	}
	s.acc.Add(sample)
	s.dirty = true
	return sample
}

// Samples returns the stored samples, oldest first.
func (s *Series) Samples() []Sample {
	if s.ring != nil {
		return s.ring.All()
	}
	out := make([]Sample, len(s.all))
	copy(out, s.all)
	return out
}

// Values returns the stored latencies with NaN for lost samples.
func (s *Series) Values() []float64 {
	samples := s.Samples()
	values := make([]float64, len(samples))
	for i, sm := range samples {
		values[i] = sm.Value()
	}
	return values
}

// Len returns the number of stored samples.
func (s *Series) Len() int {
	if s.ring != nil {
		return s.ring.Len()
	}
	return len(s.all)
}

// Last returns the most recent sample.
func (s *Series) Last() (Sample, bool) {
	if s.ring != nil {
		return s.ring.Last()
	}
	if len(s.all) == 0 {
		return Sample{}, false
	}
	return s.all[len(s.all)-1], true
}

// Bound returns the maximum number of stored samples, or 0 if unbounded.
func (s *Series) Bound() int {
	if s.ring == nil {
		return 0
	}
	return s.ring.Cap()
}

// Loss returns the attempt and loss counters since the last reset.
func (s *Series) Loss() LossCounters {
	return s.loss
}

// Stats returns the stats over the stored samples. Results are cached until
// the next Append.
func (s *Series) Stats() (Stats, bool) {
	if !s.dirty {
		return s.cached, s.cacheOK
	}
	if s.evicted {
		s.cached, s.cacheOK = Compute(s.Samples())
	} else {
		s.cached, s.cacheOK = s.acc.Stats()
	}
	s.dirty = false
	return s.cached, s.cacheOK
}

// Reset clears all samples and counters; the next sample gets index 0.
func (s *Series) Reset() {
	if s.ring != nil {
		s.ring.Reset()
	}
	s.all = nil
	s.next = 0
	s.loss = LossCounters{}
	s.acc.Reset()
	s.evicted = false
	s.cached, s.cacheOK = Stats{}, false
	s.dirty = false
}
