package engine

import (
	"fmt"
	"math"
)

// NoStatsText is shown in place of the stats line before any success.
const NoStatsText = "No ping times available."

// Stats summarizes the successful samples of a series, in milliseconds.
type Stats struct {
	Best    float64
	Worst   float64
	Average float64
	Count   int
}

func (s Stats) String() string {
	return fmt.Sprintf("%.2fms best, %.2fms worst, %.2fms average", s.Best, s.Worst, s.Average)
}

// Compute returns the stats over the non-lost samples, or false when there
// are none.
func Compute(samples []Sample) (Stats, bool) {
	var acc Accumulator
	for _, s := range samples {
		acc.Add(s)
	}
	return acc.Stats()
}

// Accumulator folds samples one at a time. Folding a sequence gives results
// bit-identical to Compute over the same sequence.
type Accumulator struct {
	min   float64
	max   float64
	sum   float64
	count int
}

// Add folds one sample. Lost samples are ignored.
func (a *Accumulator) Add(s Sample) {
	if s.Lost || math.IsNaN(s.Latency) {
		return
	}
	v := s.Latency
	if a.count == 0 {
		a.min, a.max = v, v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	a.sum += v
	a.count++
}

// Stats returns the folded stats, or false if nothing was folded.
func (a *Accumulator) Stats() (Stats, bool) {
	if a.count == 0 {
		return Stats{}, false
	}
	return Stats{
		Best:    a.min,
		Worst:   a.max,
		Average: a.sum / float64(a.count),
		Count:   a.count,
	}, true
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// LossCounters counts attempts and lost samples since the last reset.
type LossCounters struct {
	Total uint64
	Lost  uint64
}

// Percent returns 100 * Lost / Total, or 0 with no attempts.
func (l LossCounters) Percent() float64 {
	if l.Total == 0 {
		return 0
	}
	return 100 * float64(l.Lost) / float64(l.Total)
}

func (l LossCounters) String() string {
	return fmt.Sprintf("Loss: %.2f%% (%d/%d)", l.Percent(), l.Lost, l.Total)
}

// StatsLine formats the stats line shown under the chart.
func StatsLine(stats Stats, ok bool) string {
	if !ok {
		return NoStatsText
	}
	return stats.String()
}
