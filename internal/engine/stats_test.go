package engine

import (
	"math"
	"math/rand"
	"testing"
)

func samplesOf(values ...float64) []Sample {
	out := make([]Sample, len(values))
	for i, v := range values {
		out[i] = Sample{Index: uint64(i), Latency: v}
	}
	return out
}

func TestComputeScenario(t *testing.T) {
	stats, ok := Compute(samplesOf(10, 30, 20))
	if !ok {
		t.Fatal("expected stats")
	}
	if stats.Best != 10 || stats.Worst != 30 || stats.Average != 20 || stats.Count != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if got := stats.String(); got != "10.00ms best, 30.00ms worst, 20.00ms average" {
		t.Errorf("unexpected String(): %q", got)
	}
}

func TestComputeSkipsLost(t *testing.T) {
	samples := samplesOf(5, 0, 7)
	samples[1].Lost = true
	stats, ok := Compute(samples)
	if !ok {
		t.Fatal("expected stats")
	}
	if stats.Best != 5 || stats.Count != 2 {
		t.Errorf("lost sample should be ignored, got %+v", stats)
	}

	if _, ok := Compute([]Sample{{Lost: true}, {Lost: true}}); ok {
		t.Error("all-lost input should produce no stats")
	}
	if _, ok := Compute(nil); ok {
		t.Error("empty input should produce no stats")
	}
}

func TestComputeIdempotent(t *testing.T) {
	samples := samplesOf(1.5, 2.25, 9.125, 0.001)
	a, _ := Compute(samples)
	b, _ := Compute(samples)
	if a != b {
		t.Errorf("Compute() should be idempotent: %+v vs %+v", a, b)
	}
}

func TestComputeOrderIndependentMinMax(t *testing.T) {
	values := []float64{3, 9, 1, 7, 5, 11, 2}
	base, _ := Compute(samplesOf(values...))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]float64(nil), values...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, _ := Compute(samplesOf(shuffled...))
		if got.Best != base.Best || got.Worst != base.Worst {
			t.Errorf("min/max changed with order: %+v vs %+v", got, base)
		}
		if math.Abs(got.Average-base.Average) > 1e-9 {
			t.Errorf("average drifted with order: %v vs %v", got.Average, base.Average)
		}
	}
}

func TestAccumulatorMatchesCompute(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var acc Accumulator
	var samples []Sample
	for i := 0; i < 500; i++ {
		sm := Sample{Index: uint64(i), Latency: r.Float64() * 250}
		if r.Intn(10) == 0 {
			sm.Lost = true
		}
		samples = append(samples, sm)
		acc.Add(sm)

		got, _ := acc.Stats()
		want, _ := Compute(samples)
		if got != want {
			t.Fatalf("after %d samples: accumulator %+v, compute %+v", i+1, got, want)
		}
	}

	acc.Reset()
	if _, ok := acc.Stats(); ok {
		t.Error("expected no stats after Reset()")
	}
}

func TestLossCounters(t *testing.T) {
	tests := []struct {
		loss LossCounters
		pct  float64
		text string
	}{
		{LossCounters{}, 0, "Loss: 0.00% (0/0)"},
		{LossCounters{Total: 4, Lost: 1}, 25, "Loss: 25.00% (1/4)"},
		{LossCounters{Total: 3, Lost: 3}, 100, "Loss: 100.00% (3/3)"},
	}
	for _, tt := range tests {
		if got := tt.loss.Percent(); got != tt.pct {
			t.Errorf("Percent(%+v) = %v, want %v", tt.loss, got, tt.pct)
		}
		if got := tt.loss.String(); got != tt.text {
			t.Errorf("String(%+v) = %q, want %q", tt.loss, got, tt.text)
		}
	}
}

func TestStatsLine(t *testing.T) {
	if got := StatsLine(Stats{}, false); got != NoStatsText {
		t.Errorf("expected %q, got %q", NoStatsText, got)
	}
	stats, ok := Compute(samplesOf(1, 3))
	want := "1.00ms best, 3.00ms worst, 2.00ms average"
	if got := StatsLine(stats, ok); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
