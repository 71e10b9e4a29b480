package engine

const (
	// ScaleHeadroom is added above the worst sample in auto mode.
	ScaleHeadroom = 10.0
	// MinManualMax and MaxManualMax bound the manual y-axis maximum.
	MinManualMax = 10.0
	MaxManualMax = 2000.0

	defaultWorst = 100.0
)

// Scale chooses the upper bound of the latency axis in milliseconds.
type Scale struct {
	Auto   bool
	Manual float64
}

// Upper returns the axis maximum for the given stats.
func (s Scale) Upper(stats Stats, ok bool) float64 {
	if !s.Auto {
		return ClampManualMax(s.Manual)
	}
	worst := defaultWorst
	if ok {
		worst = stats.Worst
	}
	return worst + ScaleHeadroom
}

// Adjust moves the manual maximum by delta, clamped to the allowed range.
func (s Scale) Adjust(delta float64) Scale {
	s.Manual = ClampManualMax(s.Manual + delta)
	return s
}

// ClampManualMax limits v to [MinManualMax, MaxManualMax].
func ClampManualMax(v float64) float64 {
	switch {
	case v < MinManualMax:
		return MinManualMax
	case v > MaxManualMax:
		return MaxManualMax
	default:
		return v
	}
}
