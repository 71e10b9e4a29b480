package engine

import "testing"

func TestScaleAutoUpper(t *testing.T) {
	s := Scale{Auto: true, Manual: 50}
	if got := s.Upper(Stats{}, false); got != 110 {
		t.Errorf("expected 110 before any data, got %v", got)
	}
	if got := s.Upper(Stats{Worst: 42.5}, true); got != 52.5 {
		t.Errorf("expected worst + 10 = 52.5, got %v", got)
	}
}

func TestScaleManualUpper(t *testing.T) {
	s := Scale{Manual: 250}
	if got := s.Upper(Stats{Worst: 900}, true); got != 250 {
		t.Errorf("manual scale should ignore stats, got %v", got)
	}
	s.Manual = 1
	if got := s.Upper(Stats{}, false); got != MinManualMax {
		t.Errorf("expected clamp to %v, got %v", MinManualMax, got)
	}
}

func TestScaleAdjustClamps(t *testing.T) {
	s := Scale{Manual: 20}
	s = s.Adjust(-10)
	if s.Manual != 10 {
		t.Errorf("expected 10, got %v", s.Manual)
	}
	s = s.Adjust(-10)
	if s.Manual != MinManualMax {
		t.Errorf("expected floor %v, got %v", MinManualMax, s.Manual)
	}
	s = Scale{Manual: 1995}.Adjust(10)
	if s.Manual != MaxManualMax {
		t.Errorf("expected ceiling %v, got %v", MaxManualMax, s.Manual)
	}
}
