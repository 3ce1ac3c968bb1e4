package spacedrep

import (
	"errors"
	"testing"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		confidence   Confidence
		wantDays     int
		wantEasiness float64
	}{
		{ConfidenceUnknown, 1, 1.3},
		{ConfidenceUnsure, 1, 1.8},
		{ConfidenceUnderstood, 3, 2.5},
		{ConfidenceMastered, 7, 2.8},
	}
	for _, tt := range tests {
		iv, err := Schedule(tt.confidence)
		if err != nil {
			t.Fatalf("Schedule(%d): unexpected error: %v", tt.confidence, err)
		}
		if iv.Days != tt.wantDays {
			t.Errorf("Schedule(%d).Days = %d, want %d", tt.confidence, iv.Days, tt.wantDays)
		}
		if iv.Easiness != tt.wantEasiness {
			t.Errorf("Schedule(%d).Easiness = %v, want %v", tt.confidence, iv.Easiness, tt.wantEasiness)
		}
	}
}

func TestSchedule_Deterministic(t *testing.T) {
	for c := ConfidenceUnknown; c <= ConfidenceMastered; c++ {
		first, err := Schedule(c)
		if err != nil {
			t.Fatalf("Schedule(%d): %v", c, err)
		}
		second, err := Schedule(c)
		if err != nil {
			t.Fatalf("Schedule(%d): %v", c, err)
		}
		if first != second {
			t.Errorf("Schedule(%d) not deterministic: %+v vs %+v", c, first, second)
		}
	}
}

func TestSchedule_OutOfRange(t *testing.T) {
	for _, c := range []Confidence{0, 5, -1, 42} {
		_, err := Schedule(c)
		if err == nil {
			t.Fatalf("Schedule(%d): expected error, got nil", c)
		}
		var inv *ErrInvalidConfidence
		if !errors.As(err, &inv) {
			t.Fatalf("Schedule(%d): got %T, want *ErrInvalidConfidence", c, err)
		}
		if inv.Confidence != c {
			t.Errorf("error carries confidence %d, want %d", inv.Confidence, c)
		}
	}
}
