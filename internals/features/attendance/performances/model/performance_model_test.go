package model

import "testing"

func TestRatingLabel(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{1, "Poor"},
		{2, "Below Average"},
		{3, "Average"},
		{4, "Good"},
		{5, "Excellent"},
		{0, "Unknown"},
		{6, "Unknown"},
		{-1, "Unknown"},
	}
	for _, c := range cases {
		if got := RatingLabel(c.rating); got != c.want {
			t.Errorf("RatingLabel(%d) = %q, want %q", c.rating, got, c.want)
		}
	}
}

func TestRatingDisplay(t *testing.T) {
	m := &PerformanceModel{PerformanceRating: 4}
	if got := m.RatingDisplay(); got != "Good" {
		t.Errorf("RatingDisplay = %q, want Good", got)
	}
}
