package helper

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.01}, // half away from zero
		{1.004, 1.0},
		{-1.005, -1.01},
		{2.675, 2.68},
		{33.333333, 33.33},
		{66.666666, 66.67},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		part, total int64
		want        float64
	}{
		{0, 0, 0}, // total nol bukan error
		{5, 0, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{10, 10, 100},
		{0, 7, 0},
	}
	for _, c := range cases {
		if got := Percentage(c.part, c.total); got != c.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", c.part, c.total, got, c.want)
		}
	}
}
