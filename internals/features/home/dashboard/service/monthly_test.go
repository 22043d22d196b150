package service

import (
	"testing"

	"pegawaiku_backend/internals/helpers/dbtime"
)

func TestLastNMonthWindows(t *testing.T) {
	today, _ := dbtime.ParseDate("2024-06-15")
	windows := LastNMonthWindows(6, today)

	if len(windows) != 6 {
		t.Fatalf("len = %d, want 6", len(windows))
	}

	wantLabels := []string{"Jan 24", "Feb 24", "Mar 24", "Apr 24", "May 24", "Jun 24"}
	for i, w := range windows {
		if w.Label != wantLabels[i] {
			t.Errorf("windows[%d].Label = %q, want %q", i, w.Label, wantLabels[i])
		}
	}

	// Bulan pertama: Januari penuh
	if windows[0].Start.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("start[0] = %s", windows[0].Start.Format("2006-01-02"))
	}
	if windows[0].End.Format("2006-01-02") != "2024-01-31" {
		t.Errorf("end[0] = %s", windows[0].End.Format("2006-01-02"))
	}

	// Februari kabisat
	if windows[1].End.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("end feb = %s, want 2024-02-29", windows[1].End.Format("2006-01-02"))
	}

	// Bulan berjalan: window sampai akhir bulan walau baru tanggal 15
	last := windows[5]
	if last.Start.Format("2006-01-02") != "2024-06-01" || last.End.Format("2006-01-02") != "2024-06-30" {
		t.Errorf("window bulan berjalan = %s..%s", last.Start.Format("2006-01-02"), last.End.Format("2006-01-02"))
	}
}

func TestLastNMonthWindowsCrossYear(t *testing.T) {
	today, _ := dbtime.ParseDate("2024-02-10")
	windows := LastNMonthWindows(6, today)

	wantLabels := []string{"Sep 23", "Oct 23", "Nov 23", "Dec 23", "Jan 24", "Feb 24"}
	for i, w := range windows {
		if w.Label != wantLabels[i] {
			t.Errorf("windows[%d].Label = %q, want %q", i, w.Label, wantLabels[i])
		}
	}
}
