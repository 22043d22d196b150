package model

import (
	"testing"

	"pegawaiku_backend/internals/helpers/dbtime"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate} {
		if !ValidStatus(s) {
			t.Errorf("status %q harusnya valid", s)
		}
	}
	for _, s := range []AttendanceStatus{"", "hadir", "PRESENT ", "sick"} {
		if ValidStatus(s) {
			t.Errorf("status %q harusnya invalid", s)
		}
	}
}

func TestStatusScanLowercases(t *testing.T) {
	var s AttendanceStatus
	if err := s.Scan("  PRESENT "); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if s != AttendancePresent {
		t.Errorf("Scan = %q, want %q", s, AttendancePresent)
	}

	if err := s.Scan([]byte("Late")); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if s != AttendanceLate {
		t.Errorf("Scan bytes = %q, want %q", s, AttendanceLate)
	}
}

func TestStatusValueLowercases(t *testing.T) {
	v, err := AttendanceStatus(" Absent ").Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "absent" {
		t.Errorf("Value = %v, want absent", v)
	}
}

func TestIsWeekend(t *testing.T) {
	sat, _ := dbtime.ParseDate("2024-01-06")
	mon, _ := dbtime.ParseDate("2024-01-08")

	if !(&AttendanceModel{AttendanceDate: sat}).IsWeekend() {
		t.Error("Sabtu harus weekend")
	}
	if (&AttendanceModel{AttendanceDate: mon}).IsWeekend() {
		t.Error("Senin bukan weekend")
	}
}
