package dbtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("got %v", d)
	}

	if _, err := ParseDate("29-02-2024"); err == nil {
		t.Error("format salah tapi lolos parse")
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Error("bulan 13 tapi lolos parse")
	}
}

func TestScanTruncatesTimestamp(t *testing.T) {
	// Driver kadang mengirim DATE sebagai string bertimestamp
	var d DateOnly
	if err := d.Scan("2023-07-15T00:00:00Z"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.Format("2006-01-02") != "2023-07-15" {
		t.Errorf("got %s", d.Format("2006-01-02"))
	}
}

func TestScanTime(t *testing.T) {
	var d DateOnly
	loc, _ := time.LoadLocation("Asia/Jakarta")
	if err := d.Scan(time.Date(2023, 7, 15, 23, 45, 0, 0, loc)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.Day() != 15 || d.Hour() != 0 {
		t.Errorf("jam & zona tidak dibuang: %v", d)
	}
}

func TestValue(t *testing.T) {
	d, _ := ParseDate("2022-01-31")
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "2022-01-31" {
		t.Errorf("Value = %v, want 2022-01-31", v)
	}

	var zero DateOnly
	v, err = zero.Value()
	if err != nil || v != nil {
		t.Errorf("zero Value = %v, %v; want nil, nil", v, err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2021-12-05")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `"2021-12-05"` {
		t.Errorf("Marshal = %s", raw)
	}

	var back DateOnly
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("roundtrip %v != %v", back, d)
	}

	var zero DateOnly
	raw, _ = json.Marshal(zero)
	if string(raw) != "null" {
		t.Errorf("zero Marshal = %s, want null", raw)
	}
}

func TestIsWeekend(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-05", false}, // Jumat
		{"2024-01-06", true},  // Sabtu
		{"2024-01-07", true},  // Minggu
		{"2024-01-08", false}, // Senin
	}
	for _, c := range cases {
		d, _ := ParseDate(c.date)
		if got := d.IsWeekend(); got != c.want {
			t.Errorf("IsWeekend(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestAfter(t *testing.T) {
	a, _ := ParseDate("2024-03-01")
	b, _ := ParseDate("2024-02-29")
	if !a.After(b) {
		t.Error("2024-03-01 harus setelah 2024-02-29")
	}
	if b.After(a) {
		t.Error("2024-02-29 tidak boleh setelah 2024-03-01")
	}
	if a.After(a) {
		t.Error("tanggal sama tidak boleh After")
	}
}
