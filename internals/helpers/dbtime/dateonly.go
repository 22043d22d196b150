// file: internals/helpers/dbtime/dateonly.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// DateOnly membungkus time.Time untuk kolom DATE Postgres.
// Wire format JSON: "YYYY-MM-DD" (tanpa jam & zona).
type DateOnly struct{ time.Time }

// FromTime: bikin DateOnly dari time.Time (buang jam & zona).
func FromTime(t time.Time) DateOnly {
	return DateOnly{
		Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Today: tanggal hari ini menurut jam lokal server.
func Today() DateOnly {
	return FromTime(time.Now())
}

// ParseDate: bikin DateOnly dari string "YYYY-MM-DD".
func ParseDate(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

// Scan: terima time.Time atau string ("YYYY-MM-DD")
func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = FromTime(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dateonly: unsupported Scan type %T", v)
	}
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) > len(layoutDate) { // buang komponen waktu kalau ikut terkirim
		s = s[:len(layoutDate)]
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value: kirim "YYYY-MM-DD" agar Postgres DATE paham
func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Format(layoutDate), nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(layoutDate))
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}

// After membandingkan per-tanggal (bukan per-instant).
func (d DateOnly) After(other DateOnly) bool {
	return d.Time.After(other.Time)
}

// IsWeekend: Sabtu atau Minggu.
func (d DateOnly) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (DateOnly) GormDataType() string { return "date" }
