// internals/features/home/dashboard/service/monthly.go
package service

import (
	"time"

	"pegawaiku_backend/internals/helpers/dbtime"
)

// MonthWindow: satu bulan kalender untuk seri chart bulanan.
type MonthWindow struct {
	Label string // "Jan 06"
	Start dbtime.DateOnly
	End   dbtime.DateOnly // hari terakhir bulan tsb
}

// LastNMonthWindows mengembalikan n bulan kalender terakhir (termasuk bulan
// berjalan yang masih parsial), urut dari paling lama ke paling baru.
func LastNMonthWindows(n int, today dbtime.DateOnly) []MonthWindow {
	out := make([]MonthWindow, 0, n)
	y, m, _ := today.Date()

	for i := n - 1; i >= 0; i-- {
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		out = append(out, MonthWindow{
			Label: start.Format("Jan 06"),
			Start: dbtime.FromTime(start),
			End:   dbtime.FromTime(end),
		})
	}
	return out
}
