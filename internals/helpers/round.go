package helper

import "github.com/shopspring/decimal"

// Round2 membulatkan ke 2 desimal (half away from zero).
// Semua rate/rata-rata statistik lewat sini supaya konsisten.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Percentage menghitung part/total*100 dengan pembulatan 2 desimal.
// total == 0 → 0 (kebijakan, bukan error).
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}
