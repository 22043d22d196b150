// internals/features/hr/employees/dto/employee_filter.go
package dto

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/helpers/dbtime"
)

// ApplyEmployeeFilters menerjemahkan query param ke klausa WHERE.
// Asumsi: query sudah JOIN departments (untuk department_name).
// Param kosong/tidak dikenal = no-op; semua filter AND; klausa internal
// `search` digabung OR lalu di-AND-kan dengan sisanya.
//
// today dipakai untuk konversi min/max_years_service → ambang
// employee_date_of_joining (bukan materialisasi years_of_service per baris).
func ApplyEmployeeFilters(q *gorm.DB, qs map[string]string, today dbtime.DateOnly) *gorm.DB {
	if v := strings.TrimSpace(qs["name"]); v != "" {
		q = q.Where("employees.employee_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(qs["email"]); v != "" {
		q = q.Where("employees.employee_email ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(qs["phone_number"]); v != "" {
		q = q.Where("employees.employee_phone_number ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(qs["department_id"]); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("employees.employee_department_id = ?", id)
		}
	}
	if v := strings.TrimSpace(qs["department_name"]); v != "" {
		q = q.Where("departments.department_name ILIKE ?", "%"+v+"%")
	}

	if v := strings.TrimSpace(qs["date_joined_after"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("employees.employee_date_of_joining >= ?", d)
		}
	}
	if v := strings.TrimSpace(qs["date_joined_before"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("employees.employee_date_of_joining <= ?", d)
		}
	}

	// Masa kerja ≥ N tahun ⇔ tanggal masuk ≤ (hari ini − N tahun).
	// Batas inklusif: masuk tepat N tahun lalu hari ini ikut masuk.
	if v := strings.TrimSpace(qs["min_years_service"]); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cutoff := dbtime.FromTime(today.AddDate(-n, 0, 0))
			q = q.Where("employees.employee_date_of_joining <= ?", cutoff)
		}
	}
	if v := strings.TrimSpace(qs["max_years_service"]); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cutoff := dbtime.FromTime(today.AddDate(-n, 0, 0))
			q = q.Where("employees.employee_date_of_joining >= ?", cutoff)
		}
	}

	if v := strings.TrimSpace(qs["search"]); v != "" {
		like := "%" + v + "%"
		q = q.Where(
			"employees.employee_name ILIKE ? OR employees.employee_email ILIKE ? OR employees.employee_phone_number ILIKE ?",
			like, like, like,
		)
	}
	return q
}
