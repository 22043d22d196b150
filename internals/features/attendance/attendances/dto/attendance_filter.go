// internals/features/attendance/attendances/dto/attendance_filter.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/helpers/dbtime"
)

// ApplyAttendanceFilters menerjemahkan query param ke klausa WHERE.
// Asumsi: query sudah JOIN employees & departments.
func ApplyAttendanceFilters(q *gorm.DB, qs map[string]string) *gorm.DB {
	if v := strings.TrimSpace(qs["employee_id"]); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendances.attendance_employee_id = ?", id)
		}
	}
	if v := strings.TrimSpace(qs["employee_name"]); v != "" {
		q = q.Where("employees.employee_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(qs["employee_email"]); v != "" {
		q = q.Where("employees.employee_email ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(qs["department_name"]); v != "" {
		q = q.Where("departments.department_name ILIKE ?", "%"+v+"%")
	}

	if v := strings.TrimSpace(qs["date"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("attendances.attendance_date = ?", d)
		}
	}
	if v := strings.TrimSpace(qs["date_after"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("attendances.attendance_date >= ?", d)
		}
	}
	if v := strings.TrimSpace(qs["date_before"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("attendances.attendance_date <= ?", d)
		}
	}

	if v := strings.ToLower(strings.TrimSpace(qs["status"])); v != "" {
		switch v {
		case "present", "absent", "late":
			q = q.Where("attendances.attendance_status = ?", v)
		}
	}

	if v := strings.TrimSpace(qs["search"]); v != "" {
		like := "%" + v + "%"
		q = q.Where(
			"employees.employee_name ILIKE ? OR employees.employee_email ILIKE ? OR departments.department_name ILIKE ?",
			like, like, like,
		)
	}
	return q
}
