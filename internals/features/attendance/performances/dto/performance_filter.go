// internals/features/attendance/performances/dto/performance_filter.go
package dto

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/helpers/dbtime"
)

// ApplyPerformanceFilters menerjemahkan query param ke klausa WHERE.
// Asumsi: query sudah JOIN employees & departments.
func ApplyPerformanceFilters(q *gorm.DB, qs map[string]string) *gorm.DB {
	if v := strings.TrimSpace(qs["employee_id"]); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("performances.performance_employee_id = ?", id)
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

	if v := strings.TrimSpace(qs["min_rating"]); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q = q.Where("performances.performance_rating >= ?", n)
		}
	}
	if v := strings.TrimSpace(qs["max_rating"]); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q = q.Where("performances.performance_rating <= ?", n)
		}
	}

	if v := strings.TrimSpace(qs["review_date_after"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("performances.performance_review_date >= ?", d)
		}
	}
	if v := strings.TrimSpace(qs["review_date_before"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("performances.performance_review_date <= ?", d)
		}
	}

	if v := strings.TrimSpace(qs["search"]); v != "" {
		like := "%" + v + "%"
		q = q.Where(
			"employees.employee_name ILIKE ? OR employees.employee_email ILIKE ? OR departments.department_name ILIKE ? OR performances.performance_comments ILIKE ?",
			like, like, like, like,
		)
	}
	return q
}
