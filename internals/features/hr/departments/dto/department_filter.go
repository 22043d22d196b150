// internals/features/hr/departments/dto/department_filter.go
package dto

import (
	"strings"

	"gorm.io/gorm"

	"pegawaiku_backend/internals/helpers/dbtime"
)

// ApplyDepartmentFilters menerjemahkan query param ke klausa WHERE.
// Param kosong/tidak dikenal = no-op; semua filter digabung AND.
func ApplyDepartmentFilters(q *gorm.DB, qs map[string]string) *gorm.DB {
	if v := strings.TrimSpace(qs["name"]); v != "" {
		q = q.Where("department_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(qs["created_after"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("department_created_at >= ?", d)
		}
	}
	if v := strings.TrimSpace(qs["created_before"]); v != "" {
		if d, err := dbtime.ParseDate(v); err == nil {
			q = q.Where("department_created_at <= ?", d)
		}
	}
	if v := strings.TrimSpace(qs["search"]); v != "" {
		q = q.Where("department_name ILIKE ?", "%"+v+"%")
	}
	return q
}
