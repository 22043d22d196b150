package dto

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	aModel "pegawaiku_backend/internals/features/attendance/attendances/model"
)

func buildSQL(t *testing.T, qs map[string]string) (string, []interface{}) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	q := db.Model(&aModel.AttendanceModel{}).
		Joins("JOIN employees ON employees.employee_id = attendances.attendance_employee_id").
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id")
	q = ApplyAttendanceFilters(q, qs)

	var rows []aModel.AttendanceModel
	stmt := q.Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestAttendanceFiltersEmployeeID(t *testing.T) {
	id := uuid.New()
	sql, vars := buildSQL(t, map[string]string{"employee_id": id.String()})

	if !strings.Contains(sql, "attendances.attendance_employee_id = ?") {
		t.Errorf("klausa employee_id hilang: %s", sql)
	}
	if len(vars) != 1 || vars[0] != id {
		t.Errorf("vars = %v, want [%s]", vars, id)
	}
}

func TestAttendanceFiltersDateRange(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{
		"date_after":  "2024-01-01",
		"date_before": "2024-01-31",
	})

	if !strings.Contains(sql, "attendances.attendance_date >= ?") ||
		!strings.Contains(sql, "attendances.attendance_date <= ?") {
		t.Errorf("klausa rentang tanggal hilang: %s", sql)
	}
	if len(vars) != 2 {
		t.Errorf("vars = %v", vars)
	}
}

func TestAttendanceFiltersInvalidDateIgnored(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"date": "bukan-tanggal"})
	if strings.Contains(sql, "attendance_date") || len(vars) != 0 {
		t.Errorf("tanggal invalid harus no-op: %s %v", sql, vars)
	}
}

func TestAttendanceFiltersStatus(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"status": " LATE "})
	if !strings.Contains(sql, "attendances.attendance_status = ?") {
		t.Errorf("klausa status hilang: %s", sql)
	}
	if len(vars) != 1 || vars[0] != "late" {
		t.Errorf("vars = %v, want [late]", vars)
	}
}

func TestAttendanceFiltersUnknownStatusIgnored(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"status": "sick"})
	if strings.Contains(sql, "attendance_status = ?") || len(vars) != 0 {
		t.Errorf("status tak dikenal harus no-op: %s %v", sql, vars)
	}
}

func TestAttendanceFiltersSearch(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"search": "dewi"})
	if !strings.Contains(sql, "employees.employee_name ILIKE ? OR employees.employee_email ILIKE ? OR departments.department_name ILIKE ?") {
		t.Errorf("klausa search hilang: %s", sql)
	}
	if len(vars) != 3 {
		t.Errorf("vars = %v, want 3 nilai", vars)
	}
}
