package dto

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func buildSQL(t *testing.T, qs map[string]string, today dbtime.DateOnly) (string, []interface{}) {
	t.Helper()
	db := dryRunDB(t)

	q := db.Model(&eModel.EmployeeModel{}).
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id")
	q = ApplyEmployeeFilters(q, qs, today)

	var rows []eModel.EmployeeModel
	stmt := q.Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestEmployeeFiltersEmptyIsNoop(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{}, dbtime.Today())
	if strings.Contains(sql, "ILIKE") {
		t.Errorf("tanpa param tidak boleh ada ILIKE: %s", sql)
	}
	if len(vars) != 0 {
		t.Errorf("tanpa param tidak boleh ada vars: %v", vars)
	}
}

func TestEmployeeFiltersUnknownParamIgnored(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"warna": "biru"}, dbtime.Today())
	if strings.Contains(sql, "warna") || len(vars) != 0 {
		t.Errorf("param tak dikenal harus no-op: %s %v", sql, vars)
	}
}

func TestEmployeeFiltersName(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"name": "budi"}, dbtime.Today())
	if !strings.Contains(sql, "employees.employee_name ILIKE ?") {
		t.Errorf("klausa name hilang: %s", sql)
	}
	if len(vars) != 1 || vars[0] != "%budi%" {
		t.Errorf("vars = %v, want [%%budi%%]", vars)
	}
}

func TestEmployeeFiltersInvalidUUIDIgnored(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"department_id": "bukan-uuid"}, dbtime.Today())
	if strings.Contains(sql, "employee_department_id") || len(vars) != 0 {
		t.Errorf("uuid invalid harus no-op: %s %v", sql, vars)
	}
}

func TestEmployeeFiltersMinYearsServiceCutoff(t *testing.T) {
	today, _ := dbtime.ParseDate("2024-06-15")
	sql, vars := buildSQL(t, map[string]string{"min_years_service": "5"}, today)

	if !strings.Contains(sql, "employees.employee_date_of_joining <= ?") {
		t.Fatalf("klausa cutoff hilang: %s", sql)
	}
	if len(vars) != 1 {
		t.Fatalf("vars = %v", vars)
	}
	cutoff, ok := vars[0].(dbtime.DateOnly)
	if !ok {
		t.Fatalf("var bukan DateOnly: %T", vars[0])
	}
	// Masuk tepat 5 tahun lalu hari ini harus ikut (batas inklusif)
	if cutoff.Format("2006-01-02") != "2019-06-15" {
		t.Errorf("cutoff = %s, want 2019-06-15", cutoff.Format("2006-01-02"))
	}
}

func TestEmployeeFiltersMaxYearsServiceCutoff(t *testing.T) {
	today, _ := dbtime.ParseDate("2024-06-15")
	sql, vars := buildSQL(t, map[string]string{"max_years_service": "2"}, today)

	if !strings.Contains(sql, "employees.employee_date_of_joining >= ?") {
		t.Fatalf("klausa cutoff hilang: %s", sql)
	}
	cutoff := vars[0].(dbtime.DateOnly)
	if cutoff.Format("2006-01-02") != "2022-06-15" {
		t.Errorf("cutoff = %s, want 2022-06-15", cutoff.Format("2006-01-02"))
	}
}

func TestEmployeeFiltersNegativeYearsIgnored(t *testing.T) {
	// Kolomnya selalu muncul di SELECT list; yang dicek: tidak ada klausa
	// cutoff di WHERE dan tidak ada vars.
	sql, vars := buildSQL(t, map[string]string{"min_years_service": "-3"}, dbtime.Today())
	if strings.Contains(sql, "employee_date_of_joining <= ?") ||
		strings.Contains(sql, "employee_date_of_joining >= ?") ||
		len(vars) != 0 {
		t.Errorf("nilai negatif harus no-op: %s %v", sql, vars)
	}
}

func TestEmployeeFiltersSearchORCombined(t *testing.T) {
	sql, vars := buildSQL(t, map[string]string{"search": "andi", "name": "x"}, dbtime.Today())

	if !strings.Contains(sql, "employees.employee_name ILIKE ? OR employees.employee_email ILIKE ? OR employees.employee_phone_number ILIKE ?") {
		t.Errorf("klausa search hilang: %s", sql)
	}
	// name (AND) + 3 kolom search (OR)
	if len(vars) != 4 {
		t.Errorf("vars = %v, want 4 nilai", vars)
	}
}

func TestEmployeeFiltersAllAndCombined(t *testing.T) {
	today, _ := dbtime.ParseDate("2024-06-15")
	sql, _ := buildSQL(t, map[string]string{
		"name":              "a",
		"email":             "b",
		"department_name":   "c",
		"date_joined_after": "2020-01-01",
	}, today)

	for _, clause := range []string{
		"employees.employee_name ILIKE ?",
		"employees.employee_email ILIKE ?",
		"departments.department_name ILIKE ?",
		"employees.employee_date_of_joining >= ?",
	} {
		if !strings.Contains(sql, clause) {
			t.Errorf("klausa %q hilang: %s", clause, sql)
		}
	}
	if !strings.Contains(sql, " AND ") {
		t.Errorf("filter harus digabung AND: %s", sql)
	}
}
