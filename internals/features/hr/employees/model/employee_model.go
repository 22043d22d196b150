// internals/features/hr/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	departmentModel "pegawaiku_backend/internals/features/hr/departments/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

type EmployeeModel struct {
	// PK
	EmployeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`

	// Identitas
	EmployeeName        string          `gorm:"type:varchar(200);not null;column:employee_name" json:"employee_name"`
	EmployeeEmail       string          `gorm:"type:varchar(254);uniqueIndex;not null;column:employee_email" json:"employee_email"`
	EmployeePhoneNumber string          `gorm:"type:varchar(15);not null;column:employee_phone_number" json:"employee_phone_number"`
	EmployeeAddress     string          `gorm:"type:text;column:employee_address" json:"employee_address"`
	EmployeeDateOfJoining dbtime.DateOnly `gorm:"type:date;not null;column:employee_date_of_joining" json:"employee_date_of_joining"`

	// Relasi: wajib punya tepat satu departemen.
	// Hapus departemen → pegawai ikut terhapus (cascade).
	EmployeeDepartmentID uuid.UUID                       `gorm:"type:uuid;not null;index;column:employee_department_id" json:"employee_department_id"`
	Department           *departmentModel.DepartmentModel `gorm:"foreignKey:EmployeeDepartmentID;references:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`

	// Audit
	EmployeeCreatedAt time.Time  `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }

// YearsOfService menghitung masa kerja dalam tahun penuh per tanggal asOf:
// selisih tahun, dikurangi satu kalau (bulan, hari) asOf belum melewati
// (bulan, hari) tanggal masuk.
func (m *EmployeeModel) YearsOfService(asOf dbtime.DateOnly) int {
	join := m.EmployeeDateOfJoining
	years := asOf.Year() - join.Year()
	if asOf.Month() < join.Month() || (asOf.Month() == join.Month() && asOf.Day() < join.Day()) {
		years--
	}
	return years
}
