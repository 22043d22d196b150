// internals/features/attendance/attendances/model/attendance_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"

	employeeModel "pegawaiku_backend/internals/features/hr/employees/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

/*
Status kehadiran:
- "present"
- "absent"
- "late"
*/
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Selalu lower-case saat scan/save
func (s *AttendanceStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AttendanceStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AttendanceStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}

func (s AttendanceStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	// Maksimal satu record per (pegawai, tanggal) — constraint di storage,
	// bukan cuma pre-check aplikasi.
	AttendanceEmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_employee_date;column:attendance_employee_id" json:"attendance_employee_id"`
	AttendanceDate       dbtime.DateOnly `gorm:"type:date;not null;uniqueIndex:uq_attendances_employee_date;column:attendance_date" json:"attendance_date"`

	AttendanceStatus AttendanceStatus `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`

	Employee *employeeModel.EmployeeModel `gorm:"foreignKey:AttendanceEmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`

	// Audit
	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func ValidStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// IsWeekend: true kalau tanggal kehadiran jatuh di Sabtu/Minggu.
func (m *AttendanceModel) IsWeekend() bool {
	return m.AttendanceDate.IsWeekend()
}
