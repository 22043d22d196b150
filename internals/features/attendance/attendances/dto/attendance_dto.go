// internals/features/attendance/attendances/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "pegawaiku_backend/internals/features/attendance/attendances/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreateAttendanceRequest struct {
	AttendanceEmployeeID uuid.UUID               `json:"attendance_employee_id" validate:"required"`
	AttendanceDate       dbtime.DateOnly         `json:"attendance_date" validate:"required"`
	AttendanceStatus     aModel.AttendanceStatus `json:"attendance_status" validate:"required,oneof=present absent late"`
}

func (r *CreateAttendanceRequest) ToModel() *aModel.AttendanceModel {
	return &aModel.AttendanceModel{
		AttendanceEmployeeID: r.AttendanceEmployeeID,
		AttendanceDate:       r.AttendanceDate,
		AttendanceStatus:     r.AttendanceStatus,
	}
}

type UpdateAttendanceRequest struct {
	AttendanceStatus *aModel.AttendanceStatus `json:"attendance_status" validate:"omitempty,oneof=present absent late"`
}

func (r *UpdateAttendanceRequest) ApplyToModel(m *aModel.AttendanceModel) {
	if r.AttendanceStatus != nil {
		m.AttendanceStatus = *r.AttendanceStatus
	}
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceID         uuid.UUID               `json:"attendance_id"`
	AttendanceEmployeeID uuid.UUID               `json:"attendance_employee_id"`
	EmployeeName         string                  `json:"employee_name,omitempty"`
	DepartmentName       string                  `json:"department_name,omitempty"`
	AttendanceDate       dbtime.DateOnly         `json:"attendance_date"`
	AttendanceStatus     aModel.AttendanceStatus `json:"attendance_status"`
	IsWeekend            bool                    `json:"is_weekend"`
	AttendanceCreatedAt  time.Time               `json:"attendance_created_at"`
	AttendanceUpdatedAt  *time.Time              `json:"attendance_updated_at,omitempty"`
}

func NewAttendanceResponse(m *aModel.AttendanceModel) *AttendanceResponse {
	resp := &AttendanceResponse{
		AttendanceID:         m.AttendanceID,
		AttendanceEmployeeID: m.AttendanceEmployeeID,
		AttendanceDate:       m.AttendanceDate,
		AttendanceStatus:     m.AttendanceStatus,
		IsWeekend:            m.IsWeekend(),
		AttendanceCreatedAt:  m.AttendanceCreatedAt,
		AttendanceUpdatedAt:  m.AttendanceUpdatedAt,
	}
	if m.Employee != nil {
		resp.EmployeeName = m.Employee.EmployeeName
		if m.Employee.Department != nil {
			resp.DepartmentName = m.Employee.Department.DepartmentName
		}
	}
	return resp
}
