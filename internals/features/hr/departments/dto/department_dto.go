// internals/features/hr/departments/dto/department_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dModel "pegawaiku_backend/internals/features/hr/departments/model"
)

/* ===================== REQUESTS ===================== */

type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required,min=2,max=100"`
}

func (r *CreateDepartmentRequest) ToModel() *dModel.DepartmentModel {
	return &dModel.DepartmentModel{
		DepartmentName: strings.TrimSpace(r.DepartmentName),
	}
}

type UpdateDepartmentRequest struct {
	DepartmentName *string `json:"department_name" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateDepartmentRequest) ApplyToModel(m *dModel.DepartmentModel) {
	if r.DepartmentName != nil {
		m.DepartmentName = strings.TrimSpace(*r.DepartmentName)
	}
}

/* ===================== RESPONSES ===================== */

type DepartmentResponse struct {
	DepartmentID        uuid.UUID  `json:"department_id"`
	DepartmentName      string     `json:"department_name"`
	EmployeeCount       int64      `json:"employee_count"`
	DepartmentCreatedAt time.Time  `json:"department_created_at"`
	DepartmentUpdatedAt *time.Time `json:"department_updated_at,omitempty"`
}

func NewDepartmentResponse(m *dModel.DepartmentModel, employeeCount int64) *DepartmentResponse {
	return &DepartmentResponse{
		DepartmentID:        m.DepartmentID,
		DepartmentName:      m.DepartmentName,
		EmployeeCount:       employeeCount,
		DepartmentCreatedAt: m.DepartmentCreatedAt,
		DepartmentUpdatedAt: m.DepartmentUpdatedAt,
	}
}
