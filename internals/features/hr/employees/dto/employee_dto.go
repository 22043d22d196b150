// internals/features/hr/employees/dto/employee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreateEmployeeRequest struct {
	EmployeeName          string          `json:"employee_name" validate:"required,min=2,max=200"`
	EmployeeEmail         string          `json:"employee_email" validate:"required,email,max=254"`
	EmployeePhoneNumber   string          `json:"employee_phone_number" validate:"required,max=15,phone"`
	EmployeeAddress       string          `json:"employee_address" validate:"omitempty"`
	EmployeeDateOfJoining dbtime.DateOnly `json:"employee_date_of_joining" validate:"required"`
	EmployeeDepartmentID  uuid.UUID       `json:"employee_department_id" validate:"required"`
}

func (r *CreateEmployeeRequest) ToModel() *eModel.EmployeeModel {
	return &eModel.EmployeeModel{
		EmployeeName:          strings.TrimSpace(r.EmployeeName),
		EmployeeEmail:         strings.TrimSpace(r.EmployeeEmail),
		EmployeePhoneNumber:   strings.TrimSpace(r.EmployeePhoneNumber),
		EmployeeAddress:       r.EmployeeAddress,
		EmployeeDateOfJoining: r.EmployeeDateOfJoining,
		EmployeeDepartmentID:  r.EmployeeDepartmentID,
	}
}

type UpdateEmployeeRequest struct {
	EmployeeName          *string          `json:"employee_name" validate:"omitempty,min=2,max=200"`
	EmployeeEmail         *string          `json:"employee_email" validate:"omitempty,email,max=254"`
	EmployeePhoneNumber   *string          `json:"employee_phone_number" validate:"omitempty,max=15,phone"`
	EmployeeAddress       *string          `json:"employee_address" validate:"omitempty"`
	EmployeeDateOfJoining *dbtime.DateOnly `json:"employee_date_of_joining" validate:"omitempty"`
	EmployeeDepartmentID  *uuid.UUID       `json:"employee_department_id" validate:"omitempty"`
}

func (r *UpdateEmployeeRequest) ApplyToModel(m *eModel.EmployeeModel) {
	if r.EmployeeName != nil {
		m.EmployeeName = strings.TrimSpace(*r.EmployeeName)
	}
	if r.EmployeeEmail != nil {
		m.EmployeeEmail = strings.TrimSpace(*r.EmployeeEmail)
	}
	if r.EmployeePhoneNumber != nil {
		m.EmployeePhoneNumber = strings.TrimSpace(*r.EmployeePhoneNumber)
	}
	if r.EmployeeAddress != nil {
		m.EmployeeAddress = *r.EmployeeAddress
	}
	if r.EmployeeDateOfJoining != nil {
		m.EmployeeDateOfJoining = *r.EmployeeDateOfJoining
	}
	if r.EmployeeDepartmentID != nil {
		m.EmployeeDepartmentID = *r.EmployeeDepartmentID
	}
}

/* ===================== RESPONSES ===================== */

type EmployeeResponse struct {
	EmployeeID            uuid.UUID       `json:"employee_id"`
	EmployeeName          string          `json:"employee_name"`
	EmployeeEmail         string          `json:"employee_email"`
	EmployeePhoneNumber   string          `json:"employee_phone_number"`
	EmployeeAddress       string          `json:"employee_address"`
	EmployeeDateOfJoining dbtime.DateOnly `json:"employee_date_of_joining"`
	EmployeeDepartmentID  uuid.UUID       `json:"employee_department_id"`
	DepartmentName        string          `json:"department_name,omitempty"`
	YearsOfService        int             `json:"years_of_service"`
	EmployeeCreatedAt     time.Time       `json:"employee_created_at"`
	EmployeeUpdatedAt     *time.Time      `json:"employee_updated_at,omitempty"`
}

func NewEmployeeResponse(m *eModel.EmployeeModel) *EmployeeResponse {
	resp := &EmployeeResponse{
		EmployeeID:            m.EmployeeID,
		EmployeeName:          m.EmployeeName,
		EmployeeEmail:         m.EmployeeEmail,
		EmployeePhoneNumber:   m.EmployeePhoneNumber,
		EmployeeAddress:       m.EmployeeAddress,
		EmployeeDateOfJoining: m.EmployeeDateOfJoining,
		EmployeeDepartmentID:  m.EmployeeDepartmentID,
		YearsOfService:        m.YearsOfService(dbtime.Today()),
		EmployeeCreatedAt:     m.EmployeeCreatedAt,
		EmployeeUpdatedAt:     m.EmployeeUpdatedAt,
	}
	if m.Department != nil {
		resp.DepartmentName = m.Department.DepartmentName
	}
	return resp
}
