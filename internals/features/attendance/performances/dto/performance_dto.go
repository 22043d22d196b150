// internals/features/attendance/performances/dto/performance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	pModel "pegawaiku_backend/internals/features/attendance/performances/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreatePerformanceRequest struct {
	PerformanceEmployeeID uuid.UUID       `json:"performance_employee_id" validate:"required"`
	PerformanceRating     int             `json:"performance_rating" validate:"required,min=1,max=5"`
	PerformanceReviewDate dbtime.DateOnly `json:"performance_review_date" validate:"required"`
	PerformanceComments   *string         `json:"performance_comments" validate:"omitempty"`
}

func (r *CreatePerformanceRequest) ToModel() *pModel.PerformanceModel {
	return &pModel.PerformanceModel{
		PerformanceEmployeeID: r.PerformanceEmployeeID,
		PerformanceRating:     r.PerformanceRating,
		PerformanceReviewDate: r.PerformanceReviewDate,
		PerformanceComments:   r.PerformanceComments,
	}
}

type UpdatePerformanceRequest struct {
	PerformanceRating     *int             `json:"performance_rating" validate:"omitempty,min=1,max=5"`
	PerformanceReviewDate *dbtime.DateOnly `json:"performance_review_date" validate:"omitempty"`
	PerformanceComments   *string          `json:"performance_comments" validate:"omitempty"`
}

func (r *UpdatePerformanceRequest) ApplyToModel(m *pModel.PerformanceModel) {
	if r.PerformanceRating != nil {
		m.PerformanceRating = *r.PerformanceRating
	}
	if r.PerformanceReviewDate != nil {
		m.PerformanceReviewDate = *r.PerformanceReviewDate
	}
	if r.PerformanceComments != nil {
		m.PerformanceComments = r.PerformanceComments
	}
}

/* ===================== RESPONSES ===================== */

type PerformanceResponse struct {
	PerformanceID         uuid.UUID       `json:"performance_id"`
	PerformanceEmployeeID uuid.UUID       `json:"performance_employee_id"`
	EmployeeName          string          `json:"employee_name,omitempty"`
	DepartmentName        string          `json:"department_name,omitempty"`
	PerformanceRating     int             `json:"performance_rating"`
	RatingDisplay         string          `json:"rating_display"`
	PerformanceReviewDate dbtime.DateOnly `json:"performance_review_date"`
	PerformanceComments   *string         `json:"performance_comments,omitempty"`
	PerformanceCreatedAt  time.Time       `json:"performance_created_at"`
	PerformanceUpdatedAt  *time.Time      `json:"performance_updated_at,omitempty"`
}

func NewPerformanceResponse(m *pModel.PerformanceModel) *PerformanceResponse {
	resp := &PerformanceResponse{
		PerformanceID:         m.PerformanceID,
		PerformanceEmployeeID: m.PerformanceEmployeeID,
		PerformanceRating:     m.PerformanceRating,
		RatingDisplay:         m.RatingDisplay(),
		PerformanceReviewDate: m.PerformanceReviewDate,
		PerformanceComments:   m.PerformanceComments,
		PerformanceCreatedAt:  m.PerformanceCreatedAt,
		PerformanceUpdatedAt:  m.PerformanceUpdatedAt,
	}
	if m.Employee != nil {
		resp.EmployeeName = m.Employee.EmployeeName
		if m.Employee.Department != nil {
			resp.DepartmentName = m.Employee.Department.DepartmentName
		}
	}
	return resp
}
