// internals/features/attendance/performances/model/performance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	employeeModel "pegawaiku_backend/internals/features/hr/employees/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

type PerformanceModel struct {
	// PK
	PerformanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:performance_id" json:"performance_id"`

	PerformanceEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:performance_employee_id" json:"performance_employee_id"`

	// Rating 1..5 (inklusif)
	PerformanceRating     int             `gorm:"not null;column:performance_rating" json:"performance_rating"`
	PerformanceReviewDate dbtime.DateOnly `gorm:"type:date;not null;column:performance_review_date" json:"performance_review_date"`
	PerformanceComments   *string         `gorm:"type:text;column:performance_comments" json:"performance_comments,omitempty"`

	Employee *employeeModel.EmployeeModel `gorm:"foreignKey:PerformanceEmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`

	// Audit
	PerformanceCreatedAt time.Time  `gorm:"column:performance_created_at;autoCreateTime" json:"performance_created_at"`
	PerformanceUpdatedAt *time.Time `gorm:"column:performance_updated_at;autoUpdateTime" json:"performance_updated_at,omitempty"`
}

func (PerformanceModel) TableName() string { return "performances" }

// RatingDisplay memetakan rating ke label. "Unknown" seharusnya tak pernah
// terjadi selama constraint 1..5 dijaga.
func (m *PerformanceModel) RatingDisplay() string {
	return RatingLabel(m.PerformanceRating)
}

func RatingLabel(rating int) string {
	switch rating {
	case 1:
		return "Poor"
	case 2:
		return "Below Average"
	case 3:
		return "Average"
	case 4:
		return "Good"
	case 5:
		return "Excellent"
	default:
		return "Unknown"
	}
}
