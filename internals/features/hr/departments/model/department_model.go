// internals/features/hr/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type DepartmentModel struct {
	// PK
	DepartmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`

	// Unik lintas semua departemen
	DepartmentName string `gorm:"type:varchar(100);uniqueIndex;not null;column:department_name" json:"department_name"`

	// Audit
	DepartmentCreatedAt time.Time  `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt *time.Time `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
