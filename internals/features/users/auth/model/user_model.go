// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserUsername string `gorm:"type:varchar(50);uniqueIndex;not null;column:user_username" json:"user_username"`
	UserEmail    string `gorm:"type:varchar(254);column:user_email" json:"user_email"`

	// bcrypt hash, tidak pernah keluar lewat JSON
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	UserFirstName *string `gorm:"type:varchar(100);column:user_first_name" json:"user_first_name,omitempty"`
	UserLastName  *string `gorm:"type:varchar(100);column:user_last_name" json:"user_last_name,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
