// internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel menyimpan HASH refresh token (bukan token mentah).
type RefreshTokenModel struct {
	RefreshTokenID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:refresh_token_id" json:"refresh_token_id"`

	RefreshTokenUserID uuid.UUID `gorm:"type:uuid;not null;index;column:refresh_token_user_id" json:"refresh_token_user_id"`
	User               *UserModel `gorm:"foreignKey:RefreshTokenUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`

	RefreshTokenHash      string    `gorm:"type:varchar(128);uniqueIndex;not null;column:refresh_token_hash" json:"-"`
	RefreshTokenExpiresAt time.Time `gorm:"not null;column:refresh_token_expires_at" json:"refresh_token_expires_at"`

	RefreshTokenUserAgent *string `gorm:"type:varchar(255);column:refresh_token_user_agent" json:"-"`
	RefreshTokenIP        *string `gorm:"type:varchar(64);column:refresh_token_ip" json:"-"`

	RefreshTokenCreatedAt time.Time `gorm:"column:refresh_token_created_at;autoCreateTime" json:"refresh_token_created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
