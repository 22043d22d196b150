// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	uModel "pegawaiku_backend/internals/features/users/auth/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	UserUsername  string  `json:"user_username" validate:"required,min=3,max=50"`
	UserEmail     string  `json:"user_email" validate:"required,email,max=254"`
	UserPassword  string  `json:"user_password" validate:"required,min=8,max=72"`
	UserFirstName *string `json:"user_first_name" validate:"omitempty,max=100"`
	UserLastName  *string `json:"user_last_name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	UserUsername string `json:"user_username" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserUsername  string     `json:"user_username"`
	UserEmail     string     `json:"user_email"`
	UserFirstName *string    `json:"user_first_name,omitempty"`
	UserLastName  *string    `json:"user_last_name,omitempty"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserUsername:  m.UserUsername,
		UserEmail:     m.UserEmail,
		UserFirstName: m.UserFirstName,
		UserLastName:  m.UserLastName,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
		UserUpdatedAt: m.UserUpdatedAt,
	}
}

type TokenPairResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"` // selalu "Bearer"
	ExpiresIn    int64         `json:"expires_in"` // detik, umur access token
	User         *UserResponse `json:"user,omitempty"`
}
