// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pegawaiku_backend/internals/configs"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("token tidak valid atau kedaluwarsa")

// IssueAccessToken menandatangani access token HS256 berumur 1 jam.
// Subject = user_id; username ikut di claims supaya middleware bisa
// set locals tanpa query DB.
func IssueAccessToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := &authmw.AccessClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken menandatangani refresh token dengan secret terpisah.
func IssueRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan user_id.
func ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// HashRefreshToken: yang disimpan di tabel refresh_tokens adalah
// HMAC-SHA256 dari token mentah, bukan tokennya sendiri.
func HashRefreshToken(tokenString string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(tokenString))
	return hex.EncodeToString(mac.Sum(nil))
}
