// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	uDTO "pegawaiku_backend/internals/features/users/auth/dto"
	uModel "pegawaiku_backend/internals/features/users/auth/model"
	"pegawaiku_backend/internals/features/users/auth/service"
	helper "pegawaiku_backend/internals/helpers"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req uDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := &uModel.UserModel{
		UserUsername:  strings.TrimSpace(req.UserUsername),
		UserEmail:     strings.TrimSpace(req.UserEmail),
		UserPassword:  string(hash),
		UserFirstName: req.UserFirstName,
		UserLastName:  req.UserLastName,
		UserIsActive:  true,
	}
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Username sudah dipakai",
				fiber.Map{"user_username": "username sudah terdaftar"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", uDTO.NewUserResponse(m))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req uDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user uModel.UserModel
	err := h.DB.First(&user, "user_username = ?", strings.TrimSpace(req.UserUsername)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Pesan sengaja sama dengan password salah
			return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	pair, err := h.issueTokenPair(c, &user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	pair.User = uDTO.NewUserResponse(&user)
	return helper.Success(c, "Login berhasil", pair)
}

// POST /api/auth/refresh-token
// Rotasi: hash lama dihapus, pasangan token baru diterbitkan.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req uDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	oldHash := service.HashRefreshToken(req.RefreshToken)
	var stored uModel.RefreshTokenModel
	if err := h.DB.First(&stored, "refresh_token_hash = ?", oldHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Token valid secara kripto tapi sudah dirotasi/di-logout
			return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if time.Now().After(stored.RefreshTokenExpiresAt) {
		h.DB.Delete(&uModel.RefreshTokenModel{}, "refresh_token_id = ?", stored.RefreshTokenID)
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token kedaluwarsa")
	}

	var user uModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun dinonaktifkan")
	}

	if err := h.DB.Delete(&uModel.RefreshTokenModel{}, "refresh_token_id = ?", stored.RefreshTokenID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal merotasi token")
	}

	pair, err := h.issueTokenPair(c, &user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	return helper.Success(c, "Token diperbarui", pair)
}

// POST /api/auth/logout
// Hanya menghapus hash refresh token; access token dibiarkan expire sendiri.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	var req uDTO.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash := service.HashRefreshToken(req.RefreshToken)
	if err := h.DB.Delete(&uModel.RefreshTokenModel{}, "refresh_token_hash = ?", hash).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.Success(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals(authmw.LocalUserID).(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user uModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "OK", uDTO.NewUserResponse(&user))
}

/* ===================== HELPERS ===================== */

func (h *AuthController) issueTokenPair(c *fiber.Ctx, user *uModel.UserModel) (*uDTO.TokenPairResponse, error) {
	access, err := service.IssueAccessToken(user.UserID, user.UserUsername)
	if err != nil {
		return nil, err
	}
	refresh, err := service.IssueRefreshToken(user.UserID)
	if err != nil {
		return nil, err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	row := &uModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      service.HashRefreshToken(refresh),
		RefreshTokenExpiresAt: time.Now().Add(service.RefreshTokenTTL),
	}
	if ua != "" {
		row.RefreshTokenUserAgent = &ua
	}
	if ip != "" {
		row.RefreshTokenIP = &ip
	}
	if err := h.DB.Create(row).Error; err != nil {
		return nil, err
	}

	return &uDTO.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(service.AccessTokenTTL.Seconds()),
	}, nil
}
