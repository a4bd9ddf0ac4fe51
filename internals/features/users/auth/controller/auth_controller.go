package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authDTO "tutorku_backend/internals/features/users/auth/dto"
	authModel "tutorku_backend/internals/features/users/auth/model"
	"tutorku_backend/internals/features/users/auth/service"
	userDTO "tutorku_backend/internals/features/users/user/dto"
	userModel "tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] Gagal hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: hashed,
		UserRole:     userModel.UserRole(req.Role),
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonDBError(c, err, "Gagal menyimpan user")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", userDTO.ToUserResponse(&user))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonDBError(c, err, "Gagal memproses login")
	}

	if user.UserStatus != userModel.UserStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := service.CheckPassword(user.UserPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return ctrl.finishLogin(c, &user)
}

// 🟢 POST /api/auth/login/google  (body { "id_token": "..." })
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	profile, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		log.Printf("[ERROR] Verifikasi Google ID token gagal: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	// Cari user existing (by google_id lalu email); kalau belum ada → daftarkan sebagai student.
	var user userModel.UserModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("user_google_id = ? OR user_email = ?", profile.GoogleID, strings.ToLower(profile.Email)).
		First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		randomPass, herr := service.HashPassword(uuid.NewString())
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
		user = userModel.UserModel{
			UserName:     profile.Name,
			UserEmail:    strings.ToLower(profile.Email),
			UserPassword: randomPass,
			UserGoogleID: &profile.GoogleID,
			UserRole:     userModel.UserRoleStudent,
		}
		if profile.Picture != "" {
			user.UserAvatarURL = &profile.Picture
		}
		if cerr := ctrl.DB.WithContext(c.Context()).Create(&user).Error; cerr != nil {
			return helper.JsonDBError(c, cerr, "Gagal mendaftarkan user Google")
		}
	case err != nil:
		return helper.JsonDBError(c, err, "Gagal memproses login")
	default:
		if user.UserGoogleID == nil {
			_ = ctrl.DB.WithContext(c.Context()).Model(&user).
				Update("user_google_id", profile.GoogleID).Error
		}
	}

	if user.UserStatus != userModel.UserStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	return ctrl.finishLogin(c, &user)
}

// 🟢 POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	userIDStr, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memproses refresh")
	}
	if user.UserStatus != userModel.UserStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	pair, err := service.IssueTokens(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Token berhasil diperbarui", fiber.Map{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// 🛑 POST /api/u/auth/logout — blacklist access token yang sedang dipakai
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     fields[1],
		TokenBlacklistExpiredAt: time.Now().Add(24 * time.Hour),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil && !helper.IsUniqueViolation(err) {
		return helper.JsonDBError(c, err, "Gagal logout")
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟡 POST /api/u/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memproses permintaan")
	}
	if err := service.CheckPassword(user.UserPassword, req.OldPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password baru")
	}
	if err := ctrl.DB.WithContext(c.Context()).Model(&user).
		Update("user_password", hashed).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan password baru")
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

// finishLogin: stamp last login + terbitkan token.
func (ctrl *AuthController) finishLogin(c *fiber.Ctx, user *userModel.UserModel) error {
	if err := user.StampLastLogin(ctrl.DB.WithContext(c.Context())); err != nil {
		log.Printf("[WARN] Gagal stamp last login %s: %v", user.UserID, err)
	}

	pair, err := service.IssueTokens(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Cookie untuk SPA + token di body untuk klien non-browser
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		Expires:  pair.ExpiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":          userDTO.ToUserResponse(user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}
