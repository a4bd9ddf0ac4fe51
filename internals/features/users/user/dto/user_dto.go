package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tutorku_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================

type UpdateProfileRequest struct {
	UserName        *string         `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserPhone       *string         `json:"user_phone" validate:"omitempty,max=30"`
	UserAvatarURL   *string         `json:"user_avatar_url" validate:"omitempty,url"`
	UserBio         *string         `json:"user_bio" validate:"omitempty,max=1000"`
	UserPreferences *datatypes.JSON `json:"user_preferences"`
}

type UpdateUserStatusRequest struct {
	UserStatus string `json:"user_status" validate:"required,oneof=active inactive suspended"`
}

// ================== RESPONSE ==================

type UserResponse struct {
	UserID          uuid.UUID      `json:"user_id"`
	UserName        string         `json:"user_name"`
	UserEmail       string         `json:"user_email"`
	UserRole        string         `json:"user_role"`
	UserStatus      string         `json:"user_status"`
	UserPhone       *string        `json:"user_phone,omitempty"`
	UserAvatarURL   *string        `json:"user_avatar_url,omitempty"`
	UserBio         *string        `json:"user_bio,omitempty"`
	UserPreferences datatypes.JSON `json:"user_preferences,omitempty"`
	UserLastLoginAt *time.Time     `json:"user_last_login_at,omitempty"`
	UserCreatedAt   string         `json:"user_created_at"`
}

// UserLiteResponse: proyeksi minimal untuk join (roster, owner session, dsb.)
type UserLiteResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserAvatarURL *string   `json:"user_avatar_url,omitempty"`
}

// ================ CONVERSION =================

func (r *UpdateProfileRequest) ApplyToModel(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserPhone != nil {
		m.UserPhone = r.UserPhone
	}
	if r.UserAvatarURL != nil {
		m.UserAvatarURL = r.UserAvatarURL
	}
	if r.UserBio != nil {
		m.UserBio = r.UserBio
	}
	if r.UserPreferences != nil {
		m.UserPreferences = *r.UserPreferences
	}
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserEmail:       m.UserEmail,
		UserRole:        string(m.UserRole),
		UserStatus:      string(m.UserStatus),
		UserPhone:       m.UserPhone,
		UserAvatarURL:   m.UserAvatarURL,
		UserBio:         m.UserBio,
		UserPreferences: m.UserPreferences,
		UserLastLoginAt: m.UserLastLoginAt,
		UserCreatedAt:   m.UserCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToUserResponse(&models[i]))
	}
	return result
}

func ToUserLiteResponse(m *model.UserModel) *UserLiteResponse {
	return &UserLiteResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserAvatarURL: m.UserAvatarURL,
	}
}
