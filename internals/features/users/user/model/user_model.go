package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

type UserRole string
type UserStatus string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleTutor      UserRole = "tutor"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// UserModel merepresentasikan tabel users di database.
// User tidak pernah di-hard-delete; nonaktif cukup lewat user_status.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserGoogleID *string   `gorm:"column:user_google_id;size:255;unique" json:"user_google_id,omitempty"`

	UserRole   UserRole   `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role" validate:"omitempty,oneof=student tutor admin super_admin"`
	UserStatus UserStatus `gorm:"column:user_status;type:varchar(20);not null;default:'active'" json:"user_status" validate:"omitempty,oneof=active inactive suspended"`

	UserPhone       *string        `gorm:"column:user_phone;size:30" json:"user_phone,omitempty"`
	UserAvatarURL   *string        `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`
	UserBio         *string        `gorm:"column:user_bio;type:text" json:"user_bio,omitempty"`
	UserPreferences datatypes.JSON `gorm:"column:user_preferences;type:jsonb" json:"user_preferences,omitempty"`

	UserLastLoginAt *time.Time     `gorm:"column:user_last_login_at;type:timestamptz" json:"user_last_login_at,omitempty"`
	UserCreatedAt   time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt   time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt   gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.UserRole == "" {
		u.UserRole = UserRoleStudent
	}
	if u.UserStatus == "" {
		u.UserStatus = UserStatusActive
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// StampLastLogin dipanggil auth service setiap login sukses.
func (u *UserModel) StampLastLogin(db *gorm.DB) error {
	now := time.Now()
	u.UserLastLoginAt = &now
	return db.Model(&UserModel{}).
		Where("user_id = ?", u.UserID).
		Update("user_last_login_at", now).Error
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		msg := ""
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + ": wajib diisi. "
			case "email":
				msg += fieldErr.Field() + ": format email tidak valid. "
			case "min":
				msg += fieldErr.Field() + ": minimal " + fieldErr.Param() + " karakter. "
			case "max":
				msg += fieldErr.Field() + ": maksimal " + fieldErr.Param() + " karakter. "
			case "oneof":
				msg += fieldErr.Field() + ": harus salah satu dari " + fieldErr.Param() + ". "
			default:
				msg += fieldErr.Field() + ": format tidak valid. "
			}
		}
		return errors.New(msg)
	}
	return err
}
