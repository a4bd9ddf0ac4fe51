package dto

import (
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================

type BroadcastNotificationRequest struct {
	NotificationType  string   `json:"notification_type" validate:"omitempty,max=40"`
	NotificationTitle string   `json:"notification_title" validate:"required,max=255"`
	NotificationBody  string   `json:"notification_body" validate:"required"`
	NotificationTags  []string `json:"notification_tags"`
	// role kosong = broadcast ke semua user aktif
	TargetRole string `json:"target_role" validate:"omitempty,oneof=student tutor admin super_admin"`
}

// ================== RESPONSE ==================

type NotificationResponse struct {
	NotificationID        uuid.UUID  `json:"notification_id"`
	NotificationType      string     `json:"notification_type"`
	NotificationTitle     string     `json:"notification_title"`
	NotificationBody      string     `json:"notification_body"`
	NotificationTags      []string   `json:"notification_tags,omitempty"`
	NotificationIsRead    bool       `json:"notification_is_read"`
	NotificationExpiresAt *time.Time `json:"notification_expires_at,omitempty"`
	NotificationCreatedAt string     `json:"notification_created_at"`
}

// ================ CONVERSION =================

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationType:      string(m.NotificationType),
		NotificationTitle:     m.NotificationTitle,
		NotificationBody:      m.NotificationBody,
		NotificationTags:      m.NotificationTags,
		NotificationIsRead:    m.NotificationIsRead,
		NotificationExpiresAt: m.NotificationExpiresAt,
		NotificationCreatedAt: m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
