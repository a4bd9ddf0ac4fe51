package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeSystem           NotificationType = "system"
	NotificationTypeSessionCancelled NotificationType = "session_cancelled"
	NotificationTypeSessionReminder  NotificationType = "session_reminder"
	NotificationTypePaymentCompleted NotificationType = "payment_completed"
	NotificationTypePaymentOverdue   NotificationType = "payment_overdue"
	NotificationTypeAttendanceMarked NotificationType = "attendance_marked"
)

type NotificationModel struct {
	NotificationID     uuid.UUID        `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUserID uuid.UUID        `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType   NotificationType `gorm:"column:notification_type;type:varchar(40);not null;default:'system'" json:"notification_type"`

	NotificationTitle string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody  string         `gorm:"column:notification_body;type:text" json:"notification_body"`
	NotificationTags  pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags,omitempty"`

	NotificationIsRead    bool       `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationExpiresAt *time.Time `gorm:"column:notification_expires_at;type:timestamptz" json:"notification_expires_at,omitempty"`

	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"-"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
