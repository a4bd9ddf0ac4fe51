package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyllabusModel: satu butir materi terurut milik sebuah session.
type SyllabusModel struct {
	SyllabusID        uuid.UUID `gorm:"column:syllabus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"syllabus_id"`
	SyllabusSessionID uuid.UUID `gorm:"column:syllabus_session_id;type:uuid;not null;index" json:"syllabus_session_id"`

	SyllabusTopic       string  `gorm:"column:syllabus_topic;type:varchar(200);not null" json:"syllabus_topic"`
	SyllabusDescription *string `gorm:"column:syllabus_description;type:text" json:"syllabus_description,omitempty"`

	SyllabusDurationMinutes int  `gorm:"column:syllabus_duration_minutes;not null;default:0;check:syllabus_duration_minutes >= 0" json:"syllabus_duration_minutes"`
	SyllabusOrderIndex      int  `gorm:"column:syllabus_order_index;not null;default:0" json:"syllabus_order_index"`
	SyllabusIsCompleted     bool `gorm:"column:syllabus_is_completed;not null;default:false" json:"syllabus_is_completed"`

	SyllabusCreatedAt time.Time      `gorm:"column:syllabus_created_at;autoCreateTime" json:"syllabus_created_at"`
	SyllabusUpdatedAt time.Time      `gorm:"column:syllabus_updated_at;autoUpdateTime" json:"syllabus_updated_at"`
	SyllabusDeletedAt gorm.DeletedAt `gorm:"column:syllabus_deleted_at;index" json:"-"`
}

func (SyllabusModel) TableName() string {
	return "syllabus"
}
