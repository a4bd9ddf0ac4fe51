package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackModel: penilaian satu student untuk satu session, unik per pasangan.
type FeedbackModel struct {
	FeedbackID        uuid.UUID `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feedback_id"`
	FeedbackSessionID uuid.UUID `gorm:"column:feedback_session_id;type:uuid;not null;uniqueIndex:uq_feedback_session_student" json:"feedback_session_id"`
	FeedbackStudentID uuid.UUID `gorm:"column:feedback_student_id;type:uuid;not null;uniqueIndex:uq_feedback_session_student" json:"feedback_student_id"`

	FeedbackRating  int     `gorm:"column:feedback_rating;not null;check:feedback_rating >= 1 AND feedback_rating <= 5" json:"feedback_rating"`
	FeedbackComment *string `gorm:"column:feedback_comment;type:text" json:"feedback_comment,omitempty"`

	// lampiran bebas: tautan rekaman, skor latihan, dsb
	FeedbackEvidence datatypes.JSON `gorm:"column:feedback_evidence;type:jsonb" json:"feedback_evidence,omitempty"`

	FeedbackCreatedAt time.Time      `gorm:"column:feedback_created_at;autoCreateTime" json:"feedback_created_at"`
	FeedbackUpdatedAt time.Time      `gorm:"column:feedback_updated_at;autoUpdateTime" json:"feedback_updated_at"`
	FeedbackDeletedAt gorm.DeletedAt `gorm:"column:feedback_deleted_at;index" json:"-"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
