package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionStudentModel: relasi enrollment student ↔ session.
// Unik per pasangan — constraint DB adalah safety net terakhir untuk join ganda.
type SessionStudentModel struct {
	SessionStudentID        uuid.UUID `gorm:"column:session_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_student_id"`
	SessionStudentSessionID uuid.UUID `gorm:"column:session_student_session_id;type:uuid;not null;uniqueIndex:uq_session_student" json:"session_student_session_id"`
	SessionStudentStudentID uuid.UUID `gorm:"column:session_student_student_id;type:uuid;not null;uniqueIndex:uq_session_student" json:"session_student_student_id"`

	SessionStudentEnrolledAt time.Time `gorm:"column:session_student_enrolled_at;autoCreateTime" json:"session_student_enrolled_at"`
}

func (SessionStudentModel) TableName() string {
	return "session_students"
}
