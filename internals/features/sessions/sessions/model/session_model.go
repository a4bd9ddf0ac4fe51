package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ================================
   ENUM mirror (harus cocok dgn DB)
================================ */

type SessionStatus string

const (
	SessionStatusScheduled   SessionStatus = "scheduled"
	SessionStatusOngoing     SessionStatus = "ongoing"
	SessionStatusCompleted   SessionStatus = "completed"
	SessionStatusCancelled   SessionStatus = "cancelled"
	SessionStatusRescheduled SessionStatus = "rescheduled"
)

/* ================================
   MODEL: sessions
================================ */

type SessionModel struct {
	SessionID      uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`
	SessionTutorID uuid.UUID `gorm:"column:session_tutor_id;type:uuid;not null;index" json:"session_tutor_id"`

	SessionTitle       string  `gorm:"column:session_title;type:varchar(255);not null" json:"session_title"`
	SessionDescription *string `gorm:"column:session_description;type:text" json:"session_description,omitempty"`

	SessionStartTime       time.Time `gorm:"column:session_start_time;type:timestamptz;not null" json:"session_start_time"`
	SessionEndTime         time.Time `gorm:"column:session_end_time;type:timestamptz;not null" json:"session_end_time"`
	SessionDurationMinutes int       `gorm:"column:session_duration_minutes;not null" json:"session_duration_minutes"`

	SessionMaxStudents     int `gorm:"column:session_max_students;not null;default:1;check:session_max_students>0" json:"session_max_students"`
	SessionCurrentStudents int `gorm:"column:session_current_students;not null;default:0;check:session_current_students>=0" json:"session_current_students"`

	SessionStatus SessionStatus `gorm:"column:session_status;type:varchar(20);not null;default:'scheduled'" json:"session_status"`

	SessionPrice    float64 `gorm:"column:session_price;type:numeric(12,2);not null;default:0;check:session_price>=0" json:"session_price"`
	SessionCurrency string  `gorm:"column:session_currency;type:varchar(8);not null;default:'IDR'" json:"session_currency"`

	SessionMaterials datatypes.JSON `gorm:"column:session_materials;type:jsonb" json:"session_materials,omitempty"`
	SessionTags      pq.StringArray `gorm:"column:session_tags;type:text[]" json:"session_tags,omitempty"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"-"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

/* ================================
   LIFECYCLE HELPERS
================================ */

// CanJoin: hanya sesi berstatus scheduled yang masih punya kursi.
func (s *SessionModel) CanJoin() bool {
	return s.SessionStatus == SessionStatusScheduled &&
		s.SessionCurrentStudents < s.SessionMaxStudents
}

func (s *SessionModel) IsFull() bool {
	return s.SessionCurrentStudents >= s.SessionMaxStudents
}

// ValidateSchedule: invariant jadwal pada saat pembuatan.
// end > start, start masih di masa depan.
func (s *SessionModel) ValidateSchedule(now time.Time) error {
	if !s.SessionEndTime.After(s.SessionStartTime) {
		return errors.New("waktu selesai harus setelah waktu mulai")
	}
	if !s.SessionStartTime.After(now) {
		return errors.New("waktu mulai harus di masa depan")
	}
	return nil
}

// ComputeDurationMinutes mengisi session_duration_minutes dari jendela waktu.
func (s *SessionModel) ComputeDurationMinutes() {
	s.SessionDurationMinutes = int(s.SessionEndTime.Sub(s.SessionStartTime).Minutes())
}

// CanTransitionTo: guard perpindahan status lifecycle sesi.
func (s *SessionModel) CanTransitionTo(next SessionStatus) bool {
	switch next {
	case SessionStatusOngoing:
		return s.SessionStatus == SessionStatusScheduled || s.SessionStatus == SessionStatusRescheduled
	case SessionStatusCompleted:
		return s.SessionStatus == SessionStatusScheduled || s.SessionStatus == SessionStatusOngoing
	case SessionStatusCancelled:
		// cancel boleh dari status apa pun kecuali yang sudah final
		return s.SessionStatus != SessionStatusCompleted && s.SessionStatus != SessionStatusCancelled
	case SessionStatusRescheduled, SessionStatusScheduled:
		return s.SessionStatus == SessionStatusScheduled || s.SessionStatus == SessionStatusRescheduled
	default:
		return false
	}
}
