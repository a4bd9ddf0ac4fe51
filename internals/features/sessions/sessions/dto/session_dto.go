package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tutorku_backend/internals/features/sessions/sessions/model"
	userDTO "tutorku_backend/internals/features/users/user/dto"
)

// ================== REQUEST ==================

type CreateSessionRequest struct {
	SessionTitle       string          `json:"session_title" validate:"required,min=3,max=255"`
	SessionDescription *string         `json:"session_description"`
	SessionStartTime   time.Time       `json:"session_start_time" validate:"required"`
	SessionEndTime     time.Time       `json:"session_end_time" validate:"required"`
	SessionMaxStudents int             `json:"session_max_students" validate:"required,min=1,max=500"`
	SessionPrice       float64         `json:"session_price" validate:"omitempty,min=0"`
	SessionCurrency    string          `json:"session_currency" validate:"omitempty,len=3"`
	SessionMaterials   *datatypes.JSON `json:"session_materials"`
	SessionTags        []string        `json:"session_tags"`
}

type UpdateSessionRequest struct {
	SessionTitle       *string         `json:"session_title" validate:"omitempty,min=3,max=255"`
	SessionDescription *string         `json:"session_description"`
	SessionMaxStudents *int            `json:"session_max_students" validate:"omitempty,min=1,max=500"`
	SessionPrice       *float64        `json:"session_price" validate:"omitempty,min=0"`
	SessionMaterials   *datatypes.JSON `json:"session_materials"`
	SessionTags        []string        `json:"session_tags"`
}

type RescheduleSessionRequest struct {
	SessionStartTime time.Time `json:"session_start_time" validate:"required"`
	SessionEndTime   time.Time `json:"session_end_time" validate:"required"`
}

// ================== RESPONSE ==================

type SessionResponse struct {
	SessionID              uuid.UUID                 `json:"session_id"`
	SessionTutorID         uuid.UUID                 `json:"session_tutor_id"`
	SessionTutor           *userDTO.UserLiteResponse `json:"session_tutor,omitempty"`
	SessionTitle           string                    `json:"session_title"`
	SessionDescription     *string                   `json:"session_description,omitempty"`
	SessionStartTime       time.Time                 `json:"session_start_time"`
	SessionEndTime         time.Time                 `json:"session_end_time"`
	SessionDurationMinutes int                       `json:"session_duration_minutes"`
	SessionMaxStudents     int                       `json:"session_max_students"`
	SessionCurrentStudents int                       `json:"session_current_students"`
	SessionCanJoin         bool                      `json:"session_can_join"`
	SessionStatus          string                    `json:"session_status"`
	SessionPrice           float64                   `json:"session_price"`
	SessionCurrency        string                    `json:"session_currency"`
	SessionMaterials       datatypes.JSON            `json:"session_materials,omitempty"`
	SessionTags            []string                  `json:"session_tags,omitempty"`
	SessionCreatedAt       string                    `json:"session_created_at"`
}

// ================ CONVERSION =================

func (r *CreateSessionRequest) ToModel(tutorID uuid.UUID) *model.SessionModel {
	m := &model.SessionModel{
		SessionTutorID:     tutorID,
		SessionTitle:       r.SessionTitle,
		SessionDescription: r.SessionDescription,
		SessionStartTime:   r.SessionStartTime,
		SessionEndTime:     r.SessionEndTime,
		SessionMaxStudents: r.SessionMaxStudents,
		SessionPrice:       r.SessionPrice,
		SessionCurrency:    r.SessionCurrency,
		SessionTags:        r.SessionTags,
		SessionStatus:      model.SessionStatusScheduled,
	}
	if r.SessionCurrency == "" {
		m.SessionCurrency = "IDR"
	}
	if r.SessionMaterials != nil {
		m.SessionMaterials = *r.SessionMaterials
	}
	m.ComputeDurationMinutes()
	return m
}

func (r *UpdateSessionRequest) ApplyToModel(m *model.SessionModel) {
	if r.SessionTitle != nil {
		m.SessionTitle = *r.SessionTitle
	}
	if r.SessionDescription != nil {
		m.SessionDescription = r.SessionDescription
	}
	if r.SessionMaxStudents != nil {
		m.SessionMaxStudents = *r.SessionMaxStudents
	}
	if r.SessionPrice != nil {
		m.SessionPrice = *r.SessionPrice
	}
	if r.SessionMaterials != nil {
		m.SessionMaterials = *r.SessionMaterials
	}
	if r.SessionTags != nil {
		m.SessionTags = r.SessionTags
	}
}

func ToSessionResponse(m *model.SessionModel) *SessionResponse {
	return &SessionResponse{
		SessionID:              m.SessionID,
		SessionTutorID:         m.SessionTutorID,
		SessionTitle:           m.SessionTitle,
		SessionDescription:     m.SessionDescription,
		SessionStartTime:       m.SessionStartTime,
		SessionEndTime:         m.SessionEndTime,
		SessionDurationMinutes: m.SessionDurationMinutes,
		SessionMaxStudents:     m.SessionMaxStudents,
		SessionCurrentStudents: m.SessionCurrentStudents,
		SessionCanJoin:         m.CanJoin(),
		SessionStatus:          string(m.SessionStatus),
		SessionPrice:           m.SessionPrice,
		SessionCurrency:        m.SessionCurrency,
		SessionMaterials:       m.SessionMaterials,
		SessionTags:            m.SessionTags,
		SessionCreatedAt:       m.SessionCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToSessionResponseList(models []model.SessionModel) []SessionResponse {
	result := make([]SessionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToSessionResponse(&models[i]))
	}
	return result
}
