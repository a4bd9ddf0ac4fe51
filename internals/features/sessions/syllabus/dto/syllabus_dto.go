package dto

import (
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/sessions/syllabus/model"
)

type CreateSyllabusRequest struct {
	SyllabusTopic           string  `json:"syllabus_topic" validate:"required,min=3,max=200"`
	SyllabusDescription     *string `json:"syllabus_description" validate:"omitempty,max=2000"`
	SyllabusDurationMinutes int     `json:"syllabus_duration_minutes" validate:"omitempty,min=0"`
	SyllabusOrderIndex      int     `json:"syllabus_order_index" validate:"omitempty,min=0"`
}

type UpdateSyllabusRequest struct {
	SyllabusTopic           *string `json:"syllabus_topic" validate:"omitempty,min=3,max=200"`
	SyllabusDescription     *string `json:"syllabus_description" validate:"omitempty,max=2000"`
	SyllabusDurationMinutes *int    `json:"syllabus_duration_minutes" validate:"omitempty,min=0"`
	SyllabusOrderIndex      *int    `json:"syllabus_order_index" validate:"omitempty,min=0"`
	SyllabusIsCompleted     *bool   `json:"syllabus_is_completed"`
}

type SyllabusResponse struct {
	SyllabusID              uuid.UUID `json:"syllabus_id"`
	SyllabusSessionID       uuid.UUID `json:"syllabus_session_id"`
	SyllabusTopic           string    `json:"syllabus_topic"`
	SyllabusDescription     *string   `json:"syllabus_description,omitempty"`
	SyllabusDurationMinutes int       `json:"syllabus_duration_minutes"`
	SyllabusOrderIndex      int       `json:"syllabus_order_index"`
	SyllabusIsCompleted     bool      `json:"syllabus_is_completed"`
	SyllabusCreatedAt       time.Time `json:"syllabus_created_at"`
}

func (r *CreateSyllabusRequest) ToModel(sessionID uuid.UUID) *model.SyllabusModel {
	return &model.SyllabusModel{
		SyllabusSessionID:       sessionID,
		SyllabusTopic:           r.SyllabusTopic,
		SyllabusDescription:     r.SyllabusDescription,
		SyllabusDurationMinutes: r.SyllabusDurationMinutes,
		SyllabusOrderIndex:      r.SyllabusOrderIndex,
	}
}

func (r *UpdateSyllabusRequest) ApplyToModel(m *model.SyllabusModel) {
	if r.SyllabusTopic != nil {
		m.SyllabusTopic = *r.SyllabusTopic
	}
	if r.SyllabusDescription != nil {
		m.SyllabusDescription = r.SyllabusDescription
	}
	if r.SyllabusDurationMinutes != nil {
		m.SyllabusDurationMinutes = *r.SyllabusDurationMinutes
	}
	if r.SyllabusOrderIndex != nil {
		m.SyllabusOrderIndex = *r.SyllabusOrderIndex
	}
	if r.SyllabusIsCompleted != nil {
		m.SyllabusIsCompleted = *r.SyllabusIsCompleted
	}
}

func ToSyllabusResponse(m *model.SyllabusModel) *SyllabusResponse {
	return &SyllabusResponse{
		SyllabusID:              m.SyllabusID,
		SyllabusSessionID:       m.SyllabusSessionID,
		SyllabusTopic:           m.SyllabusTopic,
		SyllabusDescription:     m.SyllabusDescription,
		SyllabusDurationMinutes: m.SyllabusDurationMinutes,
		SyllabusOrderIndex:      m.SyllabusOrderIndex,
		SyllabusIsCompleted:     m.SyllabusIsCompleted,
		SyllabusCreatedAt:       m.SyllabusCreatedAt,
	}
}

func ToSyllabusResponseList(models []model.SyllabusModel) []SyllabusResponse {
	out := make([]SyllabusResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToSyllabusResponse(&models[i]))
	}
	return out
}
