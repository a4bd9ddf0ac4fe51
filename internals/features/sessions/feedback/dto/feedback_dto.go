package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tutorku_backend/internals/features/sessions/feedback/model"
	userDTO "tutorku_backend/internals/features/users/user/dto"
)

type SubmitFeedbackRequest struct {
	FeedbackRating   int            `json:"feedback_rating" validate:"required,min=1,max=5"`
	FeedbackComment  *string        `json:"feedback_comment" validate:"omitempty,max=2000"`
	FeedbackEvidence datatypes.JSON `json:"feedback_evidence"`
}

type FeedbackResponse struct {
	FeedbackID        uuid.UUID `json:"feedback_id"`
	FeedbackSessionID uuid.UUID `json:"feedback_session_id"`
	FeedbackStudentID uuid.UUID `json:"feedback_student_id"`

	FeedbackRating   int            `json:"feedback_rating"`
	FeedbackComment  *string        `json:"feedback_comment,omitempty"`
	FeedbackEvidence datatypes.JSON `json:"feedback_evidence,omitempty"`

	FeedbackStudent *userDTO.UserLiteResponse `json:"feedback_student,omitempty"`

	FeedbackCreatedAt time.Time `json:"feedback_created_at"`
}

// TutorRatingResponse: agregat rating seorang tutor lintas sesi.
type TutorRatingResponse struct {
	TutorID       uuid.UUID `json:"tutor_id"`
	AverageRating float64   `json:"average_rating"`
	FeedbackCount int64     `json:"feedback_count"`
}

func (r *SubmitFeedbackRequest) ToModel(sessionID, studentID uuid.UUID) *model.FeedbackModel {
	return &model.FeedbackModel{
		FeedbackSessionID: sessionID,
		FeedbackStudentID: studentID,
		FeedbackRating:    r.FeedbackRating,
		FeedbackComment:   r.FeedbackComment,
		FeedbackEvidence:  r.FeedbackEvidence,
	}
}

func ToFeedbackResponse(m *model.FeedbackModel) *FeedbackResponse {
	return &FeedbackResponse{
		FeedbackID:        m.FeedbackID,
		FeedbackSessionID: m.FeedbackSessionID,
		FeedbackStudentID: m.FeedbackStudentID,
		FeedbackRating:    m.FeedbackRating,
		FeedbackComment:   m.FeedbackComment,
		FeedbackEvidence:  m.FeedbackEvidence,
		FeedbackCreatedAt: m.FeedbackCreatedAt,
	}
}

func ToFeedbackResponseList(models []model.FeedbackModel) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToFeedbackResponse(&models[i]))
	}
	return out
}
