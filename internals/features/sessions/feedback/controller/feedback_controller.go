package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/sessions/feedback/dto"
	"tutorku_backend/internals/features/sessions/feedback/model"
	sessionModel "tutorku_backend/internals/features/sessions/sessions/model"
	userDTO "tutorku_backend/internals/features/users/user/dto"
	userModel "tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

type FeedbackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/u/sessions/:id/feedback — student yang ter-enroll, sekali per sesi
func (ctrl *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	if !policy.Can(role, policy.ResourceFeedback, policy.ActionCreate) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya student yang boleh mengirim feedback")
	}

	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// hanya peserta sesi yang boleh menilai
	var enrolled int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&sessionModel.SessionStudentModel{}).
		Where("session_student_session_id = ? AND session_student_student_id = ?", sessionID, studentID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa enrollment")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Kamu tidak terdaftar di session ini")
	}

	fb := req.ToModel(sessionID, studentID)
	if err := ctrl.DB.WithContext(c.Context()).Create(fb).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kamu sudah mengirim feedback untuk session ini")
		}
		return helper.JsonDBError(c, err, "Gagal menyimpan feedback")
	}
	return helper.JsonCreated(c, "Feedback berhasil dikirim", dto.ToFeedbackResponse(fb))
}

// 🟢 GET /api/u/sessions/:id/feedback — tutor pemilik / admin, plus proyeksi student
func (ctrl *FeedbackController) GetSessionFeedback(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var s sessionModel.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("session_id", "session_tutor_id").
		Where("session_id = ?", sessionID).
		First(&s).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil session")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role := helper.GetRoleFromToken(c)
	if !policy.CanOrOwner(role, policy.ResourceFeedback, policy.ActionList, s.SessionTutorID == userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya tutor pemilik atau admin yang boleh melihat feedback sesi")
	}

	var items []model.FeedbackModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("feedback_session_id = ?", sessionID).
		Order("feedback_created_at ASC").
		Find(&items).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil feedback")
	}

	responses := dto.ToFeedbackResponseList(items)
	if len(items) > 0 {
		ids := make([]uuid.UUID, 0, len(items))
		for i := range items {
			ids = append(ids, items[i].FeedbackStudentID)
		}
		var students []userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("user_id", "user_name", "user_email", "user_avatar_url").
			Where("user_id IN ?", ids).
			Find(&students).Error; err == nil {
			byID := make(map[uuid.UUID]*userModel.UserModel, len(students))
			for i := range students {
				byID[students[i].UserID] = &students[i]
			}
			for i := range responses {
				if u, ok := byID[responses[i].FeedbackStudentID]; ok {
					responses[i].FeedbackStudent = userDTO.ToUserLiteResponse(u)
				}
			}
		}
	}

	return helper.JsonOK(c, "Feedback sesi berhasil diambil", responses)
}

// 🟢 GET /api/u/tutors/:id/rating — rata-rata rating lintas sesi milik tutor
func (ctrl *FeedbackController) GetTutorRating(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var agg struct {
		AverageRating float64
		FeedbackCount int64
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FeedbackModel{}).
		Select("COALESCE(AVG(feedback_rating), 0) AS average_rating, COUNT(*) AS feedback_count").
		Joins("JOIN sessions ON sessions.session_id = feedback.feedback_session_id").
		Where("sessions.session_tutor_id = ? AND feedback.feedback_deleted_at IS NULL", tutorID).
		Scan(&agg).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung rating tutor")
	}

	return helper.JsonOK(c, "Rating tutor berhasil diambil", dto.TutorRatingResponse{
		TutorID:       tutorID,
		AverageRating: agg.AverageRating,
		FeedbackCount: agg.FeedbackCount,
	})
}
