package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "tutorku_backend/internals/features/sessions/sessions/model"
	"tutorku_backend/internals/features/sessions/syllabus/dto"
	"tutorku_backend/internals/features/sessions/syllabus/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

type SyllabusController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSyllabusController(db *gorm.DB) *SyllabusController {
	return &SyllabusController{DB: db, Validate: validator.New()}
}

// loadSessionForTutor: ambil session dari :id + guard tutor pemilik / admin.
func (ctrl *SyllabusController) loadSessionForTutor(c *fiber.Ctx) (*sessionModel.SessionModel, error) {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var s sessionModel.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", sessionID).
		First(&s).Error; err != nil {
		return nil, helper.JsonDBError(c, err, "Gagal mengambil session")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	if s.SessionTutorID != userID && !policy.IsElevated(helper.GetRoleFromToken(c)) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Hanya tutor pemilik atau admin yang boleh mengubah silabus")
	}
	return &s, nil
}

// 🟢 POST /api/u/sessions/:id/syllabus
func (ctrl *SyllabusController) CreateSyllabusItem(c *fiber.Ctx) error {
	s, err := ctrl.loadSessionForTutor(c)
	if err != nil {
		return err
	}

	var req dto.CreateSyllabusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item := req.ToModel(s.SessionID)
	if err := ctrl.DB.WithContext(c.Context()).Create(item).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan butir silabus")
	}
	return helper.JsonCreated(c, "Butir silabus berhasil dibuat", dto.ToSyllabusResponse(item))
}

// 🟢 GET /api/u/sessions/:id/syllabus — terurut by order index
func (ctrl *SyllabusController) GetSessionSyllabus(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var items []model.SyllabusModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("syllabus_session_id = ?", sessionID).
		Order("syllabus_order_index ASC, syllabus_created_at ASC").
		Find(&items).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil silabus")
	}

	return helper.JsonOK(c, "Silabus berhasil diambil", dto.ToSyllabusResponseList(items))
}

// 🟡 PUT /api/u/syllabus/:itemId
func (ctrl *SyllabusController) UpdateSyllabusItem(c *fiber.Ctx) error {
	item, err := ctrl.loadSyllabusItemForTutor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSyllabusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(item)
	if err := ctrl.DB.WithContext(c.Context()).Save(item).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan butir silabus")
	}
	return helper.JsonUpdated(c, "Butir silabus berhasil diperbarui", dto.ToSyllabusResponse(item))
}

// 🔴 DELETE /api/u/syllabus/:itemId
func (ctrl *SyllabusController) DeleteSyllabusItem(c *fiber.Ctx) error {
	item, err := ctrl.loadSyllabusItemForTutor(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(item).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghapus butir silabus")
	}
	return helper.JsonDeleted(c, "Butir silabus berhasil dihapus", fiber.Map{"syllabus_id": item.SyllabusID})
}

func (ctrl *SyllabusController) loadSyllabusItemForTutor(c *fiber.Ctx) (*model.SyllabusModel, error) {
	itemID, err := uuid.Parse(strings.TrimSpace(c.Params("itemId")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var item model.SyllabusModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("syllabus_id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, helper.JsonDBError(c, err, "Gagal mengambil butir silabus")
	}

	var s sessionModel.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("session_id", "session_tutor_id").
		Where("session_id = ?", item.SyllabusSessionID).
		First(&s).Error; err != nil {
		return nil, helper.JsonDBError(c, err, "Gagal mengambil session")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	if s.SessionTutorID != userID && !policy.IsElevated(helper.GetRoleFromToken(c)) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Hanya tutor pemilik atau admin yang boleh mengubah silabus")
	}
	return &item, nil
}
