package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/users/user/dto"
	"tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/u/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "Profil berhasil diambil", dto.ToUserResponse(&user))
}

// 🟡 PUT /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil profil")
	}

	req.ApplyToModel(&user)
	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Printf("[ERROR] Gagal update profil %s: %v", userID, err)
		return helper.JsonDBError(c, err, "Gagal menyimpan profil")
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUserResponse(&user))
}

// 🟢 GET /api/a/users  (admin; + pagination & filter role/status/q)
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	if !policy.Can(helper.GetRoleFromToken(c), policy.ResourceUser, policy.ActionList) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak punya akses untuk melihat daftar user")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("user_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar user")
	}

	return helper.JsonList(c, "Daftar user berhasil diambil",
		dto.ToUserResponseList(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/users/:id  (admin)
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	if !policy.IsElevated(helper.GetRoleFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak punya akses")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		First(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "User berhasil diambil", dto.ToUserResponse(&user))
}

// 🟡 PATCH /api/a/users/:id/status  (admin; soft status saja, tidak ada hard delete)
func (ctrl *UserController) UpdateUserStatus(c *fiber.Ctx) error {
	if !policy.IsElevated(helper.GetRoleFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak punya akses")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("user_status", req.UserStatus)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal memperbarui status user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Status user berhasil diperbarui", fiber.Map{
		"user_id":     id,
		"user_status": req.UserStatus,
	})
}
