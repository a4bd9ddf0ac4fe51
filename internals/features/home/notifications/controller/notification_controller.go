package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/home/notifications/dto"
	"tutorku_backend/internals/features/home/notifications/model"
	"tutorku_backend/internals/features/home/notifications/service"
	userModel "tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/u/notifications  (+ pagination; hanya yang belum expired)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Where("notification_expires_at IS NULL OR notification_expires_at > ?", now)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung notifikasi")
	}

	var notifs []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil notifikasi")
	}

	return helper.JsonList(c, "Notifikasi berhasil diambil",
		dto.ToNotificationResponseList(notifs),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/notifications/unread-count
func (ctrl *NotificationController) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Where("notification_expires_at IS NULL OR notification_expires_at > ?", time.Now()).
		Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung notifikasi")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"unread_count": count})
}

// 🟡 POST /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai terbaca", nil)
}

// 🟡 POST /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal memperbarui notifikasi")
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai terbaca", fiber.Map{
		"updated": res.RowsAffected,
	})
}

// 🟢 POST /api/a/notifications/broadcast  (admin)
func (ctrl *NotificationController) Broadcast(c *fiber.Ctx) error {
	var req dto.BroadcastNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("user_status = ?", userModel.UserStatusActive)
	if req.TargetRole != "" {
		q = q.Where("user_role = ?", req.TargetRole)
	}

	var userIDs []uuid.UUID
	if err := q.Pluck("user_id", &userIDs).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar penerima")
	}

	ntype := model.NotificationType(req.NotificationType)
	if ntype == "" {
		ntype = model.NotificationTypeSystem
	}
	for _, id := range userIDs {
		service.NotifyUser(ctrl.DB, id, ntype, req.NotificationTitle, req.NotificationBody)
	}
	log.Printf("[INFO] Broadcast notifikasi ke %d user", len(userIDs))

	return helper.JsonCreated(c, "Notifikasi berhasil dikirim", fiber.Map{
		"recipients": len(userIDs),
	})
}
