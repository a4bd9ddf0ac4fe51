package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "tutorku_backend/internals/features/home/notifications/model"
	notifService "tutorku_backend/internals/features/home/notifications/service"
	"tutorku_backend/internals/features/sessions/attendance/dto"
	"tutorku_backend/internals/features/sessions/attendance/model"
	sessionModel "tutorku_backend/internals/features/sessions/sessions/model"
	userDTO "tutorku_backend/internals/features/users/user/dto"
	userModel "tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// loadSessionForMarker: ambil session + guard tutor pemilik / admin.
func (ctrl *AttendanceController) loadSessionForMarker(c *fiber.Ctx) (*sessionModel.SessionModel, error) {
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
	role := helper.GetRoleFromToken(c)
	if !policy.CanOrOwner(role, policy.ResourceAttendance, policy.ActionMark, s.SessionTutorID == userID) ||
		(role == policy.RoleStudent) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Hanya tutor pemilik atau admin yang boleh menandai kehadiran")
	}
	return &s, nil
}

// 🟢 GET /api/u/sessions/:id/attendance — roster + proyeksi student
func (ctrl *AttendanceController) GetSessionRoster(c *fiber.Ctx) error {
	s, err := ctrl.loadSessionForMarker(c)
	if err != nil {
		return err // sudah JSON error di helper
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ?", s.SessionID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil kehadiran")
	}

	// Ambil proyeksi student sekali jalan, lalu tempel ke response.
	studentIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		studentIDs = append(studentIDs, r.AttendanceStudentID)
	}
	students := map[uuid.UUID]*userDTO.UserLiteResponse{}
	if len(studentIDs) > 0 {
		var users []userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("user_id", "user_name", "user_email", "user_avatar_url").
			Where("user_id IN ?", studentIDs).
			Find(&users).Error; err != nil {
			return helper.JsonDBError(c, err, "Gagal mengambil data student")
		}
		for i := range users {
			students[users[i].UserID] = userDTO.ToUserLiteResponse(&users[i])
		}
	}

	resp := dto.ToAttendanceResponseList(rows)
	for i := range resp {
		resp[i].AttendanceStudent = students[resp[i].AttendanceStudentID]
	}
	return helper.JsonOK(c, "Roster kehadiran berhasil diambil", resp)
}

// 🟡 POST /api/u/sessions/:id/attendance/:studentId/mark
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	s, err := ctrl.loadSessionForMarker(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("studentId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format student ID tidak valid")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	markerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var att model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ? AND attendance_student_id = ?", s.SessionID, studentID).
		First(&att).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil kehadiran")
	}

	now := time.Now()
	switch model.AttendanceStatus(req.Status) {
	case model.AttendanceStatusPresent:
		att.MarkPresent(markerID, now)
	case model.AttendanceStatusLate:
		att.MarkLate(markerID, now)
	case model.AttendanceStatusAbsent:
		att.MarkAbsent(markerID, now, req.Reason)
	case model.AttendanceStatusExcused:
		att.MarkExcused(markerID, now, req.Reason)
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&att).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan kehadiran")
	}

	// best-effort, tidak pernah menggagalkan request
	notifService.NotifyUser(ctrl.DB, studentID,
		notifModel.NotificationTypeAttendanceMarked,
		"Kehadiran dicatat",
		"Kehadiran Anda di sesi \""+s.SessionTitle+"\" ditandai: "+req.Status)

	return helper.JsonUpdated(c, "Kehadiran berhasil ditandai", dto.ToAttendanceResponse(&att))
}

// 🟡 POST /api/u/attendance/:id/checkout
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	att, err := ctrl.loadOwnAttendance(c)
	if err != nil {
		return err
	}

	if err := att.CheckOut(time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(att).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan check-out")
	}
	return helper.JsonUpdated(c, "Check-out berhasil", dto.ToAttendanceResponse(att))
}

// 🟡 POST /api/u/attendance/:id/duration — hitung durasi secara eksplisit
func (ctrl *AttendanceController) RecalculateDuration(c *fiber.Ctx) error {
	att, err := ctrl.loadOwnAttendance(c)
	if err != nil {
		return err
	}

	minutes, derr := att.CalculateDuration()
	if derr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, derr.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).Model(att).
		Update("attendance_duration", minutes).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan durasi")
	}
	return helper.JsonUpdated(c, "Durasi berhasil dihitung", fiber.Map{
		"attendance_id":       att.AttendanceID,
		"attendance_duration": minutes,
	})
}

// 🟢 GET /api/u/attendance/my  (+ filter rentang tanggal, urut kronologis)
func (ctrl *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ?", userID)
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if ts, perr := time.Parse("2006-01-02", from); perr == nil {
			q = q.Where("attendance_created_at >= ?", ts)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if ts, perr := time.Parse("2006-01-02", to); perr == nil {
			q = q.Where("attendance_created_at < ?", ts.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung kehadiran")
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil kehadiran")
	}

	return helper.JsonList(c, "Riwayat kehadiran berhasil diambil",
		dto.ToAttendanceResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// loadOwnAttendance: baris kehadiran milik student login (atau tutor sesinya / admin).
func (ctrl *AttendanceController) loadOwnAttendance(c *fiber.Ctx) (*model.AttendanceModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var att model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_id = ?", id).
		First(&att).Error; err != nil {
		return nil, helper.JsonDBError(c, err, "Gagal mengambil kehadiran")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	if att.AttendanceStudentID == userID || policy.IsElevated(helper.GetRoleFromToken(c)) {
		return &att, nil
	}

	// tutor pemilik session juga boleh
	var s sessionModel.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("session_id", "session_tutor_id").
		Where("session_id = ?", att.AttendanceSessionID).
		First(&s).Error; err == nil && s.SessionTutorID == userID {
		return &att, nil
	}
	return nil, helper.JsonError(c, fiber.StatusForbidden, "Tidak punya akses ke data kehadiran ini")
}
