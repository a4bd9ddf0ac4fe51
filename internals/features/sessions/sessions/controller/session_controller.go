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
	"tutorku_backend/internals/features/sessions/sessions/dto"
	"tutorku_backend/internals/features/sessions/sessions/model"
	userDTO "tutorku_backend/internals/features/users/user/dto"
	userModel "tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

// loadSessionForOwner: ambil session + guard tutor pemilik / admin.
func (ctrl *SessionController) loadSessionForOwner(c *fiber.Ctx) (*model.SessionModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var s model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", id).
		First(&s).Error; err != nil {
		return nil, helper.JsonDBError(c, err, "Gagal mengambil session")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	if s.SessionTutorID != userID && !policy.IsElevated(helper.GetRoleFromToken(c)) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Hanya tutor pemilik atau admin yang boleh mengubah session ini")
	}
	return &s, nil
}

// 🟢 POST /api/u/sessions  (tutor/admin)
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	if !policy.Can(role, policy.ResourceSession, policy.ActionCreate) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya tutor atau admin yang boleh membuat session")
	}
	tutorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	s := req.ToModel(tutorID)
	if err := s.ValidateSchedule(time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(s).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan session")
	}
	return helper.JsonCreated(c, "Session berhasil dibuat", dto.ToSessionResponse(s))
}

// 🟢 GET /api/u/sessions  (+ filter tutor/status/rentang tanggal, pagination)
func (ctrl *SessionController) ListSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.SessionModel{})
	if tutorID := strings.TrimSpace(c.Query("tutor_id")); tutorID != "" {
		if id, perr := uuid.Parse(tutorID); perr == nil {
			q = q.Where("session_tutor_id = ?", id)
		}
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("session_status = ?", status)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if ts, perr := time.Parse("2006-01-02", from); perr == nil {
			q = q.Where("session_start_time >= ?", ts)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if ts, perr := time.Parse("2006-01-02", to); perr == nil {
			q = q.Where("session_start_time < ?", ts.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung session")
	}

	var sessions []model.SessionModel
	if err := q.Order("session_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sessions).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar session")
	}

	return helper.JsonList(c, "Daftar session berhasil diambil",
		dto.ToSessionResponseList(sessions),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/sessions/:id  (+ proyeksi tutor)
func (ctrl *SessionController) GetSessionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var s model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", id).
		First(&s).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil session")
	}

	resp := dto.ToSessionResponse(&s)

	var tutor userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("user_id", "user_name", "user_email", "user_avatar_url").
		Where("user_id = ?", s.SessionTutorID).
		First(&tutor).Error; err == nil {
		resp.SessionTutor = userDTO.ToUserLiteResponse(&tutor)
	}

	return helper.JsonOK(c, "Session berhasil diambil", resp)
}

// 🟡 PUT /api/u/sessions/:id  (tutor pemilik/admin)
func (ctrl *SessionController) UpdateSession(c *fiber.Ctx) error {
	s, err := ctrl.loadSessionForOwner(c)
	if err != nil {
		return err // sudah JSON error di helper
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(s)
	// kapasitas tidak boleh turun di bawah peserta yang sudah ter-enroll
	if s.SessionMaxStudents < s.SessionCurrentStudents {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kapasitas tidak boleh lebih kecil dari jumlah peserta saat ini")
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(s).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan session")
	}
	return helper.JsonUpdated(c, "Session berhasil diperbarui", dto.ToSessionResponse(s))
}

// 🟡 POST /api/u/sessions/:id/reschedule
func (ctrl *SessionController) RescheduleSession(c *fiber.Ctx) error {
	s, err := ctrl.loadSessionForOwner(c)
	if err != nil {
		return err
	}

	var req dto.RescheduleSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !s.CanTransitionTo(model.SessionStatusRescheduled) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session dengan status "+string(s.SessionStatus)+" tidak bisa dijadwal ulang")
	}

	s.SessionStartTime = req.SessionStartTime
	s.SessionEndTime = req.SessionEndTime
	if err := s.ValidateSchedule(time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	s.ComputeDurationMinutes()
	s.SessionStatus = model.SessionStatusRescheduled

	if err := ctrl.DB.WithContext(c.Context()).Save(s).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan jadwal baru")
	}

	notifService.NotifySessionStudents(ctrl.DB, s.SessionID,
		notifModel.NotificationTypeSessionReminder,
		"Jadwal sesi berubah",
		"Sesi \""+s.SessionTitle+"\" dijadwal ulang ke "+s.SessionStartTime.Format("2006-01-02 15:04"))

	return helper.JsonUpdated(c, "Session berhasil dijadwal ulang", dto.ToSessionResponse(s))
}

// 🟡 POST /api/u/sessions/:id/start  (scheduled → ongoing)
func (ctrl *SessionController) StartSession(c *fiber.Ctx) error {
	return ctrl.transition(c, model.SessionStatusOngoing, "Session dimulai")
}

// 🟡 POST /api/u/sessions/:id/complete — tanpa finalisasi kehadiran otomatis
func (ctrl *SessionController) CompleteSession(c *fiber.Ctx) error {
	return ctrl.transition(c, model.SessionStatusCompleted, "Session selesai")
}

// 🛑 POST /api/u/sessions/:id/cancel — set status lalu notifikasi peserta (best-effort)
func (ctrl *SessionController) CancelSession(c *fiber.Ctx) error {
	s, err := ctrl.loadSessionForOwner(c)
	if err != nil {
		return err
	}

	if !s.CanTransitionTo(model.SessionStatusCancelled) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session dengan status "+string(s.SessionStatus)+" tidak bisa dibatalkan")
	}

	s.SessionStatus = model.SessionStatusCancelled
	if err := ctrl.DB.WithContext(c.Context()).Model(s).
		Update("session_status", model.SessionStatusCancelled).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membatalkan session")
	}

	notifService.NotifySessionStudents(ctrl.DB, s.SessionID,
		notifModel.NotificationTypeSessionCancelled,
		"Sesi dibatalkan",
		"Sesi \""+s.SessionTitle+"\" pada "+s.SessionStartTime.Format("2006-01-02 15:04")+" dibatalkan")

	return helper.JsonUpdated(c, "Session berhasil dibatalkan", dto.ToSessionResponse(s))
}

func (ctrl *SessionController) transition(c *fiber.Ctx, next model.SessionStatus, okMsg string) error {
	s, err := ctrl.loadSessionForOwner(c)
	if err != nil {
		return err
	}

	if !s.CanTransitionTo(next) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Transisi "+string(s.SessionStatus)+" → "+string(next)+" tidak diizinkan")
	}

	s.SessionStatus = next
	if err := ctrl.DB.WithContext(c.Context()).Model(s).
		Update("session_status", next).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui status session")
	}
	return helper.JsonUpdated(c, okMsg, dto.ToSessionResponse(s))
}
