package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "tutorku_backend/internals/features/home/notifications/model"
	notifService "tutorku_backend/internals/features/home/notifications/service"
	attendanceModel "tutorku_backend/internals/features/sessions/attendance/model"
	"tutorku_backend/internals/features/sessions/sessions/dto"
	"tutorku_backend/internals/features/sessions/sessions/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

// 🟢 POST /api/u/sessions/:id/join
//
// Klaim kursi lewat satu UPDATE bersyarat supaya dua student yang join
// bersamaan tidak pernah melewati kapasitas. Enrollment + baris kehadiran
// pending dibuat dalam transaksi yang sama.
func (ctrl *SessionController) JoinSession(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	if !policy.Can(role, policy.ResourceSession, policy.ActionJoin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya student yang boleh bergabung ke session")
	}

	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var session model.SessionModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// klaim kursi: gagal diam-diam kalau penuh / bukan scheduled
		res := tx.Model(&model.SessionModel{}).
			Where("session_id = ? AND session_status = ? AND session_current_students < session_max_students",
				sessionID, model.SessionStatusScheduled).
			Update("session_current_students", gorm.Expr("session_current_students + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// bedakan: tidak ada, status salah, atau penuh
			if err := tx.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
				return err // gorm.ErrRecordNotFound → 404 di JsonDBError
			}
			if session.SessionStatus != model.SessionStatusScheduled {
				return fiber.NewError(fiber.StatusBadRequest, "Session tidak dalam status scheduled")
			}
			return fiber.NewError(fiber.StatusConflict, "Session sudah penuh")
		}

		enrollment := &model.SessionStudentModel{
			SessionStudentSessionID: sessionID,
			SessionStudentStudentID: studentID,
		}
		if err := tx.Create(enrollment).Error; err != nil {
			return err // unique violation (sudah join) → 409 di JsonDBError
		}

		attendance := &attendanceModel.AttendanceModel{
			AttendanceSessionID: sessionID,
			AttendanceStudentID: studentID,
			AttendanceStatus:    attendanceModel.AttendanceStatusPending,
		}
		if err := tx.Create(attendance).Error; err != nil {
			return err
		}

		return tx.Where("session_id = ?", sessionID).First(&session).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Kamu sudah terdaftar di session ini")
		}
		return helper.JsonDBError(c, txErr, "Gagal bergabung ke session")
	}

	notifService.NotifyUser(ctrl.DB, session.SessionTutorID,
		notifModel.NotificationTypeSystem,
		"Peserta baru",
		"Ada peserta baru di sesi \""+session.SessionTitle+"\"")

	return helper.JsonOK(c, "Berhasil bergabung ke session", dto.ToSessionResponse(&session))
}

// 🟡 POST /api/u/sessions/:id/leave
//
// Kebalikan join dalam satu transaksi: hapus enrollment, kembalikan kursi,
// dan buang baris kehadiran yang masih pending supaya join ulang tetap bisa.
func (ctrl *SessionController) LeaveSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var session model.SessionModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("session_student_session_id = ? AND session_student_student_id = ?",
			sessionID, studentID).
			Delete(&model.SessionStudentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Kamu tidak terdaftar di session ini")
		}

		if err := tx.Model(&model.SessionModel{}).
			Where("session_id = ? AND session_current_students > 0", sessionID).
			Update("session_current_students", gorm.Expr("session_current_students - 1")).Error; err != nil {
			return err
		}

		if err := tx.Where("attendance_session_id = ? AND attendance_student_id = ? AND attendance_status = ?",
			sessionID, studentID, attendanceModel.AttendanceStatusPending).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}

		return tx.Where("session_id = ?", sessionID).First(&session).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonDBError(c, txErr, "Gagal keluar dari session")
	}

	return helper.JsonOK(c, "Berhasil keluar dari session", dto.ToSessionResponse(&session))
}
