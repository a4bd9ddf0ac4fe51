package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/home/notifications/model"
	sessionModel "tutorku_backend/internals/features/sessions/sessions/model"
)

// Notifikasi bersifat best-effort: kegagalan hanya dicatat, TIDAK pernah
// menggagalkan mutasi yang memicunya. Tidak ada retry queue.

const defaultNotificationTTL = 30 * 24 * time.Hour

// NotifyUser mengirim satu notifikasi in-app ke user.
func NotifyUser(db *gorm.DB, userID uuid.UUID, ntype model.NotificationType, title, body string) {
	expires := time.Now().Add(defaultNotificationTTL)
	n := model.NotificationModel{
		NotificationUserID:    userID,
		NotificationType:      ntype,
		NotificationTitle:     title,
		NotificationBody:      body,
		NotificationExpiresAt: &expires,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] Gagal kirim notifikasi %s ke %s: %v", ntype, userID, err)
	}
}

// NotifySessionStudents mengirim notifikasi ke semua student yang ter-enroll
// pada sebuah session (mis. saat session dibatalkan).
func NotifySessionStudents(db *gorm.DB, sessionID uuid.UUID, ntype model.NotificationType, title, body string) {
	var enrollments []sessionModel.SessionStudentModel
	if err := db.
		Where("session_student_session_id = ?", sessionID).
		Find(&enrollments).Error; err != nil {
		log.Printf("[WARN] Gagal ambil peserta session %s untuk notifikasi: %v", sessionID, err)
		return
	}
	for _, e := range enrollments {
		NotifyUser(db, e.SessionStudentStudentID, ntype, title, body)
	}
}
