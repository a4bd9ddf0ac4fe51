package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"tutorku_backend/internals/features/home/notifications/model"
)

// StartNotificationCleanupScheduler menghapus (soft delete) notifikasi yang
// sudah lewat expires_at. Pola sama dengan pembersihan token blacklist.
func StartNotificationCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan notifikasi kadaluarsa...")

			res := db.
				Where("notification_expires_at IS NOT NULL AND notification_expires_at < ?", time.Now()).
				Delete(&model.NotificationModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus notifikasi kadaluarsa: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d notifikasi kadaluarsa dihapus", res.RowsAffected)
			}

			time.Sleep(6 * time.Hour)
		}
	}()
}
