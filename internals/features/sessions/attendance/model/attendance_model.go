package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

/* ================================
   ENUM mirror (harus cocok dgn DB)
================================ */

type AttendanceStatus string

const (
	AttendanceStatusPending AttendanceStatus = "pending"
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

/* ================================
   MODEL: attendance
   Satu baris per (session, student) — dijaga unique index DB.
================================ */

type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;not null;uniqueIndex:uq_attendance_session_student" json:"attendance_session_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_session_student" json:"attendance_student_id"`

	AttendanceStatus AttendanceStatus `gorm:"column:attendance_status;type:varchar(20);not null;default:'pending'" json:"attendance_status"`

	AttendanceCheckInTime  *time.Time `gorm:"column:attendance_check_in_time;type:timestamptz" json:"attendance_check_in_time,omitempty"`
	AttendanceCheckOutTime *time.Time `gorm:"column:attendance_check_out_time;type:timestamptz" json:"attendance_check_out_time,omitempty"`

	// Durasi menit; hanya berarti kalau check-in & check-out terisi.
	AttendanceDuration *int `gorm:"column:attendance_duration" json:"attendance_duration,omitempty"`

	AttendanceReason   *string    `gorm:"column:attendance_reason;type:text" json:"attendance_reason,omitempty"`
	AttendanceMarkedBy *uuid.UUID `gorm:"column:attendance_marked_by;type:uuid" json:"attendance_marked_by,omitempty"`
	AttendanceMarkedAt *time.Time `gorm:"column:attendance_marked_at;type:timestamptz" json:"attendance_marked_at,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

/* ================================
   LIFECYCLE HELPERS
   Setiap mark men-stamp marked_by & marked_at.
================================ */

func (a *AttendanceModel) mark(status AttendanceStatus, markedBy uuid.UUID, now time.Time) {
	a.AttendanceStatus = status
	a.AttendanceMarkedBy = &markedBy
	a.AttendanceMarkedAt = &now
}

// MarkPresent: hadir, check-in = sekarang.
func (a *AttendanceModel) MarkPresent(markedBy uuid.UUID, now time.Time) {
	a.mark(AttendanceStatusPresent, markedBy, now)
	a.AttendanceCheckInTime = &now
}

// MarkLate: terlambat tetap check-in = sekarang, kategori dibedakan.
func (a *AttendanceModel) MarkLate(markedBy uuid.UUID, now time.Time) {
	a.mark(AttendanceStatusLate, markedBy, now)
	a.AttendanceCheckInTime = &now
}

// MarkAbsent: tidak hadir, tanpa check-in; alasan opsional.
func (a *AttendanceModel) MarkAbsent(markedBy uuid.UUID, now time.Time, reason *string) {
	a.mark(AttendanceStatusAbsent, markedBy, now)
	a.AttendanceReason = reason
}

// MarkExcused: izin.
func (a *AttendanceModel) MarkExcused(markedBy uuid.UUID, now time.Time, reason *string) {
	a.mark(AttendanceStatusExcused, markedBy, now)
	a.AttendanceReason = reason
}

// CheckOut men-stamp waktu pulang; durasi TIDAK dihitung otomatis,
// pemanggil harus memanggil CalculateDuration secara eksplisit.
func (a *AttendanceModel) CheckOut(now time.Time) error {
	if a.AttendanceCheckInTime == nil {
		return errors.New("belum check-in")
	}
	if now.Before(*a.AttendanceCheckInTime) {
		return errors.New("waktu check-out sebelum check-in")
	}
	a.AttendanceCheckOutTime = &now
	return nil
}

// CalculateDuration menurunkan durasi menit dari check-in/out dan
// menulisnya kembali ke field. Error kalau salah satu timestamp kosong.
func (a *AttendanceModel) CalculateDuration() (int, error) {
	if a.AttendanceCheckInTime == nil || a.AttendanceCheckOutTime == nil {
		return 0, errors.New("check-in dan check-out harus terisi")
	}
	minutes := int(a.AttendanceCheckOutTime.Sub(*a.AttendanceCheckInTime).Minutes())
	a.AttendanceDuration = &minutes
	return minutes, nil
}
