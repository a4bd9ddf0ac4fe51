package dto

import (
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/sessions/attendance/model"
	userDTO "tutorku_backend/internals/features/users/user/dto"
)

// ================== REQUEST ==================

type MarkAttendanceRequest struct {
	// present | absent | late | excused
	Status string  `json:"status" validate:"required,oneof=present absent late excused"`
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

// ================== RESPONSE ==================

type AttendanceResponse struct {
	AttendanceID           uuid.UUID  `json:"attendance_id"`
	AttendanceSessionID    uuid.UUID  `json:"attendance_session_id"`
	AttendanceStudentID    uuid.UUID  `json:"attendance_student_id"`
	AttendanceStatus       string     `json:"attendance_status"`
	AttendanceCheckInTime  *time.Time `json:"attendance_check_in_time,omitempty"`
	AttendanceCheckOutTime *time.Time `json:"attendance_check_out_time,omitempty"`
	AttendanceDuration     *int       `json:"attendance_duration,omitempty"`
	AttendanceReason       *string    `json:"attendance_reason,omitempty"`
	AttendanceMarkedBy     *uuid.UUID `json:"attendance_marked_by,omitempty"`
	AttendanceMarkedAt     *time.Time `json:"attendance_marked_at,omitempty"`
	AttendanceCreatedAt    string     `json:"attendance_created_at"`

	// proyeksi minimal student untuk roster tutor
	AttendanceStudent *userDTO.UserLiteResponse `json:"attendance_student,omitempty"`
}

// ================ CONVERSION =================

func ToAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID:           m.AttendanceID,
		AttendanceSessionID:    m.AttendanceSessionID,
		AttendanceStudentID:    m.AttendanceStudentID,
		AttendanceStatus:       string(m.AttendanceStatus),
		AttendanceCheckInTime:  m.AttendanceCheckInTime,
		AttendanceCheckOutTime: m.AttendanceCheckOutTime,
		AttendanceDuration:     m.AttendanceDuration,
		AttendanceReason:       m.AttendanceReason,
		AttendanceMarkedBy:     m.AttendanceMarkedBy,
		AttendanceMarkedAt:     m.AttendanceMarkedAt,
		AttendanceCreatedAt:    m.AttendanceCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToAttendanceResponseList(models []model.AttendanceModel) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAttendanceResponse(&models[i]))
	}
	return result
}
