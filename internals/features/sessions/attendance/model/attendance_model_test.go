package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMarkPresentStampsCheckIn(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	tutor := uuid.New()

	a := AttendanceModel{AttendanceStatus: AttendanceStatusPending}
	a.MarkPresent(tutor, now)

	if a.AttendanceStatus != AttendanceStatusPresent {
		t.Fatalf("expected present, got %s", a.AttendanceStatus)
	}
	if a.AttendanceCheckInTime == nil || !a.AttendanceCheckInTime.Equal(now) {
		t.Fatalf("expected check-in stamped at %v", now)
	}
	if a.AttendanceMarkedBy == nil || *a.AttendanceMarkedBy != tutor {
		t.Fatalf("expected marked_by stamped")
	}
	if a.AttendanceMarkedAt == nil || !a.AttendanceMarkedAt.Equal(now) {
		t.Fatalf("expected marked_at stamped")
	}
}

func TestMarkLateStampsCheckIn(t *testing.T) {
	now := time.Now()
	a := AttendanceModel{}
	a.MarkLate(uuid.New(), now)
	if a.AttendanceStatus != AttendanceStatusLate {
		t.Fatalf("expected late, got %s", a.AttendanceStatus)
	}
	if a.AttendanceCheckInTime == nil {
		t.Fatalf("late must still stamp check-in")
	}
}

func TestMarkAbsentNoCheckIn(t *testing.T) {
	reason := "sakit"
	a := AttendanceModel{}
	a.MarkAbsent(uuid.New(), time.Now(), &reason)
	if a.AttendanceStatus != AttendanceStatusAbsent {
		t.Fatalf("expected absent, got %s", a.AttendanceStatus)
	}
	if a.AttendanceCheckInTime != nil {
		t.Fatalf("absent must not stamp check-in")
	}
	if a.AttendanceReason == nil || *a.AttendanceReason != reason {
		t.Fatalf("expected reason stored")
	}
}

func TestCalculateDurationSixtyMinutes(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	a := AttendanceModel{}
	a.MarkPresent(uuid.New(), now)
	if err := a.CheckOut(now.Add(60 * time.Minute)); err != nil {
		t.Fatalf("check-out error: %v", err)
	}

	minutes, err := a.CalculateDuration()
	if err != nil {
		t.Fatalf("duration error: %v", err)
	}
	if minutes != 60 {
		t.Fatalf("expected 60 minutes, got %d", minutes)
	}
	if a.AttendanceDuration == nil || *a.AttendanceDuration != 60 {
		t.Fatalf("expected duration written back to the record")
	}
}

func TestCalculateDurationRequiresBothStamps(t *testing.T) {
	a := AttendanceModel{}
	if _, err := a.CalculateDuration(); err == nil {
		t.Fatalf("expected error without timestamps")
	}

	a.MarkPresent(uuid.New(), time.Now())
	if _, err := a.CalculateDuration(); err == nil {
		t.Fatalf("expected error without check-out")
	}
}

func TestCheckOutGuards(t *testing.T) {
	a := AttendanceModel{}
	if err := a.CheckOut(time.Now()); err == nil {
		t.Fatalf("expected error when checking out before check-in")
	}

	now := time.Now()
	a.MarkPresent(uuid.New(), now)
	if err := a.CheckOut(now.Add(-time.Minute)); err == nil {
		t.Fatalf("expected error when check-out is before check-in")
	}
}
