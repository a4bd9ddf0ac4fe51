package model

import (
	"testing"
	"time"
)

func TestCanJoin(t *testing.T) {
	cases := []struct {
		name    string
		status  SessionStatus
		current int
		max     int
		expect  bool
	}{
		{"scheduled with seats", SessionStatusScheduled, 0, 5, true},
		{"scheduled last seat", SessionStatusScheduled, 4, 5, true},
		{"scheduled full", SessionStatusScheduled, 5, 5, false},
		{"ongoing", SessionStatusOngoing, 0, 5, false},
		{"completed", SessionStatusCompleted, 0, 5, false},
		{"cancelled", SessionStatusCancelled, 0, 5, false},
	}
	for _, tc := range cases {
		s := SessionModel{
			SessionStatus:          tc.status,
			SessionCurrentStudents: tc.current,
			SessionMaxStudents:     tc.max,
		}
		if s.CanJoin() != tc.expect {
			t.Fatalf("%s: expected CanJoin=%v", tc.name, tc.expect)
		}
	}
}

func TestSingleSeatScenario(t *testing.T) {
	s := SessionModel{
		SessionStatus:          SessionStatusScheduled,
		SessionMaxStudents:     1,
		SessionCurrentStudents: 0,
	}
	if !s.CanJoin() {
		t.Fatalf("expected empty single-seat session to be joinable")
	}
	s.SessionCurrentStudents = 1
	if s.CanJoin() {
		t.Fatalf("expected full single-seat session to reject join")
	}
	if !s.IsFull() {
		t.Fatalf("expected session to be full")
	}
}

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	s := SessionModel{
		SessionStartTime: now.Add(2 * time.Hour),
		SessionEndTime:   now.Add(3 * time.Hour),
	}
	if err := s.ValidateSchedule(now); err != nil {
		t.Fatalf("expected valid schedule, got %v", err)
	}

	s.SessionEndTime = s.SessionStartTime
	if err := s.ValidateSchedule(now); err == nil {
		t.Fatalf("expected error when end == start")
	}

	s.SessionStartTime = now.Add(-time.Hour)
	s.SessionEndTime = now.Add(time.Hour)
	if err := s.ValidateSchedule(now); err == nil {
		t.Fatalf("expected error when start is in the past")
	}
}

func TestComputeDurationMinutes(t *testing.T) {
	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	s := SessionModel{
		SessionStartTime: start,
		SessionEndTime:   start.Add(90 * time.Minute),
	}
	s.ComputeDurationMinutes()
	if s.SessionDurationMinutes != 90 {
		t.Fatalf("expected 90 minutes, got %d", s.SessionDurationMinutes)
	}
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from   SessionStatus
		to     SessionStatus
		expect bool
	}{
		{SessionStatusScheduled, SessionStatusOngoing, true},
		{SessionStatusScheduled, SessionStatusCompleted, true},
		{SessionStatusOngoing, SessionStatusCompleted, true},
		{SessionStatusScheduled, SessionStatusCancelled, true},
		{SessionStatusOngoing, SessionStatusCancelled, true},
		{SessionStatusCompleted, SessionStatusCancelled, false},
		{SessionStatusCancelled, SessionStatusCancelled, false},
		{SessionStatusCompleted, SessionStatusOngoing, false},
		{SessionStatusScheduled, SessionStatusRescheduled, true},
		{SessionStatusRescheduled, SessionStatusScheduled, true},
		{SessionStatusRescheduled, SessionStatusOngoing, true},
		{SessionStatusCancelled, SessionStatusOngoing, false},
	}
	for _, tc := range cases {
		s := SessionModel{SessionStatus: tc.from}
		if s.CanTransitionTo(tc.to) != tc.expect {
			t.Fatalf("%s -> %s: expected %v", tc.from, tc.to, tc.expect)
		}
	}
}
