package policy

import "testing"

func TestStudentCapabilities(t *testing.T) {
	if !Can(RoleStudent, ResourceSession, ActionJoin) {
		t.Fatalf("expected student to be able to join sessions")
	}
	if Can(RoleStudent, ResourceSession, ActionCreate) {
		t.Fatalf("expected student to be denied session create")
	}
	if Can(RoleStudent, ResourcePayment, ActionRefund) {
		t.Fatalf("expected student to be denied refunds")
	}
}

func TestTutorCapabilities(t *testing.T) {
	if !Can(RoleTutor, ResourceSession, ActionCreate) {
		t.Fatalf("expected tutor to be able to create sessions")
	}
	if !Can(RoleTutor, ResourceAttendance, ActionMark) {
		t.Fatalf("expected tutor to be able to mark attendance")
	}
	if Can(RoleTutor, ResourcePayment, ActionRefund) {
		t.Fatalf("expected tutor to be denied refunds")
	}
}

func TestAdminCapabilities(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleSuperAdmin} {
		if !Can(role, ResourcePayment, ActionRefund) {
			t.Fatalf("expected %s to be able to refund", role)
		}
		if !Can(role, ResourceUser, ActionList) {
			t.Fatalf("expected %s to list users", role)
		}
		if !IsElevated(role) {
			t.Fatalf("expected %s to be elevated", role)
		}
	}
	if IsElevated(RoleTutor) {
		t.Fatalf("tutor must not be elevated")
	}
}

func TestOwnershipOverride(t *testing.T) {
	// Student tidak boleh update session orang lain, tapi tutor pemilik boleh.
	if CanOrOwner(RoleStudent, ResourceSession, ActionUpdate, false) {
		t.Fatalf("non-owner student must be denied")
	}
	if !CanOrOwner(RoleStudent, ResourceSession, ActionUpdate, true) {
		t.Fatalf("owner must always be allowed")
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	if Can("ghost", ResourceSession, ActionRead) {
		t.Fatalf("unknown role must be denied everything")
	}
}
