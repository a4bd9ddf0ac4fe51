// file: internals/policy/policy.go
package policy

// Role mirror enum users.user_role di DB.
const (
	RoleStudent    = "student"
	RoleTutor      = "tutor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Resource string
type Action string

const (
	ResourceSession      Resource = "session"
	ResourceAttendance   Resource = "attendance"
	ResourcePayment      Resource = "payment"
	ResourceSyllabus     Resource = "syllabus"
	ResourceFeedback     Resource = "feedback"
	ResourceNotification Resource = "notification"
	ResourceUser         Resource = "user"
)

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionJoin   Action = "join"
	ActionMark   Action = "mark"   // tandai kehadiran / lifecycle status
	ActionRefund Action = "refund" // pembayaran
	ActionList   Action = "list"   // listing lintas pemilik (admin)
)

type capability struct {
	role     string
	resource Resource
	action   Action
}

// Tabel kapabilitas dibangun sekali saat init; pengecekan per request cukup
// satu lookup map + (opsional) predicate ownership dari caller.
var capabilities = map[capability]bool{}

func allow(role string, resource Resource, actions ...Action) {
	for _, a := range actions {
		capabilities[capability{role, resource, a}] = true
	}
}

func init() {
	// student
	allow(RoleStudent, ResourceSession, ActionRead, ActionJoin)
	allow(RoleStudent, ResourceAttendance, ActionRead)
	allow(RoleStudent, ResourcePayment, ActionCreate, ActionRead)
	allow(RoleStudent, ResourceSyllabus, ActionRead)
	allow(RoleStudent, ResourceFeedback, ActionCreate, ActionRead)
	allow(RoleStudent, ResourceNotification, ActionRead, ActionUpdate)
	allow(RoleStudent, ResourceUser, ActionRead, ActionUpdate)

	// tutor: semua milik student + kelola session/syllabus/attendance miliknya
	allow(RoleTutor, ResourceSession, ActionCreate, ActionRead, ActionUpdate, ActionMark)
	allow(RoleTutor, ResourceAttendance, ActionRead, ActionMark)
	allow(RoleTutor, ResourceSyllabus, ActionCreate, ActionRead, ActionUpdate, ActionDelete)
	allow(RoleTutor, ResourceFeedback, ActionRead)
	allow(RoleTutor, ResourceNotification, ActionRead, ActionUpdate)
	allow(RoleTutor, ResourceUser, ActionRead, ActionUpdate)

	// admin & super_admin: akses penuh
	for _, role := range []string{RoleAdmin, RoleSuperAdmin} {
		for _, res := range []Resource{
			ResourceSession, ResourceAttendance, ResourcePayment,
			ResourceSyllabus, ResourceFeedback, ResourceNotification, ResourceUser,
		} {
			allow(role, res,
				ActionCreate, ActionRead, ActionUpdate, ActionDelete,
				ActionJoin, ActionMark, ActionRefund, ActionList)
		}
	}
}

// Can: cek kapabilitas murni berdasarkan role.
func Can(role string, resource Resource, action Action) bool {
	return capabilities[capability{role, resource, action}]
}

// CanOrOwner: role boleh, ATAU caller adalah pemilik resource.
// Ownership di-resolve oleh pemanggil (controller tahu FK pemiliknya),
// sehingga policy tidak perlu menyentuh internal entity.
func CanOrOwner(role string, resource Resource, action Action, isOwner bool) bool {
	if isOwner {
		return true
	}
	return Can(role, resource, action)
}

// IsElevated: admin atau super_admin.
func IsElevated(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
