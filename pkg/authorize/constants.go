package authorize

type Action string
type Resource string
type Role string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// ActionManage is shorthand for the full CRUD+list set. It is expanded
	// into concrete actions when policies are seeded, so the matcher only
	// ever compares exact actions or the wildcard.
	ActionManage Action = "manage"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
}

// ManageActions is the concrete action set ActionManage expands to.
var ManageActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser    Resource = "user"
	ResourceProfile Resource = "profile"

	// Clinical records
	ResourcePatient       Resource = "patient"
	ResourceDentalHistory Resource = "dental_history"
	ResourcePrescription  Resource = "prescription"
	ResourceAppointment   Resource = "appointment"

	// Public content
	ResourceReview   Resource = "review"
	ResourceBlogPost Resource = "blog_post"
	ResourceFaq      Resource = "faq"

	// System / platform admin
	ResourceRBAC Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceProfile: {},
	ResourcePatient: {}, ResourceDentalHistory: {}, ResourcePrescription: {}, ResourceAppointment: {},
	ResourceReview: {}, ResourceBlogPost: {}, ResourceFaq: {},
	ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// RoleStaff marks clinic personnel: full control over clinical records.
	RoleStaff Role = "role:staff"

	// RolePatient is granted to every registered non-staff user.
	RolePatient Role = "role:patient"
)

var KnownRoles = map[Role]struct{}{
	RoleStaff:   {},
	RolePatient: {},
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id),
// a role, or the anonymous pseudo-subject.
type GroupSubject string

// SubjectAnonymous is the pseudo-subject unauthenticated requests enforce
// against. Authenticated roles inherit its grants via grouping policies,
// so anything the public may do, a logged-in user may do too.
const SubjectAnonymous GroupSubject = "anonymous"

// Grouping rows: g, subject, role
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
}

// Permission rows: p, subject, resource, action, eft
type PermissionPolicy struct {
	Subject GroupSubject
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
