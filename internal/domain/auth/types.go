package auth

// Package auth contains domain-level types for identity, roles, and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an identity's job-function category.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePrincipal  Role = "principal"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
	RoleAccountant Role = "accountant"
	RoleLibrarian  Role = "librarian"
	RoleStaff      Role = "staff"
	RoleParent     Role = "parent"
)

// Roles lists every valid role, in a stable order.
var Roles = []Role{
	RoleAdmin,
	RolePrincipal,
	RoleTeacher,
	RoleStudent,
	RoleAccountant,
	RoleLibrarian,
	RoleStaff,
	RoleParent,
}

// ParseRole returns the role for s and whether s names a known role.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Permission is a coarse capability tag gating one feature area.
// PermissionAll is the wildcard grant held by admins.
type Permission string

const (
	PermissionAll          Permission = "all"
	PermissionDashboard    Permission = "dashboard"
	PermissionStudents     Permission = "students"
	PermissionTeachers     Permission = "teachers"
	PermissionClasses      Permission = "classes"
	PermissionAttendance   Permission = "attendance"
	PermissionExams        Permission = "exams"
	PermissionFees         Permission = "fees"
	PermissionAccounts     Permission = "accounts"
	PermissionLibrary      Permission = "library"
	PermissionTransport    Permission = "transport"
	PermissionHealth       Permission = "health"
	PermissionCertificates Permission = "certificates"
	PermissionReports      Permission = "reports"
	PermissionManagement   Permission = "management"
	PermissionSettings     Permission = "settings"
	PermissionMyGrades     Permission = "my-grades"
	PermissionMyAttendance Permission = "my-attendance"
	PermissionProfile      Permission = "profile"
)

// Permissions lists every grantable permission (the wildcard excluded).
var Permissions = []Permission{
	PermissionDashboard,
	PermissionStudents,
	PermissionTeachers,
	PermissionClasses,
	PermissionAttendance,
	PermissionExams,
	PermissionFees,
	PermissionAccounts,
	PermissionLibrary,
	PermissionTransport,
	PermissionHealth,
	PermissionCertificates,
	PermissionReports,
	PermissionManagement,
	PermissionSettings,
	PermissionMyGrades,
	PermissionMyAttendance,
	PermissionProfile,
}

// Identity represents the signed-in principal as returned by a directory.
// Overrides, when non-nil, replaces the role's default grant set.
type Identity struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"display_name"`
	Role        Role         `json:"role"`
	Overrides   []Permission `json:"permission_overrides,omitempty"`
}

// Session is the expiring credential state persisted alongside an Identity.
// Token is an opaque identifier (e.g., random URL-safe string).
type Session struct {
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }
