package access

// Package access derives effective permission sets from roles and answers
// capability queries. Checkers are pure values: construct freely, no shared
// mutable state.

import (
	"fmt"

	"github.com/campusware/campus-admin/internal/domain/auth"
	"github.com/campusware/campus-admin/internal/domain/nav"
)

// RolePermissions is the single source of truth for default grants.
// Admin holds the wildcard; every other role gets an explicit set.
var RolePermissions = map[auth.Role][]auth.Permission{
	auth.RoleAdmin: {auth.PermissionAll},
	auth.RolePrincipal: {
		auth.PermissionDashboard, auth.PermissionStudents, auth.PermissionTeachers,
		auth.PermissionClasses, auth.PermissionAttendance, auth.PermissionExams,
		auth.PermissionFees, auth.PermissionAccounts, auth.PermissionLibrary,
		auth.PermissionTransport, auth.PermissionHealth, auth.PermissionCertificates,
		auth.PermissionReports, auth.PermissionManagement, auth.PermissionSettings,
		auth.PermissionProfile,
	},
	auth.RoleTeacher: {
		auth.PermissionDashboard, auth.PermissionStudents, auth.PermissionClasses,
		auth.PermissionAttendance, auth.PermissionExams, auth.PermissionHealth,
		auth.PermissionProfile,
	},
	auth.RoleStudent: {
		auth.PermissionDashboard, auth.PermissionMyGrades, auth.PermissionMyAttendance,
		auth.PermissionLibrary, auth.PermissionProfile,
	},
	auth.RoleAccountant: {
		auth.PermissionDashboard, auth.PermissionFees, auth.PermissionAccounts,
		auth.PermissionReports, auth.PermissionProfile,
	},
	auth.RoleLibrarian: {
		auth.PermissionDashboard, auth.PermissionLibrary, auth.PermissionProfile,
	},
	auth.RoleStaff: {
		auth.PermissionDashboard, auth.PermissionTransport, auth.PermissionHealth,
		auth.PermissionProfile,
	},
	auth.RoleParent: {
		auth.PermissionDashboard, auth.PermissionMyGrades, auth.PermissionMyAttendance,
		auth.PermissionFees, auth.PermissionProfile,
	},
}

// Per-capability requirement maps. A resource absent from a map requires its
// own tag. Values are alternatives: holding any one of them grants the
// capability.
var (
	createRequirements = map[auth.Permission][]auth.Permission{
		// Attendance entry is part of day-to-day class work.
		auth.PermissionAttendance: {auth.PermissionAttendance, auth.PermissionClasses},
		// Certificates are issued from the student record.
		auth.PermissionCertificates: {auth.PermissionCertificates, auth.PermissionStudents},
	}
	deleteRequirements = map[auth.Permission][]auth.Permission{
		// Deleting financial records needs the ledger-side grant.
		auth.PermissionFees: {auth.PermissionAccounts},
	}
)

// Checker answers permission queries for one identity. The effective set is
// the identity's override list when present, otherwise the role's defaults.
// Checks never fail: an unknown role is treated as the least-privileged role.
type Checker struct {
	role      auth.Role
	effective map[auth.Permission]bool
}

// NewChecker builds a checker for the given role and optional overrides.
// Roles outside the enumerated set default to student (default-deny on
// malformed input, never fail open).
func NewChecker(role auth.Role, overrides []auth.Permission) *Checker {
	if _, ok := RolePermissions[role]; !ok {
		role = auth.RoleStudent
	}
	grants := overrides
	if grants == nil {
		grants = RolePermissions[role]
	}
	effective := make(map[auth.Permission]bool, len(grants))
	for _, p := range grants {
		effective[p] = true
	}
	return &Checker{role: role, effective: effective}
}

// ForIdentity builds a checker from an identity's role and overrides.
func ForIdentity(id auth.Identity) *Checker {
	return NewChecker(id.Role, id.Overrides)
}

// Role returns the (normalized) role the checker was built for.
func (c *Checker) Role() auth.Role { return c.role }

// Has reports whether the effective set contains p or the wildcard.
func (c *Checker) Has(p auth.Permission) bool {
	return c.effective[auth.PermissionAll] || c.effective[p]
}

// HasAny reports whether any of the given permissions is held.
func (c *Checker) HasAny(ps ...auth.Permission) bool {
	for _, p := range ps {
		if c.Has(p) {
			return true
		}
	}
	return false
}

// HasAll reports whether every one of the given permissions is held.
func (c *Checker) HasAll(ps ...auth.Permission) bool {
	for _, p := range ps {
		if !c.Has(p) {
			return false
		}
	}
	return true
}

// AccessibleRoutes returns every route whose gating permission is held,
// in registry order. Routes that do not require auth are always included.
func (c *Checker) AccessibleRoutes() []nav.Route {
	out := make([]nav.Route, 0, len(nav.Routes))
	for _, route := range nav.Routes {
		md := nav.Lookup(route)
		if !md.RequiresAuth || c.Has(nav.RequiredPermission(route)) {
			out = append(out, route)
		}
	}
	return out
}

// CanCreate reports whether records in the given feature area may be created.
func (c *Checker) CanCreate(resource auth.Permission) bool {
	if alts, ok := createRequirements[resource]; ok {
		return c.HasAny(alts...)
	}
	return c.Has(resource)
}

// CanEdit reports whether records in the given feature area may be edited.
// Editing currently carries the same requirements as creation.
func (c *Checker) CanEdit(resource auth.Permission) bool {
	return c.CanCreate(resource)
}

// CanDelete reports whether records in the given feature area may be deleted.
// The wildcard always grants deletion.
func (c *Checker) CanDelete(resource auth.Permission) bool {
	if c.effective[auth.PermissionAll] {
		return true
	}
	if alts, ok := deleteRequirements[resource]; ok {
		return c.HasAny(alts...)
	}
	return c.Has(resource)
}

// CanViewFinancial reports whether fee and ledger screens may be viewed.
func (c *Checker) CanViewFinancial() bool {
	return c.HasAny(auth.PermissionFees, auth.PermissionAccounts)
}

// CanViewReports reports whether reporting screens may be viewed.
func (c *Checker) CanViewReports() bool {
	return c.Has(auth.PermissionReports)
}

// CanManageSystem reports whether system administration screens may be viewed.
func (c *Checker) CanManageSystem() bool {
	return c.HasAny(auth.PermissionManagement, auth.PermissionSettings)
}

// RestrictedMessage returns the denial notice shown when a consumer hides or
// refuses an action for this identity.
func (c *Checker) RestrictedMessage() string {
	return fmt.Sprintf("Your role (%s) does not have access to this section. Contact an administrator if you believe this is an error.", c.role)
}
