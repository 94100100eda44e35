package nav

import (
	"github.com/campusware/campus-admin/internal/domain/auth"
)

// Category groups routes for menu rendering.
type Category string

const (
	CategoryAcademic   Category = "academic"
	CategoryManagement Category = "management"
	CategoryOther      Category = "other"
)

// Metadata describes one route: display title, canonical URL path, whether a
// signed-in identity is required, and (optionally) which roles may see it.
// A nil AllowedRoles means any authenticated role.
type Metadata struct {
	Title        string
	Path         string
	RequiresAuth bool
	AllowedRoles []auth.Role
	Category     Category
}

// registry is the static, total map from route to metadata. Every member of
// Routes has exactly one entry; totality is enforced by tests.
var registry = map[Route]Metadata{
	RouteDashboard:    {Title: "Dashboard", Path: "/", RequiresAuth: true, Category: CategoryOther},
	RouteStudents:     {Title: "Students", Path: "/students", RequiresAuth: true, Category: CategoryAcademic},
	RouteTeachers:     {Title: "Teachers", Path: "/teachers", RequiresAuth: true, Category: CategoryAcademic},
	RouteClasses:      {Title: "Classes", Path: "/classes", RequiresAuth: true, Category: CategoryAcademic},
	RouteAttendance:   {Title: "Attendance", Path: "/attendance", RequiresAuth: true, Category: CategoryAcademic},
	RouteExams:        {Title: "Exams", Path: "/exams", RequiresAuth: true, Category: CategoryAcademic},
	RouteFees:         {Title: "Fee Management", Path: "/fees", RequiresAuth: true, Category: CategoryManagement},
	RouteAccounts:     {Title: "Accounts", Path: "/accounts", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RolePrincipal, auth.RoleAccountant}, Category: CategoryManagement},
	RouteLibrary:      {Title: "Library", Path: "/library", RequiresAuth: true, Category: CategoryAcademic},
	RouteTransport:    {Title: "Transport", Path: "/transport", RequiresAuth: true, Category: CategoryManagement},
	RouteHealth:       {Title: "Health Records", Path: "/health", RequiresAuth: true, Category: CategoryOther},
	RouteCertificates: {Title: "Certificates", Path: "/certificates", RequiresAuth: true, Category: CategoryOther},
	RouteReports:      {Title: "Reports", Path: "/reports", RequiresAuth: true, Category: CategoryManagement},
	RouteManagement:   {Title: "School Management", Path: "/management", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RolePrincipal}, Category: CategoryManagement},
	RouteSettings:     {Title: "Settings", Path: "/settings", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RolePrincipal}, Category: CategoryManagement},
	RouteMyGrades:     {Title: "My Grades", Path: "/my-grades", RequiresAuth: true, Category: CategoryAcademic},
	RouteMyAttendance: {Title: "My Attendance", Path: "/my-attendance", RequiresAuth: true, Category: CategoryAcademic},
	RouteProfile:      {Title: "My Profile", Path: "/profile", RequiresAuth: true, Category: CategoryOther},
	RouteNotFound:     {Title: "Page Not Found", Path: "/not-found", RequiresAuth: false, Category: CategoryOther},
}

// byPath indexes canonical paths back to routes for deep-link resolution.
var byPath = func() map[string]Route {
	idx := make(map[string]Route, len(registry))
	for route, md := range registry {
		idx[md.Path] = route
	}
	return idx
}()

// Lookup returns the metadata for route. Unknown routes resolve to the
// not-found metadata so callers never observe a missing entry.
func Lookup(route Route) Metadata {
	if md, ok := registry[route]; ok {
		return md
	}
	return registry[RouteNotFound]
}

// ByPath resolves a canonical URL path to its route. The second return is
// false when no route owns the path.
func ByPath(path string) (Route, bool) {
	route, ok := byPath[path]
	return route, ok
}

// RequiredPermission returns the permission gating a route. First-order
// routes use their own tag as the permission tag; the not-found route and
// dashboard are open to every authenticated identity via the dashboard grant.
func RequiredPermission(route Route) auth.Permission {
	switch route {
	case RouteNotFound:
		return auth.PermissionDashboard
	default:
		return auth.Permission(route)
	}
}
