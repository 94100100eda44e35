package nav

// Package nav contains domain-level types for screens and navigation history.
// Routes are values from a closed set, never constructed dynamically; any
// string outside the set maps to RouteNotFound.

// Route is a closed-set identifier for one screen of the application.
type Route string

const (
	RouteDashboard    Route = "dashboard"
	RouteStudents     Route = "students"
	RouteTeachers     Route = "teachers"
	RouteClasses      Route = "classes"
	RouteAttendance   Route = "attendance"
	RouteExams        Route = "exams"
	RouteFees         Route = "fees"
	RouteAccounts     Route = "accounts"
	RouteLibrary      Route = "library"
	RouteTransport    Route = "transport"
	RouteHealth       Route = "health"
	RouteCertificates Route = "certificates"
	RouteReports      Route = "reports"
	RouteManagement   Route = "management"
	RouteSettings     Route = "settings"
	RouteMyGrades     Route = "my-grades"
	RouteMyAttendance Route = "my-attendance"
	RouteProfile      Route = "profile"
	RouteNotFound     Route = "not-found"
)

// Routes lists every valid route in a stable order.
var Routes = []Route{
	RouteDashboard,
	RouteStudents,
	RouteTeachers,
	RouteClasses,
	RouteAttendance,
	RouteExams,
	RouteFees,
	RouteAccounts,
	RouteLibrary,
	RouteTransport,
	RouteHealth,
	RouteCertificates,
	RouteReports,
	RouteManagement,
	RouteSettings,
	RouteMyGrades,
	RouteMyAttendance,
	RouteProfile,
	RouteNotFound,
}

// IsValid reports whether candidate names a route in the enumerated set.
func IsValid(candidate string) bool {
	_, ok := registry[Route(candidate)]
	return ok
}

// Parse returns the route named by candidate, coercing unknown tags to
// RouteNotFound. Unknown tags are not an error; they are the terminal route.
func Parse(candidate string) Route {
	if IsValid(candidate) {
		return Route(candidate)
	}
	return RouteNotFound
}

// Entry is the unit stored in navigation history: a route plus its parameters.
type Entry struct {
	Route  Route             `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

// EqualParams reports whether two parameter maps carry the same key/value
// pairs. Nil and empty maps compare equal.
func EqualParams(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// CloneParams returns a defensive copy of params, or nil for an empty map.
func CloneParams(params map[string]string) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
