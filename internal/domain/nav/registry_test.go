package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/campus-admin/internal/domain/auth"
)

func TestRegistry_TotalOverRouteSet(t *testing.T) {
	for _, route := range Routes {
		md, ok := registry[route]
		require.True(t, ok, "route %q missing from registry", route)
		assert.NotEmpty(t, md.Title, "route %q has no title", route)
		assert.NotEmpty(t, md.Path, "route %q has no path", route)
	}
	assert.Len(t, registry, len(Routes), "registry has entries outside the route set")
}

func TestRegistry_PathsAreUnique(t *testing.T) {
	seen := map[string]Route{}
	for _, route := range Routes {
		md := Lookup(route)
		prev, dup := seen[md.Path]
		require.False(t, dup, "path %q claimed by both %q and %q", md.Path, prev, route)
		seen[md.Path] = route
	}
}

func TestLookup_UnknownRouteDegradesToNotFound(t *testing.T) {
	md := Lookup(Route("no-such-screen"))
	assert.Equal(t, "/not-found", md.Path)
	assert.Equal(t, "Page Not Found", md.Title)
}

func TestByPath_ResolvesCanonicalPaths(t *testing.T) {
	tests := []struct {
		path  string
		want  Route
		found bool
	}{
		{path: "/", want: RouteDashboard, found: true},
		{path: "/students", want: RouteStudents, found: true},
		{path: "/my-grades", want: RouteMyGrades, found: true},
		{path: "/nope", found: false},
		{path: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ByPath(tt.path)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse_CoercesUnknownTags(t *testing.T) {
	assert.Equal(t, RouteFees, Parse("fees"))
	assert.Equal(t, RouteNotFound, Parse("fees-v2"))
	assert.Equal(t, RouteNotFound, Parse(""))
	// The terminal route itself is a member of the set.
	assert.Equal(t, RouteNotFound, Parse("not-found"))
	assert.True(t, IsValid("not-found"))
}

func TestRequiredPermission(t *testing.T) {
	assert.Equal(t, auth.PermissionFees, RequiredPermission(RouteFees))
	assert.Equal(t, auth.PermissionMyGrades, RequiredPermission(RouteMyGrades))
	// The terminal route never gates beyond the baseline grant.
	assert.Equal(t, auth.PermissionDashboard, RequiredPermission(RouteNotFound))
}

func TestEqualParams(t *testing.T) {
	assert.True(t, EqualParams(nil, nil))
	assert.True(t, EqualParams(nil, map[string]string{}))
	assert.True(t, EqualParams(map[string]string{"a": "1"}, map[string]string{"a": "1"}))
	assert.False(t, EqualParams(map[string]string{"a": "1"}, map[string]string{"a": "2"}))
	assert.False(t, EqualParams(map[string]string{"a": "1"}, map[string]string{"a": "1", "b": "2"}))
}

func TestCloneParams(t *testing.T) {
	src := map[string]string{"tab": "2"}
	dst := CloneParams(src)
	require.Equal(t, src, dst)
	dst["tab"] = "3"
	assert.Equal(t, "2", src["tab"], "clone must not alias the source map")
	assert.Nil(t, CloneParams(nil))
	assert.Nil(t, CloneParams(map[string]string{}))
}
