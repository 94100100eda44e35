package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusware/campus-admin/internal/domain/nav"
)

func newNavService() *NavService {
	return NewNavService(NavServiceOptions{TransitionWindow: time.Millisecond})
}

func TestNavService_FirstSightResolvesInitialHref(t *testing.T) {
	svc := newNavService()

	state, address := svc.State("c1", "/students?classId=10a")
	assert.Equal(t, nav.RouteStudents, state.Current)
	assert.Equal(t, map[string]string{"classId": "10a"}, state.Params)
	assert.Equal(t, "/students?classId=10a", address)

	// The initial href only matters once.
	state, _ = svc.State("c1", "/fees")
	assert.Equal(t, nav.RouteStudents, state.Current)
}

func TestNavService_ClientsAreIsolated(t *testing.T) {
	svc := newNavService()

	svc.Navigate("c1", nav.RouteLibrary, nil, false)
	stateTwo, _ := svc.State("c2", "/")

	stateOne, _ := svc.State("c1", "")
	assert.Equal(t, nav.RouteLibrary, stateOne.Current)
	assert.Equal(t, nav.RouteDashboard, stateTwo.Current)
}

func TestNavService_NavigateBackForward(t *testing.T) {
	svc := newNavService()

	svc.State("c1", "/")
	svc.Navigate("c1", nav.RouteClasses, nil, false)
	state, address := svc.Navigate("c1", nav.RouteExams, map[string]string{"term": "2"}, false)
	assert.Equal(t, nav.RouteExams, state.Current)
	assert.Equal(t, "/exams?term=2", address)

	state, address = svc.Back("c1")
	assert.Equal(t, nav.RouteClasses, state.Current)
	assert.Equal(t, "/classes", address)

	state, _ = svc.Forward("c1")
	assert.Equal(t, nav.RouteExams, state.Current)
	assert.Equal(t, map[string]string{"term": "2"}, state.Params)
}

func TestNavService_ReleaseForgetsClient(t *testing.T) {
	svc := newNavService()

	svc.Navigate("c1", nav.RouteReports, nil, false)
	svc.Release("c1")
	svc.Release("c1") // idempotent

	state, _ := svc.State("c1", "/")
	assert.Equal(t, nav.RouteDashboard, state.Current)
	assert.Zero(t, state.Key)
}

func TestNavService_Breadcrumbs(t *testing.T) {
	svc := newNavService()

	svc.Navigate("c1", nav.RouteSettings, nil, false)
	crumbs := svc.Breadcrumbs("c1")
	assert.Len(t, crumbs, 2)
	assert.Equal(t, nav.RouteDashboard, crumbs[0].Route)
	assert.Equal(t, nav.RouteSettings, crumbs[1].Route)
}
