package httpx

import (
	"errors"
	"net/http"

	"github.com/campusware/campus-admin/internal/access"
	"github.com/campusware/campus-admin/internal/domain/nav"
	"github.com/campusware/campus-admin/internal/router"
	"github.com/campusware/campus-admin/internal/service"
)

// NavHandlers provides HTTP handlers for the navigation runtime. All routes
// sit behind RequireAuth, so handlers can assume a RequestAuth in context.
type NavHandlers struct {
	Svc *service.NavService
}

// navStateResponse pairs a router snapshot with the canonical address the
// client should show.
type navStateResponse struct {
	State   router.State `json:"state"`
	Address string       `json:"address"`
}

// State returns the client's current navigation snapshot.
// GET /api/nav/state?href=<initial_location>.
//
// The href parameter only matters the first time a client is seen: it is the
// URL the client loaded, resolved the way a fresh page load resolves deep
// links and legacy ?page= bookmarks.
func (h *NavHandlers) State(w http.ResponseWriter, r *http.Request) {
	auth, _ := GetAuthFromContext(r.Context())
	state, address := h.Svc.State(auth.ClientID, r.URL.Query().Get("href"))
	WriteJSON(w, http.StatusOK, navStateResponse{State: state, Address: address})
}

type navigateRequest struct {
	Route   string            `json:"route"`
	Params  map[string]string `json:"params,omitempty"`
	Replace bool              `json:"replace,omitempty"`
}

// Navigate moves the client to a route.
// POST /api/nav/navigate.
//
// Unknown route tags are not an error; they land on the not-found screen.
func (h *NavHandlers) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Route == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_route",
			Err:     errors.New("route is required"),
		})
		return
	}

	auth, _ := GetAuthFromContext(r.Context())
	state, address := h.Svc.Navigate(auth.ClientID, nav.Route(req.Route), req.Params, req.Replace)
	WriteJSON(w, http.StatusOK, navStateResponse{State: state, Address: address})
}

// Back moves one history entry back.
// POST /api/nav/back.
func (h *NavHandlers) Back(w http.ResponseWriter, r *http.Request) {
	auth, _ := GetAuthFromContext(r.Context())
	state, address := h.Svc.Back(auth.ClientID)
	WriteJSON(w, http.StatusOK, navStateResponse{State: state, Address: address})
}

// Forward moves one history entry forward.
// POST /api/nav/forward.
func (h *NavHandlers) Forward(w http.ResponseWriter, r *http.Request) {
	auth, _ := GetAuthFromContext(r.Context())
	state, address := h.Svc.Forward(auth.ClientID)
	WriteJSON(w, http.StatusOK, navStateResponse{State: state, Address: address})
}

// Breadcrumbs returns the trail for the client's current route.
// GET /api/nav/breadcrumbs.
func (h *NavHandlers) Breadcrumbs(w http.ResponseWriter, r *http.Request) {
	auth, _ := GetAuthFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"breadcrumbs": h.Svc.Breadcrumbs(auth.ClientID),
	})
}

// menuItem is one entry of the permission-filtered menu.
type menuItem struct {
	Route nav.Route `json:"route"`
	Title string    `json:"title"`
	Path  string    `json:"path"`
}

// Menu returns the signed-in identity's accessible routes grouped by
// category. Routes the identity cannot reach are omitted entirely rather
// than rendered disabled.
// GET /api/menu.
func (h *NavHandlers) Menu(w http.ResponseWriter, r *http.Request) {
	auth, _ := GetAuthFromContext(r.Context())
	checker := access.ForIdentity(auth.Account.Identity)

	sections := make(map[nav.Category][]menuItem)
	for _, route := range checker.AccessibleRoutes() {
		if route == nav.RouteNotFound {
			continue
		}
		md := nav.Lookup(route)
		sections[md.Category] = append(sections[md.Category], menuItem{
			Route: route,
			Title: md.Title,
			Path:  md.Path,
		})
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"academic":   sections[nav.CategoryAcademic],
		"management": sections[nav.CategoryManagement],
		"other":      sections[nav.CategoryOther],
	})
}
