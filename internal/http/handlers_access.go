package httpx

import (
	"net/http"

	"github.com/campusware/campus-admin/internal/access"
	"github.com/campusware/campus-admin/internal/domain/auth"
	"github.com/campusware/campus-admin/internal/domain/nav"
)

// AccessHandlers exposes the permission checker for the signed-in identity.
type AccessHandlers struct{}

// accessSummary is the capability view feature modules gate their UI on.
type accessSummary struct {
	Role              auth.Role   `json:"role"`
	Routes            []nav.Route `json:"routes"`
	CanViewFinancial  bool        `json:"can_view_financial"`
	CanViewReports    bool        `json:"can_view_reports"`
	CanManageSystem   bool        `json:"can_manage_system"`
	RestrictedMessage string      `json:"restricted_message"`
}

// Summary returns the composite capability view for the signed-in identity.
// GET /api/access.
func (h *AccessHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	reqAuth, _ := GetAuthFromContext(r.Context())
	checker := access.ForIdentity(reqAuth.Account.Identity)

	WriteJSON(w, http.StatusOK, accessSummary{
		Role:              checker.Role(),
		Routes:            checker.AccessibleRoutes(),
		CanViewFinancial:  checker.CanViewFinancial(),
		CanViewReports:    checker.CanViewReports(),
		CanManageSystem:   checker.CanManageSystem(),
		RestrictedMessage: checker.RestrictedMessage(),
	})
}

type capabilityRequest struct {
	Resource string `json:"resource"`
}

// capabilityResponse reports create/edit/delete rights for one resource.
type capabilityResponse struct {
	Resource  string `json:"resource"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

// Capability reports create/edit/delete rights for a resource tag.
// POST /api/access/capability.
func (h *AccessHandlers) Capability(w http.ResponseWriter, r *http.Request) {
	var req capabilityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	reqAuth, _ := GetAuthFromContext(r.Context())
	checker := access.ForIdentity(reqAuth.Account.Identity)
	resource := auth.Permission(req.Resource)

	WriteJSON(w, http.StatusOK, capabilityResponse{
		Resource:  req.Resource,
		CanCreate: checker.CanCreate(resource),
		CanEdit:   checker.CanEdit(resource),
		CanDelete: checker.CanDelete(resource),
	})
}
