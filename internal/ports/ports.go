package ports

// Package ports defines interfaces (hexagonal ports) for the navigation and
// session runtime. Implementations live in internal/adapters; orchestration in
// internal/router and internal/service.

import (
	"context"
	"net/url"
	"time"

	"github.com/campusware/campus-admin/internal/domain/auth"
	"github.com/campusware/campus-admin/internal/domain/nav"
)

// HistoryState is the payload attached to each platform history entry.
// State is carried explicitly rather than re-derived from the URL, so a
// restore never depends on guessing.
type HistoryState struct {
	Route  nav.Route         `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

// Platform abstracts the navigation surface the runtime synchronizes with:
// the address bar, the native history mechanism, and document chrome.
//
// Back and Forward deliver the target entry's HistoryState to the handler
// registered with OnPopState, matching platform popstate semantics. Entries
// created before the runtime owned history may deliver a nil state.
type Platform interface {
	// Location returns the current address-bar URL (path and query).
	Location() *url.URL

	// PushState appends a history entry carrying state and sets the address
	// bar to href (a path with optional query string).
	PushState(state HistoryState, href string)

	// ReplaceState overwrites the current history entry in place.
	ReplaceState(state HistoryState, href string)

	// Back and Forward move through native history; no-ops at the bounds.
	Back()
	Forward()

	// OnPopState registers the single handler invoked when the platform moves
	// through history outside the runtime's own PushState calls.
	OnPopState(handler func(state *HistoryState))

	// SetTitle updates the document title.
	SetTitle(title string)

	// ScrollToTop resets the viewport scroll position.
	ScrollToTop()
}

// StateStore is the durable client-scoped key-value storage the session
// manager persists identity and credential state into. Load returns an error
// with code not_found for absent keys.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes the given keys. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Credentials carries a sign-in attempt.
type Credentials struct {
	Username string
	Password string
}

// Directory resolves credentials against the known-identity list. It is the
// external authentication collaborator: token issuance and password hashing
// live behind this interface, not in the runtime.
type Directory interface {
	// Verify returns the identity for valid credentials, or an error with
	// code invalid_credentials.
	Verify(ctx context.Context, creds Credentials) (auth.Identity, error)
}
