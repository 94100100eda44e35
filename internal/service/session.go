package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campusware/campus-admin/internal/domain/auth"
	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

// DefaultSessionTTL is how long a signed-in session stays valid.
const DefaultSessionTTL = 24 * time.Hour

// Storage slot suffixes. The two slots are always written and cleared
// together; observing one without the other is treated as corruption.
const (
	identitySlot = ":identity"
	sessionSlot  = ":session"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Directory ports.Directory
	Store     ports.StateStore
	TTL       time.Duration    // default DefaultSessionTTL
	Now       func() time.Time // injectable clock for tests
	Logger    *slog.Logger
}

// SessionService owns the current identity and its expiry: sign-in against
// the directory, restore from durable client storage, sign-out. It never
// routes; the router engine never touches identity.
type SessionService struct {
	directory ports.Directory
	store     ports.StateStore
	ttl       time.Duration
	now       func() time.Time
	logger    *slog.Logger

	// ephemeral holds session-scoped, non-durable values cached by feature
	// modules. Cleared on sign-out along with durable storage.
	mu        sync.Mutex
	ephemeral map[string]map[string]string
}

// NewSessionService constructs a SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		directory: opts.Directory,
		store:     opts.Store,
		ttl:       ttl,
		now:       now,
		logger:    logger,
		ephemeral: make(map[string]map[string]string),
	}
}

// Account pairs an identity with its session credential state.
type Account struct {
	Identity auth.Identity `json:"identity"`
	Session  auth.Session  `json:"session"`
}

// SignIn resolves credentials against the directory and persists the new
// identity and session. On failure nothing is persisted.
func (s *SessionService) SignIn(ctx context.Context, clientID string, creds ports.Credentials) (*Account, error) {
	if clientID == "" {
		return nil, apperrors.Validation("client ID is required")
	}

	identity, err := s.directory.Verify(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	issued := s.now()
	session := auth.Session{
		Token:     uuid.NewString(),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.ttl),
	}

	if persistErr := s.persist(ctx, clientID, identity, session); persistErr != nil {
		return nil, persistErr
	}

	s.logger.InfoContext(ctx, "signed in",
		"user", identity.ID,
		"role", identity.Role,
		"expires_at", session.ExpiresAt)

	return &Account{Identity: identity, Session: session}, nil
}

// Restore reads the persisted identity and session for a client. Expired or
// corrupt state is cleared (both slots together) and surfaces as a
// session_expired error; a client with no persisted state gets not_found.
func (s *SessionService) Restore(ctx context.Context, clientID string) (*Account, error) {
	if clientID == "" {
		return nil, apperrors.NotFound("no session for client")
	}

	sessionData, err := s.store.Load(ctx, clientID+sessionSlot)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.NotFound("no session for client")
		}
		return nil, fmt.Errorf("load session slot: %w", err)
	}

	var session auth.Session
	if unmarshalErr := json.Unmarshal(sessionData, &session); unmarshalErr != nil {
		return nil, s.expire(ctx, clientID, apperrors.StorageCorrupt("decode persisted session", unmarshalErr))
	}

	if session.Expired(s.now()) {
		return nil, s.expire(ctx, clientID, nil)
	}

	identityData, err := s.store.Load(ctx, clientID+identitySlot)
	if err != nil {
		// A session without its identity slot is corruption; never adopt half.
		return nil, s.expire(ctx, clientID, err)
	}

	var identity auth.Identity
	if unmarshalErr := json.Unmarshal(identityData, &identity); unmarshalErr != nil {
		return nil, s.expire(ctx, clientID, apperrors.StorageCorrupt("decode persisted identity", unmarshalErr))
	}

	return &Account{Identity: identity, Session: session}, nil
}

// SignOut clears the durable slots (together) and the ephemeral cache.
func (s *SessionService) SignOut(ctx context.Context, clientID string) error {
	if clientID == "" {
		return nil // Nothing to sign out
	}

	s.clearEphemeral(clientID)

	if err := s.store.Delete(ctx, clientID+identitySlot, clientID+sessionSlot); err != nil {
		return fmt.Errorf("clear client state: %w", err)
	}

	s.logger.InfoContext(ctx, "signed out", "client", clientID)
	return nil
}

// CachePut stores a session-scoped, non-durable value for a client.
func (s *SessionService) CachePut(clientID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, ok := s.ephemeral[clientID]
	if !ok {
		bucket = make(map[string]string)
		s.ephemeral[clientID] = bucket
	}
	bucket[key] = value
}

// CacheGet reads a session-scoped value for a client.
func (s *SessionService) CacheGet(clientID, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.ephemeral[clientID][key]
	return value, ok
}

func (s *SessionService) clearEphemeral(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ephemeral, clientID)
}

// persist writes both slots. A failure on the second write rolls back the
// first so sign-in never leaves partial state behind.
func (s *SessionService) persist(ctx context.Context, clientID string, identity auth.Identity, session auth.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())

	identityData, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if saveErr := s.store.Save(ctx, clientID+identitySlot, identityData, ttl); saveErr != nil {
		return fmt.Errorf("save identity slot: %w", saveErr)
	}
	if saveErr := s.store.Save(ctx, clientID+sessionSlot, sessionData, ttl); saveErr != nil {
		if cleanupErr := s.store.Delete(ctx, clientID+identitySlot); cleanupErr != nil {
			s.logger.WarnContext(ctx, "cleanup after partial sign-in failed", "error", cleanupErr)
		}
		return fmt.Errorf("save session slot: %w", saveErr)
	}
	return nil
}

// expire clears both slots and returns a session_expired error. The cause,
// when present, explains what was wrong with the persisted state.
func (s *SessionService) expire(ctx context.Context, clientID string, cause error) error {
	if err := s.store.Delete(ctx, clientID+identitySlot, clientID+sessionSlot); err != nil {
		s.logger.WarnContext(ctx, "clear expired client state failed", "error", err)
	}
	expired := apperrors.SessionExpired("session expired, please sign in again")
	expired.Cause = cause
	return expired
}
