// Package handlers contains the HTTP handlers for the bid generator's
// interactive surface. Every user action is one synchronous pass over the
// current session state.
package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"

	"bidgeneration/services"
)

type contextKey string

// SessionKey locates the SessionState in the request context.
const SessionKey contextKey = "bidSession"

const sessionCookie = "bid_session"

// SessionState is the explicit per-session state every operation works
// against: the current ledger, profile selection, pricing mode and tax
// percentage. Nothing here is shared across sessions.
type SessionState struct {
	ProfileID    string
	PricingMode  services.PricingMode
	TaxPercent   float64
	Items        []services.LineItem
	UploadedFile string
}

// newSessionState returns the state a fresh session starts from: markup
// pricing, the default catalog, 8% tax.
func newSessionState() *SessionState {
	return &SessionState{
		PricingMode: services.ModeMarkup,
		TaxPercent:  8.0,
		Items:       services.DefaultItems(),
	}
}

// SessionStore holds the in-memory session states, keyed by session
// cookie. The process assumes a single interactive user; the mutex only
// guards the map against the HTTP server's concurrent requests.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*SessionState
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*SessionState)}
}

// Get returns the state for id, creating a fresh one if absent.
func (s *SessionStore) Get(id string) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		state = newSessionState()
		s.sessions[id] = state
	}
	return state
}

// GetSession extracts the session state from the request context.
func GetSession(r *http.Request) *SessionState {
	if val, ok := r.Context().Value(SessionKey).(*SessionState); ok {
		return val
	}
	return newSessionState()
}

// SessionMiddleware reads the session cookie (setting one on first visit),
// resolves the session state from the store and places it in the request
// context for all handlers.
func SessionMiddleware(store *SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var sessionID string

		cookie, err := e.Request.Cookie(sessionCookie)
		if err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = security.RandomString(24)
			http.SetCookie(e.Response, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		state := store.Get(sessionID)
		ctx := context.WithValue(e.Request.Context(), SessionKey, state)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
