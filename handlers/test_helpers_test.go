package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// timeNowFixed returns a stable timestamp for snapshot fixtures.
func timeNowFixed() time.Time {
	return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
}

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// withSession places a session state in the request context, standing in
// for SessionMiddleware.
func withSession(req *http.Request, state *SessionState) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), SessionKey, state))
}
