package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// SetToast tells the client to show a toast notification. For HTMX requests
// the HX-Trigger header fires a showToast event; a short-lived flash cookie
// carries the same payload across regular redirects where the header is lost.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}

	trigger, err := json.Marshal(map[string]any{"showToast": payload})
	if err != nil {
		log.Printf("toast: marshal HX-Trigger: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(trigger))

	if cookieVal, err := json.Marshal(payload); err == nil {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "flash_toast",
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // JS needs to read it
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ErrorToast reports a failed action. HX-Reswap: none keeps HTMX from
// swapping the error text into the DOM; the HX-Trigger header still fires
// the toast event.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

// WarningToast surfaces a plain warning for an aborted action (missing
// profile, missing saved bid). The process keeps serving; the user may
// retry.
func WarningToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "warning", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
