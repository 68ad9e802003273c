package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
)

// HandleBidLoad replaces the session's ledger with a saved snapshot. A
// failed load (missing or malformed snapshot) leaves the current ledger
// untouched.
func HandleBidLoad(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing bid ID")
		}

		items, err := services.LoadLedger(dirs.Bids, id)
		if err != nil {
			log.Printf("bid_load: %v", err)
			return translateStoreErr(e, err, "Saved bid not found")
		}

		session := GetSession(e.Request)
		session.Items = items
		session.PricingMode = services.ModeManual

		SetToast(e, "success", "Loaded bid "+id)
		e.Response.Header().Set("HX-Redirect", "/bid")
		return e.String(http.StatusOK, "")
	}
}
