package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
)

// HandleBidSave snapshots the session's ledger as a timestamp-named JSON
// file.
func HandleBidSave(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)

		id, err := services.SaveLedger(dirs.Bids, session.Items, time.Now())
		if err != nil {
			log.Printf("bid_save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the bid")
		}

		SetToast(e, "success", "Bid saved as "+id)
		e.Response.Header().Set("HX-Redirect", "/bid")
		return e.String(http.StatusOK, "")
	}
}
