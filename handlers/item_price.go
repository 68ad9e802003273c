package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
)

// HandleItemPrice sets the unit price of one ledger row and re-renders the
// pricing panel with recomputed totals.
func HandleItemPrice(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid item index")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		raw := strings.TrimSpace(e.Request.FormValue("unit_price"))
		if raw == "" {
			raw = "0"
		}
		unitPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unit price must be a number")
		}
		if unitPrice < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Unit price cannot be negative")
		}

		session := GetSession(e.Request)
		if index < 0 || index >= len(session.Items) {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}

		session.Items[index] = services.PriceItem(session.Items[index], unitPrice)

		return renderPricingPanel(e, dirs, session)
	}
}
