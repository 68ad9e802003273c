package handlers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
	"bidgeneration/templates"
)

// formatQty formats a quantity value: whole numbers without decimals, others with 2 decimals.
func formatQty(val float64) string {
	if val == math.Trunc(val) {
		return fmt.Sprintf("%.0f", val)
	}
	return fmt.Sprintf("%.2f", val)
}

// formatPrice formats a unit price for the input field, empty when unset.
func formatPrice(val float64) string {
	if val == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", val)
}

// buildBidPageData assembles the view model for the bid page from the
// session state and the flat-file stores.
func buildBidPageData(dirs storage.Dirs, session *SessionState) templates.BidPageData {
	data := templates.BidPageData{
		PricingMode:  string(session.PricingMode),
		TaxPercent:   fmt.Sprintf("%g", session.TaxPercent),
		UploadedFile: session.UploadedFile,
	}

	profileIDs, err := services.ListProfiles(dirs.Profiles)
	if err != nil {
		log.Printf("bid_page: could not list profiles: %v", err)
	}
	for _, id := range profileIDs {
		data.Profiles = append(data.Profiles, templates.ProfileOption{
			ID:       id,
			Selected: id == session.ProfileID,
		})
	}

	if session.ProfileID != "" {
		profile, err := services.LoadProfile(dirs.Profiles, session.ProfileID)
		if err != nil {
			log.Printf("bid_page: could not load profile %s: %v", session.ProfileID, err)
		} else {
			data.ProfileSummary = &templates.ProfileSummary{
				GCName:  profile.GCName,
				License: profile.License,
				Markup:  fmt.Sprintf("%g", profile.MarkupPercent),
				Tone:    profile.DisplayTone(),
			}
		}
	}

	for i, item := range session.Items {
		data.Items = append(data.Items, templates.ItemView{
			Index:       i,
			Description: item.Description,
			Quantity:    formatQty(item.Quantity),
			Unit:        item.Unit,
			UnitPrice:   formatPrice(item.UnitPrice),
			Total:       services.FormatUSD(item.Total),
		})
	}

	summary := services.Summarize(session.Items, session.TaxPercent)
	data.Subtotal = services.FormatUSD(summary.Subtotal)
	data.TotalWithTax = services.FormatUSD(summary.TotalWithTax)

	savedBids, err := services.ListSavedBids(dirs.Bids)
	if err != nil {
		log.Printf("bid_page: could not list saved bids: %v", err)
	}
	data.SavedBids = savedBids

	if _, err := os.Stat(dirs.OutputPath(services.OutputFilename)); err == nil {
		data.HasOutput = true
	}

	return data
}

// HandleBidPage renders the main bid form page.
func HandleBidPage(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		data := buildBidPageData(dirs, session)
		component := templates.BidPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// renderPricingPanel re-renders the pricing panel partial after an HTMX
// price or tax change.
func renderPricingPanel(e *core.RequestEvent, dirs storage.Dirs, session *SessionState) error {
	data := buildBidPageData(dirs, session)
	component := templates.PricingPanel(data)
	return component.Render(e.Request.Context(), e.Response)
}

// translateStoreErr maps service errors onto warning toasts; anything
// unexpected becomes a generic error toast.
func translateStoreErr(e *core.RequestEvent, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return WarningToast(e, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrMissingField):
		return WarningToast(e, http.StatusUnprocessableEntity, "Profile is missing required fields")
	case errors.Is(err, services.ErrMalformedData):
		return WarningToast(e, http.StatusUnprocessableEntity, "Stored data could not be read")
	default:
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
