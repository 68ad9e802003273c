package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
)

// HandleModeSelect switches the session's pricing mode and reloads the
// page so the pricing panel re-renders.
func HandleModeSelect(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		mode := services.PricingMode(strings.TrimSpace(e.Request.FormValue("mode")))
		if mode != services.ModeMarkup && mode != services.ModeManual {
			return ErrorToast(e, http.StatusBadRequest, "Unknown pricing mode")
		}

		session := GetSession(e.Request)
		session.PricingMode = mode

		e.Response.Header().Set("HX-Redirect", "/bid")
		return e.String(http.StatusOK, "")
	}
}

// HandleProfileSelect stores the chosen GC profile in the session after
// validating that it loads cleanly.
func HandleProfileSelect(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		session := GetSession(e.Request)

		id := strings.TrimSpace(e.Request.FormValue("profile"))
		if id == "" {
			session.ProfileID = ""
			e.Response.Header().Set("HX-Redirect", "/bid")
			return e.String(http.StatusOK, "")
		}

		profile, err := services.LoadProfile(dirs.Profiles, id)
		if err != nil {
			log.Printf("profile_select: %v", err)
			return translateStoreErr(e, err, "GC profile not found")
		}

		session.ProfileID = id
		SetToast(e, "success", "Using profile: "+profile.GCName)

		e.Response.Header().Set("HX-Redirect", "/bid")
		return e.String(http.StatusOK, "")
	}
}

// HandleTaxSet updates the session's tax percentage. Values outside
// [0, 100] are rejected here, at the input boundary.
func HandleTaxSet(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		raw := strings.TrimSpace(e.Request.FormValue("tax_percent"))
		tax, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Tax must be a number")
		}
		if tax < 0 || tax > 100 {
			return ErrorToast(e, http.StatusBadRequest, "Tax must be between 0 and 100")
		}

		session := GetSession(e.Request)
		session.TaxPercent = tax

		return renderPricingPanel(e, dirs, session)
	}
}

// HandleUpload accepts a spec or drawing upload. The file's content is
// never parsed; only the filename is remembered for display.
func HandleUpload(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, header, err := e.Request.FormFile("spec_file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "No file was uploaded")
		}
		file.Close()

		session := GetSession(e.Request)
		session.UploadedFile = header.Filename

		SetToast(e, "success", "Received "+header.Filename)
		e.Response.Header().Set("HX-Redirect", "/bid")
		return e.String(http.StatusOK, "")
	}
}
