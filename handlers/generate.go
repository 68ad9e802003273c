package handlers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
)

// HandleGenerate assembles the bid document from the session state and
// writes it to the fixed output file, overwriting any prior generation.
func HandleGenerate(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)

		if session.ProfileID == "" {
			return WarningToast(e, http.StatusUnprocessableEntity, "Select a GC profile first")
		}

		profile, err := services.LoadProfile(dirs.Profiles, session.ProfileID)
		if err != nil {
			log.Printf("generate: %v", err)
			return translateStoreErr(e, err, "GC profile not found")
		}

		summary := services.Summarize(session.Items, session.TaxPercent)
		doc, err := services.Assemble(profile, session.PricingMode, session.Items, summary, time.Now())
		if err != nil {
			log.Printf("generate: %v", err)
			return translateStoreErr(e, err, "GC profile not found")
		}

		if _, err := services.RenderDocx(doc, dirs.OutputPath(services.OutputFilename)); err != nil {
			log.Printf("generate: failed to render: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate bid document")
		}

		SetToast(e, "success", "Bid document generated")
		e.Response.Header().Set("HX-Redirect", "/bid")
		return e.String(http.StatusOK, "")
	}
}

// HandleDownload serves the most recently generated bid document.
func HandleDownload(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := os.ReadFile(dirs.OutputPath(services.OutputFilename))
		if err != nil {
			if os.IsNotExist(err) {
				return WarningToast(e, http.StatusNotFound, "No bid document has been generated yet")
			}
			log.Printf("download: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not read the bid document")
		}

		e.Response.Header().Set("Content-Type", services.DocxMIMEType)
		e.Response.Header().Set("Content-Disposition", `attachment; filename="`+services.OutputFilename+`"`)
		e.Response.Write(data)
		return nil
	}
}
