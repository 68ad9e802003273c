package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/services"
	"bidgeneration/storage"
)

// HandleExportCSV downloads the session's ledger as CSV.
func HandleExportCSV(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)

		csvBytes, err := services.ExportCSV(session.Items)
		if err != nil {
			log.Printf("export_csv: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := fmt.Sprintf("bid_items_%d.csv", time.Now().Year())
		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleExportExcel downloads the session's ledger as a styled workbook.
func HandleExportExcel(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		summary := services.Summarize(session.Items, session.TaxPercent)

		xlsxBytes, err := services.GenerateExcel(session.Items, summary)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("bid_items_%d.xlsx", time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleExportPDF downloads a PDF rendition of the assembled bid document
// for preview or printing.
func HandleExportPDF(dirs storage.Dirs) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)

		if session.ProfileID == "" {
			return WarningToast(e, http.StatusUnprocessableEntity, "Select a GC profile first")
		}

		profile, err := services.LoadProfile(dirs.Profiles, session.ProfileID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return translateStoreErr(e, err, "GC profile not found")
		}

		summary := services.Summarize(session.Items, session.TaxPercent)
		doc, err := services.Assemble(profile, session.PricingMode, session.Items, summary, time.Now())
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return translateStoreErr(e, err, "GC profile not found")
		}

		pdfBytes, err := services.GeneratePDF(doc)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("bid_preview_%d.pdf", time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
