package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"bidgeneration/handlers"
	"bidgeneration/storage"
)

func main() {
	app := pocketbase.New()

	dirs := storage.DefaultDirs()
	sessions := handlers.NewSessionStore()

	// Ensure storage directories exist and seed a starter profile on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := storage.Setup(dirs); err != nil {
			return err
		}
		if err := storage.SeedDefaultProfile(dirs.Profiles); err != nil {
			log.Printf("Warning: profile seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply session middleware globally
		se.Router.BindFunc(handlers.SessionMiddleware(sessions))

		// ── Bid form ─────────────────────────────────────────────
		se.Router.GET("/bid", handlers.HandleBidPage(dirs))

		// ── Session state updates ────────────────────────────────
		se.Router.POST("/bid/mode", handlers.HandleModeSelect(dirs))
		se.Router.POST("/bid/profile", handlers.HandleProfileSelect(dirs))
		se.Router.POST("/bid/tax", handlers.HandleTaxSet(dirs))
		se.Router.POST("/bid/upload", handlers.HandleUpload(dirs))

		// ── Line item pricing ────────────────────────────────────
		se.Router.PATCH("/bid/items/{index}", handlers.HandleItemPrice(dirs))

		// ── Snapshots ────────────────────────────────────────────
		se.Router.POST("/bid/save", handlers.HandleBidSave(dirs))
		se.Router.POST("/bid/load/{id}", handlers.HandleBidLoad(dirs))

		// ── Document generation and download ─────────────────────
		se.Router.POST("/bid/generate", handlers.HandleGenerate(dirs))
		se.Router.GET("/bid/download", handlers.HandleDownload(dirs))

		// ── Ledger exports ───────────────────────────────────────
		se.Router.GET("/bid/export/csv", handlers.HandleExportCSV(dirs))
		se.Router.GET("/bid/export/excel", handlers.HandleExportExcel(dirs))
		se.Router.GET("/bid/export/pdf", handlers.HandleExportPDF(dirs))

		// Redirect home to the bid form
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/bid")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
