package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bidgeneration/services"
	"bidgeneration/testhelpers"
)

func TestHandleExportCSV(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	handler := HandleExportCSV(dirs)

	state := newSessionState()
	state.Items[0] = services.PriceItem(state.Items[0], 5)

	req := httptest.NewRequest(http.MethodGet, "/bid/export/csv", nil)
	req = withSession(req, state)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", got)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), ".csv") {
		t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "Description,Quantity,Unit,Unit Price,Total") {
		t.Errorf("CSV header missing, got %q", body[:min(len(body), 80)])
	}
}

func TestHandleExportExcel(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	handler := HandleExportExcel(dirs)

	req := httptest.NewRequest(http.MethodGet, "/bid/export/excel", nil)
	req = withSession(req, newSessionState())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty Excel body")
	}
}

func TestHandleExportPDF_RequiresProfile(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	handler := HandleExportPDF(dirs)

	req := httptest.NewRequest(http.MethodGet, "/bid/export/pdf", nil)
	req = withSession(req, newSessionState())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rec.Code)
	}
}

func TestHandleExportPDF_WithProfile(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	id := testhelpers.WriteTestProfile(t, dirs, "acme")
	handler := HandleExportPDF(dirs)

	state := newSessionState()
	state.ProfileID = id

	req := httptest.NewRequest(http.MethodGet, "/bid/export/pdf", nil)
	req = withSession(req, state)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body is not a PDF stream")
	}
}
