package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"bidgeneration/services"
	"bidgeneration/testhelpers"
)

func TestHandleGenerate_WritesOutputFile(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	id := testhelpers.WriteTestProfile(t, dirs, "acme")
	handler := HandleGenerate(dirs)

	state := newSessionState()
	state.ProfileID = id

	rec, req := postForm(t, "/bid/generate", url.Values{}, state)

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/bid")

	if _, err := os.Stat(dirs.OutputPath(services.OutputFilename)); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestHandleGenerate_OverwritesPriorOutput(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	id := testhelpers.WriteTestProfile(t, dirs, "acme")
	handler := HandleGenerate(dirs)

	outputPath := dirs.OutputPath(services.OutputFilename)
	if err := os.WriteFile(outputPath, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	state := newSessionState()
	state.ProfileID = id

	rec, req := postForm(t, "/bid/generate", url.Values{}, state)
	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if string(data) == "stale" {
		t.Error("prior output was not overwritten")
	}
}

func TestHandleGenerate_NoProfileSelected(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	handler := HandleGenerate(dirs)

	rec, req := postForm(t, "/bid/generate", url.Values{}, newSessionState())

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rec.Code)
	}
	if _, err := os.Stat(dirs.OutputPath(services.OutputFilename)); !os.IsNotExist(err) {
		t.Error("output file written without a profile")
	}
}

func TestHandleGenerate_ProfileVanished(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	handler := HandleGenerate(dirs)

	state := newSessionState()
	state.ProfileID = "ghost_config.json"

	rec, req := postForm(t, "/bid/generate", url.Values{}, state)
	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleDownload_ServesGeneratedFile(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	id := testhelpers.WriteTestProfile(t, dirs, "acme")

	// Generate first.
	state := newSessionState()
	state.ProfileID = id
	rec, req := postForm(t, "/bid/generate", url.Values{}, state)
	if err := HandleGenerate(dirs)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	handler := HandleDownload(dirs)
	dlReq := httptest.NewRequest(http.MethodGet, "/bid/download", nil)
	dlReq = withSession(dlReq, state)
	dlRec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(dlReq, dlRec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := dlRec.Header().Get("Content-Type"); got != services.DocxMIMEType {
		t.Errorf("Content-Type = %q, want docx MIME type", got)
	}
	if dlRec.Body.Len() == 0 {
		t.Error("empty download body")
	}
}

func TestHandleDownload_NoOutputYet(t *testing.T) {
	dirs := testhelpers.NewTestDirs(t)
	handler := HandleDownload(dirs)

	req := httptest.NewRequest(http.MethodGet, "/bid/download", nil)
	req = withSession(req, newSessionState())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
