// Package testhelpers provides utilities for testing the bid generator's
// handlers against temporary flat-file storage.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bidgeneration/storage"
)

// NewTestDirs creates a temporary storage layout with all directories in
// place. Cleanup happens automatically when the test finishes.
func NewTestDirs(t *testing.T) storage.Dirs {
	t.Helper()

	base := t.TempDir()
	dirs := storage.Dirs{
		Profiles: filepath.Join(base, "gc_profiles"),
		Bids:     filepath.Join(base, "saved_bids"),
		Output:   filepath.Join(base, "output"),
	}

	if err := storage.Setup(dirs); err != nil {
		t.Fatalf("failed to set up test storage: %v", err)
	}

	return dirs
}

// WriteTestProfile writes a valid GC profile record and returns its
// identifier.
func WriteTestProfile(t *testing.T, dirs storage.Dirs, name string) string {
	t.Helper()

	id := name + "_config.json"
	content := `{
	"gc_name": "Acme Builders",
	"license": "CA-123456",
	"contact": "bids@acmebuilders.test",
	"phone": "555-0142",
	"markup_percent": 15,
	"tone": "professional",
	"legal": "This bid is valid for 30 days."
}`
	if err := os.WriteFile(filepath.Join(dirs.Profiles, id), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test profile: %v", err)
	}
	return id
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
