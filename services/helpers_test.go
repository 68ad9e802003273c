package services

import (
	"encoding/json"
	"testing"
)

// mustJSON marshals v or fails the test.
func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return string(data)
}

// testProfile returns a fully-populated profile for assembler and export
// tests.
func testProfile() Profile {
	return Profile{
		GCName:        "Acme Builders",
		License:       "CA-123456",
		Contact:       "bids@acmebuilders.test",
		Phone:         "555-0142",
		MarkupPercent: 15,
		Tone:          "professional",
		Legal:         "This bid is valid for 30 days.",
	}
}
