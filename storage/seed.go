package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bidgeneration/services"
)

// seedProfileFilename is the identifier of the starter profile written on
// first run.
const seedProfileFilename = "sample_gc_config.json"

// SeedDefaultProfile writes a starter GC profile when the profile
// directory contains no profile records, so the profile dropdown is never
// empty on a fresh install. It does nothing when any profile exists.
func SeedDefaultProfile(profileDir string) error {
	ids, err := services.ListProfiles(profileDir)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(ids) > 0 {
		return nil
	}

	profile := services.Profile{
		GCName:        "Sample General Contracting LLC",
		License:       "000000",
		Contact:       "estimating@example.com",
		Phone:         "555-0100",
		MarkupPercent: 10,
		Tone:          "professional",
		Legal:         "This proposal is an estimate only and is valid for 30 days from the date of issue. Final pricing is subject to site conditions and a signed contract.",
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("seed: encode profile: %w", err)
	}

	if err := os.WriteFile(filepath.Join(profileDir, seedProfileFilename), data, 0o644); err != nil {
		return fmt.Errorf("seed: write profile: %w", err)
	}
	return nil
}
