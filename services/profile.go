package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// profileSuffix identifies general-contractor profile files inside the
// profile directory.
const profileSuffix = "_config.json"

// Profile is a general-contractor identity record used to populate the
// header and footer of generated bid documents. All fields are required in
// the source file; absence is a load error, never a default.
type Profile struct {
	GCName        string  `json:"gc_name"`
	License       string  `json:"license"`
	Contact       string  `json:"contact"`
	Phone         string  `json:"phone"`
	MarkupPercent float64 `json:"markup_percent"`
	Tone          string  `json:"tone"`
	Legal         string  `json:"legal"`
}

// ToneOptions is the enumerated set of accepted profile tones.
var ToneOptions = []string{"professional", "friendly", "formal", "casual"}

// DisplayTone capitalizes the first letter of the profile tone for display,
// e.g. "professional" -> "Professional".
func (p Profile) DisplayTone() string {
	tone := strings.ToLower(strings.TrimSpace(p.Tone))
	if tone == "" {
		return ""
	}
	return strings.ToUpper(tone[:1]) + tone[1:]
}

// ListProfiles returns the identifiers (filenames) of all profile records
// in dir, sorted. A missing directory is an empty list, not an error.
func ListProfiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profiles directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileSuffix) {
			continue
		}
		ids = append(ids, entry.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// requiredProfileKeys are the keys every profile file must carry.
var requiredProfileKeys = []string{
	"gc_name", "license", "contact", "phone", "markup_percent", "tone", "legal",
}

// LoadProfile reads and validates one profile record. Every call re-reads
// from disk; there is no caching. It fails with ErrNotFound when the id
// does not resolve to a profile file, ErrMalformedData when the file is
// not a JSON object, and ErrMissingField when a required key is absent.
func LoadProfile(dir, id string) (Profile, error) {
	if !strings.HasSuffix(id, profileSuffix) {
		return Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(dir, id))
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
		}
		return Profile{}, fmt.Errorf("read profile %q: %w", id, err)
	}

	// Decode to a raw map first so missing keys can be told apart from
	// zero values.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w: %v", id, ErrMalformedData, err)
	}
	for _, key := range requiredProfileKeys {
		if _, ok := raw[key]; !ok {
			return Profile{}, fmt.Errorf("profile %q key %q: %w", id, key, ErrMissingField)
		}
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w: %v", id, ErrMalformedData, err)
	}
	return profile, nil
}
