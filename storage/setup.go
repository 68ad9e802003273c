// Package storage manages the flat-file directories the bid generator
// reads and writes: GC profiles, saved-bid snapshots and generated output.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dirs holds the storage directory layout.
type Dirs struct {
	Profiles string
	Bids     string
	Output   string
}

// DefaultDirs returns the standard layout relative to the working
// directory.
func DefaultDirs() Dirs {
	return Dirs{
		Profiles: "gc_profiles",
		Bids:     "saved_bids",
		Output:   "output",
	}
}

// OutputPath returns the full path of the well-known generated document
// inside the output directory.
func (d Dirs) OutputPath(filename string) string {
	return filepath.Join(d.Output, filename)
}

// Setup ensures all storage directories exist.
func Setup(d Dirs) error {
	for _, dir := range []string{d.Profiles, d.Bids, d.Output} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage directory %q: %w", dir, err)
		}
	}
	return nil
}
