package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_CreatesDirectories(t *testing.T) {
	base := t.TempDir()
	dirs := Dirs{
		Profiles: filepath.Join(base, "gc_profiles"),
		Bids:     filepath.Join(base, "saved_bids"),
		Output:   filepath.Join(base, "output"),
	}

	if err := Setup(dirs); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	for _, dir := range []string{dirs.Profiles, dirs.Bids, dirs.Output} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("directory %q not created: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q is not a directory", dir)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	base := t.TempDir()
	dirs := Dirs{
		Profiles: filepath.Join(base, "p"),
		Bids:     filepath.Join(base, "b"),
		Output:   filepath.Join(base, "o"),
	}

	if err := Setup(dirs); err != nil {
		t.Fatalf("first Setup() error = %v", err)
	}
	if err := Setup(dirs); err != nil {
		t.Fatalf("second Setup() error = %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	dirs := Dirs{Output: "output"}
	got := dirs.OutputPath("bid.docx")
	want := filepath.Join("output", "bid.docx")
	if got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}
