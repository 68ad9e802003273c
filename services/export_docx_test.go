package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderDocx_WritesOutputFile(t *testing.T) {
	doc, err := Assemble(testProfile(), ModeMarkup, nil, PricingSummary{}, assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	outputPath := filepath.Join(t.TempDir(), OutputFilename)
	result, err := RenderDocx(doc, outputPath)
	if err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderDocx() returned empty bytes")
	}
	// OOXML documents are zip archives.
	if string(result[:2]) != "PK" {
		t.Errorf("result does not start with zip header, got %q", string(result[:2]))
	}

	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output file was not written: %v", err)
	}
	if len(written) != len(result) {
		t.Errorf("file bytes (%d) differ from returned bytes (%d)", len(written), len(result))
	}
}

func TestRenderDocx_OverwritesPriorGeneration(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), OutputFilename)
	if err := os.WriteFile(outputPath, []byte("stale output"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Assemble(testProfile(), ModeMarkup, nil, PricingSummary{}, assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	result, err := RenderDocx(doc, outputPath)
	if err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}
	if string(result) == "stale output" {
		t.Error("prior output file was not overwritten")
	}
}

func TestRenderDocx_ManualDocument(t *testing.T) {
	items := []LineItem{PriceItem(LineItem{Description: "Demo", Quantity: 10, Unit: "ea"}, 5.00)}
	doc, err := Assemble(testProfile(), ModeManual, items, Summarize(items, 8), assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	result, err := RenderDocx(doc, filepath.Join(t.TempDir(), OutputFilename))
	if err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderDocx() returned empty bytes")
	}
}
