package services

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

var assembleTime = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func TestAssemble_MarkupMode(t *testing.T) {
	// A stale priced ledger must not leak into markup mode.
	stale := []LineItem{PriceItem(LineItem{Description: "Stale", Quantity: 2, Unit: "ea"}, 99)}

	doc, err := Assemble(testProfile(), ModeMarkup, stale, Summarize(stale, 8), assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if len(doc.CostRows) != 5 {
		t.Fatalf("markup mode cost rows = %d, want the 5 fixed defaults", len(doc.CostRows))
	}
	want := []CostRow{
		{Index: "02", Description: "Demolition", Cost: "$5,000"},
		{Index: "03", Description: "Concrete", Cost: "$12,000"},
		{Index: "09", Description: "Finishes", Cost: "$8,000"},
		{Index: "15", Description: "Plumbing", Cost: "$10,000"},
		{Index: "16", Description: "Electrical", Cost: "$7,000"},
	}
	if !reflect.DeepEqual(doc.CostRows, want) {
		t.Errorf("cost rows = %+v, want fixed defaults %+v", doc.CostRows, want)
	}
	if len(doc.ScopeOfWork) != 5 {
		t.Errorf("scope entries = %d, want 5 fixed defaults", len(doc.ScopeOfWork))
	}
	if len(doc.SummaryLines) != 0 {
		t.Errorf("markup mode should have no summary lines, got %v", doc.SummaryLines)
	}
}

func TestAssemble_ManualMode_SingleItem(t *testing.T) {
	items := []LineItem{PriceItem(LineItem{Description: "Demo", Quantity: 10, Unit: "ea"}, 5.00)}
	summary := Summarize(items, 8)

	doc, err := Assemble(testProfile(), ModeManual, items, summary, assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if len(doc.CostRows) != 1 {
		t.Fatalf("cost rows = %d, want exactly 1", len(doc.CostRows))
	}
	row := doc.CostRows[0]
	if row.Index != "01" || row.Description != "Demo" || row.Cost != "$50.00" {
		t.Errorf("row = %+v, want {01 Demo $50.00}", row)
	}
	if len(doc.ScopeOfWork) != 1 || doc.ScopeOfWork[0] != "Demo" {
		t.Errorf("scope = %v, want derived from item descriptions", doc.ScopeOfWork)
	}
	if len(doc.SummaryLines) != 2 {
		t.Fatalf("summary lines = %v, want subtotal and tax total", doc.SummaryLines)
	}
	if doc.SummaryLines[0] != "Subtotal: $50.00" {
		t.Errorf("subtotal line = %q", doc.SummaryLines[0])
	}
	if doc.SummaryLines[1] != "Total with Tax (8.0%): $54.00" {
		t.Errorf("tax line = %q", doc.SummaryLines[1])
	}
}

func TestAssemble_ManualMode_SequentialIndexes(t *testing.T) {
	items := []LineItem{
		PriceItem(LineItem{Description: "Demo", Quantity: 1, Unit: "ls"}, 100),
		PriceItem(LineItem{Description: "Concrete", Quantity: 2, Unit: "cy"}, 200),
		PriceItem(LineItem{Description: "Paint", Quantity: 3, Unit: "gal"}, 30),
	}

	doc, err := Assemble(testProfile(), ModeManual, items, Summarize(items, 0), assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for i, want := range []string{"01", "02", "03"} {
		if doc.CostRows[i].Index != want {
			t.Errorf("row %d index = %q, want %q", i, doc.CostRows[i].Index, want)
		}
	}
}

// Manual mode with nothing priced falls back to the fixed defaults so the
// generated document never carries an empty cost table.
func TestAssemble_ManualMode_EmptyLedgerFallsBack(t *testing.T) {
	unpriced := DefaultItems()

	doc, err := Assemble(testProfile(), ModeManual, unpriced, Summarize(unpriced, 8), assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if len(doc.CostRows) != 5 || doc.CostRows[0].Description != "Demolition" {
		t.Errorf("unpriced manual mode should fall back to default cost table, got %+v", doc.CostRows)
	}
}

func TestAssemble_FixedSections(t *testing.T) {
	doc, err := Assemble(testProfile(), ModeMarkup, nil, PricingSummary{}, assembleTime)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if doc.Title != "Bid Proposal" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.HeaderLines) != 6 {
		t.Fatalf("header lines = %d, want 6", len(doc.HeaderLines))
	}
	if doc.HeaderLines[5] != "Date: August 30, 2026" {
		t.Errorf("date line = %q, want full month name format", doc.HeaderLines[5])
	}
	if doc.HeaderLines[2] != "Prepared by: Acme Builders" {
		t.Errorf("preparer line = %q", doc.HeaderLines[2])
	}
	if len(doc.Timeline) != 3 {
		t.Errorf("timeline = %v, want three fixed phases", doc.Timeline)
	}
	if len(doc.Inclusions) != 2 || len(doc.Exclusions) != 2 {
		t.Errorf("inclusions/exclusions = %v / %v, want fixed boilerplate", doc.Inclusions, doc.Exclusions)
	}
	if doc.AckName != "Acme Builders" || doc.AckRole != "Authorized Estimator" {
		t.Errorf("acknowledgement = %q / %q", doc.AckName, doc.AckRole)
	}
	if doc.Legal != testProfile().Legal {
		t.Errorf("legal notice = %q, want profile legal text verbatim", doc.Legal)
	}
}

func TestAssemble_MissingProfileField(t *testing.T) {
	profile := testProfile()
	profile.Legal = ""

	_, err := Assemble(profile, ModeMarkup, nil, PricingSummary{}, assembleTime)
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("Assemble() error = %v, want ErrMissingField", err)
	}
}
