package services

import (
	"fmt"
	"time"
)

// PricingMode selects how the cost table of a bid document is built.
type PricingMode string

const (
	// ModeMarkup uses the fixed default scope and cost table.
	ModeMarkup PricingMode = "markup"
	// ModeManual derives scope and costs from user-priced line items.
	ModeManual PricingMode = "manual"
)

// CostRow is one data row of the Cost Estimate Summary table.
type CostRow struct {
	Index       string
	Description string
	Cost        string
}

// BidDocument is the assembled, ready-to-export document representation.
// Section ordering is fixed: title, header block, page break, scope of
// work, cost table, timeline, inclusions & exclusions, acknowledgement,
// legal notice. It is immutable once assembled.
type BidDocument struct {
	Title        string
	HeaderLines  []string
	ScopeOfWork  []string
	CostHeader   [3]string
	CostRows     []CostRow
	SummaryLines []string
	Timeline     []string
	Inclusions   []string
	Exclusions   []string
	AckName      string
	AckRole      string
	AckSignature string
	Legal        string
}

// defaultScopeOfWork is the fixed scope list used in markup mode.
var defaultScopeOfWork = []string{
	"Division 02: Selective demolition of tile and plumbing fixtures",
	"Division 03: New slab pour for restroom flooring",
	"Division 09: New ceramic wall tile and paint finishes",
	"Division 15: Installation of ADA-compliant fixtures and hot water piping",
	"Division 16: Relocate lighting, add occupancy sensors",
}

// defaultCostRows is the fixed cost table used in markup mode: five
// division/description/cost triples.
var defaultCostRows = []CostRow{
	{Index: "02", Description: "Demolition", Cost: "$5,000"},
	{Index: "03", Description: "Concrete", Cost: "$12,000"},
	{Index: "09", Description: "Finishes", Cost: "$8,000"},
	{Index: "15", Description: "Plumbing", Cost: "$10,000"},
	{Index: "16", Description: "Electrical", Cost: "$7,000"},
}

// hasPricedItems reports whether at least one ledger row carries a priced
// total.
func hasPricedItems(items []LineItem) bool {
	for _, item := range items {
		if item.Total > 0 {
			return true
		}
	}
	return false
}

// Assemble builds a BidDocument from a profile and, in manual mode, a
// priced ledger with its pricing summary. In markup mode the fixed default
// scope and cost table are used. Manual mode with no priced rows falls
// back to the same defaults, so the generated document never has an empty
// cost table.
//
// It fails with ErrMissingField when a referenced profile key is empty,
// which only happens if the caller bypassed LoadProfile validation.
func Assemble(profile Profile, mode PricingMode, items []LineItem, summary PricingSummary, now time.Time) (BidDocument, error) {
	for key, val := range map[string]string{
		"gc_name": profile.GCName,
		"license": profile.License,
		"contact": profile.Contact,
		"phone":   profile.Phone,
		"legal":   profile.Legal,
	} {
		if val == "" {
			return BidDocument{}, fmt.Errorf("profile key %q: %w", key, ErrMissingField)
		}
	}

	doc := BidDocument{
		Title: "Bid Proposal",
		HeaderLines: []string{
			"Project: Test Project",
			"Prepared for: City of Testville",
			"Prepared by: " + profile.GCName,
			"License #: " + profile.License,
			"Contact: " + profile.Contact + " | " + profile.Phone,
			"Date: " + now.Format("January 2, 2006"),
		},
		CostHeader: [3]string{"Division", "Description", "Estimated Cost"},
		Timeline: []string{
			"Phase 1 – Demolition: Week 1",
			"Phase 2 – Concrete & Plumbing: Weeks 2–3",
			"Phase 3 – Electrical & Finishes: Weeks 4–5",
		},
		Inclusions: []string{
			"Labor, material, and equipment to complete scope",
			"Cleanup and disposal",
		},
		Exclusions: []string{
			"Permits and inspection fees",
			"Hazardous material abatement",
		},
		AckName:      profile.GCName,
		AckRole:      "Authorized Estimator",
		AckSignature: "Signature: _________________________",
		Legal:        profile.Legal,
	}

	if mode == ModeManual && hasPricedItems(items) {
		doc.CostHeader[0] = "Item"
		for i, item := range items {
			doc.ScopeOfWork = append(doc.ScopeOfWork, item.Description)
			doc.CostRows = append(doc.CostRows, CostRow{
				Index:       fmt.Sprintf("%02d", i+1),
				Description: item.Description,
				Cost:        FormatUSD(item.Total),
			})
		}
		doc.SummaryLines = []string{
			"Subtotal: " + FormatUSD(summary.Subtotal),
			fmt.Sprintf("Total with Tax (%.1f%%): %s", summary.TaxPercent, FormatUSD(summary.TotalWithTax)),
		}
		return doc, nil
	}

	doc.ScopeOfWork = append(doc.ScopeOfWork, defaultScopeOfWork...)
	doc.CostRows = append(doc.CostRows, defaultCostRows...)
	return doc, nil
}
