package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LineItem is one row of a bid ledger. Total is always derived from
// Quantity and UnitPrice, rounded to cents; it is never edited directly.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// DefaultItems returns the fixed starter catalog for a new bid: the
// description/quantity/unit triples the price-entry form is seeded with.
// Unit prices are zero until the user enters them in manual mode.
func DefaultItems() []LineItem {
	return []LineItem{
		{Description: "Selective demolition of tile and plumbing fixtures", Quantity: 1, Unit: "ls"},
		{Description: "New slab pour for restroom flooring", Quantity: 240, Unit: "sf"},
		{Description: "Ceramic wall tile and paint finishes", Quantity: 480, Unit: "sf"},
		{Description: "ADA-compliant fixtures and hot water piping", Quantity: 6, Unit: "ea"},
		{Description: "Relocate lighting, add occupancy sensors", Quantity: 8, Unit: "ea"},
	}
}

// PriceItem returns item with its unit price set and its total recomputed
// as quantity x unit price, rounded to cents.
func PriceItem(item LineItem, unitPrice float64) LineItem {
	item.UnitPrice = unitPrice
	item.Total = Round2(item.Quantity * unitPrice)
	return item
}

// snapshotIDLayout names saved-bid files at second granularity. Two saves
// within the same second collide; an accepted limitation for a
// single-user process.
const snapshotIDLayout = "20060102-150405"

const snapshotPrefix = "bid_"

func snapshotPath(dir, id string) string {
	return filepath.Join(dir, snapshotPrefix+id+".json")
}

// SaveLedger writes the full ledger as a JSON array to a timestamp-named
// file under dir, creating the directory if needed. It returns the
// snapshot identifier.
func SaveLedger(dir string, items []LineItem, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bids directory: %w", err)
	}

	id := now.Format(snapshotIDLayout)
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode ledger: %w", err)
	}

	if err := os.WriteFile(snapshotPath(dir, id), data, 0o644); err != nil {
		return "", fmt.Errorf("write ledger snapshot: %w", err)
	}
	return id, nil
}

// LoadLedger reads a saved-bid snapshot back into a ledger. It fails with
// ErrNotFound when the identifier does not resolve to a file and with
// ErrMalformedData when the file is not a JSON array of line items.
func LoadLedger(dir, id string) ([]LineItem, error) {
	data, err := os.ReadFile(snapshotPath(dir, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("saved bid %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read saved bid %q: %w", id, err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("saved bid %q: %w: %v", id, ErrMalformedData, err)
	}
	return items, nil
}

// ListSavedBids returns the snapshot identifiers present in dir, newest
// first. A missing directory is an empty list, not an error.
func ListSavedBids(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bids directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), ".json"))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	return ids, nil
}
