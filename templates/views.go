// Package templates holds the view models and templ components for the
// bid generator's HTML surface.
package templates

// ProfileOption is one entry of the GC profile dropdown.
type ProfileOption struct {
	ID       string
	Selected bool
}

// ProfileSummary shows the fields of the currently selected profile.
type ProfileSummary struct {
	GCName  string
	License string
	Markup  string
	Tone    string
}

// ItemView is one line-item row of the manual price entry table.
type ItemView struct {
	Index       int
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Total       string
}

// BidPageData is the view model for the main bid form page.
type BidPageData struct {
	Profiles       []ProfileOption
	ProfileSummary *ProfileSummary
	PricingMode    string
	Items          []ItemView
	TaxPercent     string
	Subtotal       string
	TotalWithTax   string
	SavedBids      []string
	UploadedFile   string
	HasOutput      bool
}
