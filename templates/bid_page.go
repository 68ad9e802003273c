package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// BidPage renders the full bid form page inside the layout shell.
func BidPage(data BidPageData) templ.Component {
	return Layout("ZGZO.AI - Bid Generator", bidForm(data))
}

func bidForm(data BidPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<h1>ZGZO.AI - Bid Generator</h1>`)

		writeProfileSection(&b, data)
		writeUploadSection(&b, data)
		writeModeSection(&b, data)

		b.WriteString(`<div id="pricing-panel">`)
		writePricingPanel(&b, data)
		b.WriteString(`</div>`)

		writeActionsSection(&b, data)
		writeSavedBidsSection(&b, data)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PricingPanel renders only the price-entry table and totals, used as the
// HTMX swap target when a unit price or the tax percent changes.
func PricingPanel(data BidPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePricingPanel(&b, data)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeProfileSection(b *strings.Builder, data BidPageData) {
	b.WriteString(`<section class="card"><h2>1. Select GC Profile</h2>`)

	if len(data.Profiles) == 0 {
		b.WriteString(`<p class="warning">No GC profiles found. Please create one in the Config Creator first.</p></section>`)
		return
	}

	b.WriteString(`<select name="profile" hx-post="/bid/profile" hx-trigger="change" hx-target="body" hx-swap="none">`)
	b.WriteString(`<option value="">Choose GC Profile</option>`)
	for _, p := range data.Profiles {
		selected := ""
		if p.Selected {
			selected = ` selected`
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(p.ID), selected, templ.EscapeString(p.ID))
	}
	b.WriteString(`</select>`)

	if s := data.ProfileSummary; s != nil {
		fmt.Fprintf(b, `<p class="profile-summary">Using profile: <strong>%s</strong><br/>License #: %s<br/>Markup: %s%%<br/>Tone: %s</p>`,
			templ.EscapeString(s.GCName), templ.EscapeString(s.License),
			templ.EscapeString(s.Markup), templ.EscapeString(s.Tone))
	}
	b.WriteString(`</section>`)
}

func writeUploadSection(b *strings.Builder, data BidPageData) {
	b.WriteString(`<section class="card"><h2>2. Upload Specs or Drawings</h2>`)
	b.WriteString(`<form hx-post="/bid/upload" hx-encoding="multipart/form-data" hx-swap="none">`)
	b.WriteString(`<input type="file" name="spec_file" accept=".pdf,.docx"/>`)
	b.WriteString(`<button type="submit">Upload</button></form>`)
	if data.UploadedFile != "" {
		fmt.Fprintf(b, `<p class="hint">Received: %s</p>`, templ.EscapeString(data.UploadedFile))
	}
	b.WriteString(`</section>`)
}

func writeModeSection(b *strings.Builder, data BidPageData) {
	b.WriteString(`<section class="card"><h2>3. Select Pricing Method</h2>`)
	for _, mode := range []struct{ Value, Label string }{
		{"markup", "Use Markup"},
		{"manual", "Enter Prices Manually"},
	} {
		checked := ""
		if data.PricingMode == mode.Value {
			checked = ` checked`
		}
		fmt.Fprintf(b, `<label><input type="radio" name="mode" value="%s"%s hx-post="/bid/mode" hx-swap="none"/> %s</label>`,
			mode.Value, checked, mode.Label)
	}
	b.WriteString(`</section>`)
}

func writePricingPanel(b *strings.Builder, data BidPageData) {
	if data.PricingMode != "manual" {
		b.WriteString(`<section class="card"><p class="hint">Markup pricing uses the standard cost table.</p></section>`)
		return
	}

	b.WriteString(`<section class="card"><h2>Manual Price Entry</h2>`)
	b.WriteString(`<table class="items"><thead><tr><th>Description</th><th>Quantity</th><th>Unit</th><th>Unit Price</th><th>Total</th></tr></thead><tbody>`)
	for _, item := range data.Items {
		fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td><td>%s</td>`,
			templ.EscapeString(item.Description), templ.EscapeString(item.Quantity), templ.EscapeString(item.Unit))
		fmt.Fprintf(b, `<td><input type="number" min="0" step="0.01" name="unit_price" value="%s" hx-patch="/bid/items/%d" hx-trigger="change" hx-target="#pricing-panel"/></td>`,
			templ.EscapeString(item.UnitPrice), item.Index)
		fmt.Fprintf(b, `<td>%s</td></tr>`, templ.EscapeString(item.Total))
	}
	b.WriteString(`</tbody></table>`)

	fmt.Fprintf(b, `<label>Tax %% <input type="number" min="0" max="100" step="0.01" name="tax_percent" value="%s" hx-post="/bid/tax" hx-trigger="change" hx-target="#pricing-panel"/></label>`,
		templ.EscapeString(data.TaxPercent))
	fmt.Fprintf(b, `<h3>Subtotal: %s</h3>`, templ.EscapeString(data.Subtotal))
	fmt.Fprintf(b, `<h3>Total with Tax: %s</h3>`, templ.EscapeString(data.TotalWithTax))
	b.WriteString(`</section>`)
}

func writeActionsSection(b *strings.Builder, data BidPageData) {
	b.WriteString(`<section class="card"><h2>4. Generate</h2>`)
	b.WriteString(`<button hx-post="/bid/generate" hx-swap="none">Generate Bid Document</button> `)
	b.WriteString(`<button hx-post="/bid/save" hx-swap="none">Save Bid</button>`)
	if data.HasOutput {
		b.WriteString(` <a href="/bid/download" class="button">Download Bid Document</a>`)
	}
	b.WriteString(`<p class="exports">Export ledger: <a href="/bid/export/csv">CSV</a> | <a href="/bid/export/excel">Excel</a> | <a href="/bid/export/pdf">PDF preview</a></p>`)
	b.WriteString(`</section>`)
}

func writeSavedBidsSection(b *strings.Builder, data BidPageData) {
	b.WriteString(`<section class="card"><h2>Saved Bids</h2>`)
	if len(data.SavedBids) == 0 {
		b.WriteString(`<p class="hint">No saved bids yet.</p></section>`)
		return
	}
	b.WriteString(`<ul class="saved-bids">`)
	for _, id := range data.SavedBids {
		fmt.Fprintf(b, `<li>%s <button hx-post="/bid/load/%s" hx-swap="none">Load</button></li>`,
			templ.EscapeString(id), templ.EscapeString(id))
	}
	b.WriteString(`</ul></section>`)
}
