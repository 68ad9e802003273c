package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders a BidDocument as a PDF using maroto/v2, preserving
// the document's fixed section ordering. It returns the raw PDF bytes or
// an error.
func GeneratePDF(bid BidDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	// --- Title and header block ---
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(bid.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	for _, line := range bid.HeaderLines {
		addBodyLine(m, line)
	}

	// --- Scope of Work ---
	addSectionHeading(m, "Scope of Work")
	for _, entry := range bid.ScopeOfWork {
		addBodyLine(m, "- "+entry)
	}

	// --- Cost Estimate Summary ---
	addSectionHeading(m, "Cost Estimate Summary")
	addCostTableHeader(m, bid.CostHeader)
	for _, r := range bid.CostRows {
		addCostTableRow(m, r)
	}
	for _, line := range bid.SummaryLines {
		addSummaryLine(m, line)
	}

	// --- Project Timeline ---
	addSectionHeading(m, "Project Timeline")
	for _, phase := range bid.Timeline {
		addBodyLine(m, phase)
	}

	// --- Inclusions & Exclusions ---
	addSectionHeading(m, "Inclusions & Exclusions")
	addBodyLine(m, "Inclusions:")
	for _, inc := range bid.Inclusions {
		addBodyLine(m, "- "+inc)
	}
	addBodyLine(m, "Exclusions:")
	for _, exc := range bid.Exclusions {
		addBodyLine(m, "- "+exc)
	}

	// --- Acknowledgement ---
	addSectionHeading(m, "Acknowledgement")
	addBodyLine(m, bid.AckName)
	addBodyLine(m, bid.AckRole)
	addBodyLine(m, bid.AckSignature)

	// --- Legal Notice ---
	addSectionHeading(m, "Legal Notice")
	addBodyLine(m, bid.Legal)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addSectionHeading adds a spacer followed by a bold section heading.
func addSectionHeading(m core.Maroto, heading string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(heading, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

// addBodyLine adds one body paragraph line.
func addBodyLine(m core.Maroto, line string) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(line, props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
		),
	)
}

// addCostTableHeader adds the 3-column header row of the cost table.
func addCostTableHeader(m core.Maroto, header [3]string) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(
				text.New(header[0], headerText),
			).WithStyle(&headerCell),
			col.New(7).Add(
				text.New(header[1], headerTextLeft),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New(header[2], headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addCostTableRow adds a single cost table data row.
func addCostTableRow(m core.Maroto, r CostRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New(r.Index, baseText)),
			col.New(7).Add(text.New(r.Description, leftText)),
			col.New(3).Add(text.New(r.Cost, rightText)),
		),
	)
}

// addSummaryLine adds a right-aligned bold totals line under the cost table.
func addSummaryLine(m core.Maroto, line string) {
	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(line, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(summaryCell),
		),
	)
}
