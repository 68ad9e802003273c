package services

import (
	"fmt"
	"os"

	"github.com/gomutex/godocx"
)

// OutputFilename is the well-known name of the generated bid document.
// Every generation overwrites it; there is no versioning.
const OutputFilename = "ZGZO_AI_Bid_Output.docx"

// DocxMIMEType identifies the generated file as an office document.
const DocxMIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// RenderDocx renders a BidDocument into a Word file, writes it to
// outputPath (overwriting any previous generation) and returns the same
// bytes for download.
func RenderDocx(doc BidDocument, outputPath string) ([]byte, error) {
	document, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	document.AddHeading(doc.Title, 0)
	for _, line := range doc.HeaderLines {
		document.AddParagraph(line)
	}
	document.AddPageBreak()

	document.AddHeading("Scope of Work", 1)
	for _, entry := range doc.ScopeOfWork {
		document.AddParagraph("- " + entry)
	}

	document.AddHeading("Cost Estimate Summary", 1)
	table := document.AddTable()
	table.Style("LightList-Accent1")
	hdr := table.AddRow()
	hdr.AddCell().AddParagraph(doc.CostHeader[0])
	hdr.AddCell().AddParagraph(doc.CostHeader[1])
	hdr.AddCell().AddParagraph(doc.CostHeader[2])
	for _, row := range doc.CostRows {
		r := table.AddRow()
		r.AddCell().AddParagraph(row.Index)
		r.AddCell().AddParagraph(row.Description)
		r.AddCell().AddParagraph(row.Cost)
	}
	for _, line := range doc.SummaryLines {
		document.AddParagraph(line)
	}

	document.AddHeading("Project Timeline", 1)
	for _, phase := range doc.Timeline {
		document.AddParagraph(phase)
	}

	document.AddHeading("Inclusions & Exclusions", 1)
	document.AddParagraph("Inclusions:")
	for _, inc := range doc.Inclusions {
		document.AddParagraph("- " + inc)
	}
	document.AddParagraph("Exclusions:")
	for _, exc := range doc.Exclusions {
		document.AddParagraph("- " + exc)
	}

	document.AddHeading("Acknowledgement", 1)
	document.AddParagraph(doc.AckName)
	document.AddParagraph(doc.AckRole)
	document.AddParagraph(doc.AckSignature)

	document.AddHeading("Legal Notice", 1)
	document.AddParagraph(doc.Legal)

	if err := document.SaveTo(outputPath); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("read generated document: %w", err)
	}
	return data, nil
}
