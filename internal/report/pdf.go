package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the analysis as a single-page A4 summary.
func WritePDF(path string, a Analysis) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sentiment Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Geographic Sentiment Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Source: %s", a.Source), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", a.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Records: %d across %d countries", a.Records, len(a.Countries)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Totals  positive %d   neutral %d   negative %d",
		a.Totals.Positive, a.Totals.Neutral, a.Totals.Negative), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{60, 18, 18, 18, 18, 18, 20, 20}
	headers := []string{"Country", "Code", "Pos", "Neu", "Neg", "Total", "Score", "Trend"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range a.Countries {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}
		cells := []string{
			c.Name,
			c.Code,
			fmt.Sprintf("%d", c.Aggregate.Positive),
			fmt.Sprintf("%d", c.Aggregate.Neutral),
			fmt.Sprintf("%d", c.Aggregate.Negative),
			fmt.Sprintf("%d", c.Aggregate.Total),
			fmt.Sprintf("%.2f", c.Score),
			c.Trend(),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(a.Unmapped) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, fmt.Sprintf("Not on the map: %d countries", len(a.Unmapped)), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}
