package export

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// MaxTableRows is the fixed height of the report grid; rows beyond it are
// dropped by the formatter, and warning the user is the caller's job.
const MaxTableRows = 15

// Row is one printable ledger line.
type Row struct {
	Date         string
	VehicleModel string
	Amount       string
}

// Document is everything the parking-fee PDF needs. Build is a pure layout
// over these fields, so identical documents render identical bytes apart
// from the PDF creation timestamp.
type Document struct {
	PreparedBy    string
	Coverage      string
	DateSubmitted string
	Rows          []Row
}

// Truncate caps text to maxLen characters, ending with an ellipsis.
func Truncate(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	if maxLen <= 3 {
		return value[:maxLen]
	}
	return value[:maxLen-3] + "..."
}

// Filename embeds the export date.
func Filename(t time.Time) string {
	return "parking-fee-report-" + t.Format("2006-01-02") + ".pdf"
}

// layout constants, in millimeters on A4 portrait
const (
	leftMargin     = 20.0
	labelLineX     = 75.0
	labelLineWidth = 120.0
	rowHeight      = 10.0
)

var colWidths = [3]float64{40, 100, 40}

// Build renders the fixed header, the labeled signature lines, the bordered
// 15-row grid and the certification line.
func (d Document) Build() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	y := 20.0

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(leftMargin, y, "e-Konek Pilipinas, Inc")

	y += 7
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(leftMargin, y, "Parking Fee Report")

	y += 15

	drawField := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(leftMargin, y, label+":")
		pdf.SetLineWidth(0.3)
		pdf.Line(labelLineX, y, labelLineX+labelLineWidth, y)
		if value != "" {
			pdf.SetFont("Helvetica", "", 12)
			pdf.Text(labelLineX+2, y-1, Truncate(value, 42))
		}
		y += 10
	}

	drawField("Name", d.PreparedBy)
	drawField("Coverage", d.Coverage)
	drawField("Date Submitted", d.DateSubmitted)

	y += 5

	tableX := leftMargin
	tableWidth := pageWidth - tableX*2
	tableStartY := y
	tableHeight := rowHeight * (MaxTableRows + 1)

	pdf.SetLineWidth(0.5)
	pdf.Rect(tableX, tableStartY, tableWidth, tableHeight, "D")

	currentX := tableX
	for i, width := range colWidths {
		if i < len(colWidths)-1 {
			currentX += width
			pdf.Line(currentX, tableStartY, currentX, tableStartY+tableHeight)
		}
	}
	for i := 1; i <= MaxTableRows+1; i++ {
		lineY := tableStartY + rowHeight*float64(i)
		pdf.Line(tableX, lineY, tableX+tableWidth, lineY)
	}

	pdf.SetFont("Helvetica", "B", 11)
	headers := [3]string{"Date", "Car Model", "Amount"}
	currentX = tableX
	for i, header := range headers {
		w := pdf.GetStringWidth(header)
		pdf.Text(currentX+colWidths[i]/2-w/2, tableStartY+7, header)
		currentX += colWidths[i]
	}

	rows := d.Rows
	if len(rows) > MaxTableRows {
		rows = rows[:MaxTableRows]
	}

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		rowY := tableStartY + rowHeight*float64(i+1) + 7

		currentX = tableX
		if row.Date != "" {
			pdf.Text(currentX+3, rowY, Truncate(row.Date, 14))
		}
		currentX += colWidths[0]
		if row.VehicleModel != "" {
			pdf.Text(currentX+3, rowY, Truncate(row.VehicleModel, 30))
		}
		currentX += colWidths[1]
		if row.Amount != "" {
			pdf.Text(currentX+3, rowY, Truncate(row.Amount, 12))
		}
	}

	y = tableStartY + tableHeight + 20
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(leftMargin, y, "Certified true and correct:")
	pdf.SetLineWidth(0.3)
	pdf.Line(leftMargin+75, y, leftMargin+155, y)

	return pdf
}

// Render writes the finished document to w.
func (d Document) Render(w io.Writer) error {
	return d.Build().Output(w)
}
