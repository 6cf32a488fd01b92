package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 14, "short"},
		{"exactly-14-ch.", 14, "exactly-14-ch."},
		{"this text is definitely too long", 14, "this text i..."},
		{"abcdef", 3, "abc"},
		{"", 10, ""},
	}

	for _, tc := range testCases {
		if got := Truncate(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := Filename(ts); got != "parking-fee-report-2024-03-01.pdf" {
		t.Errorf("Filename = %q", got)
	}
}

func TestDocumentRender(t *testing.T) {
	doc := Document{
		PreparedBy:    "John Doe",
		Coverage:      "March 1, 2024 - March 15, 2024",
		DateSubmitted: "March 16, 2024",
		Rows: []Row{
			{Date: "3/1/2024", VehicleModel: "Car / VIOS / ABC12345", Amount: "50.00"},
		},
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestDocumentRender_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	if err := (Document{}).Render(&buf); err != nil {
		t.Fatalf("render of empty document failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty document produced no output")
	}
}

func TestDocumentRender_RowCap(t *testing.T) {
	rows := make([]Row, 0, MaxTableRows+5)
	for i := 0; i < MaxTableRows+5; i++ {
		rows = append(rows, Row{
			Date:         fmt.Sprintf("3/%d/2024", i+1),
			VehicleModel: "Car / VIOS / ABC12345",
			Amount:       "50.00",
		})
	}

	// rows past the cap are silently dropped; rendering must not fail
	// and must not grow past a single page
	doc := Document{PreparedBy: "John Doe", Rows: rows}
	pdf := doc.Build()
	if pdf.PageCount() != 1 {
		t.Errorf("page count = %d, want 1", pdf.PageCount())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output does not start with a PDF header")
	}
}
