package reports

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"ipcr/internal/domain/ipcr"
)

func sampleForm() ipcr.Form {
	q := 5.0
	e := 4.0
	return ipcr.Form{
		ID:               "f1",
		OwnerName:        "Juan Dela Cruz",
		Office:           "College of Information Technology",
		PeriodStart:      "January 2026",
		PeriodEnd:        "June 2026",
		TemplateKind:     "Teaching_Instructor",
		Status:           ipcr.StatusSubmitted,
		FinalRating:      4.5,
		AdjectivalRating: ipcr.RatingVerySatisfactory,
		Sections: []ipcr.FormSection{
			{
				ID:     "s1",
				Title:  "Strategic Priority",
				Weight: 1.0,
				Rows: []ipcr.IndicatorRow{
					{ID: "r1", Code: "MFO1-01", Indicator: "Classes conducted", Target: "100%", RatingQ: &q, RatingE: &e, Average: 4.5, Remarks: "ok"},
				},
				AverageRating:  4.5,
				WeightedRating: 4.5,
			},
		},
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sampleForm())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestTruncateKeepsMultibyteRunesIntact(t *testing.T) {
	value := strings.Repeat("ñ", 60)
	got := truncate(value, 52)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a multi-byte rune: %q", got)
	}
	if want := strings.Repeat("ñ", 49) + "..."; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	short := "Señales"
	if got := truncate(short, 52); got != short {
		t.Fatalf("short value should pass through, got %q", got)
	}
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(sampleForm())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("output is not an XLSX workbook")
	}
}
