package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"ipcr/internal/domain/ipcr"
)

// RenderPDF produces a printable rendition of a scored IPCR form.
func RenderPDF(form ipcr.Form) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, "Individual Performance Commitment and Review (IPCR)", "", "C", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("%s Template", form.TemplateKind), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	commitment := fmt.Sprintf(
		"I, %s of the %s, commit to deliver and agree to be rated on the following targets in accordance with the indicated measures for the period %s to %s.",
		form.OwnerName, form.Office, form.PeriodStart, form.PeriodEnd,
	)
	pdf.MultiCell(0, 5, commitment, "", "L", false)
	pdf.Ln(3)

	for _, section := range form.Sections {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("%s (Weight: %.0f%%)", section.Title, section.Weight*100), "", "L", false)

		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(70, 6, "Success Indicator", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, "Target", "1", 0, "L", false, 0, "")
		pdf.CellFormat(12, 6, "Q", "1", 0, "C", false, 0, "")
		pdf.CellFormat(12, 6, "E", "1", 0, "C", false, 0, "")
		pdf.CellFormat(12, 6, "T", "1", 0, "C", false, 0, "")
		pdf.CellFormat(14, 6, "Ave", "1", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, row := range section.Rows {
			pdf.CellFormat(70, 6, truncate(row.Indicator, 52), "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, truncate(row.Target, 36), "1", 0, "L", false, 0, "")
			pdf.CellFormat(12, 6, formatRating(row.RatingQ), "1", 0, "C", false, 0, "")
			pdf.CellFormat(12, 6, formatRating(row.RatingE), "1", 0, "C", false, 0, "")
			pdf.CellFormat(12, 6, formatRating(row.RatingT), "1", 0, "C", false, 0, "")
			pdf.CellFormat(14, 6, fmt.Sprintf("%.2f", row.Average), "1", 1, "C", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(120, 6, "Section Average / Weighted", "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 6, fmt.Sprintf("%.2f", section.AverageRating), "1", 0, "C", false, 0, "")
		pdf.CellFormat(14, 6, fmt.Sprintf("%.2f", section.WeightedRating), "1", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Final Rating: %.2f  (%s)", form.FinalRating, form.AdjectivalRating), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	writeApproval(pdf, "Supervisor", form.Approvals.Supervisor)
	writeApproval(pdf, "Vice President", form.Approvals.VP)
	writeApproval(pdf, "President", form.Approvals.President)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeApproval(pdf *gofpdf.Fpdf, slot string, approval *ipcr.Approval) {
	if approval == nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: ____________________", slot), "", 1, "L", false, 0, "")
		return
	}
	state := "pending"
	if approval.Signed {
		state = "signed"
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s (%s, %s)", slot, approval.Name, state, approval.Date), "", 1, "L", false, 0, "")
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *rating)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-3]) + "..."
}
