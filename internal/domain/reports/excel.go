package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ipcr/internal/domain/ipcr"
)

// RenderXLSX produces a summary workbook of a form: one sheet with every
// indicator row and the derived section and final ratings.
func RenderXLSX(form ipcr.Form) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Sheet1"
	headers := []any{"Section", "Indicator Code", "Success Indicator", "Target", "Q", "E", "T", "Average", "Remarks"}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	line := 2
	for _, section := range form.Sections {
		for _, row := range section.Rows {
			values := []any{
				section.Title,
				row.Code,
				row.Indicator,
				row.Target,
				ratingCell(row.RatingQ),
				ratingCell(row.RatingE),
				ratingCell(row.RatingT),
				row.Average,
				row.Remarks,
			}
			if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", line), &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", line, err)
			}
			line++
		}
		sectionLine := []any{
			section.Title, "", "", "Section Average / Weighted", "", "", "",
			section.AverageRating, fmt.Sprintf("weighted %.2f (weight %.0f%%)", section.WeightedRating, section.Weight*100),
		}
		if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", line), &sectionLine); err != nil {
			return nil, fmt.Errorf("write section summary: %w", err)
		}
		line++
	}

	line++
	finalLine := []any{"", "", "", "Final Rating", "", "", "", form.FinalRating, form.AdjectivalRating}
	if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", line), &finalLine); err != nil {
		return nil, fmt.Errorf("write final rating: %w", err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func ratingCell(rating *float64) any {
	if rating == nil {
		return ""
	}
	return *rating
}
