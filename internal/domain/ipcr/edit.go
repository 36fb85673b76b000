package ipcr

import "fmt"

// EditOp names one mutable field of an indicator row.
type EditOp string

const (
	OpSetAccomplishment EditOp = "accomplishment"
	OpSetRatingQ        EditOp = "ratingQ"
	OpSetRatingE        EditOp = "ratingE"
	OpSetRatingT        EditOp = "ratingT"
	OpSetRemarks        EditOp = "remarks"
)

// RowEdit is one typed field mutation targeting a row. Text carries the
// value for narrative ops; Rating carries the value for rating ops, with nil
// clearing the sub-rating.
type RowEdit struct {
	SectionID string   `json:"sectionId"`
	RowID     string   `json:"rowId"`
	Op        EditOp   `json:"op"`
	Text      string   `json:"text,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}

// applyEdit dispatches a single edit onto the targeted row. Row identity,
// indicator text, targets, and the required-MOV checklist are not editable.
func applyEdit(form *Form, edit RowEdit) error {
	row, err := findRow(form, edit.SectionID, edit.RowID)
	if err != nil {
		return err
	}
	switch edit.Op {
	case OpSetAccomplishment:
		row.Accomplishment = edit.Text
	case OpSetRatingQ:
		row.RatingQ = copyRating(edit.Rating)
	case OpSetRatingE:
		row.RatingE = copyRating(edit.Rating)
	case OpSetRatingT:
		row.RatingT = copyRating(edit.Rating)
	case OpSetRemarks:
		row.Remarks = edit.Text
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEditOp, edit.Op)
	}
	return nil
}

func findSection(form *Form, sectionID string) (*FormSection, error) {
	for i := range form.Sections {
		if form.Sections[i].ID == sectionID {
			return &form.Sections[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
}

func findRow(form *Form, sectionID, rowID string) (*IndicatorRow, error) {
	section, err := findSection(form, sectionID)
	if err != nil {
		return nil, err
	}
	for i := range section.Rows {
		if section.Rows[i].ID == rowID {
			return &section.Rows[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
}
