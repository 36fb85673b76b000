package ipcr

import (
	"errors"
	"testing"
)

func twoRowForm() Form {
	return Form{
		ID: "f1",
		Sections: []FormSection{
			{
				ID:     "s1",
				Weight: 1.0,
				Rows: []IndicatorRow{
					{ID: "r1", Code: "MFO1-01"},
					{ID: "r2", Code: "MFO1-02"},
				},
			},
		},
	}
}

func TestApplyEditSetsRatings(t *testing.T) {
	form := twoRowForm()
	edits := []RowEdit{
		{SectionID: "s1", RowID: "r1", Op: OpSetRatingQ, Rating: rating(5)},
		{SectionID: "s1", RowID: "r1", Op: OpSetRatingE, Rating: rating(4)},
		{SectionID: "s1", RowID: "r1", Op: OpSetRatingT, Rating: nil},
	}
	for _, edit := range edits {
		if err := applyEdit(&form, edit); err != nil {
			t.Fatalf("apply %s failed: %v", edit.Op, err)
		}
	}
	row := form.Sections[0].Rows[0]
	if row.RatingQ == nil || *row.RatingQ != 5 {
		t.Fatalf("expected Q=5, got %v", row.RatingQ)
	}
	if row.RatingE == nil || *row.RatingE != 4 {
		t.Fatalf("expected E=4, got %v", row.RatingE)
	}
	if row.RatingT != nil {
		t.Fatalf("expected T unset, got %v", *row.RatingT)
	}
}

func TestApplyEditClearsRating(t *testing.T) {
	form := twoRowForm()
	form.Sections[0].Rows[0].RatingQ = rating(3)
	if err := applyEdit(&form, RowEdit{SectionID: "s1", RowID: "r1", Op: OpSetRatingQ}); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if form.Sections[0].Rows[0].RatingQ != nil {
		t.Fatalf("expected cleared rating")
	}
}

func TestApplyEditSetsNarrativeFields(t *testing.T) {
	form := twoRowForm()
	if err := applyEdit(&form, RowEdit{SectionID: "s1", RowID: "r2", Op: OpSetAccomplishment, Text: "done"}); err != nil {
		t.Fatalf("accomplishment edit failed: %v", err)
	}
	if err := applyEdit(&form, RowEdit{SectionID: "s1", RowID: "r2", Op: OpSetRemarks, Text: "noted"}); err != nil {
		t.Fatalf("remarks edit failed: %v", err)
	}
	row := form.Sections[0].Rows[1]
	if row.Accomplishment != "done" || row.Remarks != "noted" {
		t.Fatalf("unexpected narrative state: %+v", row)
	}
}

func TestApplyEditUnknownTargets(t *testing.T) {
	form := twoRowForm()
	if err := applyEdit(&form, RowEdit{SectionID: "missing", RowID: "r1", Op: OpSetRemarks}); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
	if err := applyEdit(&form, RowEdit{SectionID: "s1", RowID: "missing", Op: OpSetRemarks}); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
	if err := applyEdit(&form, RowEdit{SectionID: "s1", RowID: "r1", Op: EditOp("color")}); !errors.Is(err, ErrUnknownEditOp) {
		t.Fatalf("expected ErrUnknownEditOp, got %v", err)
	}
}
