package ipcr

import "math"

// round2 rounds to two decimal places, half away from zero.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// RowAverage is the mean of whichever Q/E/T sub-ratings are set, rounded to
// two decimals. Unset ratings are excluded from both sum and count; a row
// with no ratings averages 0.
func RowAverage(row IndicatorRow) float64 {
	sum := 0.0
	count := 0
	for _, rating := range []*float64{row.RatingQ, row.RatingE, row.RatingT} {
		if rating != nil {
			sum += *rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round2(sum / float64(count))
}

// SectionStats averages the rounded row averages and multiplies the raw
// section average by the section weight before rounding. An empty section
// scores 0 on both.
func SectionStats(section FormSection) (average, weighted float64) {
	if len(section.Rows) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, row := range section.Rows {
		sum += RowAverage(row)
	}
	raw := sum / float64(len(section.Rows))
	return round2(raw), round2(raw * section.Weight)
}

// Adjectival maps a final score onto its descriptive label through fixed,
// non-overlapping thresholds evaluated highest-first.
func Adjectival(score float64) string {
	switch {
	case score >= 4.51:
		return RatingOutstanding
	case score >= 3.51:
		return RatingVerySatisfactory
	case score >= 2.51:
		return RatingSatisfactory
	case score >= 1.51:
		return RatingUnsatisfactory
	default:
		return RatingPoor
	}
}

// Recompute re-derives every rating field in dependency order: row averages,
// then section average and weighted score, then the final rating summed from
// the rounded section weighted scores. It is a pure function of the rows'
// sub-ratings and the sections' weights, and idempotent: re-running it on a
// consistent form changes nothing.
func Recompute(sections []FormSection) (out []FormSection, finalRating float64, adjectival string) {
	total := 0.0
	for i := range sections {
		for j := range sections[i].Rows {
			sections[i].Rows[j].Average = RowAverage(sections[i].Rows[j])
		}
		sections[i].AverageRating, sections[i].WeightedRating = SectionStats(sections[i])
		total += sections[i].WeightedRating
	}
	finalRating = round2(total)
	return sections, finalRating, Adjectival(finalRating)
}

// recompute refreshes the form's derived fields in place.
func (f *Form) recompute() {
	f.Sections, f.FinalRating, f.AdjectivalRating = Recompute(f.Sections)
}
