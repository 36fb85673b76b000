package reports

import (
	"fmt"
	"math"

	"ipcr/internal/domain/ipcr"
)

// Summary aggregates a set of forms for the dashboard.
type Summary struct {
	FormsTotal         int            `json:"formsTotal"`
	Drafts             int            `json:"drafts"`
	Submitted          int            `json:"submitted"`
	ByStatus           map[string]int `json:"byStatus"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
	AverageFinalRating float64        `json:"averageFinalRating"`
}

// Summarize counts forms per lifecycle status and buckets scored forms by
// their final rating rounded to the nearest whole point. Unscored forms
// (final rating 0) stay out of the distribution and the average.
func Summarize(forms []ipcr.Form) Summary {
	summary := Summary{
		ByStatus:           map[string]int{},
		RatingDistribution: map[string]int{},
	}
	scored := 0
	total := 0.0
	for _, form := range forms {
		summary.FormsTotal++
		summary.ByStatus[string(form.Status)]++
		switch form.Status {
		case ipcr.StatusDraft:
			summary.Drafts++
		case ipcr.StatusSubmitted:
			summary.Submitted++
		}
		if form.FinalRating > 0 {
			key := fmt.Sprintf("%d", int(form.FinalRating+0.5))
			summary.RatingDistribution[key]++
			total += form.FinalRating
			scored++
		}
	}
	if scored > 0 {
		summary.AverageFinalRating = math.Round(total/float64(scored)*100) / 100
	}
	return summary
}
