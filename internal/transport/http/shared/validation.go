package shared

import (
	"fmt"
	"strings"
)

// RatingMin and RatingMax bound sub-ratings at the editing surface. The
// aggregator itself accepts any numeric value; enforcement lives here.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{Field: strings.TrimSpace(field), Reason: reason})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

// Rating checks an optional sub-rating against [1,5]. Nil is fine: it means
// the rating is unset or being cleared.
func (v *Validator) Rating(field string, value *float64) {
	if value == nil {
		return
	}
	if *value < RatingMin || *value > RatingMax {
		v.Add(field, fmt.Sprintf("must be between %v and %v", RatingMin, RatingMax))
	}
}

func (v *Validator) OK() bool {
	return v == nil || len(v.issues) == 0
}

// Message joins the issues into a single failure message.
func (v *Validator) Message() string {
	parts := make([]string, 0, len(v.issues))
	for _, issue := range v.issues {
		if issue.Field == "" {
			parts = append(parts, issue.Reason)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Reason))
	}
	return strings.Join(parts, "; ")
}
