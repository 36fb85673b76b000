package templates

import "strings"

// Kind identifies one of the four fixed IPCR scoring-sheet shapes.
type Kind string

const (
	KindTeachingInstructor Kind = "Teaching_Instructor"
	KindTeachingAssocProf  Kind = "Teaching_AssocProf"
	KindTeachingCOS        Kind = "Teaching_COS"
	KindNonTeaching        Kind = "NonTeaching"
)

const (
	CategoryTeaching    = "Teaching"
	CategoryNonTeaching = "Non-Teaching"
)

// Select maps an employee's category and position title to a template kind.
// The match is case-insensitive and evaluated in fixed priority order; the
// first rule that applies wins and unrecognized titles fall through to the
// instructor track, so every input resolves to a kind.
func Select(category, position string) Kind {
	if strings.EqualFold(strings.TrimSpace(category), CategoryNonTeaching) {
		return KindNonTeaching
	}
	pos := strings.ToLower(position)
	if strings.Contains(pos, "contract") || strings.Contains(pos, "cos") {
		return KindTeachingCOS
	}
	if strings.Contains(pos, "associate") || (strings.Contains(pos, "professor") && !strings.Contains(pos, "assistant")) {
		return KindTeachingAssocProf
	}
	return KindTeachingInstructor
}
