package ipcr

import (
	"fmt"
	"regexp"
)

// NoCodeSegment substitutes for rows without an indicator code.
const NoCodeSegment = "NO_CODE"

var unsafeSegmentChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

func sanitizeSegment(segment string) string {
	return unsafeSegmentChars.ReplaceAllString(segment, "_")
}

// PathContext identifies the form a MOV file belongs to. Year is taken from
// the clock at upload time, not from the form's review period.
type PathContext struct {
	Year       int
	Office     string
	EmployeeID string
	FormID     string
}

// DeriveMOVPath computes the canonical storage key
// /{year}/{office}/{employee}/{form}/{indicator-or-NO_CODE}/{filename}.
// Office, employee id, and indicator code are sanitized to [A-Za-z0-9_-];
// the form id and filename are recorded as given. Pure: no file I/O happens
// here, the external file store places the object under the returned key.
func DeriveMOVPath(ctx PathContext, indicatorCode, filename string) string {
	code := NoCodeSegment
	if indicatorCode != "" {
		code = sanitizeSegment(indicatorCode)
	}
	return fmt.Sprintf("/%d/%s/%s/%s/%s/%s",
		ctx.Year,
		sanitizeSegment(ctx.Office),
		sanitizeSegment(ctx.EmployeeID),
		ctx.FormID,
		code,
		filename,
	)
}
