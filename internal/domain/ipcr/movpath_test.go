package ipcr

import "testing"

func TestDeriveMOVPath(t *testing.T) {
	ctx := PathContext{
		Year:       2026,
		Office:     "College of Information Technology",
		EmployeeID: "user#123",
		FormID:     "abc",
	}
	got := DeriveMOVPath(ctx, "MFO1-01", "class record.pdf")
	want := "/2026/College_of_Information_Technology/user_123/abc/MFO1-01/class record.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDeriveMOVPathNoIndicatorCode(t *testing.T) {
	ctx := PathContext{Year: 2026, Office: "HR", EmployeeID: "u1", FormID: "f1"}
	got := DeriveMOVPath(ctx, "", "report.pdf")
	want := "/2026/HR/u1/f1/NO_CODE/report.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDeriveMOVPathSanitizesIndicatorCode(t *testing.T) {
	ctx := PathContext{Year: 2026, Office: "HR", EmployeeID: "u1", FormID: "f1"}
	got := DeriveMOVPath(ctx, "MFO 1/01", "a.pdf")
	want := "/2026/HR/u1/f1/MFO_1_01/a.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitizeSegmentKeepsAllowedCharacters(t *testing.T) {
	if got := sanitizeSegment("Ab-9_z"); got != "Ab-9_z" {
		t.Fatalf("allowed characters were altered: %q", got)
	}
	if got := sanitizeSegment("a b.c@d"); got != "a_b_c_d" {
		t.Fatalf("expected a_b_c_d, got %q", got)
	}
}
