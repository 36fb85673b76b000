package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ipcr/internal/app/server"
	"ipcr/internal/domain/ipcr"
	"ipcr/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func newTestApp(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{
		Addr:            ":0",
		Environment:     "test",
		EmailFrom:       "no-reply@test.local",
		SupervisorEmail: "supervisor@test.local",
		SubmitSaveDelay: 0,
		MaxBodyBytes:    1048576,
		MetricsEnabled:  true,
	}
	app, err := server.New(cfg)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload any) (int, envelope) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "Juan Dela Cruz")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func createForm(t *testing.T, client *http.Client, baseURL string) ipcr.Form {
	t.Helper()
	status, env := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/ipcr", map[string]any{
		"profile": map[string]any{
			"id":       "user#123",
			"name":     "Juan Dela Cruz",
			"email":    "juan.delacruz@parsu.edu.ph",
			"position": "Instructor I",
			"office":   "College of Information Technology",
			"category": "Teaching",
		},
		"periodStart": "January 2026",
		"periodEnd":   "June 2026",
		"year":        2026,
	})
	if status != http.StatusCreated {
		t.Fatalf("create returned %d: %+v", status, env.Error)
	}
	var form ipcr.Form
	if err := json.Unmarshal(env.Data, &form); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	return form
}

func TestIPCRFormJourney(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	form := createForm(t, client, ts.URL)
	if form.Status != ipcr.StatusDraft {
		t.Fatalf("expected Draft, got %s", form.Status)
	}
	if form.TemplateKind != "Teaching_Instructor" {
		t.Fatalf("expected instructor template, got %s", form.TemplateKind)
	}

	// Rate every row 5 across the board.
	var edits []map[string]any
	for _, section := range form.Sections {
		for _, row := range section.Rows {
			for _, op := range []string{"ratingQ", "ratingE", "ratingT"} {
				edits = append(edits, map[string]any{
					"sectionId": section.ID,
					"rowId":     row.ID,
					"op":        op,
					"rating":    5,
				})
			}
		}
	}
	status, env := doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/ipcr/"+form.ID, map[string]any{"edits": edits})
	if status != http.StatusOK {
		t.Fatalf("edit returned %d: %+v", status, env.Error)
	}
	var updated ipcr.Form
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if updated.FinalRating != 5 || updated.AdjectivalRating != "Outstanding" {
		t.Fatalf("expected 5/Outstanding, got %v/%q", updated.FinalRating, updated.AdjectivalRating)
	}

	// Attach a MOV to the first row.
	rowID := form.Sections[0].Rows[0].ID
	status, env = doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/v1/ipcr/%s/rows/%s/movs", ts.URL, form.ID, rowID), map[string]any{
		"files": []map[string]any{
			{"name": "class record.pdf", "mediaType": "application/pdf", "size": 2048, "url": "blob:1"},
		},
	})
	if status != http.StatusOK {
		t.Fatalf("attach returned %d: %+v", status, env.Error)
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	movs := updated.Sections[0].Rows[0].MOVs
	if len(movs) != 1 {
		t.Fatalf("expected 1 MOV, got %d", len(movs))
	}
	if !strings.Contains(movs[0].Path, "/College_of_Information_Technology/user_123/") {
		t.Fatalf("unexpected MOV path %q", movs[0].Path)
	}
	if movs[0].UploadedBy != "Juan Dela Cruz" {
		t.Fatalf("expected actor attribution, got %q", movs[0].UploadedBy)
	}
	if len(updated.AuditLog) != 1 || updated.AuditLog[0].Action != "UPLOAD" {
		t.Fatalf("expected UPLOAD audit entry, got %+v", updated.AuditLog)
	}

	// Detach it again.
	status, env = doJSON(t, client, http.MethodDelete, fmt.Sprintf("%s/api/v1/ipcr/%s/rows/%s/movs/%s", ts.URL, form.ID, rowID, movs[0].ID), nil)
	if status != http.StatusOK {
		t.Fatalf("detach returned %d: %+v", status, env.Error)
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if len(updated.Sections[0].Rows[0].MOVs) != 0 {
		t.Fatalf("expected no MOVs after detach")
	}

	// Submit and verify the saved status.
	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/ipcr/"+form.ID+"/submit", nil)
	if status != http.StatusOK {
		t.Fatalf("submit returned %d: %+v", status, env.Error)
	}
	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/ipcr/"+form.ID, nil)
	if status != http.StatusOK {
		t.Fatalf("get returned %d", status)
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if updated.Status != ipcr.StatusSubmitted {
		t.Fatalf("expected Submitted, got %s", updated.Status)
	}
}

func TestEditValidationRejectsOutOfRangeRatings(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()
	form := createForm(t, client, ts.URL)

	status, env := doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/ipcr/"+form.ID, map[string]any{
		"edits": []map[string]any{
			{"sectionId": form.Sections[0].ID, "rowId": form.Sections[0].Rows[0].ID, "op": "ratingQ", "rating": 6},
		},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 6, got %d: %+v", status, env)
	}

	status, _ = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/ipcr/"+form.ID, map[string]any{
		"edits": []map[string]any{
			{"sectionId": form.Sections[0].ID, "rowId": form.Sections[0].Rows[0].ID, "op": "color", "text": "blue"},
		},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown op, got %d", status)
	}
}

func TestPathPreviewEndpoint(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()
	form := createForm(t, client, ts.URL)

	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/mov/path", map[string]any{
		"formId":   form.ID,
		"rowId":    form.Sections[0].Rows[0].ID,
		"filename": "class record.pdf",
	})
	if status != http.StatusOK {
		t.Fatalf("path preview returned %d: %+v", status, env.Error)
	}
	var out map[string]string
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode path: %v", err)
	}
	if !strings.HasSuffix(out["path"], "/MFO1-01/class record.pdf") {
		t.Fatalf("unexpected path %q", out["path"])
	}
}

func TestTemplateSelectEndpoint(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/templates/select?category=Teaching&position=Associate+Professor+II", nil)
	if status != http.StatusOK {
		t.Fatalf("select returned %d", status)
	}
	var out map[string]string
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if out["templateType"] != "Teaching_AssocProf" {
		t.Fatalf("expected Teaching_AssocProf, got %q", out["templateType"])
	}
}

func TestStatusRoundTripEndpoint(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()
	form := createForm(t, client, ts.URL)

	status, env := doJSON(t, client, http.MethodPatch, ts.URL+"/api/v1/ipcr/"+form.ID+"/status", map[string]any{"status": "Endorsed"})
	if status != http.StatusOK {
		t.Fatalf("status patch returned %d: %+v", status, env.Error)
	}
	var updated ipcr.Form
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if updated.Status != "Endorsed" {
		t.Fatalf("expected Endorsed, got %s", updated.Status)
	}
}

func TestSummaryAndCalendarEndpoints(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()
	createForm(t, client, ts.URL)

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/reports/summary", nil)
	if status != http.StatusOK {
		t.Fatalf("summary returned %d", status)
	}
	var summary struct {
		FormsTotal int `json:"formsTotal"`
		Drafts     int `json:"drafts"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.FormsTotal != 1 || summary.Drafts != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/calendar", nil)
	if status != http.StatusOK {
		t.Fatalf("calendar returned %d", status)
	}
	var events []map[string]string
	if err := json.Unmarshal(env.Data, &events); err != nil {
		t.Fatalf("decode calendar: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("expected seeded calendar events")
	}
}

func TestExportEndpoints(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()
	form := createForm(t, client, ts.URL)

	resp, err := client.Get(ts.URL + "/api/v1/ipcr/" + form.ID + "/export/pdf")
	if err != nil {
		t.Fatalf("pdf export failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pdf export returned %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}

	resp2, err := client.Get(ts.URL + "/api/v1/ipcr/" + form.ID + "/export/xlsx")
	if err != nil {
		t.Fatalf("xlsx export failed: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("xlsx export returned %d", resp2.StatusCode)
	}
}

func TestUnknownFormReturnsNotFound(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/ipcr/missing", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %+v", status, env)
	}
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected not_found error, got %+v", env.Error)
	}
}
