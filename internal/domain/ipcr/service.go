package ipcr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ipcr/internal/domain/templates"
)

// Mailer sends submission notifications. Delivery is best effort: a failed
// or no-op send never blocks the save that follows it.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// FileDescriptor is an externally provided upload result. The transport that
// moved the bytes is not the engine's concern; it only records the outcome.
type FileDescriptor struct {
	Name      string `json:"name"`
	MediaType string `json:"mediaType"`
	Size      int64  `json:"size"`
	URL       string `json:"url"`
}

// Options carries the assembler's tunables.
type Options struct {
	EmailFrom       string
	SupervisorEmail string
	SubmitSaveDelay time.Duration
	Now             func() time.Time
}

// Service assembles forms from templates and keeps their derived fields
// consistent across edits. Every mutating operation runs the rating
// aggregator and hands the resulting snapshot to the record store before
// returning.
type Service struct {
	catalog         *templates.Catalog
	store           RecordStore
	mailer          Mailer
	emailFrom       string
	supervisorEmail string
	submitDelay     time.Duration
	now             func() time.Time
}

func NewService(catalog *templates.Catalog, store RecordStore, mailer Mailer, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog:         catalog,
		store:           store,
		mailer:          mailer,
		emailFrom:       opts.EmailFrom,
		supervisorEmail: opts.SupervisorEmail,
		submitDelay:     opts.SubmitSaveDelay,
		now:             now,
	}
}

// CreateForm selects the template for the profile, deep-copies its sections
// into a fresh Draft form, derives the initial ratings, and saves it.
func (s *Service) CreateForm(ctx context.Context, profile Profile, periodStart, periodEnd string, year int) (Form, error) {
	kind := templates.Select(profile.Category, profile.Position)
	tpl, err := s.catalog.Get(kind)
	if err != nil {
		// Selector only emits seeded kinds; reaching this means the catalog
		// and selector disagree and nothing at runtime can repair that.
		return Form{}, fmt.Errorf("load template for %s: %w", kind, err)
	}

	now := s.now()
	form := Form{
		ID:           uuid.NewString(),
		OwnerID:      profile.ID,
		OwnerName:    profile.Name,
		OwnerEmail:   profile.Email,
		Position:     profile.Position,
		Office:       profile.Office,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Year:         year,
		TemplateKind: kind,
		Status:       StatusDraft,
		Sections:     sectionsFromTemplate(tpl),
		CreatedAt:    now,
		UpdatedAt:    now,
		AuditLog:     []AuditEntry{},
	}
	form.recompute()

	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save new form: %w", err)
	}
	return form, nil
}

func (s *Service) GetForm(ctx context.Context, formID string) (Form, error) {
	return s.store.Get(ctx, formID)
}

func (s *Service) ListForms(ctx context.Context, ownerID string) ([]Form, error) {
	if ownerID == "" {
		return s.store.List(ctx)
	}
	return s.store.ListByOwner(ctx, ownerID)
}

// ApplyEdits applies the typed edit operations in order, re-derives every
// rating field, and saves the result. The batch is atomic: a bad edit leaves
// the stored form untouched.
func (s *Service) ApplyEdits(ctx context.Context, formID string, edits []RowEdit) (Form, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	for _, edit := range edits {
		if err := applyEdit(&form, edit); err != nil {
			return Form{}, err
		}
	}
	form.recompute()
	form.UpdatedAt = s.now()

	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save edited form: %w", err)
	}
	return form, nil
}

// SetStatus assigns the given lifecycle status without transition checks.
// Later workflow states belong to an external collaborator; the engine
// preserves and round-trips whatever it is handed.
func (s *Service) SetStatus(ctx context.Context, formID string, status Status) (Form, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	form.Status = status
	form.UpdatedAt = s.now()
	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save status change: %w", err)
	}
	return form, nil
}

// SetApprovals replaces the named approval slots, round-tripped untouched.
func (s *Service) SetApprovals(ctx context.Context, formID string, approvals Approvals) (Form, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	form.Approvals = approvals
	form.UpdatedAt = s.now()
	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save approvals: %w", err)
	}
	return form, nil
}

// SaveDraft re-enters Draft state and saves the snapshot.
func (s *Service) SaveDraft(ctx context.Context, formID string) (Form, error) {
	return s.SetStatus(ctx, formID, StatusDraft)
}

// AttachMOVs appends one MOV record per descriptor to the targeted row, with
// the storage key derived from the form context and the wall-clock year, and
// records an UPLOAD audit entry for each.
func (s *Service) AttachMOVs(ctx context.Context, formID, rowID string, files []FileDescriptor, actor string) (Form, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	row, err := locateRow(&form, rowID)
	if err != nil {
		return Form{}, err
	}

	now := s.now()
	pathCtx := PathContext{
		Year:       now.Year(),
		Office:     form.Office,
		EmployeeID: form.OwnerID,
		FormID:     form.ID,
	}
	if actor == "" {
		actor = form.OwnerName
	}
	for _, file := range files {
		mov := MOVFile{
			ID:         uuid.NewString(),
			Name:       file.Name,
			MediaType:  orDefault(file.MediaType, "application/octet-stream"),
			Size:       file.Size,
			URL:        file.URL,
			Path:       DeriveMOVPath(pathCtx, row.Code, file.Name),
			UploadedBy: actor,
			UploadedAt: now,
		}
		row.MOVs = append(row.MOVs, mov)
		form.AuditLog = append(form.AuditLog, AuditEntry{
			ID:        uuid.NewString(),
			FileID:    mov.ID,
			Action:    AuditActionUpload,
			Actor:     actor,
			Details:   fmt.Sprintf("uploaded %s to %s", mov.Name, mov.Path),
			Timestamp: now,
		})
	}
	form.UpdatedAt = now

	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save attachments: %w", err)
	}
	return form, nil
}

// DetachMOV removes one MOV record from the targeted row and records a
// DELETE audit entry. Remaining files keep their derived paths.
func (s *Service) DetachMOV(ctx context.Context, formID, rowID, fileID, actor string) (Form, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	row, err := locateRow(&form, rowID)
	if err != nil {
		return Form{}, err
	}

	idx := -1
	for i, mov := range row.MOVs {
		if mov.ID == fileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Form{}, fmt.Errorf("%w: %s", ErrFileNotFound, fileID)
	}
	removed := row.MOVs[idx]
	row.MOVs = append(row.MOVs[:idx], row.MOVs[idx+1:]...)

	now := s.now()
	if actor == "" {
		actor = form.OwnerName
	}
	form.AuditLog = append(form.AuditLog, AuditEntry{
		ID:        uuid.NewString(),
		FileID:    removed.ID,
		Action:    AuditActionDelete,
		Actor:     actor,
		Details:   fmt.Sprintf("deleted %s from %s", removed.Name, removed.Path),
		Timestamp: now,
	})
	form.UpdatedAt = now

	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save detachment: %w", err)
	}
	return form, nil
}

// DeriveUploadPath previews the storage key for a prospective upload against
// the given form and row, using the current year.
func (s *Service) DeriveUploadPath(ctx context.Context, formID, rowID, filename string) (string, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return "", err
	}
	row, err := locateRow(&form, rowID)
	if err != nil {
		return "", err
	}
	pathCtx := PathContext{
		Year:       s.now().Year(),
		Office:     form.Office,
		EmployeeID: form.OwnerID,
		FormID:     form.ID,
	}
	return DeriveMOVPath(pathCtx, row.Code, filename), nil
}

// Submit moves the form to Submitted, notifies the employee and supervisor,
// waits the configured delay, then saves. Notification and save are
// sequenced, never raced; the save happens even when notification is a no-op
// or the caller's context dies during the wait.
func (s *Service) Submit(ctx context.Context, formID string) (Form, error) {
	form, err := s.store.Get(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	form.Status = StatusSubmitted
	form.UpdatedAt = s.now()

	s.notifySubmission(ctx, form)

	if s.submitDelay > 0 {
		timer := time.NewTimer(s.submitDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			// The delay still has to elapse in full; only the save is
			// detached from the dead context.
			ctx = context.WithoutCancel(ctx)
			<-timer.C
		}
	}

	if err := s.store.Save(ctx, form); err != nil {
		return Form{}, fmt.Errorf("save submitted form: %w", err)
	}
	return form, nil
}

func (s *Service) notifySubmission(ctx context.Context, form Form) {
	if s.mailer == nil {
		return
	}
	subject := fmt.Sprintf("IPCR submitted: %s (%s to %s)", form.OwnerName, form.PeriodStart, form.PeriodEnd)
	body := fmt.Sprintf("The IPCR of %s (%s, %s) has been submitted for review.", form.OwnerName, form.Position, form.Office)
	for _, to := range []string{form.OwnerEmail, s.supervisorEmail} {
		if to == "" {
			continue
		}
		if err := s.mailer.Send(ctx, s.emailFrom, to, subject, body); err != nil {
			slog.Warn("submission notification failed", "to", to, "err", err)
		}
	}
}

// locateRow resolves a row by id across all sections; MOV routes address
// rows directly, without the section id the edit ops carry.
func locateRow(form *Form, rowID string) (*IndicatorRow, error) {
	for i := range form.Sections {
		for j := range form.Sections[i].Rows {
			if form.Sections[i].Rows[j].ID == rowID {
				return &form.Sections[i].Rows[j], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
