package ipcr

import (
	"time"

	"ipcr/internal/domain/templates"
)

// Profile describes the employee a form is created for. The owner fields on
// the form are copied from it at creation time and never change afterwards.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Office   string `json:"office"`
	Category string `json:"category"`
}

// MOVFile is one attached supporting document. Records are created on attach
// and removed on detach; replacing a file is a detach followed by an attach.
type MOVFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MediaType  string    `json:"mediaType"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	Path       string    `json:"path"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// AuditEntry records a MOV action on the owning form.
type AuditEntry struct {
	ID        string    `json:"id"`
	FileID    string    `json:"fileId,omitempty"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// Approval is one named signature slot. The engine round-trips these without
// interpreting them; signing belongs to the external approval workflow.
type Approval struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Signed bool   `json:"signed"`
}

type Approvals struct {
	Supervisor *Approval `json:"supervisor,omitempty"`
	VP         *Approval `json:"vp,omitempty"`
	President  *Approval `json:"president,omitempty"`
}

// IndicatorRow is one measurable commitment with up to three sub-ratings.
// Identity fields and the required-MOV checklist are inherited from the
// template; Average is derived and recomputed on every edit.
type IndicatorRow struct {
	ID             string    `json:"id"`
	Code           string    `json:"indicatorCode,omitempty"`
	Indicator      string    `json:"indicator"`
	Target         string    `json:"target"`
	Accomplishment string    `json:"actualAccomplishment"`
	RatingQ        *float64  `json:"ratingQ"`
	RatingE        *float64  `json:"ratingE"`
	RatingT        *float64  `json:"ratingT"`
	Average        float64   `json:"average"`
	Remarks        string    `json:"remarks"`
	MOVs           []MOVFile `json:"movs"`
	RequiredMOVs   []string  `json:"requiredMovChecklist"`
}

// FormSection owns its rows and two derived fields kept consistent by the
// rating aggregator.
type FormSection struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Type           templates.SectionType `json:"type"`
	Weight         float64               `json:"weight"`
	Rows           []IndicatorRow        `json:"rows"`
	AverageRating  float64               `json:"averageRating"`
	WeightedRating float64               `json:"weightedRating"`
}

// Form is one IPCR scoring sheet. It owns its sections exclusively; the
// record store hands out independent copies so no other holder can mutate
// them.
type Form struct {
	ID               string         `json:"id"`
	OwnerID          string         `json:"userId"`
	OwnerName        string         `json:"userName"`
	OwnerEmail       string         `json:"userEmail,omitempty"`
	Position         string         `json:"position"`
	Office           string         `json:"office"`
	PeriodStart      string         `json:"periodStart"`
	PeriodEnd        string         `json:"periodEnd"`
	Year             int            `json:"year"`
	TemplateKind     templates.Kind `json:"templateType"`
	Status           Status         `json:"status"`
	Sections         []FormSection  `json:"sections"`
	FinalRating      float64        `json:"finalRating"`
	AdjectivalRating string         `json:"adjectivalRating"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	AuditLog         []AuditEntry   `json:"auditLogs,omitempty"`
	Approvals        Approvals      `json:"approvals"`
}

// Clone returns a structurally independent copy of the form.
func (f Form) Clone() Form {
	out := f
	out.Sections = make([]FormSection, len(f.Sections))
	for i, section := range f.Sections {
		copied := section
		copied.Rows = make([]IndicatorRow, len(section.Rows))
		for j, row := range section.Rows {
			copiedRow := row
			copiedRow.RatingQ = copyRating(row.RatingQ)
			copiedRow.RatingE = copyRating(row.RatingE)
			copiedRow.RatingT = copyRating(row.RatingT)
			copiedRow.MOVs = append([]MOVFile(nil), row.MOVs...)
			copiedRow.RequiredMOVs = append([]string(nil), row.RequiredMOVs...)
			copied.Rows[j] = copiedRow
		}
		out.Sections[i] = copied
	}
	out.AuditLog = append([]AuditEntry(nil), f.AuditLog...)
	out.Approvals = Approvals{
		Supervisor: copyApproval(f.Approvals.Supervisor),
		VP:         copyApproval(f.Approvals.VP),
		President:  copyApproval(f.Approvals.President),
	}
	return out
}

func copyRating(value *float64) *float64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func copyApproval(approval *Approval) *Approval {
	if approval == nil {
		return nil
	}
	copied := *approval
	return &copied
}

// sectionsFromTemplate deep-copies template sections into fresh form
// sections with zeroed derived fields and empty narrative state.
func sectionsFromTemplate(tpl templates.Template) []FormSection {
	sections := make([]FormSection, len(tpl.Sections))
	for i, src := range tpl.Sections {
		rows := make([]IndicatorRow, len(src.Rows))
		for j, row := range src.Rows {
			rows[j] = IndicatorRow{
				ID:           row.ID,
				Code:         row.Code,
				Indicator:    row.Indicator,
				Target:       row.Target,
				MOVs:         []MOVFile{},
				RequiredMOVs: append([]string(nil), row.RequiredMOVs...),
			}
		}
		sections[i] = FormSection{
			ID:     src.ID,
			Title:  src.Title,
			Type:   src.Type,
			Weight: src.Weight,
			Rows:   rows,
		}
	}
	return sections
}
