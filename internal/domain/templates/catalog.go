package templates

import (
	"errors"
	"fmt"
	"math"
)

// SectionType tags a template section with its institutional grouping.
type SectionType string

const (
	SectionMFO       SectionType = "MFO"
	SectionSupport   SectionType = "Support"
	SectionStrategic SectionType = "Strategic"
	SectionPriority  SectionType = "Priority"
	SectionCore      SectionType = "Core"
)

// Row is one success indicator committed in a template, including the
// read-only checklist of documents required to verify it.
type Row struct {
	ID           string   `json:"id"`
	Code         string   `json:"indicatorCode,omitempty"`
	Indicator    string   `json:"indicator"`
	Target       string   `json:"target"`
	RequiredMOVs []string `json:"requiredMovChecklist"`
}

// Section groups indicator rows under a shared weight in [0,1].
type Section struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Type   SectionType `json:"type"`
	Weight float64     `json:"weight"`
	Rows   []Row       `json:"rows"`
}

// Template is the immutable seed shape for one kind of scoring sheet.
type Template struct {
	Kind     Kind      `json:"kind"`
	Sections []Section `json:"sections"`
}

var ErrUnknownKind = errors.New("unknown template kind")

// Catalog is a read-only registry of the four seed templates. Every lookup
// returns a structurally independent copy, so callers can never reach the
// shared seed data through a returned value.
type Catalog struct {
	templates map[Kind]Template
}

// NewCatalog builds the registry from the seed data and verifies that each
// template's section weights sum to 1.0. The final-rating formula sums
// weighted section scores without normalizing, so a bad weight total would
// silently skew every score derived from that template.
func NewCatalog() (*Catalog, error) {
	byKind := make(map[Kind]Template, len(seedTemplates))
	for _, tpl := range seedTemplates {
		total := 0.0
		for _, section := range tpl.Sections {
			if section.Weight < 0 || section.Weight > 1 {
				return nil, fmt.Errorf("template %s section %s: weight %v outside [0,1]", tpl.Kind, section.ID, section.Weight)
			}
			total += section.Weight
		}
		if math.Abs(total-1.0) > 1e-9 {
			return nil, fmt.Errorf("template %s: section weights sum to %v, want 1.0", tpl.Kind, total)
		}
		byKind[tpl.Kind] = tpl
	}
	return &Catalog{templates: byKind}, nil
}

// Get returns a deep copy of the template for the given kind. An unknown
// kind indicates a selector/catalog inconsistency and is a hard error.
func (c *Catalog) Get(kind Kind) (Template, error) {
	tpl, ok := c.templates[kind]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return copyTemplate(tpl), nil
}

// Kinds lists the registered template kinds in seed order.
func (c *Catalog) Kinds() []Kind {
	kinds := make([]Kind, 0, len(seedTemplates))
	for _, tpl := range seedTemplates {
		kinds = append(kinds, tpl.Kind)
	}
	return kinds
}

func copyTemplate(tpl Template) Template {
	out := Template{Kind: tpl.Kind, Sections: make([]Section, len(tpl.Sections))}
	for i, section := range tpl.Sections {
		copied := section
		copied.Rows = make([]Row, len(section.Rows))
		for j, row := range section.Rows {
			copiedRow := row
			copiedRow.RequiredMOVs = append([]string(nil), row.RequiredMOVs...)
			copied.Rows[j] = copiedRow
		}
		out.Sections[i] = copied
	}
	return out
}
