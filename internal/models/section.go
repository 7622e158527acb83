// internal/models/section.go
package models

import (
	"fmt"
	"strings"
)

// SectionType enumerates the closed set of proposal section variants.
type SectionType string

const (
	SectionCover          SectionType = "cover"
	SectionProjectSummary SectionType = "project-summary"
	SectionDeliverables   SectionType = "deliverables"
	SectionApproach       SectionType = "approach"
	SectionTimeline       SectionType = "timeline"
	SectionWhyChooseUs    SectionType = "why-choose-us"
	SectionPricing        SectionType = "pricing"
	SectionNextSteps      SectionType = "next-steps"
	SectionTerms          SectionType = "terms"
	SectionContact        SectionType = "contact"
)

var sectionTypes = map[SectionType]bool{
	SectionCover:          true,
	SectionProjectSummary: true,
	SectionDeliverables:   true,
	SectionApproach:       true,
	SectionTimeline:       true,
	SectionWhyChooseUs:    true,
	SectionPricing:        true,
	SectionNextSteps:      true,
	SectionTerms:          true,
	SectionContact:        true,
}

func (t SectionType) Valid() bool {
	return sectionTypes[t]
}

func (t SectionType) DisplayName() string {
	switch t {
	case SectionCover:
		return "Cover Page"
	case SectionProjectSummary:
		return "Project Summary"
	case SectionDeliverables:
		return "Deliverables"
	case SectionApproach:
		return "Approach"
	case SectionTimeline:
		return "Timeline"
	case SectionWhyChooseUs:
		return "Why Choose Us"
	case SectionPricing:
		return "Pricing & Terms"
	case SectionNextSteps:
		return "Next Steps"
	case SectionTerms:
		return "Terms & Conditions"
	case SectionContact:
		return "Contact"
	default:
		return "Section"
	}
}

// Exclusive reports whether sections of this type always occupy a page alone.
func (t SectionType) Exclusive() bool {
	return t == SectionCover || t == SectionContact || t == SectionWhyChooseUs
}

// TimelineItem is one entry on the implementation timeline.
type TimelineItem struct {
	ID          string   `json:"id"`
	Period      string   `json:"period"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items,omitempty"`
}

// DeliverablePhase groups deliverable line items under a phase heading.
// Phase numbering is positional over the visible list, never stored.
type DeliverablePhase struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// FeatureItem is one numbered call-out in the why-choose-us grid.
type FeatureItem struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StatItem is one value/label pair on the "by the numbers" strip.
type StatItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// NextStepItem is one onboarding step card.
type NextStepItem struct {
	ID          string `json:"id"`
	Step        string `json:"step"`
	Description string `json:"description"`
}

// TermItem is one legacy pricing/terms entry with freeform content.
type TermItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PricingTableRow is one row of the three-column pricing table.
type PricingTableRow struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Investment  string `json:"investment"`
}

// IsTotal reports whether the row is the distinguished total row.
func (r PricingTableRow) IsTotal() bool {
	return strings.Contains(strings.ToLower(r.Service), "total")
}

// PricingTableHeaders overrides the table column captions.
type PricingTableHeaders struct {
	Service     string `json:"service"`
	Description string `json:"description"`
	Investment  string `json:"investment"`
}

// PricingMode selects the pricing presentation path.
type PricingMode string

const (
	PricingModeTable PricingMode = "table"
	PricingModeTerms PricingMode = "terms"
)

// PricingFields carries the pricing variant payload. Mode may be left empty,
// in which case it is inferred from data presence: the table path wins
// whenever TableRows is non-empty.
type PricingFields struct {
	Mode         PricingMode          `json:"mode,omitempty"`
	TableRows    []PricingTableRow    `json:"pricingTableRows,omitempty"`
	TableHeaders *PricingTableHeaders `json:"tableHeaders,omitempty"`
	PaymentTerms string               `json:"paymentTerms,omitempty"`
	TermItems    []TermItem           `json:"termItems,omitempty"`
	TotalAmount  string               `json:"totalAmount,omitempty"`
}

// ResolveMode returns the effective presentation path.
func (p *PricingFields) ResolveMode() PricingMode {
	if p == nil {
		return PricingModeTerms
	}
	switch p.Mode {
	case PricingModeTable, PricingModeTerms:
		return p.Mode
	}
	if len(p.TableRows) > 0 {
		return PricingModeTable
	}
	return PricingModeTerms
}

// WhyChooseUsMode selects one of the three mutually exclusive renderings.
type WhyChooseUsMode string

const (
	WhyChooseUsModeDiagram WhyChooseUsMode = "diagram"
	WhyChooseUsModeImage   WhyChooseUsMode = "image"
	WhyChooseUsModeGrid    WhyChooseUsMode = "grid"
)

// WhyChooseUsFields carries the why-choose-us variant payload. Mode may be
// left empty; precedence is then circular-logo > image > feature grid.
type WhyChooseUsFields struct {
	Mode            WhyChooseUsMode `json:"mode,omitempty"`
	UseCircularLogo bool            `json:"useCircularLogo,omitempty"`
	CompanyName     string          `json:"companyName,omitempty"`
	CenterText      string          `json:"centerText,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Features        []FeatureItem   `json:"featureItems,omitempty"`
	Stats           []StatItem      `json:"statItems,omitempty"`
}

// ResolveMode returns the effective rendering mode.
func (w *WhyChooseUsFields) ResolveMode() WhyChooseUsMode {
	if w == nil {
		return WhyChooseUsModeGrid
	}
	switch w.Mode {
	case WhyChooseUsModeDiagram, WhyChooseUsModeImage, WhyChooseUsModeGrid:
		return w.Mode
	}
	if w.UseCircularLogo {
		return WhyChooseUsModeDiagram
	}
	if w.ImageURL != "" {
		return WhyChooseUsModeImage
	}
	return WhyChooseUsModeGrid
}

// ContactFields carries the contact variant payload.
type ContactFields struct {
	Name           string `json:"contactName,omitempty"`
	Title          string `json:"contactTitle,omitempty"`
	Phone          string `json:"contactPhone,omitempty"`
	Email          string `json:"contactEmail,omitempty"`
	ClosingMessage string `json:"closingMessage,omitempty"`
}

// Section is one typed content block of a proposal. All variants share the
// id/type/title spine; variant-specific payloads hang off dedicated fields so
// each variant only carries what its layout consumes.
type Section struct {
	ID       string      `json:"id"`
	Type     SectionType `json:"type"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Content  string      `json:"content,omitempty"`

	// Generic string list, used by next-steps as the requirements list.
	Items []string `json:"items,omitempty"`

	Deliverables []DeliverablePhase `json:"deliverableItems,omitempty"`
	Timeline     []TimelineItem     `json:"timelineItems,omitempty"`
	NextSteps    []NextStepItem     `json:"nextStepItems,omitempty"`

	WhyChooseUs *WhyChooseUsFields `json:"whyChooseUs,omitempty"`
	Pricing     *PricingFields     `json:"pricing,omitempty"`
	Contact     *ContactFields     `json:"contact,omitempty"`
}

func (s Section) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("section id is required")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("unknown section type %q", s.Type)
	}
	return nil
}
