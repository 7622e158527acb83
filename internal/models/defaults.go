// internal/models/defaults.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// NewDefaultProposal builds the nine-section starter proposal an editing
// session begins with.
func NewDefaultProposal() Proposal {
	now := time.Now().UTC()
	return Proposal{
		ID:         uuid.New().String(),
		Title:      "Project Proposal",
		ClientName: "Client Name",
		Sections: []Section{
			NewSection(SectionCover, "LET'S GROW TOGETHER.", ""),
			NewSection(SectionProjectSummary, "Project Summary", "Enter your project summary here. Describe the scope, objectives, and key outcomes of the project."),
			NewSection(SectionDeliverables, "Project Deliverables", ""),
			NewSection(SectionApproach, "Creative Concept & Approach", "Our research-driven approach ensures your content resonates with target audiences and stands out in the market."),
			NewSection(SectionTimeline, "Implementation Timeline", ""),
			NewSection(SectionWhyChooseUs, "Why Choose Us?", ""),
			NewSection(SectionPricing, "Terms & Conditions", ""),
			NewSection(SectionNextSteps, "Next Steps & Project Onboarding", ""),
			NewSection(SectionContact, "Contact", ""),
		},
		Design:    DefaultDesignSettings(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSection creates a section of the given type with variant-specific
// starter content, so a freshly added section previews as a finished page.
func NewSection(sectionType SectionType, title, content string) Section {
	section := Section{
		ID:      uuid.New().String(),
		Type:    sectionType,
		Title:   title,
		Content: content,
	}

	switch sectionType {
	case SectionDeliverables:
		section.Deliverables = []DeliverablePhase{
			{
				ID:    uuid.New().String(),
				Title: "Phase 1: Foundation",
				Items: []string{
					"Market research and competitor analysis",
					"Brand positioning document",
					"Complete brand kit (logo, colors, typography)",
					"Brand voice and messaging framework",
				},
			},
			{
				ID:    uuid.New().String(),
				Title: "Phase 2: Content Creation",
				Items: []string{
					"12 Instagram posts introducing your brand",
					"4 professionally edited Reels",
					"4 Instagram Stories",
					"Content calendar and hashtag strategy",
				},
			},
		}
	case SectionTimeline:
		section.Timeline = []TimelineItem{
			{
				ID:          uuid.New().String(),
				Period:      "Days 1-10",
				Title:       "Foundation Phase",
				Description: "Initial consultation, brand positioning, and photography",
				Items:       []string{"Client onboarding", "Brand positioning document", "Product photography"},
			},
			{
				ID:          uuid.New().String(),
				Period:      "Weeks 1-4",
				Title:       "Content Phase",
				Description: "Script development, content creation, and publishing",
				Items:       []string{"Weekly content publishing", "Engagement optimization"},
			},
		}
	case SectionWhyChooseUs:
		section.WhyChooseUs = &WhyChooseUsFields{
			Features: []FeatureItem{
				{
					ID:          uuid.New().String(),
					Number:      "01",
					Title:       "PROVEN ROI ACCELERATION",
					Description: "We make brands impossible to ignore. Your growth becomes our legacy.",
				},
				{
					ID:          uuid.New().String(),
					Number:      "02",
					Title:       "FULL-SPECTRUM CREATIVE POWERHOUSE",
					Description: "We don't make ads, we craft experiences. From CGI magic to viral content that converts.",
				},
				{
					ID:          uuid.New().String(),
					Number:      "03",
					Title:       "STRATEGIC PARTNERSHIP APPROACH",
					Description: "We succeed when you dominate. Your competitors become our case studies.",
				},
				{
					ID:          uuid.New().String(),
					Number:      "04",
					Title:       "CUTTING-EDGE TECHNOLOGY & INSIGHTS",
					Description: "While others catch up, we stay ahead. Next-gen strategies for tomorrow's market.",
				},
			},
		}
	case SectionPricing:
		section.Pricing = &PricingFields{
			TermItems: []TermItem{
				{
					ID:      uuid.New().String(),
					Title:   "Investment & Payment",
					Content: "Total Month 1: Rs. 115,000\n• Rs. 72,500 due upon contract signing\n• Rs. 42,500 due December 20th, 2025",
				},
				{
					ID:      uuid.New().String(),
					Title:   "Scope & Timeline",
					Content: "This agreement covers all deliverables outlined. The timeline depends on client approvals within 24 hours at each stage.",
				},
				{
					ID:      uuid.New().String(),
					Title:   "Revisions",
					Content: "• Brand identity: 2 rounds of revisions\n• Content pieces: 2 rounds per piece\n• Additional revisions at hourly rate",
				},
			},
			TotalAmount: "Rs. 115,000",
		}
	case SectionNextSteps:
		section.NextSteps = []NextStepItem{
			{ID: uuid.New().String(), Step: "Step 1", Description: "Sign agreement and process the initial payment"},
			{ID: uuid.New().String(), Step: "Step 2", Description: "Complete onboarding form within 24 hours"},
			{ID: uuid.New().String(), Step: "Step 3", Description: "Brand positioning review (Days 3-4)"},
			{ID: uuid.New().String(), Step: "Step 4", Description: "Product photography coordination (Days 5-7)"},
			{ID: uuid.New().String(), Step: "Step 5", Description: "Brand identity approval meeting (Days 8-10)"},
		}
		section.Items = []string{
			"Timely approvals within 24 hours to maintain timeline",
			"Product samples for photography",
			"Account credentials or collaboration to create account",
			"Prompt responses during research phase",
		}
	case SectionContact:
		section.Contact = &ContactFields{
			Name:           "Your Name",
			Title:          "Business Development Executive",
			Phone:          "+1 234 567 8900",
			Email:          "hello@yourcompany.com",
			ClosingMessage: "LOOKING FORWARD TO WORKING TOGETHER",
		}
	}

	return section
}
