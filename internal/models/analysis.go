// internal/models/analysis.go
package models

// AnalysisDeliverable is a deliverable phase suggested by the text-analysis
// collaborator, before ids are assigned.
type AnalysisDeliverable struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// AnalysisTimelineEntry is a suggested timeline phase.
type AnalysisTimelineEntry struct {
	Period      string `json:"period"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnalysisTerm is a suggested terms entry.
type AnalysisTerm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnalysisPricingRow is a suggested pricing table row.
type AnalysisPricingRow struct {
	Service     string `json:"service"`
	Description string `json:"description"`
	Investment  string `json:"investment"`
}

// AnalysisNextStep is a suggested onboarding step.
type AnalysisNextStep struct {
	Step        string `json:"step"`
	Description string `json:"description"`
}

// AnalysisResult is the structured content bundle returned by the
// text-analysis collaborator. Every field may be absent; the render core must
// function with a zero value.
type AnalysisResult struct {
	ProjectName       string                  `json:"projectName"`
	ClientName        string                  `json:"clientName"`
	Summary           string                  `json:"summary"`
	Deliverables      []AnalysisDeliverable   `json:"deliverables"`
	Timeline          []AnalysisTimelineEntry `json:"timeline"`
	SuggestedApproach string                  `json:"suggestedApproach"`
	KeyRequirements   []string                `json:"keyRequirements"`
	SuggestedTerms    []AnalysisTerm          `json:"suggestedTerms,omitempty"`
	TotalAmount       string                  `json:"totalAmount,omitempty"`
	PricingTableRows  []AnalysisPricingRow    `json:"pricingTableRows,omitempty"`
	NextStepItems     []AnalysisNextStep      `json:"nextStepItems,omitempty"`
}

// StrategicQuestions are optional structured hints accompanying an analysis
// request.
type StrategicQuestions struct {
	ProjectGoal     string `json:"projectGoal,omitempty"`
	KeyDeliverables string `json:"keyDeliverables,omitempty"`
	Budget          string `json:"budget,omitempty"`
	Timeline        string `json:"timeline,omitempty"`
	TargetAudience  string `json:"targetAudience,omitempty"`
	SuccessCriteria string `json:"successCriteria,omitempty"`
	Constraints     string `json:"constraints,omitempty"`
}
