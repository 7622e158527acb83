// internal/analyze/analyze.go

// Package analyze turns freeform project requirements into a structured
// proposal content bundle by delegating to a hosted text-analysis model.
// The render core never depends on this package succeeding.
package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/propdeck/propdeck/internal/models"
)

// ErrUnavailable is returned when no API key is configured.
var ErrUnavailable = errors.New("analysis service not configured")

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	defaultModel    = "claude-sonnet-4-20250514"
	apiVersion      = "2023-06-01"
	maxTokens       = 4096
	requestTimeout  = 60 * time.Second
	fallbackSummary = 500
	fallbackProject = "Project Proposal"
	fallbackClient  = "Client"
)

const systemPrompt = `You are an expert proposal writer and business analyst. Analyze the provided project requirements and extract key information to help generate a professional proposal.

Return a JSON object with the following structure:
{
  "projectName": "Name of the project",
  "clientName": "Client name if mentioned, or 'Client' as default",
  "summary": "A professional 2-3 paragraph summary of the project scope, objectives, and expected outcomes",
  "deliverables": [
    {
      "title": "Phase or category name",
      "items": ["Deliverable 1", "Deliverable 2", ...]
    }
  ],
  "timeline": [
    {
      "period": "Time period (e.g., 'Week 1-2', 'Month 1')",
      "title": "Phase name",
      "description": "Brief description of activities"
    }
  ],
  "suggestedApproach": "A paragraph describing the recommended approach and methodology",
  "keyRequirements": ["Requirement 1", "Requirement 2", ...]
}

Be professional, thorough, and create content that would be suitable for a high-end agency proposal.`

// Analyzer extracts proposal content from raw requirement text.
type Analyzer interface {
	Analyze(ctx context.Context, text string, hints *models.StrategicQuestions) (models.AnalysisResult, error)
}

// Client calls a messages-style completion endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:   defaultEndpoint,
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Analyze posts the requirement text and returns the structured bundle. A
// well-formed completion that fails JSON extraction degrades to a bundle
// carrying the truncated raw text as summary rather than an error.
func (c *Client) Analyze(ctx context.Context, text string, hints *models.StrategicQuestions) (models.AnalysisResult, error) {
	if c.apiKey == "" {
		return models.AnalysisResult{}, ErrUnavailable
	}

	payload, err := json.Marshal(messageRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []message{
			{Role: "user", Content: userMessage(text, hints)},
		},
	})
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("encoding analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("building analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("calling analysis service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("reading analysis response: %w", err)
	}

	var mr messageResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("decoding analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if mr.Error != nil && mr.Error.Message != "" {
			msg = mr.Error.Message
		}
		return models.AnalysisResult{}, fmt.Errorf("analysis service: %s", msg)
	}

	var completion string
	for _, block := range mr.Content {
		if block.Type == "text" {
			completion = block.Text
			break
		}
	}
	if completion == "" {
		return models.AnalysisResult{}, errors.New("analysis service returned no text content")
	}

	result, ok := parseBundle(completion)
	if !ok {
		log.Ctx(ctx).Warn().Msg("analysis completion was not valid JSON, returning degraded bundle")
		result = fallbackBundle(completion)
	}
	return result, nil
}

func userMessage(text string, hints *models.StrategicQuestions) string {
	var b strings.Builder
	b.WriteString("Analyze the following project requirements and generate proposal content:\n\n")
	b.WriteString(text)

	if hints == nil {
		return b.String()
	}
	lines := []struct{ label, value string }{
		{"Project goal", hints.ProjectGoal},
		{"Key deliverables", hints.KeyDeliverables},
		{"Budget", hints.Budget},
		{"Timeline", hints.Timeline},
		{"Target audience", hints.TargetAudience},
		{"Success criteria", hints.SuccessCriteria},
		{"Constraints", hints.Constraints},
	}
	wroteHeader := false
	for _, line := range lines {
		if strings.TrimSpace(line.value) == "" {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n\nAdditional context from the client:")
			wroteHeader = true
		}
		fmt.Fprintf(&b, "\n- %s: %s", line.label, line.value)
	}
	return b.String()
}

// parseBundle extracts the JSON object from a completion that may wrap it in
// code fences or surrounding prose.
func parseBundle(completion string) (models.AnalysisResult, bool) {
	cleaned := strings.ReplaceAll(completion, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return models.AnalysisResult{}, false
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return models.AnalysisResult{}, false
	}
	applyDefaults(&result)
	return result, true
}

func fallbackBundle(completion string) models.AnalysisResult {
	summary := completion
	if runes := []rune(summary); len(runes) > fallbackSummary {
		summary = string(runes[:fallbackSummary])
	}
	result := models.AnalysisResult{Summary: summary}
	applyDefaults(&result)
	return result
}

func applyDefaults(result *models.AnalysisResult) {
	if result.ProjectName == "" {
		result.ProjectName = fallbackProject
	}
	if result.ClientName == "" {
		result.ClientName = fallbackClient
	}
	if result.Deliverables == nil {
		result.Deliverables = []models.AnalysisDeliverable{}
	}
	if result.Timeline == nil {
		result.Timeline = []models.AnalysisTimelineEntry{}
	}
	if result.KeyRequirements == nil {
		result.KeyRequirements = []string{}
	}
}
