// internal/models/proposal.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Proposal is the whole in-memory document for one editing session. The
// ordered section sequence is both edit order and document order; there is
// no separate page-order field.
type Proposal struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	ClientName string         `json:"clientName"`
	Sections   []Section      `json:"sections"`
	Design     DesignSettings `json:"designSettings"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (p Proposal) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("proposal title is required")
	}
	if strings.TrimSpace(p.ClientName) == "" {
		return fmt.Errorf("client name is required")
	}
	if err := p.Design.Validate(); err != nil {
		return fmt.Errorf("design settings: %w", err)
	}
	seen := make(map[string]bool, len(p.Sections))
	for i, section := range p.Sections {
		if err := section.Validate(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		if seen[section.ID] {
			return fmt.Errorf("section %d: duplicate id %q", i, section.ID)
		}
		seen[section.ID] = true
	}
	return nil
}

// SectionIndex returns the index of the section with the given id, or -1.
func (p Proposal) SectionIndex(id string) int {
	for i, section := range p.Sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}
