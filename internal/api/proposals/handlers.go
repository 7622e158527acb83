// internal/api/proposals/handlers.go
package proposals

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/propdeck/propdeck/internal/api/apiutil"
	"github.com/propdeck/propdeck/internal/models"
	"github.com/propdeck/propdeck/internal/render/svgpreview"
	"github.com/propdeck/propdeck/internal/store"
	"github.com/propdeck/propdeck/internal/templates/layouts"
)

const (
	proposalIDPathKey = "id"
	sectionIDPathKey  = "sectionId"
)

var sessions *store.Store

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *store.Store) {
	sessions = s
}

func loadStore(w http.ResponseWriter, r *http.Request) *store.Store {
	if sessions == nil {
		log.Ctx(r.Context()).Error().Msg("Proposal store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	return sessions
}

// POST /api/v1/proposals
// An empty body creates the default nine-section proposal; a JSON body is
// validated and stored as given.
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	proposal := models.NewDefaultProposal()
	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body.Close()
		if len(strings.TrimSpace(string(body))) > 0 {
			proposal = models.Proposal{}
			if err := decodeStrict(body, &proposal); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err := proposal.Validate(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
	}

	created := s.Create(proposal)
	log.Ctx(r.Context()).Info().Str("proposal_id", created.ID).Msg("Proposal session created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, created); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal response")
	}
}

// GET /api/v1/proposals
func HandleList(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"proposals": s.List()}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal list")
	}
}

// GET /api/v1/proposals/{id}
func HandleGet(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}
	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, proposal); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

// PUT /api/v1/proposals/{id}
func HandleReplace(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	var proposal models.Proposal
	if err := apiutil.DecodeJSON(r, &proposal); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := proposal.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := s.Update(r.PathValue(proposalIDPathKey), proposal)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

// DELETE /api/v1/proposals/{id}
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}
	s.Delete(r.PathValue(proposalIDPathKey))
	w.WriteHeader(http.StatusNoContent)
}

type addSectionRequest struct {
	Type    models.SectionType `json:"type"`
	Title   string             `json:"title"`
	Content string             `json:"content"`
}

// POST /api/v1/proposals/{id}/sections
// Appends a starter section of the requested type.
func HandleAddSection(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	var req addSectionRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !req.Type.Valid() {
		http.Error(w, "unknown section type", http.StatusBadRequest)
		return
	}

	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}

	section := models.NewSection(req.Type, req.Title, req.Content)
	proposal.Sections = append(proposal.Sections, section)

	updated, err := s.Update(proposal.ID, proposal)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusCreated, updated); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

// PUT /api/v1/proposals/{id}/sections/{sectionId}
// Replaces one section in place. The path section id wins over any id in the
// body; order is untouched.
func HandleReplaceSection(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	var section models.Section
	if err := apiutil.DecodeJSON(r, &section); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	section.ID = r.PathValue(sectionIDPathKey)
	if err := section.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}
	idx := proposal.SectionIndex(section.ID)
	if idx < 0 {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}
	proposal.Sections[idx] = section

	updated, err := s.Update(proposal.ID, proposal)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

// DELETE /api/v1/proposals/{id}/sections/{sectionId}
func HandleDeleteSection(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}
	idx := proposal.SectionIndex(r.PathValue(sectionIDPathKey))
	if idx < 0 {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}
	proposal.Sections = append(proposal.Sections[:idx], proposal.Sections[idx+1:]...)

	updated, err := s.Update(proposal.ID, proposal)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

type reorderRequest struct {
	Order []string `json:"order"`
}

// POST /api/v1/proposals/{id}/sections/reorder
// The order list must be a permutation of the current section ids.
func HandleReorderSections(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	var req reorderRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}
	if len(req.Order) != len(proposal.Sections) {
		http.Error(w, "order must list every section id exactly once", http.StatusBadRequest)
		return
	}

	reordered := make([]models.Section, 0, len(proposal.Sections))
	seen := make(map[string]bool, len(req.Order))
	for _, id := range req.Order {
		if seen[id] {
			http.Error(w, "order must list every section id exactly once", http.StatusBadRequest)
			return
		}
		seen[id] = true
		idx := proposal.SectionIndex(id)
		if idx < 0 {
			http.Error(w, "unknown section id "+id, http.StatusBadRequest)
			return
		}
		reordered = append(reordered, proposal.Sections[idx])
	}
	proposal.Sections = reordered

	updated, err := s.Update(proposal.ID, proposal)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

// PUT /api/v1/proposals/{id}/design
func HandleReplaceDesign(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	var design models.DesignSettings
	if err := apiutil.DecodeJSON(r, &design); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	design = design.Normalize()
	if err := design.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}
	proposal.Design = design

	updated, err := s.Update(proposal.ID, proposal)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proposal")
	}
}

// GET /proposals/{id}/preview
func HandlePreviewPage(w http.ResponseWriter, r *http.Request) {
	s := loadStore(w, r)
	if s == nil {
		return
	}

	proposal, ok := fetchProposal(w, r, s)
	if !ok {
		return
	}

	page := layouts.Base(svgpreview.Pages(&proposal), proposal.Title, proposal.Design)
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render proposal preview", "Failed to render preview") {
		return
	}
}

func decodeStrict(body []byte, dst any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func fetchProposal(w http.ResponseWriter, r *http.Request, s *store.Store) (models.Proposal, bool) {
	proposal, err := s.Get(r.PathValue(proposalIDPathKey))
	if err != nil {
		writeStoreError(w, r, err)
		return models.Proposal{}, false
	}
	return proposal, true
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "proposal not found", http.StatusNotFound)
		return
	}
	log.Ctx(r.Context()).Error().Err(err).Msg("Proposal store operation failed")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
