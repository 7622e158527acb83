// internal/api/export/handlers.go
package export

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/propdeck/propdeck/internal/api/apiutil"
	"github.com/propdeck/propdeck/internal/models"
	"github.com/propdeck/propdeck/internal/render/pdfexport"
)

// PDF rendering is CPU-bound; cap concurrent exports rather than letting a
// burst of requests stack up full page renders.
const defaultMaxConcurrent = 4

var (
	exporter *pdfexport.Exporter
	slots    *semaphore.Weighted
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(e *pdfexport.Exporter, maxConcurrent int64) {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	exporter = e
	slots = semaphore.NewWeighted(maxConcurrent)
}

type exportRequest struct {
	Proposal *models.Proposal `json:"proposal"`
}

// POST /api/v1/export
// Renders the posted proposal and answers with the PDF as an attachment.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if exporter == nil || slots == nil {
		logger.Error().Msg("Exporter not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req exportRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Proposal == nil {
		http.Error(w, "proposal is required", http.StatusBadRequest)
		return
	}
	if err := req.Proposal.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := slots.Acquire(r.Context(), 1); err != nil {
		logger.Warn().Err(err).Msg("Export canceled while waiting for a slot")
		http.Error(w, "Export canceled", http.StatusServiceUnavailable)
		return
	}
	defer slots.Release(1)

	data, err := exporter.Export(r.Context(), req.Proposal)
	if err != nil {
		logger.Error().Err(err).Str("proposal_title", req.Proposal.Title).Msg("PDF export failed")
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	filename := pdfexport.Filename(req.Proposal.Title)
	logger.Info().Str("filename", filename).Int("bytes", len(data)).Msg("PDF export completed")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error().Err(err).Msg("Failed to write PDF response")
	}
}
