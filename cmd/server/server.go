// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/propdeck/propdeck/internal/analyze"
	"github.com/propdeck/propdeck/internal/api"
	"github.com/propdeck/propdeck/internal/api/analysis"
	"github.com/propdeck/propdeck/internal/api/export"
	"github.com/propdeck/propdeck/internal/api/proposals"
	"github.com/propdeck/propdeck/internal/config"
	"github.com/propdeck/propdeck/internal/ratelimit"
	"github.com/propdeck/propdeck/internal/render/pdfexport"
	"github.com/propdeck/propdeck/internal/store"
)

func newServer(cfg *config.Config, sessions *store.Store) (*http.Server, error) {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	initHandlers(cfg, sessions)
	registerRoutes(router)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func initHandlers(cfg *config.Config, sessions *store.Store) {
	proposals.InitHandlers(sessions)

	opts := []analyze.Option{}
	if cfg.Analyze.Endpoint != "" {
		opts = append(opts, analyze.WithEndpoint(cfg.Analyze.Endpoint))
	}
	if cfg.Analyze.Model != "" {
		opts = append(opts, analyze.WithModel(cfg.Analyze.Model))
	}
	analysis.InitHandlers(analyze.NewClient(cfg.Analyze.APIKey, opts...), ratelimit.New(nil), cfg.App.TrustProxy)

	export.InitHandlers(pdfexport.New(), cfg.Export.MaxConcurrent)
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Proposal session routes
	mux.HandleFunc("POST /api/v1/proposals", proposals.HandleCreate)
	mux.HandleFunc("GET /api/v1/proposals", proposals.HandleList)
	mux.HandleFunc("GET /api/v1/proposals/{id}", proposals.HandleGet)
	mux.HandleFunc("PUT /api/v1/proposals/{id}", proposals.HandleReplace)
	mux.HandleFunc("DELETE /api/v1/proposals/{id}", proposals.HandleDelete)
	mux.HandleFunc("POST /api/v1/proposals/{id}/sections", proposals.HandleAddSection)
	mux.HandleFunc("POST /api/v1/proposals/{id}/sections/reorder", proposals.HandleReorderSections)
	mux.HandleFunc("PUT /api/v1/proposals/{id}/sections/{sectionId}", proposals.HandleReplaceSection)
	mux.HandleFunc("DELETE /api/v1/proposals/{id}/sections/{sectionId}", proposals.HandleDeleteSection)
	mux.HandleFunc("PUT /api/v1/proposals/{id}/design", proposals.HandleReplaceDesign)

	// Rendered preview page
	mux.HandleFunc("GET /proposals/{id}/preview", proposals.HandlePreviewPage)

	// Text analysis and PDF export
	mux.HandleFunc("POST /api/v1/analyze", analysis.HandleAnalyze)
	mux.HandleFunc("POST /api/v1/export", export.HandleExport)
}
