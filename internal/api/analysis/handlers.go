// internal/api/analysis/handlers.go
package analysis

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/propdeck/propdeck/internal/analyze"
	"github.com/propdeck/propdeck/internal/api/apiutil"
	"github.com/propdeck/propdeck/internal/models"
	"github.com/propdeck/propdeck/internal/ratelimit"
)

const analyzeTimeout = 90 * time.Second

var (
	analyzer   analyze.Analyzer
	limiter    *ratelimit.Limiter
	trustProxy bool
)

// InitHandlers must be called during server startup before handling requests.
// A nil limiter disables rate limiting.
func InitHandlers(a analyze.Analyzer, l *ratelimit.Limiter, trustProxyHeaders bool) {
	analyzer = a
	limiter = l
	trustProxy = trustProxyHeaders
}

type analyzeRequest struct {
	Text               string                     `json:"text"`
	StrategicQuestions *models.StrategicQuestions `json:"strategicQuestions,omitempty"`
}

// POST /api/v1/analyze
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if analyzer == nil {
		logger.Error().Msg("Analyzer not initialized")
		writeFailure(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var req analyzeRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeFailure(w, http.StatusBadRequest, "text is required")
		return
	}

	if limiter != nil {
		ip := ratelimit.GetClientIP(r, trustProxy)
		if res := limiter.Check(ip); !res.Allowed {
			ratelimit.LogRateLimitExceeded(ip, res.Reason)
			w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			writeFailure(w, http.StatusTooManyRequests, "Too many analysis requests. Try again shortly.")
			return
		}
		limiter.Record(ip)
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	result, err := analyzer.Analyze(ctx, req.Text, req.StrategicQuestions)
	if err != nil {
		if errors.Is(err, analyze.ErrUnavailable) {
			writeFailure(w, http.StatusServiceUnavailable, "Analysis service not configured. Set the API key in the server environment.")
			return
		}
		logger.Error().Err(err).Msg("Analysis failed")
		writeFailure(w, http.StatusBadGateway, "Analysis failed")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": result}); err != nil {
		logger.Error().Err(err).Msg("Failed to write analysis response")
	}
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	apiutil.WriteJSON(w, status, map[string]any{"success": false, "error": message})
}
