// internal/api/export/handlers_test.go
package export

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/propdeck/propdeck/internal/models"
	"github.com/propdeck/propdeck/internal/render/pdfexport"
)

func post(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	HandleExport(rec, req)
	return rec
}

func TestHandleExport(t *testing.T) {
	InitHandlers(pdfexport.New(), 2)

	p := models.NewDefaultProposal()
	body, err := json.Marshal(map[string]any{"proposal": p})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rec := post(t, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, ".pdf") {
		t.Fatalf("disposition = %q", disposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}
}

func TestHandleExportMissingProposal(t *testing.T) {
	InitHandlers(pdfexport.New(), 2)

	rec := post(t, []byte(`{}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleExportInvalidProposal(t *testing.T) {
	InitHandlers(pdfexport.New(), 2)

	p := models.NewDefaultProposal()
	p.Title = ""
	body, _ := json.Marshal(map[string]any{"proposal": p})

	rec := post(t, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
