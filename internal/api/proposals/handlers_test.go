// internal/api/proposals/handlers_test.go
package proposals

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/propdeck/propdeck/internal/models"
	"github.com/propdeck/propdeck/internal/store"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	InitHandlers(store.New())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/proposals", HandleCreate)
	mux.HandleFunc("GET /api/v1/proposals", HandleList)
	mux.HandleFunc("GET /api/v1/proposals/{id}", HandleGet)
	mux.HandleFunc("PUT /api/v1/proposals/{id}", HandleReplace)
	mux.HandleFunc("DELETE /api/v1/proposals/{id}", HandleDelete)
	mux.HandleFunc("POST /api/v1/proposals/{id}/sections", HandleAddSection)
	mux.HandleFunc("POST /api/v1/proposals/{id}/sections/reorder", HandleReorderSections)
	mux.HandleFunc("PUT /api/v1/proposals/{id}/sections/{sectionId}", HandleReplaceSection)
	mux.HandleFunc("DELETE /api/v1/proposals/{id}/sections/{sectionId}", HandleDeleteSection)
	mux.HandleFunc("PUT /api/v1/proposals/{id}/design", HandleReplaceDesign)
	mux.HandleFunc("GET /proposals/{id}/preview", HandlePreviewPage)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func createDefault(t *testing.T, mux *http.ServeMux) models.Proposal {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/proposals", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var p models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return p
}

func TestCreateDefaultProposal(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	if p.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if len(p.Sections) != 9 {
		t.Fatalf("section count = %d, want 9", len(p.Sections))
	}
	if p.Sections[0].Type != models.SectionCover {
		t.Fatalf("first section = %q, want cover", p.Sections[0].Type)
	}
	if p.Design.PrimaryColor != "#0d4f4f" {
		t.Fatalf("primary = %q", p.Design.PrimaryColor)
	}
}

func TestGetUnknownProposal(t *testing.T) {
	mux := newTestMux(t)
	rec := doJSON(t, mux, http.MethodGet, "/api/v1/proposals/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestReplaceProposal(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	p.Title = "Renamed Proposal"
	rec := doJSON(t, mux, http.MethodPut, "/api/v1/proposals/"+p.ID, p)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Title != "Renamed Proposal" || updated.ID != p.ID {
		t.Fatalf("unexpected update: %+v", updated)
	}
}

func TestReplaceProposalRejectsInvalid(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	p.Title = ""
	rec := doJSON(t, mux, http.MethodPut, "/api/v1/proposals/"+p.ID, p)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAddSection(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/proposals/"+p.ID+"/sections", map[string]string{
		"type":  "timeline",
		"title": "Delivery Plan",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(updated.Sections) != 10 {
		t.Fatalf("section count = %d, want 10", len(updated.Sections))
	}
	added := updated.Sections[9]
	if added.Type != models.SectionTimeline || added.Title != "Delivery Plan" || added.ID == "" {
		t.Fatalf("unexpected section: %+v", added)
	}
}

func TestAddSectionRejectsUnknownType(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/proposals/"+p.ID+"/sections", map[string]string{
		"type": "appendix",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReplaceSectionPathIDWins(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)
	target := p.Sections[1]

	replacement := target
	replacement.ID = "body-supplied-id"
	replacement.Content = "Fresh content."
	rec := doJSON(t, mux, http.MethodPut, "/api/v1/proposals/"+p.ID+"/sections/"+target.ID, replacement)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Sections[1].ID != target.ID {
		t.Fatalf("section id = %q, want path id %q", updated.Sections[1].ID, target.ID)
	}
	if updated.Sections[1].Content != "Fresh content." {
		t.Fatal("content not replaced")
	}
}

func TestDeleteSectionPreservesOrder(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)
	removed := p.Sections[2]

	rec := doJSON(t, mux, http.MethodDelete, "/api/v1/proposals/"+p.ID+"/sections/"+removed.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(updated.Sections) != 8 {
		t.Fatalf("section count = %d, want 8", len(updated.Sections))
	}
	for _, section := range updated.Sections {
		if section.ID == removed.ID {
			t.Fatal("removed section still present")
		}
	}
	if updated.Sections[0].ID != p.Sections[0].ID || updated.Sections[2].ID != p.Sections[3].ID {
		t.Fatal("remaining sections out of order")
	}
}

func TestReorderSections(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	order := make([]string, 0, len(p.Sections))
	for i := len(p.Sections) - 1; i >= 0; i-- {
		order = append(order, p.Sections[i].ID)
	}
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/proposals/"+p.ID+"/sections/reorder", map[string]any{"order": order})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Sections[0].ID != p.Sections[len(p.Sections)-1].ID {
		t.Fatal("sections not reordered")
	}
}

func TestReorderRejectsPartialList(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/proposals/"+p.ID+"/sections/reorder", map[string]any{
		"order": []string{p.Sections[0].ID},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReorderRejectsDuplicates(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	order := make([]string, len(p.Sections))
	for i := range order {
		order[i] = p.Sections[0].ID
	}
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/proposals/"+p.ID+"/sections/reorder", map[string]any{"order": order})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReplaceDesign(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	design := p.Design
	design.PrimaryColor = "#123456"
	rec := doJSON(t, mux, http.MethodPut, "/api/v1/proposals/"+p.ID+"/design", design)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Proposal
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Design.PrimaryColor != "#123456" {
		t.Fatalf("primary = %q", updated.Design.PrimaryColor)
	}
}

func TestReplaceDesignRejectsBadColor(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	design := p.Design
	design.PrimaryColor = "teal"
	rec := doJSON(t, mux, http.MethodPut, "/api/v1/proposals/"+p.ID+"/design", design)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPreviewPage(t *testing.T) {
	mux := newTestMux(t)
	p := createDefault(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/proposals/"+p.ID+"/preview", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<svg") {
		t.Fatal("preview page missing inline SVG")
	}
	if !strings.Contains(body, "preview-pages") {
		t.Fatal("preview page missing wrapper")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
}
