package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/swaplab/swapplan/pkg/archive"
	"github.com/swaplab/swapplan/pkg/plan"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store, err := archive.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	return New(nil, store, nil).Router()
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreatePlan(t *testing.T) {
	h := newTestServer(t)

	body := `{"labels": [0, 1, 2, 3, 4], "target": [4, 2, 0, 1, 3]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var doc plan.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if doc.ID == "" {
		t.Error("response should carry a plan ID")
	}
	if doc.Stats.Swaps != 4 {
		t.Errorf("Stats.Swaps = %d, want 4", doc.Stats.Swaps)
	}
}

func TestCreatePlanValidationError(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"unknown label", `{"labels": [0, 1], "target": [0, 9]}`, "UNKNOWN_LABEL"},
		{"length mismatch", `{"labels": [0, 1, 2], "target": [0, 1]}`, "LENGTH_MISMATCH"},
		{"too few labels", `{"labels": [0], "target": [0]}`, "INSUFFICIENT_LABELS"},
		{"duplicate label", `{"labels": [0, 1, 1], "target": [1, 0, 1]}`, "DUPLICATE_LABEL"},
		{"missing labels", `{"target": [0, 1]}`, "INVALID_INPUT"},
		{"malformed json", `{nope`, "INVALID_INPUT"},
		{"float label", `{"labels": [0.5, 1], "target": [1, 0.5]}`, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(tt.body)))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Error.Code != tt.code {
				t.Errorf("error code = %s, want %s", resp.Error.Code, tt.code)
			}
		})
	}
}

func TestGetPlanRoundTrip(t *testing.T) {
	h := newTestServer(t)

	body := `{"labels": ["a", "b", "c"], "target": ["c", "a", "b"]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}
	var created plan.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created plan: %v", err)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rec.Code, rec.Body)
	}
	var got plan.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode fetched plan: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %s, want %s", got.ID, created.ID)
	}
}

func TestGetPlanNotFound(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error.Code != "PLAN_NOT_FOUND" {
		t.Errorf("error code = %s, want PLAN_NOT_FOUND", resp.Error.Code)
	}
}

func TestGetDiagram(t *testing.T) {
	h := newTestServer(t)

	body := `{"labels": [0, 1, 2], "target": [2, 0, 1]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body)))
	var created plan.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created plan: %v", err)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+created.ID+"/diagram", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "SWAP") {
		t.Errorf("text diagram missing gates:\n%s", rec.Body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+created.ID+"/diagram?format=dot", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("dot status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.HasPrefix(rec.Body.String(), "graph G {") {
		t.Errorf("dot diagram should start with graph header:\n%s", rec.Body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+created.ID+"/diagram?format=gif", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown format status = %d, want 400", rec.Code)
	}
}
