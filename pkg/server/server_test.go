package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/shorfin/wisent/pkg/pipeline"
)

func testServer() *Server {
	return New(pipeline.NewRunner(nil, nil), log.New(io.Discard))
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestStatus(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodGet, "/api/status", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "online" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["ready"] != true {
		t.Errorf("ready = %v", body["ready"])
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("missing request ID header")
	}
}

func TestGenerate(t *testing.T) {
	h := testServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/graph/generate", map[string]any{
		"nodes":       8,
		"probability": 0.5,
		"topology":    "random",
		"seed":        3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["nodes"] != float64(8) {
		t.Errorf("nodes = %v, want 8", body["nodes"])
	}
	g, ok := body["graph"].(map[string]any)
	if !ok {
		t.Fatalf("graph payload = %T", body["graph"])
	}
	if nodes, _ := g["nodes"].([]any); len(nodes) != 8 {
		t.Errorf("graph nodes = %d, want 8", len(nodes))
	}
}

func TestGenerateDefaults(t *testing.T) {
	// An empty body generates with the package defaults.
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/api/graph/generate", map[string]any{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["nodes"] != float64(pipeline.DefaultNodes) {
		t.Errorf("nodes = %v, want default %d", body["nodes"], pipeline.DefaultNodes)
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  map[string]any
		code string
	}{
		{"negative nodes", map[string]any{"nodes": -5, "probability": 0.5, "topology": "random"}, "INVALID_INPUT"},
		{"bad probability", map[string]any{"nodes": 5, "probability": 3.0, "topology": "random"}, "INVALID_PROBABILITY"},
		{"bad topology", map[string]any{"nodes": 5, "probability": 0.5, "topology": "mesh"}, "INVALID_TOPOLOGY"},
	}

	h := testServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/graph/generate", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			body := decodeBody(t, rec)
			if body["code"] != tt.code {
				t.Errorf("code = %v, want %s", body["code"], tt.code)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/api/mwis/solve", map[string]any{
		"graph": map[string]any{
			"nodes": []map[string]any{
				{"weight": 1.0}, {"weight": 5.0}, {"weight": 1.0}, {"weight": 1.0},
			},
			"edges": [][]int{{0, 1}, {1, 2}, {2, 3}},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["algorithm"] != "greedy" {
		t.Errorf("algorithm = %v", body["algorithm"])
	}
	if body["weight"] != 6.0 {
		t.Errorf("weight = %v, want 6", body["weight"])
	}
	sol, _ := body["solution"].([]any)
	if len(sol) != 2 || sol[0] != float64(1) || sol[1] != float64(3) {
		t.Errorf("solution = %v, want [1 3]", sol)
	}
}

func TestSolveMissingGraph(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/api/mwis/solve", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["code"] != "INVALID_INPUT" {
		t.Errorf("code = %v", body["code"])
	}
}

func TestSolveMalformedGraph(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/api/mwis/solve", map[string]any{
		"graph": map[string]any{
			"nodes": []map[string]any{{"weight": 1.0}},
			"edges": [][]int{{0, 7}},
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["code"] != "INVALID_GRAPH" {
		t.Errorf("code = %v", body["code"])
	}
}

func TestAnalyze(t *testing.T) {
	// 4-ring: regular and fully circulant.
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/api/mwis/analyze", map[string]any{
		"graph": map[string]any{
			"nodes": []map[string]any{
				{"weight": 1.0}, {"weight": 1.0}, {"weight": 1.0}, {"weight": 1.0},
			},
			"edges": [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	analysis, ok := body["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("analysis payload = %T", body["analysis"])
	}
	if analysis["is_regular"] != true {
		t.Errorf("is_regular = %v", analysis["is_regular"])
	}
	if analysis["symmetry_score"] != 1.0 {
		t.Errorf("symmetry_score = %v, want 1", analysis["symmetry_score"])
	}
	if analysis["suggested_approach"] == "" {
		t.Error("missing suggested_approach")
	}
}

func TestAnalyzeEmptyGraph(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/api/mwis/analyze", map[string]any{
		"graph": map[string]any{"nodes": []any{}, "edges": []any{}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	analysis, ok := body["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("analysis payload = %T", body["analysis"])
	}
	if analysis["nodes"] != float64(0) || analysis["is_regular"] != false {
		t.Errorf("empty-graph analysis = %v", analysis)
	}
}

func TestBenchmark(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodGet, "/api/benchmark/mwis", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	runs, ok := body["benchmarks"].([]any)
	if !ok {
		t.Fatalf("benchmarks payload = %T", body["benchmarks"])
	}
	if len(runs) != 4 {
		t.Errorf("runs = %d, want 4", len(runs))
	}
	for i, raw := range runs {
		run, _ := raw.(map[string]any)
		if run["id"] == "" || run["id"] == nil {
			t.Errorf("run %d missing id", i)
		}
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	h := testServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "caller-supplied" {
		t.Errorf("request ID = %q, want caller-supplied", got)
	}
}

func TestNotFound(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodGet, "/api/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
