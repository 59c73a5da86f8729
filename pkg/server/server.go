// Package server exposes the graph toolkit over HTTP.
//
// The API mirrors the dashboard surface the toolkit was built for:
//
//	POST /api/graph/generate  — generate a synthetic graph
//	POST /api/mwis/solve      — solve MWIS for a posted graph
//	POST /api/mwis/analyze    — structural analysis of a posted graph
//	GET  /api/benchmark/mwis  — measured solver sweep
//	GET  /api/status          — health and version
//
// Validation failures map to 400 responses carrying the machine-readable
// error code; everything else is a 500.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shorfin/wisent/pkg/analyze"
	"github.com/shorfin/wisent/pkg/bench"
	"github.com/shorfin/wisent/pkg/buildinfo"
	"github.com/shorfin/wisent/pkg/errors"
	"github.com/shorfin/wisent/pkg/gen"
	"github.com/shorfin/wisent/pkg/graph"
	"github.com/shorfin/wisent/pkg/mwis"
	"github.com/shorfin/wisent/pkg/pipeline"
)

// Server is the HTTP API for graph generation, solving, and analysis.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server around a pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	return &Server{runner: runner, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/graph/generate", s.handleGenerate)
		r.Post("/mwis/solve", s.handleSolve)
		r.Post("/mwis/analyze", s.handleAnalyze)
		r.Get("/benchmark/mwis", s.handleBenchmark)
		r.Get("/status", s.handleStatus)
	})
	return r
}

// =============================================================================
// Request / Response Shapes
// =============================================================================

type generateRequest struct {
	Nodes       int     `json:"nodes"`
	Probability float64 `json:"probability"`
	Topology    string  `json:"topology"`
	Seed        uint64  `json:"seed"`
}

type graphRequest struct {
	Graph json.RawMessage `json:"graph"`
}

type solveResponse struct {
	Success   bool    `json:"success"`
	Solution  []int   `json:"solution"`
	Weight    float64 `json:"weight"`
	Algorithm string  `json:"algorithm"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{
		Nodes:       pipeline.DefaultNodes,
		Probability: pipeline.DefaultProbability,
		Topology:    string(pipeline.DefaultTopology),
		Seed:        pipeline.DefaultSeed,
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := gen.Generate(gen.Options{
		Nodes:       req.Nodes,
		Probability: req.Probability,
		Topology:    gen.Topology(req.Topology),
		Seed:        req.Seed,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := graph.MarshalGraph(g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"graph":   json.RawMessage(data),
		"nodes":   g.NodeCount(),
		"edges":   g.EdgeCount(),
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	g, err := decodeGraph(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sel, err := s.runner.Solve(r.Context(), g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, solveResponse{
		Success:   true,
		Solution:  sel.Nodes,
		Weight:    sel.Weight,
		Algorithm: mwis.Algorithm,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	g, err := decodeGraph(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	report, err := analyze.Analyze(g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": report,
		"nodes":    g.NodeCount(),
		"edges":    g.EdgeCount(),
		"density":  g.Density(),
	})
}

func (s *Server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	result, err := bench.Sweep(r.Context(), bench.Options{
		Probability: pipeline.DefaultProbability,
		Topology:    pipeline.DefaultTopology,
		Seed:        pipeline.DefaultSeed,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"benchmarks": result.Runs,
		"elapsed_ns": result.Elapsed,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "online",
		"version":    buildinfo.Version,
		"algorithms": []string{"generate", "mwis", "analyze", "benchmark"},
		"ready":      true,
	})
}

// =============================================================================
// Helpers
// =============================================================================

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

// decodeGraph extracts and validates the graph payload of solve/analyze
// requests.
func decodeGraph(r *http.Request) (*graph.Graph, error) {
	var req graphRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	if len(req.Graph) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing graph payload")
	}
	g, err := graph.UnmarshalGraph(req.Graph)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode graph")
	}
	return g, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	}

	s.logger.Warn("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"err", err)

	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
