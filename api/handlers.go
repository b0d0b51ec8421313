/*
handlers.go - HTTP API handlers for the capacity engine

PURPOSE:
  Exposes the simulation engine via REST. Handles HTTP request/
  response, JSON serialization, and delegates to the engine, factory,
  and store.

ENDPOINTS:
  Scenarios:
    GET  /api/scenarios              List built-in scenarios
    POST /api/scenarios/{id}/run     Run a scenario and persist it

  Ad-hoc:
    POST /api/simulate               Run a request-supplied scenario
                                     (not persisted)

  Runs:
    GET  /api/runs                   List persisted runs
    GET  /api/runs/{id}              Run metadata
    GET  /api/runs/{id}/results      Monthly result sequence
    GET  /api/runs/{id}/export       CSV export

  Admin:
    POST /api/reset                  Clear all stored runs (dev only)

ERROR HANDLING:
  - 400: ConfigurationError (invalid scenario or request)
  - 404: Unknown scenario or run
  - 500: Store failures

SEE ALSO:
  - dto.go: Response structures
  - server.go: Router setup and middleware
*/
package api

import (
	"crypto/rand"
	"database/sql"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/capacity-engine/engine"
	"github.com/warp/capacity-engine/factory"
	"github.com/warp/capacity-engine/metrics"
	"github.com/warp/capacity-engine/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// now and newID are swappable for tests.
	now   func() time.Time
	newID func() string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store: store,
		now:   time.Now,
		newID: randomID,
	}
}

func randomID() string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return "run-" + hex.EncodeToString(buf)
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the built-in scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	specs := factory.Builtin()
	dtos := make([]ScenarioDTO, len(specs))
	for i, s := range specs {
		dtos[i] = ScenarioDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Horizon:     s.Horizon,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunScenario executes a built-in scenario, persists the run, and
// returns the full result sequence.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	spec := factory.FindBuiltin(id)
	if spec == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	results, specJSON, ok := h.simulate(w, spec)
	if !ok {
		return
	}

	run := sqlite.Run{
		ID:         h.newID(),
		ScenarioID: spec.ID,
		Name:       spec.Name,
		CreatedAt:  h.now().UTC(),
		SpecJSON:   specJSON,
	}
	if err := h.Store.SaveRun(r.Context(), run, results); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist run", err)
		return
	}

	writeJSON(w, http.StatusCreated, RunResponse{
		Run:     toRunDTO(run),
		Results: toResultDTOs(results),
	})
}

// Simulate executes a request-supplied scenario without persisting it.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var spec factory.ScenarioSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	results, _, ok := h.simulate(w, &spec)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SimulateResponse{Results: toResultDTOs(results)})
}

// simulate builds and runs a spec, writing the error response itself
// on failure. The bool reports success.
func (h *Handler) simulate(w http.ResponseWriter, spec *factory.ScenarioSpec) ([]engine.MonthlyResult, string, bool) {
	cfg, err := spec.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scenario", err)
		return nil, "", false
	}

	results, err := engine.Run(cfg)
	if err != nil {
		// Build already validated; anything here is still client input.
		writeError(w, http.StatusBadRequest, "Invalid scenario", err)
		return nil, "", false
	}
	metrics.ObserveRun(results)

	specJSON, err := json.Marshal(spec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode scenario", err)
		return nil, "", false
	}
	return results, string(specJSON), true
}

// =============================================================================
// RUN HANDLERS
// =============================================================================

// ListRuns returns all persisted runs, newest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list runs", err)
		return
	}

	dtos := make([]RunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = toRunDTO(run)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRun returns a single run's metadata.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toRunDTO(*run))
}

// GetRunResults returns a run's monthly result sequence.
func (h *Handler) GetRunResults(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}

	results, err := h.Store.Results(r.Context(), run.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load results", err)
		return
	}
	writeJSON(w, http.StatusOK, toResultDTOs(results))
}

// ExportRun writes a run's results as CSV.
func (h *Handler) ExportRun(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}

	results, err := h.Store.Results(r.Context(), run.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load results", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.ID+".csv"))

	cw := csv.NewWriter(w)
	cw.Write([]string{
		"month", "accounts", "headcount", "new_hires",
		"sla_attainment", "utilization", "quality",
		"revenue", "cost", "margin", "sla_unmet",
	})
	for _, res := range results {
		cw.Write([]string{
			strconv.Itoa(res.Month),
			strconv.Itoa(res.Accounts),
			strconv.Itoa(res.Headcount),
			strconv.Itoa(res.NewHires),
			res.Attainment.String(),
			res.Utilization.String(),
			res.Quality.String(),
			res.Revenue.String(),
			res.Cost.String(),
			res.Margin.String(),
			strconv.FormatBool(res.SLAUnmet),
		})
	}
	cw.Flush()
}

func (h *Handler) lookupRun(w http.ResponseWriter, r *http.Request) (*sqlite.Run, bool) {
	id := chi.URLParam(r, "id")
	run, err := h.Store.GetRun(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Run not found", nil)
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load run", err)
		return nil, false
	}
	return run, true
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// Reset clears all stored runs. Development use only.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
