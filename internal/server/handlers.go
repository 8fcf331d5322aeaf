package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/run"
	"github.com/mhalvorsen/lsm-workbench/internal/task"
)

// experimentRequest is the POST /run-experiment body. Zero-valued
// parameter fields fall back to the configured defaults, so a minimal
// request only needs the backends list.
type experimentRequest struct {
	OptionParams     run.OptionParams     `json:"option_params"`
	SimulationParams run.SimulationParams `json:"simulation_params"`
	Backends         []string             `json:"backends"`
	Sweep            *run.Sweep           `json:"sweep,omitempty"`
}

func (s *Server) handleRunExperiment(w http.ResponseWriter, r *http.Request) {
	var req experimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Backends) == 0 {
		writeError(w, http.StatusBadRequest, "at least one backend is required")
		return
	}

	c := run.Case{
		Name:       "dynamic_run",
		Params:     s.fillOptionDefaults(req.OptionParams),
		Simulation: s.fillSimulationDefaults(req.SimulationParams),
		Backends:   req.Backends,
		Sweep:      req.Sweep,
	}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := s.tracker.Create()
	s.launch(id, c)

	writeJSON(w, http.StatusOK, map[string]string{"task_id": id})
}

func (s *Server) handleTaskStatus(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tracker.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleBackends(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	}
	names := s.registry.Names()
	out := make([]entry, 0, len(names))
	for _, key := range names {
		b, err := s.registry.Lookup(key)
		if err != nil {
			continue
		}
		out = append(out, entry{Key: key, Name: b.Describe()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "lsm-workbench",
		"timestamp": time.Now().Unix(),
	})
}

// fillOptionDefaults replaces zero fields with configured defaults.
// A deliberately zero rate is indistinguishable from an unset one and
// also falls back; pass an explicit tiny rate to disable discounting.
func (s *Server) fillOptionDefaults(p run.OptionParams) run.OptionParams {
	d := s.cfg.Defaults.Option
	if p.S0 == 0 {
		p.S0 = d.S0
	}
	if p.K == 0 {
		p.K = d.K
	}
	if p.T == 0 {
		p.T = d.T
	}
	if p.R == 0 {
		p.R = d.R
	}
	if p.Sigma == 0 {
		p.Sigma = d.Sigma
	}
	return p
}

func (s *Server) fillSimulationDefaults(p run.SimulationParams) run.SimulationParams {
	d := s.cfg.Defaults.Simulation
	if p.NumPaths == 0 {
		p.NumPaths = d.NumPaths
	}
	if p.NumSteps == 0 {
		p.NumSteps = d.NumSteps
	}
	if p.Seed == 0 {
		p.Seed = d.Seed
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
