package core

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// ResultInfo is the JSON view of a finished run.
type ResultInfo struct {
	SessionID string  `json:"sessionId"`
	Seed      string  `json:"seed"`
	State     string  `json:"state"`
	Success   bool    `json:"success"`
	Reason    string  `json:"reason"`
	Pad       string  `json:"pad,omitempty"`
	Finished  bool    `json:"finished"`
	Ticks     int     `json:"ticks"`
	Elapsed   float64 `json:"elapsed"`
	FuelLeft  float64 `json:"fuelLeft"`
}

func infoFrom(r Result) ResultInfo {
	info := ResultInfo{
		SessionID: r.SessionID.String(),
		Seed:      r.Seed,
		State:     r.State.String(),
		Success:   r.Outcome.Success,
		Reason:    r.Outcome.Reason,
		Finished:  r.Finished,
		Ticks:     r.Ticks,
		Elapsed:   r.Elapsed,
		FuelLeft:  r.FuelLeft,
	}
	if kind, ok := r.Outcome.Pad(); ok {
		info.Pad = kind.String()
	}
	return info
}

// Registry keeps the most recent run results in memory for the status
// endpoint.
type Registry struct {
	mu      sync.RWMutex
	results []ResultInfo
	limit   int
}

// NewRegistry keeps at most limit results; older ones are dropped first.
func NewRegistry(limit int) *Registry {
	if limit <= 0 {
		limit = 1
	}
	return &Registry{limit: limit}
}

func (r *Registry) Add(results ...Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range results {
		r.results = append(r.results, infoFrom(res))
	}
	if over := len(r.results) - r.limit; over > 0 {
		r.results = append([]ResultInfo(nil), r.results[over:]...)
	}
}

func (r *Registry) List() []ResultInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ResultInfo, len(r.results))
	copy(out, r.results)
	return out
}

// ListResults serves the registry as a JSON array.
func ListResults(reg *Registry, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reg.List()); err != nil {
			log.Warn("results encode error", zap.Error(err))
		}
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
