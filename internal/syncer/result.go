package syncer

import (
	"encoding/json"

	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
)

// TimeframeResult reports one timeframe pass: either its counters or the
// error that failed the whole pass.
type TimeframeResult struct {
	Fetched int
	Stored  int
	Err     string
}

// MarshalJSON emits {"fetched": n, "stored": m} for a completed pass and
// {"error": "..."} for a failed one, never a mix of both.
func (r TimeframeResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: r.Err})
	}

	return json.Marshal(struct {
		Fetched int `json:"fetched"`
		Stored  int `json:"stored"`
	}{Fetched: r.Fetched, Stored: r.Stored})
}

// RunResult is the sole output of a sync run. Success reflects only that the
// orchestrator completed; per-timeframe failures are reported inline.
type RunResult struct {
	Success     bool                                    `json:"success"`
	TotalStored int                                     `json:"total_stored"`
	Results     map[wordpress.Timeframe]TimeframeResult `json:"results"`
}

// FailureResult is the early-exit response when required configuration is
// absent and the run aborts before any fetch.
type FailureResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewFailure(message string) FailureResult {
	return FailureResult{Success: false, Message: message}
}
