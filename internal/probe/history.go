package probe

import (
	"sync"
	"time"
)

// Result is one availability probe outcome.
type Result struct {
	Timestamp time.Time `json:"timestamp"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

// History is a concurrency-safe, bounded record of probe results.
type History struct {
	mu sync.RWMutex

	results []Result

	// retention configuration
	maxResults int           // max number of results kept (0 = unlimited)
	maxAge     time.Duration // optional max age for results
}

// NewHistory creates a History with optional limits.
// If maxResults is <= 0, it is treated as unlimited.
func NewHistory(maxResults int, maxAge time.Duration) *History {
	return &History{
		maxResults: maxResults,
		maxAge:     maxAge,
	}
}

// Add appends a result and enforces retention.
func (h *History) Add(r Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = append(h.results, r)

	// Enforce retention by count.
	if h.maxResults > 0 && len(h.results) > h.maxResults {
		over := len(h.results) - h.maxResults
		h.results = h.results[over:]
	}

	// Enforce retention by age.
	if h.maxAge > 0 {
		cutoff := time.Now().Add(-h.maxAge)
		i := 0
		for ; i < len(h.results); i++ {
			if !h.results[i].Timestamp.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(h.results) {
			h.results = h.results[i:]
		}
	}
}

// Recent returns the recorded results, oldest first.
func (h *History) Recent() []Result {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Result, len(h.results))
	copy(out, h.results)
	return out
}

// Latest returns the most recent result, if any.
func (h *History) Latest() (Result, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.results) == 0 {
		return Result{}, false
	}
	return h.results[len(h.results)-1], true
}
