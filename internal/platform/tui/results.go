package tui

import (
	"sync"
	"time"
)

// Results keeps the best survival time per game for the lifetime of a
// session. Nothing is persisted.
type Results struct {
	mu     sync.Mutex
	best   map[string]time.Duration
	rounds map[string]int
}

// NewResults creates an empty result table.
func NewResults() *Results {
	return &Results{
		best:   make(map[string]time.Duration),
		rounds: make(map[string]int),
	}
}

// Record adds a finished round. Returns true if it is a new best.
func (r *Results) Record(gameID string, d time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rounds[gameID]++
	if best, ok := r.best[gameID]; ok && best >= d {
		return false
	}
	r.best[gameID] = d
	return true
}

// Best returns the longest recorded round for a game.
func (r *Results) Best(gameID string) (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.best[gameID]
	return d, ok
}

// Rounds returns how many rounds of a game have finished.
func (r *Results) Rounds(gameID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rounds[gameID]
}
