package tui

import (
	"testing"
	"time"
)

func TestResults(t *testing.T) {
	r := NewResults()

	if _, ok := r.Best("tron"); ok {
		t.Fatal("empty results should have no best")
	}

	if !r.Record("tron", 2*time.Second) {
		t.Error("first round should be a new best")
	}
	if r.Record("tron", time.Second) {
		t.Error("shorter round should not be a new best")
	}
	if !r.Record("tron", 3*time.Second) {
		t.Error("longer round should be a new best")
	}

	if best, _ := r.Best("tron"); best != 3*time.Second {
		t.Errorf("Best() = %v, expected 3s", best)
	}
	if n := r.Rounds("tron"); n != 3 {
		t.Errorf("Rounds() = %d, expected 3", n)
	}
	if n := r.Rounds("tron_fine"); n != 0 {
		t.Errorf("Rounds(tron_fine) = %d, expected 0", n)
	}
}
