package ledger

import "sync"

// Ledger records the latest completed score per category for the lifetime
// of the process. It is safe for concurrent use; entries are never removed.
type Ledger struct {
	mu     sync.RWMutex
	scores map[string]int
	best   map[string]int
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{
		scores: make(map[string]int),
		best:   make(map[string]int),
	}
}

// Record stores score as the latest result for key, replacing any earlier one.
func (l *Ledger) Record(key string, score int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.scores[key] = score
	if b, ok := l.best[key]; !ok || score > b {
		l.best[key] = score
	}
}

// Score returns the latest recorded score for key.
func (l *Ledger) Score(key string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.scores[key]
	return s, ok
}

// Best returns the highest score recorded for key during this run.
func (l *Ledger) Best(key string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.best[key]
	return b, ok
}

// Entries returns a copy of the latest score per category.
func (l *Ledger) Entries() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]int, len(l.scores))
	for k, v := range l.scores {
		out[k] = v
	}
	return out
}

// CompletedCount returns the number of distinct categories recorded.
func (l *Ledger) CompletedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.scores)
}

// Total returns the sum of the latest scores across all categories.
func (l *Ledger) Total() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0
	for _, v := range l.scores {
		total += v
	}
	return total
}
