package memory

import (
	"context"
	"sync"
)

// Ledger implements ports.Ledger as a mutex-guarded set. Keys are never removed.
type Ledger struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{keys: make(map[string]struct{})}
}

// Reserve records key, returning false if it was already recorded.
func (l *Ledger) Reserve(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, seen := l.keys[key]; seen {
		return false, nil
	}
	l.keys[key] = struct{}{}
	return true, nil
}

// Contains reports whether key was recorded.
func (l *Ledger) Contains(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, seen := l.keys[key]
	return seen, nil
}
