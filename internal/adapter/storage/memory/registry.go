// Package memory holds the process-lifetime stores: the player registry and
// the idempotency ledger.
package memory

import (
	"context"
	"sync"

	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
)

type accountSlot struct {
	mu   sync.Mutex
	acct domain.Account
}

// Registry implements ports.AccountRepository.
// The map lock only guards slot lookup; each account has its own mutex, so
// requests for different users never wait on each other.
type Registry struct {
	mu    sync.RWMutex
	slots map[string]*accountSlot
	clock ports.Clock
}

// NewRegistry creates an empty registry. clock stamps the seed last-active time.
func NewRegistry(clock ports.Clock) *Registry {
	return &Registry{
		slots: make(map[string]*accountSlot),
		clock: clock,
	}
}

// Get returns a snapshot of the account, creating it on first reference.
func (r *Registry) Get(_ context.Context, userID string) (domain.Account, error) {
	slot := r.slot(userID)
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.acct, nil
}

// Update runs fn against a copy under the account lock and commits the copy
// only if fn succeeds.
func (r *Registry) Update(_ context.Context, userID string, fn func(acct *domain.Account) error) (domain.Account, error) {
	slot := r.slot(userID)
	slot.mu.Lock()
	defer slot.mu.Unlock()

	working := slot.acct
	if err := fn(&working); err != nil {
		return slot.acct, err
	}
	slot.acct = working
	return working, nil
}

// Len reports the number of known accounts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func (r *Registry) slot(userID string) *accountSlot {
	if userID == "" {
		userID = domain.GuestUserID
	}

	r.mu.RLock()
	slot, ok := r.slots[userID]
	r.mu.RUnlock()
	if ok {
		return slot
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if slot, ok := r.slots[userID]; ok {
		return slot
	}
	slot = &accountSlot{acct: *domain.NewAccount(userID, r.clock.Now())}
	r.slots[userID] = slot
	return slot
}
