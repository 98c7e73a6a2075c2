//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

package ports

import (
	"context"
	"time"

	"ppocha-economy/internal/core/domain"
)

// Clock supplies the current time. Injected so offline math is testable.
type Clock interface {
	Now() time.Time
}

// RandomSource backs synthetic transaction ids and the score bonus.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Token returns a short opaque suffix for generated ids.
	Token() string
}

// AccountRepository is the player registry. Accounts are created with seed
// values on first reference and never deleted.
type AccountRepository interface {
	// Get returns a snapshot of the account, creating it if needed.
	Get(ctx context.Context, userID string) (domain.Account, error)
	// Update runs fn on a copy of the account while holding the account's
	// lock. The copy is committed only when fn returns nil, so a failed
	// operation leaves the account exactly as it was.
	Update(ctx context.Context, userID string, fn func(acct *domain.Account) error) (domain.Account, error)
}

// Ledger is the idempotency store: a set of keys whose grants were applied.
type Ledger interface {
	// Reserve atomically records key. Returns false if it was already present.
	Reserve(ctx context.Context, key string) (bool, error)
	// Contains reports whether key has been recorded.
	Contains(ctx context.Context, key string) (bool, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
