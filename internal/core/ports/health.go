package ports

import "context"

// HealthChecker is an optional backend reported on /health.
// A non-nil Ping error marks the service degraded.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
