package postgres

import (
	"context"
	"fmt"

	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	var details *string
	if entry.Details != "" {
		details = &entry.Details
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO economy_audit_logs (id, user_id, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, string(entry.Action), entry.ResourceType,
		entry.ResourceID, details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
