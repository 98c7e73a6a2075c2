package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionOfflineClaim  AuditAction = "OFFLINE_CLAIM"
	AuditActionPurchase      AuditAction = "PURCHASE"
	AuditActionSessionFinish AuditAction = "SESSION_FINISH"
	AuditActionMissionClaim  AuditAction = "MISSION_CLAIM"
	AuditActionPassClaim     AuditAction = "PASS_CLAIM"
	AuditActionScoreSubmit   AuditAction = "SCORE_SUBMIT"
)

// AuditLog records one successful mutating request.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       string      `json:"user_id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
