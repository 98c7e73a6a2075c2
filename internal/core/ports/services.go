//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

package ports

import (
	"context"

	"ppocha-economy/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// EconomyService owns every wallet-mutating rule.
type EconomyService interface {
	PlayerState(ctx context.Context, userID string) (*PlayerStateResult, error)
	Catalog() *domain.Catalog
	ClaimOffline(ctx context.Context, req OfflineClaimRequest) (*OfflineClaimResult, error)
	VerifyPurchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	FinishSession(ctx context.Context, req SessionFinishRequest) (*SessionFinishResult, error)
	DailyMissions(ctx context.Context, userID string) (*DailyMissionsResult, error)
	ClaimMission(ctx context.Context, req MissionClaimRequest) (*ClaimResult, error)
	ClaimPass(ctx context.Context, req PassClaimRequest) (*ClaimResult, error)
}

// LeaderboardService serves ranking reference data and verifies submissions.
type LeaderboardService interface {
	Rankings(ctx context.Context, scope, rankingType string) []domain.RankingRow
	SubmitScore(ctx context.Context, req ScoreSubmitRequest) (*domain.ScoreVerdict, error)
}

// AuditService records successful mutating requests.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// PlayerStateResult is a read-only view of an account.
type PlayerStateResult struct {
	Account    domain.Account
	ServerTime int64
}

// OfflineClaimRequest holds validated input for an offline reward claim.
type OfflineClaimRequest struct {
	UserID       string
	ClaimType    domain.ClaimType
	LastSeenAtMs *int64 // nil or zero falls back to the stored value
}

// OfflineClaimResult describes an applied offline reward.
type OfflineClaimResult struct {
	Quote      domain.OfflineQuote
	Account    domain.Account
	ServerTime int64
}

// PurchaseRequest holds validated input for purchase verification.
type PurchaseRequest struct {
	UserID string
	SKUID  string
	TxID   string // empty = generate one
}

// PurchaseResult describes an applied purchase grant.
type PurchaseResult struct {
	SKU        domain.SKU
	TxID       string
	Grant      domain.Grant
	Account    domain.Account
	ServerTime int64
}

// SessionFinishRequest carries already-coerced session numbers.
type SessionFinishRequest struct {
	UserID   string
	RunGold  int64
	PlayedMs int64 // <= 0 means the 60s default
	Served   int64
	Missed   int64
	MaxCombo int64
}

// SessionFinishResult echoes the clamped summary and the updated account.
type SessionFinishResult struct {
	RunGold    int64
	Served     int64
	Missed     int64
	PlayedMs   int64
	MaxCombo   int64
	Account    domain.Account
	ServerTime int64
}

// MissionStatus is one row of the daily mission board.
type MissionStatus struct {
	Mission  domain.Mission
	Progress int64
	Claimed  bool
}

// DailyMissionsResult is the mission board for a user.
type DailyMissionsResult struct {
	UserID   string
	Missions []MissionStatus
	Stats    domain.Stats
}

// MissionClaimRequest identifies a mission reward.
type MissionClaimRequest struct {
	UserID    string
	MissionID string
}

// PassClaimRequest identifies a battle-pass reward.
type PassClaimRequest struct {
	UserID   string
	PassTier string
	RewardID string
}

// ClaimResult describes an applied mission or pass reward.
type ClaimResult struct {
	Key     string
	Reward  domain.Grant
	Account domain.Account
}

// ScoreSubmitRequest is a leaderboard submission.
type ScoreSubmitRequest struct {
	UserID      string
	ClientScore float64
	RawLogHash  string
	SessionID   string
}
