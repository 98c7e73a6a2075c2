package dto

import "ppocha-economy/internal/core/domain"

// ---- Requests ----
// uid is optional everywhere and defaults to the guest account.

// CatalogQuery is the query string of GET /api/shop/catalog.
type CatalogQuery struct {
	UID     string `form:"uid" binding:"max=128"`
	Country string `form:"country" binding:"max=8"`
	City    string `form:"city" binding:"max=64"`
	Segment string `form:"segment" binding:"max=32"`
}

// PurchaseVerifyRequest is the body of POST /api/shop/purchase/verify.
type PurchaseVerifyRequest struct {
	UID   string `json:"uid" binding:"max=128"`
	SKUID string `json:"skuId" binding:"omitempty,safe_id,max=64"`
	TxID  string `json:"txId" binding:"omitempty,safe_id,max=128"`
}

// OfflineClaimRequest is the body of POST /api/economy/offline/claim.
type OfflineClaimRequest struct {
	UID          string      `json:"uid" binding:"max=128"`
	ClaimType    string      `json:"claimType" binding:"max=16"`
	LastSeenAtMs LooseNumber `json:"lastSeenAtMs"`
}

// SessionFinishRequest is the body of POST /api/game/session/finish.
type SessionFinishRequest struct {
	UID      string      `json:"uid" binding:"max=128"`
	RunGold  LooseNumber `json:"runGold"`
	PlayedMs LooseNumber `json:"playedMs"`
	Served   LooseNumber `json:"served"`
	Missed   LooseNumber `json:"missed"`
	MaxCombo LooseNumber `json:"maxCombo"`
}

// RankingQuery is the query string of GET /api/rankings.
type RankingQuery struct {
	Scope  string `form:"scope" binding:"max=32"`
	Period string `form:"period" binding:"max=32"`
	Type   string `form:"type" binding:"max=32"`
}

// ScoreSubmitRequest is the body of POST /api/rankings/submit.
type ScoreSubmitRequest struct {
	UID         string      `json:"uid" binding:"max=128"`
	ClientScore LooseNumber `json:"clientScore"`
	RawLogHash  string      `json:"rawLogHash" binding:"max=512"`
	SessionID   string      `json:"sessionId" binding:"max=128"`
}

// MissionClaimRequest is the body of POST /api/missions/claim.
type MissionClaimRequest struct {
	UID       string `json:"uid" binding:"max=128"`
	MissionID string `json:"missionId" binding:"omitempty,safe_id,max=32"`
}

// PassClaimRequest is the body of POST /api/pass/claim.
type PassClaimRequest struct {
	UID      string `json:"uid" binding:"max=128"`
	PassTier string `json:"passTier" binding:"omitempty,safe_id,max=32"`
	RewardID string `json:"rewardId" binding:"omitempty,safe_id,max=64"`
}

// ---- Responses ----

// PlayerStateResponse is returned by GET /api/player/state.
type PlayerStateResponse struct {
	UID          string        `json:"uid"`
	Wallet       domain.Wallet `json:"wallet"`
	BaseRPM      int64         `json:"baseRPM"`
	LastSeenAtMs int64         `json:"lastSeenAtMs"`
	ServerTime   int64         `json:"serverTime"`
}

// CatalogMeta echoes the storefront context of a catalog request.
type CatalogMeta struct {
	UID     string `json:"uid"`
	Country string `json:"country"`
	City    string `json:"city"`
	Segment string `json:"segment"`
}

// CatalogResponse is returned by GET /api/shop/catalog.
type CatalogResponse struct {
	Meta CatalogMeta             `json:"meta"`
	Tabs map[string][]domain.SKU `json:"tabs"`
}

// WalletDelta is the change a purchase applied.
type WalletDelta struct {
	Gold     int64    `json:"gold"`
	FreeCash int64    `json:"freeCash"`
	PaidCash int64    `json:"paidCash"`
	Items    []string `json:"items"`
}

// PurchaseResponse is returned by POST /api/shop/purchase/verify.
type PurchaseResponse struct {
	SKUID        string        `json:"skuId"`
	TxID         string        `json:"txId"`
	GrantedItems []string      `json:"grantedItems"`
	WalletDelta  WalletDelta   `json:"walletDelta"`
	Wallet       domain.Wallet `json:"wallet"`
	ServerTime   int64         `json:"serverTime"`
}

// OfflineRewards is the currency granted by an offline claim.
type OfflineRewards struct {
	Gold     int64 `json:"gold"`
	FreeCash int64 `json:"freeCash"`
}

// OfflineClaimResponse is returned by POST /api/economy/offline/claim.
type OfflineClaimResponse struct {
	UID               string         `json:"uid"`
	OfflineMin        int64          `json:"offlineMin"`
	Decay             float64        `json:"decay"`
	AppliedMultiplier int64          `json:"appliedMultiplier"`
	ClaimType         string         `json:"claimType"`
	PaidCashSpent     int64          `json:"paidCashSpent"`
	Rewards           OfflineRewards `json:"rewards"`
	Wallet            domain.Wallet  `json:"wallet"`
	BaseRPM           int64          `json:"baseRPM"`
	LastSeenAtMs      int64          `json:"lastSeenAtMs"`
	RemainingStorage  int64          `json:"remainingStorage"`
	ServerTime        int64          `json:"serverTime"`
}

// SessionSummary echoes the coerced session numbers.
type SessionSummary struct {
	RunGold  int64 `json:"runGold"`
	Served   int64 `json:"served"`
	Missed   int64 `json:"missed"`
	PlayedMs int64 `json:"playedMs"`
	MaxCombo int64 `json:"maxCombo"`
}

// SessionFinishResponse is returned by POST /api/game/session/finish.
type SessionFinishResponse struct {
	UID          string         `json:"uid"`
	Summary      SessionSummary `json:"summary"`
	Wallet       domain.Wallet  `json:"wallet"`
	BaseRPM      int64          `json:"baseRPM"`
	LastSeenAtMs int64          `json:"lastSeenAtMs"`
	Stats        domain.Stats   `json:"stats"`
	ServerTime   int64          `json:"serverTime"`
}

// RankingsResponse is returned by GET /api/rankings.
type RankingsResponse struct {
	Scope  string              `json:"scope"`
	Period string              `json:"period"`
	Type   string              `json:"type"`
	Rows   []domain.RankingRow `json:"rows"`
}

// ScoreSubmitResponse is returned by POST /api/rankings/submit.
type ScoreSubmitResponse struct {
	UID           string `json:"uid"`
	SessionID     string `json:"sessionId"`
	VerifiedScore int64  `json:"verifiedScore"`
	Status        string `json:"status"`
}

// Reward lists only the currencies a reward actually pays.
type Reward struct {
	Gold     int64 `json:"gold,omitempty"`
	FreeCash int64 `json:"freeCash,omitempty"`
}

// MissionView is one mission on the daily board.
type MissionView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Progress int64  `json:"progress"`
	Goal     int64  `json:"goal"`
	Reward   Reward `json:"reward"`
	Claimed  bool   `json:"claimed"`
}

// DailyMissionsResponse is returned by GET /api/missions/daily.
type DailyMissionsResponse struct {
	UID      string        `json:"uid"`
	Missions []MissionView `json:"missions"`
	Stats    domain.Stats  `json:"stats"`
}

// MissionClaimResponse is returned by POST /api/missions/claim.
type MissionClaimResponse struct {
	UID       string        `json:"uid"`
	MissionID string        `json:"missionId"`
	Reward    Reward        `json:"reward"`
	Wallet    domain.Wallet `json:"wallet"`
}

// PassClaimResponse is returned by POST /api/pass/claim.
type PassClaimResponse struct {
	UID      string        `json:"uid"`
	PassTier string        `json:"passTier"`
	RewardID string        `json:"rewardId"`
	Reward   Reward        `json:"reward"`
	Wallet   domain.Wallet `json:"wallet"`
}

// NewReward converts a grant into its wire form.
func NewReward(g domain.Grant) Reward {
	return Reward{Gold: g.Gold, FreeCash: g.FreeCash}
}
