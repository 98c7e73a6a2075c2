package domain

import (
	"math"
	"math/bits"
	"time"
)

// GuestUserID is the account used when a request names no user.
const GuestUserID = "guest"

// MaxSafeInteger bounds client-supplied counts and amounts (2^53-1), the
// largest integer a JSON client can represent exactly.
const MaxSafeInteger int64 = 1<<53 - 1

// Seed values for an account created on first reference.
const (
	SeedGold              int64 = 128550
	SeedFreeCash          int64 = 480
	SeedPaidCash          int64 = 120
	SeedBaseRatePerMinute int64 = 185
	SeedIdleGap                 = 260 * time.Minute
)

// Wallet is the tuple of currencies owned by a player.
type Wallet struct {
	Gold     int64 `json:"gold"`
	FreeCash int64 `json:"freeCash"`
	PaidCash int64 `json:"paidCash"`
}

// Grant is a wallet delta. PaidCash is negative for spends.
type Grant struct {
	Gold     int64 `json:"gold"`
	FreeCash int64 `json:"freeCash"`
	PaidCash int64 `json:"paidCash"`
}

// IsZero reports whether the grant moves nothing.
func (g Grant) IsZero() bool {
	return g == Grant{}
}

// Stats are the session counters missions are measured against.
// All three only ever grow.
type Stats struct {
	ServedTotal    int64 `json:"servedTotal"`
	BestCombo      int64 `json:"bestCombo"`
	InvitedFriends int64 `json:"invitedFriends"`
}

// Account is a player's mutable economy state.
// It is a plain value: copying it yields an independent snapshot.
type Account struct {
	UserID            string `json:"uid"`
	Wallet            Wallet `json:"wallet"`
	BaseRatePerMinute int64  `json:"baseRPM"`
	LastActiveAtMs    int64  `json:"lastSeenAtMs"`
	Stats             Stats  `json:"stats"`
}

// NewAccount returns a default-seeded account last seen SeedIdleGap before now.
func NewAccount(userID string, now time.Time) *Account {
	return &Account{
		UserID: userID,
		Wallet: Wallet{
			Gold:     SeedGold,
			FreeCash: SeedFreeCash,
			PaidCash: SeedPaidCash,
		},
		BaseRatePerMinute: SeedBaseRatePerMinute,
		LastActiveAtMs:    now.Add(-SeedIdleGap).UnixMilli(),
	}
}

// CanSpendPaid reports whether the paid balance covers amount.
func (a *Account) CanSpendPaid(amount int64) bool {
	return a.Wallet.PaidCash >= amount
}

// Apply adds g to the wallet. Callers must check CanSpendPaid before
// applying a negative PaidCash delta.
func (a *Account) Apply(g Grant) {
	a.Wallet.Gold = addSat(a.Wallet.Gold, g.Gold)
	a.Wallet.FreeCash = addSat(a.Wallet.FreeCash, g.FreeCash)
	a.Wallet.PaidCash = addSat(a.Wallet.PaidCash, g.PaidCash)
}

// RecordSession folds a finished run into the monotonic stats.
// InvitedFriends is not touched here.
func (a *Account) RecordSession(served, maxCombo int64) {
	if served > 0 {
		a.Stats.ServedTotal = addSat(a.Stats.ServedTotal, served)
	}
	if maxCombo > a.Stats.BestCombo {
		a.Stats.BestCombo = maxCombo
	}
}

// Touch marks the account active at now.
func (a *Account) Touch(now time.Time) {
	a.LastActiveAtMs = now.UnixMilli()
}

// addSat returns a+b clamped to the int64 range.
func addSat(a, b int64) int64 {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt64
	case b < 0 && sum > a:
		return math.MinInt64
	}
	return sum
}

// mulSat returns a*b for non-negative operands, saturating at MaxInt64.
func mulSat(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(lo)
}
