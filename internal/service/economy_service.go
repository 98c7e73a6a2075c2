package service

import (
	"context"
	"errors"
	"fmt"

	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/apperror"

	"github.com/rs/zerolog"
)

// EconomyServiceImpl implements ports.EconomyService.
type EconomyServiceImpl struct {
	accounts ports.AccountRepository
	ledger   ports.Ledger
	catalog  *domain.Catalog
	clock    ports.Clock
	rand     ports.RandomSource
	log      zerolog.Logger
}

// NewEconomyService creates a new EconomyServiceImpl.
func NewEconomyService(
	accounts ports.AccountRepository,
	ledger ports.Ledger,
	catalog *domain.Catalog,
	clock ports.Clock,
	rand ports.RandomSource,
	log zerolog.Logger,
) *EconomyServiceImpl {
	if catalog == nil {
		catalog = domain.NewCatalog(nil)
	}
	return &EconomyServiceImpl{
		accounts: accounts,
		ledger:   ledger,
		catalog:  catalog,
		clock:    clock,
		rand:     rand,
		log:      log,
	}
}

// Catalog returns the shop catalog loaded at startup.
func (s *EconomyServiceImpl) Catalog() *domain.Catalog {
	return s.catalog
}

// PlayerState returns the account, creating it with seed values if needed.
func (s *EconomyServiceImpl) PlayerState(ctx context.Context, userID string) (*ports.PlayerStateResult, error) {
	acct, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	return &ports.PlayerStateResult{Account: acct, ServerTime: s.clock.Now().UnixMilli()}, nil
}

// ClaimOffline grants idle income for the time since the last acknowledged
// activity. Each claim advances LastActiveAtMs, so an immediate second claim
// is worth roughly nothing; there is no explicit idempotency key.
func (s *EconomyServiceImpl) ClaimOffline(ctx context.Context, req ports.OfflineClaimRequest) (*ports.OfflineClaimResult, error) {
	claim := domain.ClaimFree
	if req.ClaimType == domain.ClaimX2 {
		claim = domain.ClaimX2
	}

	now := s.clock.Now()
	nowMs := now.UnixMilli()

	var quote domain.OfflineQuote
	acct, err := s.accounts.Update(ctx, req.UserID, func(a *domain.Account) error {
		lastSeen := a.LastActiveAtMs
		if req.LastSeenAtMs != nil && *req.LastSeenAtMs != 0 {
			lastSeen = *req.LastSeenAtMs
		}
		if lastSeen == 0 {
			lastSeen = nowMs
		}

		quote = domain.QuoteOffline(a.BaseRatePerMinute, domain.OfflineMinutes(nowMs, lastSeen), claim)
		if !a.CanSpendPaid(quote.Cost) {
			return apperror.ErrInsufficientFunds()
		}
		a.Apply(quote.Grant())
		a.Touch(now)
		return nil
	})
	if err != nil {
		return nil, wrapInternal("offline claim", err)
	}

	s.log.Info().
		Str("uid", acct.UserID).
		Str("claim_type", string(quote.ClaimType)).
		Int64("offline_minutes", quote.OfflineMinutes).
		Int64("gold", quote.Gold).
		Int64("free_cash", quote.FreeCash).
		Msg("offline reward claimed")

	return &ports.OfflineClaimResult{Quote: quote, Account: acct, ServerTime: nowMs}, nil
}

// VerifyPurchase applies the grant for a SKU once per transaction id.
// The txId is reserved before the wallet is touched, so concurrent duplicates
// produce exactly one grant.
func (s *EconomyServiceImpl) VerifyPurchase(ctx context.Context, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	if req.SKUID == "" {
		return nil, apperror.ErrInvalidArgument("skuId required")
	}
	sku, ok := s.catalog.Find(req.SKUID)
	if !ok {
		return nil, apperror.ErrInvalidArgument("invalid skuId")
	}

	now := s.clock.Now()
	txID := req.TxID
	if txID == "" {
		txID = fmt.Sprintf("tx_%d_%s", now.UnixMilli(), s.rand.Token())
	}

	reserved, err := s.ledger.Reserve(ctx, domain.PurchaseKey(txID))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve txId: %w", err))
	}
	if !reserved {
		s.log.Warn().Str("uid", req.UserID).Str("tx_id", txID).Msg("duplicate purchase rejected")
		return nil, apperror.ErrDuplicateTransaction()
	}

	grant := domain.GrantForSKU(sku.ID)
	acct, err := s.accounts.Update(ctx, req.UserID, func(a *domain.Account) error {
		a.Apply(grant)
		return nil
	})
	if err != nil {
		return nil, wrapInternal("purchase grant", err)
	}

	s.log.Info().
		Str("uid", acct.UserID).
		Str("sku", sku.ID).
		Str("tx_id", txID).
		Int64("gold", grant.Gold).
		Int64("free_cash", grant.FreeCash).
		Msg("purchase verified")

	return &ports.PurchaseResult{
		SKU:        sku,
		TxID:       txID,
		Grant:      grant,
		Account:    acct,
		ServerTime: now.UnixMilli(),
	}, nil
}

// FinishSession banks a run's gold, folds it into the idle-rate estimate and
// updates stats. It never fails on input: every number is clamped to
// [0, MaxSafeInteger].
func (s *EconomyServiceImpl) FinishSession(ctx context.Context, req ports.SessionFinishRequest) (*ports.SessionFinishResult, error) {
	runGold := clampCount(req.RunGold)
	served := clampCount(req.Served)
	missed := clampCount(req.Missed)
	maxCombo := clampCount(req.MaxCombo)
	playedMs := clampCount(req.PlayedMs)
	if playedMs == 0 {
		playedMs = domain.DefaultPlayedMs
	}

	now := s.clock.Now()
	acct, err := s.accounts.Update(ctx, req.UserID, func(a *domain.Account) error {
		a.BaseRatePerMinute = domain.BlendRate(a.BaseRatePerMinute, runGold, playedMs)
		a.Apply(domain.Grant{Gold: runGold})
		a.Touch(now)
		a.RecordSession(served, maxCombo)
		return nil
	})
	if err != nil {
		return nil, wrapInternal("session finish", err)
	}

	s.log.Debug().
		Str("uid", acct.UserID).
		Int64("run_gold", runGold).
		Int64("base_rpm", acct.BaseRatePerMinute).
		Msg("session finished")

	return &ports.SessionFinishResult{
		RunGold:    runGold,
		Served:     served,
		Missed:     missed,
		PlayedMs:   playedMs,
		MaxCombo:   maxCombo,
		Account:    acct,
		ServerTime: now.UnixMilli(),
	}, nil
}

// DailyMissions lists missions with progress and claim state for a user.
func (s *EconomyServiceImpl) DailyMissions(ctx context.Context, userID string) (*ports.DailyMissionsResult, error) {
	acct, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}

	missions := domain.Missions()
	out := make([]ports.MissionStatus, 0, len(missions))
	for _, m := range missions {
		claimed, err := s.ledger.Contains(ctx, domain.MissionKey(acct.UserID, m.ID))
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mission claim lookup: %w", err))
		}
		out = append(out, ports.MissionStatus{
			Mission:  m,
			Progress: m.Progress(acct.Stats),
			Claimed:  claimed,
		})
	}

	return &ports.DailyMissionsResult{UserID: acct.UserID, Missions: out, Stats: acct.Stats}, nil
}

// ClaimMission grants a completed mission's reward once per user.
// The ledger is consulted before the account lock is taken, so a slow ledger
// never stalls other requests for the same account. Stats only grow, so a
// mission seen complete stays complete once the key is reserved.
func (s *EconomyServiceImpl) ClaimMission(ctx context.Context, req ports.MissionClaimRequest) (*ports.ClaimResult, error) {
	if req.MissionID == "" {
		return nil, apperror.ErrInvalidArgument("missionId required")
	}
	userID := normalizeUserID(req.UserID)
	key := domain.MissionKey(userID, req.MissionID)

	claimed, err := s.ledger.Contains(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mission claim lookup: %w", err))
	}
	if claimed {
		return nil, apperror.ErrAlreadyClaimed("mission")
	}

	mission, ok := domain.LookupMission(req.MissionID)
	if !ok {
		return nil, apperror.ErrInvalidArgument("invalid missionId")
	}
	snapshot, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if !mission.Complete(snapshot.Stats) {
		return nil, apperror.ErrNotComplete()
	}

	reserved, err := s.ledger.Reserve(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve mission claim: %w", err))
	}
	if !reserved {
		return nil, apperror.ErrAlreadyClaimed("mission")
	}

	acct, err := s.accounts.Update(ctx, userID, func(a *domain.Account) error {
		if !mission.Complete(a.Stats) {
			return apperror.ErrNotComplete()
		}
		a.Apply(mission.Reward)
		return nil
	})
	if err != nil {
		return nil, wrapInternal("mission claim", err)
	}

	s.log.Info().Str("uid", acct.UserID).Str("key", key).Msg("mission reward claimed")
	return &ports.ClaimResult{Key: key, Reward: mission.Reward, Account: acct}, nil
}

// ClaimPass grants a battle-pass reward once per (user, tier, reward id).
// The reward amount depends on the tier only. Like purchases, the key is
// reserved before the account lock is taken.
func (s *EconomyServiceImpl) ClaimPass(ctx context.Context, req ports.PassClaimRequest) (*ports.ClaimResult, error) {
	if req.RewardID == "" {
		return nil, apperror.ErrInvalidArgument("rewardId required")
	}
	tier := req.PassTier
	if tier == "" {
		tier = domain.PassTierFree
	}
	userID := normalizeUserID(req.UserID)
	key := domain.PassKey(userID, tier, req.RewardID)
	reward := domain.PassReward(tier)

	reserved, err := s.ledger.Reserve(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve pass claim: %w", err))
	}
	if !reserved {
		return nil, apperror.ErrAlreadyClaimed("reward")
	}

	acct, err := s.accounts.Update(ctx, userID, func(a *domain.Account) error {
		a.Apply(reward)
		return nil
	})
	if err != nil {
		return nil, wrapInternal("pass claim", err)
	}

	s.log.Info().Str("uid", acct.UserID).Str("key", key).Msg("pass reward claimed")
	return &ports.ClaimResult{Key: key, Reward: reward, Account: acct}, nil
}

func normalizeUserID(userID string) string {
	if userID == "" {
		return domain.GuestUserID
	}
	return userID
}

// clampCount bounds a client-supplied number to [0, MaxSafeInteger].
func clampCount(v int64) int64 {
	return min(max(v, 0), domain.MaxSafeInteger)
}

// wrapInternal passes AppErrors through and hides everything else behind a
// generic internal error.
func wrapInternal(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
