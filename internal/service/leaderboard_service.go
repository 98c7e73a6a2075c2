package service

import (
	"context"

	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"

	"github.com/rs/zerolog"
)

// LeaderboardServiceImpl implements ports.LeaderboardService.
// Rankings are static reference data; submissions are verified but not stored.
type LeaderboardServiceImpl struct {
	snapshot domain.RankingSnapshot
	rand     ports.RandomSource
	log      zerolog.Logger
}

// NewLeaderboardService creates a new LeaderboardServiceImpl.
func NewLeaderboardService(snapshot domain.RankingSnapshot, rand ports.RandomSource, log zerolog.Logger) *LeaderboardServiceImpl {
	return &LeaderboardServiceImpl{snapshot: snapshot, rand: rand, log: log}
}

// Rankings returns rows for (scope, type) with the snapshot's fallbacks applied.
func (s *LeaderboardServiceImpl) Rankings(_ context.Context, scope, rankingType string) []domain.RankingRow {
	if scope == "" {
		scope = domain.ScopeCountry
	}
	if rankingType == "" {
		rankingType = domain.DefaultRankingType
	}
	return s.snapshot.Rows(scope, rankingType)
}

// SubmitScore runs the anti-abuse heuristic. Accepted scores receive a small
// random bonus.
func (s *LeaderboardServiceImpl) SubmitScore(_ context.Context, req ports.ScoreSubmitRequest) (*domain.ScoreVerdict, error) {
	bonus := int64(s.rand.Intn(domain.MaxAcceptBonus))
	verdict := domain.VerifyScore(req.ClientScore, req.RawLogHash, bonus)

	evt := s.log.Info()
	if verdict.Status == domain.ScoreFlagged {
		evt = s.log.Warn()
	}
	evt.Str("uid", req.UserID).
		Str("session_id", req.SessionID).
		Float64("client_score", req.ClientScore).
		Int64("verified_score", verdict.VerifiedScore).
		Str("status", string(verdict.Status)).
		Msg("score submitted")

	return &verdict, nil
}
