package service

import (
	"context"
	"testing"

	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.RankingSnapshot {
	return domain.RankingSnapshot{
		"skill": {
			"country": {{Rank: 1, Name: "HwaniMaster", Score: 190220, Region: "KR"}},
			"city":    {{Rank: 1, Name: "SeoulStar", Score: 91000, Region: "Seoul"}},
		},
		"wealth": {
			"country": {{Rank: 1, Name: "GoldBaron", Score: 9900000, Region: "KR"}},
		},
	}
}

func TestLeaderboardService_Rankings(t *testing.T) {
	svc := NewLeaderboardService(testSnapshot(), fakeRandom{}, newTestLogger())
	ctx := context.Background()

	tests := []struct {
		name      string
		scope     string
		rankType  string
		wantFirst string
	}{
		{name: "defaults", wantFirst: "HwaniMaster"},
		{name: "city from snapshot", scope: "city", rankType: "skill", wantFirst: "SeoulStar"},
		{name: "other type", scope: "country", rankType: "wealth", wantFirst: "GoldBaron"},
		{name: "unknown type reads skill", scope: "country", rankType: "style", wantFirst: "HwaniMaster"},
		{name: "placeholder neighborhood", scope: "neighborhood", rankType: "skill", wantFirst: "HwaniMaster"},
		{name: "unknown scope is country", scope: "galaxy", rankType: "wealth", wantFirst: "GoldBaron"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := svc.Rankings(ctx, tt.scope, tt.rankType)
			require.NotEmpty(t, rows)
			assert.Equal(t, tt.wantFirst, rows[0].Name)
		})
	}
}

func TestLeaderboardService_SubmitScore(t *testing.T) {
	svc := NewLeaderboardService(testSnapshot(), fakeRandom{n: 7}, newTestLogger())

	tests := []struct {
		name       string
		score      float64
		hash       string
		wantStatus domain.ScoreStatus
		wantScore  int64
	}{
		{name: "plausible", score: 1000, hash: "abcdef", wantStatus: domain.ScoreAccepted, wantScore: 1007},
		{name: "fractional accepted floors first", score: 1000.9, hash: "abcdef12", wantStatus: domain.ScoreAccepted, wantScore: 1007},
		{name: "short hash", score: 1000, hash: "abc", wantStatus: domain.ScoreFlagged, wantScore: 350},
		{name: "missing hash", score: 500, hash: "", wantStatus: domain.ScoreFlagged, wantScore: 175},
		{name: "too high", score: 1000000, hash: "abcdef", wantStatus: domain.ScoreFlagged, wantScore: 350000},
		{name: "max plausible", score: 999999, hash: "abcdef", wantStatus: domain.ScoreAccepted, wantScore: 1000006},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := svc.SubmitScore(context.Background(), ports.ScoreSubmitRequest{
				UserID: "u1", ClientScore: tt.score, RawLogHash: tt.hash, SessionID: "s1",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, v.Status)
			assert.Equal(t, tt.wantScore, v.VerifiedScore)
			assert.Equal(t, tt.score, v.ClientScore)
		})
	}
}

func TestSystemRandom(t *testing.T) {
	r := SystemRandom{}
	for i := 0; i < 100; i++ {
		n := r.Intn(domain.MaxAcceptBonus)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, domain.MaxAcceptBonus)
	}
	assert.Zero(t, r.Intn(0))
	assert.Len(t, r.Token(), 8)
	assert.NotEqual(t, r.Token(), r.Token())
}
