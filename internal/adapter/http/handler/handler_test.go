package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ppocha-economy/internal/adapter/http/middleware"
	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/internal/core/ports/mocks"
	"ppocha-economy/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func sampleAccount(uid string) domain.Account {
	return domain.Account{
		UserID:            uid,
		Wallet:            domain.Wallet{Gold: 1000, FreeCash: 50, PaidCash: 20},
		BaseRatePerMinute: 185,
		LastActiveAtMs:    1_700_000_000_000,
	}
}

// ---- Player ----

func TestPlayerHandler_State_GuestDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().PlayerState(gomock.Any(), domain.GuestUserID).Return(&ports.PlayerStateResult{
		Account:    sampleAccount(domain.GuestUserID),
		ServerTime: 42,
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/player/state", "")
	NewPlayerHandler(svc).State(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decode(t, w, &body)
	assert.Equal(t, "guest", body["uid"])
	assert.EqualValues(t, 185, body["baseRPM"])
	assert.EqualValues(t, 42, body["serverTime"])
	assert.Equal(t, "guest", c.GetString(middleware.CtxUserID))
}

func TestPlayerHandler_ClaimOffline_ZeroLastSeenIsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimOffline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.OfflineClaimRequest) (*ports.OfflineClaimResult, error) {
			assert.Equal(t, "u1", req.UserID)
			assert.Equal(t, domain.ClaimX2, req.ClaimType)
			assert.Nil(t, req.LastSeenAtMs)
			return &ports.OfflineClaimResult{
				Quote:   domain.QuoteOffline(185, 260, domain.ClaimX2),
				Account: sampleAccount("u1"),
			}, nil
		})

	c, w := newTestContext(http.MethodPost, "/api/economy/offline/claim",
		`{"uid":"u1","claimType":"x2","lastSeenAtMs":0}`)
	NewPlayerHandler(svc).ClaimOffline(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decode(t, w, &body)
	assert.EqualValues(t, 260, body["offlineMin"])
	assert.EqualValues(t, 0.6, body["decay"])
	assert.EqualValues(t, 2, body["appliedMultiplier"])
	assert.EqualValues(t, 29, body["paidCashSpent"])
	assert.Equal(t, "x2", body["claimType"])
	assert.EqualValues(t, 0, body["remainingStorage"])
	rewards := body["rewards"].(map[string]any)
	assert.EqualValues(t, 57720, rewards["gold"])
	assert.EqualValues(t, 8, rewards["freeCash"])
}

func TestPlayerHandler_ClaimOffline_StringLastSeen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimOffline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.OfflineClaimRequest) (*ports.OfflineClaimResult, error) {
			require.NotNil(t, req.LastSeenAtMs)
			assert.EqualValues(t, 1_700_000_000_000, *req.LastSeenAtMs)
			assert.Equal(t, domain.GuestUserID, req.UserID)
			return &ports.OfflineClaimResult{Account: sampleAccount(req.UserID)}, nil
		})

	c, w := newTestContext(http.MethodPost, "/api/economy/offline/claim", `{"lastSeenAtMs":"1700000000000"}`)
	NewPlayerHandler(svc).ClaimOffline(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlayerHandler_ClaimOffline_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimOffline(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())

	c, w := newTestContext(http.MethodPost, "/api/economy/offline/claim", `{"uid":"u1","claimType":"x2"}`)
	NewPlayerHandler(svc).ClaimOffline(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, apperror.CodeInsufficientFunds, env.ErrorCode)
}

func TestPlayerHandler_FinishSession_CoercesNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().FinishSession(gomock.Any(), ports.SessionFinishRequest{
		UserID:   "u1",
		RunGold:  1200,
		PlayedMs: 0,
		Served:   3,
		Missed:   0,
		MaxCombo: 7,
	}).Return(&ports.SessionFinishResult{
		RunGold:  1200,
		Served:   3,
		PlayedMs: 60000,
		MaxCombo: 7,
		Account:  sampleAccount("u1"),
	}, nil)

	c, w := newTestContext(http.MethodPost, "/api/game/session/finish",
		`{"uid":"u1","runGold":"1200","playedMs":"abc","served":3.9,"missed":null,"maxCombo":"7"}`)
	NewPlayerHandler(svc).FinishSession(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Summary map[string]int64 `json:"summary"`
	}
	decode(t, w, &body)
	assert.Equal(t, int64(60000), body.Summary["playedMs"])
	assert.Equal(t, int64(1200), body.Summary["runGold"])
}

func TestPlayerHandler_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: the service must not be reached
	svc := mocks.NewMockEconomyService(ctrl)
	h := NewPlayerHandler(svc)

	for _, tc := range []struct {
		name string
		call func(*gin.Context)
	}{
		{"offline", h.ClaimOffline},
		{"session", h.FinishSession},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/x", `{"uid":`)
			tc.call(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apperror.CodeInvalidArgument, decode(t, w, nil).ErrorCode)
		})
	}
}

func TestPlayerHandler_EmptyBodyUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().FinishSession(gomock.Any(), ports.SessionFinishRequest{UserID: domain.GuestUserID}).
		Return(&ports.SessionFinishResult{PlayedMs: 60000, Account: sampleAccount(domain.GuestUserID)}, nil)

	c, w := newTestContext(http.MethodPost, "/api/game/session/finish", "")
	NewPlayerHandler(svc).FinishSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// ---- Shop ----

func TestShopHandler_Catalog_MetaDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().Catalog().Return(domain.NewCatalog(map[string][]domain.SKU{
		"gold": {{ID: "gold_s", Amount: 5000}},
	}))

	c, w := newTestContext(http.MethodGet, "/api/shop/catalog?city=Busan", "")
	NewShopHandler(svc).Catalog(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Meta map[string]string       `json:"meta"`
		Tabs map[string][]domain.SKU `json:"tabs"`
	}
	decode(t, w, &body)
	assert.Equal(t, map[string]string{
		"uid": "guest", "country": "KR", "city": "Busan", "segment": "default",
	}, body.Meta)
	require.Len(t, body.Tabs["gold"], 1)
	assert.Equal(t, "gold_s", body.Tabs["gold"][0].ID)
}

func TestShopHandler_Catalog_InvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newTestContext(http.MethodGet, "/api/shop/catalog?country="+strings.Repeat("K", 9), "")
	NewShopHandler(mocks.NewMockEconomyService(ctrl)).Catalog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid country", decode(t, w, nil).Message)
}

func TestShopHandler_VerifyPurchase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	acct := sampleAccount("u1")
	svc.EXPECT().VerifyPurchase(gomock.Any(), ports.PurchaseRequest{UserID: "u1", SKUID: "starter_pack", TxID: "tx-1"}).
		Return(&ports.PurchaseResult{
			SKU:     domain.SKU{ID: "starter_pack"},
			TxID:    "tx-1",
			Grant:   domain.Grant{FreeCash: 500},
			Account: acct,
		}, nil)

	c, w := newTestContext(http.MethodPost, "/api/shop/purchase/verify",
		`{"uid":"u1","skuId":"starter_pack","txId":"tx-1"}`)
	NewShopHandler(svc).VerifyPurchase(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		TxID         string         `json:"txId"`
		GrantedItems []string       `json:"grantedItems"`
		WalletDelta  map[string]any `json:"walletDelta"`
		Wallet       domain.Wallet  `json:"wallet"`
	}
	decode(t, w, &body)
	assert.Equal(t, "tx-1", body.TxID)
	assert.Equal(t, []string{"starter_pack"}, body.GrantedItems)
	assert.EqualValues(t, 500, body.WalletDelta["freeCash"])
	assert.Equal(t, acct.Wallet, body.Wallet)
	assert.Equal(t, "tx-1", c.GetString(middleware.CtxResourceID))
}

func TestShopHandler_VerifyPurchase_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode string
		wantMsg  string
	}{
		{"duplicate tx", `{"skuId":"gold_s","txId":"tx-1"}`, apperror.ErrDuplicateTransaction(), apperror.CodeDuplicateTransaction, "duplicate txId"},
		{"unknown sku", `{"skuId":"nope"}`, apperror.ErrInvalidArgument("invalid skuId"), apperror.CodeInvalidArgument, "invalid skuId"},
		{"unsafe tx id", `{"skuId":"gold_s","txId":"tx 1;drop"}`, nil, apperror.CodeInvalidArgument, "invalid txId"},
		{"unsafe sku id", `{"skuId":"<b>gold</b>"}`, nil, apperror.CodeInvalidArgument, "invalid skuId"},
		{"oversized uid", `{"uid":"` + strings.Repeat("u", 129) + `","skuId":"gold_s"}`, nil, apperror.CodeInvalidArgument, "invalid uid"},
		{"malformed body", `{"skuId":`, nil, apperror.CodeInvalidArgument, "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockEconomyService(ctrl)
			if tt.svcErr != nil {
				svc.EXPECT().VerifyPurchase(gomock.Any(), gomock.Any()).Return(nil, tt.svcErr)
			}

			c, w := newTestContext(http.MethodPost, "/api/shop/purchase/verify", tt.body)
			NewShopHandler(svc).VerifyPurchase(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decode(t, w, nil)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.NotContains(t, env.Message, "Key:")
			assert.Empty(t, c.GetString(middleware.CtxResourceID))
		})
	}
}

func TestShopHandler_VerifyPurchase_InternalErrorIsOpaque(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().VerifyPurchase(gomock.Any(), gomock.Any()).
		Return(nil, apperror.InternalError(errors.New("redis: connection refused")))

	c, w := newTestContext(http.MethodPost, "/api/shop/purchase/verify", `{"skuId":"gold_s"}`)
	NewShopHandler(svc).VerifyPurchase(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, apperror.CodeInternal, env.ErrorCode)
	assert.NotContains(t, env.Message, "redis")
}

// ---- Rewards ----

func TestRewardHandler_DailyMissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m1, _ := domain.LookupMission("m1")
	m2, _ := domain.LookupMission("m2")

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().DailyMissions(gomock.Any(), "u1").Return(&ports.DailyMissionsResult{
		UserID: "u1",
		Missions: []ports.MissionStatus{
			{Mission: m1, Progress: 80, Claimed: true},
			{Mission: m2, Progress: 5},
		},
		Stats: domain.Stats{ServedTotal: 120, BestCombo: 5},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/missions/daily?uid=u1", "")
	NewRewardHandler(svc).DailyMissions(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Missions []map[string]any `json:"missions"`
		Stats    domain.Stats     `json:"stats"`
	}
	decode(t, w, &body)
	require.Len(t, body.Missions, 2)
	assert.Equal(t, "m1", body.Missions[0]["id"])
	assert.Equal(t, true, body.Missions[0]["claimed"])
	assert.Equal(t, map[string]any{"gold": float64(1200)}, body.Missions[0]["reward"])
	assert.Equal(t, map[string]any{"freeCash": float64(4)}, body.Missions[1]["reward"])
	assert.EqualValues(t, 120, body.Stats.ServedTotal)
}

func TestRewardHandler_ClaimMission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimMission(gomock.Any(), ports.MissionClaimRequest{UserID: "u1", MissionID: "m1"}).
		Return(&ports.ClaimResult{
			Key:     domain.MissionKey("u1", "m1"),
			Reward:  domain.Grant{Gold: 1200},
			Account: sampleAccount("u1"),
		}, nil)

	c, w := newTestContext(http.MethodPost, "/api/missions/claim", `{"uid":"u1","missionId":"m1"}`)
	NewRewardHandler(svc).ClaimMission(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decode(t, w, &body)
	assert.Equal(t, "m1", body["missionId"])
	assert.Equal(t, map[string]any{"gold": float64(1200)}, body["reward"])
	assert.Equal(t, domain.MissionKey("u1", "m1"), c.GetString(middleware.CtxResourceID))
}

func TestRewardHandler_ClaimMission_NotComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimMission(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotComplete())

	c, w := newTestContext(http.MethodPost, "/api/missions/claim", `{"missionId":"m3"}`)
	NewRewardHandler(svc).ClaimMission(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeNotComplete, decode(t, w, nil).ErrorCode)
}

func TestRewardHandler_ClaimPass_DefaultTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimPass(gomock.Any(), ports.PassClaimRequest{UserID: "guest", PassTier: "free", RewardID: "lv1"}).
		Return(&ports.ClaimResult{
			Key:     domain.PassKey("guest", "free", "lv1"),
			Reward:  domain.PassReward("free"),
			Account: sampleAccount("guest"),
		}, nil)

	c, w := newTestContext(http.MethodPost, "/api/pass/claim", `{"rewardId":"lv1"}`)
	NewRewardHandler(svc).ClaimPass(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decode(t, w, &body)
	assert.Equal(t, "free", body["passTier"])
	assert.Equal(t, map[string]any{"gold": float64(1800), "freeCash": float64(1)}, body["reward"])
}

func TestRewardHandler_ClaimPass_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockEconomyService(ctrl)
	svc.EXPECT().ClaimPass(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrAlreadyClaimed("reward"))

	c, w := newTestContext(http.MethodPost, "/api/pass/claim", `{"passTier":"premium","rewardId":"lv1"}`)
	NewRewardHandler(svc).ClaimPass(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, apperror.CodeAlreadyClaimed, env.ErrorCode)
	assert.Equal(t, "reward already claimed", env.Message)
}

// ---- Rankings ----

func TestRankingHandler_Rankings_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []domain.RankingRow{{Rank: 1, Name: "HwaniMaster", Score: 128400, Region: "KR"}}
	svc := mocks.NewMockLeaderboardService(ctrl)
	svc.EXPECT().Rankings(gomock.Any(), "country", "skill").Return(rows)

	c, w := newTestContext(http.MethodGet, "/api/rankings", "")
	NewRankingHandler(svc).Rankings(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Scope  string              `json:"scope"`
		Period string              `json:"period"`
		Type   string              `json:"type"`
		Rows   []domain.RankingRow `json:"rows"`
	}
	decode(t, w, &body)
	assert.Equal(t, "country", body.Scope)
	assert.Equal(t, "weekly", body.Period)
	assert.Equal(t, "skill", body.Type)
	assert.Equal(t, rows, body.Rows)
}

func TestRankingHandler_Rankings_EchoesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLeaderboardService(ctrl)
	svc.EXPECT().Rankings(gomock.Any(), "city", "bogus").Return([]domain.RankingRow{})

	c, w := newTestContext(http.MethodGet, "/api/rankings?scope=city&period=daily&type=bogus", "")
	NewRankingHandler(svc).Rankings(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decode(t, w, &body)
	assert.Equal(t, "daily", body["period"])
	assert.Equal(t, "bogus", body["type"])
	assert.Equal(t, []any{}, body["rows"])
}

func TestRankingHandler_SubmitScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLeaderboardService(ctrl)
	svc.EXPECT().SubmitScore(gomock.Any(), ports.ScoreSubmitRequest{
		UserID:      "u1",
		ClientScore: 1000.5,
		RawLogHash:  "abcdef12",
		SessionID:   "s-9",
	}).Return(&domain.ScoreVerdict{ClientScore: 1000.5, VerifiedScore: 1007, Status: domain.ScoreAccepted}, nil)

	c, w := newTestContext(http.MethodPost, "/api/rankings/submit",
		`{"uid":"u1","clientScore":"1000.5","rawLogHash":"abcdef12","sessionId":"s-9"}`)
	NewRankingHandler(svc).SubmitScore(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decode(t, w, &body)
	assert.EqualValues(t, 1007, body["verifiedScore"])
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, "s-9", body["sessionId"])
	assert.Equal(t, "s-9", c.GetString(middleware.CtxResourceID))
}

// ---- Health ----

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(context.Context) error { return f.err }
func (f fakeChecker) Name() string { return f.name }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []ports.HealthChecker
		wantCode   int
		wantStatus string
	}{
		{"no backends", nil, http.StatusOK, "healthy"},
		{"all up", []ports.HealthChecker{fakeChecker{name: "redis"}}, http.StatusOK, "healthy"},
		{"one down", []ports.HealthChecker{
			fakeChecker{name: "redis"},
			fakeChecker{name: "postgresql", err: errors.New("dial tcp: refused")},
		}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/health", "")
			HealthCheck(tt.checkers...)(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var body struct {
				Status       string                       `json:"status"`
				Service      string                       `json:"service"`
				Now          string                       `json:"now"`
				Dependencies map[string]map[string]string `json:"dependencies"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, "ppocha-economy", body.Service)
			assert.NotEmpty(t, body.Now)
			assert.Len(t, body.Dependencies, len(tt.checkers))
		})
	}
}
