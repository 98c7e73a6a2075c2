package handler

import (
	"ppocha-economy/internal/adapter/http/dto"
	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/response"

	"github.com/gin-gonic/gin"
)

// PlayerHandler serves wallet state, offline rewards and session results.
type PlayerHandler struct {
	economySvc ports.EconomyService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(economySvc ports.EconomyService) *PlayerHandler {
	return &PlayerHandler{economySvc: economySvc}
}

// State handles GET /api/player/state.
func (h *PlayerHandler) State(c *gin.Context) {
	uid := resolveUID(c, c.Query("uid"))

	res, err := h.economySvc.PlayerState(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PlayerStateResponse{
		UID:          res.Account.UserID,
		Wallet:       res.Account.Wallet,
		BaseRPM:      res.Account.BaseRatePerMinute,
		LastSeenAtMs: res.Account.LastActiveAtMs,
		ServerTime:   res.ServerTime,
	})
}

// ClaimOffline handles POST /api/economy/offline/claim.
func (h *PlayerHandler) ClaimOffline(c *gin.Context) {
	var req dto.OfflineClaimRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	uid := resolveUID(c, req.UID)

	var lastSeen *int64
	if ms := req.LastSeenAtMs.Int64(); ms != 0 {
		lastSeen = &ms
	}

	res, err := h.economySvc.ClaimOffline(c.Request.Context(), ports.OfflineClaimRequest{
		UserID:       uid,
		ClaimType:    domain.ClaimType(req.ClaimType),
		LastSeenAtMs: lastSeen,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	q := res.Quote
	response.OK(c, dto.OfflineClaimResponse{
		UID:               res.Account.UserID,
		OfflineMin:        q.OfflineMinutes,
		Decay:             q.Decay(),
		AppliedMultiplier: q.Multiplier,
		ClaimType:         string(q.ClaimType),
		PaidCashSpent:     q.Cost,
		Rewards:           dto.OfflineRewards{Gold: q.Gold, FreeCash: q.FreeCash},
		Wallet:            res.Account.Wallet,
		BaseRPM:           res.Account.BaseRatePerMinute,
		LastSeenAtMs:      res.Account.LastActiveAtMs,
		RemainingStorage:  0,
		ServerTime:        res.ServerTime,
	})
}

// FinishSession handles POST /api/game/session/finish.
func (h *PlayerHandler) FinishSession(c *gin.Context) {
	var req dto.SessionFinishRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	uid := resolveUID(c, req.UID)

	res, err := h.economySvc.FinishSession(c.Request.Context(), ports.SessionFinishRequest{
		UserID:   uid,
		RunGold:  req.RunGold.Int64(),
		PlayedMs: req.PlayedMs.Int64(),
		Served:   req.Served.Int64(),
		Missed:   req.Missed.Int64(),
		MaxCombo: req.MaxCombo.Int64(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SessionFinishResponse{
		UID: res.Account.UserID,
		Summary: dto.SessionSummary{
			RunGold:  res.RunGold,
			Served:   res.Served,
			Missed:   res.Missed,
			PlayedMs: res.PlayedMs,
			MaxCombo: res.MaxCombo,
		},
		Wallet:       res.Account.Wallet,
		BaseRPM:      res.Account.BaseRatePerMinute,
		LastSeenAtMs: res.Account.LastActiveAtMs,
		Stats:        res.Account.Stats,
		ServerTime:   res.ServerTime,
	})
}
