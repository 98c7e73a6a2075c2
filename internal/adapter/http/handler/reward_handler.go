package handler

import (
	"ppocha-economy/internal/adapter/http/dto"
	"ppocha-economy/internal/adapter/http/middleware"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/response"

	"github.com/gin-gonic/gin"
)

// RewardHandler serves daily missions and battle-pass claims.
type RewardHandler struct {
	economySvc ports.EconomyService
}

// NewRewardHandler creates a new RewardHandler.
func NewRewardHandler(economySvc ports.EconomyService) *RewardHandler {
	return &RewardHandler{economySvc: economySvc}
}

// DailyMissions handles GET /api/missions/daily.
func (h *RewardHandler) DailyMissions(c *gin.Context) {
	uid := resolveUID(c, c.Query("uid"))

	res, err := h.economySvc.DailyMissions(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err)
		return
	}

	missions := make([]dto.MissionView, 0, len(res.Missions))
	for _, m := range res.Missions {
		missions = append(missions, dto.MissionView{
			ID:       m.Mission.ID,
			Title:    m.Mission.Title,
			Progress: m.Progress,
			Goal:     m.Mission.Goal,
			Reward:   dto.NewReward(m.Mission.Reward),
			Claimed:  m.Claimed,
		})
	}

	response.OK(c, dto.DailyMissionsResponse{UID: res.UserID, Missions: missions, Stats: res.Stats})
}

// ClaimMission handles POST /api/missions/claim.
func (h *RewardHandler) ClaimMission(c *gin.Context) {
	var req dto.MissionClaimRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	uid := resolveUID(c, req.UID)

	res, err := h.economySvc.ClaimMission(c.Request.Context(), ports.MissionClaimRequest{
		UserID:    uid,
		MissionID: req.MissionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, res.Key)

	response.OK(c, dto.MissionClaimResponse{
		UID:       res.Account.UserID,
		MissionID: req.MissionID,
		Reward:    dto.NewReward(res.Reward),
		Wallet:    res.Account.Wallet,
	})
}

// ClaimPass handles POST /api/pass/claim.
func (h *RewardHandler) ClaimPass(c *gin.Context) {
	var req dto.PassClaimRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	uid := resolveUID(c, req.UID)
	tier := orDefault(req.PassTier, "free")

	res, err := h.economySvc.ClaimPass(c.Request.Context(), ports.PassClaimRequest{
		UserID:   uid,
		PassTier: tier,
		RewardID: req.RewardID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, res.Key)

	response.OK(c, dto.PassClaimResponse{
		UID:      res.Account.UserID,
		PassTier: tier,
		RewardID: req.RewardID,
		Reward:   dto.NewReward(res.Reward),
		Wallet:   res.Account.Wallet,
	})
}
