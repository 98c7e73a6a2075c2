package handler

import (
	"ppocha-economy/internal/adapter/http/dto"
	"ppocha-economy/internal/adapter/http/middleware"
	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/response"

	"github.com/gin-gonic/gin"
)

// RankingHandler serves leaderboards and score submission.
type RankingHandler struct {
	leaderboardSvc ports.LeaderboardService
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(leaderboardSvc ports.LeaderboardService) *RankingHandler {
	return &RankingHandler{leaderboardSvc: leaderboardSvc}
}

// Rankings handles GET /api/rankings. period is echoed only; the snapshot
// has a single period.
func (h *RankingHandler) Rankings(c *gin.Context) {
	var q dto.RankingQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	scope := orDefault(q.Scope, domain.ScopeCountry)
	rankingType := orDefault(q.Type, domain.DefaultRankingType)

	response.OK(c, dto.RankingsResponse{
		Scope:  scope,
		Period: orDefault(q.Period, "weekly"),
		Type:   rankingType,
		Rows:   h.leaderboardSvc.Rankings(c.Request.Context(), scope, rankingType),
	})
}

// SubmitScore handles POST /api/rankings/submit.
func (h *RankingHandler) SubmitScore(c *gin.Context) {
	var req dto.ScoreSubmitRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	uid := resolveUID(c, req.UID)

	verdict, err := h.leaderboardSvc.SubmitScore(c.Request.Context(), ports.ScoreSubmitRequest{
		UserID:      uid,
		ClientScore: req.ClientScore.Float64(),
		RawLogHash:  req.RawLogHash,
		SessionID:   req.SessionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, req.SessionID)

	response.OK(c, dto.ScoreSubmitResponse{
		UID:           uid,
		SessionID:     req.SessionID,
		VerifiedScore: verdict.VerifiedScore,
		Status:        string(verdict.Status),
	})
}
