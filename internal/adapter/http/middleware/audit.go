package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"ppocha-economy/internal/core/domain"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful grant-bearing requests after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       c.GetString(CtxUserID),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path string) (domain.AuditAction, string) {
	switch path {
	case "/api/economy/offline/claim":
		return domain.AuditActionOfflineClaim, "wallet"
	case "/api/shop/purchase/verify":
		return domain.AuditActionPurchase, "purchase"
	case "/api/game/session/finish":
		return domain.AuditActionSessionFinish, "session"
	case "/api/missions/claim":
		return domain.AuditActionMissionClaim, "mission"
	case "/api/pass/claim":
		return domain.AuditActionPassClaim, "pass"
	case "/api/rankings/submit":
		return domain.AuditActionScoreSubmit, "score"
	}
	return "", ""
}
