package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"paygate-onboarding-gateway/internal/common/errors"
	authmodels "paygate-onboarding-gateway/internal/features/auth/models"
)

// HeaderSessionID carries the gateway session id on every draft-scoped call.
const HeaderSessionID = "X-Session-ID"

const (
	ctxKeySessionID = "session_id"
	ctxKeySession   = "session"
)

// SessionLoader resolves a session id to its stored session.
type SessionLoader interface {
	GetSession(ctx context.Context, id string) (*authmodels.Session, error)
}

// SessionRequired rejects requests without a known X-Session-ID and stashes
// the resolved session in the gin context.
func SessionRequired(sessions SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderSessionID)
		if sessionID == "" {
			AbortWithAppError(c, errors.New(errors.ErrCodeUnauthorized, "X-Session-ID header is required"))
			return
		}

		session, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			AbortWithAppError(c, err)
			return
		}

		c.Set(ctxKeySessionID, session.ID)
		c.Set(ctxKeySession, session)
		c.Next()
	}
}

// GetSessionID returns the session id stashed by SessionRequired.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxKeySessionID)
}
