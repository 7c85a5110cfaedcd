package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// OpsTokenMiddleware guards administrative endpoints (master data mutations
// and backfill triggers) with a static operator token verified against a
// bcrypt hash from config.
// The token travels in the X-Ops-Token header.
func OpsTokenMiddleware(opsTokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if opsTokenHash == "" {
			logger.Error("Ops token hash not configured; refusing admin access")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrative access not configured"})
			return
		}

		token := c.GetHeader("X-Ops-Token")
		if token == "" {
			logger.Warn("Ops token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Ops-Token header required"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(opsTokenHash), []byte(token)); err != nil {
			logger.Warn("Ops token mismatch")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid ops token"})
			return
		}

		c.Next()
	}
}
