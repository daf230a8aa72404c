package middleware

import (
	"net/http"
	"strings"
	"time"

	"pawcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authCachePrefix = "auth:provider:"
	authCacheTTL    = 30 * time.Minute
)

// JWTAuthProviderMiddleware authenticates providers via a Bearer token.
// Validated tokens are cached in Redis by their hash so repeat requests
// skip signature verification.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization header missing or malformed", "")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		cacheClient := utils.GetAuthCacheClient()
		cacheKey := authCachePrefix + utils.HashToken(tokenStr)

		if providerID, err := cacheClient.Get(c.Request.Context(), cacheKey).Result(); err == nil && providerID != "" {
			cacheClient.Expire(c.Request.Context(), cacheKey, authCacheTTL)
			c.Set("providerID", providerID)
			c.Next()
			return
		}

		if _, err := utils.ValidateToken(tokenStr); err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token", "")
			c.Abort()
			return
		}

		providerID, err := utils.ExtractIDFromToken(tokenStr)
		if err != nil || providerID == "" {
			logger.Warn("Token missing subject claim", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token claims", "")
			c.Abort()
			return
		}

		if err := cacheClient.Set(c.Request.Context(), cacheKey, providerID, authCacheTTL).Err(); err != nil {
			logger.Warn("Failed to cache auth token", zap.Error(err))
		}

		c.Set("providerID", providerID)
		c.Next()
	}
}
