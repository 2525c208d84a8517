package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "medicalkz/database/repository/user"
	"medicalkz/models"
	"medicalkz/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// Redis auth cache (falling back to the user record on a miss) and sets the
// authenticated caller identity in the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			// Refresh TTL and continue.
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			setCaller(c, userID, role)
			return
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: verify against the token hash stored on the user record.
		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		setCaller(c, userID, string(usr.Role))
	}
}

func setCaller(c *gin.Context, userID, role string) {
	c.Set("userID", userID)
	c.Set("role", role)
	c.Next()
}

// CallerFromContext rebuilds the authenticated identity set by JWTAuthMiddleware.
func CallerFromContext(c *gin.Context) (models.Caller, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return models.Caller{}, false
	}
	role, ok := c.Get("role")
	if !ok {
		return models.Caller{}, false
	}
	idStr, ok1 := id.(string)
	roleStr, ok2 := role.(string)
	if !ok1 || !ok2 {
		return models.Caller{}, false
	}
	return models.Caller{ID: idStr, Role: models.Role(roleStr)}, true
}
