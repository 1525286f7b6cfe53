package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "contracthub/database/repository/user"
	"contracthub/models"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const actorContextKey = "actor"

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// RequireAuth validates the Bearer token and resolves the acting principal.
// Token claims carry the subject and role; the user's continued existence is
// confirmed against Redis first and the users collection on a cache miss, so
// tokens for deleted accounts die within the cache TTL.
func RequireAuth(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		userID, roleStr, err := utils.ExtractActorFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c, "invalid token")
			return
		}
		role, ok := models.ParseRole(roleStr)
		if !ok {
			abortUnauthorized(c, "invalid token")
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cachedRole, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedRole == string(role) {
					c.Set(actorContextKey, models.Actor{ID: userID, Role: role})
					c.Next()
					return
				}
				// Role on record changed since the token was issued.
				abortUnauthorized(c, "invalid token")
				return
			}
			if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed, falling back to database",
					zap.Error(err))
			}
		}

		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			abortUnauthorized(c, "account not found")
			return
		}
		if user.Role != role {
			abortUnauthorized(c, "invalid token")
			return
		}

		if cacheEnabled {
			if err := authCache.Set(ctx, cacheKey, string(user.Role), utils.AuthCacheTTL).Err(); err != nil {
				zap.L().Warn("auth cache write failed", zap.Error(err))
			}
		}

		c.Set(actorContextKey, models.Actor{ID: userID, Role: role})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Admins always pass.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		if !actor.IsAdmin() && !allowed[actor.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated actor set by RequireAuth.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	val, exists := c.Get(actorContextKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}
