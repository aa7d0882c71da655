package middleware

import (
	"strings"

	"guru_learn_backend/internal/config"
	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/util"
	"guru_learn_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserResolver turns a token's user id claim into a live user record. A token
// whose id no longer resolves is rejected: the token references an identity,
// it does not cache one.
type UserResolver interface {
	FindByID(id uint) (*model.User, error)
}

// AuthMiddleware validates the bearer token and attaches the resolved user
// (credential field cleared) to the request context. Requests without a valid
// token never reach the handler.
func AuthMiddleware(cfg *config.Config, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("token rejected", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if claims.UserID == 0 {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil || user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		user.Password = ""

		c.Set("user", user)
		c.Next()
	}
}

// RoleMiddleware gates a route group to the given roles. It runs after
// AuthMiddleware and answers 403, not 401: the caller is known, just not
// allowed.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.CurrentUser(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

// ActivityMiddleware records last-login activity without blocking the request.
type UserActivityRepo interface {
	TouchLastLogin(userID uint) error
}

func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := util.CurrentUser(c); user != nil {
			go repo.TouchLastLogin(user.ID)
		}
		c.Next()
	}
}
