package middleware

import (
	"context"
	"net/http"
	"strings"

	"sevagram/models"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	actorKey = "actor"
	userKey  = "user"
)

// UserLookup loads the principal named by a token.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// JWTAuthMiddleware validates the bearer token and loads the user it names. The role used for
// authorization is read from the stored user, not from the token.
func JWTAuthMiddleware(tokens *utils.TokenIssuer, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, no token", "")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, token failed", err.Error())
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil || user == nil {
			details := ""
			if err != nil {
				details = err.Error()
			}
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, user not found", details)
			return
		}
		if !user.IsActive {
			utils.JSONError(c, http.StatusUnauthorized, "Account is deactivated", "")
			return
		}

		c.Set(userKey, user)
		c.Set(actorKey, models.Actor{ID: user.ID, Role: user.Role})
		if l, ok := c.Get(loggerKey); ok {
			if logger, ok := l.(*zap.Logger); ok {
				c.Set(loggerKey, logger.With(zap.String("userId", user.ID)))
			}
		}
		c.Next()
	}
}

// ActorFrom returns the principal set by JWTAuthMiddleware.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

// UserFrom returns the user record loaded by JWTAuthMiddleware.
func UserFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
