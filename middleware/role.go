package middleware

import (
	"fmt"
	"net/http"

	"sevagram/models"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects callers whose role is not listed. It must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized", "")
			return
		}
		if !actor.Is(roles...) {
			utils.JSONError(c, http.StatusForbidden, fmt.Sprintf("User role %s is not authorized to access this route", actor.Role), "")
			return
		}
		c.Next()
	}
}
