package handlers

import (
	"net/http"

	"sevagram/middleware"
	"sevagram/models"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request scoped logger or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentActor writes a 401 and returns false when the request is unauthenticated.
func currentActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized", "")
		return models.Actor{}, false
	}
	return actor, true
}

// bindJSON decodes the body and enforces the request type's binding tags.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ValidationMessage(err), err.Error())
		return false
	}
	return true
}
