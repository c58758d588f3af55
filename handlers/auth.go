package handlers

import (
	"net/http"

	"sevagram/middleware"
	"sevagram/models"
	"sevagram/services/user"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(us user.UserService) *AuthHandler {
	return &AuthHandler{UserService: us}
}

func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.UserService.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": resp.Token, "user": resp.User})
}

// MeHandler returns the user loaded by the auth middleware.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	u, ok := middleware.UserFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}
