package handlers

import (
	"net/http"

	"sevagram/models"
	"sevagram/services/admin"
	"sevagram/services/provider"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	AdminService    admin.AdminService
	ProviderService provider.ProviderService
}

func NewAdminHandler(as admin.AdminService, ps provider.ProviderService) *AdminHandler {
	return &AdminHandler{AdminService: as, ProviderService: ps}
}

// GetAllUsersHandler returns all users (with credentials excluded).
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.AdminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	views, err := h.AdminService.ListBookings(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(views), "bookings": views})
}

func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.AdminService.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func (h *AdminHandler) SetPaymentStatusHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.PaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.AdminService.SetPaymentStatus(c.Request.Context(), actor, c.Param("id"), req.PaymentStatus)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment status updated", "booking": b})
}

func (h *AdminHandler) VerifyProviderHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	req := struct {
		Verified *bool `json:"verified"`
	}{}
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}
	if err := h.ProviderService.Verify(c.Request.Context(), actor, c.Param("userId"), verified); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Provider verification updated", "verified": verified})
}
