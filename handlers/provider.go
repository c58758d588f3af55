package handlers

import (
	"net/http"

	"sevagram/models"
	"sevagram/services/provider"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	ProviderService provider.ProviderService
}

func NewProviderHandler(ps provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{ProviderService: ps}
}

// ListProvidersHandler accepts an optional ?category= filter.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	profiles, err := h.ProviderService.ListProfiles(c.Request.Context(), models.ServiceCategory(c.Query("category")))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(profiles), "providers": profiles})
}

func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	profile, err := h.ProviderService.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "provider": profile})
}

func (h *ProviderHandler) UpsertOwnProfileHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.ProviderProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.ProviderService.UpsertOwnProfile(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile saved", "provider": profile})
}
