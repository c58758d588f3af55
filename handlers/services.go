package handlers

import (
	"net/http"

	"sevagram/models"
	"sevagram/services/catalog"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

func NewCatalogHandler(cs catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: cs}
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListActive(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(services), "services": services})
}

func (h *CatalogHandler) ServicesByCategoryHandler(c *gin.Context) {
	category := models.ServiceCategory(c.Param("category"))
	services, err := h.CatalogService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(services), "services": services})
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.CatalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	service, err := h.CatalogService.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Service created successfully", "service": service})
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.CatalogService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted successfully"})
}
