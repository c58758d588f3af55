package handlers

import (
	"net/http"

	"sevagram/models"
	"sevagram/services/review"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	ReviewService review.ReviewService
}

func NewReviewHandler(rs review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: rs}
}

func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.ReviewService.CreateReview(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Review submitted", "review": r})
}

func (h *ReviewHandler) ProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.ListForProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(reviews), "reviews": reviews})
}
