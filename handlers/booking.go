package handlers

import (
	"net/http"

	"sevagram/models"
	"sevagram/services/booking"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bs}
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.BookingService.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Booking created successfully", "booking": b})
}

func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	views, err := h.BookingService.ListForCustomer(c.Request.Context(), actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(views), "bookings": views})
}

func (h *BookingHandler) ProviderBookingsHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	views, err := h.BookingService.ListForProvider(c.Request.Context(), actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(views), "bookings": views})
}

func (h *BookingHandler) ProviderSummaryHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	summary, err := h.BookingService.ProviderSummary(c.Request.Context(), actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}

func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.BookingService.UpdateStatus(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Booking status changed", zap.String("bookingId", b.ID), zap.String("status", string(b.Status)))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking status updated successfully", "booking": b})
}

func (h *BookingHandler) AssignProviderHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.AssignProviderRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.BookingService.AssignProvider(c.Request.Context(), actor, c.Param("id"), req.ProviderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Provider assigned successfully", "booking": b})
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.CancelBookingRequest
	// The reason is optional, so an empty body is fine.
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	b, err := h.BookingService.CancelBooking(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled", "booking": b})
}
