package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"sevagram/metrics"
	"sevagram/models"
	"sevagram/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var scheduledDateLayouts = []string{time.RFC3339, "2006-01-02"}

// CreateBooking records a new Pending booking for the calling customer.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest) (*models.Booking, error) {
	if actor.ID == "" {
		return nil, utils.NewUnauthorizedError("Not authorized")
	}
	scheduled, err := validateCreate(&req)
	if err != nil {
		return nil, err
	}

	service, err := s.Catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewNotFoundError("Service not found")
		}
		utils.GetLogger().Error("CreateBooking: catalog lookup failed", zap.String("serviceId", req.ServiceID), zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	if !service.IsActive {
		return nil, utils.NewNotFoundError("Service not found")
	}

	category := string(service.Category)
	if supplied := strings.TrimSpace(req.ServiceCategory); supplied != "" && supplied != category {
		return nil, utils.NewValidationError("Service category does not match the selected service")
	}
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentCash
	}

	now := s.now()
	booking := &models.Booking{
		ID:                 uuid.New().String(),
		CustomerID:         actor.ID,
		ProviderID:         models.NormalizeProviderID(req.ProviderID),
		ServiceID:          service.ID,
		ServiceCategory:    category,
		ScheduledDate:      scheduled,
		ScheduledTime:      req.ScheduledTime,
		Address:            req.Address,
		ProblemDescription: req.ProblemDescription,
		Status:             models.StatusPending,
		EstimatedPrice:     service.BasePrice,
		PaymentMethod:      method,
		PaymentStatus:      models.PaymentPending,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, storeError("create", err)
	}
	metrics.IncBookingCreated(booking.ServiceCategory)
	utils.GetLogger().Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("customerId", booking.CustomerID),
		zap.String("serviceId", booking.ServiceID))
	return booking, nil
}

func validateCreate(req *models.CreateBookingRequest) (time.Time, error) {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.ScheduledTime = strings.TrimSpace(req.ScheduledTime)
	req.ProblemDescription = strings.TrimSpace(req.ProblemDescription)
	if err := utils.ValidateRequest(req); err != nil {
		return time.Time{}, err
	}
	return parseScheduledDate(req.ScheduledDate)
}

func parseScheduledDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, utils.NewValidationError("Scheduled date is required")
	}
	for _, layout := range scheduledDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, utils.NewValidationError("Invalid scheduled date")
}
