package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sevagram/metrics"
	"sevagram/models"
	"sevagram/utils"

	"go.uber.org/zap"
)

// UpdateStatus moves a booking assigned to the calling provider to req.Status.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, actor models.Actor, bookingID string, req models.UpdateStatusRequest) (*models.Booking, error) {
	if !actor.Is(models.RoleProvider) {
		return nil, utils.NewForbiddenError("Only providers can update booking status")
	}
	if err := utils.ValidateRequest(&req); err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, storeError("status", err)
	}
	if current.ProviderID == nil || *current.ProviderID != actor.ID {
		return nil, utils.NewForbiddenError("Not authorized to update this booking")
	}
	if !s.Policy.Allowed(actor.Role, current.Status, req.Status) {
		return nil, utils.NewValidationError(fmt.Sprintf("Cannot change status from %s to %s", current.Status, req.Status))
	}

	status := req.Status
	changes := models.BookingChanges{Status: &status, FinalPrice: req.FinalPrice}
	s.stampCompletion(current, status, &changes)
	return s.apply(ctx, "status", current, changes)
}

// AssignProvider binds a provider to the booking and confirms it, whatever its prior status.
func (s *DefaultBookingService) AssignProvider(ctx context.Context, actor models.Actor, bookingID, providerID string) (*models.Booking, error) {
	if !actor.Is(models.RoleAdmin) {
		return nil, utils.NewForbiddenError("Only admins can assign providers")
	}
	normalized := models.NormalizeProviderID(&providerID)
	if normalized == nil {
		return nil, utils.NewValidationError("Provider is required")
	}

	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, storeError("assign", err)
	}

	provider, err := s.Users.GetByID(ctx, *normalized)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewValidationError("Provider does not exist")
		}
		utils.GetLogger().Error("AssignProvider: provider lookup failed",
			zap.String("bookingId", bookingID),
			zap.String("providerId", *normalized),
			zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	if provider.Role != models.RoleProvider || !provider.IsActive {
		return nil, utils.NewValidationError("User is not an active provider")
	}

	status := models.StatusConfirmed
	changes := models.BookingChanges{Status: &status, ProviderID: normalized}
	s.stampCompletion(current, status, &changes)
	return s.apply(ctx, "assign", current, changes)
}

// CancelBooking lets a customer withdraw their own booking before work starts.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID, reason string) (*models.Booking, error) {
	if !actor.Is(models.RoleCustomer) {
		return nil, utils.NewForbiddenError("Only customers can cancel their bookings")
	}
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, storeError("cancel", err)
	}
	if current.CustomerID != actor.ID {
		return nil, utils.NewForbiddenError("Not authorized to cancel this booking")
	}
	if !s.Policy.Allowed(actor.Role, current.Status, models.StatusCancelled) {
		return nil, utils.NewValidationError(fmt.Sprintf("Cannot cancel a booking that is %s", current.Status))
	}

	status := models.StatusCancelled
	changes := models.BookingChanges{Status: &status}
	if r := strings.TrimSpace(reason); r != "" {
		changes.CancellationReason = &r
	}
	return s.apply(ctx, "cancel", current, changes)
}

// SetPaymentStatus records an out-of-band payment outcome. No money moves here.
func (s *DefaultBookingService) SetPaymentStatus(ctx context.Context, actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error) {
	if !actor.Is(models.RoleAdmin) {
		return nil, utils.NewForbiddenError("Only admins can record payments")
	}
	if !status.Valid() {
		return nil, utils.NewValidationError("Invalid payment status")
	}
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, storeError("payment", err)
	}
	return s.apply(ctx, "payment", current, models.BookingChanges{PaymentStatus: &status})
}

// stampCompletion keeps completedAt in step with the Completed status.
func (s *DefaultBookingService) stampCompletion(current *models.Booking, to models.BookingStatus, changes *models.BookingChanges) {
	if to == models.StatusCompleted {
		if current.Status != models.StatusCompleted || current.CompletedAt == nil {
			now := s.now()
			changes.CompletedAt = &now
		}
		return
	}
	if current.CompletedAt != nil {
		changes.ClearCompletedAt = true
	}
}

func (s *DefaultBookingService) apply(ctx context.Context, op string, current *models.Booking, changes models.BookingChanges) (*models.Booking, error) {
	updated, err := s.Repo.ApplyChanges(ctx, current.ID, current.Version, changes)
	if err != nil {
		return nil, storeError(op, err)
	}
	if changes.Status != nil && *changes.Status != current.Status {
		metrics.IncBookingTransition(string(current.Status), string(*changes.Status))
	}
	utils.GetLogger().Info("Booking updated",
		zap.String("op", op),
		zap.String("bookingId", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.Int64("version", updated.Version))
	return updated, nil
}
