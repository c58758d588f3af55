package review

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

// CreateReview records a customer's rating of a completed booking and refreshes the
// provider's summary atomically with it.
func (s *DefaultReviewService) CreateReview(ctx context.Context, actor models.Actor, req models.CreateReviewRequest) (*models.Review, error) {
	if !actor.Is(models.RoleCustomer) {
		return nil, utils.NewForbiddenError("Only customers can leave reviews")
	}
	req.BookingID = strings.TrimSpace(req.BookingID)
	req.Comment = strings.TrimSpace(req.Comment)
	if err := utils.ValidateRequest(&req); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewNotFoundError("Booking not found")
		}
		return nil, utils.NewInternalError("Server Error", err)
	}
	if booking.CustomerID != actor.ID {
		return nil, utils.NewForbiddenError("Not authorized to review this booking")
	}
	if booking.Status != models.StatusCompleted {
		return nil, utils.NewValidationError("Only completed bookings can be reviewed")
	}
	if booking.ProviderID == nil {
		return nil, utils.NewValidationError("Booking has no provider to review")
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		CustomerID: actor.ID,
		ProviderID: *booking.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}

	err = s.Repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Repo.Create(txCtx, review); err != nil {
			return err
		}
		_, err := s.OnReviewCreated(txCtx, review)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, utils.NewConflictError("This booking has already been reviewed", err)
		}
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		utils.GetLogger().Error("CreateReview: transaction failed", zap.String("bookingId", booking.ID), zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}

	metrics.IncReviewCreated()
	return review, nil
}

func (s *DefaultReviewService) OnReviewCreated(ctx context.Context, review *models.Review) (*models.RatingSummary, error) {
	summary, err := s.recompute(ctx, review.ProviderID)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Provider rating updated",
		zap.String("providerId", review.ProviderID),
		zap.Float64("rating", summary.Average),
		zap.Int("totalReviews", summary.Total))
	return summary, nil
}

// ReconcileAll recomputes every reviewed provider's summary and returns how many were written.
func (s *DefaultReviewService) ReconcileAll(ctx context.Context) (int, error) {
	ids, err := s.Repo.DistinctProviderIDs(ctx)
	if err != nil {
		return 0, utils.NewInternalError("Server Error", err)
	}
	updated := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		if _, err := s.recompute(ctx, id); err != nil {
			utils.GetLogger().Error("ReconcileAll: provider recompute failed", zap.String("providerId", id), zap.Error(err))
			continue
		}
		updated++
	}
	return updated, nil
}

func (s *DefaultReviewService) ListForProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, utils.NewInternalError("Server Error", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) recompute(ctx context.Context, providerID string) (*models.RatingSummary, error) {
	ratings, err := s.Repo.RatingsForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(ratings)
	if err := s.Providers.SetRatingSummary(ctx, providerID, summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
