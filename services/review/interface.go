package review

import (
	"context"

	bookingRepo "sevagram/database/repository/booking"
	providerRepo "sevagram/database/repository/provider"
	reviewRepo "sevagram/database/repository/review"
	"sevagram/models"
)

type ReviewService interface {
	CreateReview(ctx context.Context, actor models.Actor, req models.CreateReviewRequest) (*models.Review, error)
	// OnReviewCreated recomputes the rating summary of the reviewed provider. CreateReview
	// calls it inside the same transaction as the insert.
	OnReviewCreated(ctx context.Context, review *models.Review) (*models.RatingSummary, error)
	ReconcileAll(ctx context.Context) (int, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.Review, error)
}

type DefaultReviewService struct {
	Repo      reviewRepo.ReviewRepository
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
}

func NewReviewService(repo reviewRepo.ReviewRepository, bookings bookingRepo.BookingRepository, providers providerRepo.ProviderRepository) *DefaultReviewService {
	return &DefaultReviewService{Repo: repo, Bookings: bookings, Providers: providers}
}
