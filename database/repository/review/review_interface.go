package reviewRepo

import (
	"context"

	"sevagram/models"
)

// ReviewRepository defines review data access.
type ReviewRepository interface {
	// Create inserts a review. A second review for the same booking yields models.ErrDuplicate.
	Create(ctx context.Context, review *models.Review) error
	// RatingsForProvider returns every rating value recorded against providerID.
	RatingsForProvider(ctx context.Context, providerID string) ([]int, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Review, error)
	// DistinctProviderIDs lists every provider that has at least one review.
	DistinctProviderIDs(ctx context.Context) ([]string, error)
	// WithTransaction runs fn inside a database transaction. Repository calls made with
	// the ctx handed to fn take part in it.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
