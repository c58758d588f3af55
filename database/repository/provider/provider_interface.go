package providerRepo

import (
	"context"

	"sevagram/models"
)

// ProviderRepository defines methods for provider profile data access.
type ProviderRepository interface {
	// Upsert creates or replaces the editable fields of the profile of profile.UserID.
	// Derived fields (rating, totalReviews, completedJobs) and verification are never written here.
	Upsert(ctx context.Context, profile *models.ServiceProvider) (*models.ServiceProvider, error)
	// GetByUserID retrieves the profile of a provider-role user.
	GetByUserID(ctx context.Context, userID string) (*models.ServiceProvider, error)
	// List returns profiles ordered by rating, optionally filtered by category.
	List(ctx context.Context, category models.ServiceCategory) ([]models.ServiceProvider, error)
	// SetRatingSummary writes the derived rating fields, creating a bare profile when none exists.
	SetRatingSummary(ctx context.Context, userID string, summary models.RatingSummary) error
	// SetVerified records the admin verification decision.
	SetVerified(ctx context.Context, userID string, verified bool) error
}
