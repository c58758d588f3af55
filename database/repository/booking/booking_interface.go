package bookingRepo

import (
	"context"

	"sevagram/models"
)

// BookingRepository defines booking data access. Every list is ordered by createdAt descending.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	// ApplyChanges writes changes only if the stored version still equals expectedVersion,
	// bumping the version. It returns models.ErrVersionConflict when another write won.
	ApplyChanges(ctx context.Context, id string, expectedVersion int64, changes models.BookingChanges) (*models.Booking, error)
}
