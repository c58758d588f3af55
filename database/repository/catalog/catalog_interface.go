package catalogRepo

import (
	"context"

	"sevagram/models"
)

// CatalogRepository defines methods for service catalog data access.
type CatalogRepository interface {
	Create(ctx context.Context, service *models.Service) error
	// GetByID returns the service whether or not it is active.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// GetByIDs returns the services with the given IDs keyed by ID.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
	ListActiveByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error)
	// Deactivate retires a service from the catalog. Existing bookings keep their reference.
	Deactivate(ctx context.Context, id string) error
	// InsertMany seeds services, skipping none.
	InsertMany(ctx context.Context, services []models.Service) error
}
