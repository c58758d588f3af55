package catalog

import (
	"context"

	catalogRepo "sevagram/database/repository/catalog"
	"sevagram/models"
	"sevagram/utils"
)

type CatalogService interface {
	ListActive(ctx context.Context) ([]models.Service, error)
	ListByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, actor models.Actor, req models.CreateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, actor models.Actor, id string) error
}

// DefaultCatalogService reads through Cache and invalidates it on every write.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache utils.Cache
}

func NewCatalogService(repo catalogRepo.CatalogRepository, cache utils.Cache) *DefaultCatalogService {
	if cache == nil {
		cache = utils.NoopCache{}
	}
	return &DefaultCatalogService{Repo: repo, Cache: cache}
}
