package catalog

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

func (s *DefaultCatalogService) ListActive(ctx context.Context) ([]models.Service, error) {
	return s.cached(ctx, utils.CatalogActiveKey, func() ([]models.Service, error) {
		return s.Repo.ListActive(ctx)
	})
}

func (s *DefaultCatalogService) ListByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	if !category.Valid() {
		return nil, utils.NewValidationError("Invalid service category")
	}
	return s.cached(ctx, utils.CatalogCategoryKeyPrefix+string(category), func() ([]models.Service, error) {
		return s.Repo.ListActiveByCategory(ctx, category)
	})
}

// Get returns a service even after it was retired, so old bookings can still show it.
func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewNotFoundError("Service not found")
		}
		return nil, utils.NewInternalError("Server Error", err)
	}
	return service, nil
}

func (s *DefaultCatalogService) Create(ctx context.Context, actor models.Actor, req models.CreateServiceRequest) (*models.Service, error) {
	if !actor.Is(models.RoleAdmin) {
		return nil, utils.NewForbiddenError("Only admins can manage services")
	}
	if err := validateService(&req); err != nil {
		return nil, err
	}

	icon := strings.TrimSpace(req.Icon)
	if icon == "" {
		icon = models.DefaultServiceIcon
	}
	service := &models.Service{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Icon:        icon,
		BasePrice:   req.BasePrice,
		Duration:    req.Duration,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, service); err != nil {
		utils.GetLogger().Error("CatalogCreate: insert failed", zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	s.invalidate(ctx)
	return service, nil
}

// Delete retires the service. It no longer appears in listings.
func (s *DefaultCatalogService) Delete(ctx context.Context, actor models.Actor, id string) error {
	if !actor.Is(models.RoleAdmin) {
		return utils.NewForbiddenError("Only admins can manage services")
	}
	if err := s.Repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return utils.NewNotFoundError("Service not found")
		}
		return utils.NewInternalError("Server Error", err)
	}
	s.invalidate(ctx)
	return nil
}

// validateService trims req in place and applies its binding rules plus the category set.
func validateService(req *models.CreateServiceRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Duration = strings.TrimSpace(req.Duration)
	if err := utils.ValidateRequest(req); err != nil {
		return err
	}
	if !req.Category.Valid() {
		return utils.NewValidationError("Please provide a valid service category")
	}
	return nil
}

// cached serves key from the cache, falling back to load on a miss or a cache failure.
func (s *DefaultCatalogService) cached(ctx context.Context, key string, load func() ([]models.Service, error)) ([]models.Service, error) {
	var services []models.Service
	found, err := s.Cache.GetJSON(ctx, key, &services)
	if err != nil {
		utils.GetLogger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
	}
	metrics.ObserveCacheLookup(found)
	if found {
		return services, nil
	}

	services, err = load()
	if err != nil {
		utils.GetLogger().Error("catalog load failed", zap.String("key", key), zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	if err := s.Cache.SetJSON(ctx, key, services); err != nil {
		utils.GetLogger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	return services, nil
}

func (s *DefaultCatalogService) invalidate(ctx context.Context) {
	if err := s.Cache.Delete(ctx, utils.CatalogActiveKey); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.Error(err))
	}
	if err := s.Cache.DeletePrefix(ctx, utils.CatalogCategoryKeyPrefix); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
