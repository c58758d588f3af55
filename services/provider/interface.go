package provider

import (
	"context"

	providerRepo "sevagram/database/repository/provider"
	userRepo "sevagram/database/repository/user"
	"sevagram/models"
)

type ProviderService interface {
	UpsertOwnProfile(ctx context.Context, actor models.Actor, req models.ProviderProfileRequest) (*models.ServiceProvider, error)
	GetProfile(ctx context.Context, userID string) (*models.ServiceProvider, error)
	ListProfiles(ctx context.Context, category models.ServiceCategory) ([]models.ServiceProvider, error)
	Verify(ctx context.Context, actor models.Actor, userID string, verified bool) error
}

type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Users userRepo.UserRepository
}

func NewProviderService(repo providerRepo.ProviderRepository, users userRepo.UserRepository) *DefaultProviderService {
	return &DefaultProviderService{Repo: repo, Users: users}
}
