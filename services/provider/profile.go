package provider

import (
	"context"
	"errors"
	"strings"

	"sevagram/models"
	"sevagram/utils"

	"go.uber.org/zap"
)

// UpsertOwnProfile creates or replaces the caller's profile. Rating, review count and
// verification are never taken from the request.
func (s *DefaultProviderService) UpsertOwnProfile(ctx context.Context, actor models.Actor, req models.ProviderProfileRequest) (*models.ServiceProvider, error) {
	if !actor.Is(models.RoleProvider) {
		return nil, utils.NewForbiddenError("Only providers have a provider profile")
	}
	if err := validateProfile(&req); err != nil {
		return nil, err
	}

	profile := &models.ServiceProvider{
		UserID:            actor.ID,
		ServiceCategories: req.ServiceCategories,
		Experience:        req.Experience,
		Description:       req.Description,
		Skills:            req.Skills,
		ServingAreas:      req.ServingAreas,
		Availability:      req.Availability,
		Documents:         req.Documents,
		PriceRange:        req.PriceRange,
	}
	saved, err := s.Repo.Upsert(ctx, profile)
	if err != nil {
		utils.GetLogger().Error("UpsertOwnProfile: failed to save profile", zap.String("userId", actor.ID), zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	return saved, nil
}

func (s *DefaultProviderService) GetProfile(ctx context.Context, userID string) (*models.ServiceProvider, error) {
	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewNotFoundError("Provider profile not found")
		}
		return nil, utils.NewInternalError("Server Error", err)
	}
	return profile, nil
}

// ListProfiles returns profiles best rated first. An empty category lists everyone.
func (s *DefaultProviderService) ListProfiles(ctx context.Context, category models.ServiceCategory) ([]models.ServiceProvider, error) {
	if category != "" && !category.Valid() {
		return nil, utils.NewValidationError("Invalid service category")
	}
	profiles, err := s.Repo.List(ctx, category)
	if err != nil {
		return nil, utils.NewInternalError("Server Error", err)
	}
	return profiles, nil
}

func (s *DefaultProviderService) Verify(ctx context.Context, actor models.Actor, userID string, verified bool) error {
	if !actor.Is(models.RoleAdmin) {
		return utils.NewForbiddenError("Only admins can verify providers")
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return utils.NewNotFoundError("User not found")
		}
		return utils.NewInternalError("Server Error", err)
	}
	if user.Role != models.RoleProvider {
		return utils.NewValidationError("User is not a provider")
	}
	if err := s.Repo.SetVerified(ctx, userID, verified); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return utils.NewNotFoundError("Provider profile not found")
		}
		return utils.NewInternalError("Server Error", err)
	}
	utils.GetLogger().Info("Provider verification changed", zap.String("userId", userID), zap.Bool("verified", verified), zap.String("by", actor.ID))
	return nil
}

// validateProfile applies the binding rules, then the category set and price range checks.
func validateProfile(req *models.ProviderProfileRequest) error {
	req.Description = strings.TrimSpace(req.Description)
	if err := utils.ValidateRequest(req); err != nil {
		return err
	}
	for _, c := range req.ServiceCategories {
		if !c.Valid() {
			return utils.NewValidationError("Invalid service category: " + string(c))
		}
	}
	if req.Availability == "" {
		req.Availability = models.Available
	}
	if pr := req.PriceRange; pr != nil && (pr.Min < 0 || pr.Max < pr.Min) {
		return utils.NewValidationError("Invalid price range")
	}
	return nil
}
