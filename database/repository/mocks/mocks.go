// Package mocks holds testify doubles for the repository interfaces.
package mocks

import (
	"context"

	"sevagram/models"

	"github.com/stretchr/testify/mock"
)

type BookingRepo struct {
	mock.Mock
}

func (m *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *BookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *BookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *BookingRepo) ApplyChanges(ctx context.Context, id string, expectedVersion int64, changes models.BookingChanges) (*models.Booking, error) {
	args := m.Called(ctx, id, expectedVersion, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type CatalogRepo struct {
	mock.Mock
}

func (m *CatalogRepo) Create(ctx context.Context, s *models.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *CatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *CatalogRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.Service), args.Error(1)
}

func (m *CatalogRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *CatalogRepo) ListActiveByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *CatalogRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogRepo) InsertMany(ctx context.Context, services []models.Service) error {
	return m.Called(ctx, services).Error(0)
}

type UserRepo struct {
	mock.Mock
}

func (m *UserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepo) GetByEmailWithCredential(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.User), args.Error(1)
}

type ProviderRepo struct {
	mock.Mock
}

func (m *ProviderRepo) Upsert(ctx context.Context, p *models.ServiceProvider) (*models.ServiceProvider, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceProvider), args.Error(1)
}

func (m *ProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.ServiceProvider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceProvider), args.Error(1)
}

func (m *ProviderRepo) List(ctx context.Context, category models.ServiceCategory) ([]models.ServiceProvider, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceProvider), args.Error(1)
}

func (m *ProviderRepo) SetRatingSummary(ctx context.Context, userID string, summary models.RatingSummary) error {
	return m.Called(ctx, userID, summary).Error(0)
}

func (m *ProviderRepo) SetVerified(ctx context.Context, userID string, verified bool) error {
	return m.Called(ctx, userID, verified).Error(0)
}

type ReviewRepo struct {
	mock.Mock
}

func (m *ReviewRepo) Create(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReviewRepo) RatingsForProvider(ctx context.Context, providerID string) ([]int, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *ReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *ReviewRepo) DistinctProviderIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// WithTransaction records the call and then runs fn directly, so expectations set on the
// other repositories still apply inside it.
func (m *ReviewRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
