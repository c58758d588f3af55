package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sevagram/database/repository/mocks"
	"sevagram/models"
	"sevagram/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

var adminActor = models.Actor{ID: "admin-1", Role: models.RoleAdmin}

func newCachedService(t *testing.T) (*DefaultCatalogService, *mocks.CatalogRepo, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := new(mocks.CatalogRepo)
	return NewCatalogService(repo, utils.NewRedisCache(client, time.Minute)), repo, s
}

func names(services []models.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Name)
	}
	return out
}

func TestListActive_ReadsThroughCache(t *testing.T) {
	svc, repo, mr := newCachedService(t)
	repo.On("ListActive", mock.Anything).Return([]models.Service{
		{ID: "1", Name: "Pipe Leak Repair", Category: models.CategoryPlumbing, IsActive: true},
	}, nil).Once()

	first, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists(utils.CatalogActiveKey))

	second, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, names(first), names(second))
	repo.AssertNumberOfCalls(t, "ListActive", 1)
}

func TestCreate_InvalidatesCachedLists(t *testing.T) {
	svc, repo, mr := newCachedService(t)
	repo.On("ListActiveByCategory", mock.Anything, models.CategoryPlumbing).Return([]models.Service{}, nil)
	repo.On("ListActive", mock.Anything).Return([]models.Service{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Service")).Return(nil)

	ctx := context.Background()
	_, err := svc.ListActive(ctx)
	require.NoError(t, err)
	_, err = svc.ListByCategory(ctx, models.CategoryPlumbing)
	require.NoError(t, err)
	require.True(t, mr.Exists(utils.CatalogCategoryKeyPrefix+"Plumbing"))

	created, err := svc.Create(ctx, adminActor, models.CreateServiceRequest{
		Name:        "Tap Replacement",
		Category:    models.CategoryPlumbing,
		Description: "Replace worn taps",
		BasePrice:   120,
		Duration:    "1 hour",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultServiceIcon, created.Icon)
	assert.True(t, created.IsActive)

	assert.False(t, mr.Exists(utils.CatalogActiveKey))
	assert.False(t, mr.Exists(utils.CatalogCategoryKeyPrefix+"Plumbing"))
}

func TestCacheOutageFallsThroughToStore(t *testing.T) {
	svc, repo, mr := newCachedService(t)
	repo.On("ListActive", mock.Anything).Return([]models.Service{{Name: "Drain Cleaning"}}, nil)
	mr.Close()

	got, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Drain Cleaning"}, names(got))
}

func TestListByCategory_RejectsUnknownCategory(t *testing.T) {
	svc := NewCatalogService(new(mocks.CatalogRepo), nil)
	_, err := svc.ListByCategory(context.Background(), "Astrology")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestCreate_Validation(t *testing.T) {
	svc := NewCatalogService(new(mocks.CatalogRepo), nil)
	valid := models.CreateServiceRequest{
		Name: "x", Category: models.CategoryOther, Description: "d", BasePrice: 10, Duration: "1 hour",
	}

	_, err := svc.Create(context.Background(), models.Actor{ID: "c", Role: models.RoleCustomer}, valid)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	bad := []func(r *models.CreateServiceRequest){
		func(r *models.CreateServiceRequest) { r.Name = "" },
		func(r *models.CreateServiceRequest) { r.Category = "Astrology" },
		func(r *models.CreateServiceRequest) { r.Description = " " },
		func(r *models.CreateServiceRequest) { r.BasePrice = 0 },
		func(r *models.CreateServiceRequest) { r.Duration = "" },
	}
	for i, mutate := range bad {
		req := valid
		mutate(&req)
		_, err := svc.Create(context.Background(), adminActor, req)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err), "case %d", i)
	}
}

func TestDeleteAndGet(t *testing.T) {
	repo := new(mocks.CatalogRepo)
	svc := NewCatalogService(repo, nil)
	repo.On("Deactivate", mock.Anything, "gone").Return(fmt.Errorf("service gone: %w", models.ErrNotFound))
	repo.On("Deactivate", mock.Anything, "svc-1").Return(nil)
	repo.On("GetByID", mock.Anything, "svc-1").Return(&models.Service{ID: "svc-1", IsActive: false}, nil)

	assert.Equal(t, utils.KindNotFound, utils.KindOf(svc.Delete(context.Background(), adminActor, "gone")))
	require.NoError(t, svc.Delete(context.Background(), adminActor, "svc-1"))

	got, err := svc.Get(context.Background(), "svc-1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
