package admin

import (
	"context"
	"errors"
	"testing"

	"sevagram/database/repository/mocks"
	"sevagram/models"
	"sevagram/services/booking"
	"sevagram/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

func TestComputeStats_Revenue(t *testing.T) {
	final := 200.0
	bookings := []models.Booking{
		{PaymentStatus: models.PaymentPaid, FinalPrice: &final, EstimatedPrice: 120, Status: models.StatusCompleted},
		{PaymentStatus: models.PaymentPaid, EstimatedPrice: 150, Status: models.StatusCompleted},
		{PaymentStatus: models.PaymentPending, EstimatedPrice: 500, Status: models.StatusPending},
	}
	users := []models.User{
		{Role: models.RoleCustomer},
		{Role: models.RoleProvider},
		{Role: models.RoleProvider},
		{Role: models.RoleAdmin},
	}
	services := []models.Service{{ID: "a", IsActive: true}, {ID: "deleted", IsActive: false}}

	stats := ComputeStats(users, services, bookings)
	assert.Equal(t, models.DashboardStats{
		TotalUsers:      4,
		TotalProviders:  2,
		TotalServices:   1,
		TotalBookings:   3,
		PendingBookings: 1,
		Revenue:         350,
	}, stats)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, models.DashboardStats{}, ComputeStats(nil, nil, nil))
}

func newFixture() (*DefaultAdminService, *mocks.UserRepo, *mocks.CatalogRepo, *mocks.BookingRepo) {
	users := new(mocks.UserRepo)
	catalog := new(mocks.CatalogRepo)
	store := new(mocks.BookingRepo)
	bookings := booking.NewBookingService(store, catalog, users, true)
	return NewAdminService(users, catalog, store, bookings), users, catalog, store
}

func TestStats_LoadsFreshData(t *testing.T) {
	svc, users, catalog, store := newFixture()
	users.On("GetAll", mock.Anything).Return([]models.User{{Role: models.RoleProvider}}, nil).Twice()
	catalog.On("ListActive", mock.Anything).Return([]models.Service{{ID: "s", IsActive: true}}, nil).Twice()
	store.On("ListAll", mock.Anything).Return([]models.Booking{{Status: models.StatusPending}}, nil).Once()
	store.On("ListAll", mock.Anything).Return([]models.Booking{
		{Status: models.StatusPending},
		{Status: models.StatusCompleted, PaymentStatus: models.PaymentPaid, EstimatedPrice: 99},
	}, nil).Once()

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalBookings)
	assert.Equal(t, 1, first.TotalServices)

	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, second.TotalBookings)
	assert.Equal(t, 99.0, second.Revenue)
	store.AssertExpectations(t)
}

func TestStats_StoreFailure(t *testing.T) {
	svc, users, _, _ := newFixture()
	users.On("GetAll", mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.Stats(context.Background())
	assert.Equal(t, utils.KindInternal, utils.KindOf(err))
}

func TestListBookings_ExpandsReferences(t *testing.T) {
	svc, users, catalog, store := newFixture()
	pid := "prov-1"
	store.On("ListAll", mock.Anything).Return([]models.Booking{
		{ID: "bk-1", CustomerID: "cust-1", ProviderID: &pid, ServiceID: "svc-1"},
	}, nil)
	catalog.On("GetByIDs", mock.Anything, []string{"svc-1"}).
		Return(map[string]models.Service{"svc-1": {ID: "svc-1", Name: "Drain Cleaning"}}, nil)
	users.On("GetByIDs", mock.Anything, []string{"cust-1", "prov-1"}).
		Return(map[string]models.User{
			"cust-1": {ID: "cust-1", Name: "Asha", Address: models.Address{Village: "Rampur"}},
			"prov-1": {ID: "prov-1", Name: "Ravi"},
		}, nil)

	views, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Drain Cleaning", views[0].Service.Name)
	assert.Equal(t, "Rampur", views[0].Customer.Address.Village)
	assert.Equal(t, "Ravi", views[0].Provider.Name)
}

func TestSetPaymentStatus_AdminOnly(t *testing.T) {
	svc, _, _, _ := newFixture()
	_, err := svc.SetPaymentStatus(context.Background(), models.Actor{ID: "c", Role: models.RoleCustomer}, "bk-1", models.PaymentPaid)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}
