package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sevagram/database/repository/mocks"
	"sevagram/models"
	"sevagram/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

var (
	fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	customer = models.Actor{ID: "cust-1", Role: models.RoleCustomer}
	provider = models.Actor{ID: "prov-1", Role: models.RoleProvider}
	admin    = models.Actor{ID: "admin-1", Role: models.RoleAdmin}
)

func newTestService(repo *memBookingRepo, strict bool) (*DefaultBookingService, *mocks.CatalogRepo, *mocks.UserRepo) {
	catalog := new(mocks.CatalogRepo)
	users := new(mocks.UserRepo)
	svc := NewBookingService(repo, catalog, users, strict)
	svc.Now = func() time.Time { return fixedNow }
	return svc, catalog, users
}

func validRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ServiceID:     "svc-plumb",
		ScheduledDate: "2025-03-05",
		ScheduledTime: "10:00 AM",
		Address: models.BookingAddress{
			Village:  "Rampur",
			District: "Nashik",
			State:    "Maharashtra",
			Pincode:  "422001",
		},
		ProblemDescription: "Kitchen pipe leaking",
	}
}

func plumbing() *models.Service {
	return &models.Service{
		ID:        "svc-plumb",
		Name:      "Pipe Leak Repair",
		Category:  models.CategoryPlumbing,
		BasePrice: 150,
		Duration:  "1-2 hours",
		IsActive:  true,
	}
}

func seeded(status models.BookingStatus) models.Booking {
	pid := provider.ID
	b := models.Booking{
		ID:             "bk-1",
		CustomerID:     customer.ID,
		ProviderID:     &pid,
		ServiceID:      "svc-plumb",
		Status:         status,
		EstimatedPrice: 150,
		PaymentMethod:  models.PaymentCash,
		PaymentStatus:  models.PaymentPending,
		Version:        3,
		CreatedAt:      fixedNow.Add(-time.Hour),
	}
	if status == models.StatusCompleted {
		done := fixedNow.Add(-30 * time.Minute)
		b.CompletedAt = &done
	}
	return b
}

func TestCreateBooking_Defaults(t *testing.T) {
	repo := newMemBookingRepo()
	svc, catalog, _ := newTestService(repo, true)
	catalog.On("GetByID", mock.Anything, "svc-plumb").Return(plumbing(), nil)

	sentinel := models.UnassignedProviderID
	req := validRequest()
	req.ProviderID = &sentinel

	b, err := svc.CreateBooking(context.Background(), customer, req)
	require.NoError(t, err)

	assert.Equal(t, customer.ID, b.CustomerID)
	assert.Nil(t, b.ProviderID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, models.PaymentCash, b.PaymentMethod)
	assert.Equal(t, 150.0, b.EstimatedPrice)
	assert.Equal(t, "Plumbing", b.ServiceCategory)
	assert.Nil(t, b.CompletedAt)
	assert.Nil(t, b.FinalPrice)
	assert.Equal(t, int64(1), b.Version)
	assert.NotEmpty(t, b.ID)

	stored, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, *b, *stored)
	catalog.AssertExpectations(t)
}

func TestCreateBooking_UnknownOrInactiveService(t *testing.T) {
	svc, catalog, _ := newTestService(newMemBookingRepo(), true)
	inactive := plumbing()
	inactive.IsActive = false
	catalog.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("service missing: %w", models.ErrNotFound))
	catalog.On("GetByID", mock.Anything, "svc-plumb").Return(inactive, nil)

	req := validRequest()
	req.ServiceID = "missing"
	_, err := svc.CreateBooking(context.Background(), customer, req)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = svc.CreateBooking(context.Background(), customer, validRequest())
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestCreateBooking_Validation(t *testing.T) {
	svc, _, _ := newTestService(newMemBookingRepo(), true)

	cases := map[string]func(r *models.CreateBookingRequest){
		"missing service": func(r *models.CreateBookingRequest) { r.ServiceID = "" },
		"missing date":    func(r *models.CreateBookingRequest) { r.ScheduledDate = "" },
		"bad date":        func(r *models.CreateBookingRequest) { r.ScheduledDate = "next tuesday" },
		"missing time":    func(r *models.CreateBookingRequest) { r.ScheduledTime = " " },
		"missing pincode": func(r *models.CreateBookingRequest) { r.Address.Pincode = "" },
		"missing problem": func(r *models.CreateBookingRequest) { r.ProblemDescription = "" },
		"unknown payment": func(r *models.CreateBookingRequest) { r.PaymentMethod = "Cheque" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := svc.CreateBooking(context.Background(), customer, req)
			assert.Equal(t, utils.KindValidation, utils.KindOf(err))
		})
	}
}

func TestCreateBooking_LandmarkOptional(t *testing.T) {
	svc, catalog, _ := newTestService(newMemBookingRepo(), true)
	catalog.On("GetByID", mock.Anything, "svc-plumb").Return(plumbing(), nil)

	req := validRequest()
	req.Address.Landmark = ""
	req.ServiceCategory = "Plumbing"
	b, err := svc.CreateBooking(context.Background(), customer, req)
	require.NoError(t, err)
	assert.Equal(t, "Plumbing", b.ServiceCategory)
}

func TestCreateBooking_CategoryComesFromCatalog(t *testing.T) {
	repo := newMemBookingRepo()
	svc, catalog, _ := newTestService(repo, true)
	catalog.On("GetByID", mock.Anything, "svc-plumb").Return(plumbing(), nil)

	for _, supplied := range []string{"x1", "x2", "Emergency Plumbing", "Electrical"} {
		req := validRequest()
		req.ServiceCategory = supplied
		_, err := svc.CreateBooking(context.Background(), customer, req)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err), supplied)
	}
	assert.Empty(t, repo.list(func(models.Booking) bool { return true }))

	b, err := svc.CreateBooking(context.Background(), customer, validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(models.CategoryPlumbing), b.ServiceCategory)
}

func TestCreateBooking_IgnoresCustomerIDFromCaller(t *testing.T) {
	repo := newMemBookingRepo()
	svc, catalog, _ := newTestService(repo, true)
	catalog.On("GetByID", mock.Anything, "svc-plumb").Return(plumbing(), nil)

	b, err := svc.CreateBooking(context.Background(), models.Actor{ID: "cust-7", Role: models.RoleCustomer}, validRequest())
	require.NoError(t, err)
	stored, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cust-7", stored.CustomerID)
}

func TestAssignProvider_ForcesConfirmedFromEveryStatus(t *testing.T) {
	for _, from := range models.BookingStatuses {
		t.Run(string(from), func(t *testing.T) {
			repo := newMemBookingRepo(seeded(from))
			svc, _, users := newTestService(repo, true)
			users.On("GetByID", mock.Anything, "prov-2").
				Return(&models.User{ID: "prov-2", Role: models.RoleProvider, IsActive: true}, nil)

			b, err := svc.AssignProvider(context.Background(), admin, "bk-1", "prov-2")
			require.NoError(t, err)
			assert.Equal(t, models.StatusConfirmed, b.Status)
			require.NotNil(t, b.ProviderID)
			assert.Equal(t, "prov-2", *b.ProviderID)
			assert.Nil(t, b.CompletedAt)
			assert.Equal(t, int64(4), b.Version)
		})
	}
}

func TestAssignProvider_Rejections(t *testing.T) {
	repo := newMemBookingRepo(seeded(models.StatusPending))
	svc, _, users := newTestService(repo, true)
	users.On("GetByID", mock.Anything, "cust-9").
		Return(&models.User{ID: "cust-9", Role: models.RoleCustomer, IsActive: true}, nil)
	users.On("GetByID", mock.Anything, "prov-off").
		Return(&models.User{ID: "prov-off", Role: models.RoleProvider, IsActive: false}, nil)
	users.On("GetByID", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("user ghost: %w", models.ErrNotFound))
	users.On("GetByID", mock.Anything, "prov-2").
		Return(&models.User{ID: "prov-2", Role: models.RoleProvider, IsActive: true}, nil)

	_, err := svc.AssignProvider(context.Background(), customer, "bk-1", "prov-2")
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	for _, id := range []string{"cust-9", "prov-off", "ghost", "", models.UnassignedProviderID} {
		_, err := svc.AssignProvider(context.Background(), admin, "bk-1", id)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err), id)
	}

	_, err = svc.AssignProvider(context.Background(), admin, "nope", "prov-2")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestAssignProvider_MissingBookingWinsOverBadProvider(t *testing.T) {
	repo := newMemBookingRepo(seeded(models.StatusPending))
	svc, _, users := newTestService(repo, true)
	users.On("GetByID", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("user ghost: %w", models.ErrNotFound)).Maybe()
	users.On("GetByID", mock.Anything, "prov-2").
		Return(nil, errors.New("connection reset")).Once()

	_, err := svc.AssignProvider(context.Background(), admin, "nope", "ghost")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	users.AssertNotCalled(t, "GetByID", mock.Anything, "ghost")

	_, err = svc.AssignProvider(context.Background(), admin, "bk-1", "prov-2")
	assert.Equal(t, utils.KindInternal, utils.KindOf(err))

	stored, err := repo.GetByID(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, int64(3), stored.Version)
}

func TestUpdateStatus_StrictTable(t *testing.T) {
	allowed := map[models.BookingStatus][]models.BookingStatus{
		models.StatusPending:    {models.StatusCancelled},
		models.StatusConfirmed:  {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
		models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	}
	for _, from := range models.BookingStatuses {
		for _, to := range models.BookingStatuses {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				repo := newMemBookingRepo(seeded(from))
				svc, _, _ := newTestService(repo, true)

				b, err := svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{Status: to})
				if !want {
					assert.Equal(t, utils.KindValidation, utils.KindOf(err))
					return
				}
				require.NoError(t, err)
				assert.Equal(t, to, b.Status)
				assert.Equal(t, to == models.StatusCompleted, b.CompletedAt != nil)
			})
		}
	}
}

func TestUpdateStatus_CompletionStampAndFinalPrice(t *testing.T) {
	repo := newMemBookingRepo(seeded(models.StatusInProgress))
	svc, _, _ := newTestService(repo, true)

	price := 180.0
	b, err := svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{
		Status:     models.StatusCompleted,
		FinalPrice: &price,
	})
	require.NoError(t, err)
	require.NotNil(t, b.CompletedAt)
	assert.True(t, b.CompletedAt.Equal(fixedNow))
	require.NotNil(t, b.FinalPrice)
	assert.Equal(t, 180.0, *b.FinalPrice)
	assert.Equal(t, 150.0, b.EstimatedPrice)
}

func TestUpdateStatus_AccessAndInput(t *testing.T) {
	repo := newMemBookingRepo(seeded(models.StatusConfirmed))
	svc, _, _ := newTestService(repo, true)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, customer, "bk-1", models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	_, err = svc.UpdateStatus(ctx, admin, "bk-1", models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	other := models.Actor{ID: "prov-9", Role: models.RoleProvider}
	_, err = svc.UpdateStatus(ctx, other, "bk-1", models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	_, err = svc.UpdateStatus(ctx, provider, "bk-1", models.UpdateStatusRequest{Status: "Done"})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	zero := 0.0
	_, err = svc.UpdateStatus(ctx, provider, "bk-1", models.UpdateStatusRequest{Status: models.StatusCompleted, FinalPrice: &zero})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.UpdateStatus(ctx, provider, "missing", models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestUpdateStatus_LegacyModeAllowsAnyStatus(t *testing.T) {
	repo := newMemBookingRepo(seeded(models.StatusCompleted))
	svc, _, _ := newTestService(repo, false)

	b, err := svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Nil(t, b.CompletedAt)

	b, err = svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{Status: models.StatusCompleted})
	require.NoError(t, err)
	require.NotNil(t, b.CompletedAt)
	first := *b.CompletedAt

	svc.Now = func() time.Time { return fixedNow.Add(time.Hour) }
	b, err = svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.True(t, b.CompletedAt.Equal(first))
}

func TestUpdateStatus_VersionConflict(t *testing.T) {
	current := seeded(models.StatusConfirmed)
	repo := new(mocks.BookingRepo)
	repo.On("GetByID", mock.Anything, "bk-1").Return(&current, nil)
	repo.On("ApplyChanges", mock.Anything, "bk-1", int64(3), mock.Anything).
		Return(nil, fmt.Errorf("booking bk-1: %w", models.ErrVersionConflict))

	svc := NewBookingService(repo, new(mocks.CatalogRepo), new(mocks.UserRepo), true)
	_, err := svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.True(t, errors.Is(err, models.ErrVersionConflict))
	repo.AssertExpectations(t)
}

func TestUpdateStatus_StoreFailureIsInternal(t *testing.T) {
	repo := new(mocks.BookingRepo)
	repo.On("GetByID", mock.Anything, "bk-1").Return(nil, errors.New("connection reset"))

	svc := NewBookingService(repo, new(mocks.CatalogRepo), new(mocks.UserRepo), true)
	_, err := svc.UpdateStatus(context.Background(), provider, "bk-1", models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindInternal, utils.KindOf(err))
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	repo := newMemBookingRepo(seeded(models.StatusPending))
	svc, _, _ := newTestService(repo, true)
	b, err := svc.CancelBooking(ctx, customer, "bk-1", "  found someone local ")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)
	assert.Equal(t, "found someone local", b.CancellationReason)

	repo = newMemBookingRepo(seeded(models.StatusInProgress))
	svc, _, _ = newTestService(repo, false)
	_, err = svc.CancelBooking(ctx, customer, "bk-1", "")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	stranger := models.Actor{ID: "cust-2", Role: models.RoleCustomer}
	_, err = svc.CancelBooking(ctx, stranger, "bk-1", "")
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	_, err = svc.CancelBooking(ctx, provider, "bk-1", "")
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestSetPaymentStatus(t *testing.T) {
	repo := newMemBookingRepo(seeded(models.StatusCompleted))
	svc, _, _ := newTestService(repo, true)

	_, err := svc.SetPaymentStatus(context.Background(), customer, "bk-1", models.PaymentPaid)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	_, err = svc.SetPaymentStatus(context.Background(), admin, "bk-1", "Lost")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	b, err := svc.SetPaymentStatus(context.Background(), admin, "bk-1", models.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, models.StatusCompleted, b.Status)
	assert.NotNil(t, b.CompletedAt)
}

func TestListForCustomer_NewestFirstWithSummaries(t *testing.T) {
	pid := provider.ID
	older := models.Booking{ID: "a", CustomerID: customer.ID, ServiceID: "svc-plumb", CreatedAt: fixedNow.Add(-2 * time.Hour)}
	newer := models.Booking{ID: "b", CustomerID: customer.ID, ServiceID: "svc-plumb", ProviderID: &pid, CreatedAt: fixedNow}
	other := models.Booking{ID: "c", CustomerID: "cust-2", ServiceID: "svc-plumb", CreatedAt: fixedNow}

	repo := newMemBookingRepo(older, newer, other)
	svc, catalog, users := newTestService(repo, true)
	catalog.On("GetByIDs", mock.Anything, []string{"svc-plumb"}).
		Return(map[string]models.Service{"svc-plumb": *plumbing()}, nil)
	users.On("GetByIDs", mock.Anything, []string{provider.ID}).
		Return(map[string]models.User{provider.ID: {ID: provider.ID, Name: "Ravi", Phone: "9876543210"}}, nil)

	views, err := svc.ListForCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "b", views[0].ID)
	assert.Equal(t, "a", views[1].ID)
	assert.Equal(t, "Pipe Leak Repair", views[0].Service.Name)
	require.NotNil(t, views[0].Provider)
	assert.Equal(t, "Ravi", views[0].Provider.Name)
	assert.Nil(t, views[0].Provider.Address)
	assert.Nil(t, views[1].Provider)
	assert.Nil(t, views[0].Customer)
}

func TestListForProvider_NewestFirstWithCustomer(t *testing.T) {
	mine := provider.ID
	theirs := "prov-2"
	older := models.Booking{ID: "a", CustomerID: customer.ID, ServiceID: "svc-plumb", ProviderID: &mine, CreatedAt: fixedNow.Add(-3 * time.Hour)}
	newer := models.Booking{ID: "b", CustomerID: customer.ID, ServiceID: "svc-plumb", ProviderID: &mine, CreatedAt: fixedNow}
	middle := models.Booking{ID: "c", CustomerID: customer.ID, ServiceID: "svc-plumb", ProviderID: &mine, CreatedAt: fixedNow.Add(-time.Hour)}
	foreign := models.Booking{ID: "d", CustomerID: customer.ID, ServiceID: "svc-plumb", ProviderID: &theirs, CreatedAt: fixedNow}
	unassigned := models.Booking{ID: "e", CustomerID: customer.ID, ServiceID: "svc-plumb", CreatedAt: fixedNow}

	repo := newMemBookingRepo(older, newer, middle, foreign, unassigned)
	svc, catalog, users := newTestService(repo, true)
	catalog.On("GetByIDs", mock.Anything, []string{"svc-plumb"}).
		Return(map[string]models.Service{"svc-plumb": *plumbing()}, nil)
	users.On("GetByIDs", mock.Anything, []string{customer.ID}).Return(map[string]models.User{
		customer.ID: {ID: customer.ID, Name: "Asha", Phone: "9876543210", Address: models.Address{Village: "Rampur", Pincode: "422001"}},
	}, nil).Once()

	views, err := svc.ListForProvider(context.Background(), provider.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{views[0].ID, views[1].ID, views[2].ID})
	for _, v := range views {
		require.NotNil(t, v.ProviderID)
		assert.Equal(t, provider.ID, *v.ProviderID)
		require.NotNil(t, v.Customer)
		assert.Equal(t, "Asha", v.Customer.Name)
		require.NotNil(t, v.Customer.Address)
		assert.Equal(t, "Rampur", v.Customer.Address.Village)
		require.NotNil(t, v.Service)
		assert.Equal(t, "Pipe Leak Repair", v.Service.Name)
		assert.Nil(t, v.Provider)
	}
	users.AssertExpectations(t)
}

func TestSummarizeForProvider(t *testing.T) {
	final := 200.0
	bookings := []models.Booking{
		{Status: models.StatusPending, EstimatedPrice: 100},
		{Status: models.StatusConfirmed, EstimatedPrice: 100},
		{Status: models.StatusInProgress, EstimatedPrice: 100},
		{Status: models.StatusCompleted, EstimatedPrice: 100, PaymentStatus: models.PaymentPaid},
		{Status: models.StatusCompleted, EstimatedPrice: 100, FinalPrice: &final, PaymentStatus: models.PaymentPaid},
		{Status: models.StatusCompleted, EstimatedPrice: 500, PaymentStatus: models.PaymentPending},
		{Status: models.StatusCancelled, EstimatedPrice: 100, PaymentStatus: models.PaymentPaid},
	}
	s := SummarizeForProvider(bookings)
	assert.Equal(t, models.ProviderSummary{
		Total: 7, Pending: 1, Confirmed: 1, InProgress: 1, Completed: 3, Cancelled: 1, Earnings: 300,
	}, s)
}

func TestBookingLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	repo := newMemBookingRepo()
	svc, catalog, users := newTestService(repo, true)
	catalog.On("GetByID", mock.Anything, "svc-plumb").Return(plumbing(), nil)
	users.On("GetByID", mock.Anything, provider.ID).
		Return(&models.User{ID: provider.ID, Role: models.RoleProvider, IsActive: true}, nil)

	created, err := svc.CreateBooking(ctx, customer, validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, provider, created.ID, models.UpdateStatusRequest{Status: models.StatusInProgress})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err), "unassigned provider cannot touch the booking")

	assigned, err := svc.AssignProvider(ctx, admin, created.ID, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, assigned.Status)

	started, err := svc.UpdateStatus(ctx, provider, created.ID, models.UpdateStatusRequest{Status: models.StatusInProgress})
	require.NoError(t, err)
	assert.Nil(t, started.CompletedAt)

	done, err := svc.UpdateStatus(ctx, provider, created.ID, models.UpdateStatusRequest{Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, int64(4), done.Version)

	_, err = svc.UpdateStatus(ctx, provider, created.ID, models.UpdateStatusRequest{Status: models.StatusCancelled})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
