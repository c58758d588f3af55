package admin

import (
	"context"

	"sevagram/models"
	"sevagram/utils"

	"go.uber.org/zap"
)

// ListUsers returns every user newest first. Credentials are never loaded.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		utils.GetLogger().Error("ListUsers: failed to load users", zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	return users, nil
}

func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.BookingView, error) {
	return s.Bookings.ListAll(ctx)
}

// Stats recomputes the dashboard from the full data set on every call.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Server Error", err)
	}
	services, err := s.Catalog.ListActive(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Server Error", err)
	}
	bookings, err := s.BookingStore.ListAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Server Error", err)
	}
	stats := ComputeStats(users, services, bookings)
	return &stats, nil
}

func (s *DefaultAdminService) SetPaymentStatus(ctx context.Context, actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error) {
	return s.Bookings.SetPaymentStatus(ctx, actor, bookingID, status)
}

// ComputeStats builds the dashboard rollup. Retired services are not counted. Revenue counts
// paid bookings only, at their final price when one was settled.
func ComputeStats(users []models.User, services []models.Service, bookings []models.Booking) models.DashboardStats {
	stats := models.DashboardStats{
		TotalUsers:    len(users),
		TotalBookings: len(bookings),
	}
	for _, svc := range services {
		if svc.IsActive {
			stats.TotalServices++
		}
	}
	for _, u := range users {
		if u.Role == models.RoleProvider {
			stats.TotalProviders++
		}
	}
	for _, b := range bookings {
		if b.Status == models.StatusPending {
			stats.PendingBookings++
		}
		if b.PaymentStatus == models.PaymentPaid {
			stats.Revenue += b.ChargeableAmount()
		}
	}
	return stats
}
