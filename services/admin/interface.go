package admin

import (
	"context"

	bookingRepo "sevagram/database/repository/booking"
	catalogRepo "sevagram/database/repository/catalog"
	userRepo "sevagram/database/repository/user"
	"sevagram/models"
	"sevagram/services/booking"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListBookings(ctx context.Context) ([]models.BookingView, error)
	Stats(ctx context.Context) (*models.DashboardStats, error)
	SetPaymentStatus(ctx context.Context, actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error)
}

// DefaultAdminService is the production implementation. Booking reads and writes go through
// the booking service so expansion and versioning stay in one place.
type DefaultAdminService struct {
	Users        userRepo.UserRepository
	Catalog      catalogRepo.CatalogRepository
	BookingStore bookingRepo.BookingRepository
	Bookings     booking.BookingService
}

func NewAdminService(users userRepo.UserRepository, catalog catalogRepo.CatalogRepository, store bookingRepo.BookingRepository, bookings booking.BookingService) *DefaultAdminService {
	return &DefaultAdminService{Users: users, Catalog: catalog, BookingStore: store, Bookings: bookings}
}
