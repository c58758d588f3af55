package booking

import (
	"context"
	"time"

	bookingRepo "sevagram/database/repository/booking"
	catalogRepo "sevagram/database/repository/catalog"
	userRepo "sevagram/database/repository/user"
	"sevagram/models"
)

// BookingService owns the booking lifecycle. Every mutation names the actor it runs for.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.BookingView, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.BookingView, error)
	ListAll(ctx context.Context) ([]models.BookingView, error)
	UpdateStatus(ctx context.Context, actor models.Actor, bookingID string, req models.UpdateStatusRequest) (*models.Booking, error)
	AssignProvider(ctx context.Context, actor models.Actor, bookingID, providerID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID, reason string) (*models.Booking, error)
	SetPaymentStatus(ctx context.Context, actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error)
	ProviderSummary(ctx context.Context, providerID string) (*models.ProviderSummary, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalogRepo.CatalogRepository
	Users   userRepo.UserRepository
	Policy  TransitionPolicy
	Now     func() time.Time
}

// NewBookingService wires a DefaultBookingService. strict selects the transition table;
// when false any known status may be written.
func NewBookingService(repo bookingRepo.BookingRepository, catalog catalogRepo.CatalogRepository, users userRepo.UserRepository, strict bool) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:    repo,
		Catalog: catalog,
		Users:   users,
		Policy:  NewTransitionPolicy(strict),
		Now:     time.Now,
	}
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
