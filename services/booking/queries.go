package booking

import (
	"context"
	"sort"

	"sevagram/models"
	"sevagram/utils"

	"go.uber.org/zap"
)

// expansion selects which references a read view resolves.
type expansion struct {
	service         bool
	customer        bool
	customerAddress bool
	provider        bool
}

// ListForCustomer returns the customer's bookings newest first with service and provider resolved.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeError("list-customer", err)
	}
	return s.views(ctx, bookings, expansion{service: true, provider: true})
}

// ListForProvider returns the bookings assigned to providerID newest first.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, storeError("list-provider", err)
	}
	return s.views(ctx, bookings, expansion{service: true, customer: true, customerAddress: true})
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, storeError("list-all", err)
	}
	return s.views(ctx, bookings, expansion{service: true, customer: true, customerAddress: true, provider: true})
}

// ProviderSummary backs the provider dashboard.
func (s *DefaultBookingService) ProviderSummary(ctx context.Context, providerID string) (*models.ProviderSummary, error) {
	bookings, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, storeError("provider-summary", err)
	}
	summary := SummarizeForProvider(bookings)
	return &summary, nil
}

// SummarizeForProvider counts bookings per status. Earnings only include work that is both
// completed and paid.
func SummarizeForProvider(bookings []models.Booking) models.ProviderSummary {
	var out models.ProviderSummary
	out.Total = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			out.Pending++
		case models.StatusConfirmed:
			out.Confirmed++
		case models.StatusInProgress:
			out.InProgress++
		case models.StatusCompleted:
			out.Completed++
			if b.PaymentStatus == models.PaymentPaid {
				out.Earnings += b.ChargeableAmount()
			}
		case models.StatusCancelled:
			out.Cancelled++
		}
	}
	return out
}

func (s *DefaultBookingService) views(ctx context.Context, bookings []models.Booking, exp expansion) ([]models.BookingView, error) {
	sortNewestFirst(bookings)

	var services map[string]models.Service
	if exp.service {
		ids := make([]string, 0, len(bookings))
		for _, b := range bookings {
			ids = append(ids, b.ServiceID)
		}
		found, err := s.Catalog.GetByIDs(ctx, unique(ids))
		if err != nil {
			utils.GetLogger().Error("booking views: catalog lookup failed", zap.Error(err))
			return nil, utils.NewInternalError("Server Error", err)
		}
		services = found
	}

	var users map[string]models.User
	if exp.customer || exp.provider {
		ids := make([]string, 0, len(bookings)*2)
		for _, b := range bookings {
			if exp.customer {
				ids = append(ids, b.CustomerID)
			}
			if exp.provider && b.ProviderID != nil {
				ids = append(ids, *b.ProviderID)
			}
		}
		found, err := s.Users.GetByIDs(ctx, unique(ids))
		if err != nil {
			utils.GetLogger().Error("booking views: user lookup failed", zap.Error(err))
			return nil, utils.NewInternalError("Server Error", err)
		}
		users = found
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if svc, ok := services[b.ServiceID]; ok {
			view.Service = svc.Summary()
		}
		if exp.customer {
			if u, ok := users[b.CustomerID]; ok {
				view.Customer = u.Summary(exp.customerAddress)
			}
		}
		if exp.provider && b.ProviderID != nil {
			if u, ok := users[*b.ProviderID]; ok {
				view.Provider = u.Summary(false)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func sortNewestFirst(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
