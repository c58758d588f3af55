package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"sevagram/models"
)

// memBookingRepo is an in-memory BookingRepository with the same versioning rules as the Mongo one.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newMemBookingRepo(seed ...models.Booking) *memBookingRepo {
	r := &memBookingRepo{bookings: map[string]models.Booking{}}
	for _, b := range seed {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; ok {
		return models.ErrDuplicate
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &b, nil
}

func (r *memBookingRepo) list(keep func(models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Booking{}
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *memBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.ProviderID != nil && *b.ProviderID == providerID }), nil
}

func (r *memBookingRepo) ListAll(context.Context) ([]models.Booking, error) {
	return r.list(func(models.Booking) bool { return true }), nil
}

func (r *memBookingRepo) ApplyChanges(_ context.Context, id string, expectedVersion int64, c models.BookingChanges) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if b.Version != expectedVersion {
		return nil, models.ErrVersionConflict
	}
	if c.Status != nil {
		b.Status = *c.Status
	}
	if c.ProviderID != nil {
		p := *c.ProviderID
		b.ProviderID = &p
	}
	if c.FinalPrice != nil {
		f := *c.FinalPrice
		b.FinalPrice = &f
	}
	if c.PaymentStatus != nil {
		b.PaymentStatus = *c.PaymentStatus
	}
	if c.CompletedAt != nil {
		t := *c.CompletedAt
		b.CompletedAt = &t
	} else if c.ClearCompletedAt {
		b.CompletedAt = nil
	}
	if c.CancellationReason != nil {
		b.CancellationReason = *c.CancellationReason
	}
	b.Version++
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return &b, nil
}
