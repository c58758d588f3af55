package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/database"
	"sevagram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if database.IsNoDocuments(err) {
			return nil, fmt.Errorf("booking %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &booking, nil
}

// ApplyChanges performs the versioned conditional write used by every booking mutation.
func (repo *MongoBookingRepo) ApplyChanges(ctx context.Context, id string, expectedVersion int64, changes models.BookingChanges) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if changes.Status != nil {
		set["status"] = *changes.Status
	}
	if changes.ProviderID != nil {
		set["providerId"] = *changes.ProviderID
	}
	if changes.FinalPrice != nil {
		set["finalPrice"] = *changes.FinalPrice
	}
	if changes.PaymentStatus != nil {
		set["paymentStatus"] = *changes.PaymentStatus
	}
	if changes.CompletedAt != nil {
		set["completedAt"] = *changes.CompletedAt
	}
	if changes.CancellationReason != nil {
		set["cancellationReason"] = *changes.CancellationReason
	}

	filter := bson.M{"id": id, "version": expectedVersion}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	if changes.ClearCompletedAt && changes.CompletedAt == nil {
		update["$unset"] = bson.M{"completedAt": ""}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := repo.bookingColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !database.IsNoDocuments(err) {
		return nil, fmt.Errorf("error updating booking %s: %w", id, err)
	}

	// Nothing matched: either the booking is gone or its version moved on.
	count, cerr := repo.bookingColl.CountDocuments(ctx, bson.M{"id": id})
	if cerr != nil {
		return nil, fmt.Errorf("error checking booking %s: %w", id, cerr)
	}
	if count == 0 {
		return nil, fmt.Errorf("booking %s: %w", id, models.ErrNotFound)
	}
	return nil, fmt.Errorf("booking %s at version %d: %w", id, expectedVersion, models.ErrVersionConflict)
}
