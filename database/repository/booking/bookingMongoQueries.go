package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"customerId": customerID})
}

func (repo *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"providerId": providerID})
}

func (repo *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
