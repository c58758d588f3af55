package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/database"
	"sevagram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.reviewColl.InsertOne(ctx, review); err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("review for booking %s: %w", review.BookingID, models.ErrDuplicate)
		}
		return fmt.Errorf("error creating review: %w", err)
	}
	return nil
}

func (repo *MongoReviewRepo) RatingsForProvider(ctx context.Context, providerID string) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"rating": 1, "_id": 0})
	cursor, err := repo.reviewColl.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching ratings: %w", err)
	}
	defer cursor.Close(ctx)

	ratings := []int{}
	for cursor.Next(ctx) {
		var doc struct {
			Rating int `bson:"rating"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding rating: %w", err)
		}
		ratings = append(ratings, doc.Rating)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ratings, nil
}

func (repo *MongoReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.reviewColl.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}

func (repo *MongoReviewRepo) DistinctProviderIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	values, err := repo.reviewColl.Distinct(ctx, "providerId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching reviewed providers: %w", err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
