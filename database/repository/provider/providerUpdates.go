package providerRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoProviderRepo) SetRatingSummary(ctx context.Context, userID string, summary models.RatingSummary) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	onInsert := insertDefaults(time.Now())
	onInsert["availability"] = models.Available
	onInsert["completedJobs"] = 0
	onInsert["isVerified"] = false
	onInsert["serviceCategories"] = []models.ServiceCategory{}

	update := bson.M{
		"$set": bson.M{
			"rating":       summary.Average,
			"totalReviews": summary.Total,
			"updatedAt":    time.Now(),
		},
		"$setOnInsert": onInsert,
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to update rating for provider %s: %w", userID, err)
	}
	return nil
}

func (r *MongoProviderRepo) SetVerified(ctx context.Context, userID string, verified bool) error {
	return r.updateWithOperator(ctx, userID, "$set", bson.M{"isVerified": verified, "updatedAt": time.Now()})
}

func (r *MongoProviderRepo) updateWithOperator(ctx context.Context, userID, operator string, updateDoc bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{operator: updateDoc}
	filter := bson.M{"userId": userID}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update provider profile for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider profile for user %s: %w", userID, models.ErrNotFound)
	}
	return nil
}
