package providerRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/database"
	"sevagram/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a provider repository on the "providers" collection.
func NewMongoProviderRepo(db *mongo.Database) (ProviderRepository, error) {
	repo := &MongoProviderRepo{coll: db.Collection("providers")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// insertDefaults are written only when an upsert creates the profile.
func insertDefaults(now time.Time) bson.M {
	return bson.M{
		"id":        uuid.New().String(),
		"createdAt": now,
	}
}

func (r *MongoProviderRepo) Upsert(ctx context.Context, profile *models.ServiceProvider) (*models.ServiceProvider, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	onInsert := insertDefaults(now)
	onInsert["rating"] = 0.0
	onInsert["totalReviews"] = 0
	onInsert["completedJobs"] = 0
	onInsert["isVerified"] = false

	update := bson.M{
		"$set": bson.M{
			"serviceCategories": profile.ServiceCategories,
			"experience":        profile.Experience,
			"description":       profile.Description,
			"skills":            profile.Skills,
			"servingAreas":      profile.ServingAreas,
			"availability":      profile.Availability,
			"documents":         profile.Documents,
			"priceRange":        profile.PriceRange,
			"updatedAt":         now,
		},
		"$setOnInsert": onInsert,
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.ServiceProvider
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"userId": profile.UserID}, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to upsert provider profile for user %s: %w", profile.UserID, err)
	}
	return &saved, nil
}

func (r *MongoProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.ServiceProvider, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var profile models.ServiceProvider
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if database.IsNoDocuments(err) {
			return nil, fmt.Errorf("provider profile for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching provider profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *MongoProviderRepo) List(ctx context.Context, category models.ServiceCategory) ([]models.ServiceProvider, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["serviceCategories"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "totalReviews", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.ServiceProvider{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return profiles, nil
}
