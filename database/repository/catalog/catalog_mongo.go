package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/database"
	"sevagram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo(db *mongo.Database) (CatalogRepository, error) {
	repo := &MongoCatalogRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "isActive", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) Create(ctx context.Context, service *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) InsertMany(ctx context.Context, services []models.Service) error {
	if len(services) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(services))
	for i := range services {
		docs[i] = services[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert services: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if database.IsNoDocuments(err) {
			return nil, fmt.Errorf("service with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

func (r *MongoCatalogRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Service, error) {
	result := make(map[string]models.Service, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	services, err := r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		result[s.ID] = s
	}
	return result, nil
}

func (r *MongoCatalogRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *MongoCatalogRepo) ListActiveByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	return r.find(ctx, bson.M{"category": category, "isActive": true})
}

func (r *MongoCatalogRepo) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "isActive": true}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return fmt.Errorf("failed to deactivate service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("active service with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *MongoCatalogRepo) find(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}
