// File: database/repository/user/userMongoQueries.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/database"
	"sevagram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a user by its ID without the credential.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(safeProjection)
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user); err != nil {
		if database.IsNoDocuments(err) {
			return nil, fmt.Errorf("user with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmailWithCredential is the only read that returns the password hash.
func (r *MongoUserRepo) GetByEmailWithCredential(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if database.IsNoDocuments(err) {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll retrieves all users newest first, excluding sensitive fields.
func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{})
}

// GetByIDs retrieves the users with the given IDs keyed by ID.
func (r *MongoUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	result := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	users, err := r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

func (r *MongoUserRepo) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(safeProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return users, nil
}
