// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"sevagram/database"
	"sevagram/models"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("user with email %s or phone %s: %w", user.Email, user.Phone, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
