package userRepo

import (
	"context"

	"sevagram/models"
)

// UserRepository defines methods for user data access.
// Every read except GetByEmailWithCredential excludes the password hash.
type UserRepository interface {
	// Create inserts a new user record. Returns models.ErrDuplicate when email or phone is taken.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmailWithCredential retrieves a user by email including the password hash.
	GetByEmailWithCredential(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users, newest first.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByIDs retrieves the users with the given IDs keyed by ID. Unknown IDs are skipped.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
}
