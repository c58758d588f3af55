package user

import (
	"context"

	userRepo "sevagram/database/repository/user"
	"sevagram/models"
	"sevagram/utils"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenIssuer
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenIssuer) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Tokens: tokens}
}
