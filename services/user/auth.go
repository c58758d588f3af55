package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"sevagram/models"
	"sevagram/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a customer or provider account and signs them in.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := normalizeRegistration(&req); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, utils.NewInternalError("Registration failed, please try again", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Address:      req.Address,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, &user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, utils.NewConflictError("A user with this email or phone already exists", err)
		}
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return nil, utils.NewInternalError("Registration failed, please try again", err)
	}

	return s.issue(user)
}

// Authenticate verifies email and password and returns a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := utils.ValidateRequest(&req); err != nil {
		return nil, err
	}
	email := req.Email

	user, err := s.Repo.GetByEmailWithCredential(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewUnauthorizedError("Invalid credentials")
		}
		return nil, utils.NewInternalError("Server Error", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.NewUnauthorizedError("Invalid credentials")
	}
	if !user.IsActive {
		return nil, utils.NewForbiddenError("Account is deactivated")
	}
	return s.issue(*user)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError("Server Error", err)
	}
	return user, nil
}

func (s *DefaultUserService) issue(user models.User) (*models.AuthResponse, error) {
	token, err := s.Tokens.GenerateToken(user)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.String("userId", user.ID), zap.Error(err))
		return nil, utils.NewInternalError("Server Error", err)
	}
	user.PasswordHash = ""
	return &models.AuthResponse{Token: token, User: user}, nil
}
