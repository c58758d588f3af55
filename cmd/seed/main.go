// Command seed creates the bootstrap admin account and loads the default service catalog.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"sevagram/config"
	"sevagram/database"
	catalogRepo "sevagram/database/repository/catalog"
	userRepoPkg "sevagram/database/repository/user"
	"sevagram/models"
	"sevagram/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminEmail = "admin@sevagram.com"

func main() {
	withAdmin := flag.Bool("admin", true, "create the admin account if missing")
	withServices := flag.Bool("services", true, "load the default service catalog")
	reset := flag.Bool("reset", false, "remove existing services before loading")
	adminPassword := flag.String("admin-password", "admin123", "initial admin password")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.InitDB(ctx); err != nil {
		logger.Fatal("seed: database init failed", zap.Error(err))
	}
	defer database.Close(context.Background())
	db := database.Database()

	if *withAdmin {
		users, err := userRepoPkg.NewMongoUserRepo(db)
		if err != nil {
			logger.Fatal("seed: user repo", zap.Error(err))
		}
		if err := seedAdmin(ctx, users, *adminPassword); err != nil {
			logger.Fatal("seed: admin", zap.Error(err))
		}
	}

	if *withServices {
		if *reset {
			res, err := db.Collection("services").DeleteMany(ctx, bson.M{})
			if err != nil {
				logger.Fatal("seed: clearing services", zap.Error(err))
			}
			logger.Info("Cleared existing services", zap.Int64("deleted", res.DeletedCount))
		}
		catalog, err := catalogRepo.NewMongoCatalogRepo(db)
		if err != nil {
			logger.Fatal("seed: catalog repo", zap.Error(err))
		}
		services := catalogSeed(time.Now().UTC())
		if err := catalog.InsertMany(ctx, services); err != nil {
			logger.Fatal("seed: inserting services", zap.Error(err))
		}
		logger.Info("Seeded services", zap.Int("count", len(services)))
	}
}

func seedAdmin(ctx context.Context, users userRepoPkg.UserRepository, password string) error {
	_, err := users.GetByEmailWithCredential(ctx, adminEmail)
	if err == nil {
		utils.GetLogger().Info("Admin already exists", zap.String("email", adminEmail))
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		ID:           uuid.New().String(),
		Name:         "Admin User",
		Email:        adminEmail,
		Phone:        "1234567890",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Address: models.Address{
			Village:  "Admin Village",
			District: "Admin District",
			State:    "Admin State",
			Pincode:  "000000",
		},
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	utils.GetLogger().Warn("Admin created with the initial password, change it after first login", zap.String("email", adminEmail))
	return nil
}

func catalogSeed(now time.Time) []models.Service {
	out := make([]models.Service, 0, len(seedServices))
	for _, s := range seedServices {
		out = append(out, models.Service{
			ID:          uuid.New().String(),
			Name:        s.name,
			Category:    s.category,
			Description: s.description,
			Icon:        s.icon,
			BasePrice:   s.price,
			Duration:    s.duration,
			IsActive:    true,
			CreatedAt:   now,
		})
	}
	return out
}
