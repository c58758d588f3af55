package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sevagram/config"
	"sevagram/cron"
	"sevagram/database"
	bookingRepo "sevagram/database/repository/booking"
	catalogRepo "sevagram/database/repository/catalog"
	providerRepo "sevagram/database/repository/provider"
	reviewRepo "sevagram/database/repository/review"
	userRepoPkg "sevagram/database/repository/user"
	"sevagram/handlers"
	"sevagram/routes"
	"sevagram/services/admin"
	"sevagram/services/booking"
	"sevagram/services/catalog"
	"sevagram/services/provider"
	"sevagram/services/review"
	"sevagram/services/user"
	"sevagram/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := database.InitDB(rootCtx); err != nil {
		logger.Fatal("main: database init failed", zap.Error(err))
	}
	db := database.Database()

	// Catalog cache. Redis being down at boot degrades to no caching.
	var cache utils.Cache = utils.NoopCache{}
	var redisClient *redis.Client
	if config.AppConfig.CacheEnabled {
		client, err := utils.NewCacheClient(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisCacheDB)
		if err != nil {
			logger.Warn("main: redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			redisClient = client
			cache = utils.NewRedisCache(client, config.AppConfig.CacheTTL)
		}
	}
	utils.StartHealthMonitor(rootCtx, redisClient, database.MongoClient)

	// repositories.
	userRepo, err := userRepoPkg.NewMongoUserRepo(db)
	if err != nil {
		logger.Fatal("main: user repo", zap.Error(err))
	}
	catRepo, err := catalogRepo.NewMongoCatalogRepo(db)
	if err != nil {
		logger.Fatal("main: catalog repo", zap.Error(err))
	}
	bkRepo, err := bookingRepo.NewMongoBookingRepo(db)
	if err != nil {
		logger.Fatal("main: booking repo", zap.Error(err))
	}
	revRepo, err := reviewRepo.NewMongoReviewRepo(db)
	if err != nil {
		logger.Fatal("main: review repo", zap.Error(err))
	}
	provRepo, err := providerRepo.NewMongoProviderRepo(db)
	if err != nil {
		logger.Fatal("main: provider repo", zap.Error(err))
	}

	// services.
	tokens := utils.NewTokenIssuer(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	userService := user.NewUserService(userRepo, tokens)
	catalogService := catalog.NewCatalogService(catRepo, cache)
	bookingService := booking.NewBookingService(bkRepo, catRepo, userRepo, config.AppConfig.StrictTransitions)
	reviewService := review.NewReviewService(revRepo, bkRepo, provRepo)
	providerService := provider.NewProviderService(provRepo, userRepo)
	adminService := admin.NewAdminService(userRepo, catRepo, bkRepo, bookingService)

	if config.AppConfig.ReconcileEnabled {
		worker, err := cron.InitReconcileWorker(config.AppConfig, reviewService)
		if err != nil {
			logger.Fatal("main: reconcile worker", zap.Error(err))
		}
		defer worker.Shutdown()
	}

	handlerBundle := &handlers.HandlerBundle{
		Tokens:          tokens,
		Users:           userRepo,
		AuthHandler:     handlers.NewAuthHandler(userService),
		BookingHandler:  handlers.NewBookingHandler(bookingService),
		CatalogHandler:  handlers.NewCatalogHandler(catalogService),
		ReviewHandler:   handlers.NewReviewHandler(reviewService),
		ProviderHandler: handlers.NewProviderHandler(providerService),
		AdminHandler:    handlers.NewAdminHandler(adminService, providerService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.CORSOrigins, config.AppConfig.MaxRequestsPerMin)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.Bool("strictTransitions", config.AppConfig.StrictTransitions))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: mongo disconnect", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("main: server stopped gracefully")
}
