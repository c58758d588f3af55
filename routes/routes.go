package routes

import (
	"net/http"
	"time"

	"sevagram/handlers"
	"sevagram/metrics"
	"sevagram/middleware"
	"sevagram/models"
	"sevagram/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and the current principal.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", hb.AuthHandler.RegisterHandler)
		auth.POST("/login", hb.AuthHandler.LoginHandler)
		auth.GET("/me", middleware.JWTAuthMiddleware(hb.Tokens, hb.Users), hb.AuthHandler.MeHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	bookings.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.Users))
	{
		bookings.POST("", hb.BookingHandler.CreateBookingHandler)
		bookings.GET("/my-bookings", hb.BookingHandler.MyBookingsHandler)

		bookings.GET("/provider-bookings", middleware.RequireRole(models.RoleProvider), hb.BookingHandler.ProviderBookingsHandler)
		bookings.GET("/provider-summary", middleware.RequireRole(models.RoleProvider), hb.BookingHandler.ProviderSummaryHandler)
		bookings.PUT("/:id/status", middleware.RequireRole(models.RoleProvider), hb.BookingHandler.UpdateStatusHandler)
		bookings.PUT("/:id/cancel", middleware.RequireRole(models.RoleCustomer), hb.BookingHandler.CancelBookingHandler)
		bookings.PUT("/:id/assign", middleware.RequireRole(models.RoleAdmin), hb.BookingHandler.AssignProviderHandler)
		bookings.PUT("/:id/payment", middleware.RequireRole(models.RoleAdmin), hb.AdminHandler.SetPaymentStatusHandler)
	}
}

// RegisterCatalogRoutes registers the public catalog reads and admin writes.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	services := api.Group("/services")
	{
		services.GET("", hb.CatalogHandler.ListServicesHandler)
		services.GET("/category/:category", hb.CatalogHandler.ServicesByCategoryHandler)
		services.GET("/:id", hb.CatalogHandler.GetServiceHandler)

		admin := services.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.Users), middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.CatalogHandler.CreateServiceHandler)
		admin.DELETE("/:id", hb.CatalogHandler.DeleteServiceHandler)
	}
}

func RegisterReviewRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	reviews := api.Group("/reviews")
	{
		reviews.GET("/provider/:providerId", hb.ReviewHandler.ProviderReviewsHandler)
		reviews.POST("",
			middleware.JWTAuthMiddleware(hb.Tokens, hb.Users),
			middleware.RequireRole(models.RoleCustomer),
			hb.ReviewHandler.CreateReviewHandler)
	}
}

func RegisterProviderRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	providers := api.Group("/providers")
	{
		providers.GET("", hb.ProviderHandler.ListProvidersHandler)
		providers.PUT("/me",
			middleware.JWTAuthMiddleware(hb.Tokens, hb.Users),
			middleware.RequireRole(models.RoleProvider),
			hb.ProviderHandler.UpsertOwnProfileHandler)
		providers.GET("/:userId", hb.ProviderHandler.GetProviderHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.Users), middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		adminGroup.GET("/bookings", hb.AdminHandler.GetAllBookingsHandler)
		adminGroup.GET("/stats", hb.AdminHandler.StatsHandler)
		adminGroup.PUT("/providers/:userId/verify", hb.AdminHandler.VerifyProviderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "SevaGram API is running", "dependencies": utils.GetHealthStatus()})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, corsOrigins []string, maxRequestsPerMin int) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(corsOrigins)))
	r.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	RegisterAuthRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterReviewRoutes(api, hb)
	RegisterProviderRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Credentials cannot be combined with a wildcard origin.
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
