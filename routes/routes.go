package routes

import (
	"net/http"
	"time"

	"tourmate/handlers"
	"tourmate/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/admin/login", hb.Auth.AdminLoginHandler)

		// Protected routes (Require Authentication)
		api.GET("/me", middleware.AuthRequired(), hb.Auth.MeHandler)
	}
}

// RegisterOTPRoutes registers email verification endpoints.
func RegisterOTPRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/otp")
	{
		api.POST("/send", hb.OTP.SendOTPHandler)
		api.POST("/verify", hb.OTP.VerifyOTPHandler)
	}
}

// RegisterCatalogRoutes registers destination, hotel, city and state endpoints.
// Reads are public; writes require admin privileges.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	destinations := r.Group("/api/destinations")
	{
		destinations.GET("", hb.Catalog.ListDestinationsHandler)
		destinations.GET("/:id", hb.Catalog.GetDestinationHandler)
		destinations.POST("", middleware.AdminRequired(), hb.Catalog.CreateDestinationHandler)
		destinations.PUT("/:id", middleware.AdminRequired(), hb.Catalog.UpdateDestinationHandler)
		destinations.DELETE("/:id", middleware.AdminRequired(), hb.Catalog.DeleteDestinationHandler)
	}

	hotels := r.Group("/api/hotels")
	{
		hotels.GET("", hb.Catalog.ListHotelsHandler)
		hotels.GET("/:id", hb.Catalog.GetHotelHandler)
		hotels.POST("", middleware.AdminRequired(), hb.Catalog.CreateHotelHandler)
		hotels.PUT("/:id", middleware.AdminRequired(), hb.Catalog.UpdateHotelHandler)
		hotels.DELETE("/:id", middleware.AdminRequired(), hb.Catalog.DeleteHotelHandler)
	}

	cities := r.Group("/api/cities")
	{
		cities.GET("", hb.Catalog.ListCitiesHandler)
		cities.GET("/:id", hb.Catalog.GetCityHandler)
		cities.POST("", middleware.AdminRequired(), hb.Catalog.CreateCityHandler)
		cities.PUT("/:id", middleware.AdminRequired(), hb.Catalog.UpdateCityHandler)
		cities.DELETE("/:id", middleware.AdminRequired(), hb.Catalog.DeleteCityHandler)
	}

	states := r.Group("/api/states")
	{
		states.GET("", hb.Catalog.ListStatesHandler)
		states.POST("", middleware.AdminRequired(), hb.Catalog.CreateStateHandler)
	}
}

// RegisterReviewRoutes registers review and safety-review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	reviews := r.Group("/api/reviews")
	{
		reviews.GET("/:targetType/:targetId", hb.Review.ListReviewsHandler)
		reviews.POST("", middleware.AuthRequired(), hb.Review.CreateReviewHandler)
	}

	safety := r.Group("/api/safety-reviews")
	{
		safety.GET("/:destinationId", hb.Review.ListSafetyReviewsHandler)
		safety.POST("", middleware.AuthRequired(), hb.Review.CreateSafetyReviewHandler)
	}
}

// RegisterItineraryRoutes registers the itinerary aggregate endpoints. Every
// route requires authentication; ownership is enforced in the service layer.
func RegisterItineraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itineraries")
	{
		api.Use(middleware.AuthRequired())
		api.GET("", hb.Itinerary.ListHandler)
		api.POST("", hb.Itinerary.CreateHandler)
		api.GET("/:id", hb.Itinerary.GetHandler)
		api.PUT("/:id", hb.Itinerary.UpdateHandler)
		api.DELETE("/:id", hb.Itinerary.DeleteHandler)
		api.POST("/:id/items", hb.Itinerary.AddItemHandler)
		api.PUT("/:id/items/:itemId", hb.Itinerary.UpdateItemHandler)
		api.DELETE("/:id/items/:itemId", hb.Itinerary.DeleteItemHandler)
	}
}

// RegisterBudgetRoutes registers budget planning endpoints.
func RegisterBudgetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/budget")
	{
		api.POST("/plan", hb.Budget.PlanHandler)
		api.POST("/explain", middleware.AuthRequired(), hb.Budget.ExplainHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminRequired())
		adminGroup.POST("/map-pin", hb.Admin.CreateMapPinHandler)
		adminGroup.GET("/hidden-gems", hb.Admin.HiddenGemsHandler)
		adminGroup.GET("/reviews/pending", hb.Admin.PendingReviewsHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	uploads := r.Group("/api/uploads")
	{
		uploads.Use(middleware.AdminRequired())
		uploads.POST("/image", hb.Storage.UploadImageHandler)
		// Wildcard: Cloudinary public IDs contain the folder path.
		uploads.DELETE("/image/*publicId", hb.Storage.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TourMate"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterOTPRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterItineraryRoutes(r, hb)
	RegisterBudgetRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
