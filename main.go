// File: tourmate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourmate/config"
	"tourmate/database"
	cityRepoPkg "tourmate/database/repository/city"
	destinationRepoPkg "tourmate/database/repository/destination"
	hotelRepoPkg "tourmate/database/repository/hotel"
	itineraryRepoPkg "tourmate/database/repository/itinerary"
	reviewRepoPkg "tourmate/database/repository/review"
	safetyRepoPkg "tourmate/database/repository/safety"
	stateRepoPkg "tourmate/database/repository/state"
	userRepoPkg "tourmate/database/repository/user"
	"tourmate/handlers"
	"tourmate/middleware"
	"tourmate/routes"
	"tourmate/services/admin"
	"tourmate/services/budget"
	"tourmate/services/catalog"
	"tourmate/services/intelligence"
	itinerarySvc "tourmate/services/itinerary"
	"tourmate/services/notification"
	"tourmate/services/otp"
	reviewSvc "tourmate/services/review"
	userSvc "tourmate/services/user"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	otpStore := utils.GetOTPCacheClient()

	// Cloudinary is optional in development; the upload endpoints report
	// unavailability when it is not configured.
	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	cityRepo := cityRepoPkg.NewMongoCityRepo()
	stateRepo := stateRepoPkg.NewMongoStateRepo()
	destinationRepo := destinationRepoPkg.NewMongoDestinationRepo()
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	safetyRepo := safetyRepoPkg.NewMongoSafetyReviewRepo()
	itineraryRepo := itineraryRepoPkg.NewMongoItineraryRepo()

	// Services.
	mailer := notification.NewBrevoMailer()
	otpService := &otp.DefaultOTPService{
		Store:  otpStore,
		Mailer: mailer,
	}
	userService := &userSvc.DefaultUserService{
		Repo:     userRepo,
		Verifier: otpService,
	}
	destinationService := &catalog.DefaultDestinationService{
		Repo:   destinationRepo,
		Cities: cityRepo,
	}
	hotelService := &catalog.DefaultHotelService{
		Repo:   hotelRepo,
		Cities: cityRepo,
	}
	cityService := &catalog.DefaultCityService{
		Cities: cityRepo,
		States: stateRepo,
	}
	reviewService := &reviewSvc.DefaultReviewService{
		Reviews:      reviewRepo,
		Safety:       safetyRepo,
		Destinations: destinationRepo,
		Hotels:       hotelRepo,
	}
	itineraryService := &itinerarySvc.DefaultItineraryService{
		Repo:         itineraryRepo,
		Destinations: destinationRepo,
		Hotels:       hotelRepo,
	}
	budgetService := &budget.DefaultBudgetService{
		Cities: cityRepo,
	}
	adminService := &admin.DefaultAdminService{
		Destinations: destinationService,
		Hotels:       hotelService,
		Reviews:      reviewRepo,
	}

	// Gemini-backed plan explanations are optional; the endpoint reports
	// unavailability when no API key is configured.
	var explainer intelligence.ExplainerService
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiClient, err := intelligence.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Warnf("main: plan explanations disabled: %v", err)
		} else {
			explainer = &intelligence.DefaultExplainerService{Generator: geminiClient}
		}
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth: &handlers.AuthHandler{UserService: userService},
		OTP:  &handlers.OTPHandler{OTPService: otpService},
		Catalog: &handlers.CatalogHandler{
			Destinations: destinationService,
			Hotels:       hotelService,
			Cities:       cityService,
		},
		Review:    &handlers.ReviewHandler{Service: reviewService},
		Itinerary: &handlers.ItineraryHandler{Service: itineraryService},
		Budget: &handlers.BudgetHandler{
			Budget:    budgetService,
			Explainer: explainer,
		},
		Admin:   &handlers.AdminHandler{Service: adminService},
		Storage: &handlers.StorageHandler{StorageSvc: storageService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
