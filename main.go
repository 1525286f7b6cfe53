// File: contracthub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contracthub/config"
	"contracthub/database"
	bookingRepoPkg "contracthub/database/repository/booking"
	contractorRepoPkg "contracthub/database/repository/contractor"
	reviewRepoPkg "contracthub/database/repository/review"
	savedRepoPkg "contracthub/database/repository/saved"
	userRepoPkg "contracthub/database/repository/user"
	"contracthub/handlers"
	"contracthub/middleware"
	"contracthub/routes"
	"contracthub/services/account"
	"contracthub/services/booking"
	"contracthub/services/notification"
	"contracthub/services/rating"
	"contracthub/services/saved"
	"contracthub/services/search"
	"contracthub/services/stats"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	for name, ensure := range map[string]func() error{
		"users":             userRepoPkg.EnsureIndexes,
		"contractors":       contractorRepoPkg.EnsureIndexes,
		"bookings":          bookingRepoPkg.EnsureIndexes,
		"reviews":           reviewRepoPkg.EnsureIndexes,
		"saved_contractors": savedRepoPkg.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	contractorRepo := contractorRepoPkg.NewMongoContractorRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	savedRepo := savedRepoPkg.NewMongoSavedContractorRepo()

	// services.
	notifier := &notification.LogNotifier{Logger: logger}

	ratingAggregator := &rating.DefaultAggregator{
		Reviews:     reviewRepo,
		Contractors: contractorRepo,
		Logger:      logger,
	}

	bookingService := &booking.DefaultService{
		Bookings:    bookingRepo,
		Contractors: contractorRepo,
		Reviews:     reviewRepo,
		Rating:      ratingAggregator,
		Notifier:    notifier,
		Logger:      logger,
	}

	searchService := &search.DefaultService{
		Repo:   contractorRepo,
		Logger: logger,
	}

	statsService := &stats.DefaultService{
		Bookings:    bookingRepo,
		Contractors: contractorRepo,
		Reviews:     reviewRepo,
		Saved:       savedRepo,
		Logger:      logger,
	}

	savedService := &saved.DefaultService{
		Saved:       savedRepo,
		Contractors: contractorRepo,
	}

	accountService := &account.DefaultService{
		Users:       userRepo,
		Contractors: contractorRepo,
		Logger:      logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Reviews:  reviewRepo,
		Bookings: bookingService,
		Search:   searchService,
		Stats:    statsService,
		Saved:    savedService,
		Accounts: accountService,
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
