package routes

import (
	"net/http"
	"time"

	"contracthub/handlers"
	"contracthub/middleware"
	"contracthub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Register)
		api.POST("/login", hb.Login)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleClient), hb.CreateBooking)
		api.GET("/client", middleware.RequireRole(models.RoleClient), hb.ListClientBookings)
		api.GET("/contractor", middleware.RequireRole(models.RoleContractor), hb.ListJobRequests)
		api.GET("/:id", hb.GetBooking)
		api.PUT("/:id/status", hb.UpdateBookingStatus)
		api.PUT("/:id/payment-status", hb.UpdatePaymentStatus)
		api.DELETE("/:id", hb.CancelBooking)
	}
}

// RegisterSearchRoutes sets up the public contractor discovery endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("/contractors", hb.SearchContractors)
	}
}

// RegisterReviewRoutes sets up review submission and reads.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/contractor/:id", hb.ListContractorReviews)

		api.Use(middleware.RequireAuth(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleClient), hb.CreateReview)
		api.GET("/client", middleware.RequireRole(models.RoleClient), hb.ListMyReviews)
	}
}

// RegisterClientRoutes sets up client-side aggregates and bookmarks.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/client")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo), middleware.RequireRole(models.RoleClient))
		api.GET("/stats", hb.ClientStats)
		api.GET("/saved-contractors", hb.ListSavedContractors)
		api.POST("/saved-contractors", hb.SaveContractor)
		api.DELETE("/saved-contractors/:contractorId", hb.RemoveSavedContractor)
	}
}

// RegisterContractorRoutes sets up the contractor dashboard and earnings.
func RegisterContractorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contractor")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo), middleware.RequireRole(models.RoleContractor))
		api.GET("/dashboard", hb.ContractorDashboard)
		api.GET("/earnings", hb.ContractorEarnings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterContractorRoutes(r, hb)
	RegisterHealthRoute(r)
}
