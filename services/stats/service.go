package stats

import (
	bookingRepo "contracthub/database/repository/booking"
	contractorRepo "contracthub/database/repository/contractor"
	reviewRepo "contracthub/database/repository/review"
	savedRepo "contracthub/database/repository/saved"
	"contracthub/models"

	"go.uber.org/zap"
)

// ClientStats summarizes a client's booking history. Every metric defaults
// to zero on an empty history.
type ClientStats struct {
	TotalBookings        int     `json:"totalBookings"`
	ActiveBookings       int     `json:"activeBookings"`
	CompletedBookings    int     `json:"completedBookings"`
	SavedContractors     int     `json:"savedContractors"`
	TotalSpent           float64 `json:"totalSpent"`
	AverageRatingGiven   float64 `json:"averageRating"`
	NewBookingsThisMonth int     `json:"newBookingsThisMonth"`
}

// DashboardStats are the headline numbers of the contractor dashboard.
type DashboardStats struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	MonthlyEarnings float64 `json:"monthlyEarnings"`
	CompletedJobs   int     `json:"completedJobs"`
	ActiveJobs      int     `json:"activeJobs"`
	PendingRequests int     `json:"pendingRequests"`
	AverageRating   float64 `json:"averageRating"`
	TotalReviews    int     `json:"totalReviews"`
}

// Dashboard is the contractor-facing aggregate view.
type Dashboard struct {
	Stats       DashboardStats   `json:"stats"`
	JobRequests []models.Booking `json:"jobRequests"`
	ActiveJobs  []models.Booking `json:"activeJobs"`
}

// EarningsPeriod selects the reporting window for an earnings report.
type EarningsPeriod string

const (
	PeriodMonth   EarningsPeriod = "month"
	PeriodQuarter EarningsPeriod = "quarter"
	PeriodYear    EarningsPeriod = "year"
)

// EarningsTransaction is one completed booking in an earnings report.
type EarningsTransaction struct {
	BookingID     string               `json:"bookingId"`
	Category      string               `json:"category"`
	Amount        float64              `json:"amount"`
	CompletedAt   string               `json:"completedAt"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

// EarningsReport summarizes a contractor's completed bookings over a period.
type EarningsReport struct {
	TotalEarnings  float64               `json:"totalEarnings"`
	PeriodEarnings float64               `json:"periodEarnings"`
	AveragePerJob  float64               `json:"averagePerJob"`
	PendingAmount  float64               `json:"pendingAmount"`
	JobCount       int                   `json:"jobCount"`
	Transactions   []EarningsTransaction `json:"transactions"`
}

// Service is the read-only aggregator over the booking and review ledgers.
// It never mutates anything.
type Service interface {
	ClientStats(actor models.Actor) (*ClientStats, error)
	ContractorDashboard(actor models.Actor) (*Dashboard, error)
	ContractorEarnings(actor models.Actor, period EarningsPeriod) (*EarningsReport, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Bookings    bookingRepo.BookingRepository
	Contractors contractorRepo.ContractorRepository
	Reviews     reviewRepo.ReviewRepository
	Saved       savedRepo.SavedContractorRepository
	Logger      *zap.Logger
}
