package booking

import (
	bookingRepo "contracthub/database/repository/booking"
	contractorRepo "contracthub/database/repository/contractor"
	reviewRepo "contracthub/database/repository/review"
	"contracthub/models"
	"contracthub/services/notification"
	"contracthub/services/rating"

	"go.uber.org/zap"
)

// Service owns the booking lifecycle: creation, role-gated status
// transitions, the orthogonal payment axis, and review attachment. Every
// operation takes the acting principal explicitly.
type Service interface {
	// Create opens a new booking in pending against an active contractor.
	Create(actor models.Actor, input models.BookingInput) (*models.Booking, error)
	// Get returns a booking visible to its client, its contractor, or an admin.
	Get(actor models.Actor, bookingID string) (*models.Booking, error)
	// ListForClient returns the actor's bookings, scheduledDate descending.
	ListForClient(actor models.Actor, opts bookingRepo.ClientListOptions) ([]models.Booking, int64, error)
	// ListJobRequests returns pending bookings for the actor's contractor
	// profile, newest-first.
	ListJobRequests(actor models.Actor) ([]models.Booking, error)
	// Transition advances the lifecycle status under the legal transition
	// graph, enforcing actor capability and serializing concurrent writes.
	Transition(actor models.Actor, bookingID string, target models.BookingStatus) (*models.Booking, error)
	// Cancel is the client-facing cancellation path; it is Transition to
	// cancelled.
	Cancel(actor models.Actor, bookingID string) (*models.Booking, error)
	// UpdatePaymentStatus sets the payment axis, independent of lifecycle
	// status.
	UpdatePaymentStatus(actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error)
	// AttachReview records the one review a completed booking may carry and
	// triggers the rating recompute.
	AttachReview(actor models.Actor, input models.ReviewInput) (*models.Review, error)
}

// DefaultService is the production implementation of Service.
type DefaultService struct {
	Bookings    bookingRepo.BookingRepository
	Contractors contractorRepo.ContractorRepository
	Reviews     reviewRepo.ReviewRepository
	Rating      rating.Aggregator
	Notifier    notification.Service
	Logger      *zap.Logger
}
