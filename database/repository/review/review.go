package reviewRepo

import "contracthub/models"

// RatingSummary is the result of a full recompute over a contractor's
// review ledger.
type RatingSummary struct {
	Average float64
	Count   int
}

// ReviewRepository defines methods for review data access. Reviews are
// created once and never updated or deleted.
// Lookup methods return (nil, nil) when no document matches.
type ReviewRepository interface {
	// Create inserts a new review. The bookingId unique index backs the
	// one-review-per-booking invariant; IsDuplicate recognizes its violation.
	Create(review *models.Review) error
	// IsDuplicate reports whether err is the unique-index violation raised by
	// Create for an already-reviewed booking.
	IsDuplicate(err error) bool
	// GetByBookingID retrieves the review attached to a booking, if any.
	GetByBookingID(bookingID string) (*models.Review, error)
	// ListByContractor returns a contractor's reviews newest-first, paginated,
	// plus the total count.
	ListByContractor(contractorID string, page, limit int) ([]models.Review, int64, error)
	// ListByClient returns every review a client has written, newest-first.
	ListByClient(clientID string) ([]models.Review, error)
	// Summarize recomputes the rating aggregate from all reviews referencing
	// the contractor. A contractor with no reviews summarizes to {0, 0}.
	Summarize(contractorID string) (RatingSummary, error)
}
