package bookingRepo

import (
	"time"

	"contracthub/models"
)

// ClientListOptions filters and pages a client's booking list.
type ClientListOptions struct {
	Status *models.BookingStatus // nil means every status
	Page   int
	Limit  int
}

// BookingRepository defines methods for booking data access. Bookings are
// never hard-deleted; cancellation is a status write.
// Lookup methods return (nil, nil) when no document matches.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListByClient returns a client's bookings ordered by scheduledDate
	// descending, plus the total count for the filter.
	ListByClient(clientID string, opts ClientListOptions) ([]models.Booking, int64, error)
	// ListAllByClient returns every booking a client has made, ordered by
	// scheduledDate descending. Read path for the stats aggregator.
	ListAllByClient(clientID string) ([]models.Booking, error)
	// ListByContractor returns a contractor's bookings, optionally restricted
	// to the given statuses, ordered newest-first by creation time.
	ListByContractor(contractorID string, statuses []models.BookingStatus) ([]models.Booking, error)
	// UpdateStatusIf conditionally advances the lifecycle status: the write
	// only applies while the stored status still equals from. It reports
	// whether a document was matched, so a stale read can never clobber a
	// concurrent transition.
	UpdateStatusIf(id string, from, to models.BookingStatus) (bool, error)
	// UpdatePaymentStatus sets the payment axis; it reports whether the
	// booking exists.
	UpdatePaymentStatus(id string, status models.PaymentStatus) (bool, error)
	// SetReviewSnapshot denormalizes an attached review onto the booking.
	SetReviewSnapshot(id string, snapshot models.ReviewSnapshot) error
	// CountClientCreatedSince counts a client's bookings created at or after
	// the given instant.
	CountClientCreatedSince(clientID string, since time.Time) (int64, error)
}
