package notification

import (
	"contracthub/models"

	"go.uber.org/zap"
)

// Service is the outbound notification collaborator. Delivery itself is
// outside this system; implementations must never fail a caller — a lost
// notification is logged, not propagated.
type Service interface {
	BookingCreated(booking *models.Booking)
	BookingStatusChanged(booking *models.Booking, previous models.BookingStatus)
	ReviewReceived(review *models.Review)
}

// LogNotifier is the default implementation: it records the event and leaves
// delivery to whatever ships logs downstream.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) BookingCreated(booking *models.Booking) {
	n.Logger.Info("notify: booking created",
		zap.String("bookingId", booking.ID),
		zap.String("contractorId", booking.ContractorID),
	)
}

func (n *LogNotifier) BookingStatusChanged(booking *models.Booking, previous models.BookingStatus) {
	n.Logger.Info("notify: booking status changed",
		zap.String("bookingId", booking.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(booking.Status)),
	)
}

func (n *LogNotifier) ReviewReceived(review *models.Review) {
	n.Logger.Info("notify: review received",
		zap.String("reviewId", review.ID),
		zap.String("contractorId", review.ContractorID),
		zap.Int("rating", review.Rating),
	)
}
