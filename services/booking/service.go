package booking

import (
	"fmt"
	"time"

	bookingRepo "contracthub/database/repository/booking"
	"contracthub/models"
	"contracthub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the input, snapshots the service details, and persists a
// new booking in pending. Contractor counters are untouched here; they only
// move on completion.
func (s *DefaultService) Create(actor models.Actor, input models.BookingInput) (*models.Booking, error) {
	if actor.Role != models.RoleClient && !actor.IsAdmin() {
		return nil, &utils.AuthorizationError{Message: "only clients may create bookings"}
	}
	if input.ContractorID == "" {
		return nil, utils.NewValidationError("contractorId is required")
	}
	if input.ServiceDetails.Category == "" {
		return nil, utils.NewValidationError("serviceDetails.category is required")
	}
	if _, ok := models.ParsePriceType(string(input.ServiceDetails.PriceType)); !ok {
		return nil, utils.NewValidationError("serviceDetails.priceType must be hourly, fixed or daily")
	}
	if input.TotalAmount <= 0 {
		return nil, utils.NewValidationError("totalAmount must be a positive number")
	}
	if input.ScheduledDate.IsZero() {
		return nil, utils.NewValidationError("scheduledDate is required")
	}

	contractor, err := s.Contractors.GetByID(input.ContractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor: %w", err)
	}
	if contractor == nil {
		return nil, &utils.NotFoundError{Resource: "contractor", ID: input.ContractorID}
	}
	// Active-at-creation only; the flag is not re-validated on later
	// transitions.
	if !contractor.IsActive {
		return nil, utils.NewValidationError("contractor %s is not accepting bookings", input.ContractorID)
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:                uuid.New().String(),
		ClientID:          actor.ID,
		ContractorID:      contractor.ID,
		ServiceDetails:    input.ServiceDetails,
		ScheduledDate:     input.ScheduledDate,
		ScheduledTime:     input.ScheduledTime,
		EstimatedDuration: input.EstimatedDuration,
		Status:            models.BookingPending,
		ClientAddress:     input.ClientAddress,
		Notes:             input.Notes,
		TotalAmount:       input.TotalAmount,
		PaymentStatus:     models.PaymentPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Notifier.BookingCreated(booking)
	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("clientId", booking.ClientID),
		zap.String("contractorId", booking.ContractorID),
	)
	return booking, nil
}

// Get enforces view authorization: the booking's client, the contractor who
// owns it, or an admin.
func (s *DefaultService) Get(actor models.Actor, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	ok, err := s.actorOwnsBooking(actor, booking)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &utils.AuthorizationError{Message: "not authorized to view this booking"}
	}
	return booking, nil
}

func (s *DefaultService) ListForClient(actor models.Actor, opts bookingRepo.ClientListOptions) ([]models.Booking, int64, error) {
	return s.Bookings.ListByClient(actor.ID, opts)
}

func (s *DefaultService) ListJobRequests(actor models.Actor) ([]models.Booking, error) {
	contractor, err := s.Contractors.GetByUserID(actor.ID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, &utils.NotFoundError{Resource: "contractor profile"}
	}
	return s.Bookings.ListByContractor(contractor.ID, []models.BookingStatus{models.BookingPending})
}

// actorOwnsBooking reports whether the actor is the booking's client, the
// user behind its contractor, or an admin.
func (s *DefaultService) actorOwnsBooking(actor models.Actor, booking *models.Booking) (bool, error) {
	if actor.IsAdmin() || booking.ClientID == actor.ID {
		return true, nil
	}
	contractor, err := s.Contractors.GetByUserID(actor.ID)
	if err != nil {
		return false, err
	}
	return contractor != nil && contractor.ID == booking.ContractorID, nil
}
