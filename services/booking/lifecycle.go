package booking

import (
	"fmt"

	"contracthub/models"
	"contracthub/utils"

	"go.uber.org/zap"
)

// Transition advances a booking along the legal state graph.
//
// Validation order: the booking must exist, the actor must hold the
// capability for the target (clients may only cancel their own bookings;
// contractors drive accept/progress/complete/reject on bookings they own;
// admin bypasses ownership as a capability), and the target must be
// reachable from the current status. The status write itself is guarded on
// the status the decision was made against, so a concurrent transition
// surfaces as InvalidTransitionError instead of silently clobbering.
func (s *DefaultService) Transition(actor models.Actor, bookingID string, target models.BookingStatus) (*models.Booking, error) {
	if !target.Valid() {
		return nil, utils.NewValidationError("unknown booking status %q", string(target))
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}

	if err := s.authorizeTransition(actor, booking, target); err != nil {
		return nil, err
	}

	current := booking.Status
	if !current.CanTransitionTo(target) {
		return nil, &utils.InvalidTransitionError{From: string(current), To: string(target)}
	}

	matched, err := s.Bookings.UpdateStatusIf(bookingID, current, target)
	if err != nil {
		return nil, fmt.Errorf("failed to write status: %w", err)
	}
	if !matched {
		// Lost the race: re-read to report against the fresh status.
		fresh, err := s.Bookings.GetByID(bookingID)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, &utils.InvalidTransitionError{From: string(fresh.Status), To: string(target)}
	}

	previous := booking.Status
	booking.Status = target

	if target == models.BookingCompleted {
		// Atomic $inc at the storage layer; a failure here is reported but the
		// committed status write stays.
		if err := s.Contractors.IncrementJobCounters(booking.ContractorID, 1, 1); err != nil {
			s.Logger.Error("job counters not incremented after completion",
				zap.String("bookingId", booking.ID),
				zap.String("contractorId", booking.ContractorID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("booking completed but counters failed: %w", err)
		}
	}

	s.Notifier.BookingStatusChanged(booking, previous)
	s.Logger.Info("booking transitioned",
		zap.String("bookingId", booking.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(target)),
	)
	return booking, nil
}

// Cancel is the client-facing cancellation endpoint; semantically it is
// Transition to cancelled and shares every rule with it.
func (s *DefaultService) Cancel(actor models.Actor, bookingID string) (*models.Booking, error) {
	return s.Transition(actor, bookingID, models.BookingCancelled)
}

// UpdatePaymentStatus moves the payment axis. It is deliberately independent
// of the lifecycle status: any payment value is legal at any booking status,
// matching observed upstream behavior.
func (s *DefaultService) UpdatePaymentStatus(actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error) {
	if _, ok := models.ParsePaymentStatus(string(status)); !ok {
		return nil, utils.NewValidationError("unknown payment status %q", string(status))
	}

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
		return nil, &utils.AuthorizationError{Message: "not authorized to update payment for this booking"}
	}

	matched, err := s.Bookings.UpdatePaymentStatus(bookingID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to write payment status: %w", err)
	}
	if !matched {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	booking.PaymentStatus = status
	return booking, nil
}

// authorizeTransition checks capability, not state: clients may only cancel
// bookings they created, contractors act only on bookings addressed to their
// profile, admin passes everything.
func (s *DefaultService) authorizeTransition(actor models.Actor, booking *models.Booking, target models.BookingStatus) error {
	if actor.IsAdmin() {
		return nil
	}

	if target == models.BookingCancelled && booking.ClientID == actor.ID {
		return nil
	}

	contractor, err := s.Contractors.GetByUserID(actor.ID)
	if err != nil {
		return err
	}
	if contractor != nil && contractor.ID == booking.ContractorID {
		// Contractors may accept, progress, complete, or reject (=cancel).
		return nil
	}

	return &utils.AuthorizationError{Message: "not authorized to update this booking"}
}
