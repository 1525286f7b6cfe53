package models

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAccepted   BookingStatus = "accepted"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// bookingTransitions is the legal transition graph. Cancellation is reachable
// from every non-terminal state; completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingAccepted, BookingCancelled},
	BookingAccepted:   {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
	BookingCompleted:  {},
	BookingCancelled:  {},
}

// ParseBookingStatus validates a raw status string against the closed enum.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(raw)
	_, ok := bookingTransitions[s]
	return s, ok
}

// Valid reports whether the status is a member of the closed enum.
func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// Terminal reports whether no further transition is legal from this status.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// PaymentStatus tracks the payment axis of a booking. It is orthogonal to the
// lifecycle status: any value may be set at any booking status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ParsePaymentStatus validates a raw payment status string.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch PaymentStatus(raw) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return PaymentStatus(raw), true
	}
	return "", false
}

// PriceType is how a service offering is billed.
type PriceType string

const (
	PriceHourly PriceType = "hourly"
	PriceFixed  PriceType = "fixed"
	PriceDaily  PriceType = "daily"
)

// ParsePriceType validates a raw price type string.
func ParsePriceType(raw string) (PriceType, bool) {
	switch PriceType(raw) {
	case PriceHourly, PriceFixed, PriceDaily:
		return PriceType(raw), true
	}
	return "", false
}
