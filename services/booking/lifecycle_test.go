package booking

import (
	"testing"

	"contracthub/models"
	"contracthub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPathWithReview(t *testing.T) {
	f := newFixture()
	b := f.createBooking(150)
	require.Equal(t, models.BookingPending, b.Status)
	require.Equal(t, models.PaymentPending, b.PaymentStatus)

	for _, target := range []models.BookingStatus{
		models.BookingAccepted,
		models.BookingInProgress,
		models.BookingCompleted,
	} {
		updated, err := f.svc.Transition(f.contractor, b.ID, target)
		require.NoError(t, err, "transition to %s", target)
		assert.Equal(t, target, updated.Status)
	}

	contractor, err := f.contractors.GetByID(f.contractorID)
	require.NoError(t, err)
	assert.Equal(t, 1, contractor.CompletedJobs)
	assert.Equal(t, 1, contractor.TotalJobs)

	review, err := f.svc.AttachReview(f.client, models.ReviewInput{
		BookingID: b.ID,
		Rating:    5,
		Comment:   "spotless work",
	})
	require.NoError(t, err)
	assert.True(t, review.WouldRecommend)

	contractor, err = f.contractors.GetByID(f.contractorID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, contractor.Rating.Average)
	assert.Equal(t, 1, contractor.Rating.Count)

	stored, err := f.bookings.GetByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ClientRating)
	assert.Equal(t, 5, stored.ClientRating.Rating)
}

func TestTransitionSkippingStateRejected(t *testing.T) {
	f := newFixture()
	b := f.createBooking(80)

	var transitionErr *utils.InvalidTransitionError
	_, err := f.svc.Transition(f.contractor, b.ID, models.BookingCompleted)
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "pending", transitionErr.From)
	assert.Equal(t, "completed", transitionErr.To)

	stored, err := f.bookings.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestTransitionByForeignClientFails(t *testing.T) {
	f := newFixture()
	b := f.createBooking(60)

	stranger := models.Actor{ID: "client-2", Role: models.RoleClient}
	var authErr *utils.AuthorizationError
	_, err := f.svc.Transition(stranger, b.ID, models.BookingAccepted)
	require.ErrorAs(t, err, &authErr)

	// The owning client holds no accept capability either.
	_, err = f.svc.Transition(f.client, b.ID, models.BookingAccepted)
	require.ErrorAs(t, err, &authErr)
}

func TestClientCancelsOwnPendingBooking(t *testing.T) {
	f := newFixture()
	b := f.createBooking(60)

	cancelled, err := f.svc.Cancel(f.client, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	f := newFixture()
	b := f.createBooking(150)
	for _, target := range []models.BookingStatus{
		models.BookingAccepted,
		models.BookingInProgress,
		models.BookingCompleted,
	} {
		_, err := f.svc.Transition(f.contractor, b.ID, target)
		require.NoError(t, err)
	}

	var transitionErr *utils.InvalidTransitionError
	_, err := f.svc.Cancel(f.client, b.ID)
	require.ErrorAs(t, err, &transitionErr)

	stored, err := f.bookings.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestTerminalStatesAcceptNoTransition(t *testing.T) {
	f := newFixture()
	b := f.createBooking(90)
	_, err := f.svc.Cancel(f.client, b.ID)
	require.NoError(t, err)

	for _, target := range []models.BookingStatus{
		models.BookingPending,
		models.BookingAccepted,
		models.BookingInProgress,
		models.BookingCompleted,
	} {
		var transitionErr *utils.InvalidTransitionError
		_, err := f.svc.Transition(f.admin, b.ID, target)
		require.ErrorAs(t, err, &transitionErr, "cancelled -> %s must fail", target)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	f := newFixture()
	b := f.createBooking(40)

	var validationErr *utils.ValidationError
	_, err := f.svc.Transition(f.contractor, b.ID, models.BookingStatus("archived"))
	require.ErrorAs(t, err, &validationErr)
}

func TestTransitionUnknownBooking(t *testing.T) {
	f := newFixture()

	var notFound *utils.NotFoundError
	_, err := f.svc.Transition(f.contractor, "nope", models.BookingAccepted)
	require.ErrorAs(t, err, &notFound)
}

func TestTransitionLostRaceReportsFreshStatus(t *testing.T) {
	f := newFixture()
	b := f.createBooking(70)

	// A concurrent writer cancels between our read and our guarded write.
	matched, err := f.bookings.UpdateStatusIf(b.ID, models.BookingPending, models.BookingCancelled)
	require.NoError(t, err)
	require.True(t, matched)

	svc := *f.svc
	svc.Bookings = &staleReadRepo{memBookingRepo: f.bookings, staleStatus: models.BookingPending}
	var transitionErr *utils.InvalidTransitionError
	_, err = svc.Transition(f.contractor, b.ID, models.BookingAccepted)
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "cancelled", transitionErr.From)
}

// staleReadRepo serves one stale status on the first read, then delegates.
type staleReadRepo struct {
	*memBookingRepo
	staleStatus models.BookingStatus
	served      bool
}

func (r *staleReadRepo) GetByID(id string) (*models.Booking, error) {
	b, err := r.memBookingRepo.GetByID(id)
	if err != nil || b == nil {
		return b, err
	}
	if !r.served {
		r.served = true
		b.Status = r.staleStatus
	}
	return b, nil
}

func TestUpdatePaymentStatusIndependentOfLifecycle(t *testing.T) {
	f := newFixture()
	b := f.createBooking(120)

	updated, err := f.svc.UpdatePaymentStatus(f.client, b.ID, models.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, models.BookingPending, updated.Status)

	var validationErr *utils.ValidationError
	_, err = f.svc.UpdatePaymentStatus(f.client, b.ID, models.PaymentStatus("settled"))
	require.ErrorAs(t, err, &validationErr)

	stranger := models.Actor{ID: "client-9", Role: models.RoleClient}
	var authErr *utils.AuthorizationError
	_, err = f.svc.UpdatePaymentStatus(stranger, b.ID, models.PaymentRefunded)
	require.ErrorAs(t, err, &authErr)
}
