package booking

import (
	"fmt"
	"time"

	"contracthub/models"
	"contracthub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttachReview records the single review a completed booking may carry.
// The review is legal only when the booking is completed, belongs to the
// acting client, and carries no review yet. Once the review is persisted the
// rating recompute and the booking snapshot are best-effort: their failure is
// logged, never rolled back — the next successful recompute self-corrects.
func (s *DefaultService) AttachReview(actor models.Actor, input models.ReviewInput) (*models.Review, error) {
	if input.BookingID == "" {
		return nil, utils.NewValidationError("bookingId is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.NewValidationError("rating must be between 1 and 5")
	}
	if err := validateAspects(input.Aspects); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.GetByID(input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: input.BookingID}
	}
	if booking.ClientID != actor.ID && !actor.IsAdmin() {
		return nil, &utils.ConflictError{Message: "booking does not belong to this client"}
	}
	if booking.Status != models.BookingCompleted {
		return nil, &utils.ConflictError{Message: "booking is not completed"}
	}

	existing, err := s.Reviews.GetByBookingID(booking.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &utils.ConflictError{Message: "review already exists for this booking"}
	}

	wouldRecommend := true
	if input.WouldRecommend != nil {
		wouldRecommend = *input.WouldRecommend
	}
	review := &models.Review{
		ID:             uuid.New().String(),
		BookingID:      booking.ID,
		ClientID:       booking.ClientID,
		ContractorID:   booking.ContractorID,
		Rating:         input.Rating,
		Comment:        input.Comment,
		Aspects:        input.Aspects,
		WouldRecommend: wouldRecommend,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Reviews.Create(review); err != nil {
		// The unique bookingId index closes the check-then-insert window.
		if s.Reviews.IsDuplicate(err) {
			return nil, &utils.ConflictError{Message: "review already exists for this booking"}
		}
		return nil, fmt.Errorf("failed to persist review: %w", err)
	}

	if err := s.Rating.Recompute(booking.ContractorID); err != nil {
		s.Logger.Error("rating recompute failed after review",
			zap.String("reviewId", review.ID),
			zap.String("contractorId", booking.ContractorID),
			zap.Error(err),
		)
	}

	snapshot := models.ReviewSnapshot{
		Rating:  review.Rating,
		Comment: review.Comment,
		RatedAt: review.CreatedAt,
	}
	if err := s.Bookings.SetReviewSnapshot(booking.ID, snapshot); err != nil {
		s.Logger.Error("review snapshot not written to booking",
			zap.String("bookingId", booking.ID),
			zap.Error(err),
		)
	}

	s.Notifier.ReviewReceived(review)
	return review, nil
}

func validateAspects(a models.AspectRatings) error {
	for name, v := range map[string]int{
		"quality":         a.Quality,
		"punctuality":     a.Punctuality,
		"communication":   a.Communication,
		"professionalism": a.Professionalism,
	} {
		if v != 0 && (v < 1 || v > 5) {
			return utils.NewValidationError("aspect %s must be between 1 and 5", name)
		}
	}
	return nil
}
