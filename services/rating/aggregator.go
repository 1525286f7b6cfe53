package rating

import (
	"fmt"
	"math"

	contractorRepo "contracthub/database/repository/contractor"
	reviewRepo "contracthub/database/repository/review"

	"go.uber.org/zap"
)

// Aggregator recomputes a contractor's rating aggregate from the review
// ledger. Always a full recompute: a crashed partial update can never leave
// the aggregate drifted, because the next recompute self-corrects.
type Aggregator interface {
	Recompute(contractorID string) error
}

// DefaultAggregator implements Aggregator over the review and contractor
// repositories.
type DefaultAggregator struct {
	Reviews     reviewRepo.ReviewRepository
	Contractors contractorRepo.ContractorRepository
	Logger      *zap.Logger
}

// Recompute scans every review referencing the contractor and writes the
// mean (rounded to one decimal) and count onto the contractor document.
func (a *DefaultAggregator) Recompute(contractorID string) error {
	summary, err := a.Reviews.Summarize(contractorID)
	if err != nil {
		return fmt.Errorf("rating recompute for contractor %s: %w", contractorID, err)
	}

	average := RoundAverage(summary.Average)
	if err := a.Contractors.SetRating(contractorID, average, summary.Count); err != nil {
		return fmt.Errorf("rating recompute for contractor %s: %w", contractorID, err)
	}

	a.Logger.Debug("rating aggregate recomputed",
		zap.String("contractorId", contractorID),
		zap.Float64("average", average),
		zap.Int("count", summary.Count),
	)
	return nil
}

// RoundAverage rounds a raw mean to one decimal place.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}
