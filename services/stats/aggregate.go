package stats

import (
	"time"

	"contracthub/models"
	"contracthub/services/rating"
	"contracthub/utils"
)

// activeStatuses are the lifecycle states counted as "active" work.
var activeStatuses = map[models.BookingStatus]bool{
	models.BookingAccepted:   true,
	models.BookingInProgress: true,
}

// ClientStats buckets the client's bookings by status and sums spend over
// completed ones. An empty history yields all-zero metrics.
func (s *DefaultService) ClientStats(actor models.Actor) (*ClientStats, error) {
	bookings, err := s.Bookings.ListAllByClient(actor.ID)
	if err != nil {
		return nil, err
	}

	out := &ClientStats{TotalBookings: len(bookings)}
	var ratingSum, ratingCount int
	for _, b := range bookings {
		if activeStatuses[b.Status] {
			out.ActiveBookings++
		}
		if b.Status == models.BookingCompleted {
			out.CompletedBookings++
			out.TotalSpent += b.TotalAmount
		}
		if b.ClientRating != nil {
			ratingSum += b.ClientRating.Rating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		out.AverageRatingGiven = rating.RoundAverage(float64(ratingSum) / float64(ratingCount))
	}

	monthly, err := s.Bookings.CountClientCreatedSince(actor.ID, startOfMonth(time.Now().UTC()))
	if err != nil {
		return nil, err
	}
	out.NewBookingsThisMonth = int(monthly)

	savedCount, err := s.Saved.CountByClient(actor.ID)
	if err != nil {
		return nil, err
	}
	out.SavedContractors = int(savedCount)
	return out, nil
}

// ContractorDashboard derives the contractor's headline metrics plus the
// pending job-request and active-job lists, newest-first.
func (s *DefaultService) ContractorDashboard(actor models.Actor) (*Dashboard, error) {
	contractor, err := s.Contractors.GetByUserID(actor.ID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, &utils.NotFoundError{Resource: "contractor profile"}
	}

	bookings, err := s.Bookings.ListByContractor(contractor.ID, nil)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		JobRequests: []models.Booking{},
		ActiveJobs:  []models.Booking{},
	}
	monthStart := startOfMonth(time.Now().UTC())
	for _, b := range bookings {
		switch {
		case b.Status == models.BookingPending:
			dashboard.JobRequests = append(dashboard.JobRequests, b)
		case activeStatuses[b.Status]:
			dashboard.ActiveJobs = append(dashboard.ActiveJobs, b)
		case b.Status == models.BookingCompleted:
			dashboard.Stats.TotalEarnings += b.TotalAmount
			if !b.UpdatedAt.Before(monthStart) {
				dashboard.Stats.MonthlyEarnings += b.TotalAmount
			}
		}
	}
	dashboard.Stats.ActiveJobs = len(dashboard.ActiveJobs)
	dashboard.Stats.PendingRequests = len(dashboard.JobRequests)
	dashboard.Stats.CompletedJobs = contractor.CompletedJobs
	dashboard.Stats.AverageRating = contractor.Rating.Average
	dashboard.Stats.TotalReviews = contractor.Rating.Count
	return dashboard, nil
}

// ContractorEarnings reports completed-booking income for the current
// month, quarter, or year, plus outstanding payment amounts.
func (s *DefaultService) ContractorEarnings(actor models.Actor, period EarningsPeriod) (*EarningsReport, error) {
	contractor, err := s.Contractors.GetByUserID(actor.ID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, &utils.NotFoundError{Resource: "contractor profile"}
	}

	bookings, err := s.Bookings.ListByContractor(contractor.ID, []models.BookingStatus{models.BookingCompleted})
	if err != nil {
		return nil, err
	}

	from := periodStart(period, time.Now().UTC())
	report := &EarningsReport{Transactions: []EarningsTransaction{}}
	for _, b := range bookings {
		report.TotalEarnings += b.TotalAmount
		if b.PaymentStatus == models.PaymentPending {
			report.PendingAmount += b.TotalAmount
		}
		if b.UpdatedAt.Before(from) {
			continue
		}
		report.PeriodEarnings += b.TotalAmount
		report.JobCount++
		report.Transactions = append(report.Transactions, EarningsTransaction{
			BookingID:     b.ID,
			Category:      b.ServiceDetails.Category,
			Amount:        b.TotalAmount,
			CompletedAt:   b.UpdatedAt.Format(time.RFC3339),
			PaymentStatus: b.PaymentStatus,
		})
	}
	if report.JobCount > 0 {
		report.AveragePerJob = report.PeriodEarnings / float64(report.JobCount)
	}
	return report, nil
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func periodStart(period EarningsPeriod, now time.Time) time.Time {
	switch period {
	case PeriodQuarter:
		quarter := (int(now.Month()) - 1) / 3
		return time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return startOfMonth(now)
	}
}
