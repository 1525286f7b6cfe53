package booking

import (
	"errors"
	"sort"
	"sync"
	"time"

	bookingRepo "contracthub/database/repository/booking"
	contractorRepo "contracthub/database/repository/contractor"
	reviewRepo "contracthub/database/repository/review"
	"contracthub/models"
	"contracthub/services/notification"
	"contracthub/services/rating"

	"go.uber.org/zap"
)

var errDuplicateKey = errors.New("duplicate key")

// memBookingRepo is an in-memory BookingRepository for service tests.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *memBookingRepo) ListByClient(clientID string, opts bookingRepo.ClientListOptions) ([]models.Booking, int64, error) {
	all, _ := r.ListAllByClient(clientID)
	if opts.Status != nil {
		filtered := all[:0]
		for _, b := range all {
			if b.Status == *opts.Status {
				filtered = append(filtered, b)
			}
		}
		all = filtered
	}
	total := int64(len(all))
	page, limit := opts.Page, opts.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(all) {
		return []models.Booking{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *memBookingRepo) ListAllByClient(clientID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledDate.After(out[j].ScheduledDate)
	})
	return out, nil
}

func (r *memBookingRepo) ListByContractor(contractorID string, statuses []models.BookingStatus) ([]models.Booking, error) {
	wanted := make(map[models.BookingStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ContractorID != contractorID {
			continue
		}
		if len(statuses) > 0 && !wanted[b.Status] {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memBookingRepo) UpdateStatusIf(id string, from, to models.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *memBookingRepo) UpdatePaymentStatus(id string, status models.PaymentStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	b.PaymentStatus = status
	b.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *memBookingRepo) SetReviewSnapshot(id string, snapshot models.ReviewSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.ClientRating = &snapshot
	return nil
}

func (r *memBookingRepo) CountClientCreatedSince(clientID string, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.ClientID == clientID && !b.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// memContractorRepo is an in-memory ContractorRepository for service tests.
type memContractorRepo struct {
	mu          sync.Mutex
	contractors map[string]*models.Contractor
}

func newMemContractorRepo() *memContractorRepo {
	return &memContractorRepo{contractors: make(map[string]*models.Contractor)}
}

func (r *memContractorRepo) Create(c *models.Contractor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *c
	r.contractors[c.ID] = &clone
	return nil
}

func (r *memContractorRepo) GetByID(id string) (*models.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contractors[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *memContractorRepo) GetByUserID(userID string) (*models.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contractors {
		if c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memContractorRepo) Update(c *models.Contractor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *c
	r.contractors[c.ID] = &clone
	return nil
}

func (r *memContractorRepo) Search(criteria contractorRepo.SearchCriteria) ([]models.Contractor, error) {
	return nil, errors.New("not used in booking tests")
}

func (r *memContractorRepo) IncrementJobCounters(id string, completedDelta, totalDelta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contractors[id]
	if !ok {
		return errors.New("contractor not found")
	}
	c.CompletedJobs += completedDelta
	c.TotalJobs += totalDelta
	return nil
}

func (r *memContractorRepo) SetRating(id string, average float64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contractors[id]
	if !ok {
		return errors.New("contractor not found")
	}
	c.Rating = models.Rating{Average: average, Count: count}
	return nil
}

// memReviewRepo is an in-memory ReviewRepository enforcing the unique
// bookingId constraint the way the mongo index does.
type memReviewRepo struct {
	mu        sync.Mutex
	reviews   []models.Review
	byBooking map[string]bool
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{byBooking: make(map[string]bool)}
}

func (r *memReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byBooking[review.BookingID] {
		return errDuplicateKey
	}
	r.byBooking[review.BookingID] = true
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memReviewRepo) IsDuplicate(err error) bool {
	return errors.Is(err, errDuplicateKey)
}

func (r *memReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].BookingID == bookingID {
			clone := r.reviews[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) ListByContractor(contractorID string, page, limit int) ([]models.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ContractorID == contractorID {
			out = append(out, rv)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memReviewRepo) ListByClient(clientID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ClientID == clientID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) Summarize(contractorID string) (reviewRepo.RatingSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, rv := range r.reviews {
		if rv.ContractorID == contractorID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return reviewRepo.RatingSummary{}, nil
	}
	return reviewRepo.RatingSummary{Average: float64(sum) / float64(count), Count: count}, nil
}

// fixture wires a DefaultService over the in-memory repos with a real rating
// aggregator, one active contractor, and its owning user.
type fixture struct {
	svc         *DefaultService
	bookings    *memBookingRepo
	contractors *memContractorRepo
	reviews     *memReviewRepo

	client     models.Actor
	contractor models.Actor // the user behind contractorID
	admin      models.Actor

	contractorID string
}

func newFixture() *fixture {
	bookings := newMemBookingRepo()
	contractors := newMemContractorRepo()
	reviews := newMemReviewRepo()
	logger := zap.NewNop()

	f := &fixture{
		bookings:     bookings,
		contractors:  contractors,
		reviews:      reviews,
		client:       models.Actor{ID: "client-1", Role: models.RoleClient},
		contractor:   models.Actor{ID: "user-c1", Role: models.RoleContractor},
		admin:        models.Actor{ID: "admin-1", Role: models.RoleAdmin},
		contractorID: "contractor-1",
	}
	_ = contractors.Create(&models.Contractor{
		ID:       f.contractorID,
		UserID:   f.contractor.ID,
		IsActive: true,
		Verified: true,
	})

	f.svc = &DefaultService{
		Bookings:    bookings,
		Contractors: contractors,
		Reviews:     reviews,
		Rating: &rating.DefaultAggregator{
			Reviews:     reviews,
			Contractors: contractors,
			Logger:      logger,
		},
		Notifier: notification.NewLogNotifier(logger),
		Logger:   logger,
	}
	return f
}

func (f *fixture) createBooking(amount float64) *models.Booking {
	booking, err := f.svc.Create(f.client, models.BookingInput{
		ContractorID: f.contractorID,
		ServiceDetails: models.ServiceDetails{
			Category:  "plumbing",
			Price:     amount,
			PriceType: models.PriceFixed,
		},
		ScheduledDate: time.Now().UTC().Add(48 * time.Hour),
		ScheduledTime: "10:00",
		TotalAmount:   amount,
	})
	if err != nil {
		panic(err)
	}
	return booking
}
