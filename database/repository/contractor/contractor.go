package contractorRepo

import "contracthub/models"

// SearchCriteria defines the server-side filters for a contractor search.
// Geo filtering happens in the ranking engine, not here, because the computed
// distance must be attached to each result.
type SearchCriteria struct {
	Category     string  // service category membership; empty or "all" matches everything
	Location     string  // case-insensitive substring of the contractor's location
	MinRating    float64 // rating.average floor
	MaxRate      float64 // hourlyRate ceiling; 0 means no ceiling
	Availability string  // case-insensitive substring of availability hours
}

// ContractorRepository defines methods for contractor data access.
// Lookup methods return (nil, nil) when no document matches.
type ContractorRepository interface {
	// Create inserts a new contractor record.
	Create(contractor *models.Contractor) error
	// GetByID retrieves a contractor by its unique ID.
	GetByID(id string) (*models.Contractor, error)
	// GetByUserID retrieves the contractor owned by the given user.
	GetByUserID(userID string) (*models.Contractor, error)
	// Update replaces an existing contractor record.
	Update(contractor *models.Contractor) error
	// Search returns active, verified contractors matching the criteria.
	Search(criteria SearchCriteria) ([]models.Contractor, error)
	// IncrementJobCounters atomically adds the deltas to completedJobs and
	// totalJobs at the storage layer.
	IncrementJobCounters(id string, completedDelta, totalDelta int) error
	// SetRating writes a freshly recomputed rating aggregate.
	SetRating(id string, average float64, count int) error
}
