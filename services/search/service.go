package search

import (
	contractorRepo "contracthub/database/repository/contractor"
	"contracthub/models"

	"go.uber.org/zap"
)

// Sort fields accepted by the ranking engine.
const (
	SortByRating = "rating"
	SortByRate   = "rate"
	SortByJobs   = "jobs"
)

// DefaultRadiusKm bounds geo searches that supply coordinates but no radius.
const DefaultRadiusKm = 25

// Query carries every filter of a contractor search.
type Query struct {
	Service      string
	Location     string
	Lat, Lng     *float64
	RadiusKm     float64
	MinRating    float64
	MaxRate      float64
	Availability string
	SortBy       string
	Page         int
	Limit        int
}

// Result is one page of ranked contractors. Totals are computed over the
// filtered set, not the raw collection.
type Result struct {
	Contractors  []models.RankedContractor `json:"contractors"`
	TotalResults int                       `json:"totalResults"`
	TotalPages   int                       `json:"totalPages"`
	CurrentPage  int                       `json:"currentPage"`
}

// Service is the contractor discovery and ranking engine.
type Service interface {
	SearchContractors(query Query) (*Result, error)
}

// DefaultService implements Service over the contractor repository.
type DefaultService struct {
	Repo   contractorRepo.ContractorRepository
	Logger *zap.Logger
}
