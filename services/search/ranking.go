package search

import (
	"fmt"
	"math"
	"sort"

	contractorRepo "contracthub/database/repository/contractor"
	"contracthub/models"

	"go.uber.org/zap"
)

// SearchContractors runs the filter, geo-rank, sort, paginate pipeline.
// For identical inputs over identical data the result order is fully
// deterministic, so pagination never skips or duplicates entries.
func (s *DefaultService) SearchContractors(query Query) (*Result, error) {
	criteria := contractorRepo.SearchCriteria{
		Category:     query.Service,
		Location:     query.Location,
		MinRating:    query.MinRating,
		MaxRate:      query.MaxRate,
		Availability: query.Availability,
	}
	contractors, err := s.Repo.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("contractor search failed: %w", err)
	}

	ranked := make([]models.RankedContractor, 0, len(contractors))
	if query.Lat != nil && query.Lng != nil {
		radius := query.RadiusKm
		if radius <= 0 {
			radius = DefaultRadiusKm
		}
		for _, c := range contractors {
			// Contractors without stored coordinates are excluded from any
			// geo-filtered search, whatever else they match.
			if c.Coordinates == nil || !c.Coordinates.Valid() {
				continue
			}
			dist := Haversine(*query.Lat, *query.Lng, c.Coordinates.Lat(), c.Coordinates.Lng())
			if dist > radius {
				continue
			}
			d := dist
			ranked = append(ranked, models.RankedContractor{Contractor: c, DistanceKm: &d})
		}
	} else {
		for _, c := range contractors {
			ranked = append(ranked, models.RankedContractor{Contractor: c})
		}
	}

	sortRanked(ranked, query.SortBy)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	total := len(ranked)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	s.Logger.Debug("contractor search",
		zap.String("service", query.Service),
		zap.Int("matched", total),
		zap.Int("page", page),
	)

	return &Result{
		Contractors:  ranked[start:end],
		TotalResults: total,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}, nil
}

// sortRanked orders descending by the requested field, breaking ties by
// completedJobs descending and then by contractor id for determinism.
func sortRanked(ranked []models.RankedContractor, sortBy string) {
	key := func(c *models.RankedContractor) float64 {
		switch sortBy {
		case SortByRate:
			return c.HourlyRate
		case SortByJobs:
			return float64(c.CompletedJobs)
		default:
			return c.Rating.Average
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		ki, kj := key(&ranked[i]), key(&ranked[j])
		if ki != kj {
			return ki > kj
		}
		if ranked[i].CompletedJobs != ranked[j].CompletedJobs {
			return ranked[i].CompletedJobs > ranked[j].CompletedJobs
		}
		return ranked[i].ID < ranked[j].ID
	})
}

// Haversine returns the great-circle distance in kilometres between two
// latitude/longitude pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
