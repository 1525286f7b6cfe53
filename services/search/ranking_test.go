package search

import (
	"strings"
	"testing"

	contractorRepo "contracthub/database/repository/contractor"
	"contracthub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubContractorRepo filters an in-memory set the way the mongo Search query
// does: active+verified only, category membership, rating floor, rate
// ceiling.
type stubContractorRepo struct {
	contractors []models.Contractor
}

func (r *stubContractorRepo) Create(*models.Contractor) error { return nil }
func (r *stubContractorRepo) GetByID(string) (*models.Contractor, error) { return nil, nil }
func (r *stubContractorRepo) GetByUserID(string) (*models.Contractor, error) { return nil, nil }
func (r *stubContractorRepo) Update(*models.Contractor) error { return nil }
func (r *stubContractorRepo) IncrementJobCounters(string, int, int) error { return nil }
func (r *stubContractorRepo) SetRating(string, float64, int) error { return nil }

func (r *stubContractorRepo) Search(criteria contractorRepo.SearchCriteria) ([]models.Contractor, error) {
	var out []models.Contractor
	for _, c := range r.contractors {
		if !c.IsActive || !c.Verified {
			continue
		}
		if criteria.Category != "" && criteria.Category != "all" && !c.OffersCategory(criteria.Category) {
			continue
		}
		if criteria.Location != "" && !strings.Contains(strings.ToLower(c.Location), strings.ToLower(criteria.Location)) {
			continue
		}
		if c.Rating.Average < criteria.MinRating {
			continue
		}
		if criteria.MaxRate > 0 && c.HourlyRate > criteria.MaxRate {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func geo(lat, lng float64) *models.GeoPoint {
	p := models.NewGeoPoint(lng, lat)
	return &p
}

func contractorFixture(id string, rating float64, jobs int, rate float64, coords *models.GeoPoint) models.Contractor {
	return models.Contractor{
		ID:            id,
		Services:      []models.ServiceOffering{{Category: "plumbing"}},
		HourlyRate:    rate,
		Location:      "Springfield",
		Coordinates:   coords,
		Rating:        models.Rating{Average: rating, Count: jobs},
		CompletedJobs: jobs,
		IsActive:      true,
		Verified:      true,
	}
}

func newSearchService(contractors ...models.Contractor) *DefaultService {
	return &DefaultService{
		Repo:   &stubContractorRepo{contractors: contractors},
		Logger: zap.NewNop(),
	}
}

func TestSearchMinRatingFloor(t *testing.T) {
	svc := newSearchService(
		contractorFixture("a", 4.8, 10, 50, nil),
		contractorFixture("b", 4.4, 20, 40, nil),
		contractorFixture("c", 4.5, 5, 60, nil),
	)

	result, err := svc.SearchContractors(Query{Service: "plumbing", MinRating: 4.5})
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalResults)
	for _, c := range result.Contractors {
		assert.GreaterOrEqual(t, c.Rating.Average, 4.5)
	}
}

func TestSearchSortsDescendingWithDeterministicTies(t *testing.T) {
	svc := newSearchService(
		contractorFixture("b", 4.5, 3, 40, nil),
		contractorFixture("a", 4.5, 3, 50, nil),
		contractorFixture("c", 4.9, 1, 60, nil),
		contractorFixture("d", 4.5, 8, 30, nil),
	)

	result, err := svc.SearchContractors(Query{})
	require.NoError(t, err)
	ids := make([]string, 0, len(result.Contractors))
	for _, c := range result.Contractors {
		ids = append(ids, c.ID)
	}
	// Rating desc, ties by completedJobs desc then id asc.
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids)
}

func TestSearchSortByRateAndJobs(t *testing.T) {
	svc := newSearchService(
		contractorFixture("a", 4.0, 2, 80, nil),
		contractorFixture("b", 5.0, 9, 30, nil),
	)

	byRate, err := svc.SearchContractors(Query{SortBy: SortByRate})
	require.NoError(t, err)
	assert.Equal(t, "a", byRate.Contractors[0].ID)

	byJobs, err := svc.SearchContractors(Query{SortBy: SortByJobs})
	require.NoError(t, err)
	assert.Equal(t, "b", byJobs.Contractors[0].ID)
}

func TestSearchGeoExcludesMissingCoordinates(t *testing.T) {
	lat, lng := 40.0, -74.0
	svc := newSearchService(
		contractorFixture("near", 4.0, 1, 50, geo(40.01, -74.01)),
		contractorFixture("far", 5.0, 9, 50, geo(45.0, -80.0)),
		contractorFixture("nowhere", 5.0, 9, 50, nil),
	)

	result, err := svc.SearchContractors(Query{Lat: &lat, Lng: &lng})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalResults)
	assert.Equal(t, "near", result.Contractors[0].ID)
	require.NotNil(t, result.Contractors[0].DistanceKm)
	assert.Less(t, *result.Contractors[0].DistanceKm, float64(DefaultRadiusKm))
}

func TestSearchGeoCustomRadius(t *testing.T) {
	lat, lng := 40.0, -74.0
	svc := newSearchService(
		contractorFixture("near", 4.0, 1, 50, geo(40.01, -74.01)),
		contractorFixture("town-over", 4.0, 1, 50, geo(40.5, -74.5)),
	)

	wide, err := svc.SearchContractors(Query{Lat: &lat, Lng: &lng, RadiusKm: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, wide.TotalResults)

	tight, err := svc.SearchContractors(Query{Lat: &lat, Lng: &lng, RadiusKm: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, tight.TotalResults)
}

func TestSearchPagination(t *testing.T) {
	contractors := make([]models.Contractor, 0, 25)
	for i := 0; i < 25; i++ {
		id := string(rune('a' + i))
		contractors = append(contractors, contractorFixture(id, 4.0, i, 50, nil))
	}
	svc := newSearchService(contractors...)

	first, err := svc.SearchContractors(Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, first.Contractors, 10)
	assert.Equal(t, 25, first.TotalResults)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 1, first.CurrentPage)

	last, err := svc.SearchContractors(Query{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, last.Contractors, 5)

	// Pages never overlap.
	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		result, err := svc.SearchContractors(Query{Page: page, Limit: 10})
		require.NoError(t, err)
		for _, c := range result.Contractors {
			assert.False(t, seen[c.ID], "contractor %s served twice", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestSearchPageBeyondTotalIsEmpty(t *testing.T) {
	svc := newSearchService(
		contractorFixture("a", 4.0, 1, 50, nil),
		contractorFixture("b", 4.0, 2, 50, nil),
	)

	result, err := svc.SearchContractors(Query{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Contractors)
	assert.Equal(t, 2, result.TotalResults)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 9, result.CurrentPage)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris to London is roughly 344 km.
	d := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 5)
}
