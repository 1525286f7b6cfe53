package handlers

import (
	"net/http"
	"strconv"

	"contracthub/services/search"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseFloatQuery(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SearchContractors runs the discovery and ranking engine over the query
// string filters.
func (hb *HandlerBundle) SearchContractors(c *gin.Context) {
	query := search.Query{
		Service:      c.Query("service"),
		Location:     c.Query("location"),
		Availability: c.Query("availability"),
		SortBy:       c.Query("sortBy"),
		Page:         parseIntQuery(c, "page", 1),
		Limit:        parseIntQuery(c, "limit", 10),
	}

	for _, spec := range []struct {
		key  string
		dest **float64
	}{
		{"lat", &query.Lat},
		{"lng", &query.Lng},
	} {
		v, err := parseFloatQuery(c, spec.key)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", spec.key+" must be numeric")
			return
		}
		*spec.dest = v
	}
	for _, spec := range []struct {
		key  string
		dest *float64
	}{
		{"radius", &query.RadiusKm},
		{"minRating", &query.MinRating},
		{"maxRate", &query.MaxRate},
	} {
		v, err := parseFloatQuery(c, spec.key)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", spec.key+" must be numeric")
			return
		}
		if v != nil {
			*spec.dest = *v
		}
	}

	result, err := hb.Search.SearchContractors(query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
