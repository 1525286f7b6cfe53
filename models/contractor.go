package models

import "time"

// ServiceOffering is one entry in a contractor's service list.
type ServiceOffering struct {
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	PriceType   PriceType `bson:"priceType" json:"priceType"`
}

// DayAvailability describes whether a contractor works on a given weekday.
type DayAvailability struct {
	Available bool   `bson:"available" json:"available"`
	Hours     string `bson:"hours,omitempty" json:"hours,omitempty"` // e.g. "09:00-17:00"
}

// WeekdayKeys lists the availability map keys in calendar order.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Rating is the derived aggregate over a contractor's reviews. It is only
// ever written by a full recompute, never incremented in place.
type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Contractor extends a User with role=contractor. Job counters are written by
// the booking lifecycle, the rating aggregate by the rating recompute; nothing
// else mutates those fields.
type Contractor struct {
	ID            string                     `bson:"id" json:"id"`
	UserID        string                     `bson:"userId" json:"userId"`
	BusinessName  string                     `bson:"businessName,omitempty" json:"businessName,omitempty"`
	Services      []ServiceOffering          `bson:"services" json:"services"`
	Skills        []string                   `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience    int                        `bson:"experience" json:"experience"`
	Availability  map[string]DayAvailability `bson:"availability" json:"availability"`
	HourlyRate    float64                    `bson:"hourlyRate" json:"hourlyRate"`
	Location      string                     `bson:"location,omitempty" json:"location,omitempty"`
	Coordinates   *GeoPoint                  `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Rating        Rating                     `bson:"rating" json:"rating"`
	TotalJobs     int                        `bson:"totalJobs" json:"totalJobs"`
	CompletedJobs int                        `bson:"completedJobs" json:"completedJobs"`
	IsActive      bool                       `bson:"isActive" json:"isActive"`
	Verified      bool                       `bson:"verified" json:"verified"`
	CreatedAt     time.Time                  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time                  `bson:"updatedAt" json:"updatedAt"`
}

// OffersCategory reports whether the contractor lists the given service
// category.
func (c *Contractor) OffersCategory(category string) bool {
	for _, s := range c.Services {
		if s.Category == category {
			return true
		}
	}
	return false
}

// RankedContractor is a search result: the contractor plus the computed
// great-circle distance (km) when the query carried coordinates.
type RankedContractor struct {
	Contractor `json:",inline"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}
