package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Valid reports whether the point carries a usable coordinate pair.
func (g GeoPoint) Valid() bool {
	return len(g.Coordinates) >= 2
}

// Lng returns the longitude component, or 0 if the point is empty.
func (g GeoPoint) Lng() float64 {
	if !g.Valid() {
		return 0
	}
	return g.Coordinates[0]
}

// Lat returns the latitude component, or 0 if the point is empty.
func (g GeoPoint) Lat() float64 {
	if !g.Valid() {
		return 0
	}
	return g.Coordinates[1]
}

// Address is a postal address snapshot.
type Address struct {
	Street  string `bson:"street" json:"street,omitempty"`
	City    string `bson:"city" json:"city,omitempty"`
	State   string `bson:"state" json:"state,omitempty"`
	ZipCode string `bson:"zipCode" json:"zipCode,omitempty"`
}
