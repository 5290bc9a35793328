package models

import "fmt"

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bangalore city centre, used until the device location is known.
var DefaultCenter = GeoPoint{Latitude: 12.9716, Longitude: 77.5946}

// Valid checks the coordinate ranges. A zero on either axis is treated as
// missing data, the same way upstream payloads leave out unknown coordinates.
func (p GeoPoint) Valid() bool {
	if p.Latitude == 0 || p.Longitude == 0 {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Ptr returns a pointer to a copy of p.
func (p GeoPoint) Ptr() *GeoPoint {
	return &p
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Latitude, p.Longitude)
}
