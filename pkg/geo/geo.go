// Package geo validates reported player coordinates against location
// geofences using a spherical-Earth great-circle distance.
package geo

import "math"

// EarthRadiusM is the mean Earth radius in meters
const EarthRadiusM = 6371000.0

// Coordinate is a WGS84-style lat/lng pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Result reports the outcome of a geofence check
type Result struct {
	Within    bool    `json:"within"`
	DistanceM float64 `json:"distanceM"`
	RadiusM   float64 `json:"radiusM"`
}

// Distance returns the great-circle surface distance between two coordinates
// in meters, using the haversine formula on a spherical Earth. Accurate
// enough for gameplay-scale radii; not geodesic-precise.
func Distance(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

// Check validates a reported coordinate against a geofence centered on
// target with the given radius.
func Check(reported, target Coordinate, radiusM float64) Result {
	d := Distance(reported, target)
	return Result{
		Within:    d <= radiusM,
		DistanceM: d,
		RadiusM:   radiusM,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
