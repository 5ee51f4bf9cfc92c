package geo

import (
	"math"
	"testing"
)

// independentDistance uses the spherical law of cosines as a cross-check
// against the haversine implementation.
func independentDistance(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	cosD := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLng)
	if cosD > 1 {
		cosD = 1
	}
	return EarthRadiusM * math.Acos(cosD)
}

func TestDistance(t *testing.T) {
	sf := Coordinate{Lat: 37.7749, Lng: -122.4194}
	la := Coordinate{Lat: 34.0522, Lng: -118.2437}

	t.Run("zero for identical coordinates", func(t *testing.T) {
		if d := Distance(sf, sf); d != 0 {
			t.Errorf("expected 0, got %v", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		if d1, d2 := Distance(sf, la), Distance(la, sf); math.Abs(d1-d2) > 1e-6 {
			t.Errorf("asymmetric distances: %v vs %v", d1, d2)
		}
	})

	t.Run("matches independent computation", func(t *testing.T) {
		cases := []struct {
			name string
			a, b Coordinate
		}{
			{"city scale", sf, la},
			{"street scale", sf, Coordinate{Lat: 37.7755, Lng: -122.4190}},
			{"across meridian", Coordinate{Lat: 51.5, Lng: -0.1}, Coordinate{Lat: 51.5, Lng: 0.1}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := Distance(tc.a, tc.b)
				want := independentDistance(tc.a, tc.b)
				if math.Abs(got-want) > want*0.001+0.01 {
					t.Errorf("haversine %v disagrees with law of cosines %v", got, want)
				}
			})
		}
	})
}

func TestCheck(t *testing.T) {
	center := Coordinate{Lat: 37.7749, Lng: -122.4194}

	t.Run("exact coordinate always passes", func(t *testing.T) {
		res := Check(center, center, 1)
		if !res.Within {
			t.Error("coordinate at the registered point must pass")
		}
		if res.DistanceM != 0 {
			t.Errorf("expected distance 0, got %v", res.DistanceM)
		}
	})

	t.Run("inside radius passes", func(t *testing.T) {
		// ~78m north of center
		near := Coordinate{Lat: center.Lat + 0.0007, Lng: center.Lng}
		res := Check(near, center, 150)
		if !res.Within {
			t.Errorf("expected pass at %vm inside 150m radius", res.DistanceM)
		}
	})

	t.Run("outside radius fails with diagnostics", func(t *testing.T) {
		far := Coordinate{Lat: center.Lat + 0.01, Lng: center.Lng} // ~1.1km
		res := Check(far, center, 150)
		if res.Within {
			t.Error("expected rejection outside radius")
		}
		if res.RadiusM != 150 {
			t.Errorf("expected radius 150 reported, got %v", res.RadiusM)
		}
		want := independentDistance(far, center)
		if math.Abs(res.DistanceM-want) > want*0.001 {
			t.Errorf("reported distance %v disagrees with independent computation %v", res.DistanceM, want)
		}
	})
}
