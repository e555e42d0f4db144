package domain

import "math"

// Location is an immutable geographic position with a display address.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

const earthRadiusKm = 6371

// Distance returns the great-circle distance between two locations in
// kilometers (haversine formula).
func Distance(a, b Location) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
