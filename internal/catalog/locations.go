package catalog

import "github.com/wanderlab/trip-budget-api/internal/domain"

// CityCenter anchors the pseudo-random fallback position for activities with
// no fixed coordinate.
var CityCenter = domain.Location{Lat: 40.75, Lng: -73.98, Address: "City Center"}

// Simulated city-center positions keyed by activity name.
var locations = map[string]domain.Location{
	"City Museum":            {Lat: 40.7589, Lng: -73.9851, Address: "Downtown Cultural District"},
	"Historic Walking Tour":  {Lat: 40.7614, Lng: -73.9776, Address: "Old Town Square"},
	"Botanical Gardens":      {Lat: 40.7489, Lng: -73.9680, Address: "City Park East"},
	"Fine Dining":            {Lat: 40.7580, Lng: -73.9855, Address: "Restaurant Row"},
	"Local Street Food Tour": {Lat: 40.7520, Lng: -73.9830, Address: "Food District"},
	"Casual Restaurant":      {Lat: 40.7560, Lng: -73.9800, Address: "Midtown Area"},
	"Hiking Excursion":       {Lat: 40.7850, Lng: -73.9500, Address: "Nature Reserve North"},
	"Rock Climbing":          {Lat: 40.7650, Lng: -73.9950, Address: "Adventure Sports Center"},
	"Water Sports":           {Lat: 40.7400, Lng: -73.9900, Address: "Waterfront Marina"},
	"Designer Boutiques":     {Lat: 40.7600, Lng: -73.9750, Address: "Fashion Avenue"},
	"Local Market":           {Lat: 40.7450, Lng: -73.9850, Address: "Market District"},
	"Shopping Mall":          {Lat: 40.7550, Lng: -73.9820, Address: "Commercial Center"},
	"Spa & Wellness":         {Lat: 40.7620, Lng: -73.9700, Address: "Wellness Quarter"},
	"Yoga Class":             {Lat: 40.7540, Lng: -73.9780, Address: "Fitness District"},
	"Beach Relaxation":       {Lat: 40.7350, Lng: -73.9950, Address: "Beachfront"},
}

// LocationFor resolves an activity's fixed coordinate by name.
func LocationFor(name string) (domain.Location, bool) {
	loc, ok := locations[name]
	return loc, ok
}
