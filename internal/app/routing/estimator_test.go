package routing

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/wanderlab/trip-budget-api/internal/catalog"
	"github.com/wanderlab/trip-budget-api/internal/domain"
)

func newTestEstimator() *Estimator {
	e := NewEstimator()
	e.SetRandForTest(rand.New(rand.NewSource(1)))
	return e
}

func catalogActivity(t *testing.T, name string) domain.Activity {
	t.Helper()
	for _, c := range domain.Categories() {
		for _, a := range catalog.ActivitiesFor(c) {
			if a.Name == name {
				return a
			}
		}
	}
	t.Fatalf("no catalog activity named %q", name)
	return domain.Activity{}
}

func TestEstimate_EmptyDay(t *testing.T) {
	got := newTestEstimator().Estimate(nil)

	if got.TotalDistanceKm != 0 || got.EstimatedTravelMin != 0 {
		t.Fatalf("distance/time = %v/%v, want 0/0", got.TotalDistanceKm, got.EstimatedTravelMin)
	}
	if len(got.Groupings) != 0 {
		t.Fatalf("groupings = %d, want 0", len(got.Groupings))
	}
	if got.Efficiency != 100 {
		t.Fatalf("efficiency = %d, want 100", got.Efficiency)
	}
	if got.Reasoning != "No activities planned for this day - enjoy free time!" {
		t.Fatalf("reasoning = %q", got.Reasoning)
	}
}

func TestEstimate_NearbyPairFormsOneGroup(t *testing.T) {
	// Fine Dining and Casual Restaurant sit ~0.5 km apart.
	acts := []domain.Activity{
		catalogActivity(t, "Fine Dining"),
		catalogActivity(t, "Casual Restaurant"),
	}

	got := newTestEstimator().Estimate(acts)

	if len(got.Groupings) != 1 {
		t.Fatalf("groupings = %d, want 1", len(got.Groupings))
	}
	if n := len(got.Groupings[0].Activities); n != 2 {
		t.Fatalf("group size = %d, want 2", n)
	}
	if got.TotalDistanceKm < 0.4 || got.TotalDistanceKm > 0.7 {
		t.Fatalf("distance = %v, want ~0.5", got.TotalDistanceKm)
	}
	if got.Efficiency <= 80 {
		t.Fatalf("efficiency = %d, want > 80", got.Efficiency)
	}
	if !strings.Contains(got.Reasoning, "same area") {
		t.Fatalf("reasoning = %q", got.Reasoning)
	}
}

func TestEstimate_DistantPairSplitsAndClampsEfficiency(t *testing.T) {
	// Hiking Excursion and Beach Relaxation are several km apart.
	a := catalogActivity(t, "Hiking Excursion")
	b := catalogActivity(t, "Beach Relaxation")

	got := newTestEstimator().Estimate([]domain.Activity{a, b})

	if len(got.Groupings) != 2 {
		t.Fatalf("groupings = %d, want 2", len(got.Groupings))
	}
	if got.Efficiency != 0 {
		t.Fatalf("efficiency = %d, want 0 (clamped)", got.Efficiency)
	}
	if !strings.Contains(got.Reasoning, "Consider metro, taxi, or ride-sharing") {
		t.Fatalf("reasoning = %q", got.Reasoning)
	}

	locA, _ := catalog.LocationFor(a.Name)
	locB, _ := catalog.LocationFor(b.Name)
	d := domain.Distance(locA, locB)
	wantMin := int(math.Ceil(d/30*60)) + 5
	if got.EstimatedTravelMin != wantMin {
		t.Fatalf("travel time = %d, want %d", got.EstimatedTravelMin, wantMin)
	}
}

func TestEstimate_UnknownNamesJitterNearCityCenter(t *testing.T) {
	acts := []domain.Activity{
		{Name: "Pop-up Gallery", Category: domain.CategorySightseeing, EstimatedCost: 12},
		{Name: "Night Bazaar", Category: domain.CategoryShopping, EstimatedCost: 18},
	}

	got := newTestEstimator().Estimate(acts)

	if len(got.Stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(got.Stops))
	}
	for _, s := range got.Stops {
		if s.Location.Address != catalog.CityCenter.Address {
			t.Fatalf("stop %q address = %q", s.Name, s.Location.Address)
		}
		if math.Abs(s.Location.Lat-catalog.CityCenter.Lat) > 0.025 ||
			math.Abs(s.Location.Lng-catalog.CityCenter.Lng) > 0.025 {
			t.Fatalf("stop %q jittered out of bounds: %+v", s.Name, s.Location)
		}
	}
}

func TestGroupByProximity_ChecksSeedOnly(t *testing.T) {
	// A-B and B-C are each within the radius but A-C is not. The grouping
	// checks distance to the seed only, so C starts its own group instead of
	// chaining through B.
	mkLoc := func(latOffset float64) *domain.Location {
		return &domain.Location{Lat: 40.75 + latOffset, Lng: -73.98, Address: "Test Strip"}
	}
	located := []domain.Activity{
		{Name: "A", Category: domain.CategoryFood, Location: mkLoc(0)},
		{Name: "B", Category: domain.CategoryFood, Location: mkLoc(0.0126)}, // ~1.4 km from A
		{Name: "C", Category: domain.CategoryFood, Location: mkLoc(0.0252)}, // ~2.8 km from A
	}

	groups := groupByProximity(located)

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (seed-based grouping)", len(groups))
	}
	if len(groups[0].Activities) != 2 || groups[0].Activities[0] != "A" || groups[0].Activities[1] != "B" {
		t.Fatalf("first group = %v, want [A B]", groups[0].Activities)
	}
	if len(groups[1].Activities) != 1 || groups[1].Activities[0] != "C" {
		t.Fatalf("second group = %v, want [C]", groups[1].Activities)
	}
}

func TestGroupByProximity_CentroidAndLabels(t *testing.T) {
	locA := &domain.Location{Lat: 40.75, Lng: -73.98, Address: "Quarter A"}
	locB := &domain.Location{Lat: 40.76, Lng: -73.99, Address: "Quarter B"}
	located := []domain.Activity{
		{Name: "A", Category: domain.CategoryFood, Location: locA},
		{Name: "B", Category: domain.CategoryShopping, Location: locB},
	}

	groups := groupByProximity(located)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Name != "Quarter A Cluster" {
		t.Fatalf("name = %q", g.Name)
	}
	if math.Abs(g.Center.Lat-40.755) > 1e-9 || math.Abs(g.Center.Lng-(-73.985)) > 1e-9 {
		t.Fatalf("center = %+v", g.Center)
	}
	if !strings.Contains(g.Reason, "Mixed activities") {
		t.Fatalf("reason = %q", g.Reason)
	}
}
