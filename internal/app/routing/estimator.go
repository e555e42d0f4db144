// Package routing derives per-day route estimates for an itinerary: proximity
// groupings, total geodesic distance, a travel-time guess, and a 0-100
// efficiency score. It is a display heuristic, not a shortest-path solver.
package routing

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/wanderlab/trip-budget-api/internal/catalog"
	"github.com/wanderlab/trip-budget-api/internal/domain"
)

const (
	groupRadiusKm = 1.5
	// Assumed in-city travel speed and the per-transition overhead.
	travelSpeedKmh  = 30
	stopOverheadMin = 5
	// Assumed distance between randomly placed activities; baseline for the
	// efficiency score.
	baselineLegKm = 3
	// Unknown activity names get a pseudo-random position near the city
	// center, jittered up to this many degrees on each axis.
	jitterDegrees = 0.05
)

// Estimator computes RouteInfo for a day's activities.
type Estimator struct {
	rng *rand.Rand
}

func NewEstimator() *Estimator {
	return &Estimator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SetRandForTest overrides the jitter source for deterministic tests.
// It should not be used in production code.
func (e *Estimator) SetRandForTest(r *rand.Rand) {
	if r != nil {
		e.rng = r
	}
}

// Estimate builds the RouteInfo for the given activities in assignment order.
// Distances are summed over consecutive activities, not over cluster order.
func (e *Estimator) Estimate(activities []domain.Activity) domain.RouteInfo {
	if len(activities) == 0 {
		return domain.RouteInfo{
			Efficiency: 100,
			Groupings:  []domain.ActivityGroup{},
			Reasoning:  "No activities planned for this day - enjoy free time!",
		}
	}

	located := e.resolveLocations(activities)
	groups := groupByProximity(located)

	totalKm := 0.0
	for i := 0; i < len(located)-1; i++ {
		totalKm += domain.Distance(*located[i].Location, *located[i+1].Location)
	}

	travelMin := int(math.Ceil(totalKm/travelSpeedKmh*60)) + stopOverheadMin*(len(located)-1)

	efficiency := int(math.Round((1 - totalKm/(baselineLegKm*float64(len(located)))) * 100))
	if efficiency < 0 {
		efficiency = 0
	}
	if efficiency > 100 {
		efficiency = 100
	}

	stops := make([]domain.ActivityStop, 0, len(located))
	for _, a := range located {
		stops = append(stops, domain.ActivityStop{Name: a.Name, Location: *a.Location})
	}

	return domain.RouteInfo{
		TotalDistanceKm:    math.Round(totalKm*100) / 100,
		EstimatedTravelMin: travelMin,
		Groupings:          groups,
		Efficiency:         efficiency,
		Reasoning:          buildReasoning(len(located), len(groups), totalKm),
		Stops:              stops,
	}
}

// resolveLocations attaches a coordinate to each activity: the fixed catalog
// position when known, otherwise a jittered point near the city center.
func (e *Estimator) resolveLocations(activities []domain.Activity) []domain.Activity {
	out := make([]domain.Activity, len(activities))
	for i, a := range activities {
		loc, ok := catalog.LocationFor(a.Name)
		if !ok {
			loc = domain.Location{
				Lat:     catalog.CityCenter.Lat + (e.rng.Float64()-0.5)*jitterDegrees,
				Lng:     catalog.CityCenter.Lng + (e.rng.Float64()-0.5)*jitterDegrees,
				Address: catalog.CityCenter.Address,
			}
		}
		a.Location = &loc
		out[i] = a
	}
	return out
}

// groupByProximity clusters activities in input order: each unclustered
// activity seeds a group and absorbs every later unclustered activity within
// groupRadiusKm of the seed. Only distance to the seed is checked, so the
// result is order-dependent rather than true single-linkage.
func groupByProximity(located []domain.Activity) []domain.ActivityGroup {
	groups := make([]domain.ActivityGroup, 0, len(located))
	used := make([]bool, len(located))

	for i := range located {
		if used[i] {
			continue
		}
		members := []int{i}
		used[i] = true

		for j := i + 1; j < len(located); j++ {
			if used[j] {
				continue
			}
			if domain.Distance(*located[i].Location, *located[j].Location) < groupRadiusKm {
				members = append(members, j)
				used[j] = true
			}
		}

		groups = append(groups, buildGroup(located, members))
	}

	return groups
}

func buildGroup(located []domain.Activity, members []int) domain.ActivityGroup {
	var sumLat, sumLng float64
	names := make([]string, 0, len(members))
	categories := make(map[domain.Category]struct{}, len(members))
	for _, idx := range members {
		a := located[idx]
		sumLat += a.Location.Lat
		sumLng += a.Location.Lng
		names = append(names, a.Name)
		categories[a.Category] = struct{}{}
	}

	seed := located[members[0]]
	name := seed.Location.Address
	reason := "Single activity location - easy to find!"
	if len(members) > 1 {
		name = seed.Location.Address + " Cluster"
		variety := "Same-category activities in one area."
		if len(categories) > 1 {
			variety = "Mixed activities keep the day interesting!"
		}
		reason = fmt.Sprintf("Clustered %d activities to minimize travel time. %s", len(members), variety)
	}

	return domain.ActivityGroup{
		Name:       name,
		Activities: names,
		Center: domain.Location{
			Lat:     sumLat / float64(len(members)),
			Lng:     sumLng / float64(len(members)),
			Address: seed.Location.Address,
		},
		Reason: reason,
	}
}

func buildReasoning(activityCount, groupCount int, totalKm float64) string {
	plural := ""
	if groupCount > 1 {
		plural = "s"
	}
	reasoning := fmt.Sprintf("Smart grouping created %d cluster%s. ", groupCount, plural)

	avgKm := 0.0
	if activityCount > 1 {
		avgKm = totalKm / float64(activityCount-1)
	}

	switch {
	case groupCount == 1:
		reasoning += fmt.Sprintf("All %d activities are in the same area - maximum efficiency! Total walking distance: %.2fkm.", activityCount, totalKm)
	case avgKm < 1:
		reasoning += fmt.Sprintf("Activities are very close (avg %.2fkm apart). Easy walking distance!", avgKm)
	case avgKm < 2:
		reasoning += fmt.Sprintf("Activities are closely grouped (avg %.2fkm between stops). Consider walking or short taxi rides.", avgKm)
	default:
		reasoning += fmt.Sprintf("Average %.1fkm between activities. Consider metro, taxi, or ride-sharing for efficiency.", avgKm)
	}

	return reasoning
}
