// Package catalog holds the static activity fixture the planner selects from.
// The tables are process-wide immutable constants; lookups return copies so
// callers can never mutate the fixture.
package catalog

import (
	"sort"

	"github.com/wanderlab/trip-budget-api/internal/domain"
)

var activities = map[domain.Category][]domain.Activity{
	domain.CategorySightseeing: {
		{Name: "City Museum", Category: domain.CategorySightseeing, EstimatedCost: 25, Duration: "3 hours", Description: "Explore history and art collections"},
		{Name: "Historic Walking Tour", Category: domain.CategorySightseeing, EstimatedCost: 30, Duration: "2 hours", Description: "Guided tour of historic landmarks"},
		{Name: "Botanical Gardens", Category: domain.CategorySightseeing, EstimatedCost: 15, Duration: "2 hours", Description: "Peaceful gardens with scenic views"},
	},
	domain.CategoryFood: {
		{Name: "Fine Dining", Category: domain.CategoryFood, EstimatedCost: 80, Duration: "2 hours", Description: "Upscale restaurant experience"},
		{Name: "Local Street Food Tour", Category: domain.CategoryFood, EstimatedCost: 20, Duration: "2 hours", Description: "Taste authentic local cuisine"},
		{Name: "Casual Restaurant", Category: domain.CategoryFood, EstimatedCost: 35, Duration: "1.5 hours", Description: "Comfortable dining with local flavors"},
	},
	domain.CategoryAdventure: {
		{Name: "Hiking Excursion", Category: domain.CategoryAdventure, EstimatedCost: 40, Duration: "4 hours", Description: "Trail hiking in natural surroundings"},
		{Name: "Rock Climbing", Category: domain.CategoryAdventure, EstimatedCost: 75, Duration: "3 hours", Description: "Indoor or outdoor climbing experience"},
		{Name: "Water Sports", Category: domain.CategoryAdventure, EstimatedCost: 60, Duration: "3 hours", Description: "Kayaking, paddleboarding, or jet skiing"},
	},
	domain.CategoryShopping: {
		{Name: "Designer Boutiques", Category: domain.CategoryShopping, EstimatedCost: 150, Duration: "3 hours", Description: "High-end shopping experience"},
		{Name: "Local Market", Category: domain.CategoryShopping, EstimatedCost: 40, Duration: "2 hours", Description: "Traditional market with local goods"},
		{Name: "Shopping Mall", Category: domain.CategoryShopping, EstimatedCost: 80, Duration: "3 hours", Description: "Modern shopping complex"},
	},
	domain.CategoryRelaxation: {
		{Name: "Spa & Wellness", Category: domain.CategoryRelaxation, EstimatedCost: 120, Duration: "2 hours", Description: "Massage and spa treatments"},
		{Name: "Yoga Class", Category: domain.CategoryRelaxation, EstimatedCost: 25, Duration: "1.5 hours", Description: "Morning or evening yoga session"},
		{Name: "Beach Relaxation", Category: domain.CategoryRelaxation, EstimatedCost: 10, Duration: "4 hours", Description: "Relax on the beach"},
	},
}

// ActivitiesFor returns the catalog entries for a category in stable catalog
// order. Unknown categories yield an empty slice, not an error.
func ActivitiesFor(c domain.Category) []domain.Activity {
	return append([]domain.Activity(nil), activities[c]...)
}

// CheapestFirst returns a category's entries sorted ascending by cost, ties
// broken by catalog order.
func CheapestFirst(c domain.Category) []domain.Activity {
	out := ActivitiesFor(c)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedCost < out[j].EstimatedCost
	})
	return out
}
