package domain

// Category classifies catalog activities. The set is closed; unknown values are
// a caller programming error and are ignored rather than validated.
type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryFood        Category = "food"
	CategoryAdventure   Category = "adventure"
	CategoryShopping    Category = "shopping"
	CategoryRelaxation  Category = "relaxation"
)

// Categories returns the closed category set in canonical order. Selection and
// quota assignment iterate this order so results do not depend on map iteration.
func Categories() []Category {
	return []Category{
		CategorySightseeing,
		CategoryFood,
		CategoryAdventure,
		CategoryShopping,
		CategoryRelaxation,
	}
}

// Priority governs removal order under budget pressure: optional activities are
// removed before nice-to-have, which are removed before must-have.
type Priority string

const (
	PriorityMustHave   Priority = "must-have"
	PriorityNiceToHave Priority = "nice-to-have"
	PriorityOptional   Priority = "optional"
)

// RemovalOrder lists priorities from least to most protected.
func RemovalOrder() []Priority {
	return []Priority{PriorityOptional, PriorityNiceToHave, PriorityMustHave}
}

// Preferences marks which categories the traveler wants included.
// The empty map (nothing enabled) is a valid value.
type Preferences map[Category]bool

// Enabled returns the enabled categories in canonical order.
func (p Preferences) Enabled() []Category {
	out := make([]Category, 0, len(p))
	for _, c := range Categories() {
		if p[c] {
			out = append(out, c)
		}
	}
	return out
}

// Priorities assigns a removal priority per category.
type Priorities map[Category]Priority

// Activity is a catalog entry for a bookable experience. Activities are
// immutable and sourced entirely from the static catalog, never from user input.
type Activity struct {
	Name          string
	Category      Category
	EstimatedCost float64
	Duration      string
	Description   string

	// Location is resolved at route-estimation time; nil until then.
	Location *Location
}
