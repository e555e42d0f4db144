package domain

// BudgetStatus is the derived verdict on a plan's total cost.
type BudgetStatus string

const (
	BudgetStatusWithin   BudgetStatus = "within"
	BudgetStatusExceeded BudgetStatus = "exceeded"
)

// ExplanationImpact classifies a decision explanation for presentation.
type ExplanationImpact string

const (
	ImpactPositive   ExplanationImpact = "positive"
	ImpactNeutral    ExplanationImpact = "neutral"
	ImpactConstraint ExplanationImpact = "constraint"
)

// Explanation is one entry of the ordered decision trail attached to a plan.
type Explanation struct {
	Reason string
	Detail string
	Impact ExplanationImpact
}

// ActivityGroup is a set of same-day activities deemed geographically
// co-located for route display. Center is the mean of member coordinates.
type ActivityGroup struct {
	Name       string
	Activities []string
	Center     Location
	Reason     string
}

// ActivityStop records where a single activity sits on the day's route.
type ActivityStop struct {
	Name     string
	Location Location
}

// RouteInfo is the per-day route estimate. It is derived data, recomputed
// whenever the day's activity set changes.
type RouteInfo struct {
	TotalDistanceKm    float64
	EstimatedTravelMin int
	Groupings          []ActivityGroup
	Efficiency         int // 0-100
	Reasoning          string
	Stops              []ActivityStop
}

// DayItinerary holds one day's activities in assignment order (not time of
// day). TotalCost is always the exact sum of the activities' costs.
type DayItinerary struct {
	Day        int
	Activities []Activity
	TotalCost  float64
	Route      *RouteInfo
}

// TravelPlan is the result of a planning call. It is constructed once and
// never mutated; re-planning produces a new value.
type TravelPlan struct {
	Budget    float64
	TotalCost float64
	Days      int
	City      string
	Itinerary []DayItinerary

	IsWithinBudget bool
	BudgetStatus   BudgetStatus

	// RePlanned is true iff the budget reducer ran.
	RePlanned bool

	// IsFeasible is false when the budget cannot cover even the cheapest
	// itinerary honoring the same preferences; the itinerary is then empty
	// and TotalCost reports MinRequiredBudget.
	IsFeasible        bool
	MinRequiredBudget float64

	Explanations []Explanation
}
