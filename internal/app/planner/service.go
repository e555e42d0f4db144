// Package planner builds budget-constrained itineraries: it selects catalog
// activities per the traveler's preferences, spreads them across days, checks
// the result against the budget, and reduces the plan by priority tier when it
// does not fit.
package planner

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/wanderlab/trip-budget-api/internal/app/routing"
	"github.com/wanderlab/trip-budget-api/internal/catalog"
	"github.com/wanderlab/trip-budget-api/internal/domain"
)

type Service struct {
	routes *routing.Estimator

	rng *rand.Rand
}

func NewService(routes *routing.Estimator) *Service {
	return &Service{
		routes: routes,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandForTest overrides the selection shuffle source for deterministic
// tests. It should not be used in production code.
func (s *Service) SetRandForTest(r *rand.Rand) {
	if r != nil {
		s.rng = r
	}
}

// PlanRequest carries pre-validated planning inputs (positive budget, 1-30
// days, non-empty city). Validation is the caller's concern; the planner
// reports outcomes as data, not errors.
type PlanRequest struct {
	Budget      float64
	Days        int
	City        string
	Preferences domain.Preferences
	Priorities  domain.Priorities
}

// Plan produces a complete TravelPlan. Replanning and route estimation finish
// before it returns; the result is never mutated afterwards.
func (s *Service) Plan(req PlanRequest) domain.TravelPlan {
	explanations := []domain.Explanation{}

	minRequired := s.minRequiredBudget(req.Preferences, req.Days)
	isFeasible := req.Budget >= minRequired

	enabled := req.Preferences.Enabled()
	explanations = append(explanations, domain.Explanation{
		Reason: "Activity Selection Based on Your Preferences",
		Detail: fmt.Sprintf(
			"You selected %d activity type(s): %s. The planner prioritized activities from these categories to match your interests.",
			len(enabled), joinCategories(enabled)),
		Impact: domain.ImpactPositive,
	})

	selected := s.selectActivities(req.Preferences, req.Days)
	itinerary := s.buildItinerary(selected, req.Days)

	explanations = append(explanations, domain.Explanation{
		Reason: "Activity Distribution Strategy",
		Detail: fmt.Sprintf(
			"Distributed %d activities across %d days (approximately %d activities per day) to create a balanced itinerary without overwhelming your schedule.",
			len(selected), req.Days, len(selected)/req.Days),
		Impact: domain.ImpactNeutral,
	})

	totalCost := itineraryCost(itinerary)
	rePlanned := false

	switch {
	case !isFeasible:
		// No partial plan is offered below the floor; report the shortfall.
		explanations = append(explanations, domain.Explanation{
			Reason: "Budget Constraint Detected",
			Detail: fmt.Sprintf(
				"Your budget of $%.0f is below the minimum required budget of $%.0f for the selected preferences and %d days. This is based on selecting only the most affordable activities in each category.",
				req.Budget, minRequired, req.Days),
			Impact: domain.ImpactConstraint,
		})
		itinerary = []domain.DayItinerary{}
		totalCost = minRequired

	case totalCost > req.Budget:
		originalCost := totalCost
		explanations = append(explanations, domain.Explanation{
			Reason: "Budget Optimization Required",
			Detail: fmt.Sprintf(
				"Initial plan cost $%.0f, exceeding your budget by $%.0f. Automatically re-planning using priority-based logic: removing optional activities first, then nice-to-have, while preserving must-have experiences.",
				originalCost, originalCost-req.Budget),
			Impact: domain.ImpactConstraint,
		})

		itinerary = s.replan(itinerary, req.Budget, req.Priorities)
		totalCost = itineraryCost(itinerary)
		rePlanned = true

		explanations = append(explanations, domain.Explanation{
			Reason: "Priority-Based Cost Reduction Achieved",
			Detail: fmt.Sprintf(
				"Reduced costs by $%.0f by removing %d activities. Followed your priority preferences: optional activities removed first, then nice-to-have if needed, while protecting all must-have experiences.",
				originalCost-totalCost, len(selected)-activityCount(itinerary)),
			Impact: domain.ImpactPositive,
		})

	default:
		explanations = append(explanations, domain.Explanation{
			Reason: "Budget Well-Aligned",
			Detail: fmt.Sprintf(
				"Your budget of $%.0f comfortably covers the planned activities (total cost: $%.0f). This leaves you with $%.0f for meals, transportation, and unexpected expenses.",
				req.Budget, totalCost, req.Budget-totalCost),
			Impact: domain.ImpactPositive,
		})
	}

	if e, ok := dayCostVariation(itinerary); ok {
		explanations = append(explanations, e)
	}

	return domain.TravelPlan{
		Budget:            req.Budget,
		TotalCost:         totalCost,
		Days:              req.Days,
		City:              req.City,
		Itinerary:         itinerary,
		IsWithinBudget:    totalCost <= req.Budget,
		BudgetStatus:      budgetStatus(totalCost, req.Budget),
		RePlanned:         rePlanned,
		IsFeasible:        isFeasible,
		MinRequiredBudget: minRequired,
		Explanations:      explanations,
	}
}

// selectActivities picks perCategoryQuota activities from each enabled
// category, cycling through the category's list when the quota exceeds it
// (duplicates are expected on long trips), then shuffles the combined set.
func (s *Service) selectActivities(prefs domain.Preferences, days int) []domain.Activity {
	categories := prefs.Enabled()
	if len(categories) == 0 {
		return nil
	}

	quota := perCategoryQuota(days, len(categories))
	selected := make([]domain.Activity, 0, quota*len(categories))
	for _, c := range categories {
		pool := catalog.ActivitiesFor(c)
		if len(pool) == 0 {
			continue
		}
		for i := 0; i < quota; i++ {
			selected = append(selected, pool[i%len(pool)])
		}
	}

	s.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

// selectCheapestActivities applies the same quota over cheapest-first category
// lists, truncated at the available count, with no shuffle. It exists only to
// compute the feasibility floor and is fully deterministic.
func (s *Service) selectCheapestActivities(prefs domain.Preferences, days int) []domain.Activity {
	categories := prefs.Enabled()
	if len(categories) == 0 {
		return nil
	}

	quota := perCategoryQuota(days, len(categories))
	var selected []domain.Activity
	for _, c := range categories {
		pool := catalog.CheapestFirst(c)
		n := quota
		if n > len(pool) {
			n = len(pool)
		}
		selected = append(selected, pool[:n]...)
	}
	return selected
}

// buildItinerary spreads activities across days in input order, ceil(n/days)
// per day; trailing days may be shorter or empty. The result always has
// exactly `days` entries.
func (s *Service) buildItinerary(selected []domain.Activity, days int) []domain.DayItinerary {
	perDay := 0
	if days > 0 {
		perDay = (len(selected) + days - 1) / days
	}

	itinerary := make([]domain.DayItinerary, 0, days)
	idx := 0
	for day := 1; day <= days; day++ {
		acts := make([]domain.Activity, 0, perDay)
		for i := 0; i < perDay && idx < len(selected); i++ {
			acts = append(acts, selected[idx])
			idx++
		}
		route := s.routes.Estimate(acts)
		itinerary = append(itinerary, domain.DayItinerary{
			Day:        day,
			Activities: acts,
			TotalCost:  activitiesCost(acts),
			Route:      &route,
		})
	}
	return itinerary
}

// minRequiredBudget is the cost of the cheapest itinerary honoring the same
// preferences and day count. Budgets below it are declared infeasible.
func (s *Service) minRequiredBudget(prefs domain.Preferences, days int) float64 {
	return itineraryCost(s.buildItinerary(s.selectCheapestActivities(prefs, days), days))
}

func perCategoryQuota(days, categoryCount int) int {
	q := (days*2 + categoryCount - 1) / categoryCount
	if q < 1 {
		q = 1
	}
	return q
}

func dayCostVariation(itinerary []domain.DayItinerary) (domain.Explanation, bool) {
	if len(itinerary) == 0 {
		return domain.Explanation{}, false
	}

	maxCost := 0.0
	minCost := 0.0
	for _, day := range itinerary {
		if day.TotalCost > maxCost {
			maxCost = day.TotalCost
		}
		if day.TotalCost > 0 && (minCost == 0 || day.TotalCost < minCost) {
			minCost = day.TotalCost
		}
	}
	if maxCost == 0 {
		return domain.Explanation{}, false
	}

	return domain.Explanation{
		Reason: "Daily Cost Variation",
		Detail: fmt.Sprintf(
			"Daily costs range from $%.0f to $%.0f. Higher-cost days include premium experiences, while lower-cost days balance the budget and provide relaxation time.",
			minCost, maxCost),
		Impact: domain.ImpactNeutral,
	}, true
}

func budgetStatus(totalCost, budget float64) domain.BudgetStatus {
	if totalCost <= budget {
		return domain.BudgetStatusWithin
	}
	return domain.BudgetStatusExceeded
}

func joinCategories(cs []domain.Category) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func activitiesCost(acts []domain.Activity) float64 {
	sum := 0.0
	for _, a := range acts {
		sum += a.EstimatedCost
	}
	return sum
}

func itineraryCost(itinerary []domain.DayItinerary) float64 {
	sum := 0.0
	for _, day := range itinerary {
		sum += day.TotalCost
	}
	return sum
}

func activityCount(itinerary []domain.DayItinerary) int {
	n := 0
	for _, day := range itinerary {
		n += len(day.Activities)
	}
	return n
}
