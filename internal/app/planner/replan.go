package planner

import (
	"github.com/wanderlab/trip-budget-api/internal/catalog"
	"github.com/wanderlab/trip-budget-api/internal/domain"
)

// replan reduces an over-budget itinerary tier by tier: inside each priority
// tier it repeatedly targets the most expensive remaining activity, preferring
// a cheaper same-category substitute over outright removal. It works on a deep
// copy and never touches the caller's itinerary.
//
// This is a greedy heuristic, not a constrained optimizer: each step either
// swaps to a strictly cheaper activity or drops one, so it terminates, but the
// final cost is not guaranteed minimal for the priority constraints.
func (s *Service) replan(itinerary []domain.DayItinerary, budget float64, priorities domain.Priorities) []domain.DayItinerary {
	days := cloneItinerary(itinerary)
	total := itineraryCost(days)

	for _, tier := range domain.RemovalOrder() {
		for total > budget && activityCount(days) > 0 {
			dayIdx, actIdx := mostExpensiveAtTier(days, priorities, tier)
			if dayIdx < 0 {
				// Nothing left at this tier; escalate to the next one.
				break
			}

			day := &days[dayIdx]
			victim := day.Activities[actIdx]
			if alt, ok := cheaperAlternative(victim, day.Activities); ok {
				day.Activities[actIdx] = alt
			} else {
				day.Activities = append(day.Activities[:actIdx], day.Activities[actIdx+1:]...)
			}

			day.TotalCost = activitiesCost(day.Activities)
			route := s.routes.Estimate(day.Activities)
			day.Route = &route

			total = itineraryCost(days)
		}
		if total <= budget {
			break
		}
	}

	return days
}

// mostExpensiveAtTier scans day-major, then by position, and returns the first
// activity holding the strictly greatest cost among those whose category sits
// at the given priority tier. (-1, -1) means the tier is exhausted.
func mostExpensiveAtTier(days []domain.DayItinerary, priorities domain.Priorities, tier domain.Priority) (int, int) {
	maxCost := 0.0
	dayIdx, actIdx := -1, -1
	for di, day := range days {
		for ai, a := range day.Activities {
			if priorities[a.Category] != tier {
				continue
			}
			if a.EstimatedCost > maxCost {
				maxCost = a.EstimatedCost
				dayIdx, actIdx = di, ai
			}
		}
	}
	return dayIdx, actIdx
}

// cheaperAlternative returns the first catalog-order activity in the victim's
// category that costs strictly less and is not already scheduled that day.
func cheaperAlternative(victim domain.Activity, dayActivities []domain.Activity) (domain.Activity, bool) {
	for _, cand := range catalog.ActivitiesFor(victim.Category) {
		if cand.EstimatedCost >= victim.EstimatedCost {
			continue
		}
		if containsName(dayActivities, cand.Name) {
			continue
		}
		return cand, true
	}
	return domain.Activity{}, false
}

func containsName(acts []domain.Activity, name string) bool {
	for _, a := range acts {
		if a.Name == name {
			return true
		}
	}
	return false
}

func cloneItinerary(itinerary []domain.DayItinerary) []domain.DayItinerary {
	out := make([]domain.DayItinerary, len(itinerary))
	for i, day := range itinerary {
		cp := day
		cp.Activities = append([]domain.Activity(nil), day.Activities...)
		if day.Route != nil {
			r := *day.Route
			r.Groupings = append([]domain.ActivityGroup(nil), day.Route.Groupings...)
			r.Stops = append([]domain.ActivityStop(nil), day.Route.Stops...)
			cp.Route = &r
		}
		out[i] = cp
	}
	return out
}
