package planner

import (
	"testing"

	"github.com/wanderlab/trip-budget-api/internal/domain"
)

func act(name string, c domain.Category, cost float64) domain.Activity {
	return domain.Activity{Name: name, Category: c, EstimatedCost: cost, Duration: "1 hour", Description: name}
}

func TestSelectActivities_QuotaWrapsWithDuplicates(t *testing.T) {
	svc := newTestService(1)
	prefs := domain.Preferences{domain.CategorySightseeing: true}

	// One category over five days: quota is ceil(10/1) = 10 against three
	// catalog entries, so the selection cycles and repeats.
	selected := svc.selectActivities(prefs, 5)
	if len(selected) != 10 {
		t.Fatalf("selected %d activities, want 10", len(selected))
	}
	seen := map[string]int{}
	for _, a := range selected {
		if a.Category != domain.CategorySightseeing {
			t.Fatalf("unexpected category %s", a.Category)
		}
		seen[a.Name]++
	}
	if len(seen) != 3 {
		t.Fatalf("distinct names = %d, want all 3 catalog entries", len(seen))
	}
	for name, n := range seen {
		if n < 3 {
			t.Fatalf("%q selected %d times, want at least 3", name, n)
		}
	}
}

func TestSelectActivities_EmptyPreferences(t *testing.T) {
	svc := newTestService(1)
	if got := svc.selectActivities(domain.Preferences{}, 4); len(got) != 0 {
		t.Fatalf("selected %d activities, want 0", len(got))
	}
}

func TestSelectCheapestActivities_TruncatesAndSorts(t *testing.T) {
	svc := newTestService(1)
	prefs := domain.Preferences{domain.CategoryRelaxation: true}

	selected := svc.selectCheapestActivities(prefs, 5)
	if len(selected) != 3 {
		t.Fatalf("selected %d activities, want 3 (truncated at catalog size)", len(selected))
	}
	for i := 1; i < len(selected); i++ {
		if selected[i].EstimatedCost < selected[i-1].EstimatedCost {
			t.Fatalf("not cheapest-first: %v after %v", selected[i].EstimatedCost, selected[i-1].EstimatedCost)
		}
	}
	if selected[0].Name != "Beach Relaxation" {
		t.Fatalf("cheapest = %q, want Beach Relaxation", selected[0].Name)
	}
}

func TestBuildItinerary_AlwaysHasDayPerRequestedDay(t *testing.T) {
	svc := newTestService(1)

	acts := []domain.Activity{
		act("a", domain.CategoryFood, 10),
		act("b", domain.CategoryFood, 20),
		act("c", domain.CategoryFood, 30),
		act("d", domain.CategoryFood, 40),
		act("e", domain.CategoryFood, 50),
	}

	itinerary := svc.buildItinerary(acts, 3)
	if len(itinerary) != 3 {
		t.Fatalf("days = %d, want 3", len(itinerary))
	}
	// ceil(5/3) = 2 per day; the last day absorbs the remainder.
	wantPerDay := []int{2, 2, 1}
	for i, day := range itinerary {
		if day.Day != i+1 {
			t.Fatalf("day index = %d, want %d", day.Day, i+1)
		}
		if len(day.Activities) != wantPerDay[i] {
			t.Fatalf("day %d has %d activities, want %d", day.Day, len(day.Activities), wantPerDay[i])
		}
		if day.Route == nil {
			t.Fatalf("day %d missing route", day.Day)
		}
	}

	empty := svc.buildItinerary(nil, 4)
	if len(empty) != 4 {
		t.Fatalf("empty selection days = %d, want 4", len(empty))
	}
	for _, day := range empty {
		if len(day.Activities) != 0 || day.TotalCost != 0 {
			t.Fatalf("day %d not empty: %+v", day.Day, day)
		}
	}
}

func TestMostExpensiveAtTier_FirstMaxWinsTies(t *testing.T) {
	priorities := domain.Priorities{
		domain.CategoryFood:     domain.PriorityOptional,
		domain.CategoryShopping: domain.PriorityMustHave,
	}
	days := []domain.DayItinerary{
		{Day: 1, Activities: []domain.Activity{
			act("pricey-shop", domain.CategoryShopping, 500),
			act("first-max", domain.CategoryFood, 90),
		}},
		{Day: 2, Activities: []domain.Activity{
			act("second-max", domain.CategoryFood, 90),
			act("cheap", domain.CategoryFood, 5),
		}},
	}

	di, ai := mostExpensiveAtTier(days, priorities, domain.PriorityOptional)
	if di != 0 || ai != 1 {
		t.Fatalf("picked (%d,%d), want (0,1): the scan-order first of tied maxima", di, ai)
	}

	di, ai = mostExpensiveAtTier(days, priorities, domain.PriorityNiceToHave)
	if di != -1 || ai != -1 {
		t.Fatalf("picked (%d,%d) for an empty tier, want (-1,-1)", di, ai)
	}
}

func TestCheaperAlternative_SkipsActivitiesAlreadyInDay(t *testing.T) {
	victim := act("Fine Dining", domain.CategoryFood, 80)

	// Catalog order for food is Fine Dining, Local Street Food Tour, Casual
	// Restaurant; the tour is the first cheaper candidate.
	alt, ok := cheaperAlternative(victim, []domain.Activity{victim})
	if !ok || alt.Name != "Local Street Food Tour" {
		t.Fatalf("alt = %+v ok=%v, want Local Street Food Tour", alt, ok)
	}

	// With the tour already scheduled that day, the next cheaper candidate wins.
	alt, ok = cheaperAlternative(victim, []domain.Activity{victim, alt})
	if !ok || alt.Name != "Casual Restaurant" {
		t.Fatalf("alt = %+v ok=%v, want Casual Restaurant", alt, ok)
	}

	// Nothing cheaper than the category floor.
	cheapest := act("Local Street Food Tour", domain.CategoryFood, 20)
	if _, ok := cheaperAlternative(cheapest, nil); ok {
		t.Fatal("expected no alternative below the category's cheapest entry")
	}
}

func TestReplan_DoesNotMutateCaller(t *testing.T) {
	svc := newTestService(1)
	original := svc.buildItinerary([]domain.Activity{
		act("Designer Boutiques", domain.CategoryShopping, 150),
		act("Spa & Wellness", domain.CategoryRelaxation, 120),
	}, 1)
	wantCost := original[0].TotalCost
	wantLen := len(original[0].Activities)

	_ = svc.replan(original, 50, domain.Priorities{
		domain.CategoryShopping:   domain.PriorityOptional,
		domain.CategoryRelaxation: domain.PriorityOptional,
	})

	if original[0].TotalCost != wantCost || len(original[0].Activities) != wantLen {
		t.Fatalf("caller's itinerary mutated: %+v", original[0])
	}
	if original[0].Activities[0].Name != "Designer Boutiques" {
		t.Fatalf("caller's activities reordered/replaced: %+v", original[0].Activities)
	}
}

func TestReplan_StopsAtZeroActivities(t *testing.T) {
	svc := newTestService(1)
	itinerary := svc.buildItinerary([]domain.Activity{
		act("Beach Relaxation", domain.CategoryRelaxation, 10),
		act("Yoga Class", domain.CategoryRelaxation, 25),
	}, 2)

	// A budget nothing can satisfy except the empty plan.
	got := svc.replan(itinerary, 0, uniformPriorities(domain.PriorityOptional))

	if n := len(got); n != 2 {
		t.Fatalf("day count changed to %d", n)
	}
	if itineraryCost(got) != 0 {
		t.Fatalf("cost = %v, want 0 after removing everything", itineraryCost(got))
	}
	for _, day := range got {
		if len(day.Activities) != 0 {
			t.Fatalf("day %d still has activities: %+v", day.Day, day.Activities)
		}
	}
}
