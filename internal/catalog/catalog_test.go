package catalog

import (
	"testing"

	"github.com/wanderlab/trip-budget-api/internal/domain"
)

func TestActivitiesFor_EveryCategoryPopulated(t *testing.T) {
	for _, c := range domain.Categories() {
		as := ActivitiesFor(c)
		if len(as) == 0 {
			t.Fatalf("category %s has no activities", c)
		}
		for _, a := range as {
			if a.Name == "" || a.Duration == "" || a.Description == "" {
				t.Fatalf("incomplete activity %+v", a)
			}
			if a.Category != c {
				t.Fatalf("activity %q filed under %s but tagged %s", a.Name, c, a.Category)
			}
			if a.EstimatedCost <= 0 {
				t.Fatalf("activity %q has non-positive cost %v", a.Name, a.EstimatedCost)
			}
		}
	}
}

func TestActivitiesFor_UnknownCategoryIsEmpty(t *testing.T) {
	if as := ActivitiesFor(domain.Category("skydiving")); len(as) != 0 {
		t.Fatalf("expected empty slice, got %d entries", len(as))
	}
}

func TestActivitiesFor_ReturnsCopy(t *testing.T) {
	as := ActivitiesFor(domain.CategoryFood)
	as[0].Name = "mutated"
	if ActivitiesFor(domain.CategoryFood)[0].Name == "mutated" {
		t.Fatal("catalog table leaked a mutable reference")
	}
}

func TestCheapestFirst_SortedAscending(t *testing.T) {
	for _, c := range domain.Categories() {
		as := CheapestFirst(c)
		for i := 1; i < len(as); i++ {
			if as[i].EstimatedCost < as[i-1].EstimatedCost {
				t.Fatalf("category %s not sorted: %v before %v", c, as[i-1].EstimatedCost, as[i].EstimatedCost)
			}
		}
	}
}

func TestCheapestFirst_DoesNotReorderCatalogOrder(t *testing.T) {
	before := ActivitiesFor(domain.CategorySightseeing)
	_ = CheapestFirst(domain.CategorySightseeing)
	after := ActivitiesFor(domain.CategorySightseeing)
	for i := range before {
		if before[i].Name != after[i].Name {
			t.Fatalf("catalog order changed at %d: %q -> %q", i, before[i].Name, after[i].Name)
		}
	}
}

func TestLocationFor_KnownAndUnknown(t *testing.T) {
	loc, ok := LocationFor("City Museum")
	if !ok {
		t.Fatal("expected a fixed location for City Museum")
	}
	if loc.Address != "Downtown Cultural District" {
		t.Fatalf("address = %q", loc.Address)
	}
	if _, ok := LocationFor("Nonexistent Venue"); ok {
		t.Fatal("expected no location for unknown name")
	}
}

func TestEveryCatalogEntryHasFixedLocation(t *testing.T) {
	for _, c := range domain.Categories() {
		for _, a := range ActivitiesFor(c) {
			if _, ok := LocationFor(a.Name); !ok {
				t.Fatalf("activity %q has no fixed location", a.Name)
			}
		}
	}
}
