package services

import (
	"context"
	"sort"
	"testing"
)

func TestAvailableColorsSortedCopy(t *testing.T) {
	svc := NewFiltersService(testLogger(t), &fakeWovenRepo{})

	colors := svc.AvailableColors()
	if len(colors) == 0 {
		t.Fatal("colors: want non-empty list")
	}
	if !sort.StringsAreSorted(colors) {
		t.Fatalf("colors not sorted: %v", colors)
	}

	// Mutating the returned slice must not leak into later calls.
	colors[0] = "zzz"
	if again := svc.AvailableColors(); again[0] == "zzz" {
		t.Fatal("AvailableColors returned shared backing array")
	}
}

func TestAvailableCategoriesSorted(t *testing.T) {
	svc := NewFiltersService(testLogger(t), &fakeWovenRepo{})

	cats := svc.AvailableCategories()
	if len(cats) == 0 {
		t.Fatal("categories: want non-empty list")
	}
	if !sort.StringsAreSorted(cats) {
		t.Fatalf("categories not sorted: %v", cats)
	}
}

func TestReferencesNeverNil(t *testing.T) {
	svc := NewFiltersService(testLogger(t), &fakeWovenRepo{references: nil})

	refs, err := svc.References(context.Background())
	if err != nil {
		t.Fatalf("References: %v", err)
	}
	if refs == nil {
		t.Fatal("references: want empty slice, got nil")
	}

	svc = NewFiltersService(testLogger(t), &fakeWovenRepo{draws: nil})
	draws, err := svc.Draws(context.Background())
	if err != nil {
		t.Fatalf("Draws: %v", err)
	}
	if draws == nil {
		t.Fatal("draws: want empty slice, got nil")
	}
}
