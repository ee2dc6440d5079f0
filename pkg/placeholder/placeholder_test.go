package placeholder

import (
	"math/rand/v2"
	"slices"
	"testing"

	"tableflip.dev/todos/pkg/entry"
)

func TestEntries(t *testing.T) {
	got := Entries(50, rand.New(rand.NewPCG(1, 2)))
	if len(got) != 50 {
		t.Fatalf("len = %d", len(got))
	}
	for _, e := range got {
		if e.Status != entry.New {
			t.Fatalf("placeholder status = %s", e.Status)
		}
		if !slices.Contains(animals, e.Description) {
			t.Fatalf("unexpected description %q", e.Description)
		}
	}
}

func TestEntriesDeterministicWithSeed(t *testing.T) {
	a := Entries(10, rand.New(rand.NewPCG(7, 7)))
	b := Entries(10, rand.New(rand.NewPCG(7, 7)))
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different entries")
	}
}

func TestEntriesNonPositive(t *testing.T) {
	if got := Entries(0, nil); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if got := Entries(-3, nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
