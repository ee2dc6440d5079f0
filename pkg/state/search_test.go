package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/todos/pkg/filter"
)

func search(s *State, text string) {
	s.UpdateSearch(text)
	s.CommitSearch()
}

func TestSearchRoundTrip(t *testing.T) {
	s := withEntries("Cat", "Dog", "Caterpillar")

	search(s, "cat")
	if diff := cmp.Diff([]string{"Cat", "Caterpillar"}, descriptions(s.Entries())); diff != "" {
		t.Fatalf("search (-want +got):\n%s", diff)
	}
	if !s.Searching() {
		t.Fatalf("expected live search session")
	}
	if got := s.Filter(); got != filter.Search("cat") {
		t.Fatalf("filter = %+v", got)
	}

	search(s, "   ")
	if diff := cmp.Diff([]string{"Cat", "Dog", "Caterpillar"}, descriptions(s.Entries())); diff != "" {
		t.Fatalf("restore (-want +got):\n%s", diff)
	}
	if s.Searching() {
		t.Fatalf("backup should be cleared")
	}
	if s.Filter().IsSearch() {
		t.Fatalf("filter should no longer carry search text")
	}
}

func TestUpdateSearchDoesNotApply(t *testing.T) {
	s := withEntries("Cat", "Dog")
	s.UpdateSearch("cat")
	if s.Total() != 2 || s.Searching() {
		t.Fatalf("UpdateSearch must not touch entries")
	}
	if s.SearchValue != "cat" {
		t.Fatalf("SearchValue = %q", s.SearchValue)
	}
}

func TestBlankSearchWithoutSessionIsNoop(t *testing.T) {
	s := withEntries("Cat", "Dog")
	s.SetFilter(filter.Active())
	search(s, "")
	if s.Total() != 2 || s.Searching() || s.Filter() != filter.Active() {
		t.Fatalf("blank commit without a session should change nothing")
	}
}

// Repeated commits narrow the already narrowed set instead of searching the
// backup again. Clearing still restores the original universe.
func TestRepeatedSearchNarrows(t *testing.T) {
	s := withEntries("Cat", "Dog", "Caterpillar", "Hotdog")

	search(s, "cat")
	search(s, "dog")
	if got := s.Total(); got != 0 {
		t.Fatalf("second search should narrow cat results, got %v", descriptions(s.Entries()))
	}

	search(s, "")
	if diff := cmp.Diff([]string{"Cat", "Dog", "Caterpillar", "Hotdog"}, descriptions(s.Entries())); diff != "" {
		t.Fatalf("restore (-want +got):\n%s", diff)
	}
}

func TestBackupTakenOncePerSession(t *testing.T) {
	s := withEntries("Cat", "Dog", "Caterpillar")
	search(s, "cat")
	search(s, "pillar")
	if diff := cmp.Diff([]string{"Caterpillar"}, descriptions(s.Entries())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	search(s, "")
	if s.Total() != 3 {
		t.Fatalf("restore should bring back the pre-session entries, got %d", s.Total())
	}
}

func TestSetFilterEndsSearchSession(t *testing.T) {
	s := withEntries("Cat", "Dog", "Caterpillar")
	search(s, "cat")

	s.SetFilter(filter.Active())
	if s.Searching() {
		t.Fatalf("backup must be empty once the filter leaves search")
	}
	if s.Total() != 3 || s.SearchValue != "" {
		t.Fatalf("expected restore, got %v search=%q", descriptions(s.Entries()), s.SearchValue)
	}
}

func TestSearchToggleOperatesOnNarrowedSet(t *testing.T) {
	s := withEntries("Cat", "Dog", "Caterpillar")
	search(s, "cat")
	if err := s.Toggle(1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	e, _ := s.Entry(1)
	if !e.IsCompleted() || e.Description != "Caterpillar" {
		t.Fatalf("expected Caterpillar completed, got %+v", e)
	}
}

func TestEndSearch(t *testing.T) {
	s := withEntries("Cat", "Dog")
	s.EndSearch()
	if s.Total() != 2 {
		t.Fatalf("EndSearch without a session changed entries")
	}

	search(s, "dog")
	s.EndSearch()
	if s.Searching() || s.Total() != 2 || s.SearchValue != "" {
		t.Fatalf("EndSearch should restore, got %v", descriptions(s.Entries()))
	}
	if s.Filter() != filter.Search("") {
		t.Fatalf("filter = %+v", s.Filter())
	}
}

func TestSearchOnEmptyStore(t *testing.T) {
	s := New(nil)
	search(s, "cat")
	if s.Searching() || s.Total() != 0 {
		t.Fatalf("searching an empty store should hold no backup")
	}
	search(s, "")
	if s.Total() != 0 {
		t.Fatalf("unexpected entries")
	}
}
