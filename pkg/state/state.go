// Package state holds the ordered entry sequence and applies mutations to it.
//
// Indices accepted by the per-entry operations address the filtered view
// produced by the active filter. They are resolved to absolute positions with
// a fresh scan on every call; nothing is cached between mutations.
package state

import (
	"errors"
	"fmt"

	"tableflip.dev/todos/pkg/entry"
	"tableflip.dev/todos/pkg/filter"
)

// ErrIndexOutOfRange means a filtered index does not exist in the current
// view. It signals that the caller's view of the list is out of date.
var ErrIndexOutOfRange = errors.New("state: index out of range")

// IndexError carries the offending filtered index and the view length.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("state: filtered index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// State is owned by a single caller and is not safe for concurrent use.
type State struct {
	entries []entry.Entry
	backup  []entry.Entry
	filter  filter.Filter

	// Transient text buffers. They are never persisted.
	Draft       string
	EditValue   string
	SearchValue string
}

// New returns a state holding a copy of entries under the All filter.
func New(entries []entry.Entry) *State {
	return &State{
		entries: clone(entries),
		filter:  filter.All(),
	}
}

// Entries returns a copy of the absolute sequence.
func (s *State) Entries() []entry.Entry {
	return clone(s.entries)
}

// Replace swaps the absolute sequence, e.g. after a reload from storage.
func (s *State) Replace(entries []entry.Entry) {
	s.entries = clone(entries)
}

// Filter returns the active filter.
func (s *State) Filter() filter.Filter {
	return s.filter
}

// View returns the entries visible under the active filter.
func (s *State) View() []entry.Entry {
	return s.filter.View(s.entries)
}

// Entry returns the entry at a filtered index.
func (s *State) Entry(i int) (entry.Entry, error) {
	abs, err := s.resolve(i)
	if err != nil {
		return entry.Entry{}, err
	}
	return s.entries[abs], nil
}

// Add appends a new entry. Empty and duplicate descriptions are accepted.
func (s *State) Add(description string) {
	s.entries = append(s.entries, entry.NewEntry(description))
}

// Toggle flips New and Completed. Editing entries are left alone.
func (s *State) Toggle(i int) error {
	abs, err := s.resolve(i)
	if err != nil {
		return err
	}
	e := &s.entries[abs]
	switch e.Status {
	case entry.Completed:
		e.Status = entry.New
	case entry.New:
		e.Status = entry.Completed
	}
	return nil
}

// ToggleEdit flips New and Editing. Completed entries are left alone.
func (s *State) ToggleEdit(i int) error {
	abs, err := s.resolve(i)
	if err != nil {
		return err
	}
	e := &s.entries[abs]
	switch e.Status {
	case entry.New:
		e.Status = entry.Editing
	case entry.Editing:
		e.Status = entry.New
	}
	return nil
}

// CompleteEdit replaces the description and always leaves the entry New.
func (s *State) CompleteEdit(i int, description string) error {
	abs, err := s.resolve(i)
	if err != nil {
		return err
	}
	s.entries[abs].Description = description
	s.entries[abs].Status = entry.New
	return nil
}

// Remove deletes the entry, keeping the order of the others.
func (s *State) Remove(i int) error {
	abs, err := s.resolve(i)
	if err != nil {
		return err
	}
	s.entries = append(s.entries[:abs], s.entries[abs+1:]...)
	return nil
}

// ToggleAll sets every entry in the current view to Completed or New.
// Entries being edited are skipped.
func (s *State) ToggleAll(completed bool) {
	target := entry.New
	if completed {
		target = entry.Completed
	}
	for i := range s.entries {
		e := &s.entries[i]
		if e.Status == entry.Editing || !s.filter.Fits(*e) {
			continue
		}
		e.Status = target
	}
}

// ClearCompleted drops every completed entry regardless of the filter.
func (s *State) ClearCompleted() {
	s.entries = filter.Active().View(s.entries)
}

// Total counts all entries.
func (s *State) Total() int {
	return len(s.entries)
}

// TotalCompleted counts completed entries across the whole sequence.
func (s *State) TotalCompleted() int {
	return filter.Completed().Count(s.entries)
}

// TotalActive counts entries that are not completed.
func (s *State) TotalActive() int {
	return filter.Active().Count(s.entries)
}

// IsAllCompleted is false for an empty view.
func (s *State) IsAllCompleted() bool {
	seen := false
	for _, e := range s.entries {
		if !s.filter.Fits(e) {
			continue
		}
		if e.Status != entry.Completed {
			return false
		}
		seen = true
	}
	return seen
}

func (s *State) resolve(i int) (int, error) {
	n := 0
	if i >= 0 {
		for abs, e := range s.entries {
			if !s.filter.Fits(e) {
				continue
			}
			if n == i {
				return abs, nil
			}
			n++
		}
	} else {
		n = s.filter.Count(s.entries)
	}
	return -1, &IndexError{Index: i, Len: n}
}

func clone(entries []entry.Entry) []entry.Entry {
	if entries == nil {
		return []entry.Entry{}
	}
	out := make([]entry.Entry, len(entries))
	copy(out, entries)
	return out
}
