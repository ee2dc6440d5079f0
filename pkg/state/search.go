package state

import (
	"strings"

	"tableflip.dev/todos/pkg/filter"
)

// UpdateSearch stores the pending search text without applying it.
func (s *State) UpdateSearch(text string) {
	s.SearchValue = text
}

// Searching reports whether a search session holds a backup.
func (s *State) Searching() bool {
	return len(s.backup) > 0
}

// CommitSearch applies the pending search text.
//
// Blank text ends a live session by restoring the backup. Otherwise the
// entries are snapshotted once per session and then narrowed to the matches.
// A second commit without clearing narrows the already narrowed set rather
// than searching the backup again.
func (s *State) CommitSearch() {
	needle := strings.TrimSpace(s.SearchValue)
	if needle == "" {
		if s.Searching() {
			s.restore()
			s.filter = filter.Search("")
		}
		return
	}

	if !s.Searching() {
		s.backup = clone(s.entries)
	}
	f := filter.Search(needle)
	s.entries = f.View(s.entries)
	s.filter = f
}

// EndSearch restores the pre-search entries if a session is live.
func (s *State) EndSearch() {
	if s.Searching() {
		s.restore()
	}
	s.SearchValue = ""
	if s.filter.Kind == filter.KindSearch {
		s.filter = filter.Search("")
	}
}

// SetFilter changes the active filter. Any filter other than a non-empty
// search ends a live search session first, so a backup never outlives the
// search that created it.
func (s *State) SetFilter(f filter.Filter) {
	if !f.IsSearch() && s.Searching() {
		s.restore()
		s.SearchValue = ""
	}
	s.filter = f
}

func (s *State) restore() {
	s.entries = s.backup
	s.backup = nil
}
