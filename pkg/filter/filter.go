// Package filter decides which entries are shown and operated on.
package filter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"tableflip.dev/todos/pkg/entry"
)

// Kind tags the Filter variant.
type Kind int

const (
	KindAll Kind = iota
	KindActive
	KindCompleted
	KindSearch
)

// Filter is a value type. Text is only meaningful for KindSearch.
type Filter struct {
	Kind Kind
	Text string
}

func All() Filter       { return Filter{Kind: KindAll} }
func Active() Filter    { return Filter{Kind: KindActive} }
func Completed() Filter { return Filter{Kind: KindCompleted} }

// Search matches descriptions containing text, ignoring case. The text is
// taken literally.
func Search(text string) Filter { return Filter{Kind: KindSearch, Text: text} }

// Filters lists the selectable filters in display order.
func Filters() []Filter {
	return []Filter{All(), Search(""), Active(), Completed()}
}

// IsSearch reports whether f is a Search filter with non-empty text.
func (f Filter) IsSearch() bool {
	return f.Kind == KindSearch && f.Text != ""
}

// Fits reports whether e is included by f.
func (f Filter) Fits(e entry.Entry) bool {
	return f.matcher()(e)
}

// View returns the entries included by f, in their original order. The
// result never aliases entries.
func (f Filter) View(entries []entry.Entry) []entry.Entry {
	fits := f.matcher()
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if fits(e) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries f includes.
func (f Filter) Count(entries []entry.Entry) int {
	fits := f.matcher()
	n := 0
	for _, e := range entries {
		if fits(e) {
			n++
		}
	}
	return n
}

func (f Filter) matcher() func(entry.Entry) bool {
	switch f.Kind {
	case KindAll:
		return func(entry.Entry) bool { return true }
	case KindActive:
		return func(e entry.Entry) bool {
			return e.Status == entry.New || e.Status == entry.Editing
		}
	case KindCompleted:
		return func(e entry.Entry) bool { return e.Status == entry.Completed }
	case KindSearch:
		folder := cases.Fold()
		needle := folder.String(f.Text)
		return func(e entry.Entry) bool {
			return strings.Contains(folder.String(e.Description), needle)
		}
	default:
		return func(entry.Entry) bool { return false }
	}
}

// Label is the name shown in filter bars.
func (f Filter) Label() string {
	switch f.Kind {
	case KindAll:
		return "All"
	case KindActive:
		return "Active"
	case KindCompleted:
		return "Completed"
	case KindSearch:
		return "Search"
	default:
		return fmt.Sprintf("Kind(%d)", int(f.Kind))
	}
}

// Href is the location fragment for the filter.
func (f Filter) Href() string {
	switch f.Kind {
	case KindActive:
		return "#/active"
	case KindCompleted:
		return "#/completed"
	case KindSearch:
		return "#/search"
	default:
		return "#/"
	}
}

// SameKind reports whether both filters are the same variant, ignoring
// search text.
func (f Filter) SameKind(o Filter) bool {
	return f.Kind == o.Kind
}

func (f Filter) String() string {
	if f.Kind == KindSearch && f.Text != "" {
		return "search:" + f.Text
	}
	return strings.ToLower(f.Label())
}

// Parse accepts a label ("active"), an href ("#/active") or "search:<text>".
// Labels are matched case-insensitively; search text is kept verbatim.
func Parse(s string) (Filter, error) {
	trimmed := strings.TrimSpace(s)
	if head, text, ok := strings.Cut(trimmed, ":"); ok && strings.EqualFold(head, "search") {
		return Search(text), nil
	}
	switch strings.ToLower(trimmed) {
	case "", "all", "#/":
		return All(), nil
	case "active", "#/active":
		return Active(), nil
	case "completed", "#/completed":
		return Completed(), nil
	case "search", "#/search":
		return Search(""), nil
	}
	return Filter{}, fmt.Errorf("filter: unknown filter %q, expected one of all, active, completed, search:<text>", s)
}
