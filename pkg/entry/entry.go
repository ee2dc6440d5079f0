// Package entry defines a single task item and its status.
package entry

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state of an entry. Exactly one holds at a time.
type Status int

const (
	New Status = iota
	Completed
	Editing
)

var statusNames = map[Status]string{
	New:       "New",
	Completed: "Completed",
	Editing:   "Editing",
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	return []Status{New, Completed, Editing}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus converts a status tag back into a Status.
func ParseStatus(tag string) (Status, error) {
	for s, name := range statusNames {
		if name == tag {
			return s, nil
		}
	}
	return New, fmt.Errorf("entry: unknown status %q", tag)
}

// MarshalJSON writes the status as its tag string.
func (s Status) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("entry: unknown status %d", int(s))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts only the known status tags.
func (s *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("entry: status must be a string: %w", err)
	}
	parsed, err := ParseStatus(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// NewEntry creates an entry in New status.
func NewEntry(description string) Entry {
	return Entry{Description: description, Status: New}
}

// Entry is one task item.
type Entry struct {
	Description string `json:"description"`
	Status      Status `json:"status"`
}

func (e Entry) IsCompleted() bool { return e.Status == Completed }
func (e Entry) IsEditing() bool   { return e.Status == Editing }

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Status, e.Description)
}
