package store

import (
	"encoding/json"
	"errors"

	"tableflip.dev/todos/pkg/entry"
)

// Encode writes entries as a JSON array of {description, status}.
func Encode(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a slot written by Encode.
func Decode(data []byte) ([]entry.Entry, error) {
	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, errors.New("store: slot does not hold an entry list")
	}
	return entries, nil
}
