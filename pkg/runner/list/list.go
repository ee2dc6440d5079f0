// Package list renders the filtered view of the entry list.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/entry"
	"tableflip.dev/todos/pkg/printers"
)

// Row is an entry as it appears in structured output.
type Row struct {
	Index       int          `json:"index" yaml:"index"`
	Description string       `json:"description" yaml:"description"`
	Status      entry.Status `json:"status" yaml:"-"`
	StatusName  string       `json:"-" yaml:"status"`
}

// Listing is the structured form of a listing.
type Listing struct {
	Filter         string `json:"filter" yaml:"filter"`
	Entries        []Row  `json:"entries" yaml:"entries"`
	Total          int    `json:"total" yaml:"total"`
	Active         int    `json:"active" yaml:"active"`
	Completed      int    `json:"completed" yaml:"completed"`
	IsAllCompleted bool   `json:"allCompleted" yaml:"allCompleted"`
}

// NewListing captures the current view and counters of svc.
func NewListing(svc *app.Service) Listing {
	view := svc.View()
	rows := make([]Row, 0, len(view))
	for i, e := range view {
		rows = append(rows, Row{Index: i, Description: e.Description, Status: e.Status, StatusName: e.Status.String()})
	}
	return Listing{
		Filter:         svc.Filter().String(),
		Entries:        rows,
		Total:          svc.Total(),
		Active:         svc.TotalActive(),
		Completed:      svc.TotalCompleted(),
		IsAllCompleted: svc.IsAllCompleted(),
	}
}

// List prints the view of Service.
type List struct {
	Service   *app.Service
	Output    string
	ShowIndex bool
	// StatsOnly prints the counters without the entries.
	StatsOnly bool
	Out       io.Writer
}

func (l *List) Do(_ context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no service")
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}

	listing := NewListing(l.Service)
	if l.StatsOnly {
		listing.Entries = nil
	}

	switch strings.ToLower(l.Output) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(listing); err != nil {
			return err
		}
		return enc.Close()
	case "", "pretty":
		pp := printers.PrettyPrint{Out: out, ShowIndex: l.ShowIndex}
		if !l.StatsOnly {
			pp.NewLine()
			pp.Title(l.Service.Filter())
			pp.Entries(l.Service.View()...)
		}
		pp.Footer(printers.Counts{Active: listing.Active, Completed: listing.Completed})
		return nil
	default:
		return fmt.Errorf("unknown output format %q", l.Output)
	}
}
