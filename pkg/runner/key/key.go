// Package key prints the legend of status glyphs, filters and TUI keys.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/glyph"
)

// Binding describes one key of the terminal UI.
type Binding struct {
	Keys    string
	Meaning string
}

// Bindings lists the terminal UI keys in the order the legend shows them.
func Bindings() []Binding {
	return []Binding{
		{"a", "add an entry"},
		{"space, x", "toggle completed"},
		{"e", "edit the entry"},
		{"d", "remove the entry"},
		{"A", "toggle all visible entries"},
		{"C", "clear completed"},
		{"1-4, tab", "switch filter"},
		{"/", "search"},
		{"q", "quit"},
	}
}

// Key prints a legend of glyphs, filters and key bindings.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Filter"), bold.Sprint("Link"))
	for _, f := range filter.Filters() {
		tbl.AddRow(f.Label(), f.Href())
	}
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range Bindings() {
		tbl.AddRow(b.Keys, b.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
