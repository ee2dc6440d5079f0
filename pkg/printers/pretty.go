package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todos/pkg/entry"
	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/glyph"
)

// Counts is the footer summary printed under a list.
type Counts struct {
	Active    int
	Completed int
}

type PrettyPrint struct {
	Out io.Writer
	// ShowIndex prefixes each row with its filtered index.
	ShowIndex bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(f filter.Filter) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprint(pp.out(), f.Label())
	if f.IsSearch() {
		c := color.New(color.Faint)
		_, _ = c.Fprintf(pp.out(), " %q", f.Text)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	editing := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = " "
	for i, e := range entries {
		desc := e.Description
		switch e.Status {
		case entry.Completed:
			desc = done.Sprint(desc)
		case entry.Editing:
			desc = editing.Sprint(desc)
		}
		sym := glyph.ForStatus(e.Status).Symbol
		if pp.ShowIndex {
			tbl.AddRow(y.Sprint(strconv.Itoa(i)), sym, desc)
		} else {
			tbl.AddRow(sym, desc)
		}
	}
	if pp.ShowIndex {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Footer(c Counts) {
	f := color.New(color.Faint)
	_, _ = f.Fprint(pp.out(), ItemsLeft(c.Active))
	if c.Completed > 0 {
		_, _ = f.Fprintf(pp.out(), "  ·  Clear completed (%d)", c.Completed)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// ItemsLeft renders the active counter the way the footer shows it.
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
