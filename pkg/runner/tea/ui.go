// Package teaui is the interactive terminal interface for the entry list.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/entry"
	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/glyph"
	"tableflip.dev/todos/pkg/printers"
	"tableflip.dev/todos/pkg/runner/tea/internal/theme"
	"tableflip.dev/todos/pkg/state"
	"tableflip.dev/todos/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
	modeSearch
)

const (
	defaultWidth = 80
	barWidth     = 20
)

var (
	styles = theme.Default()

	barFrom = colorful.Color{R: 0.88, G: 0.42, B: 0.46}
	barTo   = colorful.Color{R: 0.60, G: 0.76, B: 0.47}
)

// Model is the bubbletea model driving one app.Service.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	events <-chan store.Event

	mode      mode
	cursor    int
	editIndex int

	input  textinput.Model
	status string

	width  int
	height int
}

type errMsg struct{ err error }

type storeEventMsg struct{ event store.Event }

// New creates a UI model backed by svc.
func New(ctx context.Context, svc *app.Service) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	return Model{
		svc:    svc,
		ctx:    ctx,
		mode:   modeNormal,
		input:  ti,
		status: "a add, space toggle, e edit, d remove, / search, q quit",
		width:  defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case storeEventMsg:
		if m.mode == modeNormal && m.svc.Reload(m.ctx) {
			m.status = "Reloaded"
		}
		cmds = append(cmds, m.waitForEvent())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg))
		default:
			cmds = append(cmds, m.updateInput(msg))
		}
	}
	m.clampCursor()
	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		if err := m.svc.Close(m.ctx); err != nil {
			m.status = "ERR: " + err.Error()
		}
		return tea.Quit
	case "j", "down":
		m.cursor++
	case "k", "up":
		m.cursor--
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.svc.View()) - 1
	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "What needs to be done?"
		return m.focusInput(m.svc.Draft())
	case "e":
		e, err := m.svc.Entry(m.cursor)
		if err != nil {
			return m.fail(err)
		}
		switch e.Status {
		case entry.Completed:
			m.status = "Completed entries can not be edited"
			return nil
		case entry.New:
			if err := m.svc.ToggleEdit(m.ctx, m.cursor); err != nil {
				return m.fail(err)
			}
		default:
			m.svc.UpdateEdit(e.Description)
		}
		m.mode = modeEdit
		m.editIndex = m.cursor
		m.input.Placeholder = "Edit entry"
		return m.focusInput(m.svc.EditValue())
	case "space", " ", "x":
		return m.apply("Toggled", func() error { return m.svc.Toggle(m.ctx, m.cursor) })
	case "d":
		return m.apply("Removed", func() error { return m.svc.Remove(m.ctx, m.cursor) })
	case "A":
		return m.apply("Toggled all", func() error { return m.svc.ToggleAll(m.ctx) })
	case "C":
		return m.apply("Cleared completed", func() error { return m.svc.ClearCompleted(m.ctx) })
	case "tab":
		return m.setFilter(m.nextFilter())
	case "1", "2", "3", "4":
		return m.setFilter(filter.Filters()[int(key[0]-'1')])
	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		return m.focusInput(m.svc.SearchValue())
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		md := m.mode
		m.leaveInput()
		switch md {
		case modeAdd:
			return m.apply("Added", func() error { return m.svc.CommitDraft(m.ctx) })
		case modeEdit:
			return m.apply("Edited", func() error { return m.svc.CommitEdit(m.ctx, m.editIndex) })
		case modeSearch:
			if err := m.svc.CommitSearch(m.ctx); err != nil {
				return m.fail(err)
			}
			m.cursor = 0
			if m.svc.Searching() {
				m.status = fmt.Sprintf("%d matches, search again with an empty query to restore", len(m.svc.View()))
			} else {
				m.status = "Search cleared"
			}
		}
		return nil
	case "esc":
		md := m.mode
		m.leaveInput()
		switch md {
		case modeAdd:
			m.svc.UpdateDraft("")
			m.status = "Add cancelled"
		case modeEdit:
			if err := m.svc.ToggleEdit(m.ctx, m.editIndex); err != nil {
				return m.fail(err)
			}
			m.status = "Edit cancelled"
		case modeSearch:
			m.status = "Search cancelled"
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	switch m.mode {
	case modeAdd:
		m.svc.UpdateDraft(m.input.Value())
	case modeEdit:
		m.svc.UpdateEdit(m.input.Value())
	case modeSearch:
		m.svc.UpdateSearch(m.input.Value())
	}
	return cmd
}

func (m *Model) focusInput(value string) tea.Cmd {
	m.input.SetValue(value)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) leaveInput() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) apply(done string, op func() error) tea.Cmd {
	if err := op(); err != nil {
		return m.fail(err)
	}
	m.status = done
	return nil
}

func (m *Model) fail(err error) tea.Cmd {
	if errors.Is(err, state.ErrIndexOutOfRange) {
		m.status = "Nothing selected"
		return nil
	}
	return func() tea.Msg { return errMsg{err} }
}

func (m *Model) setFilter(f filter.Filter) tea.Cmd {
	if err := m.svc.SetFilter(m.ctx, f); err != nil {
		return m.fail(err)
	}
	m.cursor = 0
	m.status = "Showing " + strings.ToLower(f.Label())
	return nil
}

func (m *Model) nextFilter() filter.Filter {
	all := filter.Filters()
	current := m.svc.Filter()
	for i, f := range all {
		if f.SameKind(current) {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (m *Model) clampCursor() {
	n := len(m.svc.View())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Header.Title.Render("todos"))
	b.WriteString("\n\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	view := m.svc.View()
	if len(view) == 0 {
		b.WriteString(styles.List.Empty.Render("  nothing here"))
		b.WriteString("\n")
	}
	for i, e := range view {
		b.WriteString(m.row(i, e))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString("Add: " + m.input.View() + "\n\n")
	case modeEdit:
		b.WriteString("Edit: " + m.input.View() + "\n\n")
	case modeSearch:
		b.WriteString("/" + m.input.View() + "\n\n")
	}

	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(styles.Footer.Status.Render(m.status))
	return b.String()
}

func (m Model) filterBar() string {
	current := m.svc.Filter()
	tabs := make([]string, 0, 4)
	for i, f := range filter.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f.SameKind(current) {
			if current.IsSearch() {
				label += fmt.Sprintf(" %q", current.Text)
			}
			tabs = append(tabs, styles.Header.TabActive.Render(label))
			continue
		}
		tabs = append(tabs, styles.Header.TabInactive.Render(label))
	}
	return strings.Join(tabs, "  ")
}

func (m Model) row(i int, e entry.Entry) string {
	pointer := "  "
	if i == m.cursor && m.mode == modeNormal {
		pointer = "→ "
	}
	width := m.width - 6
	if width < 10 {
		width = 10
	}
	desc := truncate.StringWithTail(e.Description, uint(width), "…")
	switch e.Status {
	case entry.Completed:
		desc = styles.List.Completed.Render(desc)
	case entry.Editing:
		desc = styles.List.Editing.Render(desc)
	}
	return pointer + glyph.ForStatus(e.Status).Symbol + " " + desc
}

func (m Model) footer() string {
	active, completed := m.svc.TotalActive(), m.svc.TotalCompleted()
	parts := []string{completionBar(completed, m.svc.Total()), printers.ItemsLeft(active)}
	if completed > 0 {
		parts = append(parts, fmt.Sprintf("Clear completed (%d)", completed))
	}
	return strings.Join(parts, "  ")
}

// completionBar draws done/total as a bar whose colour moves from red to
// green as the list gets completed.
func completionBar(done, total int) string {
	if total == 0 {
		return lipgloss.NewStyle().Foreground(styles.Footer.BarEmpty).Render(strings.Repeat("░", barWidth))
	}
	ratio := float64(done) / float64(total)
	filled := int(ratio * barWidth)
	c := barFrom.BlendLuv(barTo, ratio).Clamped()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.Footer.BarEmpty).Render(strings.Repeat("░", barWidth-filled))
}
