package teaui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/entry"
	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/store"
)

var (
	enter     = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc       = tea.KeyPressMsg{Code: tea.KeyEscape}
	tab       = tea.KeyPressMsg{Code: tea.KeyTab}
	space     = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	down      = tea.KeyPressMsg{Code: tea.KeyDown}
	backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}
)

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func newTestModel(t *testing.T, descs ...string) (Model, *store.Gateway) {
	t.Helper()
	ctx := context.Background()
	gw := store.NewGateway(store.NewMemory(), store.DefaultKey, nil)
	entries := make([]entry.Entry, 0, len(descs))
	for _, d := range descs {
		entries = append(entries, entry.NewEntry(d))
	}
	if err := gw.Save(ctx, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	svc, err := app.New(ctx, gw, app.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return New(ctx, svc), gw
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, char(r))
	}
	return m
}

func stored(t *testing.T, gw *store.Gateway) []string {
	t.Helper()
	entries, ok := gw.Load(context.Background())
	if !ok {
		t.Fatalf("nothing stored")
	}
	return descriptions(entries)
}

func descriptions(entries []entry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Description)
	}
	return out
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestAddEntry(t *testing.T) {
	m, gw := newTestModel(t, "walk")
	m = press(m, char('a'))
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want add", m.mode)
	}
	m = typeText(m, "milk")
	if m.svc.Draft() != "milk" {
		t.Fatalf("draft = %q", m.svc.Draft())
	}
	m = press(m, enter)
	if m.mode != modeNormal || m.svc.Draft() != "" {
		t.Fatalf("expected normal mode with cleared draft")
	}
	if diff := cmp.Diff([]string{"walk", "milk"}, stored(t, gw)); diff != "" {
		t.Fatalf("stored (-want +got):\n%s", diff)
	}
}

func TestAddCancel(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(press(m, char('a')), "x")
	m = press(m, esc)
	if m.svc.Total() != 0 || m.svc.Draft() != "" {
		t.Fatalf("cancel should drop the draft")
	}
}

func TestToggleAndRemoveFollowCursor(t *testing.T) {
	m, gw := newTestModel(t, "one", "two", "three")
	m = press(m, down, space)
	e, _ := m.svc.Entry(1)
	if !e.IsCompleted() {
		t.Fatalf("expected entry under cursor to be completed, got %+v", e)
	}
	m = press(m, char('x'))
	if e, _ = m.svc.Entry(1); e.IsCompleted() {
		t.Fatalf("x should toggle back")
	}

	m = press(m, char('d'))
	if diff := cmp.Diff([]string{"one", "three"}, stored(t, gw)); diff != "" {
		t.Fatalf("stored (-want +got):\n%s", diff)
	}

	m = press(m, down, down, down)
	if m.cursor != 1 {
		t.Fatalf("cursor should stay on the last row, got %d", m.cursor)
	}
}

func TestToggleAllAndClearCompleted(t *testing.T) {
	m, gw := newTestModel(t, "one", "two")
	m = press(m, char('A'))
	if !m.svc.IsAllCompleted() {
		t.Fatalf("A should complete every entry")
	}
	m = press(m, char('C'))
	if m.svc.Total() != 0 {
		t.Fatalf("C should clear completed entries")
	}
	if got := stored(t, gw); len(got) != 0 {
		t.Fatalf("stored = %v", got)
	}
}

func TestFilterKeys(t *testing.T) {
	m, _ := newTestModel(t, "one", "two")
	m = press(m, space, char('3'))
	if m.svc.Filter() != filter.Active() {
		t.Fatalf("3 should select Active, got %s", m.svc.Filter())
	}
	if diff := cmp.Diff([]string{"two"}, descriptions(m.svc.View())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	m = press(m, tab)
	if m.svc.Filter() != filter.Completed() {
		t.Fatalf("tab should move to Completed, got %s", m.svc.Filter())
	}
	m = press(m, tab)
	if m.svc.Filter() != filter.All() {
		t.Fatalf("tab should wrap to All, got %s", m.svc.Filter())
	}
}

func TestSearchSession(t *testing.T) {
	m, _ := newTestModel(t, "Cat", "Dog", "Caterpillar")
	m = typeText(press(m, char('/')), "cat")
	if m.svc.SearchValue() != "cat" || m.svc.Searching() {
		t.Fatalf("typing should only update the search buffer")
	}
	m = press(m, enter)
	if diff := cmp.Diff([]string{"Cat", "Caterpillar"}, descriptions(m.svc.View())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if !strings.Contains(stripANSI(m.View()), `2 Search "cat"`) {
		t.Fatalf("filter bar should show the search:\n%s", stripANSI(m.View()))
	}

	m = press(m, char('/'), backspace, backspace, backspace, enter)
	if m.svc.Searching() || m.svc.Total() != 3 {
		t.Fatalf("empty search should restore, got %v", descriptions(m.svc.View()))
	}
}

func TestEditEntry(t *testing.T) {
	m, gw := newTestModel(t, "walk")
	m = press(m, char('e'))
	if m.mode != modeEdit || m.input.Value() != "walk" {
		t.Fatalf("edit should start with the description, got mode=%v value=%q", m.mode, m.input.Value())
	}
	if e, _ := m.svc.Entry(0); !e.IsEditing() {
		t.Fatalf("entry should be editing")
	}
	m = press(typeText(m, "ed"), enter)
	e, _ := m.svc.Entry(0)
	if e.Description != "walked" || e.Status != entry.New {
		t.Fatalf("after edit: %+v", e)
	}
	if diff := cmp.Diff([]string{"walked"}, stored(t, gw)); diff != "" {
		t.Fatalf("stored (-want +got):\n%s", diff)
	}
}

func TestEditCancelAndCompleted(t *testing.T) {
	m, _ := newTestModel(t, "walk")
	m = press(m, char('e'), esc)
	if e, _ := m.svc.Entry(0); e.Status != entry.New || e.Description != "walk" {
		t.Fatalf("cancel should leave the entry untouched, got %+v", e)
	}

	m = press(m, space, char('e'))
	if m.mode != modeNormal {
		t.Fatalf("completed entries should not enter edit mode")
	}
}

func TestEmptyListKeysAreHarmless(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, space, char('d'), char('e'))
	if m.status != "Nothing selected" {
		t.Fatalf("status = %q", m.status)
	}
	if !strings.Contains(stripANSI(m.View()), "nothing here") {
		t.Fatalf("empty view should say so")
	}
}

func TestViewRendersRowsAndCounters(t *testing.T) {
	m, _ := newTestModel(t, "walk dog", "feed cat", "water plants")
	m = press(m, down, space)
	view := stripANSI(m.View())
	for _, want := range []string{"→ ✔ feed cat", "  ○ walk dog", "2 items left", "Clear completed (1)", "1 All"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestStoreEventReloads(t *testing.T) {
	m, gw := newTestModel(t, "one")
	if err := gw.Save(context.Background(), []entry.Entry{entry.NewEntry("one"), entry.NewEntry("two")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	m = press(m, storeEventMsg{store.Event{Type: store.EventSlotChanged, Key: gw.Key()}})
	if diff := cmp.Diff([]string{"one", "two"}, descriptions(m.svc.View())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestQuitEndsSearch(t *testing.T) {
	m, gw := newTestModel(t, "Cat", "Dog")
	m = press(typeText(press(m, char('/')), "dog"), enter)
	next, cmd := m.Update(char('q'))
	if cmd == nil {
		t.Fatalf("q should return a quit command")
	}
	if next.(Model).svc.Searching() {
		t.Fatalf("quitting should end the search session")
	}
	if diff := cmp.Diff([]string{"Cat", "Dog"}, stored(t, gw)); diff != "" {
		t.Fatalf("stored (-want +got):\n%s", diff)
	}
}

func TestCompletionBar(t *testing.T) {
	tests := []struct {
		done, total int
		filled      int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 2, barWidth / 2},
		{3, 3, barWidth},
	}
	for _, tt := range tests {
		bar := stripANSI(completionBar(tt.done, tt.total))
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("completionBar(%d, %d) filled = %d, want %d", tt.done, tt.total, got, tt.filled)
		}
		if got := len([]rune(bar)); got != barWidth {
			t.Errorf("completionBar(%d, %d) width = %d", tt.done, tt.total, got)
		}
	}
}
