package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/store"
)

// Run starts the terminal UI and blocks until the user quits. When events
// is not nil the list is reloaded whenever another process writes the slot.
func Run(ctx context.Context, svc *app.Service, events <-chan store.Event) error {
	m := New(ctx, svc)
	m.events = events
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
