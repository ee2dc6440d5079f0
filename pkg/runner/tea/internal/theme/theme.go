package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Footer FooterTheme
}

// HeaderTheme styles the title and the filter tabs.
type HeaderTheme struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
}

// ListTheme styles entry rows.
type ListTheme struct {
	Completed lipgloss.Style
	Editing   lipgloss.Style
	Empty     lipgloss.Style
}

// FooterTheme groups styles used by the counters and the status line.
type FooterTheme struct {
	Status   lipgloss.Style
	BarEmpty color.Color
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().
				Foreground(lipgloss.Color("204")).
				Bold(true),
			TabActive:   lipgloss.NewStyle().Bold(true).Underline(true),
			TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		List: ListTheme{
			Completed: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Editing:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			BarEmpty: lipgloss.Color("238"),
		},
	}
}
