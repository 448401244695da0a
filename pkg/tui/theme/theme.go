package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	Calendar CalendarTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// CalendarTheme styles month grids. Tag styles are layered in order: range,
// then tentative, then the selected markers.
type CalendarTheme struct {
	Header       lipgloss.Style
	Weekdays     lipgloss.Style
	Empty        lipgloss.Style
	Day          lipgloss.Style
	Past         lipgloss.Style
	Today        lipgloss.Style
	Cursor       lipgloss.Style
	InRange      lipgloss.Style
	PickingLater lipgloss.Style
	Tentative    lipgloss.Style
	Selected     lipgloss.Style
	Next         lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	selected := lipgloss.NewStyle().
		Background(lipgloss.Color("63")).
		Foreground(lipgloss.Color("0")).
		Bold(true)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Calendar: CalendarTheme{
			Header:       lipgloss.NewStyle().Bold(true),
			Weekdays:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Day:          lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Past:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
			Today:        lipgloss.NewStyle().Underline(true),
			Cursor:       lipgloss.NewStyle().Reverse(true),
			InRange:      lipgloss.NewStyle().Background(lipgloss.Color("60")),
			PickingLater: lipgloss.NewStyle().Italic(true),
			Tentative:    lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("212")),
			Selected:     selected,
			Next:         lipgloss.NewStyle().Blink(true),
		},
	}
}
