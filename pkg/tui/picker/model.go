// Package picker hosts the Bubble Tea model for the round-trip date picker.
// The cursor stands in for the pointer: moving it hovers a day, picking it
// clicks the day.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/highlight"
	"tableflip.dev/roundtrip/pkg/selection"
	"tableflip.dev/roundtrip/pkg/timeutil"
	"tableflip.dev/roundtrip/pkg/tui/components/calendar"
	"tableflip.dev/roundtrip/pkg/tui/theme"
)

// Options configures a Model.
type Options struct {
	// Months is how many months are visible at once.
	Months int
	// Start is the day the cursor starts on; zero means today.
	Start dates.Date
	Theme theme.Theme
}

// Model contains UI state.
type Model struct {
	state *selection.State
	cells []highlight.Cell
	index *highlight.Index

	cursor dates.Date
	month  dates.Date
	months int

	theme  theme.Theme
	keys   keyMap
	help   help.Model
	status string

	width  int
	height int
}

// New creates a picker model driving state.
func New(state *selection.State, opts Options) *Model {
	if opts.Months < 1 {
		opts.Months = 1
	}
	cursor := opts.Start
	if cursor.IsZero() {
		cursor = state.Today()
	}
	m := &Model{
		state:  state,
		cursor: cursor,
		month:  dates.MonthStart(cursor),
		months: opts.Months,
		theme:  opts.Theme,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	m.refresh()
	return m
}

// State returns the selection state the model drives.
func (m *Model) State() *selection.State { return m.state }

// Cells returns the classified cells for the current state.
func (m *Model) Cells() []highlight.Cell { return m.cells }

// Cursor returns the focused day.
func (m *Model) Cursor() dates.Date { return m.cursor }

// Month returns the first visible month.
func (m *Model) Month() dates.Date { return m.month }

// Status returns the last status message.
func (m *Model) Status() string { return m.status }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(msg, m.keys.Pick):
		m.pick()
	case key.Matches(msg, m.keys.DepartureBack):
		m.adjust(selection.Departure, -1)
	case key.Matches(msg, m.keys.DepartureFwd):
		m.adjust(selection.Departure, 1)
	case key.Matches(msg, m.keys.ReturnBack):
		m.adjust(selection.Return, -1)
	case key.Matches(msg, m.keys.ReturnFwd):
		m.adjust(selection.Return, 1)
	case key.Matches(msg, m.keys.NextDepart):
		m.state.SetNext(selection.Departure)
	case key.Matches(msg, m.keys.NextReturn):
		m.state.SetNext(selection.Return)
	default:
		return nil
	}
	m.refresh()
	return nil
}

func (m *Model) pick() {
	if dates.IsEarlier(m.cursor, m.state.Today()) {
		m.status = "Cannot pick a day in the past"
		return
	}
	m.state.CommitDate(m.cursor)
	m.status = ""
}

func (m *Model) adjust(target selection.PickTarget, days int) {
	before := m.state.Snapshot()
	m.state.AdjustByDays(target, days)
	if m.state.Snapshot() == before {
		m.status = fmt.Sprintf("Cannot move %s %s", target, timeutil.FormatDayOffset(days))
		return
	}
	m.status = fmt.Sprintf("Moved %s %s", target, timeutil.FormatDayOffset(days))
}

func (m *Model) moveCursor(days int) {
	m.cursor = dates.AddDays(m.cursor, days)
	last := dates.ShiftMonth(m.month, m.months-1)
	switch {
	case dates.IsEarlier(m.cursor, m.month):
		m.month = dates.MonthStart(m.cursor)
	case dates.IsLater(dates.MonthStart(m.cursor), last):
		m.month = dates.ShiftMonth(m.cursor, -(m.months - 1))
	}
	m.state.HoverDate(m.cursor)
}

// shiftMonth pages the visible months and keeps the cursor on the same day
// of the month where possible.
func (m *Model) shiftMonth(n int) {
	m.month = dates.ShiftMonth(m.month, n)
	shifted := dates.ShiftMonth(m.cursor, n)
	day := m.cursor.Day
	if limit := dates.DaysInMonth(shifted.Year, shifted.Month); day > limit {
		day = limit
	}
	m.cursor = dates.Date{Year: shifted.Year, Month: shifted.Month, Day: day}
}

// refresh recomputes the derived cells; it runs after every state change.
func (m *Model) refresh() {
	m.cells = highlight.Classify(m.state.Snapshot())
	m.index = highlight.NewIndex(m.cells)
}

// View renders the summary, the month grids and the help line.
func (m *Model) View() string {
	grid := calendar.RenderMonths(m.month, m.months, m.index, calendar.Options{
		Theme:  m.theme.Calendar,
		Today:  m.state.Today(),
		Cursor: m.cursor,
	})

	sections := []string{
		m.summary(),
		m.theme.Panel.Frame.Render(grid),
	}
	if m.status != "" {
		sections = append(sections, m.theme.Footer.Status.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) summary() string {
	ft := m.theme.Footer
	field := func(label string, d dates.Date, target selection.PickTarget) string {
		value := d.String()
		if value == "" {
			value = "--"
		}
		text := ft.Label.Render(label+": ") + ft.Value.Render(value)
		if m.state.Next() == target {
			text += ft.Help.Render(" ◀")
		}
		return text
	}
	parts := []string{
		field("Departure", m.state.Departure(), selection.Departure),
		field("Return", m.state.Return(), selection.Return),
	}
	if nights := m.nights(); nights >= 0 {
		parts = append(parts, ft.Status.Render(fmt.Sprintf("%d nights", nights)))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) nights() int {
	d, r := m.state.Departure(), m.state.Return()
	if d.IsZero() || r.IsZero() {
		return -1
	}
	return dates.DaysBetween(d, r)
}
