// Package ui runs the interactive round-trip picker.
package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/printers"
	"tableflip.dev/roundtrip/pkg/selection"
	"tableflip.dev/roundtrip/pkg/tui/picker"
	"tableflip.dev/roundtrip/pkg/tui/theme"
)

// UI launches the picker and prints the final selection on exit.
type UI struct {
	Now    func() time.Time
	Logger *slog.Logger
	Months int
	Start  dates.Date
	Out    io.Writer
}

// Do runs the Bubble Tea program until the user quits or ctx is done.
func (u *UI) Do(ctx context.Context) error {
	state := selection.New(selection.Options{Now: u.Now, Logger: u.Logger})
	model := picker.New(state, picker.Options{
		Months: u.Months,
		Start:  u.Start,
		Theme:  theme.Default(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	out := u.Out
	if out == nil {
		out = color.Output
	}
	printers.Summary(out, state.Snapshot())
	return nil
}
