package picker

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	Pick          key.Binding
	DepartureBack key.Binding
	DepartureFwd  key.Binding
	ReturnBack    key.Binding
	ReturnFwd     key.Binding
	NextDepart    key.Binding
	NextReturn    key.Binding
	PrevMonth     key.Binding
	NextMonth     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Pick:          key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter", "pick day")),
		DepartureBack: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "departure -1")),
		DepartureFwd:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "departure +1")),
		ReturnBack:    key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "return -1")),
		ReturnFwd:     key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "return +1")),
		NextDepart:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "pick departure")),
		NextReturn:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pick return")),
		PrevMonth:     key.NewBinding(key.WithKeys("<", "pgup"), key.WithHelp("<", "prev month")),
		NextMonth:     key.NewBinding(key.WithKeys(">", "pgdown"), key.WithHelp(">", "next month")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.NextDepart, k.NextReturn, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Pick, k.NextDepart, k.NextReturn},
		{k.DepartureBack, k.DepartureFwd, k.ReturnBack, k.ReturnFwd},
		{k.PrevMonth, k.NextMonth, k.Help, k.Quit},
	}
}
