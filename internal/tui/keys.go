package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit           key.Binding
	ForceQuit      key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	CycleCategory  key.Binding
	CycleStatus    key.Binding
	ResetFilters   key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	OptionNext     key.Binding
	OptionPrev     key.Binding
	Submit         key.Binding
	ClearForm      key.Binding
	ReloadSnapshot key.Binding
}

var keys = keyMap{
	Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	NextTab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	CycleCategory:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "type filter")),
	CycleStatus:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status filter")),
	ResetFilters:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	NextField:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next field")),
	PrevField:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev field")),
	OptionNext:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next type")),
	OptionPrev:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev type")),
	Submit:         key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	ClearForm:      key.NewBinding(key.WithKeys("esc", "ctrl+r"), key.WithHelp("esc", "clear")),
	ReloadSnapshot: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
}
