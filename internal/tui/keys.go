package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeys are handled by RootModel before the active page sees a key.
type globalKeys struct {
	forceQuit key.Binding
	version   key.Binding
	dismiss   key.Binding
	yes       key.Binding
	no        key.Binding
	back      key.Binding
}

var keys = globalKeys{
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
	dismiss:   key.NewBinding(key.WithKeys("enter", "esc")),
	yes:       key.NewBinding(key.WithKeys("y", "enter")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	back:      key.NewBinding(key.WithKeys("esc")),
}
