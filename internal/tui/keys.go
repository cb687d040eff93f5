package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	research key.Binding
	copy     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	back:     key.NewBinding(key.WithKeys("esc", "backspace")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	refresh:  key.NewBinding(key.WithKeys("s")),
	research: key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
}
