package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	quit   key.Binding
	reload key.Binding
	reveal key.Binding
	delete key.Binding
	copy   key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload: key.NewBinding(key.WithKeys("r")),
	reveal: key.NewBinding(key.WithKeys(" ")),
	delete: key.NewBinding(key.WithKeys("d")),
	copy:   key.NewBinding(key.WithKeys("c")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n", "esc")),
}
