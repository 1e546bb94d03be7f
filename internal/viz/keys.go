package viz

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the page and its widgets.
type keyMap struct {
	play   key.Binding
	speed  key.Binding
	values key.Binding
	field  key.Binding
	next   key.Binding
	prev   key.Binding
	name   key.Binding
	theme  key.Binding
	up     key.Binding
	down   key.Binding
	help   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		play:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		speed:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "speed")),
		values: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show values")),
		field:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "tree field")),
		next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev widget")),
		name:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "name")),
		theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.play, k.speed, k.next, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.play, k.speed, k.values, k.field},
		{k.next, k.prev, k.up, k.down},
		{k.name, k.theme, k.help, k.quit},
	}
}

// speedIndex maps the pressed digit to an index into playback.Speeds.
func speedIndex(pressed string) int {
	switch pressed {
	case "1":
		return 0
	case "2":
		return 1
	case "3":
		return 2
	case "4":
		return 3
	}
	return -1
}
