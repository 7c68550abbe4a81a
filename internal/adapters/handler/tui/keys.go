package tui

import "github.com/charmbracelet/bubbles/key"

var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

type homeKeyMap struct {
	New    key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Share  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Up, k.Down, k.Open, k.Share, k.Delete, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var homeKeys = homeKeyMap{
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view & vote")),
	Share:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// createKeyMap leaves plain characters alone; they go to the focused field.
type createKeyMap struct {
	Submit key.Binding
	Next   key.Binding
	Prev   key.Binding
	Add    key.Binding
	Remove key.Binding
	Cancel key.Binding
}

func (k createKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Add, k.Remove, k.Next, k.Cancel}
}

func (k createKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Add, k.Remove}, {k.Next, k.Prev, k.Cancel}}
}

var createKeys = createKeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create")),
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Add:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add option")),
	Remove: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove option")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

type pollKeyMap struct {
	Vote   key.Binding
	Share  key.Binding
	Delete key.Binding
	Back   key.Binding
}

func (k pollKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Vote, k.Share, k.Delete, k.Back}
}

func (k pollKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var pollKeys = pollKeyMap{
	Vote:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "vote")),
	Share:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "copy link")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
}
