package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Back    key.Binding
	UpDown  key.Binding
	Enter   key.Binding
	Search  key.Binding
	Filters key.Binding
	Sort    key.Binding
	Post    key.Binding
	Chat    key.Binding
	Profile key.Binding
	Pricing key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filters: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Post:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "post ad")),
		Chat:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "messages")),
		Profile: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "profile")),
		Pricing: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "plans")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpDown, k.Enter, k.Back},
		{k.Search, k.Filters, k.Sort},
		{k.Post, k.Chat, k.Profile, k.Pricing, k.Quit},
	}
}
