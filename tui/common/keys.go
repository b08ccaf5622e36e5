package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all pages.
type KeyMap struct {
	Quit         key.Binding
	ForceQuit    key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding // enter: analyze the highlighted post
	Close        key.Binding // esc: close analysis / leave page
	Search       key.Binding // /: focus the search input
	Comments     key.Binding // c: open the post's comment thread
	Analyze      key.Binding // a: analyze comments
	Refresh      key.Binding
	Timeline     key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding
	Home         key.Binding
	Explore      key.Binding
	Trending     key.Binding
	ToggleTheme  key.Binding
	ToggleHints  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Comments: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comments"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "analyze comments"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Timeline: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "timeline"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Explore: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "explore"),
		),
		Trending: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "trending"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hints"),
		),
	}
}
