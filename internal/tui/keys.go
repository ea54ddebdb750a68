package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Pages
	Home      key.Binding
	MyRecipes key.Binding
	About     key.Binding
	Back      key.Binding

	// Browsing
	Open       key.Binding
	Like       key.Binding
	Filter     key.Binding
	Category   key.Binding
	ToggleView key.Binding
	ShowMore   key.Binding
	AddRecipe  key.Binding
	Jump       key.Binding
	OpenImage  key.Binding

	// Application
	Theme  key.Binding
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Pages
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		MyRecipes: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "my recipes"),
		),
		About: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "about"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),

		// Browsing
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open recipe"),
		),
		Like: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space/f", "like"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/list"),
		),
		ShowMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "show more"),
		),
		AddRecipe: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add recipe"),
		),
		Jump: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "jump to recipe"),
		),
		OpenImage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),

		// Application
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
