package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/recipe"
	"github.com/mmcdole/freshbites/internal/theme"
)

// Command factories for async operations

// LoadRecipesCmd restores the persisted catalog and likes
func LoadRecipesCmd(store *recipe.Store) tea.Cmd {
	return func() tea.Msg {
		if err := store.Load(context.Background()); err != nil {
			return ErrMsg{Err: err, Context: "loading recipes"}
		}
		return RecipesLoadedMsg{}
	}
}

// LoadThemeCmd resolves the dark-mode preference
func LoadThemeCmd(store *theme.Store) tea.Cmd {
	return func() tea.Msg {
		if err := store.Load(context.Background()); err != nil {
			return ErrMsg{Err: err, Context: "loading theme"}
		}
		return ThemeLoadedMsg{Dark: store.DarkMode()}
	}
}

// WaitForChangeCmd waits for the next recipe snapshot
func WaitForChangeCmd(ch <-chan domain.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Snapshot: snap}
	}
}

// WaitForThemeCmd waits for the next palette switch
func WaitForThemeCmd(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		dark, ok := <-ch
		if !ok {
			return nil
		}
		return ThemeAppliedMsg{Dark: dark}
	}
}

// OpenImageCmd opens the recipe image in the external viewer
func OpenImageCmd(opener ImageOpener, r domain.Recipe) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(r.ImageURL); err != nil {
			return ErrMsg{Err: err, Context: "opening image"}
		}
		return ImageOpenedMsg{Title: r.Title}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
