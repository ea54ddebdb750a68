package tui

import "github.com/mmcdole/freshbites/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// RecipesLoadedMsg signals that the recipe store has read local storage
type RecipesLoadedMsg struct{}

// ThemeLoadedMsg signals that the theme store has resolved the preference
type ThemeLoadedMsg struct {
	Dark bool
}

// StoreChangedMsg carries the recipe state after a change
type StoreChangedMsg struct {
	Snapshot domain.Snapshot
}

// ThemeAppliedMsg asks the view to repaint in the given palette
type ThemeAppliedMsg struct {
	Dark bool
}

// ImageOpenedMsg signals that the image viewer was launched
type ImageOpenedMsg struct {
	Title string
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
