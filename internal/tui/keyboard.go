package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/freshbites/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	// Route to active modal or text input if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Jump):
		m.Omnibar.SetSize(m.Width, m.Height)
		m.Omnibar.Show(m.snapshot.Recipes)
		return m, nil

	case key.Matches(msg, Keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, Keys.Home):
		return m.goTo(PageHome)

	case key.Matches(msg, Keys.MyRecipes):
		return m.goTo(PageMyRecipes)

	case key.Matches(msg, Keys.About):
		return m.goTo(PageAbout)
	}

	switch m.Page {
	case PageHome, PageMyRecipes:
		return m.handleListingKey(msg)
	case PageDetail:
		return m.handleDetailKey(msg)
	case PageAbout:
		if key.Matches(msg, Keys.Back) {
			return m.goTo(PageHome)
		}
	}
	return m, nil
}

// routeToModal routes key input to active modals, the form and focused
// search boxes, which take every key while they are open
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	// Handle omnibar if visible
	if m.Omnibar.IsVisible() {
		var cmd tea.Cmd
		var selected bool
		m.Omnibar, cmd, selected = m.Omnibar.Update(msg)
		if selected {
			if r := m.Omnibar.Selected(); r != nil {
				newModel, navCmd := m.openDetail(r.ID)
				return true, newModel, tea.Batch(cmd, navCmd)
			}
		}
		return true, m, cmd
	}

	// Handle category modal if visible
	if m.CategoryModal.IsVisible() {
		handled, selection := m.CategoryModal.HandleKey(msg)
		if handled {
			if selection != nil {
				if l := m.activeListing(); l != nil {
					l.Category = *selection
					m.refreshListings()
				}
			}
			return true, m, nil
		}
	}

	// Handle the add-recipe form
	if m.Page == PageAddRecipe {
		var cmd tea.Cmd
		var result components.FormResult
		m.Form, cmd, result = m.Form.Update(msg)
		switch result {
		case components.FormSubmitted:
			newModel, submitCmd := m.submitForm()
			return true, newModel, submitCmd
		case components.FormCancelled:
			newModel, backCmd := m.back()
			return true, newModel, backCmd
		}
		return true, m, cmd
	}

	// Handle search typing mode
	if l := m.activeListing(); l != nil && l.Search.Focused() {
		var cmd tea.Cmd
		var changed bool
		l.Search, cmd, changed = l.Search.Update(msg)
		if changed {
			m.refreshListings()
		}
		return true, m, cmd
	}

	return false, m, nil
}

// handleListingKey handles keys on Home and My Recipes
func (m Model) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := m.activeListing()

	switch {
	case key.Matches(msg, Keys.Filter):
		return m, l.Search.Focus()

	case key.Matches(msg, Keys.Category):
		m.CategoryModal.Show(l.Category)
		return m, nil

	case key.Matches(msg, Keys.ToggleView):
		mode := components.ViewList
		if l.Grid.Mode() == components.ViewList {
			mode = components.ViewGrid
		}
		m.Home.Grid.SetMode(mode)
		m.Mine.Grid.SetMode(mode)
		return m, nil

	case key.Matches(msg, Keys.ShowMore):
		if l.more {
			l.Visible += m.pageSize
			m.refreshListings()
		}
		return m, nil

	case key.Matches(msg, Keys.Like):
		return m.toggleLike()

	case key.Matches(msg, Keys.Open):
		if r := l.Grid.Selected(); r != nil {
			return m.openDetail(r.ID)
		}
		return m, nil

	case key.Matches(msg, Keys.AddRecipe):
		if m.Page == PageMyRecipes {
			return m.openForm()
		}
		return m, nil

	case key.Matches(msg, Keys.OpenImage):
		return m.openImage()

	case key.Matches(msg, Keys.Escape):
		// Clear an active search before anything else
		if l.Search.Value() != "" {
			l.Search.SetValue("")
			m.refreshListings()
		}
		return m, nil
	}

	var cmd tea.Cmd
	l.Grid, cmd = l.Grid.Update(msg)
	return m, cmd
}

// handleDetailKey handles keys on the recipe detail page
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Detail.NotFound() {
		if key.Matches(msg, Keys.Open, Keys.Back) {
			return m.goTo(PageHome)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Back):
		return m.back()
	case key.Matches(msg, Keys.Like):
		return m.toggleLike()
	case key.Matches(msg, Keys.OpenImage):
		return m.openImage()
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}
