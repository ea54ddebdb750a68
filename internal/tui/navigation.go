package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/recipe"
)

// goTo switches to one of the top-level pages
func (m Model) goTo(page Page) (Model, tea.Cmd) {
	if l := m.activeListing(); l != nil {
		l.Search.Blur()
	}
	m.Page = page
	m.updateLayout()
	return m, nil
}

// openDetail shows the recipe with id, or the not-found view when the
// catalog has no such recipe
func (m Model) openDetail(id string) (Model, tea.Cmd) {
	if m.Page != PageDetail {
		m.backTo = m.Page
	}
	if l := m.activeListing(); l != nil {
		l.Search.Blur()
	}

	r, err := m.Recipes.Find(id)
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		m.logger.Warn("recipe not found", "id", id)
		m.Detail.SetMissing(id)
	case err != nil:
		return m.setStatus(err.Error(), true)
	default:
		m.Detail.SetRecipe(r, m.Recipes.IsLiked(id))
	}
	m.Page = PageDetail
	m.updateLayout()
	return m, nil
}

// back leaves the detail view or form for the page it was opened from
func (m Model) back() (Model, tea.Cmd) {
	target := m.backTo
	if target != PageHome && target != PageMyRecipes {
		target = PageHome
	}
	return m.goTo(target)
}

// openForm shows a fresh add-recipe form
func (m Model) openForm() (Model, tea.Cmd) {
	if l := m.activeListing(); l != nil {
		l.Search.Blur()
	}
	m.backTo = m.Page
	m.Form.Reset()
	m.Page = PageAddRecipe
	m.updateLayout()
	return m, m.Form.Focus()
}

// submitForm adds the drafted recipe. Validation failures stay on the form
// with the messages shown next to their fields.
func (m Model) submitForm() (Model, tea.Cmd) {
	added, err := m.Recipes.AddRecipe(m.Form.Draft())
	if err != nil {
		var verr *recipe.ValidationError
		if errors.As(err, &verr) {
			m.Form.SetErrors(verr.Fields)
			return m, m.Form.Focus()
		}
		return m.setStatus(err.Error(), true)
	}

	m.applySnapshot(m.Recipes.Snapshot())
	m.Form.Reset()
	m, _ = m.back()
	return m.setStatus(fmt.Sprintf("Added %q", added.Title), false)
}

// toggleLike flips the like on the recipe the page is acting on
func (m Model) toggleLike() (Model, tea.Cmd) {
	r := m.selectedRecipe()
	if r == nil {
		return m, nil
	}
	m.Recipes.ToggleLike(r.ID)
	m.applySnapshot(m.Recipes.Snapshot())
	return m, nil
}

// toggleTheme flips dark mode once the preference has been loaded
func (m Model) toggleTheme() (Model, tea.Cmd) {
	if !m.Theme.IsReady() {
		return m.setStatus("Theme preference is still loading", false)
	}
	m.Theme.ToggleDarkMode()
	return m, nil
}

// openImage launches the external viewer for the selected recipe
func (m Model) openImage() (Model, tea.Cmd) {
	r := m.selectedRecipe()
	if r == nil || m.Opener == nil {
		return m, nil
	}
	if r.ImageURL == "" {
		return m.setStatus("This recipe has no image", false)
	}
	return m, OpenImageCmd(m.Opener, *r)
}
