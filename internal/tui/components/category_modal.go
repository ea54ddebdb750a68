package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

const categoryModalWidth = 22

// CategoryModal is a small popup for choosing the category filter
type CategoryModal struct {
	visible bool
	options []search.CategoryFilter
	cursor  int
	active  search.CategoryFilter
}

// NewCategoryModal creates a new category modal
func NewCategoryModal() CategoryModal {
	return CategoryModal{options: search.CategoryFilters()}
}

// Show displays the modal with the cursor on the active filter
func (m *CategoryModal) Show(active search.CategoryFilter) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *CategoryModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m CategoryModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *CategoryModal) HandleKey(msg tea.KeyMsg) (handled bool, selection *search.CategoryFilter) {
	if !m.visible {
		return false, nil
	}

	switch {
	case key.Matches(msg, CategoryModalKeys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, CategoryModalKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, CategoryModalKeys.Enter):
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case key.Matches(msg, CategoryModalKeys.Escape):
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the category modal
func (m CategoryModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		prefix := "  "
		if opt == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+opt.Label(), categoryModalWidth)

		style := lipgloss.NewStyle().Foreground(styles.Muted)
		switch {
		case i == m.cursor:
			style = lipgloss.NewStyle().Foreground(styles.Text).Background(styles.SurfaceAlt)
		case opt == m.active:
			style = lipgloss.NewStyle().Foreground(styles.Accent)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Category") + "\n" + strings.Join(lines, "\n"))
}
