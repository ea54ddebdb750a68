package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

// SearchBar is the inline recipe search box
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar creates a search bar with the given placeholder
func NewSearchBar(placeholder string) SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 80
	ti.Width = 40
	ti.Prompt = "⌕ "

	return SearchBar{input: ti}
}

// Focus starts capturing keys
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur stops capturing keys and keeps the query
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the bar is capturing keys
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the query
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// SetWidth sets the visible input width
func (s *SearchBar) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	s.input.Width = width
}

// Update handles input events, returns (bar, cmd, changed).
// enter and esc release focus; esc also clears the query.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	before := s.input.Value()
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			s.input.Blur()
			return s, nil, false
		case "esc":
			s.input.Blur()
			s.input.SetValue("")
			return s, nil, before != ""
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before
}

// View renders the search bar
func (s SearchBar) View() string {
	s.input.PromptStyle = styles.FilterPromptStyle
	s.input.TextStyle = lipgloss.NewStyle().Foreground(styles.Text)
	s.input.PlaceholderStyle = styles.DimStyle

	border := styles.Subtle
	if s.input.Focused() {
		border = styles.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(s.input.View())
}
