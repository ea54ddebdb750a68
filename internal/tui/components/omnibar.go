package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

const omnibarMaxResults = 10

// Omnibar is the fuzzy jump-to-recipe modal
type Omnibar struct {
	input     textinput.Model
	recipes   []domain.Recipe
	results   []search.JumpResult
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string // Track query changes for real-time filtering
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Jump to a recipe..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "

	return Omnibar{
		input: ti,
	}
}

// Show makes the omnibar visible over the given catalog
func (o *Omnibar) Show(recipes []domain.Recipe) {
	o.visible = true
	o.recipes = recipes
	o.input.PromptStyle = styles.AccentStyle
	o.input.TextStyle = lipgloss.NewStyle().Foreground(styles.Text)
	o.input.PlaceholderStyle = styles.DimStyle
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = width - 10
}

// Query returns the current search query
func (o Omnibar) Query() string {
	return o.input.Value()
}

// Results returns the current matches, best first
func (o Omnibar) Results() []search.JumpResult {
	return o.results
}

// Selected returns the highlighted recipe
func (o Omnibar) Selected() *domain.Recipe {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor].Recipe
}

// refresh re-runs the jump search when the query changed
func (o *Omnibar) refresh() {
	current := o.input.Value()
	if current == o.prevQuery {
		return
	}
	o.prevQuery = current
	o.results = search.Jump(current, o.recipes)
	o.cursor = 0
}

// Update handles messages, returns (omnibar, cmd, selected)
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, OmnibarKeys.Escape):
			o.Hide()
			return o, nil, false

		case key.Matches(msg, OmnibarKeys.Enter):
			if len(o.results) > 0 {
				o.Hide()
				return o, nil, true
			}
			return o, nil, false

		case key.Matches(msg, OmnibarKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case key.Matches(msg, OmnibarKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	o.refresh()
	return o, cmd, false
}

// View renders the component
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	// Modal dimensions
	modalWidth := o.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 80 {
		modalWidth = 80
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Jump to recipe"))
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	o.renderResults(&b, modalWidth)

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	// Center horizontally and vertically
	return lipgloss.Place(
		o.width,
		o.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func (o Omnibar) renderResults(b *strings.Builder, modalWidth int) {
	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches found"))
		}
		return
	}

	displayCount := len(o.results)
	if displayCount > omnibarMaxResults {
		displayCount = omnibarMaxResults
	}

	for i := 0; i < displayCount; i++ {
		result := o.results[i]
		selected := i == o.cursor

		var line strings.Builder
		line.WriteString(styles.DimBadgeStyle.Render(strings.ToUpper(result.Recipe.Category.Label())))
		line.WriteString(" ")
		line.WriteString(highlightMatches(styles.Truncate(result.Recipe.Title, modalWidth-24), result.MatchedIndexes, selected))

		b.WriteString(line.String())
		b.WriteString("\n")
	}

	if len(o.results) > omnibarMaxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-omnibarMaxResults)))
	}
}

// highlightMatches styles the matched byte positions of title
func highlightMatches(title string, matched []int, selected bool) string {
	base := styles.NormalItemStyle.Padding(0)
	hit := styles.MatchHighlightStyle
	if selected {
		base = styles.SelectedItemStyle.Padding(0)
		hit = styles.MatchHighlightSelectedStyle
	}

	set := make(map[int]bool, len(matched))
	for _, idx := range matched {
		set[idx] = true
	}

	var b strings.Builder
	for i, r := range title {
		if set[i] {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
