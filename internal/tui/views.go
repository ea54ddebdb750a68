package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

const aboutText = `Bringing the joy of fresh, wholesome cooking to kitchens around the world.

Our Mission

At FreshBites, we believe that cooking should be a joyful, accessible
experience for everyone. Our mission is to inspire home cooks with recipes
that celebrate fresh, wholesome ingredients and simple techniques that
deliver extraordinary results.

Every recipe is crafted with care, tested thoroughly, and designed to help
you create memorable meals that nourish both body and soul. We're here to
make your kitchen the heart of your home.

Join Our Community

Discover recipes that will transform your cooking and bring joy to your table.`

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	width, height := m.contentSize()

	var content string
	switch m.Page {
	case PageHome:
		content = m.renderListingPage(m.Home, width)
	case PageMyRecipes:
		content = m.renderListingPage(m.Mine, width)
	case PageDetail:
		content = m.Detail.View()
	case PageAbout:
		content = m.renderAbout(width, height)
	case PageAddRecipe:
		content = lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Add a new recipe"),
			m.Form.View(),
		)
	}

	content = lipgloss.NewStyle().
		Padding(0, PagePadding).
		Width(m.Width).
		Height(height).
		MaxHeight(height).
		Render(content)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)

	// Overlay omnibar if visible
	if m.Omnibar.IsVisible() {
		view = m.Omnibar.View()
	}

	// Overlay category modal if visible
	if m.CategoryModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.CategoryModal.View())
	}

	return view
}

// renderHeader renders the brand, page tabs and theme icon
func (m Model) renderHeader() string {
	brand := styles.AccentStyle.Bold(true).Render("FreshBites")

	tabs := []struct {
		key  string
		page Page
	}{
		{"1", PageHome},
		{"2", PageMyRecipes},
		{"3", PageAbout},
	}
	var parts []string
	for _, t := range tabs {
		label := t.key + " " + t.page.String()
		if m.Page == t.page {
			parts = append(parts, styles.BadgeStyle.Render(label))
		} else {
			parts = append(parts, styles.DimStyle.Padding(0, 1).Render(label))
		}
	}
	left := brand + "  " + strings.Join(parts, " ")

	// Light until the stored preference is known
	icon := styles.LightIcon
	if m.Theme.IsReady() && m.Theme.DarkMode() {
		icon = styles.DarkIcon
	}
	saved := styles.HeartStyle.Render(styles.HeartChar) +
		styles.DimStyle.Render(fmt.Sprintf(" %d", len(m.Recipes.Favorites())))
	right := saved + "  " + styles.AccentStyle.Render(icon)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2*PagePadding
	if gap < 1 {
		gap = 1
	}
	bar := lipgloss.NewStyle().Padding(0, PagePadding).
		Render(left + strings.Repeat(" ", gap) + right)
	rule := lipgloss.NewStyle().Foreground(styles.Subtle).Render(strings.Repeat("─", m.Width))

	return bar + "\n" + rule
}

// renderListingPage renders a toolbar, optional counters and the recipe grid
func (m Model) renderListingPage(l *listing, width int) string {
	var sections []string

	if l == m.Mine {
		sections = append(sections, m.renderStats(width))
	}

	category := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Subtle).
		Padding(0, 1).
		Render(styles.AccentStyle.Render("c ") + lipgloss.NewStyle().Foreground(styles.Text).Render(l.Category.Label()))
	mode := styles.DimStyle.Render("\nv " + l.Grid.Mode().String())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, l.Search.View(), " ", category, "  ", mode))

	summary := fmt.Sprintf("Showing %d of %d recipes", l.Grid.Len(), len(l.matched))
	if l.more {
		summary += "  ·  " + styles.AccentStyle.Render("m") + styles.DimStyle.Render(" show more recipes")
	}
	sections = append(sections, styles.DimStyle.Render(summary))

	if l.Grid.Len() == 0 {
		sections = append(sections, m.renderEmpty(l, width))
	} else {
		sections = append(sections, l.Grid.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStats renders the My Recipes counters
func (m Model) renderStats(width int) string {
	st := search.ComputeStats(m.Recipes.Favorites())
	cards := []struct {
		label string
		value int
		color lipgloss.Color
	}{
		{"Saved Recipes", st.Total, styles.Heart},
		{"Breakfast", st.Breakfast, styles.CategoryColor(domain.CategoryBreakfast)},
		{"Dinner", st.Dinner, styles.CategoryColor(domain.CategoryDinner)},
		{"Desserts", st.Dessert, styles.CategoryColor(domain.CategoryDessert)},
	}

	cardWidth := width/len(cards) - 3
	if cardWidth < 12 {
		cardWidth = 12
	}
	rendered := make([]string, len(cards))
	for i, c := range cards {
		value := lipgloss.NewStyle().Foreground(c.color).Bold(true).Render(fmt.Sprintf("%d", c.value))
		rendered[i] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Subtle).
			Padding(0, 1).
			MarginRight(1).
			Width(cardWidth).
			Render(value + " " + styles.DimStyle.Render(c.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderEmpty renders the no-results state, with suggestions for a search
func (m Model) renderEmpty(l *listing, width int) string {
	var title, hint string
	query := l.Search.Value()
	filtering := query != "" || l.Category != search.All

	if l == m.Mine {
		title = styles.HeartStyle.Render(styles.HeartChar) + " No saved recipes yet"
		if filtering {
			hint = "No recipes match your search"
		} else {
			hint = "Start exploring recipes and save your favorites! Press 1 to browse all recipes."
		}
	} else {
		title = "No recipes found"
		hint = "Try adjusting your search"
	}

	lines := []string{
		"",
		lipgloss.NewStyle().Foreground(styles.Text).Bold(true).Render(title),
		styles.SubtitleStyle.Render(hint),
	}

	if query != "" {
		pool := m.snapshot.Recipes
		if l == m.Mine {
			pool = m.Recipes.Favorites()
		}
		if suggestions := search.Suggest(query, pool, 3); len(suggestions) > 0 {
			lines = append(lines, "", styles.DimStyle.Render("Did you mean: ")+
				styles.AccentStyle.Render(strings.Join(suggestions, ", "))+styles.DimStyle.Render("?"))
		}
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// renderAbout renders the static About page
func (m Model) renderAbout(width, height int) string {
	textWidth := width - 4
	if textWidth > 78 {
		textWidth = 78
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("About FreshBites"),
		"",
		lipgloss.NewStyle().Width(textWidth).Foreground(styles.Text).Render(aboutText),
		"",
		styles.DimStyle.Render("Press 1 to explore all recipes"),
		"",
		styles.DimStyle.Render("© 2025 FreshBites. Cooking made fresh & simple."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

// renderFooter renders status on the left and key hints on the right
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.Loading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading recipes...")
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	}

	var hints []string
	hint := func(k, desc string) {
		hints = append(hints, styles.HelpKeyStyle.Render(k)+styles.HelpDescStyle.Render(" "+desc))
	}
	switch m.Page {
	case PageHome:
		hint("enter", "open")
		hint("space", "like")
		hint("/", "search")
	case PageMyRecipes:
		hint("enter", "open")
		hint("a", "add")
		hint("/", "search")
	case PageDetail:
		hint("x", "check")
		hint("space", "like")
		hint("esc", "back")
	case PageAddRecipe:
		hint("C-s", "save")
		hint("esc", "cancel")
	}
	hint("?", "help")
	right := strings.Join(hints, "  ")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2*PagePadding
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Padding(0, PagePadding).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	help := `
PAGES                           RECIPES
  1          Home                 Enter    Open recipe
  2          My Recipes           Space/f  Like / unlike
  3          About                o        Open image
  Esc        Back                 a        Add recipe (My Recipes)

BROWSING                        DETAIL
  h/j/k/l    Move                 j/k      Move through ingredients
  /          Search               x        Check off ingredient
  c          Category             C-d/C-u  Scroll
  v          Grid / list
  m          Show more          OTHER
  C-k        Jump to recipe       t        Toggle dark mode
                                  q        Quit
                                  ?        This help

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// RenderSpinner renders one frame of the loading spinner
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.AccentStyle.Render(frames[frame%len(frames)])
}
