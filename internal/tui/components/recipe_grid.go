package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

// ViewMode picks cards or rows
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

// ParseViewMode maps the ui.default_view config value
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(s, "list") {
		return ViewList
	}
	return ViewGrid
}

func (v ViewMode) String() string {
	if v == ViewList {
		return "list"
	}
	return "grid"
}

// Layout constants for cards
const (
	// Border adds 1 char on each side
	CardBorder = 2

	// Lines inside a card: badge, title, cuisine, timing
	CardContentLines = 4

	CardHeight   = CardContentLines + CardBorder
	MinCardWidth = 26

	// "more" indicator below the items
	FooterLines = 1
)

// RecipeGrid renders recipes as cards or list rows with a movable cursor
type RecipeGrid struct {
	recipes []domain.Recipe
	liked   domain.LikedSet
	mode    ViewMode

	// Selection
	cursor    int
	offsetRow int

	// Dimensions
	width      int
	height     int
	maxColumns int
}

// NewRecipeGrid creates a grid showing at most maxColumns cards per row
func NewRecipeGrid(mode ViewMode, maxColumns int) RecipeGrid {
	if maxColumns < 1 {
		maxColumns = 1
	}
	return RecipeGrid{mode: mode, maxColumns: maxColumns, liked: domain.NewLikedSet()}
}

// SetRecipes replaces the items, keeping the cursor on the same recipe when possible
func (g *RecipeGrid) SetRecipes(recipes []domain.Recipe, liked domain.LikedSet) {
	var selectedID string
	if r := g.Selected(); r != nil {
		selectedID = r.ID
	}

	g.recipes = recipes
	g.liked = liked
	if g.liked == nil {
		g.liked = domain.NewLikedSet()
	}

	g.cursor = 0
	for i, r := range recipes {
		if r.ID == selectedID {
			g.cursor = i
			break
		}
	}
	g.clampCursor()
}

// SetLiked updates heart indicators without touching the cursor
func (g *RecipeGrid) SetLiked(liked domain.LikedSet) {
	g.liked = liked
}

// SetMode switches between cards and rows
func (g *RecipeGrid) SetMode(mode ViewMode) {
	g.mode = mode
	g.offsetRow = 0
	g.ensureVisible()
}

// Mode returns the current view mode
func (g RecipeGrid) Mode() ViewMode {
	return g.mode
}

// SetSize updates the component dimensions
func (g *RecipeGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// Len returns the number of items
func (g RecipeGrid) Len() int {
	return len(g.recipes)
}

// Cursor returns the current cursor position
func (g RecipeGrid) Cursor() int {
	return g.cursor
}

// SetCursor sets the cursor position
func (g *RecipeGrid) SetCursor(pos int) {
	g.cursor = pos
	g.clampCursor()
}

// Selected returns the recipe under the cursor
func (g RecipeGrid) Selected() *domain.Recipe {
	if len(g.recipes) == 0 || g.cursor >= len(g.recipes) {
		return nil
	}
	r := g.recipes[g.cursor]
	return &r
}

// Columns returns how many cards fit side by side
func (g RecipeGrid) Columns() int {
	if g.mode == ViewList {
		return 1
	}
	cols := g.width / MinCardWidth
	if cols > g.maxColumns {
		cols = g.maxColumns
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (g RecipeGrid) rowHeight() int {
	if g.mode == ViewList {
		return 1
	}
	return CardHeight
}

func (g RecipeGrid) visibleRows() int {
	rows := (g.height - FooterLines) / g.rowHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *RecipeGrid) clampCursor() {
	if g.cursor >= len(g.recipes) {
		g.cursor = len(g.recipes) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.ensureVisible()
}

// ensureVisible ensures the cursor row is visible
func (g *RecipeGrid) ensureVisible() {
	row := g.cursor / g.Columns()
	visible := g.visibleRows()
	if row < g.offsetRow {
		g.offsetRow = row
	}
	if row >= g.offsetRow+visible {
		g.offsetRow = row - visible + 1
	}
}

// Update handles cursor movement
func (g RecipeGrid) Update(msg tea.Msg) (RecipeGrid, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.recipes) == 0 {
		return g, nil
	}

	cols := g.Columns()
	last := len(g.recipes) - 1

	switch {
	case key.Matches(keyMsg, GridKeys.Down):
		if g.cursor+cols <= last {
			g.cursor += cols
		} else if g.cursor/cols < last/cols {
			g.cursor = last
		}
	case key.Matches(keyMsg, GridKeys.Up):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case key.Matches(keyMsg, GridKeys.Right):
		if g.cursor < last {
			g.cursor++
		}
	case key.Matches(keyMsg, GridKeys.Left):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(keyMsg, GridKeys.Home):
		g.cursor = 0
	case key.Matches(keyMsg, GridKeys.End):
		g.cursor = last
	}

	g.ensureVisible()
	return g, nil
}

// View renders the visible rows and a "more" hint
func (g RecipeGrid) View() string {
	if len(g.recipes) == 0 {
		return ""
	}

	cols := g.Columns()
	totalRows := (len(g.recipes) + cols - 1) / cols
	endRow := g.offsetRow + g.visibleRows()
	if endRow > totalRows {
		endRow = totalRows
	}

	var rows []string
	for row := g.offsetRow; row < endRow; row++ {
		start := row * cols
		end := start + cols
		if end > len(g.recipes) {
			end = len(g.recipes)
		}

		if g.mode == ViewList {
			rows = append(rows, g.renderRow(g.recipes[start], start == g.cursor))
			continue
		}

		cards := make([]string, 0, cols)
		cardWidth := g.width / cols
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(g.recipes[i], i == g.cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	footer := " "
	if endRow < totalRows {
		footer = styles.DimStyle.Render("↓ scroll for more")
	}
	if g.offsetRow > 0 && endRow < totalRows {
		footer = styles.DimStyle.Render("↑↓ scroll for more")
	} else if g.offsetRow > 0 {
		footer = styles.DimStyle.Render("↑ scroll for more")
	}

	return lipgloss.JoinVertical(lipgloss.Left, append(rows, footer)...)
}

// renderCard renders one recipe card at the given outer width
func (g RecipeGrid) renderCard(r domain.Recipe, selected bool, width int) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	frameW, _ := style.GetFrameSize()
	inner := width - frameW - 1 // one column gap between cards
	if inner < 8 {
		inner = 8
	}

	badge := styles.CategoryBadge(r.Category)
	heart := styles.LikeIndicator(g.liked.Has(r.ID))
	gap := inner - lipgloss.Width(badge) - lipgloss.Width(heart)
	if gap < 1 {
		gap = 1
	}
	top := badge + strings.Repeat(" ", gap) + heart

	title := styles.TitleStyle.Render(styles.Truncate(r.Title, inner))
	if !selected {
		title = lipgloss.NewStyle().Foreground(styles.Text).Render(styles.Truncate(r.Title, inner))
	}

	meta := styles.Truncate(r.Cuisine, inner-lipgloss.Width(r.Difficulty.Label())-3)
	metaLine := styles.SubtitleStyle.Render(meta) + styles.DimStyle.Render(" · ") +
		lipgloss.NewStyle().Foreground(styles.DifficultyColor(r.Difficulty)).Render(r.Difficulty.Label())

	timing := styles.DimStyle.Render(styles.Truncate(fmt.Sprintf("⏱ %s · serves %d", totalTime(r), r.Servings), inner))

	content := lipgloss.JoinVertical(lipgloss.Left, top, title, metaLine, timing)
	return style.Width(inner + 2).MarginRight(1).Render(content)
}

// renderRow renders one recipe as a list row
func (g RecipeGrid) renderRow(r domain.Recipe, selected bool) string {
	heartFg := styles.Subtle
	heartChar := styles.EmptyHeart
	if g.liked.Has(r.ID) {
		heartFg = styles.Heart
		heartChar = styles.HeartChar
	}
	catFg := styles.CategoryColor(r.Category)
	dim := styles.Subtle

	titleWidth := g.width - 50
	if titleWidth < 12 {
		titleWidth = 12
	}

	parts := []styles.RowPart{
		{Text: heartChar, Foreground: &heartFg},
		{Text: " " + styles.Pad(styles.Truncate(r.Title, titleWidth), titleWidth)},
		{Text: " " + styles.Pad(strings.ToUpper(r.Category.Label()), 12), Foreground: &catFg},
		{Text: " " + styles.Pad(r.Cuisine, 12), Foreground: &dim},
		{Text: " " + totalTime(r), Foreground: &dim},
	}
	return styles.RenderListRow(parts, selected, g.width)
}

// totalTime joins prep and cook time for compact display
func totalTime(r domain.Recipe) string {
	switch {
	case r.PrepTime != "" && r.CookTime != "":
		return r.PrepTime + " + " + r.CookTime
	case r.PrepTime != "":
		return r.PrepTime
	default:
		return r.CookTime
	}
}
