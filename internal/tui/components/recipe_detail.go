package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

// RecipeDetail shows one recipe with an ingredient checklist.
// The checklist is local to the view and resets when another recipe opens.
type RecipeDetail struct {
	recipe    *domain.Recipe
	missingID string
	liked     bool

	checked map[int]bool
	cursor  int // ingredient under the cursor

	// Line of the first ingredient in the rendered body, for scrolling
	ingredientLine int

	vp     viewport.Model
	width  int
	height int
}

// NewRecipeDetail creates an empty detail view
func NewRecipeDetail() RecipeDetail {
	return RecipeDetail{
		vp:      viewport.New(0, 0),
		checked: make(map[int]bool),
	}
}

// SetRecipe shows r and resets the checklist
func (d *RecipeDetail) SetRecipe(r domain.Recipe, liked bool) {
	d.recipe = &r
	d.missingID = ""
	d.liked = liked
	d.checked = make(map[int]bool)
	d.cursor = 0
	d.vp.GotoTop()
	d.refresh()
}

// SetMissing shows the "not found" state for id
func (d *RecipeDetail) SetMissing(id string) {
	d.recipe = nil
	d.missingID = id
	d.refresh()
}

// SetLiked updates the heart without resetting the checklist
func (d *RecipeDetail) SetLiked(liked bool) {
	d.liked = liked
	d.refresh()
}

// Recipe returns the displayed recipe, or nil in the not-found state
func (d RecipeDetail) Recipe() *domain.Recipe {
	return d.recipe
}

// NotFound reports whether the view is in the not-found state
func (d RecipeDetail) NotFound() bool {
	return d.recipe == nil
}

// Checked reports whether ingredient i is ticked
func (d RecipeDetail) Checked(i int) bool {
	return d.checked[i]
}

// SetSize updates the component dimensions
func (d *RecipeDetail) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.vp.Width = width
	d.vp.Height = height
	d.refresh()
}

// Update handles checklist and scrolling keys
func (d RecipeDetail) Update(msg tea.Msg) (RecipeDetail, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || d.recipe == nil {
		return d, nil
	}

	n := len(d.recipe.Ingredients)
	switch keyMsg.String() {
	case "j", "down":
		if d.cursor < n-1 {
			d.cursor++
		}
		d.followCursor()
	case "k", "up":
		if d.cursor > 0 {
			d.cursor--
		}
		d.followCursor()
	case "x":
		if n > 0 {
			d.checked[d.cursor] = !d.checked[d.cursor]
		}
	case "ctrl+d", "pgdown":
		d.vp.SetYOffset(d.vp.YOffset + d.vp.Height/2)
		return d, nil
	case "ctrl+u", "pgup":
		d.vp.SetYOffset(d.vp.YOffset - d.vp.Height/2)
		return d, nil
	case "g", "home":
		d.vp.GotoTop()
		return d, nil
	case "G", "end":
		d.vp.GotoBottom()
		return d, nil
	default:
		return d, nil
	}

	d.refresh()
	return d, nil
}

// followCursor scrolls so the ingredient under the cursor stays visible
func (d *RecipeDetail) followCursor() {
	line := d.ingredientLine + d.cursor
	if line < d.vp.YOffset {
		d.vp.SetYOffset(line)
	} else if line >= d.vp.YOffset+d.vp.Height {
		d.vp.SetYOffset(line - d.vp.Height + 1)
	}
}

func (d *RecipeDetail) refresh() {
	if d.recipe == nil {
		d.vp.SetContent("")
		return
	}
	offset := d.vp.YOffset
	d.vp.SetContent(d.renderBody())
	d.vp.SetYOffset(offset)
}

// View renders the component
func (d RecipeDetail) View() string {
	if d.recipe == nil {
		return d.renderNotFound()
	}
	return d.vp.View()
}

func (d RecipeDetail) renderNotFound() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render("Recipe not found"),
		"",
		styles.SubtitleStyle.Render(fmt.Sprintf("There is no recipe with id %q.", d.missingID)),
		"",
		styles.HighlightStyle.Render("enter  Return home"),
	)
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, content)
}

func (d *RecipeDetail) renderBody() string {
	r := d.recipe
	width := d.width - 2
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add(styles.CategoryBadge(r.Category) + "  " +
		lipgloss.NewStyle().Foreground(styles.DifficultyColor(r.Difficulty)).Render(r.Difficulty.Label()) + "  " +
		styles.LikeIndicator(d.liked))
	add(styles.TitleStyle.Render(r.Title))
	if r.Description != "" {
		add(strings.Split(wrap.Foreground(styles.Muted).Render(r.Description), "\n")...)
	}
	add("")

	add(styles.DimStyle.Render(fmt.Sprintf("Prep %s · Cook %s · Serves %d · %s",
		orDash(r.PrepTime), orDash(r.CookTime), r.Servings, orDash(r.Cuisine))))
	if r.ImageURL != "" {
		add(styles.DimStyle.Render("Image: ") + styles.AccentStyle.Render(styles.Truncate(r.ImageURL, width-7)))
	}
	add("")

	done := 0
	for i := range r.Ingredients {
		if d.checked[i] {
			done++
		}
	}
	add(styles.AccentStyle.Bold(true).Render("Ingredients") +
		styles.DimStyle.Render(fmt.Sprintf("  %d/%d", done, len(r.Ingredients))))

	d.ingredientLine = len(lines)
	if len(r.Ingredients) == 0 {
		add(styles.DimStyle.Render("  No ingredients listed"))
	}
	for i, ing := range r.Ingredients {
		box := "[ ]"
		text := lipgloss.NewStyle().Foreground(styles.Text).Render(ing)
		if d.checked[i] {
			box = styles.SuccessStyle.Render("[✓]")
			text = styles.DimStyle.Strikethrough(true).Render(ing)
		}
		pointer := "  "
		if i == d.cursor {
			pointer = styles.AccentStyle.Render("› ")
		}
		add(pointer + box + " " + text)
	}
	add("")

	add(styles.AccentStyle.Bold(true).Render("Instructions"))
	stepWrap := lipgloss.NewStyle().Width(width - 5).Foreground(styles.Text)
	for i, step := range r.Instructions {
		num := styles.BadgeStyle.Render(fmt.Sprintf("%d", i+1))
		body := strings.Split(stepWrap.Render(step), "\n")
		add(num + " " + body[0])
		for _, cont := range body[1:] {
			add("    " + cont)
		}
	}

	if len(r.Tags) > 0 {
		add("")
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = styles.DimBadgeStyle.Render("#" + t)
		}
		add(strings.Join(tags, " "))
	}

	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
