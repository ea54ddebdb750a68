package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

// FormResult tells the caller what the last key did to the form
type FormResult int

const (
	FormEditing FormResult = iota
	FormSubmitted
	FormCancelled
)

type fieldKind int

const (
	fieldInput fieldKind = iota
	fieldCycle
	fieldArea
)

// formField describes one row of the form. name is the JSON field name,
// which is also the key validation errors come back under.
type formField struct {
	name  string
	label string
	kind  fieldKind
	index int // into inputs or areas
}

var formFields = []formField{
	{name: "title", label: "Title", kind: fieldInput, index: 0},
	{name: "category", label: "Category", kind: fieldCycle},
	{name: "cuisine", label: "Cuisine", kind: fieldInput, index: 1},
	{name: "difficulty", label: "Difficulty", kind: fieldCycle},
	{name: "prepTime", label: "Prep time", kind: fieldInput, index: 2},
	{name: "cookTime", label: "Cook time", kind: fieldInput, index: 3},
	{name: "servings", label: "Servings", kind: fieldInput, index: 4},
	{name: "imageUrl", label: "Image URL", kind: fieldInput, index: 5},
	{name: "description", label: "Description", kind: fieldArea, index: 0},
	{name: "ingredients", label: "Ingredients (one per line)", kind: fieldArea, index: 1},
	{name: "instructions", label: "Instructions (one step per line)", kind: fieldArea, index: 2},
	{name: "tags", label: "Tags (one per line)", kind: fieldArea, index: 3},
}

var inputPlaceholders = []string{
	"Spicy Pork Bulgogi",
	"Korean",
	"15 mins",
	"30 mins",
	"4",
	"https://images.example.com/dish.jpg",
}

const formAreaHeight = 3

// RecipeForm collects a new recipe
type RecipeForm struct {
	inputs     []textinput.Model
	areas      []textarea.Model
	category   int // index into domain.Categories()
	difficulty int // index into domain.Difficulties()

	focus  int
	errors map[string]string

	width  int
	height int
}

// NewRecipeForm creates a form holding the draft defaults
func NewRecipeForm() RecipeForm {
	f := RecipeForm{}
	for _, ph := range inputPlaceholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 200
		ti.Prompt = ""
		f.inputs = append(f.inputs, ti)
	}
	for range 4 {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Prompt = "│ "
		ta.CharLimit = 4000
		ta.SetHeight(formAreaHeight)
		f.areas = append(f.areas, ta)
	}
	f.Reset()
	return f
}

// Reset clears every field back to the draft defaults
func (f *RecipeForm) Reset() {
	d := domain.NewDraft()
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	for i := range f.areas {
		f.areas[i].SetValue("")
		f.areas[i].Blur()
	}
	f.inputs[4].SetValue(strconv.Itoa(d.Servings))
	f.category = indexOf(domain.Categories(), d.Category)
	f.difficulty = indexOf(domain.Difficulties(), d.Difficulty)
	f.errors = nil
	f.focus = 0
}

// Focus focuses the current field and returns its blink command
func (f *RecipeForm) Focus() tea.Cmd {
	return f.focusField(f.focus)
}

// SetErrors shows validation messages next to the named fields
func (f *RecipeForm) SetErrors(errs map[string]string) {
	f.errors = errs
	for i, field := range formFields {
		if _, ok := errs[field.name]; ok {
			f.focusField(i)
			return
		}
	}
}

// Errors returns the inline validation messages
func (f RecipeForm) Errors() map[string]string {
	return f.errors
}

// SetSize updates the component dimensions
func (f *RecipeForm) SetSize(width, height int) {
	f.width = width
	f.height = height
	w := width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	for i := range f.inputs {
		f.inputs[i].Width = w - 2
	}
	for i := range f.areas {
		f.areas[i].SetWidth(w)
	}
}

// Draft builds a draft from the current field values. Servings that do not
// parse as a number become 0 so validation can report them.
func (f RecipeForm) Draft() domain.Draft {
	servings, err := strconv.Atoi(strings.TrimSpace(f.inputs[4].Value()))
	if err != nil {
		servings = 0
	}
	return domain.Draft{
		Title:        f.inputs[0].Value(),
		Category:     domain.Categories()[f.category],
		Cuisine:      f.inputs[1].Value(),
		Difficulty:   domain.Difficulties()[f.difficulty],
		PrepTime:     f.inputs[2].Value(),
		CookTime:     f.inputs[3].Value(),
		Servings:     servings,
		ImageURL:     f.inputs[5].Value(),
		Description:  f.areas[0].Value(),
		Ingredients:  strings.Split(f.areas[1].Value(), "\n"),
		Instructions: strings.Split(f.areas[2].Value(), "\n"),
		Tags:         strings.Split(f.areas[3].Value(), "\n"),
	}
}

// FocusedField returns the JSON name of the focused field
func (f RecipeForm) FocusedField() string {
	return formFields[f.focus].name
}

func (f *RecipeForm) focusField(i int) tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	for j := range f.areas {
		f.areas[j].Blur()
	}
	f.focus = i

	field := formFields[i]
	switch field.kind {
	case fieldInput:
		return f.inputs[field.index].Focus()
	case fieldArea:
		return f.areas[field.index].Focus()
	}
	return nil
}

// Update handles form input, returns (form, cmd, result)
func (f RecipeForm) Update(msg tea.Msg) (RecipeForm, tea.Cmd, FormResult) {
	field := formFields[f.focus]

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FormKeys.Submit):
			return f, nil, FormSubmitted
		case key.Matches(keyMsg, FormKeys.Cancel):
			return f, nil, FormCancelled
		case key.Matches(keyMsg, FormKeys.Next):
			cmd := f.focusField((f.focus + 1) % len(formFields))
			return f, cmd, FormEditing
		case key.Matches(keyMsg, FormKeys.Prev):
			cmd := f.focusField((f.focus - 1 + len(formFields)) % len(formFields))
			return f, cmd, FormEditing
		}

		if field.kind == fieldCycle {
			step := 0
			switch {
			case key.Matches(keyMsg, FormKeys.Cycle):
				step = 1
			case key.Matches(keyMsg, FormKeys.Back):
				step = -1
			}
			if field.name == "category" {
				f.category = cycle(f.category, step, len(domain.Categories()))
			} else {
				f.difficulty = cycle(f.difficulty, step, len(domain.Difficulties()))
			}
			return f, nil, FormEditing
		}
	}

	var cmd tea.Cmd
	switch field.kind {
	case fieldInput:
		f.inputs[field.index], cmd = f.inputs[field.index].Update(msg)
	case fieldArea:
		f.areas[field.index], cmd = f.areas[field.index].Update(msg)
	}
	return f, cmd, FormEditing
}

// View renders the form, scrolled so the focused field is visible
func (f RecipeForm) View() string {
	var lines []string
	focusTop, focusBottom := 0, 0

	for i, field := range formFields {
		focused := i == f.focus
		if focused {
			focusTop = len(lines)
		}

		label := lipgloss.NewStyle().Foreground(styles.Muted).Render(field.label)
		if focused {
			label = styles.AccentStyle.Bold(true).Render(field.label)
		}
		if msg, ok := f.errors[field.name]; ok {
			label += "  " + styles.ErrorStyle.Render(field.label+" "+msg)
		}
		lines = append(lines, label)
		lines = append(lines, strings.Split(f.renderField(field, focused), "\n")...)
		lines = append(lines, "")

		if focused {
			focusBottom = len(lines)
		}
	}

	help := styles.HelpKeyStyle.Render("tab") + styles.HelpDescStyle.Render(" next  ") +
		styles.HelpKeyStyle.Render("←/→") + styles.HelpDescStyle.Render(" choose  ") +
		styles.HelpKeyStyle.Render("C-s") + styles.HelpDescStyle.Render(" save  ") +
		styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" cancel")

	height := f.height - 2
	if height <= 0 || len(lines) <= height {
		return strings.Join(append(lines, help), "\n")
	}

	start := 0
	if focusBottom > height {
		start = focusBottom - height
	}
	if focusTop < start {
		start = focusTop
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(append(lines[start:end], help), "\n")
}

func (f RecipeForm) renderField(field formField, focused bool) string {
	switch field.kind {
	case fieldCycle:
		var opts []string
		if field.name == "category" {
			for i, c := range domain.Categories() {
				opts = append(opts, renderOption(c.Label(), i == f.category, focused))
			}
		} else {
			for i, d := range domain.Difficulties() {
				opts = append(opts, renderOption(d.Label(), i == f.difficulty, focused))
			}
		}
		return strings.Join(opts, " ")
	case fieldArea:
		return f.areas[field.index].View()
	default:
		border := styles.Subtle
		if focused {
			border = styles.Accent
		}
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			PaddingLeft(1).
			Render(f.inputs[field.index].View())
	}
}

func renderOption(label string, chosen, focused bool) string {
	switch {
	case chosen && focused:
		return styles.BadgeStyle.Render(label)
	case chosen:
		return lipgloss.NewStyle().Foreground(styles.Accent).Bold(true).Padding(0, 1).Render(label)
	default:
		return styles.DimStyle.Padding(0, 1).Render(label)
	}
}

func cycle(i, step, n int) int {
	return (i + step + n) % n
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}
