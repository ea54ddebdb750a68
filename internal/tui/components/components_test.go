package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(f RecipeForm, s string) RecipeForm {
	for _, r := range s {
		f, _, _ = f.Update(runeKey(string(r)))
	}
	return f
}

func tab(f RecipeForm, n int) RecipeForm {
	for range n {
		f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	return f
}

func TestRecipeGridNavigation(t *testing.T) {
	recipes := seed.Recipes()
	require.GreaterOrEqual(t, len(recipes), 7)

	g := NewRecipeGrid(ViewGrid, 3)
	g.SetSize(3*MinCardWidth, 40)
	g.SetRecipes(recipes[:7], domain.NewLikedSet())
	require.Equal(t, 3, g.Columns())

	g, _ = g.Update(runeKey("j"))
	assert.Equal(t, 3, g.Cursor())
	g, _ = g.Update(runeKey("l"))
	assert.Equal(t, 4, g.Cursor())
	g, _ = g.Update(runeKey("j"))
	assert.Equal(t, 6, g.Cursor(), "moving down past a short last row lands on the last item")
	g, _ = g.Update(runeKey("k"))
	assert.Equal(t, 3, g.Cursor())
	g, _ = g.Update(runeKey("g"))
	assert.Equal(t, 0, g.Cursor())
	g, _ = g.Update(runeKey("h"))
	assert.Equal(t, 0, g.Cursor())
	g, _ = g.Update(runeKey("G"))
	assert.Equal(t, 6, g.Cursor())
	assert.Equal(t, recipes[6].ID, g.Selected().ID)
}

func TestRecipeGridKeepsSelectionAcrossUpdates(t *testing.T) {
	recipes := seed.Recipes()[:5]

	g := NewRecipeGrid(ViewList, 3)
	g.SetSize(80, 20)
	g.SetRecipes(recipes, nil)
	assert.Equal(t, 1, g.Columns(), "list mode has one column")
	g.SetCursor(2)

	// Drop the first recipe; the cursor follows the selected one
	g.SetRecipes(recipes[1:], nil)
	assert.Equal(t, 1, g.Cursor())
	assert.Equal(t, recipes[2].ID, g.Selected().ID)

	g.SetRecipes(nil, nil)
	assert.Nil(t, g.Selected())
	assert.Empty(t, g.View())
}

func TestRecipeGridRendersLikes(t *testing.T) {
	recipes := seed.Recipes()[:2]
	g := NewRecipeGrid(ViewGrid, 3)
	g.SetSize(100, 20)
	g.SetRecipes(recipes, domain.NewLikedSet(recipes[0].ID))

	view := g.View()
	assert.Contains(t, view, recipes[1].Title)
	assert.Contains(t, view, "♥")
	assert.Contains(t, view, "♡")
}

func TestParseViewMode(t *testing.T) {
	assert.Equal(t, ViewList, ParseViewMode("LIST"))
	assert.Equal(t, ViewGrid, ParseViewMode("grid"))
	assert.Equal(t, ViewGrid, ParseViewMode("bogus"))
	assert.Equal(t, "list", ViewList.String())
}

func TestCategoryModal(t *testing.T) {
	m := NewCategoryModal()
	handled, sel := m.HandleKey(runeKey("j"))
	assert.False(t, handled, "hidden modal ignores keys")
	assert.Nil(t, sel)

	m.Show(search.All)
	assert.True(t, m.IsVisible())

	handled, sel = m.HandleKey(runeKey("j"))
	assert.True(t, handled)
	assert.Nil(t, sel)

	handled, sel = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	require.NotNil(t, sel)
	assert.Equal(t, search.CategoryFilters()[1], *sel)
	assert.False(t, m.IsVisible())

	m.Show(*sel)
	handled, sel = m.HandleKey(runeKey("c"))
	assert.True(t, handled)
	assert.Nil(t, sel, "c closes without choosing")
	assert.False(t, m.IsVisible())
}

func TestOmnibarJump(t *testing.T) {
	o := NewOmnibar()
	o.SetSize(100, 30)
	o.Show(seed.Recipes())

	var selected bool
	for _, r := range "bulg" {
		o, _, selected = o.Update(runeKey(string(r)))
		assert.False(t, selected)
	}
	require.NotEmpty(t, o.Results())
	assert.Contains(t, o.Selected().Title, "Bulgogi")

	o, _, selected = o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, selected)
	assert.False(t, o.IsVisible())
}

func TestOmnibarEscape(t *testing.T) {
	o := NewOmnibar()
	o.Show(seed.Recipes())
	o, _, selected := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, selected)
	assert.False(t, o.IsVisible())
	assert.Empty(t, o.View())
}

func TestSearchBar(t *testing.T) {
	s := NewSearchBar("Search recipes")
	_, _, changed := s.Update(runeKey("x"))
	assert.False(t, changed, "blurred bar ignores keys")

	s.Focus()
	s, _, changed = s.Update(runeKey("k"))
	assert.True(t, changed)
	assert.Equal(t, "k", s.Value())

	s, _, changed = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, changed)
	assert.False(t, s.Focused())
	assert.Equal(t, "k", s.Value(), "enter keeps the query")

	s.Focus()
	s, _, changed = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, changed)
	assert.Empty(t, s.Value(), "esc clears the query")
}

func TestRecipeFormDefaults(t *testing.T) {
	f := NewRecipeForm()
	d := f.Draft()
	assert.Equal(t, domain.CategoryDinner, d.Category)
	assert.Equal(t, domain.DifficultyMedium, d.Difficulty)
	assert.Equal(t, 4, d.Servings)
	assert.Equal(t, "title", f.FocusedField())
}

func TestRecipeFormBuildsDraft(t *testing.T) {
	f := NewRecipeForm()
	f.SetSize(80, 40)
	f.Focus()

	f = typeInto(f, "Test Dish")
	f = tab(f, 1)
	assert.Equal(t, "category", f.FocusedField())
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight}) // dinner -> dessert
	f = tab(f, 1)
	f = typeInto(f, "Korean")
	f = tab(f, 1)
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft}) // medium -> easy
	f = tab(f, 3)
	assert.Equal(t, "servings", f.FocusedField())
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	f = typeInto(f, "x")

	d := f.Draft()
	assert.Equal(t, "Test Dish", d.Title)
	assert.Equal(t, domain.CategoryDessert, d.Category)
	assert.Equal(t, "Korean", d.Cuisine)
	assert.Equal(t, domain.DifficultyEasy, d.Difficulty)
	assert.Equal(t, 0, d.Servings, "non-numeric servings become 0")
}

func TestRecipeFormMultilineFields(t *testing.T) {
	f := NewRecipeForm()
	f.SetSize(80, 40)
	f = tab(f, 9)
	f.Focus()
	require.Equal(t, "ingredients", f.FocusedField())

	f = typeInto(f, "rice")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f = typeInto(f, "egg")

	d := f.Draft().Cleaned()
	assert.Equal(t, []string{"rice", "egg"}, d.Ingredients)
	assert.Empty(t, d.Tags)
}

func TestRecipeFormSubmitCancelAndErrors(t *testing.T) {
	f := NewRecipeForm()
	_, _, res := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, FormSubmitted, res)
	_, _, res = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FormCancelled, res)

	f.SetErrors(map[string]string{"cuisine": "is required"})
	assert.Equal(t, "cuisine", f.FocusedField(), "focus jumps to the first invalid field")
	assert.Contains(t, f.View(), "Cuisine is required")

	f.Reset()
	assert.Nil(t, f.Errors())
	assert.Equal(t, "title", f.FocusedField())
}

func TestRecipeDetailChecklist(t *testing.T) {
	r := seed.Recipes()[0]
	require.GreaterOrEqual(t, len(r.Ingredients), 2)

	d := NewRecipeDetail()
	d.SetSize(80, 30)
	d.SetRecipe(r, false)
	assert.False(t, d.NotFound())

	d, _ = d.Update(runeKey("x"))
	assert.True(t, d.Checked(0))
	d, _ = d.Update(runeKey("j"))
	d, _ = d.Update(runeKey("x"))
	assert.True(t, d.Checked(1))
	d, _ = d.Update(runeKey("x"))
	assert.False(t, d.Checked(1))

	d.SetLiked(true)
	assert.True(t, d.Checked(0), "liking keeps the checklist")

	d.SetRecipe(r, true)
	assert.False(t, d.Checked(0), "reopening resets the checklist")
	assert.Contains(t, d.View(), "Ingredients")
}

func TestRecipeDetailNotFound(t *testing.T) {
	d := NewRecipeDetail()
	d.SetSize(80, 20)
	d.SetMissing("nope")
	assert.True(t, d.NotFound())
	assert.Nil(t, d.Recipe())
	assert.Contains(t, d.View(), "Recipe not found")
}
