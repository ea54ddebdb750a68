package domain

import "strings"

// Category groups recipes by meal
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDessert   Category = "dessert"
	CategorySnack     Category = "snack"
)

// Categories returns all categories in menu order
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack}
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display label for the category
func (c Category) Label() string {
	switch c {
	case CategoryDinner:
		return "Main Course"
	case "":
		return ""
	default:
		return strings.ToUpper(string(c[:1])) + string(c[1:])
	}
}

// Difficulty rates how demanding a recipe is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulties from easiest to hardest
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Label returns the display label for the difficulty
func (d Difficulty) Label() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Recipe is a catalog entry. The JSON shape is the persisted and seed format.
type Recipe struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     Category   `json:"category"`
	Cuisine      string     `json:"cuisine"`
	PrepTime     string     `json:"prepTime"`
	CookTime     string     `json:"cookTime"`
	Servings     int        `json:"servings"`
	Difficulty   Difficulty `json:"difficulty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"` // Order is meaningful
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl,omitempty"` // Empty falls back to a placeholder at render time
	Tags         []string   `json:"tags"`
}

// Draft is a recipe that has not been assigned an ID yet
type Draft struct {
	Title        string     `json:"title" validate:"required"`
	Category     Category   `json:"category" validate:"required,oneof=breakfast lunch dinner dessert snack"`
	Cuisine      string     `json:"cuisine" validate:"required"`
	PrepTime     string     `json:"prepTime" validate:"required"`
	CookTime     string     `json:"cookTime" validate:"required"`
	Servings     int        `json:"servings" validate:"gte=1"`
	Difficulty   Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags         []string   `json:"tags"`
}

// NewDraft returns a draft with the form defaults (dinner, medium, serves 4)
func NewDraft() Draft {
	return Draft{
		Category:   CategoryDinner,
		Difficulty: DifficultyMedium,
		Servings:   4,
	}
}

// Cleaned returns a copy with blank ingredient, instruction and tag lines dropped
// and surrounding whitespace trimmed from the text fields.
func (d Draft) Cleaned() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Cuisine = strings.TrimSpace(d.Cuisine)
	d.PrepTime = strings.TrimSpace(d.PrepTime)
	d.CookTime = strings.TrimSpace(d.CookTime)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	d.Ingredients = nonBlank(d.Ingredients)
	d.Instructions = nonBlank(d.Instructions)
	d.Tags = nonBlank(d.Tags)
	return d
}

// WithID turns the draft into a Recipe with the given ID
func (d Draft) WithID(id string) Recipe {
	return Recipe{
		ID:           id,
		Title:        d.Title,
		Category:     d.Category,
		Cuisine:      d.Cuisine,
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
		Servings:     d.Servings,
		Difficulty:   d.Difficulty,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Tags:         d.Tags,
	}
}

func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}
