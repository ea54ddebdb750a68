package search

import (
	"strings"
	"testing"

	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []domain.Recipe {
	return []domain.Recipe{
		{ID: "a", Title: "Shakshuka", Category: domain.CategoryBreakfast, Cuisine: "Middle Eastern", Tags: []string{"Eggs", "Spicy"}},
		{ID: "b", Title: "Caesar Salad", Category: domain.CategoryLunch, Cuisine: "American", Tags: []string{"Salad"}},
		{ID: "c", Title: "Pad Thai", Category: domain.CategoryDinner, Cuisine: "Thai", Tags: []string{"Noodles"}},
		{ID: "d", Title: "Mango Sticky Rice", Category: domain.CategoryDessert, Cuisine: "Thai", Tags: []string{"Sweet", "Rice"}},
		{ID: "e", Title: "Green Curry", Category: domain.CategoryDinner, Cuisine: "Thai", Tags: []string{"SPICY"}},
		{ID: "f", Title: "Trail Mix", Category: domain.CategorySnack, Cuisine: "American"},
	}
}

func ids(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category CategoryFilter
		want     []string
	}{
		{"empty query all", "", All, []string{"a", "b", "c", "d", "e", "f"}},
		{"title substring", "salad", All, []string{"b"}},
		{"cuisine match", "THAI", All, []string{"c", "d", "e"}},
		{"tag match is case-insensitive", "spicy", All, []string{"a", "e"}},
		{"category only", "", CategoryFilter(domain.CategoryDinner), []string{"c", "e"}},
		{"both predicates", "thai", CategoryFilter(domain.CategoryDessert), []string{"d"}},
		{"category excludes query hit", "salad", CategoryFilter(domain.CategoryDinner), []string{}},
		{"no match", "pizza", All, []string{}},
		{"three spaces match nothing", "   ", All, []string{}},
		{"leading space is part of the query", " thai", All, []string{"c"}},
		{"zero value filter means all", "rice", "", []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(catalog(), tt.query, tt.category)))
		})
	}
}

func TestFilterDoesNotTrimQuery(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: "1", Title: "Avocado Toast", Category: domain.CategoryBreakfast},
		{ID: "2", Title: "Pancakes", Category: domain.CategoryBreakfast},
	}

	assert.Empty(t, Filter(recipes, "toast ", All), "a trailing space must match literally")
	assert.Equal(t, []string{"1"}, ids(Filter(recipes, "toast", All)))
	assert.Equal(t, []string{"1"}, ids(Filter(recipes, " ", All)), "a lone space matches only text containing a space")
}

// Filter must keep exactly the recipes satisfying both predicates, in order
func TestFilterAgainstSeed(t *testing.T) {
	recipes := seed.Recipes()
	queries := []string{"", "korean", "spicy", "rice", "ch", "bulgogi", "xyz"}

	for _, q := range queries {
		for _, f := range CategoryFilters() {
			got := Filter(recipes, q, f)

			var want []string
			for _, r := range recipes {
				hit := q == "" || strings.Contains(strings.ToLower(r.Title), q) ||
					strings.Contains(strings.ToLower(r.Cuisine), q)
				for _, tag := range r.Tags {
					hit = hit || strings.Contains(strings.ToLower(tag), q)
				}
				if hit && (f == All || string(f) == string(r.Category)) {
					want = append(want, r.ID)
				}
			}
			if want == nil {
				want = []string{}
			}
			assert.Equal(t, want, ids(got), "query=%q category=%s", q, f)
		}
	}
}

func TestCategoryFilters(t *testing.T) {
	filters := CategoryFilters()
	require.Len(t, filters, 6)
	assert.Equal(t, All, filters[0])
	assert.Equal(t, CategoryFilter("snack"), filters[5])

	assert.Equal(t, CategoryFilter("breakfast"), All.Next())
	assert.Equal(t, All, CategoryFilter("snack").Next())

	assert.Equal(t, "All Categories", All.Label())
	assert.Equal(t, "Main Course", CategoryFilter("dinner").Label())
}

func TestParseCategoryFilter(t *testing.T) {
	for in, want := range map[string]CategoryFilter{
		"":        All,
		"all":     All,
		" Lunch ": CategoryFilter("lunch"),
		"DESSERT": CategoryFilter("dessert"),
	} {
		got, err := ParseCategoryFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCategoryFilter("brunch")
	assert.Error(t, err)
}

func TestPage(t *testing.T) {
	recipes := catalog()

	page, more := Page(recipes, PageSize)
	assert.Len(t, page, 6)
	assert.False(t, more)

	page, more = Page(recipes, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(page))
	assert.True(t, more)

	page, more = Page(recipes, -1)
	assert.Empty(t, page)
	assert.True(t, more)

	page, more = Page(nil, PageSize)
	assert.Empty(t, page)
	assert.False(t, more)
}

func TestComputeStats(t *testing.T) {
	st := ComputeStats(catalog())
	assert.Equal(t, 6, st.Total)
	assert.Equal(t, 1, st.Breakfast)
	assert.Equal(t, 2, st.Dinner)
	assert.Equal(t, 1, st.Dessert)
	assert.Equal(t, 1, st.ByCategory[domain.CategorySnack])

	empty := ComputeStats(nil)
	assert.Zero(t, empty.Total)
}

func TestJump(t *testing.T) {
	results := Jump("bulg", seed.Recipes())
	require.NotEmpty(t, results)
	assert.Equal(t, "Bulgogi", results[0].Recipe.Title)
	assert.Equal(t, []int{0, 1, 2, 3}, results[0].MatchedIndexes)

	assert.Nil(t, Jump("  ", seed.Recipes()))
	assert.Empty(t, Jump("zzzz", seed.Recipes()))
}

func TestSuggest(t *testing.T) {
	recipes := seed.Recipes()

	got := Suggest("bbmbp", recipes, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Bibimbap", got[0])

	got = Suggest("kimchee", recipes, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Kimchi Jjigae", got[0])

	assert.LessOrEqual(t, len(Suggest("a", recipes, 2)), 2)
	assert.Nil(t, Suggest("", recipes, 3))
	assert.Nil(t, Suggest("bulgogi", recipes, 0))
}
