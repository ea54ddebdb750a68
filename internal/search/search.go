// Package search filters and ranks recipes for the listing views.
// Everything here is a pure function of its inputs.
package search

import (
	"fmt"
	"strings"

	"github.com/mmcdole/freshbites/internal/domain"
)

// PageSize is how many more recipes "show more" reveals
const PageSize = 6

// CategoryFilter is "all" or one of the recipe categories
type CategoryFilter string

const All CategoryFilter = "all"

// CategoryFilters returns the dropdown options in display order
func CategoryFilters() []CategoryFilter {
	filters := []CategoryFilter{All}
	for _, c := range domain.Categories() {
		filters = append(filters, CategoryFilter(c))
	}
	return filters
}

// ParseCategoryFilter accepts "all", "" or a category name, case-insensitively
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(All) {
		return All, nil
	}
	if domain.Category(s).Valid() {
		return CategoryFilter(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Matches reports whether r belongs to the category filter
func (f CategoryFilter) Matches(r domain.Recipe) bool {
	return f == All || f == "" || domain.Category(f) == r.Category
}

func (f CategoryFilter) Label() string {
	if f == All || f == "" {
		return "All Categories"
	}
	return domain.Category(f).Label()
}

// Next cycles through CategoryFilters
func (f CategoryFilter) Next() CategoryFilter {
	filters := CategoryFilters()
	for i, c := range filters {
		if c == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return All
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// title, the cuisine or any tag. An empty query matches everything. The query
// is not trimmed, so surrounding spaces must match too.
func MatchesQuery(r domain.Recipe, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Cuisine), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Filter returns the recipes matching both the query and the category, in
// catalog order.
func Filter(recipes []domain.Recipe, query string, category CategoryFilter) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if category.Matches(r) && MatchesQuery(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// Page returns the first visible recipes and whether more remain
func Page(recipes []domain.Recipe, visible int) ([]domain.Recipe, bool) {
	if visible < 0 {
		visible = 0
	}
	if visible >= len(recipes) {
		return recipes, false
	}
	return recipes[:visible], true
}

// Stats are the dashboard counters
type Stats struct {
	Total      int
	Breakfast  int
	Dinner     int
	Dessert    int
	ByCategory map[domain.Category]int
}

func ComputeStats(recipes []domain.Recipe) Stats {
	st := Stats{Total: len(recipes), ByCategory: make(map[domain.Category]int)}
	for _, r := range recipes {
		st.ByCategory[r.Category]++
	}
	st.Breakfast = st.ByCategory[domain.CategoryBreakfast]
	st.Dinner = st.ByCategory[domain.CategoryDinner]
	st.Dessert = st.ByCategory[domain.CategoryDessert]
	return st
}
