package search

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/sahilm/fuzzy"
)

// TitleIndex implements sahilm/fuzzy.Source over recipe titles
type TitleIndex struct {
	recipes     []domain.Recipe
	lowerTitles []string
}

func NewTitleIndex(recipes []domain.Recipe) *TitleIndex {
	idx := &TitleIndex{
		recipes:     recipes,
		lowerTitles: make([]string, len(recipes)),
	}
	for i, r := range recipes {
		idx.lowerTitles[i] = strings.ToLower(r.Title)
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *TitleIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of recipes (implements fuzzy.Source)
func (idx *TitleIndex) Len() int { return len(idx.recipes) }

// JumpResult is an omnibar hit with match metadata for highlighting
type JumpResult struct {
	Recipe         domain.Recipe
	MatchedIndexes []int // Byte positions in the title that matched
	Score          int   // Higher is better
}

// Jump ranks recipes whose title fuzzily matches query, best first
func Jump(query string, recipes []domain.Recipe) []JumpResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	idx := NewTitleIndex(recipes)
	matches := fuzzy.FindFrom(strings.ToLower(query), idx)

	results := make([]JumpResult, len(matches))
	for i, m := range matches {
		results[i] = JumpResult{
			Recipe:         idx.recipes[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// Suggest returns up to n titles close to query, for the "did you mean"
// line shown when a search finds nothing. Subsequence matches rank first,
// then titles containing a word within a small edit distance.
func Suggest(query string, recipes []domain.Recipe, n int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || n <= 0 {
		return nil
	}

	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = r.Title
	}

	seen := make(map[string]bool)
	var out []string
	add := func(title string) bool {
		if !seen[title] {
			seen[title] = true
			out = append(out, title)
		}
		return len(out) >= n
	}

	ranks := lfuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)
	for _, r := range ranks {
		if add(r.Target) {
			return out
		}
	}

	type near struct {
		title string
		dist  int
	}
	maxDist := len(query)/3 + 1
	var candidates []near
	for _, title := range titles {
		best := -1
		for _, word := range strings.Fields(strings.ToLower(title)) {
			d := lfuzzy.LevenshteinDistance(query, strings.Trim(word, "()-,"))
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= maxDist {
			candidates = append(candidates, near{title, best})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	for _, c := range candidates {
		if add(c.title) {
			break
		}
	}
	return out
}
