package domain

import (
	"encoding/json"
	"sort"
)

// LikedSet is the set of recipe IDs the user marked as favorite.
// Each member maps to its insertion sequence so the set encodes in the
// order the recipes were liked. Re-liking an ID moves it to the end.
type LikedSet map[string]int

// NewLikedSet builds a set from a list of IDs, dropping duplicates and
// keeping the first occurrence's position
func NewLikedSet(ids ...string) LikedSet {
	s := make(LikedSet, len(ids))
	for _, id := range ids {
		if !s.Has(id) {
			s[id] = len(s)
		}
	}
	return s
}

// Has reports membership
func (s LikedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership of id and reports whether it is now a member
func (s LikedSet) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	next := 0
	for _, seq := range s {
		if seq >= next {
			next = seq + 1
		}
	}
	s[id] = next
	return true
}

// Clone returns an independent copy
func (s LikedSet) Clone() LikedSet {
	c := make(LikedSet, len(s))
	for id, seq := range s {
		c[id] = seq
	}
	return c
}

// IDs returns the members in the order they were added
func (s LikedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return s[ids[i]] < s[ids[j]] })
	return ids
}

func (s LikedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *LikedSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewLikedSet(ids...)
	return nil
}
