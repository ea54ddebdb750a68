package recipe

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// maxIDAttempts bounds how far the clock is nudged forward looking for a free ID
const maxIDAttempts = 1000

// IDGenerator derives a recipe ID from its creation time
type IDGenerator func(t time.Time) string

// TimestampIDs returns decimal Unix milliseconds
func TimestampIDs() IDGenerator {
	return func(t time.Time) string {
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
}

// ULIDs returns a ULID for the creation time plus random entropy.
// Sortable like TimestampIDs but safe for recipes created in the same millisecond.
func ULIDs() IDGenerator {
	return func(t time.Time) string {
		return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
	}
}

// ParseIDScheme maps the recipes.id_scheme config value to a generator
func ParseIDScheme(scheme string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", "timestamp":
		return TimestampIDs(), nil
	case "ulid":
		return ULIDs(), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q (want timestamp or ulid)", scheme)
	}
}

// uniqueIDLocked returns an ID not present in the catalog. Two recipes added in
// the same millisecond get consecutive timestamps. Caller holds s.mu.
func (s *Store) uniqueIDLocked() string {
	taken := make(map[string]bool, len(s.recipes))
	for _, r := range s.recipes {
		taken[r.ID] = true
	}

	t := s.now()
	for attempt := 0; ; attempt++ {
		id := s.newID(t.Add(time.Duration(attempt) * time.Millisecond))
		if attempt >= maxIDAttempts {
			id = fmt.Sprintf("%s-%d", id, attempt)
		}
		if !taken[id] {
			return id
		}
	}
}
