package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampIDs(t *testing.T) {
	gen := TimestampIDs()
	assert.Equal(t, "1700000000123", gen(time.UnixMilli(1_700_000_000_123)))
}

func TestULIDs(t *testing.T) {
	gen := ULIDs()
	now := time.UnixMilli(1_700_000_000_000)

	a, b := gen(now), gen(now)
	assert.NotEqual(t, a, b)

	parsed, err := ulid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_700_000_000_000), parsed.Time())
}

func TestParseIDScheme(t *testing.T) {
	at := time.UnixMilli(42)

	for _, scheme := range []string{"", "timestamp", " Timestamp "} {
		gen, err := ParseIDScheme(scheme)
		require.NoError(t, err, scheme)
		assert.Equal(t, "42", gen(at))
	}

	gen, err := ParseIDScheme("ULID")
	require.NoError(t, err)
	assert.Len(t, gen(at), 26)

	_, err = ParseIDScheme("uuid")
	assert.Error(t, err)
}

func TestStoreWithULIDs(t *testing.T) {
	s := newLoadedStore(t, newStorage(t, nil), Options{NewID: ULIDs()})

	r, err := s.AddRecipe(testDraft("Sortable"))
	require.NoError(t, err)
	_, err = ulid.Parse(r.ID)
	assert.NoError(t, err)
}

func TestContextScope(t *testing.T) {
	s := New(Options{Logger: quietLogger()})
	ctx := WithStore(context.Background(), s)

	assert.Same(t, s, FromContext(ctx))
	assert.Panics(t, func() { FromContext(context.Background()) })
}
