package recipe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/seed"
	"github.com/mmcdole/freshbites/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStorage wraps a LocalStorage and records every write
type recordingStorage struct {
	domain.LocalStorage

	mu      sync.Mutex
	writes  []write
	failErr error
}

type write struct{ key, value string }

func (r *recordingStorage) SetItem(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.writes = append(r.writes, write{key, value})
	return r.LocalStorage.SetItem(key, value)
}

func (r *recordingStorage) writesTo(key string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, w := range r.writes {
		if w.key == key {
			out = append(out, w.value)
		}
	}
	return out
}

func newStorage(t *testing.T, items map[string]string) *recordingStorage {
	t.Helper()
	local, err := store.Open(t.TempDir(), store.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	for k, v := range items {
		require.NoError(t, local.SetItem(k, v))
	}
	return &recordingStorage{LocalStorage: local}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoadedStore(t *testing.T, storage domain.LocalStorage, opts Options) *Store {
	t.Helper()
	opts.Storage = storage
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	s := New(opts)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func testDraft(title string) domain.Draft {
	d := domain.NewDraft()
	d.Title = title
	d.Cuisine = "Korean"
	d.PrepTime = "10 min"
	d.CookTime = "20 min"
	d.Ingredients = []string{"rice", ""}
	d.Instructions = []string{"cook the rice"}
	d.Tags = []string{"Quick"}
	return d
}

func recipeIDs(recipes []domain.Recipe) []string {
	ids := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids
}

func TestNewStartsWithSeedAndNoLikes(t *testing.T) {
	storage := newStorage(t, map[string]string{
		domain.KeyLikedRecipes: `["r3","r7"]`,
		domain.KeyRecipes:      `[{"id":"only","title":"Persisted"}]`,
	})

	s := New(Options{Storage: storage, Logger: quietLogger()})

	assert.Equal(t, recipeIDs(seed.Recipes()), recipeIDs(s.Recipes()))
	assert.Empty(t, s.Liked())
	assert.False(t, s.IsReady())
	assert.Empty(t, storage.writes, "constructor must not touch storage")
}

func TestLoadRestoresLikedWithoutClobbering(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: `["r3","r7"]`})

	s := New(Options{Storage: storage, Logger: quietLogger()})
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, domain.NewLikedSet("r3", "r7"), s.Liked())
	assert.True(t, s.IsReady())
	assert.Empty(t, storage.writes, "loading must never write back")

	raw, ok, err := storage.GetItem(domain.KeyLikedRecipes)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["r3","r7"]`, raw)
}

func TestChangesBeforeLoadAreNotPersisted(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: `["r3"]`})
	s := New(Options{Storage: storage, Logger: quietLogger()})

	s.ToggleLike("1")
	_, err := s.AddRecipe(testDraft("Early"))
	require.NoError(t, err)

	assert.Empty(t, storage.writes)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, domain.NewLikedSet("r3"), s.Liked())
}

func TestLoadIsOneShot(t *testing.T) {
	storage := newStorage(t, nil)
	s := newLoadedStore(t, storage, Options{})

	require.NoError(t, storage.LocalStorage.SetItem(domain.KeyLikedRecipes, `["late"]`))
	require.NoError(t, s.Load(context.Background()))

	assert.False(t, s.IsLiked("late"))
}

func TestLoadCancelledContextCanRetry(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: `["a"]`})
	s := New(Options{Storage: storage, Logger: quietLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Load(ctx), context.Canceled)
	assert.False(t, s.IsReady())

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.IsLiked("a"))

	select {
	case <-s.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready channel not closed")
	}
}

func TestMalformedCatalogFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "definitely not json"},
		{"object instead of array", `{"id":"1"}`},
		{"null", "null"},
		{"missing id", `[{"title":"No ID"}]`},
		{"duplicate ids", `[{"id":"a","category":"lunch","difficulty":"easy"},{"id":"a","category":"lunch","difficulty":"easy"}]`},
		{"unknown category", `[{"id":"a","category":"brunch","difficulty":"easy"}]`},
		{"unknown difficulty", `[{"id":"a","category":"lunch","difficulty":"impossible"}]`},
		{"missing category", `[{"id":"a","difficulty":"easy"}]`},
		{"wrong field type", `[{"id":"a","servings":"four"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			storage := newStorage(t, map[string]string{domain.KeyRecipes: tt.raw})

			s := New(Options{Storage: storage, Logger: slog.New(slog.NewTextHandler(&logs, nil))})
			require.NotPanics(t, func() {
				require.NoError(t, s.Load(context.Background()))
			})

			assert.Equal(t, recipeIDs(seed.Recipes()), recipeIDs(s.Recipes()))
			assert.Contains(t, logs.String(), "unreadable")
			assert.True(t, s.IsReady())
		})
	}
}

func TestMalformedLikedSetStartsEmpty(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: "{oops"})
	s := newLoadedStore(t, storage, Options{})

	assert.Empty(t, s.Liked())
	s.ToggleLike("1")
	assert.Equal(t, []string{`["1"]`}, storage.writesTo(domain.KeyLikedRecipes))
}

func TestNullLikedSetIsUsable(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: "null"})
	s := newLoadedStore(t, storage, Options{})

	require.NotPanics(t, func() { s.ToggleLike("x") })
	assert.True(t, s.IsLiked("x"))
}

func TestPersistedCatalogReplacesSeed(t *testing.T) {
	storage := newStorage(t, map[string]string{
		domain.KeyRecipes: `[{"id":"p1","title":"Persisted","category":"lunch","difficulty":"easy","servings":2,"tags":["x"]}]`,
	})
	s := newLoadedStore(t, storage, Options{})

	recipes := s.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, "Persisted", recipes[0].Title)
}

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: `["2"]`})
	s := newLoadedStore(t, storage, Options{})
	before := s.Liked()

	s.ToggleLike("5")
	assert.True(t, s.IsLiked("5"))
	s.ToggleLike("5")

	assert.Equal(t, before, s.Liked())
	assert.Equal(t, []string{`["2","5"]`, `["2"]`}, storage.writesTo(domain.KeyLikedRecipes))
}

func TestLikedPersistsInLikeOrder(t *testing.T) {
	storage := newStorage(t, map[string]string{domain.KeyLikedRecipes: `["7","3"]`})
	s := newLoadedStore(t, storage, Options{})

	s.ToggleLike("1")
	s.ToggleLike("7")
	s.ToggleLike("7")

	assert.Equal(t, []string{`["7","3","1"]`, `["3","1"]`, `["3","1","7"]`}, storage.writesTo(domain.KeyLikedRecipes))
}

func TestToggleLikeUnknownID(t *testing.T) {
	s := newLoadedStore(t, newStorage(t, nil), Options{})

	s.ToggleLike("does-not-exist")
	assert.True(t, s.IsLiked("does-not-exist"))
	assert.Empty(t, s.Favorites())
}

func TestAddRecipePrependsWithFreshID(t *testing.T) {
	storage := newStorage(t, nil)
	s := newLoadedStore(t, storage, Options{})
	before := s.Recipes()

	added, err := s.AddRecipe(testDraft("Test Dish"))
	require.NoError(t, err)

	after := s.Recipes()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, added, after[0])
	assert.Equal(t, recipeIDs(before), recipeIDs(after[1:]), "existing recipes keep their relative order")
	for _, r := range before {
		assert.NotEqual(t, r.ID, added.ID)
	}

	assert.Equal(t, []string{"rice"}, added.Ingredients, "blank lines are dropped")

	writes := storage.writesTo(domain.KeyRecipes)
	require.Len(t, writes, 1)
	persisted, err := seed.Parse([]byte(writes[0]))
	require.NoError(t, err)
	assert.Equal(t, added.ID, persisted[0].ID)
	assert.Len(t, persisted, len(after))
}

func TestAddRecipeSameInstantStaysUnique(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	s := newLoadedStore(t, newStorage(t, nil), Options{Now: func() time.Time { return fixed }})

	seen := make(map[string]bool)
	for _, r := range s.Recipes() {
		seen[r.ID] = true
	}
	for i := 0; i < 5; i++ {
		r, err := s.AddRecipe(testDraft("Same Instant"))
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "id %s reused", r.ID)
		seen[r.ID] = true
	}

	ids := recipeIDs(s.Recipes())
	assert.Equal(t, "1700000000004", ids[0])
	assert.Equal(t, "1700000000000", ids[4])
}

func TestAddRecipeWithConstantGenerator(t *testing.T) {
	constant := func(time.Time) string { return "dup" }
	s := newLoadedStore(t, newStorage(t, nil), Options{NewID: constant, Seed: []domain.Recipe{{ID: "dup"}}})

	r, err := s.AddRecipe(testDraft("Escapes"))
	require.NoError(t, err)
	assert.NotEqual(t, "dup", r.ID)
}

func TestAddRecipeRejectsInvalidDraft(t *testing.T) {
	storage := newStorage(t, nil)
	s := newLoadedStore(t, storage, Options{})
	before := s.Recipes()

	d := testDraft("   ")
	d.Servings = 0
	d.Category = "brunch"
	d.ImageURL = "not a url"

	_, err := s.AddRecipe(d)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDraft)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "is required", ve.Fields["title"])
	assert.Equal(t, "must be at least 1", ve.Fields["servings"])
	assert.Contains(t, ve.Fields["category"], "breakfast")
	assert.Equal(t, "must be a valid URL", ve.Fields["imageUrl"])

	assert.Equal(t, recipeIDs(before), recipeIDs(s.Recipes()))
	assert.Empty(t, storage.writes)
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	var logs bytes.Buffer
	storage := newStorage(t, nil)
	s := newLoadedStore(t, storage, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	storage.failErr = store.ErrQuotaExceeded

	s.ToggleLike("1")
	added, err := s.AddRecipe(testDraft("Still Here"))
	require.NoError(t, err)

	assert.True(t, s.IsLiked("1"))
	assert.Equal(t, added.ID, s.Recipes()[0].ID)
	assert.Contains(t, logs.String(), "failed to persist state")
}

func TestRealQuotaExceeded(t *testing.T) {
	local, err := store.Open("", store.Options{QuotaBytes: 32})
	require.NoError(t, err)
	defer local.Close()

	s := newLoadedStore(t, local, Options{})
	_, err = s.AddRecipe(testDraft("Too Big"))
	require.NoError(t, err)

	_, ok, err := local.GetItem(domain.KeyRecipes)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Too Big", s.Recipes()[0].Title)
}

func TestFind(t *testing.T) {
	s := newLoadedStore(t, newStorage(t, nil), Options{})

	r, err := s.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "1", r.ID)

	_, err = s.Find("nope")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestFavoritesKeepCatalogOrder(t *testing.T) {
	s := newLoadedStore(t, newStorage(t, nil), Options{})

	s.ToggleLike("4")
	s.ToggleLike("2")
	assert.Equal(t, []string{"2", "4"}, recipeIDs(s.Favorites()))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s := newLoadedStore(t, newStorage(t, nil), Options{})

	recipes := s.Recipes()
	recipes[0].Title = "mutated"
	recipes[0].Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", s.Recipes()[0].Title)
	assert.NotEqual(t, "mutated", s.Recipes()[0].Tags[0])

	liked := s.Liked()
	liked.Toggle("x")
	assert.False(t, s.IsLiked("x"))
}

func TestSubscribe(t *testing.T) {
	s := New(Options{Storage: newStorage(t, nil), Logger: quietLogger()})

	var snaps []domain.Snapshot
	cancel := s.Subscribe(domain.ObserverFunc(func(snap domain.Snapshot) {
		snaps = append(snaps, snap)
	}))

	require.NoError(t, s.Load(context.Background()))
	s.ToggleLike("1")
	cancel()
	s.ToggleLike("2")

	require.Len(t, snaps, 2)
	assert.True(t, snaps[0].Ready)
	assert.True(t, snaps[1].Liked.Has("1"))
}

func TestWithoutStorage(t *testing.T) {
	s := newLoadedStore(t, nil, Options{})
	s.ToggleLike("1")
	_, err := s.AddRecipe(testDraft("Memory"))
	require.NoError(t, err)
	assert.True(t, s.IsLiked("1"))
}

func TestEndToEndScenario(t *testing.T) {
	storage := newStorage(t, nil)
	s := newLoadedStore(t, storage, Options{})

	first := s.Recipes()[0]
	require.Equal(t, "1", first.ID)
	require.Equal(t, domain.CategoryBreakfast, first.Category)
	before := len(s.Recipes())

	s.ToggleLike("1")
	assert.Equal(t, domain.NewLikedSet("1"), s.Liked())
	raw, ok, err := storage.GetItem(domain.KeyLikedRecipes)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["1"]`, raw)

	added, err := s.AddRecipe(testDraft("Test Dish"))
	require.NoError(t, err)
	assert.NotEqual(t, "1", added.ID)

	recipes := s.Recipes()
	assert.Len(t, recipes, before+1)
	assert.Equal(t, "Test Dish", recipes[0].Title)

	raw, ok, err = storage.GetItem(domain.KeyRecipes)
	require.NoError(t, err)
	require.True(t, ok)
	persisted, err := seed.Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, added.ID, persisted[0].ID)
	assert.Equal(t, "Test Dish", persisted[0].Title)

	// A fresh store over the same storage sees the same state after loading
	again := newLoadedStore(t, storage, Options{})
	assert.Equal(t, recipeIDs(recipes), recipeIDs(again.Recipes()))
	assert.True(t, again.IsLiked("1"))
}
