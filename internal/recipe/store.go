// Package recipe owns the recipe catalog and the liked-recipe set and keeps
// both in sync with local storage.
//
// A Store starts out holding the seed catalog and no likes, which is what a
// caller without storage access would see. Load reads the persisted values
// once; until it has done so for a given value, changes to that value are
// never written back, so defaults can not clobber what the user saved in an
// earlier session.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/seed"
)

// Options configures a Store
type Options struct {
	Storage domain.LocalStorage
	Seed    []domain.Recipe // nil uses the embedded fixture
	NewID   IDGenerator     // nil uses TimestampIDs
	Now     func() time.Time
	Logger  *slog.Logger
}

// Store is the single source of truth for recipes and likes.
type Store struct {
	storage  domain.LocalStorage
	seed     []domain.Recipe
	newID    IDGenerator
	now      func() time.Time
	logger   *slog.Logger
	validate *validator.Validate

	mu            sync.RWMutex
	recipes       []domain.Recipe
	liked         domain.LikedSet
	catalogLoaded bool
	likedLoaded   bool

	loadMu sync.Mutex
	loaded bool
	ready  chan struct{}

	obsMu     sync.Mutex
	observers map[int]domain.ChangeObserver
	nextObs   int
}

// New creates a store holding the seed catalog and an empty liked set.
// It does not touch storage; call Load once the program is running.
func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Seed == nil {
		opts.Seed = seed.Recipes()
	}
	if opts.NewID == nil {
		opts.NewID = TimestampIDs()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		storage:   opts.Storage,
		seed:      cloneRecipes(opts.Seed),
		newID:     opts.NewID,
		now:       opts.Now,
		logger:    opts.Logger,
		validate:  newValidator(),
		recipes:   cloneRecipes(opts.Seed),
		liked:     domain.NewLikedSet(),
		ready:     make(chan struct{}),
		observers: make(map[int]domain.ChangeObserver),
	}
}

// Load restores the persisted catalog and liked set. Only the first successful
// call does anything. A cancelled context leaves the store unloaded so a
// later call can retry.
func (s *Store) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	recipes := s.readCatalog()
	liked := s.readLiked()

	s.mu.Lock()
	s.recipes = recipes
	s.catalogLoaded = true
	s.liked = liked
	s.likedLoaded = true
	s.mu.Unlock()

	s.loaded = true
	close(s.ready)

	s.logger.Info("recipes loaded", "recipes", len(recipes), "liked", len(liked))
	s.notify()
	return nil
}

// Ready is closed once Load has completed
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// IsReady reports whether Load has completed
func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Recipes returns the catalog in display order
func (s *Store) Recipes() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecipes(s.recipes)
}

// Liked returns a copy of the liked set
func (s *Store) Liked() domain.LikedSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked.Clone()
}

func (s *Store) IsLiked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked.Has(id)
}

// Find looks up a recipe for the detail view
func (s *Store) Find(id string) (domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return cloneRecipe(r), nil
		}
	}
	return domain.Recipe{}, fmt.Errorf("recipe %q: %w", id, domain.ErrRecipeNotFound)
}

// Favorites returns liked recipes in catalog order
func (s *Store) Favorites() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Recipe
	for _, r := range s.recipes {
		if s.liked.Has(r.ID) {
			out = append(out, cloneRecipe(r))
		}
	}
	return out
}

// Snapshot returns the current state
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Recipes: cloneRecipes(s.recipes),
		Liked:   s.liked.Clone(),
		Ready:   s.catalogLoaded && s.likedLoaded,
	}
}

// ToggleLike flips membership of id in the liked set. The id does not have to
// exist in the catalog.
func (s *Store) ToggleLike(id string) {
	s.mu.Lock()
	nowLiked := s.liked.Toggle(id)
	liked := s.liked.Clone()
	persist := s.likedLoaded
	s.mu.Unlock()

	s.logger.Debug("toggled like", "id", id, "liked", nowLiked)
	if persist {
		s.writeJSON(domain.KeyLikedRecipes, liked)
	}
	s.notify()
}

// AddRecipe validates the draft, assigns it a fresh ID and prepends it to the catalog
func (s *Store) AddRecipe(draft domain.Draft) (domain.Recipe, error) {
	draft = draft.Cleaned()
	if err := s.validateDraft(draft); err != nil {
		return domain.Recipe{}, err
	}

	s.mu.Lock()
	recipe := draft.WithID(s.uniqueIDLocked())
	recipes := make([]domain.Recipe, 0, len(s.recipes)+1)
	recipes = append(recipes, recipe)
	recipes = append(recipes, s.recipes...)
	s.recipes = recipes
	snapshot := cloneRecipes(recipes)
	persist := s.catalogLoaded
	s.mu.Unlock()

	s.logger.Info("added recipe", "id", recipe.ID, "title", recipe.Title)
	if persist {
		s.writeJSON(domain.KeyRecipes, snapshot)
	}
	s.notify()
	return cloneRecipe(recipe), nil
}

// Subscribe registers an observer for state changes. The returned function removes it.
func (s *Store) Subscribe(obs domain.ChangeObserver) (cancel func()) {
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = obs
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

// --- Private helpers ---

func (s *Store) notify() {
	s.obsMu.Lock()
	observers := make([]domain.ChangeObserver, 0, len(s.observers))
	for _, obs := range s.observers {
		observers = append(observers, obs)
	}
	s.obsMu.Unlock()

	if len(observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, obs := range observers {
		obs.OnChange(snap)
	}
}

func (s *Store) readCatalog() []domain.Recipe {
	raw, ok := s.getItem(domain.KeyRecipes)
	if !ok {
		return cloneRecipes(s.seed)
	}

	recipes, err := seed.Parse([]byte(raw))
	if err == nil {
		err = checkCatalog(recipes)
	}
	if err != nil {
		s.logger.Warn("persisted recipes are unreadable, using seed catalog", "error", err)
		return cloneRecipes(s.seed)
	}
	return recipes
}

func (s *Store) readLiked() domain.LikedSet {
	raw, ok := s.getItem(domain.KeyLikedRecipes)
	if !ok {
		return domain.NewLikedSet()
	}

	var liked domain.LikedSet
	if err := json.Unmarshal([]byte(raw), &liked); err != nil {
		s.logger.Warn("persisted liked recipes are unreadable, starting empty", "error", err)
		return domain.NewLikedSet()
	}
	if liked == nil {
		liked = domain.NewLikedSet()
	}
	return liked
}

func (s *Store) getItem(key string) (string, bool) {
	if s.storage == nil {
		return "", false
	}
	raw, ok, err := s.storage.GetItem(key)
	if err != nil {
		s.logger.Warn("failed to read local storage", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

// writeJSON persists value under key. Failures are logged and otherwise ignored:
// the in-memory state stays authoritative for the rest of the session.
func (s *Store) writeJSON(key string, value any) {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode state", "key", key, "error", err)
		return
	}
	if err := s.storage.SetItem(key, string(data)); err != nil {
		s.logger.Error("failed to persist state", "key", key, "bytes", len(data), "error", err)
	}
}

// checkCatalog rejects decoded catalogs that would break the unique-ID invariant
// or carry a category or difficulty outside the known set
func checkCatalog(recipes []domain.Recipe) error {
	seen := make(map[string]bool, len(recipes))
	for i, r := range recipes {
		if r.ID == "" {
			return fmt.Errorf("recipe at index %d has no id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate recipe id %q", r.ID)
		}
		if !r.Category.Valid() {
			return fmt.Errorf("recipe %q has unknown category %q", r.ID, r.Category)
		}
		if !r.Difficulty.Valid() {
			return fmt.Errorf("recipe %q has unknown difficulty %q", r.ID, r.Difficulty)
		}
		seen[r.ID] = true
	}
	return nil
}

func cloneRecipes(in []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(in))
	for i, r := range in {
		out[i] = cloneRecipe(r)
	}
	return out
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Ingredients = cloneStrings(r.Ingredients)
	r.Instructions = cloneStrings(r.Instructions)
	r.Tags = cloneStrings(r.Tags)
	return r
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}
