// Package theme owns the dark-mode preference.
//
// The flag reads false until Load has run, so the first frame drawn after
// startup matches what was drawn before storage was reachable.
package theme

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/mmcdole/freshbites/internal/domain"
)

// Presenter reflects the flag onto whatever draws the interface
type Presenter interface {
	Apply(dark bool)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(dark bool)

func (f PresenterFunc) Apply(dark bool) { f(dark) }

// Options configures a Store
type Options struct {
	Storage domain.LocalStorage
	// SystemPreference reports whether the terminal or OS prefers dark.
	// Consulted only when no flag has been saved. Nil means light.
	SystemPreference func() bool
	Presenter        Presenter
	Logger           *slog.Logger
}

// Store holds the dark-mode flag
type Store struct {
	storage   domain.LocalStorage
	system    func() bool
	presenter Presenter
	logger    *slog.Logger

	mu   sync.RWMutex
	dark bool

	loadMu sync.Mutex
	loaded bool
	ready  chan struct{}
}

func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		storage:   opts.Storage,
		system:    opts.SystemPreference,
		presenter: opts.Presenter,
		logger:    opts.Logger,
		ready:     make(chan struct{}),
	}
}

// Load resolves the flag from storage, falling back to the system preference,
// then marks the store ready and applies the result.
func (s *Store) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dark, source := s.resolve()

	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()

	s.loaded = true
	close(s.ready)

	s.logger.Info("theme loaded", "dark", dark, "source", source)
	s.commit(dark)
	return nil
}

func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// DarkMode reports the flag. It is always false before Load.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// ToggleDarkMode flips the flag and returns the new value
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	s.dark = !s.dark
	dark := s.dark
	s.mu.Unlock()

	if s.IsReady() {
		s.commit(dark)
	}
	return dark
}

func (s *Store) resolve() (dark bool, source string) {
	if s.storage != nil {
		raw, ok, err := s.storage.GetItem(domain.KeyDarkMode)
		switch {
		case err != nil:
			s.logger.Warn("failed to read theme preference", "error", err)
		case ok:
			if err := json.Unmarshal([]byte(raw), &dark); err == nil {
				return dark, "storage"
			}
			s.logger.Warn("stored theme preference is unreadable, ignoring it", "value", raw)
		}
	}

	if s.system != nil && s.system() {
		return true, "system"
	}
	return false, "default"
}

// commit persists the flag and hands it to the presenter
func (s *Store) commit(dark bool) {
	if s.storage != nil {
		data, _ := json.Marshal(dark)
		if err := s.storage.SetItem(domain.KeyDarkMode, string(data)); err != nil {
			s.logger.Error("failed to persist theme preference", "error", err)
		}
	}
	if s.presenter != nil {
		s.presenter.Apply(dark)
	}
}
