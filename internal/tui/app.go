package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/recipe"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/theme"
	"github.com/mmcdole/freshbites/internal/tui/components"
	"github.com/mmcdole/freshbites/internal/tui/styles"
)

// Page is the screen currently shown below the header
type Page int

const (
	PageHome Page = iota
	PageMyRecipes
	PageDetail
	PageAbout
	PageAddRecipe
)

func (p Page) String() string {
	switch p {
	case PageMyRecipes:
		return "My Recipes"
	case PageDetail:
		return "Recipe"
	case PageAbout:
		return "About"
	case PageAddRecipe:
		return "Add Recipe"
	default:
		return "Home"
	}
}

// ImageOpener shows a recipe image outside the terminal
type ImageOpener interface {
	Open(rawURL string) error
}

// Options configures the application model
type Options struct {
	Recipes *recipe.Store
	Theme   *theme.Store

	// ThemeUpdates delivers palette switches from the ThemePresenter
	// handed to the theme store. Nil disables live repainting.
	ThemeUpdates <-chan bool

	Opener   ImageOpener // nil disables "open image"
	ViewMode components.ViewMode

	// Initial Home search and category
	Query    string
	Category search.CategoryFilter

	PageSize    int
	GridColumns int
	Logger      *slog.Logger
}

// listing is the state behind a searchable recipe grid
type listing struct {
	Search   components.SearchBar
	Category search.CategoryFilter
	Grid     components.RecipeGrid

	// Recipes shown before "show more"; 0 shows every match
	Visible int

	matched []domain.Recipe
	more    bool
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	Page   Page
	backTo Page // where esc from the detail view or form returns
	Ready  bool

	// Stores
	Recipes *recipe.Store
	Theme   *theme.Store
	Opener  ImageOpener
	logger  *slog.Logger

	changes      <-chan domain.Snapshot
	themeUpdates <-chan bool
	unsubscribe  func()

	// UI Components
	Home          *listing
	Mine          *listing
	Detail        components.RecipeDetail
	Form          components.RecipeForm
	Omnibar       components.Omnibar
	CategoryModal components.CategoryModal

	// Data
	snapshot domain.Snapshot
	pageSize int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int
	ShowHelp     bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = search.PageSize
	}

	obs := NewChannelObserver()
	m := Model{
		Page:          PageHome,
		Recipes:       opts.Recipes,
		Theme:         opts.Theme,
		Opener:        opts.Opener,
		logger:        opts.Logger,
		changes:       obs.Changes(),
		themeUpdates:  opts.ThemeUpdates,
		unsubscribe:   opts.Recipes.Subscribe(obs),
		Home:          newListing("Search recipes...", opts.ViewMode, opts.GridColumns, opts.PageSize),
		Mine:          newListing("Search your saved recipes...", opts.ViewMode, opts.GridColumns, 0),
		Detail:        components.NewRecipeDetail(),
		Form:          components.NewRecipeForm(),
		Omnibar:       components.NewOmnibar(),
		CategoryModal: components.NewCategoryModal(),
		snapshot:      opts.Recipes.Snapshot(),
		pageSize:      opts.PageSize,
		Loading:       true,
	}
	m.Home.Search.SetValue(opts.Query)
	if opts.Category != "" {
		m.Home.Category = opts.Category
	}
	m.refreshListings()
	return m
}

func newListing(placeholder string, mode components.ViewMode, columns, visible int) *listing {
	return &listing{
		Search:   components.NewSearchBar(placeholder),
		Category: search.All,
		Grid:     components.NewRecipeGrid(mode, columns),
		Visible:  visible,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		LoadRecipesCmd(m.Recipes),
		LoadThemeCmd(m.Theme),
		WaitForChangeCmd(m.changes),
		TickCmd(100 * time.Millisecond),
	}
	if m.themeUpdates != nil {
		cmds = append(cmds, WaitForThemeCmd(m.themeUpdates))
	}
	return tea.Batch(cmds...)
}

// Close detaches the model from the recipe store
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if !m.Loading {
			return m, nil
		}
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case RecipesLoadedMsg:
		m.Loading = false
		m.applySnapshot(m.Recipes.Snapshot())
		return m, nil

	case ThemeLoadedMsg:
		return m, nil

	case StoreChangedMsg:
		m.applySnapshot(msg.Snapshot)
		return m, WaitForChangeCmd(m.changes)

	case ThemeAppliedMsg:
		styles.Apply(msg.Dark)
		m.Detail.SetLiked(m.isLiked(m.detailID())) // re-render cached body in the new palette
		return m, WaitForThemeCmd(m.themeUpdates)

	case ImageOpenedMsg:
		return m.setStatus("Opened image for "+msg.Title, false)

	case ErrMsg:
		m.Loading = false
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blinks and other component-internal messages
	return m.forwardToFocused(msg)
}

// forwardToFocused passes non-key messages to whichever input owns the cursor
func (m Model) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.Omnibar.IsVisible():
		m.Omnibar, cmd, _ = m.Omnibar.Update(msg)
	case m.Page == PageAddRecipe:
		m.Form, cmd, _ = m.Form.Update(msg)
	default:
		if l := m.activeListing(); l != nil && l.Search.Focused() {
			l.Search, cmd, _ = l.Search.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	delay := 3 * time.Second
	if isErr {
		delay = 5 * time.Second
	}
	return m, ClearStatusCmd(delay)
}

// applySnapshot pushes new store state into every view
func (m *Model) applySnapshot(snap domain.Snapshot) {
	m.snapshot = snap
	m.refreshListings()

	if id := m.detailID(); id != "" {
		m.Detail.SetLiked(snap.Liked.Has(id))
	}
}

// refreshListings re-runs search and paging for both listings
func (m *Model) refreshListings() {
	m.refreshListing(m.Home, m.snapshot.Recipes)
	m.refreshListing(m.Mine, m.Recipes.Favorites())
}

func (m *Model) refreshListing(l *listing, recipes []domain.Recipe) {
	l.matched = search.Filter(recipes, l.Search.Value(), l.Category)
	shown := l.matched
	l.more = false
	if l.Visible > 0 {
		shown, l.more = search.Page(l.matched, l.Visible)
	}
	l.Grid.SetRecipes(shown, m.snapshot.Liked)
}

func (m Model) isLiked(id string) bool {
	return m.snapshot.Liked.Has(id)
}

func (m Model) detailID() string {
	if r := m.Detail.Recipe(); r != nil {
		return r.ID
	}
	return ""
}

// activeListing returns the listing behind the current page, if any
func (m Model) activeListing() *listing {
	switch m.Page {
	case PageHome:
		return m.Home
	case PageMyRecipes:
		return m.Mine
	}
	return nil
}

// selectedRecipe returns the recipe the current page is acting on
func (m Model) selectedRecipe() *domain.Recipe {
	if m.Page == PageDetail {
		return m.Detail.Recipe()
	}
	if l := m.activeListing(); l != nil {
		return l.Grid.Selected()
	}
	return nil
}
