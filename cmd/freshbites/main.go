package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/adapter"
	"github.com/mmcdole/freshbites/internal/recipe"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/seed"
	"github.com/mmcdole/freshbites/internal/store"
	"github.com/mmcdole/freshbites/internal/theme"
	"github.com/mmcdole/freshbites/internal/tui"
	"github.com/mmcdole/freshbites/internal/tui/components"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type runOptions struct {
	list     bool
	query    string
	category search.CategoryFilter
}

func main() {
	var (
		showVersion bool
		reset       bool
		category    string
		opts        runOptions
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&opts.list, "list", false, "print matching recipes and exit")
	flag.StringVar(&opts.query, "query", "", "search title, cuisine and tags")
	flag.StringVar(&category, "category", "all", "all, breakfast, lunch, dinner, dessert or snack")
	flag.BoolVar(&reset, "reset", false, "delete saved likes, added recipes and theme, then exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("freshbites %s\n", Version)
		return
	}

	var err error
	opts.category, err = search.ParseCategoryFilter(category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if reset {
		err = runReset()
	} else {
		err = run(opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReset() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := adapter.ResetStorage(cfg); err != nil {
		return err
	}
	fmt.Println("✓ Local storage cleared")
	return nil
}

func run(opts runOptions) error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting freshbites", "version", Version)

	storage, err := store.Open(cfg.StorageDir(), store.Options{QuotaBytes: cfg.Storage.QuotaBytes})
	if err != nil {
		return fmt.Errorf("failed to open local storage: %w", err)
	}
	defer storage.Close()

	catalog, err := seed.Load(cfg.Seed.File)
	if err != nil {
		return err
	}
	newID, err := recipe.ParseIDScheme(cfg.Recipes.IDScheme)
	if err != nil {
		return err
	}

	recipes := recipe.New(recipe.Options{
		Storage: storage,
		Seed:    catalog,
		NewID:   newID,
		Logger:  logger.With("component", "recipes"),
	})

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if opts.list || !interactive {
		ctx := recipe.WithStore(context.Background(), recipes)
		return printList(ctx, os.Stdout, opts.query, opts.category)
	}

	// Ask the terminal before Bubble Tea takes over stdin
	systemDark := lipgloss.HasDarkBackground()

	presenter := tui.NewThemePresenter()
	themes := theme.New(theme.Options{
		Storage:          storage,
		SystemPreference: func() bool { return systemDark },
		Presenter:        presenter,
		Logger:           logger.With("component", "theme"),
	})

	model := tui.NewModel(tui.Options{
		Recipes:      recipes,
		Theme:        themes,
		ThemeUpdates: presenter.Updates(),
		Opener:       adapter.NewLauncher(cfg.Viewer, logger),
		ViewMode:     components.ParseViewMode(cfg.UI.DefaultView),
		PageSize:     cfg.UI.PageSize,
		GridColumns:  cfg.UI.GridColumns,
		Query:        opts.query,
		Category:     opts.category,
		Logger:       logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// printList writes the filtered catalog as plain text, using the store scoped to ctx
func printList(ctx context.Context, w io.Writer, query string, category search.CategoryFilter) error {
	recipes := recipe.FromContext(ctx)
	if err := recipes.Load(ctx); err != nil {
		return err
	}
	liked := recipes.Liked()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tTITLE\tCATEGORY\tCUISINE\tTIME")
	for _, r := range search.Filter(recipes.Recipes(), query, category) {
		mark := " "
		if liked.Has(r.ID) {
			mark = "♥"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s + %s\n",
			mark, r.ID, r.Title, r.Category.Label(), r.Cuisine, r.PrepTime, r.CookTime)
	}
	return tw.Flush()
}
