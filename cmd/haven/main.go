// Recipe Haven: a terminal recipe catalog.
//
// Usage:
//
//	haven [-config haven.yaml] [-data recipes.json] [-storage file|sqlite|memory]
//	haven -list | -search <query> | -show <id> | -add <draft.yaml>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/recipehaven/internal/catalog"
	"github.com/hammamikhairi/recipehaven/internal/config"
	"github.com/hammamikhairi/recipehaven/internal/display"
	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/engine"
	"github.com/hammamikhairi/recipehaven/internal/logger"
	"github.com/hammamikhairi/recipehaven/internal/persist"
	"github.com/hammamikhairi/recipehaven/internal/storage"
)

func main() {
	config.LoadEnv()

	configPath := flag.String("config", "haven.yaml", "YAML config file (missing is fine)")
	dataFile := flag.String("data", "", "recipe catalog JSON file (default: bundled recipes)")
	backend := flag.String("storage", "", "where submissions are kept: file, sqlite or memory")
	storagePath := flag.String("storage-path", "", "directory (file) or database file (sqlite) for submissions")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	list := flag.Bool("list", false, "print all recipes and exit")
	search := flag.String("search", "", "print recipes whose title contains the query and exit")
	show := flag.Int64("show", 0, "print one recipe by id and exit")
	add := flag.String("add", "", "submit the recipe draft in a YAML file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags only override what was explicitly passed.
	searching := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataFile = *dataFile
		case "storage":
			cfg.Storage.Backend = *backend
		case "storage-path":
			cfg.Storage.Path = *storagePath
		case "log-file":
			cfg.Log.File = *logFile
		case "search":
			searching = true
		}
	})
	if *verbose {
		cfg.Log.Level = logger.LevelVerbose.String()
	}
	if *quiet {
		cfg.Log.Level = logger.LevelOff.String()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog := openLog(cfg.Log.File)
	defer closeLog()

	// Third-party libs using the default log package go to the same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel(), logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer app.close()

	code := 0
	switch {
	case *list:
		display.PrintRecipeList(os.Stdout, app.engine.ListRecipes(ctx))
	case searching:
		display.PrintRecipeList(os.Stdout, app.engine.Search(ctx, *search))
	case *show != 0:
		code = app.show(ctx, os.Stdout, *show)
	case *add != "":
		code = app.add(ctx, os.Stdout, *add)
	default:
		if err := app.runUI(ctx); err != nil {
			log.Error("display: %v", err)
			code = 1
		}
	}

	app.close()
	closeLog()
	os.Exit(code)
}

// openLog directs logs to a file by default so the TUI stays clean.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

type app struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Source
	store   storage.Store
	engine  *engine.Engine
	closed  bool
}

func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	src := catalog.NewSource(cfg.DataFile, log.Named("catalog"))

	store, err := storage.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path, log.Named("storage"))
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}

	sink := persist.New(store, log.Named("persist"),
		persist.WithSlot(cfg.Storage.Slot),
		persist.WithPlaceholder(cfg.PlaceholderImage),
	)
	eng := engine.New(src, sink, log.Named("engine"),
		engine.WithBackend(engine.NewDelayBackend(cfg.SubmitDelay, log.Named("backend"))),
	)
	log.Info("storage: %s %s (slot %q)", cfg.Storage.Backend, cfg.Storage.Path, cfg.Storage.Slot)

	return &app{cfg: cfg, log: log, catalog: src, store: store, engine: eng}, nil
}

func (a *app) close() {
	if a.closed {
		return
	}
	a.closed = true
	if err := a.store.Close(); err != nil {
		a.log.Warn("closing storage: %v", err)
	}
}

// runUI runs the terminal UI and, for a file-backed catalog, the reload
// watcher. Quitting the UI stops the watcher.
func (a *app) runUI(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := display.NewUI(a.engine, a.log.Named("ui"))
	a.engine.SetNavigator(ui)

	g, gctx := errgroup.WithContext(ctx)
	if a.catalog.Path() != "" {
		w := catalog.NewWatcher(a.catalog, a.log.Named("watch"),
			catalog.WithOnReload(func(error) { ui.Refresh() }),
		)
		g.Go(func() error {
			if err := w.Run(gctx); err != nil {
				// The catalog still works without live reload.
				a.log.Warn("catalog watcher: %v", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return ui.Run(gctx)
	})
	return g.Wait()
}

func (a *app) show(ctx context.Context, w io.Writer, id int64) int {
	r, err := a.engine.GetRecipe(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "recipe %d not found\n", id)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	display.PrintRecipe(w, *r)
	return 0
}

func (a *app) add(ctx context.Context, w io.Writer, path string) int {
	d, err := readDraft(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	sub, err := a.engine.Submit(ctx, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if !sub.Result.Valid {
		fmt.Fprintln(os.Stderr, "recipe not submitted:")
		display.PrintErrors(os.Stderr, sub.Result.Errors)
		return 2
	}
	fmt.Fprintf(w, "Recipe %q submitted (id %d).\n", sub.Recipe.Title, sub.Recipe.ID)
	return 0
}
