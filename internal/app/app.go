// Package app wires the icon library, the project membership and the module
// writer together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Adravilag/sagebox-lab/internal/config"
	"github.com/Adravilag/sagebox-lab/internal/env"
	"github.com/Adravilag/sagebox-lab/internal/generate"
	"github.com/Adravilag/sagebox-lab/internal/iconify"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/Adravilag/sagebox-lab/internal/importer"
	"github.com/Adravilag/sagebox-lab/internal/log"
	"github.com/Adravilag/sagebox-lab/internal/watcher"
)

type App struct {
	Config   *config.Config
	Library  *icons.Library
	Iconify  *iconify.Client
	Importer *importer.Importer

	mu      sync.RWMutex
	members *icons.Membership
	writer  *generate.Writer
	opts    []generate.Option

	watchMu     sync.Mutex
	watchCtx    context.Context
	watchCancel context.CancelFunc
	watcherWG   sync.WaitGroup
}

// Option customises an App at construction.
type Option func(*App)

// WithWriterOptions forwards options to every generate.Writer the app
// creates.
func WithWriterOptions(opts ...generate.Option) Option {
	return func(a *App) { a.opts = append(a.opts, opts...) }
}

// WithIconify replaces the remote icon client.
func WithIconify(c *iconify.Client) Option {
	return func(a *App) { a.Iconify = c }
}

// New prepares the library directory, migrates legacy per-project stores and
// binds the membership of the configured project.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.EnsureLibraryDir(); err != nil {
		return nil, err
	}

	storePath := cfg.IconsPath()
	if !cfg.IconsPathOverridden() {
		if n, err := icons.MigrateLegacy(ctx, storePath, cfg.LegacyIconsPaths()); err != nil {
			slog.WarnContext(ctx, "Failed to migrate legacy icons", "error", err)
		} else if n > 0 {
			slog.InfoContext(ctx, "Migrated legacy icons into the library", "count", n, "path", storePath)
		}
	}
	if err := icons.EnsureStore(storePath); err != nil {
		return nil, fmt.Errorf("failed to prepare icon store: %w", err)
	}

	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}
	if app.Iconify == nil {
		app.Iconify = iconify.New(cfg.ResolvedIconifyURL(), nil)
	}

	app.Library = icons.NewLibrary(storePath, nil)
	app.Importer = importer.New(app.Library, app.Iconify)
	app.bind()

	slog.InfoContext(ctx, "Application ready",
		"library", storePath,
		"project", app.Membership().Path(),
		"output", app.Writer().OutputDir(),
	)
	return app, nil
}

// bind points membership and writer at the currently configured project.
func (app *App) bind() {
	members := icons.NewMembership(app.Config.ProjectIconsPath())
	members.OnChange(app.membershipChanged)

	app.mu.Lock()
	app.members = members
	app.writer = generate.NewWriter(app.Config.ResolvedOutputPath(), app.opts...)
	app.mu.Unlock()

	app.Library.SetMembership(members)
}

func (app *App) membershipChanged(ctx context.Context) {
	if _, err := app.Rebuild(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to rebuild icon module", "error", err)
	}
}

func (app *App) Membership() *icons.Membership {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.members
}

func (app *App) Writer() *generate.Writer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.writer
}

// Rebuild regenerates the output module from the current project icons.
func (app *App) Rebuild(ctx context.Context) (generate.Result, error) {
	return app.Writer().Build(ctx, app.Library.ExportProject(ctx))
}

// SetOutputPath persists a new output directory and rebinds the project to
// it. A running watcher is restarted on the new files.
func (app *App) SetOutputPath(ctx context.Context, path string) error {
	if err := app.Config.SetOutputPath(path); err != nil {
		return err
	}
	app.bind()
	slog.InfoContext(ctx, "Output path updated", "path", app.Writer().OutputDir())

	app.watchMu.Lock()
	running := app.watchCancel != nil
	parent := app.watchCtx
	app.watchMu.Unlock()
	if running {
		app.stopWatcher()
		app.Watch(parent)
	}
	return nil
}

// Info describes where things live, for the config endpoint and CLI.
type Info struct {
	IconsPath         string `json:"iconsPath"`
	OutputPath        string `json:"outputPath"`
	WorkspacePath     string `json:"workspacePath"`
	FullIconsPath     string `json:"fullIconsPath"`
	IsVSCodeExtension bool   `json:"isVSCodeExtension"`
	LibraryPath       string `json:"libraryPath"`
	LibraryIconsPath  string `json:"libraryIconsPath"`
}

func (app *App) Info() Info {
	e := app.Config.Env()
	iconsEnv := e.Get(env.IconsPath)
	workspace := e.Get(env.WorkspacePath)
	output := app.Writer().OutputDir()

	relative := app.Config.OutputSetting()
	if relative == "" {
		relative = output
	}
	if relative == "" {
		relative = "src/icons"
	}
	if iconsEnv != "" && workspace != "" {
		if rel, err := filepath.Rel(workspace, filepath.Dir(iconsEnv)); err == nil {
			relative = filepath.ToSlash(rel)
		}
	}

	return Info{
		IconsPath:         relative,
		OutputPath:        output,
		WorkspacePath:     workspace,
		FullIconsPath:     iconsEnv,
		IsVSCodeExtension: iconsEnv != "",
		LibraryPath:       app.Config.LibraryDir(),
		LibraryIconsPath:  app.Library.Path(),
	}
}

// Watch starts rebuilding on external edits of the store or membership
// file. It returns immediately.
func (app *App) Watch(ctx context.Context) {
	app.watchMu.Lock()
	defer app.watchMu.Unlock()
	if app.watchCancel != nil {
		return
	}

	watchCtx, cancel := context.WithCancel(ctx)
	app.watchCtx = ctx
	app.watchCancel = cancel

	w := watcher.New(func(ctx context.Context, path string) {
		slog.InfoContext(ctx, "External change detected, rebuilding", "path", path)
		app.membershipChanged(ctx)
	})
	files := []string{app.Library.Path(), app.Membership().Path()}
	if out := app.Writer().OutputDir(); out != "" {
		if err := os.MkdirAll(out, 0o755); err != nil {
			slog.WarnContext(ctx, "Failed to create output directory", "path", out, "error", err)
		}
	}

	app.watcherWG.Add(1)
	go func() {
		defer app.watcherWG.Done()
		defer log.RecoverPanic("watcher", nil)
		if err := w.Run(watchCtx, files, nil); err != nil {
			slog.ErrorContext(watchCtx, "File watcher stopped", "error", err)
		}
	}()
}

func (app *App) stopWatcher() {
	app.watchMu.Lock()
	cancel := app.watchCancel
	app.watchCancel = nil
	app.watchMu.Unlock()
	if cancel != nil {
		cancel()
	}
	app.watcherWG.Wait()
}

// Shutdown performs a clean shutdown of the application.
func (app *App) Shutdown() {
	app.stopWatcher()
}
