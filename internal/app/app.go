// Package app wires configuration, storage, presentation and the engine
// into one object for the command line.
package app

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/nhle/taskbook/internal/engine"
	"github.com/nhle/taskbook/internal/logging"
	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/render"
	"github.com/nhle/taskbook/internal/store"
)

// App owns the open storage backend and the engine built on it.
type App struct {
	Config    *model.AppConfig
	Logger    *log.Logger
	Backend   store.Backend
	Presenter render.Presenter
	Engine    *engine.Engine
}

// Options are the streams and overrides an App is built with.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer

	// Presenter replaces the terminal presenter when set.
	Presenter render.Presenter
	// Clipboard replaces the system clipboard when set.
	Clipboard engine.Clipboard
}

// systemClipboard writes through the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// New opens the configured backend and builds the engine.
func New(cfg *model.AppConfig, opts Options) (*App, error) {
	logger := logging.New(opts.ErrOut, cfg.Log.Level, cfg.Log.Format)

	backend, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("opened storage", "backend", cfg.Storage.Backend, "dir", cfg.TaskbookDir())

	presenter := opts.Presenter
	if presenter == nil {
		presenter = render.NewTerminal(opts.Out, opts.ErrOut, render.TerminalOptions{
			CompleteTasks:    cfg.Display.CompleteTasks,
			ProgressOverview: cfg.Display.ProgressOverview,
		})
	}

	var cb engine.Clipboard = systemClipboard{}
	if opts.Clipboard != nil {
		cb = opts.Clipboard
	}

	eng := engine.New(backend, presenter,
		engine.WithLogger(logger),
		engine.WithClipboard(cb),
		engine.WithDefaultBoard(cfg.Boards.Default),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Backend:   backend,
		Presenter: presenter,
		Engine:    eng,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.Backend.Close()
}
