// Package engine implements taskbook's item and board operations on top
// of a Store, reporting outcomes to a Presenter.
package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/render"
	"github.com/nhle/taskbook/internal/store"
)

// Clipboard receives copied item descriptions.
type Clipboard interface {
	WriteAll(text string) error
}

// Engine runs every taskbook operation as read snapshot, compute, write
// snapshot. It holds no item state between calls.
type Engine struct {
	store        store.Store
	presenter    render.Presenter
	logger       *log.Logger
	clipboard    Clipboard
	now          func() time.Time
	defaultBoard string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides time.Now for item timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithClipboard sets the clipboard used by CopyToClipboard.
func WithClipboard(c Clipboard) Option {
	return func(e *Engine) { e.clipboard = c }
}

// WithDefaultBoard sets the fallback board for DeleteBoard when the
// options leave it empty.
func WithDefaultBoard(board string) Option {
	return func(e *Engine) {
		if board != "" {
			e.defaultBoard = board
		}
	}
}

// New creates an Engine over s that reports to p.
func New(s store.Store, p render.Presenter, opts ...Option) *Engine {
	e := &Engine{
		store:        s,
		presenter:    p,
		logger:       log.NewWithOptions(io.Discard, log.Options{}),
		now:          time.Now,
		defaultBoard: model.DefaultBoard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var errNoClipboard = errors.New("clipboard not available")

func (e *Engine) save(ctx context.Context, items model.Items) error {
	e.logger.Debug("writing storage", "items", len(items))
	return e.store.Write(ctx, items)
}

func (e *Engine) saveArchive(ctx context.Context, items model.Items) error {
	e.logger.Debug("writing archive", "items", len(items))
	return e.store.WriteArchive(ctx, items)
}
