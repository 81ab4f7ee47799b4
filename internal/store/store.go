package store

import (
	"context"

	"github.com/nhle/taskbook/internal/model"
)

// Store persists the active items and the archive as whole snapshots.
// There is no locking; the last writer wins.
type Store interface {
	Read(ctx context.Context) (model.Items, error)
	Write(ctx context.Context, items model.Items) error
	ReadArchive(ctx context.Context) (model.Items, error)
	WriteArchive(ctx context.Context, items model.Items) error
}

// Backend is a Store that holds resources until closed.
type Backend interface {
	Store
	Close() error
}
