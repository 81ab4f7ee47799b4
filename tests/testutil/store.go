package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// MemoryStore keeps both snapshots in memory and counts calls. Reads and
// writes copy, so callers never share items with the store.
type MemoryStore struct {
	mu sync.Mutex

	items    model.Items
	archived model.Items

	Reads         int
	ArchiveReads  int
	Writes        int
	ArchiveWrites int

	// ReadErr and WriteErr, when set, fail the matching calls.
	// ArchiveWriteErr fails archive writes only.
	ReadErr         error
	WriteErr        error
	ArchiveWriteErr error
}

var _ store.Store = (*MemoryStore)(nil)

// NewMemoryStore seeds a store with copies of the given items.
func NewMemoryStore(items ...*model.Item) *MemoryStore {
	s := &MemoryStore{items: model.Items{}, archived: model.Items{}}
	for _, item := range items {
		s.items[item.ID] = item.Clone()
	}
	return s
}

// SeedArchive replaces the archive snapshot.
func (s *MemoryStore) SeedArchive(items ...*model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archived = model.Items{}
	for _, item := range items {
		s.archived[item.ID] = item.Clone()
	}
}

// Snapshot returns a copy of the active items.
func (s *MemoryStore) Snapshot() model.Items {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

// ArchiveSnapshot returns a copy of the archived items.
func (s *MemoryStore) ArchiveSnapshot() model.Items {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archived.Clone()
}

// TotalWrites counts writes to either snapshot.
func (s *MemoryStore) TotalWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Writes + s.ArchiveWrites
}

func (s *MemoryStore) Read(_ context.Context) (model.Items, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reads++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.items.Clone(), nil
}

func (s *MemoryStore) Write(_ context.Context, items model.Items) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.items = items.Clone()
	return nil
}

func (s *MemoryStore) ReadArchive(_ context.Context) (model.Items, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ArchiveReads++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.archived.Clone(), nil
}

func (s *MemoryStore) WriteArchive(_ context.Context, items model.Items) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ArchiveWrites++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if s.ArchiveWriteErr != nil {
		return s.ArchiveWriteErr
	}
	s.archived = items.Clone()
	return nil
}
