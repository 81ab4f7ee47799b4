package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/taskbook/internal/engine"
	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/tests/testutil"
)

func TestDeleteItems(t *testing.T) {
	h := newHarness(t, task(1, "a"), note(2, "b"), task(3, "c"))

	require.NoError(t, h.engine.DeleteItems(context.Background(), []string{"3", "1"}))

	active := h.store.Snapshot()
	archived := h.store.ArchiveSnapshot()
	assert.Equal(t, []int{2}, active.IDs())
	assert.Equal(t, []int{1, 3}, archived.IDs())
	assert.Equal(t, "c", archived[3].Description, "ids and fields are kept")

	assert.Equal(t, 1, h.store.Writes)
	assert.Equal(t, 1, h.store.ArchiveWrites)
	assert.Equal(t, []int{3, 1}, h.presenter.Last().Args[0])
}

func TestDeleteThenRestoreKeepsEveryField(t *testing.T) {
	ctx := context.Background()
	busy := model.NewTask(1, "ship release", []string{"@work", "@work", "@ops"}, model.PriorityHigh, fixedNow)
	busy.IsStarred = true
	busy.InProgress = true
	done := task(2, "done")
	done.IsComplete = true
	h := newHarness(t, busy, done, note(3, "idea", "@home"))
	before := h.store.Snapshot()

	require.NoError(t, h.engine.DeleteItems(ctx, []string{"1", "3", "2"}))
	require.Empty(t, h.store.Snapshot())

	require.NoError(t, h.engine.RestoreItems(ctx, []string{"1", "3", "2"}))
	assert.Equal(t, before, h.store.Snapshot())
	assert.Empty(t, h.store.ArchiveSnapshot())
}

func TestDeleteKeepsItemsWhenArchiveWriteFails(t *testing.T) {
	h := newHarness(t, task(1, "a"), task(2, "b"))
	h.store.ArchiveWriteErr = errors.New("disk full")

	err := h.engine.DeleteItems(context.Background(), []string{"1"})
	require.ErrorContains(t, err, "disk full")

	assert.Equal(t, []int{1, 2}, h.store.Snapshot().IDs(), "active store is untouched")
	assert.Equal(t, 0, h.store.Writes)
	assert.Empty(t, h.presenter.Calls)
}

func TestClearKeepsTasksWhenArchiveWriteFails(t *testing.T) {
	done := task(1, "done")
	done.IsComplete = true
	h := newHarness(t, done)
	h.store.ArchiveWriteErr = errors.New("disk full")

	require.Error(t, h.engine.Clear(context.Background()))
	assert.Equal(t, []int{1}, h.store.Snapshot().IDs())
	assert.NotContains(t, h.presenter.Names(), "SuccessClear")
}

func TestDeleteReplacesArchivedCollision(t *testing.T) {
	h := newHarness(t, task(1, "new"))
	h.store.SeedArchive(task(1, "old"), task(2, "kept"))

	require.NoError(t, h.engine.DeleteItems(context.Background(), []string{"1"}))

	archived := h.store.ArchiveSnapshot()
	assert.Equal(t, "new", archived[1].Description)
	assert.Equal(t, "kept", archived[2].Description)
	assert.Empty(t, h.store.Snapshot())
}

func TestDeleteThenCreateReusesID(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, task(1, "a"), task(2, "b"))

	require.NoError(t, h.engine.DeleteItems(ctx, []string{"2"}))
	item, err := h.engine.CreateTask(ctx, []string{"c"})
	require.NoError(t, err)
	assert.Equal(t, 2, item.ID)
}

func TestRestoreItems(t *testing.T) {
	h := newHarness(t, task(1, "active"))
	done := task(3, "done", "@work")
	done.IsComplete = true
	h.store.SeedArchive(done, note(4, "n"))

	require.NoError(t, h.engine.RestoreItems(context.Background(), []string{"@3"}))

	active := h.store.Snapshot()
	require.Contains(t, active, 3)
	assert.Equal(t, done, active[3])
	assert.Equal(t, []int{4}, h.store.ArchiveSnapshot().IDs())
	assert.Equal(t, testutil.Call{Name: "SuccessRestore", Args: []any{[]int{3}}}, h.presenter.Last())
}

func TestRestoreErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		h := newHarness(t)

		err := h.engine.RestoreItems(context.Background(), nil)
		require.ErrorIs(t, err, engine.ErrMissingID)
		assert.Equal(t, 0, h.store.ArchiveReads)
	})

	t.Run("not archived", func(t *testing.T) {
		h := newHarness(t, task(1, "active"))
		h.store.SeedArchive(task(2, "archived"))

		err := h.engine.RestoreItems(context.Background(), []string{"1"})
		require.ErrorIs(t, err, engine.ErrInvalidID)
		assert.Equal(t, []string{"InvalidID"}, h.presenter.Names())
		assert.Equal(t, 0, h.store.TotalWrites())
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	done1 := task(1, "done")
	done1.IsComplete = true
	done3 := task(3, "also done")
	done3.IsComplete = true
	h := newHarness(t, done1, task(2, "open"), done3, note(4, "n"))

	require.NoError(t, h.engine.Clear(ctx))

	assert.Equal(t, []int{2, 4}, h.store.Snapshot().IDs())
	assert.Equal(t, []int{1, 3}, h.store.ArchiveSnapshot().IDs())
	assert.Equal(t, testutil.Call{Name: "SuccessClear", Args: []any{[]int{1, 3}}}, h.presenter.Last())
}

func TestClearNothingWritesNothing(t *testing.T) {
	h := newHarness(t, task(1, "open"), note(2, "n"))

	require.NoError(t, h.engine.Clear(context.Background()))

	assert.Equal(t, 0, h.store.TotalWrites())
	assert.Equal(t, []string{"SuccessClear"}, h.presenter.Names())
	assert.Empty(t, h.presenter.Last().Args[0])
}
