package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/taskbook/internal/engine"
	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/tests/testutil"
)

func boardFixture() []*model.Item {
	return []*model.Item{
		task(1, "shared", "@work", "@home"),
		task(2, "work only", "@work"),
		note(3, "home only", "@home"),
	}
}

func TestDeleteBoard(t *testing.T) {
	h := newHarness(t, boardFixture()...)

	result, err := h.engine.DeleteBoard(context.Background(), "@work", model.DeleteBoardOptions{})
	require.NoError(t, err)

	items := h.store.Snapshot()
	assert.Equal(t, []string{"@home"}, items[1].Boards)
	assert.Equal(t, []string{model.DefaultBoard}, items[2].Boards)
	assert.Equal(t, []string{"@home"}, items[3].Boards)

	want := model.BoardDeletionStats{ItemsReassigned: 1, ItemsMovedToDefault: 1, TotalItemsProcessed: 2}
	assert.Equal(t, want, result.Stats)
	assert.False(t, result.DryRun)
	assert.Nil(t, result.WouldAffect)
	require.Len(t, result.Affected, 2)

	assert.Equal(t, model.AffectedItem{
		ID:             1,
		Description:    "shared",
		OriginalBoards: []string{"@work", "@home"},
		NewBoards:      []string{"@home"},
		Action:         model.ActionReassigned,
	}, result.Affected[0])
	assert.Equal(t, model.ActionMovedToDefault, result.Affected[1].Action)

	assert.Equal(t, 1, h.store.Writes)
	assert.Equal(t, testutil.Call{Name: "SuccessDeleteBoard", Args: []any{"@work", want}}, h.presenter.Last())
}

func TestDeleteBoardDryRun(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, boardFixture()...)
	before := h.store.Snapshot()

	first, err := h.engine.DeleteBoard(ctx, "@work", model.DeleteBoardOptions{DryRun: true})
	require.NoError(t, err)
	second, err := h.engine.DeleteBoard(ctx, "@work", model.DeleteBoardOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, first, second, "dry runs are repeatable")
	assert.True(t, first.DryRun)
	assert.Nil(t, first.Affected)
	assert.Len(t, first.WouldAffect, 2)
	assert.Equal(t, 0, h.store.TotalWrites())
	assert.Equal(t, before, h.store.Snapshot())
	assert.Equal(t, []string{"PreviewDeleteBoard", "PreviewDeleteBoard"}, h.presenter.Names())

	applied, err := h.engine.DeleteBoard(ctx, "@work", model.DeleteBoardOptions{})
	require.NoError(t, err)
	assert.Equal(t, first.Stats, applied.Stats)
	assert.Equal(t, first.WouldAffect, applied.Affected)
}

func TestDeleteBoardRemovesEveryOccurrence(t *testing.T) {
	h := newHarness(t, task(1, "dup", "@work", "@home", "@work"))

	result, err := h.engine.DeleteBoard(context.Background(), "@work", model.DeleteBoardOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"@home"}, h.store.Snapshot()[1].Boards)
	assert.Equal(t, 1, result.Stats.ItemsReassigned)
}

func TestDeleteBoardCustomDefault(t *testing.T) {
	h := newHarness(t, boardFixture()...)

	_, err := h.engine.DeleteBoard(context.Background(), "@work", model.DeleteBoardOptions{DefaultBoard: "@inbox"})
	require.NoError(t, err)
	assert.Equal(t, []string{"@inbox"}, h.store.Snapshot()[2].Boards)
}

func TestDeleteBoardErrors(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		opts     model.DeleteBoardOptions
		wantErr  error
		wantCall string
	}{
		{"empty name", "", model.DeleteBoardOptions{}, engine.ErrInvalidBoardName, "InvalidBoardName"},
		{"blank name", "   ", model.DeleteBoardOptions{DryRun: true}, engine.ErrInvalidBoardName, "InvalidBoardName"},
		{"default board", model.DefaultBoard, model.DeleteBoardOptions{}, engine.ErrCannotDeleteDefaultBoard, "CannotDeleteDefaultBoard"},
		{"configured default", "@inbox", model.DeleteBoardOptions{DefaultBoard: "@inbox"}, engine.ErrCannotDeleteDefaultBoard, "CannotDeleteDefaultBoard"},
		{"unknown board", "@nope", model.DeleteBoardOptions{}, engine.ErrBoardNotFound, "BoardNotFound"},
		{"unknown board dry run", "@nope", model.DeleteBoardOptions{DryRun: true}, engine.ErrBoardNotFound, "BoardNotFound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, boardFixture()...)

			result, err := h.engine.DeleteBoard(context.Background(), tt.board, tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, []string{tt.wantCall}, h.presenter.Names())
			assert.Equal(t, 0, h.store.TotalWrites())
		})
	}
}

func TestDeleteBoardCheckOrder(t *testing.T) {
	h := newHarness(t, boardFixture()...)

	_, err := h.engine.DeleteBoard(context.Background(), model.DefaultBoard, model.DeleteBoardOptions{})
	require.ErrorIs(t, err, engine.ErrCannotDeleteDefaultBoard)
	assert.Equal(t, 0, h.store.Reads, "default board is refused before reading")
}

func TestDeleteBoardEngineDefault(t *testing.T) {
	store := testutil.NewMemoryStore(boardFixture()...)
	presenter := &testutil.RecordingPresenter{}
	e := engine.New(store, presenter, engine.WithDefaultBoard("@home"))

	_, err := e.DeleteBoard(context.Background(), "@home", model.DeleteBoardOptions{})
	require.ErrorIs(t, err, engine.ErrCannotDeleteDefaultBoard)

	_, err = e.DeleteBoard(context.Background(), "@work", model.DeleteBoardOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"@home"}, store.Snapshot()[2].Boards)
}

func TestDeleteDefaultBoardForced(t *testing.T) {
	h := newHarness(t, task(1, "a", "@work"))

	result, err := h.engine.DeleteBoard(context.Background(), model.DefaultBoard, model.DeleteBoardOptions{Force: true})
	require.NoError(t, err)
	assert.Empty(t, result.Affected)
	assert.Equal(t, 0, result.Stats.TotalItemsProcessed)
	assert.Equal(t, 0, h.store.TotalWrites())
	assert.Equal(t, "SuccessDeleteBoard", h.presenter.Last().Name)
}
