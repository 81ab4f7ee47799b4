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

func TestCheckTasks(t *testing.T) {
	ctx := context.Background()
	started := task(1, "started")
	started.InProgress = true
	h := newHarness(t, started, note(2, "a note"), task(3, "pending"))

	require.NoError(t, h.engine.CheckTasks(ctx, []string{"1", "@2"}))

	items := h.store.Snapshot()
	assert.True(t, items[1].IsComplete)
	assert.False(t, items[1].InProgress, "completing a task stops its progress")
	assert.False(t, items[2].IsComplete, "notes are skipped")
	assert.False(t, items[3].IsComplete)

	call := h.presenter.Last()
	assert.Equal(t, "SuccessCheck", call.Name)
	assert.Equal(t, []int{1}, call.Args[0])
	assert.Empty(t, call.Args[1])

	// Reopening leaves progress alone.
	require.NoError(t, h.engine.CheckTasks(ctx, []string{"1"}))
	items = h.store.Snapshot()
	assert.False(t, items[1].IsComplete)
	assert.False(t, items[1].InProgress)
	assert.Equal(t, []int{1}, h.presenter.Last().Args[1])
}

func TestCheckTasksDuplicateIDs(t *testing.T) {
	h := newHarness(t, task(1, "a"))

	require.NoError(t, h.engine.CheckTasks(context.Background(), []string{"1", "@1", "1"}))
	assert.True(t, h.store.Snapshot()[1].IsComplete)
	assert.Equal(t, 1, h.store.Writes)
}

func TestIDErrorsWriteNothing(t *testing.T) {
	ops := map[string]func(*engine.Engine, []string) error{
		"check": func(e *engine.Engine, tokens []string) error { return e.CheckTasks(context.Background(), tokens) },
		"begin": func(e *engine.Engine, tokens []string) error { return e.BeginTasks(context.Background(), tokens) },
		"star":  func(e *engine.Engine, tokens []string) error { return e.StarItems(context.Background(), tokens) },
		"delete": func(e *engine.Engine, tokens []string) error {
			return e.DeleteItems(context.Background(), tokens)
		},
		"copy": func(e *engine.Engine, tokens []string) error {
			_, err := e.CopyToClipboard(context.Background(), tokens)
			return err
		},
	}

	for name, op := range ops {
		t.Run(name+"/missing", func(t *testing.T) {
			h := newHarness(t, task(1, "a"))

			err := op(h.engine, nil)
			require.ErrorIs(t, err, engine.ErrMissingID)
			assert.Equal(t, []string{"MissingID"}, h.presenter.Names())
			assert.Equal(t, 0, h.store.Reads, "missing ids fail before reading")
			assert.Equal(t, 0, h.store.TotalWrites())
		})

		t.Run(name+"/invalid", func(t *testing.T) {
			h := newHarness(t, task(1, "a"))
			before := h.store.Snapshot()

			err := op(h.engine, []string{"1", "9"})
			require.ErrorIs(t, err, engine.ErrInvalidID)
			assert.Equal(t, testutil.Call{Name: "InvalidID", Args: []any{"9"}}, h.presenter.Last())
			assert.Len(t, h.presenter.Calls, 1)
			assert.Equal(t, 0, h.store.TotalWrites())
			assert.Equal(t, before, h.store.Snapshot())
		})
	}
}

func TestInvalidIDTokens(t *testing.T) {
	for _, tok := range []string{"0", "-1", "+1", "01", "@01", "abc", "@", "1.5", "@@1", " 1"} {
		t.Run(tok, func(t *testing.T) {
			h := newHarness(t, task(1, "a"))

			err := h.engine.StarItems(context.Background(), []string{tok})
			require.ErrorIs(t, err, engine.ErrInvalidID)
			assert.Equal(t, []any{tok}, h.presenter.Last().Args)
		})
	}
}

func TestBeginTasks(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, task(1, "a"), note(2, "n"))

	require.NoError(t, h.engine.BeginTasks(ctx, []string{"1", "2"}))
	items := h.store.Snapshot()
	assert.True(t, items[1].InProgress)
	assert.False(t, items[2].InProgress)
	assert.Equal(t, []int{1}, h.presenter.Last().Args[0])

	require.NoError(t, h.engine.BeginTasks(ctx, []string{"1"}))
	assert.False(t, h.store.Snapshot()[1].InProgress)
	assert.Equal(t, []int{1}, h.presenter.Last().Args[1])
}

func TestTaskOnlyOpsOnNotesWriteNothing(t *testing.T) {
	ops := map[string]func(*engine.Engine) error{
		"check":    func(e *engine.Engine) error { return e.CheckTasks(context.Background(), []string{"2", "3"}) },
		"begin":    func(e *engine.Engine) error { return e.BeginTasks(context.Background(), []string{"2", "3"}) },
		"priority": func(e *engine.Engine) error { return e.UpdatePriority(context.Background(), []string{"@2", "@3", "3"}) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, task(1, "a"), note(2, "n"), note(3, "m"))
			before := h.store.Snapshot()

			require.NoError(t, op(h.engine))
			assert.Equal(t, 0, h.store.TotalWrites())
			assert.Equal(t, before, h.store.Snapshot())
			assert.Equal(t, []testutil.Call{{Name: "NotTasks", Args: []any{[]int{2, 3}}}}, h.presenter.Calls)
		})
	}
}

func TestStarItems(t *testing.T) {
	ctx := context.Background()
	starred := note(2, "n")
	starred.IsStarred = true
	h := newHarness(t, task(1, "a"), starred)

	require.NoError(t, h.engine.StarItems(ctx, []string{"1", "2"}))

	items := h.store.Snapshot()
	assert.True(t, items[1].IsStarred)
	assert.False(t, items[2].IsStarred)

	call := h.presenter.Last()
	assert.Equal(t, "SuccessStar", call.Name)
	assert.Equal(t, []int{1}, call.Args[0])
	assert.Equal(t, []int{2}, call.Args[1])
}

func TestUpdatePriority(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   model.Priority
	}{
		{"bare level", []string{"@1", "3"}, model.PriorityHigh},
		{"level first", []string{"2", "@1"}, model.PriorityMedium},
		{"p prefix", []string{"@1", "p:3"}, model.PriorityHigh},
		{"first level wins", []string{"@1", "3", "2"}, model.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, task(1, "a"))

			require.NoError(t, h.engine.UpdatePriority(context.Background(), tt.tokens))
			assert.Equal(t, tt.want, h.store.Snapshot()[1].Priority)
			assert.Equal(t, testutil.Call{Name: "SuccessPriority", Args: []any{[]int{1}, tt.want}}, h.presenter.Last())
		})
	}
}

func TestUpdatePrioritySkipsNotes(t *testing.T) {
	h := newHarness(t, task(1, "a"), note(2, "n"))

	require.NoError(t, h.engine.UpdatePriority(context.Background(), []string{"@1", "@2", "p:2"}))
	items := h.store.Snapshot()
	assert.Equal(t, model.PriorityMedium, items[1].Priority)
	assert.Equal(t, model.Priority(0), items[2].Priority)
	assert.Equal(t, []int{1}, h.presenter.Last().Args[0])
}

func TestUpdatePriorityErrors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantErr  error
		wantCall string
	}{
		{"out of range", []string{"@1", "5"}, engine.ErrInvalidPriority, "InvalidPriority"},
		{"no level", []string{"@1"}, engine.ErrInvalidPriority, "InvalidPriority"},
		{"no id", []string{"3"}, engine.ErrMissingID, "MissingID"},
		{"unknown id", []string{"@7", "3"}, engine.ErrInvalidID, "InvalidID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, task(1, "a"))

			err := h.engine.UpdatePriority(context.Background(), tt.tokens)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.wantCall}, h.presenter.Names())
			assert.Equal(t, 0, h.store.TotalWrites())
			assert.Equal(t, model.PriorityNormal, h.store.Snapshot()[1].Priority)
		})
	}
}

func TestMoveBoards(t *testing.T) {
	h := newHarness(t, task(1, "a", "@old"), task(2, "b", "@old"), task(3, "c", "@old"))

	err := h.engine.MoveBoards(context.Background(), []string{"@1", "@3", "work", "myboard", "@work"})
	require.NoError(t, err)

	items := h.store.Snapshot()
	assert.Equal(t, []string{"@work", model.DefaultBoard}, items[1].Boards)
	assert.Equal(t, []string{"@old"}, items[2].Boards)
	assert.Equal(t, []string{"@work", model.DefaultBoard}, items[3].Boards)

	assert.Equal(t, testutil.Call{
		Name: "SuccessMove",
		Args: []any{[]int{1, 3}, []string{"@work", model.DefaultBoard}},
	}, h.presenter.Last())
}

func TestMoveBoardsErrors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantErr  error
		wantCall string
	}{
		{"no boards", []string{"@1"}, engine.ErrMissingBoards, "MissingBoards"},
		{"no id", []string{"work"}, engine.ErrMissingID, "MissingID"},
		{"unknown id", []string{"@4", "work"}, engine.ErrInvalidID, "InvalidID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, task(1, "a", "@old"))

			err := h.engine.MoveBoards(context.Background(), tt.tokens)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.wantCall}, h.presenter.Names())
			assert.Equal(t, 0, h.store.TotalWrites())
			assert.Equal(t, []string{"@old"}, h.store.Snapshot()[1].Boards)
		})
	}
}
