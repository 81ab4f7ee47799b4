package engine

import (
	"context"

	"github.com/nhle/taskbook/internal/model"
)

// DeleteItems moves the given items to the archive.
func (e *Engine) DeleteItems(ctx context.Context, tokens []string) error {
	items, ids, err := e.readResolved(ctx, tokens)
	if err != nil {
		return err
	}
	if err := e.archive(ctx, items, ids); err != nil {
		return err
	}
	e.presenter.SuccessDelete(ids)
	return nil
}

// archive moves ids from items into the archive and writes both stores,
// archive first, so a failed write never drops an item from both. An
// archived item with the same id is replaced. With no ids it still writes
// the unchanged active store once and leaves the archive alone.
func (e *Engine) archive(ctx context.Context, items model.Items, ids []int) error {
	if len(ids) == 0 {
		return e.save(ctx, items)
	}

	archived, err := e.store.ReadArchive(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if _, ok := archived[id]; ok {
			e.logger.Warn("replacing archived item with same id", "id", id)
		}
		archived[id] = items[id]
		delete(items, id)
	}

	if err := e.saveArchive(ctx, archived); err != nil {
		return err
	}
	return e.save(ctx, items)
}

// RestoreItems moves archived items back to the active store with their
// ids and fields unchanged. An active item with the same id is replaced.
func (e *Engine) RestoreItems(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return e.report(ErrMissingID)
	}

	archived, err := e.store.ReadArchive(ctx)
	if err != nil {
		return err
	}
	ids, err := resolveIDs(tokens, archived)
	if err != nil {
		return e.report(err)
	}

	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if _, ok := items[id]; ok {
			e.logger.Warn("restored item replaces active item with same id", "id", id)
		}
		items[id] = archived[id]
		delete(archived, id)
	}

	if err := e.save(ctx, items); err != nil {
		return err
	}
	if err := e.saveArchive(ctx, archived); err != nil {
		return err
	}
	e.presenter.SuccessRestore(ids)
	return nil
}

// Clear archives every completed task. With nothing to clear it writes
// nothing.
func (e *Engine) Clear(ctx context.Context) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}

	var ids []int
	for _, item := range items.Ordered() {
		if item.IsTask && item.IsComplete {
			ids = append(ids, item.ID)
		}
	}

	if len(ids) == 0 {
		e.presenter.SuccessClear(nil)
		return nil
	}

	if err := e.archive(ctx, items, ids); err != nil {
		return err
	}
	e.presenter.SuccessClear(ids)
	return nil
}
