package engine

import (
	"context"
	"slices"
	"strings"

	"github.com/nhle/taskbook/internal/model"
)

// DeleteBoard removes board from every active item. Items left with no
// boards move to the default board. Checks run in this order: empty name,
// default board without Force, board not referenced by any item.
//
// A dry run computes the same result but neither writes nor reports
// success; the presenter gets a preview instead.
func (e *Engine) DeleteBoard(
	ctx context.Context,
	name string,
	opts model.DeleteBoardOptions,
) (*model.BoardDeletion, error) {
	defaultBoard := opts.DefaultBoard
	if defaultBoard == "" {
		defaultBoard = e.defaultBoard
	}

	if strings.TrimSpace(name) == "" {
		return nil, e.report(ErrInvalidBoardName)
	}
	if (name == defaultBoard || name == model.DefaultBoard) && !opts.Force {
		return nil, e.report(withDetail(ErrCannotDeleteDefaultBoard, name))
	}

	items, err := e.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !boardExists(items, name) {
		return nil, e.report(withDetail(ErrBoardNotFound, name))
	}

	if opts.DryRun {
		items = items.Clone()
	}
	affected, stats := reassignBoard(items, name, defaultBoard)
	result := &model.BoardDeletion{
		Board:  name,
		DryRun: opts.DryRun,
		Stats:  stats,
	}

	if opts.DryRun {
		result.WouldAffect = affected
		e.presenter.PreviewDeleteBoard(result)
		return result, nil
	}

	result.Affected = affected
	if len(affected) > 0 {
		if err := e.save(ctx, items); err != nil {
			return nil, err
		}
	}
	e.logger.Info("deleted board", "board", name,
		"reassigned", stats.ItemsReassigned, "moved_to_default", stats.ItemsMovedToDefault)
	e.presenter.SuccessDeleteBoard(name, stats)
	return result, nil
}

// reassignBoard strips every occurrence of name from the items in place
// and reports what changed.
func reassignBoard(items model.Items, name, defaultBoard string) ([]model.AffectedItem, model.BoardDeletionStats) {
	var (
		affected []model.AffectedItem
		stats    model.BoardDeletionStats
	)

	for _, item := range items.Ordered() {
		if !item.HasBoard(name) {
			continue
		}

		original := slices.Clone(item.Boards)
		remaining := slices.DeleteFunc(slices.Clone(item.Boards), func(b string) bool {
			return b == name
		})

		action := model.ActionReassigned
		if len(remaining) == 0 {
			remaining = []string{defaultBoard}
			action = model.ActionMovedToDefault
			stats.ItemsMovedToDefault++
		} else {
			stats.ItemsReassigned++
		}

		item.Boards = remaining
		affected = append(affected, model.AffectedItem{
			ID:             item.ID,
			Description:    item.Description,
			OriginalBoards: original,
			NewBoards:      slices.Clone(remaining),
			Action:         action,
		})
	}

	stats.TotalItemsProcessed = stats.ItemsReassigned + stats.ItemsMovedToDefault
	return affected, stats
}
