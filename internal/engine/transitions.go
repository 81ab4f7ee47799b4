package engine

import (
	"context"

	"github.com/nhle/taskbook/internal/model"
)

// CheckTasks toggles completion of the given tasks. Completing a task
// also stops its progress; reopening leaves progress alone. Notes are
// skipped, and when only notes were given nothing is written.
func (e *Engine) CheckTasks(ctx context.Context, tokens []string) error {
	items, ids, err := e.readResolved(ctx, tokens)
	if err != nil {
		return err
	}

	var checked, unchecked []int
	for _, id := range ids {
		item := items[id]
		if !item.IsTask {
			continue
		}
		item.IsComplete = !item.IsComplete
		if item.IsComplete {
			item.InProgress = false
			checked = append(checked, id)
		} else {
			unchecked = append(unchecked, id)
		}
	}
	if len(checked)+len(unchecked) == 0 {
		e.presenter.NotTasks(ids)
		return nil
	}

	if err := e.save(ctx, items); err != nil {
		return err
	}
	e.presenter.SuccessCheck(checked, unchecked)
	return nil
}

// BeginTasks toggles progress of the given tasks. Notes are skipped.
func (e *Engine) BeginTasks(ctx context.Context, tokens []string) error {
	items, ids, err := e.readResolved(ctx, tokens)
	if err != nil {
		return err
	}

	var started, paused []int
	for _, id := range ids {
		item := items[id]
		if !item.IsTask {
			continue
		}
		item.InProgress = !item.InProgress
		if item.InProgress {
			started = append(started, id)
		} else {
			paused = append(paused, id)
		}
	}
	if len(started)+len(paused) == 0 {
		e.presenter.NotTasks(ids)
		return nil
	}

	if err := e.save(ctx, items); err != nil {
		return err
	}
	e.presenter.SuccessBegin(started, paused)
	return nil
}

// StarItems toggles the star on tasks and notes alike.
func (e *Engine) StarItems(ctx context.Context, tokens []string) error {
	items, ids, err := e.readResolved(ctx, tokens)
	if err != nil {
		return err
	}

	var starred, unstarred []int
	for _, id := range ids {
		item := items[id]
		item.IsStarred = !item.IsStarred
		if item.IsStarred {
			starred = append(starred, id)
		} else {
			unstarred = append(unstarred, id)
		}
	}

	if err := e.save(ctx, items); err != nil {
		return err
	}
	e.presenter.SuccessStar(starred, unstarred)
	return nil
}

// UpdatePriority sets the priority of the "@id" tasks in tokens. The level
// is the first "1".."3" or "p:1".."p:3" token. Notes are skipped.
func (e *Engine) UpdatePriority(ctx context.Context, tokens []string) error {
	var (
		targets  []string
		priority model.Priority
	)
	for _, tok := range tokens {
		if isIDToken(tok) {
			targets = append(targets, tok)
			continue
		}
		if priority != 0 {
			continue
		}
		if p, ok := model.ParsePriority(tok); ok {
			priority = p
		} else if p, ok := priorityToken(tok); ok {
			priority = p
		}
	}
	if priority == 0 {
		return e.report(ErrInvalidPriority)
	}

	items, ids, err := e.readResolved(ctx, targets)
	if err != nil {
		return err
	}

	updated := make([]int, 0, len(ids))
	for _, id := range ids {
		if !items[id].IsTask {
			continue
		}
		items[id].Priority = priority
		updated = append(updated, id)
	}
	if len(updated) == 0 {
		e.presenter.NotTasks(ids)
		return nil
	}

	if err := e.save(ctx, items); err != nil {
		return err
	}
	e.presenter.SuccessPriority(updated, priority)
	return nil
}

// MoveBoards replaces the boards of the "@id" items in tokens. Every other
// token names a board: "myboard" is the default board, names without "@"
// get one. Repeated boards are dropped.
func (e *Engine) MoveBoards(ctx context.Context, tokens []string) error {
	var targets, boards []string
	for _, tok := range tokens {
		if isIDToken(tok) {
			targets = append(targets, tok)
			continue
		}
		if tok == "" || tok == "@" {
			continue
		}
		boards = append(boards, normalizeBoard(tok))
	}

	items, ids, err := e.readResolved(ctx, targets)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		return e.report(ErrMissingBoards)
	}
	boards = dedupe(boards)

	for _, id := range ids {
		items[id].Boards = append([]string(nil), boards...)
	}

	if err := e.save(ctx, items); err != nil {
		return err
	}
	e.presenter.SuccessMove(ids, boards)
	return nil
}

// readResolved loads the active items and resolves tokens against them.
func (e *Engine) readResolved(ctx context.Context, tokens []string) (model.Items, []int, error) {
	if len(tokens) == 0 {
		return nil, nil, e.report(ErrMissingID)
	}

	items, err := e.store.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	ids, err := resolveIDs(tokens, items)
	if err != nil {
		return nil, nil, e.report(err)
	}
	return items, ids, nil
}
