package engine

import (
	"context"
	"strings"

	"github.com/nhle/taskbook/internal/model"
)

// CreateTask adds a task built from free-form tokens. An empty
// description is allowed.
func (e *Engine) CreateTask(ctx context.Context, tokens []string) (*model.Item, error) {
	items, err := e.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	in := ParseInput(tokens)
	task := model.NewTask(NextID(items), in.Description, in.Boards, in.Priority, e.now())
	items[task.ID] = task

	if err := e.save(ctx, items); err != nil {
		return nil, err
	}
	e.presenter.SuccessCreate(task)
	return task, nil
}

// CreateNote adds a note built from free-form tokens. Priority tokens are
// parsed the same way as for tasks and then ignored.
func (e *Engine) CreateNote(ctx context.Context, tokens []string) (*model.Item, error) {
	items, err := e.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	in := ParseInput(tokens)
	note := model.NewNote(NextID(items), in.Description, in.Boards, e.now())
	items[note.ID] = note

	if err := e.save(ctx, items); err != nil {
		return nil, err
	}
	e.presenter.SuccessCreate(note)
	return note, nil
}

// EditDescription replaces the description of the single "@id" item in
// tokens with the remaining tokens.
func (e *Engine) EditDescription(ctx context.Context, tokens []string) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}

	var targets, words []string
	for _, tok := range tokens {
		if isIDToken(tok) {
			targets = append(targets, tok)
			continue
		}
		words = append(words, tok)
	}

	switch {
	case len(targets) == 0:
		return e.report(ErrMissingID)
	case len(targets) > 1:
		return e.report(ErrInvalidIDsNumber)
	}

	ids, err := resolveIDs(targets, items)
	if err != nil {
		return e.report(err)
	}

	description := strings.Join(words, " ")
	if description == "" {
		return e.report(ErrMissingDescription)
	}

	id := ids[0]
	items[id].Description = description
	if err := e.save(ctx, items); err != nil {
		return err
	}
	e.presenter.SuccessEdit(id)
	return nil
}
