package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/render"
)

// Stats counts tasks by state, and notes, across items.
func Stats(items model.Items) model.Stats {
	var s model.Stats
	for _, item := range items {
		switch {
		case !item.IsTask:
			s.Notes++
		case item.IsComplete:
			s.Complete++
		case item.InProgress:
			s.InProgress++
		default:
			s.Pending++
		}
	}
	return s
}

// GroupByDate buckets item ids by creation date, dates in order of first
// appearance.
func GroupByDate(items model.Items) []model.DateGroup {
	var groups []model.DateGroup
	index := map[string]int{}
	for _, item := range items.Ordered() {
		i, ok := index[item.Date]
		if !ok {
			i = len(groups)
			index[item.Date] = i
			groups = append(groups, model.DateGroup{Date: item.Date})
		}
		groups[i].IDs = append(groups[i].IDs, item.ID)
	}
	return groups
}

// Items returns the active items.
func (e *Engine) Items(ctx context.Context) (model.Items, error) {
	return e.store.Read(ctx)
}

// Boards lists every board name once, default board first.
func (e *Engine) Boards(ctx context.Context) ([]string, error) {
	items, err := e.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return ListBoards(items), nil
}

// DisplayByBoard shows the active items grouped by board.
func (e *Engine) DisplayByBoard(ctx context.Context) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}
	e.presenter.DisplayByBoard(render.BoardView{Items: items, Grouping: GroupByBoard(items)})
	return nil
}

// DisplayByDate shows the active items as a timeline.
func (e *Engine) DisplayByDate(ctx context.Context) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}
	e.presenter.DisplayByDate(render.DateView{Items: items, Groups: GroupByDate(items)})
	return nil
}

// DisplayArchive shows the archived items as a timeline.
func (e *Engine) DisplayArchive(ctx context.Context) error {
	archived, err := e.store.ReadArchive(ctx)
	if err != nil {
		return err
	}
	e.presenter.DisplayByDate(render.DateView{Items: archived, Groups: GroupByDate(archived), Archive: true})
	return nil
}

// DisplayStats shows progress over the active tasks.
func (e *Engine) DisplayStats(ctx context.Context) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}
	e.presenter.DisplayStats(Stats(items))
	return nil
}

// FindItems shows items whose description contains any of terms,
// ignoring case.
func (e *Engine) FindItems(ctx context.Context, terms []string) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}

	found := model.Items{}
	for id, item := range items {
		if containsAny(item.Description, terms) {
			found[id] = item
		}
	}
	e.presenter.DisplayByBoard(render.BoardView{Items: found, Grouping: GroupByBoard(found)})
	return nil
}

func containsAny(text string, terms []string) bool {
	text = strings.ToLower(text)
	for _, term := range terms {
		if term != "" && strings.Contains(text, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// attribute filters accepted by ListByAttributes.
var attributes = map[string]func(*model.Item) bool{
	"star":       func(i *model.Item) bool { return i.IsStarred },
	"starred":    func(i *model.Item) bool { return i.IsStarred },
	"done":       func(i *model.Item) bool { return i.IsTask && i.IsComplete },
	"checked":    func(i *model.Item) bool { return i.IsTask && i.IsComplete },
	"complete":   func(i *model.Item) bool { return i.IsTask && i.IsComplete },
	"progress":   func(i *model.Item) bool { return i.IsTask && i.InProgress },
	"started":    func(i *model.Item) bool { return i.IsTask && i.InProgress },
	"begun":      func(i *model.Item) bool { return i.IsTask && i.InProgress },
	"pending":    (*model.Item).IsPending,
	"unchecked":  (*model.Item).IsPending,
	"incomplete": (*model.Item).IsPending,
	"todo":       (*model.Item).IsPending,
	"task":       func(i *model.Item) bool { return i.IsTask },
	"tasks":      func(i *model.Item) bool { return i.IsTask },
	"note":       func(i *model.Item) bool { return !i.IsTask },
	"notes":      func(i *model.Item) bool { return !i.IsTask },
}

// ListByAttributes shows items matching every attribute term, limited to
// the board terms when any are given. A term is a board if it names an
// existing board with or without its "@", or is "myboard". Unknown terms
// are ignored.
func (e *Engine) ListByAttributes(ctx context.Context, terms []string) error {
	items, err := e.store.Read(ctx)
	if err != nil {
		return err
	}

	known := map[string]bool{}
	for _, b := range ListBoards(items) {
		known[b] = true
	}

	var boards []string
	var filters []func(*model.Item) bool
	for _, term := range terms {
		switch {
		case term == "myboard":
			boards = append(boards, model.DefaultBoard)
		case known[term]:
			boards = append(boards, term)
		case known["@"+term]:
			boards = append(boards, "@"+term)
		case attributes[term] != nil:
			filters = append(filters, attributes[term])
		default:
			e.logger.Debug("ignoring unknown list term", "term", term)
		}
	}

	matched := model.Items{}
	for id, item := range items {
		ok := true
		for _, f := range filters {
			if !f(item) {
				ok = false
				break
			}
		}
		if ok {
			matched[id] = item
		}
	}

	e.presenter.DisplayByBoard(render.BoardView{
		Items:    matched,
		Grouping: GroupByBoard(matched, boards...),
	})
	return nil
}

// CopyToClipboard copies the descriptions of the given items, one per
// line, and returns the copied text.
func (e *Engine) CopyToClipboard(ctx context.Context, tokens []string) (string, error) {
	items, ids, err := e.readResolved(ctx, tokens)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, items[id].Description)
	}
	text := strings.Join(lines, "\n")

	if e.clipboard == nil {
		return "", errNoClipboard
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("copying to clipboard: %w", err)
	}
	e.presenter.SuccessCopyToClipboard(ids)
	return text, nil
}
