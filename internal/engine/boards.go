package engine

import (
	"github.com/nhle/taskbook/internal/model"
)

// GroupByBoard buckets item ids by board in store order. An item on N
// boards lands in N buckets. When filter is non-empty only those boards
// are kept. Boards with no items never appear.
func GroupByBoard(items model.Items, filter ...string) model.Grouping {
	var allowed map[string]bool
	if len(filter) > 0 {
		allowed = make(map[string]bool, len(filter))
		for _, b := range filter {
			allowed[b] = true
		}
	}

	g := model.Grouping{Buckets: map[string][]int{}}
	for _, item := range items.Ordered() {
		for _, board := range item.Boards {
			if allowed != nil && !allowed[board] {
				continue
			}
			if _, ok := g.Buckets[board]; !ok {
				g.Boards = append(g.Boards, board)
			}
			g.Buckets[board] = append(g.Buckets[board], item.ID)
		}
	}
	return g
}

// ListBoards returns the default board followed by every other board in
// the order it is first seen. Each name appears once.
func ListBoards(items model.Items) []string {
	boards := []string{model.DefaultBoard}
	for _, item := range items.Ordered() {
		boards = append(boards, item.Boards...)
	}
	return dedupe(boards)
}

// boardExists reports whether any item references board. The default
// board always exists.
func boardExists(items model.Items, board string) bool {
	if board == model.DefaultBoard {
		return true
	}
	for _, item := range items {
		if item.HasBoard(board) {
			return true
		}
	}
	return false
}
