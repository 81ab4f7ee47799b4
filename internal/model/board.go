package model

// Grouping maps board names to the ids of the items tagged with them.
// Buckets hold ids rather than copies, so every bucket an item appears in
// resolves to the same *Item through the Items it was built from.
type Grouping struct {
	// Boards lists board names in order of first appearance.
	Boards  []string
	Buckets map[string][]int
}

// Len returns the number of boards in the grouping.
func (g Grouping) Len() int { return len(g.Boards) }

// DeletionAction classifies what happened to an item when a board was deleted.
type DeletionAction string

const (
	ActionReassigned     DeletionAction = "reassigned"
	ActionMovedToDefault DeletionAction = "moved_to_default"
)

// DeleteBoardOptions tunes board deletion.
type DeleteBoardOptions struct {
	DryRun bool
	Force  bool
	// DefaultBoard receives items left without boards. Empty means DefaultBoard.
	DefaultBoard string
}

// AffectedItem records how one item's boards changed.
type AffectedItem struct {
	ID             int            `json:"id"`
	Description    string         `json:"description"`
	OriginalBoards []string       `json:"originalBoards"`
	NewBoards      []string       `json:"newBoards"`
	Action         DeletionAction `json:"action"`
}

// BoardDeletionStats counts affected items by action.
type BoardDeletionStats struct {
	ItemsReassigned     int `json:"itemsReassigned"`
	ItemsMovedToDefault int `json:"itemsMovedToDefault"`
	TotalItemsProcessed int `json:"totalItemsProcessed"`
}

// BoardDeletion is the outcome of deleting a board. Exactly one of
// Affected and WouldAffect is populated, depending on DryRun.
type BoardDeletion struct {
	Board       string             `json:"board"`
	DryRun      bool               `json:"dryRun"`
	Affected    []AffectedItem     `json:"affected,omitempty"`
	WouldAffect []AffectedItem     `json:"wouldAffect,omitempty"`
	Stats       BoardDeletionStats `json:"stats"`
}

// Items returns the affected list regardless of mode.
func (d *BoardDeletion) Items() []AffectedItem {
	if d.DryRun {
		return d.WouldAffect
	}
	return d.Affected
}
