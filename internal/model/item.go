package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"time"
)

// DefaultBoard is the board every item falls back to. It always exists,
// even when no item references it.
const DefaultBoard = "My Board"

// DateLayout is the layout of Item.Date, e.g. "Mon Jan 02 2006".
const DateLayout = "Mon Jan 02 2006"

// Item is a task or a note tagged with one or more boards.
// Task-only fields are ignored (and not persisted) for notes.
type Item struct {
	ID          int      `json:"_id"`
	Date        string   `json:"_date"`
	Timestamp   int64    `json:"_timestamp"`
	Description string   `json:"description"`
	Boards      []string `json:"boards"`
	IsStarred   bool     `json:"isStarred"`
	IsTask      bool     `json:"_isTask"`

	// Task fields.
	IsComplete bool     `json:"isComplete"`
	InProgress bool     `json:"inProgress"`
	Priority   Priority `json:"priority"`
}

// NewTask builds a pending task created at now.
func NewTask(id int, description string, boards []string, priority Priority, now time.Time) *Item {
	if !priority.Valid() {
		priority = PriorityNormal
	}
	return &Item{
		ID:          id,
		Date:        now.Format(DateLayout),
		Timestamp:   now.UnixMilli(),
		Description: description,
		Boards:      withDefaultBoard(boards),
		IsTask:      true,
		Priority:    priority,
	}
}

// NewNote builds a note created at now.
func NewNote(id int, description string, boards []string, now time.Time) *Item {
	return &Item{
		ID:          id,
		Date:        now.Format(DateLayout),
		Timestamp:   now.UnixMilli(),
		Description: description,
		Boards:      withDefaultBoard(boards),
	}
}

func withDefaultBoard(boards []string) []string {
	if len(boards) == 0 {
		return []string{DefaultBoard}
	}
	return slices.Clone(boards)
}

// Kind returns "task" or "note".
func (i *Item) Kind() string {
	if i.IsTask {
		return "task"
	}
	return "note"
}

// IsPending reports whether the item is a task that is neither complete
// nor in progress.
func (i *Item) IsPending() bool {
	return i.IsTask && !i.IsComplete && !i.InProgress
}

// HasBoard reports whether board appears in the item's boards.
func (i *Item) HasBoard(board string) bool {
	return slices.Contains(i.Boards, board)
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	c.Boards = slices.Clone(i.Boards)
	return &c
}

// itemJSON is the on-disk record. Task fields are pointers so notes
// serialize without them.
type itemJSON struct {
	ID          int       `json:"_id"`
	Date        string    `json:"_date"`
	Timestamp   int64     `json:"_timestamp"`
	Description string    `json:"description"`
	IsStarred   bool      `json:"isStarred"`
	Boards      []string  `json:"boards"`
	IsTask      bool      `json:"_isTask"`
	IsComplete  *bool     `json:"isComplete,omitempty"`
	InProgress  *bool     `json:"inProgress,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// MarshalJSON encodes the item in the storage file shape.
func (i Item) MarshalJSON() ([]byte, error) {
	rec := itemJSON{
		ID:          i.ID,
		Date:        i.Date,
		Timestamp:   i.Timestamp,
		Description: i.Description,
		IsStarred:   i.IsStarred,
		Boards:      i.Boards,
		IsTask:      i.IsTask,
	}
	if rec.Boards == nil {
		rec.Boards = []string{}
	}
	if i.IsTask {
		complete, progress, priority := i.IsComplete, i.InProgress, i.Priority
		if !priority.Valid() {
			priority = PriorityNormal
		}
		rec.IsComplete = &complete
		rec.InProgress = &progress
		rec.Priority = &priority
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes a storage record. Missing task fields take their
// defaults.
func (i *Item) UnmarshalJSON(data []byte) error {
	var rec itemJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*i = Item{
		ID:          rec.ID,
		Date:        rec.Date,
		Timestamp:   rec.Timestamp,
		Description: rec.Description,
		IsStarred:   rec.IsStarred,
		Boards:      rec.Boards,
		IsTask:      rec.IsTask,
	}
	if !i.IsTask {
		return nil
	}
	i.Priority = PriorityNormal
	if rec.IsComplete != nil {
		i.IsComplete = *rec.IsComplete
	}
	if rec.InProgress != nil {
		i.InProgress = *rec.InProgress
	}
	if rec.Priority != nil {
		i.Priority = *rec.Priority
	}
	return nil
}

// Items is a collection of items keyed by id.
type Items map[int]*Item

// IDs returns the ids in ascending order, which is the order the store
// iterates items in.
func (it Items) IDs() []int {
	ids := make([]int, 0, len(it))
	for id := range it {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Ordered returns the items in ascending id order.
func (it Items) Ordered() []*Item {
	out := make([]*Item, 0, len(it))
	for _, id := range it.IDs() {
		out = append(out, it[id])
	}
	return out
}

// Clone returns a deep copy of the collection.
func (it Items) Clone() Items {
	out := make(Items, len(it))
	for id, item := range it {
		out[id] = item.Clone()
	}
	return out
}

// MarshalJSON writes the collection as an object keyed by decimal id.
func (it Items) MarshalJSON() ([]byte, error) {
	m := make(map[string]*Item, len(it))
	for id, item := range it {
		m[strconv.Itoa(id)] = item
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads an object keyed by decimal id. The key is
// authoritative when it disagrees with the record's _id.
func (it *Items) UnmarshalJSON(data []byte) error {
	var m map[string]*Item
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Items, len(m))
	for key, item := range m {
		if item == nil {
			continue
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("invalid item key %q: %w", key, err)
		}
		item.ID = id
		out[id] = item
	}
	*it = out
	return nil
}
