package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/theme"
)

// TerminalOptions mirrors the display section of the config.
type TerminalOptions struct {
	CompleteTasks    bool
	ProgressOverview bool
}

// Terminal is a Presenter that prints styled text. Successes and views go
// to out, failures to errOut.
type Terminal struct {
	out    io.Writer
	errOut io.Writer
	opts   TerminalOptions
	now    func() time.Time
}

// NewTerminal creates a Terminal writing to out and errOut.
func NewTerminal(out, errOut io.Writer, opts TerminalOptions) *Terminal {
	return &Terminal{out: out, errOut: errOut, opts: opts, now: time.Now}
}

var _ Presenter = (*Terminal)(nil)

func (t *Terminal) success(format string, args ...interface{}) {
	fmt.Fprintf(t.out, "\n %s %s\n\n", theme.SuccessStyle.Render("✔"), fmt.Sprintf(format, args...))
}

func (t *Terminal) failure(format string, args ...interface{}) {
	fmt.Fprintf(t.errOut, "\n %s %s\n\n", theme.ErrorStyle.Render("✖"), fmt.Sprintf(format, args...))
}

// joinIDs renders ids as "1, 2, 3".
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// SuccessCreate prints the kind and id of a new item.
func (t *Terminal) SuccessCreate(item *model.Item) {
	t.success("Created %s: %s", item.Kind(), theme.IDStyle.Render(strconv.Itoa(item.ID)))
}

// SuccessEdit confirms a description change.
func (t *Terminal) SuccessEdit(id int) {
	t.success("Updated description of item: %s", theme.IDStyle.Render(strconv.Itoa(id)))
}

// SuccessDelete lists the ids moved to the archive.
func (t *Terminal) SuccessDelete(ids []int) {
	t.success("Deleted %s: %s", plural(len(ids), "item"), joinIDs(ids))
}

// SuccessRestore lists the ids brought back from the archive.
func (t *Terminal) SuccessRestore(ids []int) {
	t.success("Restored %s: %s", plural(len(ids), "item"), joinIDs(ids))
}

// SuccessMove lists the moved ids and their new boards.
func (t *Terminal) SuccessMove(ids []int, boards []string) {
	t.success("Moved %s: %s to %s", plural(len(ids), "item"), joinIDs(ids), strings.Join(boards, ", "))
}

// SuccessPriority prints the updated tasks and the new level, colored by urgency.
func (t *Terminal) SuccessPriority(ids []int, priority model.Priority) {
	level := theme.PriorityStyle(priority).Render(priority.Label())
	t.success("Updated priority of %s: %s to %s", plural(len(ids), "task"), joinIDs(ids), level)
}

// SuccessCheck prints one line for checked and one for unchecked tasks,
// skipping an empty side.
func (t *Terminal) SuccessCheck(checked, unchecked []int) {
	if len(checked) > 0 {
		t.success("Checked %s: %s", plural(len(checked), "task"), joinIDs(checked))
	}
	if len(unchecked) > 0 {
		t.success("Unchecked %s: %s", plural(len(unchecked), "task"), joinIDs(unchecked))
	}
}

// SuccessBegin prints started and paused tasks the same way.
func (t *Terminal) SuccessBegin(started, paused []int) {
	if len(started) > 0 {
		t.success("Started %s: %s", plural(len(started), "task"), joinIDs(started))
	}
	if len(paused) > 0 {
		t.success("Paused %s: %s", plural(len(paused), "task"), joinIDs(paused))
	}
}

// SuccessStar prints starred and unstarred items.
func (t *Terminal) SuccessStar(starred, unstarred []int) {
	if len(starred) > 0 {
		t.success("Starred %s: %s", plural(len(starred), "item"), joinIDs(starred))
	}
	if len(unstarred) > 0 {
		t.success("Unstarred %s: %s", plural(len(unstarred), "item"), joinIDs(unstarred))
	}
}

// SuccessClear lists the cleared tasks, or says there were none.
func (t *Terminal) SuccessClear(ids []int) {
	if len(ids) == 0 {
		t.success("No completed tasks to clear")
		return
	}
	t.success("Cleared %s: %s", plural(len(ids), "task"), joinIDs(ids))
}

// SuccessCopyToClipboard lists the items whose descriptions were copied.
func (t *Terminal) SuccessCopyToClipboard(ids []int) {
	t.success("Copied the %s of %s: %s", plural(len(ids), "description"), plural(len(ids), "item"), joinIDs(ids))
}

// SuccessDeleteBoard prints the deletion stats for board.
func (t *Terminal) SuccessDeleteBoard(board string, stats model.BoardDeletionStats) {
	t.success("Deleted board %s: %d %s processed, %d reassigned, %d moved to default board",
		board, stats.TotalItemsProcessed, plural(stats.TotalItemsProcessed, "item"),
		stats.ItemsReassigned, stats.ItemsMovedToDefault)
}

// NotTasks prints the note ids a task-only operation left alone.
func (t *Terminal) NotTasks(ids []int) {
	if len(ids) == 1 {
		t.failure("Not a task: %s", joinIDs(ids))
		return
	}
	t.failure("Not tasks: %s", joinIDs(ids))
}

// InvalidBoardName reports an empty board name.
func (t *Terminal) InvalidBoardName() {
	t.failure("Board name must be a non-empty string")
}

// BoardNotFound reports a board no item carries.
func (t *Terminal) BoardNotFound(board string) {
	t.failure("Board not found: %s", board)
}

// CannotDeleteDefaultBoard reports an unforced attempt on the default board.
func (t *Terminal) CannotDeleteDefaultBoard(board string) {
	t.failure("Cannot delete default board %s without --force", board)
}

// MissingID reports a command given no ids.
func (t *Terminal) MissingID() {
	t.failure("No id was given as input")
}

// InvalidID reports the first id that did not resolve.
func (t *Terminal) InvalidID(id string) {
	t.failure("Unable to find item with id: %s", id)
}

// InvalidIDsNumber reports more ids than an edit accepts.
func (t *Terminal) InvalidIDsNumber() {
	t.failure("More than one id was given as input")
}

// MissingBoards reports a move without target boards.
func (t *Terminal) MissingBoards() {
	t.failure("No boards were given as input")
}

// MissingDesc reports an item or edit without a description.
func (t *Terminal) MissingDesc() {
	t.failure("No description was given as input")
}

// InvalidPriority reports a missing or out-of-range level.
func (t *Terminal) InvalidPriority() {
	t.failure("Priority can only be 1, 2 or 3")
}

// DisplayByBoard prints each board with a done/total counter followed by
// its items.
func (t *Terminal) DisplayByBoard(view BoardView) {
	for _, board := range view.Grouping.Boards {
		ids := t.visible(view.Items, view.Grouping.Buckets[board])
		if len(ids) == 0 {
			continue
		}
		fmt.Fprintf(t.out, "\n%s %s\n", theme.BoardTitleStyle.Render(board), t.counter(view.Items, ids))
		for _, id := range ids {
			fmt.Fprintln(t.out, t.itemLine(view.Items[id], false))
		}
	}
}

// DisplayByDate prints a timeline, one heading per creation date.
func (t *Terminal) DisplayByDate(view DateView) {
	today := t.now().Format(model.DateLayout)
	for _, group := range view.Groups {
		ids := group.IDs
		if !view.Archive {
			ids = t.visible(view.Items, ids)
		}
		if len(ids) == 0 {
			continue
		}
		title := group.Date
		if title == today {
			title += " [Today]"
		}
		fmt.Fprintf(t.out, "\n%s %s\n", theme.BoardTitleStyle.Render(title), t.counter(view.Items, ids))
		for _, id := range ids {
			fmt.Fprintln(t.out, t.itemLine(view.Items[id], true))
		}
	}
}

// DisplayStats prints the progress overview.
func (t *Terminal) DisplayStats(stats model.Stats) {
	if !t.opts.ProgressOverview {
		return
	}
	pct := lipgloss.NewStyle().Foreground(theme.ColorGreen).Render(fmt.Sprintf("%d%%", stats.Percent()))
	fmt.Fprintf(t.out, "\n  %s of all tasks complete.\n", pct)
	fmt.Fprintf(t.out, "  %s · %s · %s · %s\n\n",
		lipgloss.NewStyle().Foreground(theme.ColorGreen).Render(fmt.Sprintf("%d done", stats.Complete)),
		lipgloss.NewStyle().Foreground(theme.ColorMagenta).Render(fmt.Sprintf("%d in-progress", stats.InProgress)),
		lipgloss.NewStyle().Foreground(theme.ColorMagenta).Render(fmt.Sprintf("%d pending", stats.Pending)),
		lipgloss.NewStyle().Foreground(theme.ColorBlue).Render(fmt.Sprintf("%d %s", stats.Notes, plural(stats.Notes, "note"))),
	)
}

// PreviewDeleteBoard prints what a board deletion would change.
func (t *Terminal) PreviewDeleteBoard(result *model.BoardDeletion) {
	fmt.Fprintf(t.out, "\n%s\n", theme.BoardTitleStyle.Render("Deleting board "+result.Board+" would affect:"))
	for _, a := range result.Items() {
		fmt.Fprintf(t.out, "  %s %s: [%s] -> [%s] (%s)\n",
			theme.IDStyle.Render(strconv.Itoa(a.ID)+"."),
			a.Description,
			strings.Join(a.OriginalBoards, ", "),
			strings.Join(a.NewBoards, ", "),
			a.Action,
		)
	}
	fmt.Fprintf(t.out, "\n  %d reassigned · %d moved to default · %d total\n",
		result.Stats.ItemsReassigned, result.Stats.ItemsMovedToDefault, result.Stats.TotalItemsProcessed)
	fmt.Fprintf(t.out, "  %s\n\n", theme.HelpStyle.Render("Dry run: no changes were made."))
}

// visible drops completed tasks when they are hidden by config.
func (t *Terminal) visible(items model.Items, ids []int) []int {
	if t.opts.CompleteTasks {
		return ids
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if item := items[id]; !(item.IsTask && item.IsComplete) {
			out = append(out, id)
		}
	}
	return out
}

func (t *Terminal) counter(items model.Items, ids []int) string {
	var done, tasks int
	for _, id := range ids {
		if item := items[id]; item.IsTask {
			tasks++
			if item.IsComplete {
				done++
			}
		}
	}
	return theme.CounterStyle.Render(fmt.Sprintf("[%d/%d]", done, tasks))
}

// itemLine renders one item. The timeline variant lists boards instead of
// the item's age.
func (t *Terminal) itemLine(item *model.Item, withBoards bool) string {
	mark, markStyle := theme.MarkerStyle(item)

	desc := item.Description
	if item.IsTask && item.IsComplete {
		desc = theme.DimmedStyle.Render(desc)
	} else if item.IsTask && item.Priority > model.PriorityNormal {
		desc = theme.PriorityStyle(item.Priority).Render(desc + " " + theme.PriorityMark(item.Priority))
	}

	parts := []string{
		"   " + theme.IDStyle.Render(fmt.Sprintf("%d.", item.ID)),
		markStyle.Render(mark),
		desc,
	}

	if withBoards {
		boards := make([]string, 0, len(item.Boards))
		for _, b := range item.Boards {
			if b != model.DefaultBoard {
				boards = append(boards, b)
			}
		}
		if len(boards) > 0 {
			parts = append(parts, theme.AgeStyle.Render(strings.Join(boards, " ")))
		}
	} else if age := t.age(item); age != "" {
		parts = append(parts, theme.AgeStyle.Render(age))
	}

	if item.IsStarred {
		parts = append(parts, theme.StarStyle.Render(theme.MarkStar))
	}
	return strings.Join(parts, " ")
}

// age returns "3d" for items older than a day, or "".
func (t *Terminal) age(item *model.Item) string {
	if item.Timestamp == 0 {
		return ""
	}
	days := int(t.now().Sub(time.UnixMilli(item.Timestamp)).Hours() / 24)
	if days < 1 {
		return ""
	}
	return fmt.Sprintf("%dd", days)
}
