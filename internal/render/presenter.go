// Package render turns engine results into terminal output.
package render

import "github.com/nhle/taskbook/internal/model"

// BoardView is items grouped by board.
type BoardView struct {
	Items    model.Items
	Grouping model.Grouping
}

// DateView is items grouped by creation date.
type DateView struct {
	Items   model.Items
	Groups  []model.DateGroup
	Archive bool
}

// Presenter receives one call per outcome. Implementations only render;
// they never mutate the items they are given.
type Presenter interface {
	SuccessCreate(item *model.Item)
	SuccessEdit(id int)
	SuccessDelete(ids []int)
	SuccessRestore(ids []int)
	SuccessMove(ids []int, boards []string)
	SuccessPriority(ids []int, priority model.Priority)
	SuccessCheck(checked, unchecked []int)
	SuccessBegin(started, paused []int)
	SuccessStar(starred, unstarred []int)
	SuccessClear(ids []int)
	SuccessCopyToClipboard(ids []int)
	SuccessDeleteBoard(board string, stats model.BoardDeletionStats)

	// NotTasks reports that a task-only operation matched nothing but notes.
	NotTasks(ids []int)

	InvalidBoardName()
	BoardNotFound(board string)
	CannotDeleteDefaultBoard(board string)
	MissingID()
	InvalidID(id string)
	InvalidIDsNumber()
	MissingBoards()
	MissingDesc()
	InvalidPriority()

	DisplayByBoard(view BoardView)
	DisplayByDate(view DateView)
	DisplayStats(stats model.Stats)
	PreviewDeleteBoard(result *model.BoardDeletion)
}
