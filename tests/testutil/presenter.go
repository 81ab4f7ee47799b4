package testutil

import (
	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/render"
)

// Call is one recorded presenter invocation.
type Call struct {
	Name string
	Args []any
}

// RecordingPresenter records every call it receives in order.
type RecordingPresenter struct {
	Calls []Call
}

var _ render.Presenter = (*RecordingPresenter)(nil)

func (p *RecordingPresenter) record(name string, args ...any) {
	p.Calls = append(p.Calls, Call{Name: name, Args: args})
}

// Names returns the recorded call names in order.
func (p *RecordingPresenter) Names() []string {
	names := make([]string, 0, len(p.Calls))
	for _, c := range p.Calls {
		names = append(names, c.Name)
	}
	return names
}

// Last returns the most recent call, or a zero Call.
func (p *RecordingPresenter) Last() Call {
	if len(p.Calls) == 0 {
		return Call{}
	}
	return p.Calls[len(p.Calls)-1]
}

func (p *RecordingPresenter) SuccessCreate(item *model.Item) { p.record("SuccessCreate", item.Clone()) }
func (p *RecordingPresenter) SuccessEdit(id int)             { p.record("SuccessEdit", id) }
func (p *RecordingPresenter) SuccessDelete(ids []int)        { p.record("SuccessDelete", ids) }
func (p *RecordingPresenter) SuccessRestore(ids []int)       { p.record("SuccessRestore", ids) }

func (p *RecordingPresenter) SuccessMove(ids []int, boards []string) {
	p.record("SuccessMove", ids, boards)
}

func (p *RecordingPresenter) SuccessPriority(ids []int, priority model.Priority) {
	p.record("SuccessPriority", ids, priority)
}

func (p *RecordingPresenter) SuccessCheck(checked, unchecked []int) {
	p.record("SuccessCheck", checked, unchecked)
}

func (p *RecordingPresenter) SuccessBegin(started, paused []int) {
	p.record("SuccessBegin", started, paused)
}

func (p *RecordingPresenter) SuccessStar(starred, unstarred []int) {
	p.record("SuccessStar", starred, unstarred)
}

func (p *RecordingPresenter) SuccessClear(ids []int)           { p.record("SuccessClear", ids) }
func (p *RecordingPresenter) SuccessCopyToClipboard(ids []int) { p.record("SuccessCopyToClipboard", ids) }

func (p *RecordingPresenter) SuccessDeleteBoard(board string, stats model.BoardDeletionStats) {
	p.record("SuccessDeleteBoard", board, stats)
}

func (p *RecordingPresenter) NotTasks(ids []int) { p.record("NotTasks", ids) }

func (p *RecordingPresenter) InvalidBoardName()             { p.record("InvalidBoardName") }
func (p *RecordingPresenter) BoardNotFound(board string)    { p.record("BoardNotFound", board) }
func (p *RecordingPresenter) CannotDeleteDefaultBoard(b string) {
	p.record("CannotDeleteDefaultBoard", b)
}
func (p *RecordingPresenter) MissingID()          { p.record("MissingID") }
func (p *RecordingPresenter) InvalidID(id string) { p.record("InvalidID", id) }
func (p *RecordingPresenter) InvalidIDsNumber()   { p.record("InvalidIDsNumber") }
func (p *RecordingPresenter) MissingBoards()      { p.record("MissingBoards") }
func (p *RecordingPresenter) MissingDesc()        { p.record("MissingDesc") }
func (p *RecordingPresenter) InvalidPriority()    { p.record("InvalidPriority") }

func (p *RecordingPresenter) DisplayByBoard(view render.BoardView) { p.record("DisplayByBoard", view) }
func (p *RecordingPresenter) DisplayByDate(view render.DateView)   { p.record("DisplayByDate", view) }
func (p *RecordingPresenter) DisplayStats(stats model.Stats)       { p.record("DisplayStats", stats) }

func (p *RecordingPresenter) PreviewDeleteBoard(result *model.BoardDeletion) {
	p.record("PreviewDeleteBoard", result)
}
