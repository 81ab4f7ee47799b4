package engine

import (
	"errors"
	"fmt"
)

// User-input errors. Each is reported through the presenter once and
// aborts the operation before anything is written.
var (
	ErrInvalidBoardName         = errors.New("invalid board name")
	ErrBoardNotFound            = errors.New("board not found")
	ErrCannotDeleteDefaultBoard = errors.New("cannot delete default board")
	ErrMissingID                = errors.New("no id given")
	ErrInvalidID                = errors.New("invalid id")
	ErrInvalidIDsNumber         = errors.New("exactly one id expected")
	ErrMissingBoards            = errors.New("no boards given")
	ErrMissingDescription       = errors.New("no description given")
	ErrInvalidPriority          = errors.New("invalid priority")
)

var inputErrors = []error{
	ErrInvalidBoardName,
	ErrBoardNotFound,
	ErrCannotDeleteDefaultBoard,
	ErrMissingID,
	ErrInvalidID,
	ErrInvalidIDsNumber,
	ErrMissingBoards,
	ErrMissingDescription,
	ErrInvalidPriority,
}

// IsInputError reports whether err was caused by bad user input rather
// than a storage failure.
func IsInputError(err error) bool {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// inputError attaches the offending value to a sentinel.
type inputError struct {
	err    error
	detail string
}

func (e *inputError) Error() string {
	return fmt.Sprintf("%v: %q", e.err, e.detail)
}

func (e *inputError) Unwrap() error { return e.err }

func withDetail(err error, detail string) error {
	return &inputError{err: err, detail: detail}
}

// report sends an input error to the presenter and returns it unchanged.
// Other errors pass through untouched.
func (e *Engine) report(err error) error {
	var detail string
	var ie *inputError
	if errors.As(err, &ie) {
		detail = ie.detail
	}

	switch {
	case errors.Is(err, ErrInvalidBoardName):
		e.presenter.InvalidBoardName()
	case errors.Is(err, ErrBoardNotFound):
		e.presenter.BoardNotFound(detail)
	case errors.Is(err, ErrCannotDeleteDefaultBoard):
		e.presenter.CannotDeleteDefaultBoard(detail)
	case errors.Is(err, ErrMissingID):
		e.presenter.MissingID()
	case errors.Is(err, ErrInvalidID):
		e.presenter.InvalidID(detail)
	case errors.Is(err, ErrInvalidIDsNumber):
		e.presenter.InvalidIDsNumber()
	case errors.Is(err, ErrMissingBoards):
		e.presenter.MissingBoards()
	case errors.Is(err, ErrMissingDescription):
		e.presenter.MissingDesc()
	case errors.Is(err, ErrInvalidPriority):
		e.presenter.InvalidPriority()
	}
	return err
}
