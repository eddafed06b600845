package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidDate       = errors.New("invalid date")
	ErrConfiguration     = errors.New("configuration error")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrTimeout           = errors.New("timeout")
	ErrAlreadyExists     = errors.New("already exists")
)

type Stage string

const (
	StageCSV         Stage = "csv"
	StageSpreadsheet Stage = "spreadsheet"
	StageRow         Stage = "row"
)

// ImportError pins an import failure to the stage, and for row failures to the
// 1-based data row, where it happened.
type ImportError struct {
	Stage Stage
	Row   int
	Err   error
}

func (e *ImportError) Error() string {
	if e.Stage == StageRow {
		return fmt.Sprintf("import %s %d: %v", e.Stage, e.Row, e.Err)
	}
	return fmt.Sprintf("import %s: %v", e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may repeat the same request unchanged.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout)
}
