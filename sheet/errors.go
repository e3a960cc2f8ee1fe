package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrSheetNotFound indicates the workbook has no sheet for the year.
	ErrSheetNotFound = errors.New("sheet: worksheet not found")

	// ErrMissingColumn indicates a required header is absent.
	ErrMissingColumn = errors.New("sheet: required column missing")

	// ErrNoHeader indicates an empty worksheet.
	ErrNoHeader = errors.New("sheet: worksheet has no header row")
)

// CellError reports a cell whose content cannot be parsed.
type CellError struct {
	Sheet  string
	Row    int // 1-based, as shown by spreadsheet tools
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q row %d column %q: bad value %q: %v", e.Sheet, e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
