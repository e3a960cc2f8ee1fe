package sheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/evflip/closeness"
	"github.com/katalvlaran/evflip/election"
)

var _ closeness.Source = (*Reader)(nil)

// Output labels.
const (
	ColVotesToFlip = "Votes-to-flip"
	TotalLabel     = "Total flipped:"
	SummarySheet   = "Summary"

	defaultSheet = "Sheet1"
)

// SummaryHeader is the header row of the Summary sheet.
var SummaryHeader = []string{
	"Year", "Winner", "Runner-up", "Winner EV", "Runner-up EV", "Needed EV",
	"States flipped", "EV flipped", "Votes flipped", "Cost model", "Status",
}

// Writer accumulates outcomes into a new workbook.
type Writer struct {
	f       *excelize.File
	bold    int
	years   []closeness.Outcome
	written bool
}

// NewWriter starts an empty workbook.
func NewWriter() (*Writer, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("sheet: style: %w", err)
	}

	return &Writer{f: f, bold: bold}, nil
}

// setRow writes values starting at column A of the given 1-based row.
func (w *Writer) setRow(sheet string, row int, values ...any) error {
	addr, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return w.f.SetSheetRow(sheet, addr, &values)
}

// header writes a bold header row.
func (w *Writer) header(sheet string, names ...string) error {
	values := make([]any, len(names))
	for i, n := range names {
		values[i] = n
	}
	if err := w.setRow(sheet, 1, values...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(names), 1)
	if err != nil {
		return err
	}

	return w.f.SetCellStyle(sheet, "A1", last, w.bold)
}

// YearHeader returns the per-year header; the theoretical vote columns are
// labeled with the overall winner's and runner-up's party.
func YearHeader(o closeness.Outcome) []string {
	return []string{
		ColState, ColEV, ColVotesToFlip,
		o.Tally.Winner.String() + " Theoretical PV",
		o.Tally.RunnerUp.String() + " Theoretical PV",
	}
}

// AddOutcome writes the sheet for o.Year. Years must be unique.
func (w *Writer) AddOutcome(o closeness.Outcome) error {
	name := strconv.Itoa(o.Year)
	if idx, _ := w.f.GetSheetIndex(name); idx >= 0 {
		return fmt.Errorf("sheet: duplicate year %d", o.Year)
	}
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet: new %q: %w", name, err)
	}
	if err := w.header(name, YearHeader(o)...); err != nil {
		return err
	}

	row := 2
	for _, f := range o.Flips {
		if err := w.setRow(name, row, f.State, f.EV, f.VotesToFlip, f.WinnerVotesAfter, f.RunnerUpVotesAfter); err != nil {
			return err
		}
		row++
	}
	if err := w.setRow(name, row, TotalLabel, o.EVFlipped, o.VotesFlipped); err != nil {
		return err
	}

	// Context block below the table.
	row += 2
	info := [][]any{
		{"Winner", o.Candidate(o.Tally.Winner), o.Tally.Winner.String(), o.Tally.EV(o.Tally.Winner)},
		{"Runner-up", o.Candidate(o.Tally.RunnerUp), o.Tally.RunnerUp.String(), o.Tally.RunnerUpEV},
		{"Needed EV", o.NeededEV},
		{"Status", o.Status.String()},
	}
	for _, vals := range info {
		if err := w.setRow(name, row, vals...); err != nil {
			return err
		}
		row++
	}
	w.years = append(w.years, o)

	return nil
}

// finalize writes the Summary sheet and drops the default sheet once.
func (w *Writer) finalize() error {
	if w.written {
		return nil
	}
	w.written = true

	if _, err := w.f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := w.header(SummarySheet, SummaryHeader...); err != nil {
		return err
	}
	for i, o := range w.years {
		err := w.setRow(SummarySheet, i+2,
			o.Year,
			o.Candidate(o.Tally.Winner),
			o.Candidate(o.Tally.RunnerUp),
			o.Tally.EV(o.Tally.Winner),
			o.Tally.RunnerUpEV,
			o.NeededEV,
			len(o.Flips),
			o.EVFlipped,
			o.VotesFlipped,
			o.CostModel.String(),
			o.Status.String(),
		)
		if err != nil {
			return err
		}
	}

	if err := w.f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	first := SummarySheet
	if len(w.years) > 0 {
		first = strconv.Itoa(w.years[0].Year)
	}
	if idx, err := w.f.GetSheetIndex(first); err == nil && idx >= 0 {
		w.f.SetActiveSheet(idx)
	}

	return nil
}

// Save finalizes the workbook and writes it to path.
func (w *Writer) Save(path string) error {
	if err := w.finalize(); err != nil {
		return fmt.Errorf("sheet: finalize: %w", err)
	}
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("sheet: save %s: %w", path, err)
	}

	return nil
}

// WriteTo finalizes the workbook and streams it to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if err := w.finalize(); err != nil {
		return 0, fmt.Errorf("sheet: finalize: %w", err)
	}

	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return 0, fmt.Errorf("sheet: encode: %w", err)
	}

	return buf.WriteTo(out)
}

// Close releases the workbook.
func (w *Writer) Close() error {
	return w.f.Close()
}

// WriteYears stores years in the input layout Reader expects, one sheet per
// year. It is the inverse of ReadYear and is handy for preparing data sets.
func WriteYears(path string, years []election.Year) error {
	w, err := NewWriter()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, y := range years {
		name := strconv.Itoa(y.Year)
		if _, err = w.f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet: new %q: %w", name, err)
		}
		if err = w.header(name, ColState, ColEV, ColDemVotes, ColRepVotes, ColDemCandidate, ColRepCandidate); err != nil {
			return err
		}
		for i, s := range y.States {
			vals := []any{s.State, s.EV, s.DemVotes, s.RepVotes}
			if i == 0 {
				vals = append(vals, y.DemCandidate, y.RepCandidate)
			}
			if err = w.setRow(name, i+2, vals...); err != nil {
				return err
			}
		}
	}
	if len(years) > 0 {
		if err = w.f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}
	if err = w.f.SaveAs(path); err != nil {
		return fmt.Errorf("sheet: save %s: %w", path, err)
	}

	return nil
}
