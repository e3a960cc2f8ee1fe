package sheet

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/evflip/election"
)

// Input header names.
const (
	ColState        = "State"
	ColEV           = "EV"
	ColDemVotes     = "DEM PV"
	ColRepVotes     = "REP PV"
	ColDemCandidate = "Democratic Candidate"
	ColRepCandidate = "Republican Candidate"
)

// DefaultMaxStates is 50 states plus DC.
const DefaultMaxStates = 51

// Reader loads election years from an .xlsx workbook. It is safe for
// concurrent ReadYear calls.
type Reader struct {
	// MaxStates caps data rows per sheet; ≤ 0 reads until a blank State.
	MaxStates int

	mu sync.Mutex
	f  *excelize.File
}

// Open opens the workbook at path.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}

	return &Reader{MaxStates: DefaultMaxStates, f: f}, nil
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader) (*Reader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: open: %w", err)
	}

	return &Reader{MaxStates: DefaultMaxStates, f: f}, nil
}

// Close releases the workbook.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Years lists the sheets whose names are years, ascending.
func (r *Reader) Years() []int {
	r.mu.Lock()
	names := r.f.GetSheetList()
	r.mu.Unlock()

	years := make([]int, 0, len(names))
	for _, name := range names {
		if y, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
			years = append(years, y)
		}
	}
	sort.Ints(years)

	return years
}

// ReadYear parses the sheet named after year.
func (r *Reader) ReadYear(ctx context.Context, year int) (election.Year, error) {
	if err := ctx.Err(); err != nil {
		return election.Year{}, err
	}
	name := strconv.Itoa(year)

	r.mu.Lock()
	idx, err := r.f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		r.mu.Unlock()
		return election.Year{}, fmt.Errorf("%q: %w", name, ErrSheetNotFound)
	}
	rows, err := r.f.GetRows(name, excelize.Options{RawCellValue: true})
	r.mu.Unlock()
	if err != nil {
		return election.Year{}, fmt.Errorf("sheet: read %q: %w", name, err)
	}

	y, err := parseRows(name, rows, r.MaxStates)
	if err != nil {
		return election.Year{}, err
	}
	y.Year = year

	return y, nil
}

// columns maps header names to indices.
type columns struct {
	state, ev, dem, rep int
	demCand, repCand    int // -1 when absent
}

func findColumns(sheet string, header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	lookup := func(name string) int {
		if i, ok := pos[strings.ToLower(name)]; ok {
			return i
		}

		return -1
	}

	c := columns{
		state:   lookup(ColState),
		ev:      lookup(ColEV),
		dem:     lookup(ColDemVotes),
		rep:     lookup(ColRepVotes),
		demCand: lookup(ColDemCandidate),
		repCand: lookup(ColRepCandidate),
	}
	required := []struct {
		name string
		idx  int
	}{{ColState, c.state}, {ColEV, c.ev}, {ColDemVotes, c.dem}, {ColRepVotes, c.rep}}
	for _, r := range required {
		if r.idx < 0 {
			return columns{}, fmt.Errorf("%q: %s: %w", sheet, r.name, ErrMissingColumn)
		}
	}

	return c, nil
}

// cell returns row[i] trimmed, or "" when the row is short or i < 0.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// parseCount reads a non-fractional count; "1,234", "1234.0" and "1.234E3"
// are accepted because spreadsheets store numbers as floating point.
func parseCount(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, strconv.ErrRange
	}

	return int64(f), nil
}

func parseRows(sheet string, rows [][]string, maxStates int) (election.Year, error) {
	if len(rows) == 0 {
		return election.Year{}, fmt.Errorf("%q: %w", sheet, ErrNoHeader)
	}
	c, err := findColumns(sheet, rows[0])
	if err != nil {
		return election.Year{}, err
	}

	var y election.Year
	for i, row := range rows[1:] {
		if maxStates > 0 && len(y.States) == maxStates {
			break
		}
		state := cell(row, c.state)
		if state == "" {
			break
		}
		rowNum := i + 2

		var (
			s   = election.StateResult{State: state}
			ev  int64
			raw string
		)
		fields := []struct {
			name string
			idx  int
			dst  *int64
		}{
			{ColEV, c.ev, &ev},
			{ColDemVotes, c.dem, &s.DemVotes},
			{ColRepVotes, c.rep, &s.RepVotes},
		}
		for _, fd := range fields {
			raw = cell(row, fd.idx)
			if *fd.dst, err = parseCount(raw); err != nil {
				return election.Year{}, &CellError{Sheet: sheet, Row: rowNum, Column: fd.name, Value: raw, Err: err}
			}
		}
		s.EV = int(ev)
		y.States = append(y.States, s)

		if len(y.States) == 1 {
			y.DemCandidate = cell(row, c.demCand)
			y.RepCandidate = cell(row, c.repCand)
		}
	}

	return y, nil
}
