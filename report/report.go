// Package report renders election years and closeness outcomes as console
// tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/evflip/closeness"
	"github.com/katalvlaran/evflip/election"
	"github.com/katalvlaran/evflip/history"
)

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	headerStyle = cellStyle.Bold(true).Align(lipgloss.Center)
)

// newTable builds a bordered table whose listed columns are right-aligned.
func newTable(numeric map[int]bool, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// Year prints one row per state (EV, both vote totals, winner, runner-up,
// votes to flip), then each candidate's EV and the overall winner.
func Year(w io.Writer, y election.Year, model election.CostModel) error {
	t := newTable(map[int]bool{1: true, 2: true, 3: true, 6: true},
		"State", "EV", "D votes", "R votes", "Winner", "Runner-up", "Votes-to-flip")
	for _, s := range y.States {
		t.Row(
			s.State,
			strconv.Itoa(s.EV),
			itoa(s.DemVotes),
			itoa(s.RepVotes),
			s.Winner().String(),
			s.RunnerUp().String(),
			itoa(election.VotesToFlip(s, model)),
		)
	}

	tl := y.Tally()
	_, err := fmt.Fprintf(w, "%d\n%s\nDemocratic candidate %s won %d electoral votes\nRepublican candidate %s won %d electoral votes\n%s won the election\n\n",
		y.Year, t.String(),
		y.DemCandidate, tl.DemEV,
		y.RepCandidate, tl.RepEV,
		y.Candidate(tl.Winner))

	return err
}

// Outcome prints the chosen states and their totals.
func Outcome(w io.Writer, o closeness.Outcome) error {
	runnerUp := o.Candidate(o.Tally.RunnerUp)
	if _, err := fmt.Fprintf(w, "%d: %s (%s) needs %d more electoral votes [%s, %s]\n",
		o.Year, runnerUp, o.Tally.RunnerUp, o.NeededEV, o.CostModel, o.Status); err != nil {
		return err
	}
	if len(o.Flips) == 0 {
		_, err := fmt.Fprintln(w, "no states to flip")
		return err
	}

	t := newTable(map[int]bool{1: true, 2: true}, "State", "EV", "Votes-to-flip")
	states := make([]string, 0, len(o.Flips))
	for _, f := range o.Flips {
		t.Row(f.State, strconv.Itoa(f.EV), itoa(f.VotesToFlip))
		states = append(states, f.State)
	}
	t.Row("Total flipped:", strconv.Itoa(o.EVFlipped), itoa(o.VotesFlipped))

	_, err := fmt.Fprintf(w, "Chosen states: %v\n%s\n\n", states, t.String())

	return err
}

// Runs prints recorded runs, newest first as given.
func Runs(w io.Writer, runs []history.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}
	t := newTable(map[int]bool{3: true, 5: true, 6: true},
		"Run", "Created", "Input", "Threshold", "Cost model", "Years", "Votes flipped")
	for _, r := range runs {
		t.Row(
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Input,
			strconv.Itoa(r.Threshold),
			r.CostModel,
			strconv.Itoa(r.Years),
			itoa(r.VotesFlipped),
		)
	}
	_, err := fmt.Fprintln(w, t.String())

	return err
}
