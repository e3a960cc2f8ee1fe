package closeness

import (
	"context"
	"errors"

	"github.com/katalvlaran/evflip/cover"
	"github.com/katalvlaran/evflip/election"
)

// DefaultThreshold is the Electoral College majority (of 538).
const DefaultThreshold = 270

// ErrBadThreshold indicates a non-positive Options.Threshold.
var ErrBadThreshold = errors.New("closeness: threshold must be positive")

// Options configures Analyze.
type Options struct {
	// Threshold is the EV count the runner-up must reach.
	Threshold int
	// CostModel prices a state flip.
	CostModel election.CostModel
	// Solver is handed to cover.Solve unchanged.
	Solver cover.Options
}

// DefaultOptions mirrors the classic analysis: 270 EV, turnout cost, auto solver.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		CostModel: election.Turnout,
		Solver:    cover.DefaultOptions(),
	}
}

// Flip is one state the runner-up would take over.
type Flip struct {
	State       string
	EV          int
	VotesToFlip int64

	// Votes after the flip: the runner-up gains VotesToFlip; under the swing
	// model the winner also loses the same amount.
	WinnerVotesAfter   int64
	RunnerUpVotesAfter int64
}

// Outcome is the analysis of one year.
type Outcome struct {
	Year         int
	DemCandidate string
	RepCandidate string
	Tally        election.Tally
	CostModel    election.CostModel

	// Threshold actually solved for: Options.Threshold − Tally.RunnerUpEV.
	NeededEV int

	Flips        []Flip
	EVFlipped    int
	VotesFlipped int64

	Status     cover.Status
	LowerBound float64
	Nodes      int64
}

// Candidate returns the nominee of p for the outcome's year.
func (o Outcome) Candidate(p election.Party) string {
	switch p {
	case election.DEM:
		return o.DemCandidate
	case election.REP:
		return o.RepCandidate
	default:
		return ""
	}
}

// Source loads one year of results.
type Source interface {
	ReadYear(ctx context.Context, year int) (election.Year, error)
}
