package closeness

import (
	"fmt"

	"github.com/katalvlaran/evflip/cover"
	"github.com/katalvlaran/evflip/election"
)

// Analyze computes the cheapest Electoral College reversal for y.
//
// Steps:
//  1. Validate y and tally EV by strict plurality.
//  2. One item per state lost by the runner-up: cost = VotesToFlip under
//     opts.CostModel, weight = EV.
//  3. Solve min Σ cost·x s.t. Σ EV·x ≥ Threshold − RunnerUpEV.
//  4. Keep chosen states with positive cost, in input order, and total them.
//
// An Infeasible status (the runner-up cannot reach the threshold even by
// flipping every lost state) is reported in the Outcome, not as an error.
func Analyze(y election.Year, opts Options) (Outcome, error) {
	if opts.Threshold <= 0 {
		return Outcome{}, ErrBadThreshold
	}
	if err := election.Validate(y); err != nil {
		return Outcome{}, fmt.Errorf("year %d: %w", y.Year, err)
	}

	tally := y.Tally()
	lost := y.LostBy(tally.RunnerUp)
	items := make([]cover.Item, len(lost))
	for i, s := range lost {
		items[i] = cover.Item{
			ID:     s.State,
			Cost:   election.VotesToFlip(s, opts.CostModel),
			Weight: s.EV,
		}
	}

	out := Outcome{
		Year:         y.Year,
		DemCandidate: y.DemCandidate,
		RepCandidate: y.RepCandidate,
		Tally:        tally,
		CostModel:    opts.CostModel,
		NeededEV:     opts.Threshold - tally.RunnerUpEV,
		Flips:        []Flip{},
	}

	res, err := cover.Solve(items, out.NeededEV, opts.Solver)
	if err != nil {
		return Outcome{}, fmt.Errorf("year %d: %w", y.Year, err)
	}
	out.Status = res.Status
	out.LowerBound = res.LowerBound
	out.Nodes = res.Nodes

	for _, i := range res.Chosen {
		if items[i].Cost <= 0 {
			continue
		}
		s := lost[i]
		f := Flip{
			State:              s.State,
			EV:                 s.EV,
			VotesToFlip:        items[i].Cost,
			WinnerVotesAfter:   s.Votes(tally.Winner),
			RunnerUpVotesAfter: s.Votes(tally.RunnerUp) + items[i].Cost,
		}
		if opts.CostModel == election.Swing {
			f.WinnerVotesAfter -= items[i].Cost
		}
		out.Flips = append(out.Flips, f)
		out.EVFlipped += f.EV
		out.VotesFlipped += f.VotesToFlip
	}

	return out, nil
}
