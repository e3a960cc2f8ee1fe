// Package cover - unified dispatcher.
//
// Solve is the canonical entry point: it validates items and options once,
// settles the two degenerate cases (T ≤ 0 and Σw < T) without running a
// solver, computes the root relaxation for Result.LowerBound, and routes to
// SolveDP or SolveBranchAndBound.
package cover

import "sort"

// Solve finds a minimum-cost subset of items whose weights sum to at least
// threshold.
//
// Contracts:
//   - items may be empty; costs and weights must be non-negative.
//   - threshold ≤ 0 ⇒ Status Trivial, no items chosen, Cost 0.
//   - Σ w_i < threshold ⇒ Status Infeasible, no items chosen.
//   - Otherwise Status Optimal with Result.Chosen ascending.
//
// Errors: validation sentinels from types.go, ErrDPTooLarge (explicit DP
// with a large threshold) and ErrTimeLimit (branch-and-bound budget).
func Solve(items []Item, threshold int, opts Options) (Result, error) {
	total, err := validateAll(items, opts)
	if err != nil {
		return Result{}, err
	}
	if res, done := degenerate(total, threshold); done {
		return res, nil
	}

	switch opts.Algo {
	case DynamicProgramming:
		return solveDP(items, threshold, opts)
	case BranchAndBound:
		return solveBB(items, threshold, opts)
	default:
		if threshold <= dpLimit(opts) {
			return solveDP(items, threshold, opts)
		}

		return solveBB(items, threshold, opts)
	}
}

// degenerate settles T ≤ 0 and Σw < T.
func degenerate(totalWeight, threshold int) (Result, bool) {
	if threshold <= 0 {
		return Result{Chosen: []int{}, Status: Trivial}, true
	}
	if totalWeight < threshold {
		return Result{Chosen: []int{}, Status: Infeasible}, true
	}

	return Result{}, false
}

// rootBound computes the relaxation reported in Result.LowerBound. The LP is
// only solved when opts.Bound asks for it; a simplex failure falls back to the
// Dantzig value, which is the same optimum computed greedily.
func rootBound(items []Item, threshold int, opts Options) float64 {
	if opts.Bound == LPBound {
		if lb, err := Relaxation(items, threshold); err == nil {
			return lb
		}
	}

	return DantzigRelaxation(items, threshold)
}

// finish builds a Result from a chosen index set.
func finish(items []Item, chosen []int, lb float64, nodes int64) Result {
	sort.Ints(chosen)
	res := Result{Chosen: chosen, LowerBound: lb, Nodes: nodes, Status: Optimal}
	for _, i := range chosen {
		res.Cost += items[i].Cost
		res.Weight += items[i].Weight
	}

	return res
}
