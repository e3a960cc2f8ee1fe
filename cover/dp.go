package cover

import "math"

// SolveDP solves the covering knapsack by dynamic programming over the
// weight axis capped at T.
//
// Algorithm Outline:
//  1. Let D[w] be the least cost of a subset of the items seen so far whose
//     capped weight min(Σw, T) equals w. D[0] = 0, D[w>0] = +∞.
//  2. For item i with weight w_i > 0, for w = T..0 (descending):
//     t = min(T, w + w_i); if D[w] + c_i < D[t] then D[t] = D[w] + c_i and
//     record from[i][t] = w. Descending order keeps D[w] at its value before
//     item i, because every update lands on an index ≥ w.
//  3. The optimum is D[T]. Backtrack from (n−1, T) through from[][], which is
//     exact even at the capped column where several predecessors collide.
//
// Zero-weight items never improve a cover (costs are non-negative) and are
// skipped. Updates require strict improvement, so among equal-cost optima
// the one reachable with earlier items wins.
//
// Complexity:
//
//	Time   = O(n·T)
//	Memory = O(n·T) for the predecessor table, O(T) for costs.
func SolveDP(items []Item, threshold int, opts Options) (Result, error) {
	total, err := validateAll(items, opts)
	if err != nil {
		return Result{}, err
	}
	if res, done := degenerate(total, threshold); done {
		return res, nil
	}

	return solveDP(items, threshold, opts)
}

// solveDP assumes validated input with 0 < threshold ≤ Σw.
func solveDP(items []Item, threshold int, opts Options) (Result, error) {
	if threshold > dpLimit(opts) {
		return Result{}, ErrDPTooLarge
	}
	const inf = int64(math.MaxInt64)

	var (
		n    = len(items)
		T    = threshold
		cost = make([]int64, T+1)
		from = make([][]int32, n)
	)
	for w := 1; w <= T; w++ {
		cost[w] = inf
	}

	var (
		i, w, t int
		wi      int
		cand    int64
	)
	for i = 0; i < n; i++ {
		wi = items[i].Weight
		if wi == 0 {
			continue
		}
		row := make([]int32, T+1)
		for w = range row {
			row[w] = -1
		}
		for w = T; w >= 0; w-- {
			if cost[w] == inf {
				continue
			}
			t = w + wi
			if t > T {
				t = T
			}
			cand = cost[w] + items[i].Cost
			if cand < cost[t] {
				cost[t] = cand
				row[t] = int32(w)
			}
		}
		from[i] = row
	}

	// Backtrack: walk items in reverse, following recorded predecessors.
	chosen := make([]int, 0, n)
	w = T
	for i = n - 1; i >= 0 && w > 0; i-- {
		if from[i] == nil || from[i][w] < 0 {
			continue
		}
		chosen = append(chosen, i)
		w = int(from[i][w])
	}

	return finish(items, chosen, rootBound(items, threshold, opts), 0), nil
}
