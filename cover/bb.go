// Package cover — Branch-and-Bound (exact search with admissible lower bounds).
//
// SolveBranchAndBound enumerates include/exclude decisions depth-first over
// items sorted by ascending cost/weight ratio.
//
// Rationale (succinct):
//  1. Items are copied into a dense, ratio-sorted slice so the hot loop touches
//     no interfaces and the Dantzig bound is a single forward scan.
//  2. A greedy cover, pruned of redundant items, seeds the upper bound (UB).
//  3. Search: at depth k with covered weight W and cost C, the residual
//     R = T − W must be covered by items k..n−1. The Dantzig bound takes whole
//     items in ratio order until the next one overshoots R, then a fraction of
//     it; C + ⌈bound⌉ ≤ any completion. Prune when that reaches UB, or when
//     the remaining weight cannot reach R.
//  4. Branching: include before exclude, so cheap-per-EV items land early and
//     UB tightens fast. Fully deterministic.
//  5. Soft time limit: rare deadline checks (every 4096 nodes).
//
// Governance:
//   - Options.Bound:
//     NoBound      → feasibility pruning only.
//     DantzigBound → fractional bound at every node.
//     LPBound      → DantzigBound plus a root LP relaxation (simplex); if the
//     root LP already meets UB the incumbent is returned as optimal.
package cover

import (
	"math"
	"sort"
	"time"
)

// bbItem is an item in ratio order, remembering its input index.
type bbItem struct {
	idx    int
	cost   int64
	weight int
}

// bbEngine holds all search data and policies.
type bbEngine struct {
	// Configuration / policy
	n        int
	target   int
	useBound bool

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int64
	timedOut    bool

	// Items in ratio order and suffix weight sums: rest[k] = Σ_{j≥k} weight.
	it   []bbItem
	rest []int

	// Current search state
	take []bool

	// Incumbent (UB)
	best     []bool
	bestCost int64
}

// deadlineCheck performs a rare deadline test (every 4096 nodes).
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if e.timedOut {
		return true
	}
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// ratioLess orders by cost/weight ascending using cross-multiplication;
// zero-weight items sort last, ties keep input order.
func ratioLess(a, b bbItem) bool {
	switch {
	case a.weight == 0 && b.weight == 0:
		return a.idx < b.idx
	case a.weight == 0:
		return false
	case b.weight == 0:
		return true
	}
	l := a.cost * int64(b.weight)
	r := b.cost * int64(a.weight)
	if l == r {
		return a.idx < b.idx
	}

	return l < r
}

// prepare copies items into ratio order and precomputes suffix weights.
func (e *bbEngine) prepare(items []Item) {
	e.n = len(items)
	e.it = make([]bbItem, e.n)
	for i, x := range items {
		e.it[i] = bbItem{idx: i, cost: x.Cost, weight: x.Weight}
	}
	sort.SliceStable(e.it, func(i, j int) bool { return ratioLess(e.it[i], e.it[j]) })

	e.rest = make([]int, e.n+1)
	for k := e.n - 1; k >= 0; k-- {
		e.rest[k] = e.rest[k+1] + e.it[k].weight
	}
	e.take = make([]bool, e.n)
	e.best = make([]bool, e.n)
}

// seedUB builds a greedy cover in ratio order, then drops redundant items in
// descending cost order while the cover still holds.
func (e *bbEngine) seedUB() {
	e.bestCost = math.MaxInt64

	var (
		w    int
		c    int64
		k    int
		pick = make([]bool, e.n)
	)
	for k = 0; k < e.n && w < e.target; k++ {
		if e.it[k].weight == 0 {
			continue
		}
		pick[k] = true
		w += e.it[k].weight
		c += e.it[k].cost
	}
	if w < e.target {
		return
	}

	order := make([]int, 0, e.n)
	for k = range pick {
		if pick[k] {
			order = append(order, k)
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return e.it[order[i]].cost > e.it[order[j]].cost })
	for _, k = range order {
		if w-e.it[k].weight >= e.target {
			pick[k] = false
			w -= e.it[k].weight
			c -= e.it[k].cost
		}
	}
	copy(e.best, pick)
	e.bestCost = c
}

// fractional returns ⌈Dantzig bound⌉ for covering residual r with items
// k..n−1, computed in integers, and false when they cannot cover r.
func (e *bbEngine) fractional(k, r int) (int64, bool) {
	if r <= 0 {
		return 0, true
	}
	if e.rest[k] < r {
		return 0, false
	}
	var extra int64
	for ; k < e.n && r > 0; k++ {
		w := e.it[k].weight
		if w == 0 {
			continue
		}
		if w <= r {
			extra += e.it[k].cost
			r -= w
			continue
		}
		// ⌈c·r/w⌉ for the split item.
		extra += (e.it[k].cost*int64(r) + int64(w) - 1) / int64(w)
		r = 0
	}

	return extra, true
}

// prune tells whether the subtree at depth k can be discarded. Costs are
// integers, so a completion costs at least C + ⌈bound⌉.
func (e *bbEngine) prune(k, covered int, cost int64) bool {
	extra, ok := e.fractional(k, e.target-covered)
	if !ok {
		return true
	}
	if !e.useBound {
		return cost >= e.bestCost
	}

	return cost+extra >= e.bestCost
}

// dfs explores item k given the current covered weight and cost.
func (e *bbEngine) dfs(k, covered int, cost int64) {
	if e.deadlineCheck() {
		return
	}
	if covered >= e.target {
		if cost < e.bestCost {
			e.bestCost = cost
			copy(e.best, e.take)
		}

		return
	}
	if k == e.n || e.prune(k, covered, cost) {
		return
	}

	if e.it[k].weight > 0 {
		e.take[k] = true
		e.dfs(k+1, covered+e.it[k].weight, cost+e.it[k].cost)
		e.take[k] = false
	}
	e.dfs(k+1, covered, cost)
}

// chosen maps an incumbent mask back to input indices.
func (e *bbEngine) chosen(mask []bool) []int {
	out := make([]int, 0, e.n)
	for k, on := range mask {
		if on {
			out = append(out, e.it[k].idx)
		}
	}

	return out
}

// ceilBound rounds a floating relaxation up to the integer cost it proves,
// shaving a relative tolerance first so simplex round-off never overstates it.
func ceilBound(lb float64) int64 {
	return int64(math.Ceil(lb - 1e-7*math.Max(1, math.Abs(lb))))
}

// SolveBranchAndBound is the public entrypoint for exact B&B search.
//
// Errors:
//   - ErrTimeLimit if a positive time budget is exceeded.
//   - Strict validation sentinels for malformed inputs (see types.go).
func SolveBranchAndBound(items []Item, threshold int, opts Options) (Result, error) {
	total, err := validateAll(items, opts)
	if err != nil {
		return Result{}, err
	}
	if res, done := degenerate(total, threshold); done {
		return res, nil
	}

	return solveBB(items, threshold, opts)
}

// solveBB assumes validated input with 0 < threshold ≤ Σw.
func solveBB(items []Item, threshold int, opts Options) (Result, error) {
	var e bbEngine
	e.target = threshold
	e.useBound = opts.Bound != NoBound
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.prepare(items)
	e.seedUB()
	lb := rootBound(items, threshold, opts)

	// Root LP: when the relaxation already meets the greedy incumbent, the
	// incumbent is optimal and the search is skipped.
	if opts.Bound == LPBound && e.bestCost != math.MaxInt64 &&
		ceilBound(lb) >= e.bestCost {
		return finish(items, e.chosen(e.best), lb, 0), nil
	}

	e.dfs(0, 0, 0)
	if e.timedOut {
		return Result{}, ErrTimeLimit
	}

	return finish(items, e.chosen(e.best), lb, e.steps), nil
}
