package cover

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrRelaxationInfeasible is returned when even the LP relaxation cannot
// reach the threshold (Σ w_i < T).
var ErrRelaxationInfeasible = errors.New("cover: relaxation infeasible")

// Relaxation solves the LP relaxation (0 ≤ x_i ≤ 1) with gonum's simplex and
// returns its optimal value, a lower bound on the integer optimum.
//
// Standard form used by lp.Simplex (minimize cᵀz s.t. Az = b, z ≥ 0), with
// z = [x_1..x_n, u_1..u_n, s]:
//
//	x_i + u_i         = 1    (i = 1..n, u_i slack of the upper bound)
//	Σ w_i·x_i − s     = T    (s surplus of the cover constraint)
//
// Complexity: simplex on an (n+1)×(2n+1) system; fine for the tens of items
// this package targets. For large n prefer DantzigRelaxation, which returns
// the same value in O(n log n).
func Relaxation(items []Item, threshold int) (float64, error) {
	if _, err := validateItems(items); err != nil {
		return 0, err
	}
	if threshold <= 0 {
		return 0, nil
	}
	n := len(items)
	if n == 0 {
		return 0, ErrRelaxationInfeasible
	}

	var (
		rows = n + 1
		cols = 2*n + 1
		c    = make([]float64, cols)
		b    = make([]float64, rows)
		A    = mat.NewDense(rows, cols, nil)
		i    int
	)
	for i = 0; i < n; i++ {
		c[i] = float64(items[i].Cost)
		A.Set(i, i, 1)
		A.Set(i, n+i, 1)
		b[i] = 1
		A.Set(n, i, float64(items[i].Weight))
	}
	A.Set(n, 2*n, -1)
	b[n] = float64(threshold)

	z, _, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return 0, ErrRelaxationInfeasible
		}

		return 0, err
	}

	return z, nil
}

// DantzigRelaxation returns the LP relaxation value by the greedy fractional
// rule: take items by ascending cost/weight ratio until the next one would
// overshoot, then the needed fraction of it. Returns +Inf when Σ w_i < T.
//
// Complexity: O(n log n).
func DantzigRelaxation(items []Item, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	order := make([]bbItem, 0, len(items))
	for i, x := range items {
		if x.Weight > 0 {
			order = append(order, bbItem{idx: i, cost: x.Cost, weight: x.Weight})
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return ratioLess(order[i], order[j]) })

	var (
		r     = threshold
		value float64
	)
	for _, x := range order {
		if x.weight <= r {
			value += float64(x.cost)
			r -= x.weight
		} else {
			value += float64(x.cost) * float64(r) / float64(x.weight)
			r = 0
		}
		if r == 0 {
			return value
		}
	}

	return math.Inf(1)
}
