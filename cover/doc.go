// Package cover solves the minimum-cost covering knapsack exactly:
//
//	minimize   Σ c_i·x_i
//	subject to Σ w_i·x_i ≥ T,   x_i ∈ {0,1}
//
// with non-negative integer costs c_i and weights w_i. It is the 0/1 program
// behind "which states must flip so the runner-up reaches 270", but nothing in
// the package knows about elections.
//
// Two exact algorithms are provided:
//
//   - SolveDP: dynamic programming over the weight axis capped at T.
//     Runs in O(n·T) time and keeps O(n·T) memory for backtracking, so it
//     suits small thresholds (electoral thresholds are at most 270).
//
//   - SolveBranchAndBound: depth-first search over items ordered by
//     cost/weight ratio, pruned by the Dantzig (fractional) lower bound and
//     an optional root LP relaxation solved with gonum's simplex.
//     Exponential in n in the worst case, fast in practice. It honors
//     Options.TimeLimit and stops with ErrTimeLimit.
//
// Solve validates inputs and dispatches according to Options.Algo. A
// non-positive threshold yields a Trivial result (nothing to choose); a
// threshold above the total weight yields an Infeasible result. Neither is an
// error: callers inspect Result.Status.
package cover
