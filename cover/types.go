package cover

import (
	"errors"
	"time"
)

// Sentinel errors.
var (
	// ErrNegativeCost indicates an item with c_i < 0.
	ErrNegativeCost = errors.New("cover: negative item cost")

	// ErrNegativeWeight indicates an item with w_i < 0.
	ErrNegativeWeight = errors.New("cover: negative item weight")

	// ErrDuplicateID indicates two items share a non-empty ID.
	ErrDuplicateID = errors.New("cover: duplicate item id")

	// ErrCostOverflow indicates Σ c_i does not fit in int64.
	ErrCostOverflow = errors.New("cover: total cost overflows int64")

	// ErrWeightOverflow indicates Σ w_i does not fit in int.
	ErrWeightOverflow = errors.New("cover: total weight overflows int")

	// ErrUnknownStatus indicates a status name ParseStatus does not know.
	ErrUnknownStatus = errors.New("cover: unknown status")

	// ErrBadOptions indicates inconsistent Options (negative limits).
	ErrBadOptions = errors.New("cover: invalid options")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("cover: unsupported algorithm")

	// ErrUnsupportedBound indicates an unknown Options.Bound.
	ErrUnsupportedBound = errors.New("cover: unsupported bound")

	// ErrDPTooLarge indicates T exceeds Options.DPWeightLimit for SolveDP.
	ErrDPTooLarge = errors.New("cover: threshold too large for dynamic programming")

	// ErrTimeLimit indicates the branch-and-bound search ran out of time.
	ErrTimeLimit = errors.New("cover: time limit exceeded")
)

// Algorithm selects the exact solver used by Solve.
type Algorithm int

const (
	// Auto uses DynamicProgramming when T ≤ DPWeightLimit, else BranchAndBound.
	Auto Algorithm = iota
	// DynamicProgramming runs SolveDP.
	DynamicProgramming
	// BranchAndBound runs SolveBranchAndBound.
	BranchAndBound
)

// String returns the flag spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case DynamicProgramming:
		return "dp"
	case BranchAndBound:
		return "bnb"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts "auto", "dp" and "bnb"; "" means Auto.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "dp":
		return DynamicProgramming, nil
	case "bnb":
		return BranchAndBound, nil
	}

	return Auto, ErrUnsupportedAlgorithm
}

// BoundAlgo selects the lower bound used by branch-and-bound.
//
//   - NoBound      → only feasibility pruning (testing/benchmarks).
//   - DantzigBound → greedy fractional relaxation at every node.
//   - LPBound      → DantzigBound at every node plus a root LP relaxation
//     solved by simplex; also reported as Result.LowerBound.
type BoundAlgo int

const (
	// DantzigBound prunes with the fractional relaxation (default).
	DantzigBound BoundAlgo = iota
	// NoBound prunes on feasibility only.
	NoBound
	// LPBound adds a root LP relaxation to DantzigBound.
	LPBound
)

// String returns the flag spelling of the bound.
func (b BoundAlgo) String() string {
	switch b {
	case DantzigBound:
		return "dantzig"
	case NoBound:
		return "none"
	case LPBound:
		return "lp"
	default:
		return "unknown"
	}
}

// ParseBound accepts "dantzig", "none" and "lp"; "" means DantzigBound.
func ParseBound(s string) (BoundAlgo, error) {
	switch s {
	case "", "dantzig":
		return DantzigBound, nil
	case "none":
		return NoBound, nil
	case "lp":
		return LPBound, nil
	}

	return DantzigBound, ErrUnsupportedBound
}

// Status reports how a Result was obtained.
type Status int

const (
	// Optimal — a proven minimum-cost cover was found.
	Optimal Status = iota
	// Trivial — T ≤ 0, the empty selection already covers.
	Trivial
	// Infeasible — Σ w_i < T, no selection covers.
	Infeasible
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Trivial:
		return "trivial"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "optimal":
		return Optimal, nil
	case "trivial":
		return Trivial, nil
	case "infeasible":
		return Infeasible, nil
	}

	return Optimal, ErrUnknownStatus
}

// DefaultDPWeightLimit caps T for the DP table (n·(T+1) cells).
const DefaultDPWeightLimit = 1 << 16

// Options configures Solve.
//
// Fields:
//   - Algo          — solver selection (Auto by default).
//   - Bound         — lower bound for branch-and-bound.
//   - TimeLimit     — soft budget for branch-and-bound; 0 means unlimited.
//   - DPWeightLimit — largest T the DP accepts; 0 means DefaultDPWeightLimit.
type Options struct {
	Algo          Algorithm
	Bound         BoundAlgo
	TimeLimit     time.Duration
	DPWeightLimit int
}

// DefaultOptions returns Auto dispatch with the Dantzig bound and no time limit.
func DefaultOptions() Options {
	return Options{
		Algo:          Auto,
		Bound:         DantzigBound,
		DPWeightLimit: DefaultDPWeightLimit,
	}
}

// Item is one 0/1 decision: choosing it pays Cost and contributes Weight.
type Item struct {
	ID     string
	Cost   int64
	Weight int
}

// Result is the outcome of Solve.
type Result struct {
	// Chosen holds indices into the input slice, ascending.
	Chosen []int

	// Cost is Σ c_i over Chosen; Weight is Σ w_i over Chosen.
	Cost   int64
	Weight int

	// LowerBound is the root relaxation value (≤ Cost when Optimal).
	LowerBound float64

	// Nodes counts search nodes visited by branch-and-bound (0 for DP).
	Nodes int64

	Status Status
}
