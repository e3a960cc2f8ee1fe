package cover_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/evflip/cover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allOptions lists every solver/bound combination checked for agreement.
func allOptions() map[string]cover.Options {
	mk := func(a cover.Algorithm, b cover.BoundAlgo) cover.Options {
		o := cover.DefaultOptions()
		o.Algo, o.Bound = a, b

		return o
	}

	return map[string]cover.Options{
		"auto":        cover.DefaultOptions(),
		"dp":          mk(cover.DynamicProgramming, cover.DantzigBound),
		"dp-lp":       mk(cover.DynamicProgramming, cover.LPBound),
		"bnb-dantzig": mk(cover.BranchAndBound, cover.DantzigBound),
		"bnb-none":    mk(cover.BranchAndBound, cover.NoBound),
		"bnb-lp":      mk(cover.BranchAndBound, cover.LPBound),
	}
}

func TestSolve_Errors_StrictSentinels(t *testing.T) {
	opts := cover.DefaultOptions()

	_, err := cover.Solve([]cover.Item{{Cost: -1, Weight: 1}}, 1, opts)
	assert.ErrorIs(t, err, cover.ErrNegativeCost)

	_, err = cover.Solve([]cover.Item{{Cost: 1, Weight: -1}}, 1, opts)
	assert.ErrorIs(t, err, cover.ErrNegativeWeight)

	_, err = cover.Solve([]cover.Item{{ID: "FL", Cost: 1, Weight: 1}, {ID: "FL", Cost: 2, Weight: 2}}, 1, opts)
	assert.ErrorIs(t, err, cover.ErrDuplicateID)

	_, err = cover.Solve([]cover.Item{{Cost: math.MaxInt64, Weight: 1}, {Cost: 1, Weight: 1}}, 1, opts)
	assert.ErrorIs(t, err, cover.ErrCostOverflow)

	_, err = cover.Solve([]cover.Item{{Cost: 1, Weight: math.MaxInt}, {Cost: 1, Weight: 1}}, 1, opts)
	assert.ErrorIs(t, err, cover.ErrWeightOverflow)

	bad := opts
	bad.TimeLimit = -1
	_, err = cover.Solve(nil, 1, bad)
	assert.ErrorIs(t, err, cover.ErrBadOptions)

	bad = opts
	bad.Algo = cover.Algorithm(42)
	_, err = cover.Solve(nil, 1, bad)
	assert.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)

	bad = opts
	bad.Bound = cover.BoundAlgo(42)
	_, err = cover.Solve(nil, 1, bad)
	assert.ErrorIs(t, err, cover.ErrUnsupportedBound)
}

func TestSolve_Degenerate(t *testing.T) {
	items := []cover.Item{{Cost: 5, Weight: 3}, {Cost: 7, Weight: 4}}
	for name, opts := range allOptions() {
		t.Run(name, func(t *testing.T) {
			res, err := cover.Solve(items, 0, opts)
			require.NoError(t, err)
			assert.Equal(t, cover.Trivial, res.Status)
			assert.Empty(t, res.Chosen)
			assert.Zero(t, res.Cost)

			res, err = cover.Solve(items, -12, opts)
			require.NoError(t, err)
			assert.Equal(t, cover.Trivial, res.Status)

			res, err = cover.Solve(items, 8, opts)
			require.NoError(t, err)
			assert.Equal(t, cover.Infeasible, res.Status)
			assert.Empty(t, res.Chosen)

			res, err = cover.Solve(nil, 1, opts)
			require.NoError(t, err)
			assert.Equal(t, cover.Infeasible, res.Status)
		})
	}
}

func TestSolve_SmallKnown(t *testing.T) {
	// The equal pair a+b covers for 12; the heavy item plus the unit item is cheaper.
	items := []cover.Item{
		{ID: "a", Cost: 6, Weight: 5},
		{ID: "b", Cost: 6, Weight: 5},
		{ID: "c", Cost: 10, Weight: 9},
		{ID: "d", Cost: 1, Weight: 1},
	}
	for name, opts := range allOptions() {
		t.Run(name, func(t *testing.T) {
			res, err := cover.Solve(items, 10, opts)
			require.NoError(t, err)
			require.Equal(t, cover.Optimal, res.Status)
			assert.Equal(t, int64(11), res.Cost, "c+d covers 10 for 11")
			assert.Equal(t, []int{2, 3}, res.Chosen)
			mustConsistent(t, items, 10, res)
		})
	}
}

func TestSolve_ZeroWeightAndZeroCost(t *testing.T) {
	items := []cover.Item{
		{Cost: 0, Weight: 0},
		{Cost: 0, Weight: 3},
		{Cost: 9, Weight: 2},
		{Cost: 4, Weight: 2},
	}
	for name, opts := range allOptions() {
		t.Run(name, func(t *testing.T) {
			res, err := cover.Solve(items, 5, opts)
			require.NoError(t, err)
			assert.Equal(t, int64(4), res.Cost)
			assert.Equal(t, []int{1, 3}, res.Chosen)
		})
	}
}

func TestSolve_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for round := 0; round < 40; round++ {
		n := 4 + rng.Intn(bruteMaxN-4)
		items, threshold := genItems(rng, n, 5000, 30, 0.2+0.6*rng.Float64())
		want := brute(t, items, threshold)
		require.GreaterOrEqual(t, want, int64(0))

		for name, opts := range allOptions() {
			res, err := cover.Solve(items, threshold, opts)
			require.NoError(t, err, "%s round %d", name, round)
			require.Equal(t, cover.Optimal, res.Status)
			require.Equal(t, want, res.Cost, "%s round %d", name, round)
			mustConsistent(t, items, threshold, res)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	items, threshold := genItems(rng, 30, 100000, 40, 0.5)
	for name, opts := range allOptions() {
		if opts.Bound == cover.NoBound {
			continue // exhaustive on 30 items; covered by the brute-force test
		}
		first, err := cover.Solve(items, threshold, opts)
		require.NoError(t, err)
		second, err := cover.Solve(items, threshold, opts)
		require.NoError(t, err)
		assert.Equal(t, first, second, name)
	}
}

func TestSolveDP_TooLarge(t *testing.T) {
	items := []cover.Item{{Cost: 1, Weight: 30}}
	opts := cover.DefaultOptions()
	opts.DPWeightLimit = 10

	_, err := cover.SolveDP(items, 20, opts)
	assert.ErrorIs(t, err, cover.ErrDPTooLarge)

	// Auto falls back to branch-and-bound instead.
	res, err := cover.Solve(items, 20, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Chosen)
	assert.Positive(t, res.Nodes)
}

func TestSolveBranchAndBound_TimeLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 2))
	items, threshold := genItems(rng, 80, 1_000_000, 60, 0.5)
	opts := cover.DefaultOptions()
	opts.Bound = cover.NoBound
	opts.TimeLimit = 1

	_, err := cover.SolveBranchAndBound(items, threshold, opts)
	assert.ErrorIs(t, err, cover.ErrTimeLimit)
}

func TestParseOptions(t *testing.T) {
	a, err := cover.ParseAlgorithm("bnb")
	require.NoError(t, err)
	assert.Equal(t, cover.BranchAndBound, a)
	assert.Equal(t, "bnb", a.String())
	_, err = cover.ParseAlgorithm("simplex")
	assert.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)

	b, err := cover.ParseBound("lp")
	require.NoError(t, err)
	assert.Equal(t, cover.LPBound, b)
	assert.Equal(t, "lp", b.String())
	_, err = cover.ParseBound("lagrange")
	assert.ErrorIs(t, err, cover.ErrUnsupportedBound)

	assert.Equal(t, "infeasible", cover.Infeasible.String())
	for _, st := range []cover.Status{cover.Optimal, cover.Trivial, cover.Infeasible} {
		got, err := cover.ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err = cover.ParseStatus("unknown")
	assert.ErrorIs(t, err, cover.ErrUnknownStatus)
}
