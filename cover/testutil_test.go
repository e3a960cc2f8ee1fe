// Package cover_test shares small helpers across the solver tests: a
// deterministic instance generator and an exhaustive reference solver.
package cover_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/evflip/cover"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet fixes every generated instance.
	seedDet = int64(2000)

	// bruteMaxN bounds the exhaustive reference (2^n subsets).
	bruteMaxN = 16
)

// genItems returns n items with costs in [1,maxCost] and weights in [1,maxW],
// plus a threshold around the given fraction of the total weight.
func genItems(rng *rand.Rand, n int, maxCost int64, maxW int, frac float64) ([]cover.Item, int) {
	items := make([]cover.Item, n)
	total := 0
	for i := range items {
		items[i] = cover.Item{
			Cost:   1 + rng.Int63n(maxCost),
			Weight: 1 + rng.Intn(maxW),
		}
		total += items[i].Weight
	}

	return items, int(math.Ceil(frac * float64(total)))
}

// brute enumerates all subsets and returns the minimum covering cost, or -1.
func brute(t *testing.T, items []cover.Item, threshold int) int64 {
	t.Helper()
	require.LessOrEqual(t, len(items), bruteMaxN, "brute force is for tiny instances")
	best := int64(-1)
	n := len(items)
	for mask := 0; mask < 1<<n; mask++ {
		var (
			w int
			c int64
		)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				c += items[i].Cost
			}
		}
		if w >= threshold && (best < 0 || c < best) {
			best = c
		}
	}

	return best
}

// mustConsistent checks that a Result's totals match its chosen indices.
func mustConsistent(t *testing.T, items []cover.Item, threshold int, res cover.Result) {
	t.Helper()
	var (
		w    int
		c    int64
		prev = -1
	)
	for _, i := range res.Chosen {
		require.Greater(t, i, prev, "chosen indices must be ascending and unique")
		prev = i
		w += items[i].Weight
		c += items[i].Cost
	}
	require.Equal(t, w, res.Weight)
	require.Equal(t, c, res.Cost)
	require.GreaterOrEqual(t, res.Weight, threshold)
	require.LessOrEqual(t, res.LowerBound, float64(res.Cost)*(1+1e-9)+1e-6)
}
