package cover

import "math"

// validateAll checks options and items, returning Σ w_i on success.
//
// Contract:
//   - c_i ≥ 0, w_i ≥ 0, Σ c_i fits in int64,
//   - non-empty IDs are unique (empty IDs are allowed and never collide),
//   - TimeLimit ≥ 0, DPWeightLimit ≥ 0, Algo and Bound are known values.
//
// Complexity: O(n) time, O(n) extra space for the ID set.
func validateAll(items []Item, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	return validateItems(items)
}

// validateOptions checks Options in isolation.
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 || opts.DPWeightLimit < 0 {
		return ErrBadOptions
	}
	switch opts.Algo {
	case Auto, DynamicProgramming, BranchAndBound:
	default:
		return ErrUnsupportedAlgorithm
	}
	switch opts.Bound {
	case DantzigBound, NoBound, LPBound:
	default:
		return ErrUnsupportedBound
	}

	return nil
}

// validateItems checks item values and sums weights.
func validateItems(items []Item) (int, error) {
	seen := make(map[string]struct{}, len(items))

	var (
		it      Item
		ok      bool
		total   int
		costSum int64
	)
	for _, it = range items {
		if it.Cost < 0 {
			return 0, ErrNegativeCost
		}
		if it.Weight < 0 {
			return 0, ErrNegativeWeight
		}
		if it.ID != "" {
			if _, ok = seen[it.ID]; ok {
				return 0, ErrDuplicateID
			}
			seen[it.ID] = struct{}{}
		}
		if costSum > math.MaxInt64-it.Cost {
			return 0, ErrCostOverflow
		}
		costSum += it.Cost
		if total > math.MaxInt-it.Weight {
			return 0, ErrWeightOverflow
		}
		total += it.Weight
	}

	return total, nil
}

// dpLimit resolves the effective DP threshold cap.
func dpLimit(opts Options) int {
	if opts.DPWeightLimit == 0 {
		return DefaultDPWeightLimit
	}

	return opts.DPWeightLimit
}
