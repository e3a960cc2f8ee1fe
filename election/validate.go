package election

import (
	"fmt"
	"strings"
)

// Validate checks the structural contract of a Year:
//   - at least one state,
//   - non-blank, unique state codes,
//   - EV ≥ 0 and vote totals ≥ 0.
//
// Errors wrap the package sentinels with the offending state code, so callers
// can use errors.Is.
//
// Complexity: O(n) time, O(n) extra space for the uniqueness set.
func Validate(y Year) error {
	if len(y.States) == 0 {
		return ErrNoStates
	}
	seen := make(map[string]struct{}, len(y.States))

	var (
		i    int
		s    StateResult
		code string
		ok   bool
	)
	for i, s = range y.States {
		code = strings.TrimSpace(s.State)
		if code == "" {
			return fmt.Errorf("row %d: %w", i+1, ErrEmptyState)
		}
		if _, ok = seen[code]; ok {
			return fmt.Errorf("%s: %w", code, ErrDuplicateState)
		}
		seen[code] = struct{}{}
		if s.EV < 0 {
			return fmt.Errorf("%s: %w", code, ErrNegativeEV)
		}
		if s.DemVotes < 0 || s.RepVotes < 0 {
			return fmt.Errorf("%s: %w", code, ErrNegativeVotes)
		}
	}

	return nil
}
