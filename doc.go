// Package evflip finds the closest Electoral College reversals: for each
// presidential election, the cheapest set of states whose popular vote would
// have to change to hand the election to the runner-up.
//
// What is inside?
//
//	A small pipeline from spreadsheet to spreadsheet:
//		• Domain model: state results, tallies, votes-to-flip cost models
//		• Exact solver: 0/1 covering knapsack by DP or branch-and-bound
//		• Bounds: Dantzig fractional rule and an LP relaxation (gonum simplex)
//		• Analysis: per-year outcomes, concurrent multi-year runs
//		• I/O: .xlsx reader/writer, console tables, SQLite run history
//
// Packages:
//
//	election/  - Party, StateResult, Year, Tally, validation
//	cover/     - min Σc·x  s.t.  Σw·x ≥ T, x ∈ {0,1}
//	closeness/ - Analyze one year, Runner for many
//	sheet/     - workbook Reader (closeness.Source) and Writer
//	report/    - lipgloss tables for years, outcomes and runs
//	history/   - recorded runs in SQLite
//	config/    - TOML/YAML settings and the zap logger
//	cmd/evflip - the CLI: solve, show, history
//
// The formulation per year, with R the runner-up and L the states R lost:
//
//	minimize   Σ_{s∈L} votesToFlip(s)·x_s
//	subject to Σ_{s∈L} EV(s)·x_s ≥ 270 − EV(R),  x_s ∈ {0,1}
//
//	go install github.com/katalvlaran/evflip/cmd/evflip@latest
package evflip
