// Package election models per-state presidential results and derives the
// Electoral College tally that the rest of evflip reasons about.
//
// 🚀 What does it cover?
//
//	A Year holds one row per state (50 states + DC): electoral votes and the
//	two major-party popular-vote totals, plus the candidates' names.
//	From it the package derives:
//	  • per-state winner / runner-up (strict plurality, ties award nothing)
//	  • the national tally (EV per party, overall winner and runner-up)
//	  • the votes-to-flip margin of each state under a CostModel
//
// ⚙️ Simplifications:
//
//   - Two parties only (DEM, REP); third-party votes are ignored.
//   - Winner-take-all everywhere; Maine/Nebraska splits are not modeled.
//   - No faithless electors.
//
// Usage:
//
//	t := y.Tally()
//	lost := y.LostBy(t.RunnerUp) // states the runner-up would need to flip
//	for _, s := range lost {
//		fmt.Println(s.State, election.VotesToFlip(s, election.Turnout))
//	}
package election
