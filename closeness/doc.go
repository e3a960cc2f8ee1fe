// Package closeness answers, per election year, "what is the cheapest set of
// states whose results, if flipped, would have reversed the Electoral College
// outcome?".
//
// Analyze turns an election.Year into a covering-knapsack instance:
//
//	items     = states the runner-up lost (cost: votes to flip, weight: EV)
//	threshold = Options.Threshold − runner-up EV   (270 by default)
//
// solves it with package cover, and maps the selection back to Flip rows.
// Runner drives Analyze over many years concurrently, reading each year from
// a Source (see package sheet) and returning outcomes in year order.
package closeness
