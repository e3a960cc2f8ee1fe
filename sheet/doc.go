// Package sheet reads per-state election results from .xlsx workbooks and
// writes closeness outcomes back, one worksheet per year.
//
// Input layout (one sheet per year, named "2000", "2004", ...):
//
//	State | EV | DEM PV | REP PV | Democratic Candidate | Republican Candidate
//	AL    |  9 | 692611 | 941173 | Gore                 | Bush
//	...
//
// Columns are located by header name, so extra columns and any column order
// are accepted. Reading stops at the first blank State cell or after
// Reader.MaxStates rows (51: the states plus DC), which skips a trailing
// totals row.
//
// Output layout: per year, State | EV | Votes-to-flip | <W> Theoretical PV |
// <R> Theoretical PV, closed by a "Total flipped:" row; plus a Summary sheet.
package sheet
