package election

// Winner returns the party with strictly more votes in the state, or None on a tie.
func (s StateResult) Winner() Party {
	switch {
	case s.DemVotes > s.RepVotes:
		return DEM
	case s.RepVotes > s.DemVotes:
		return REP
	default:
		return None
	}
}

// RunnerUp returns the party that lost the state, or None on a tie.
func (s StateResult) RunnerUp() Party {
	return s.Winner().Other()
}

// Votes returns the popular vote of p in the state.
func (s StateResult) Votes(p Party) int64 {
	switch p {
	case DEM:
		return s.DemVotes
	case REP:
		return s.RepVotes
	default:
		return 0
	}
}

// Margin returns |D−R|.
func (s StateResult) Margin() int64 {
	d := s.DemVotes - s.RepVotes
	if d < 0 {
		return -d
	}

	return d
}

// VotesToFlip returns the number of popular votes that changes the state's
// winner under model. The result is always ≥ 1: a tied state still needs one
// vote to produce a winner.
func VotesToFlip(s StateResult, model CostModel) int64 {
	m := s.Margin()
	if model == Swing {
		return m/2 + 1
	}

	return m + 1
}

// Tally counts electoral votes by strict plurality. States with an exact tie
// credit nobody. The overall winner is DEM iff DemEV > RepEV; an EV tie is
// resolved in favor of REP, so DEM is the runner-up.
//
// Complexity: O(n) over the states.
func (y Year) Tally() Tally {
	var t Tally
	for _, s := range y.States {
		switch s.Winner() {
		case DEM:
			t.DemEV += s.EV
		case REP:
			t.RepEV += s.EV
		}
	}
	if t.DemEV > t.RepEV {
		t.Winner, t.RunnerUp, t.RunnerUpEV = DEM, REP, t.RepEV
	} else {
		t.Winner, t.RunnerUp, t.RunnerUpEV = REP, DEM, t.DemEV
	}

	return t
}

// LostBy returns, in input order, the states p lost to the other party.
// Tied states are excluded, matching the strict-plurality tally.
func (y Year) LostBy(p Party) []StateResult {
	want := p.Other()
	out := make([]StateResult, 0, len(y.States))
	for _, s := range y.States {
		if s.Winner() == want && want != None {
			out = append(out, s)
		}
	}

	return out
}

// Candidate returns the name of p's nominee ("" for None).
func (y Year) Candidate(p Party) string {
	switch p {
	case DEM:
		return y.DemCandidate
	case REP:
		return y.RepCandidate
	default:
		return ""
	}
}

// TotalEV returns the electoral votes summed over all states.
func (y Year) TotalEV() int {
	var n int
	for _, s := range y.States {
		n += s.EV
	}

	return n
}
