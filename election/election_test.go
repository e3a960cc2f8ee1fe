package election_test

import (
	"testing"

	"github.com/katalvlaran/evflip/election"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkYear builds a tiny four-state year: REP wins 30–25 with one tied state.
func mkYear() election.Year {
	return election.Year{
		Year:         2000,
		DemCandidate: "Gore",
		RepCandidate: "Bush",
		States: []election.StateResult{
			{State: "AA", EV: 10, DemVotes: 100, RepVotes: 200},
			{State: "BB", EV: 20, DemVotes: 500, RepVotes: 501},
			{State: "CC", EV: 25, DemVotes: 900, RepVotes: 100},
			{State: "DD", EV: 3, DemVotes: 50, RepVotes: 50},
		},
	}
}

func TestStateResult_WinnerAndMargin(t *testing.T) {
	y := mkYear()
	assert.Equal(t, election.REP, y.States[0].Winner())
	assert.Equal(t, election.DEM, y.States[0].RunnerUp())
	assert.Equal(t, election.DEM, y.States[2].Winner())
	assert.Equal(t, election.None, y.States[3].Winner(), "exact tie has no winner")
	assert.Equal(t, election.None, y.States[3].RunnerUp())
	assert.Equal(t, int64(100), y.States[0].Margin())
	assert.Equal(t, int64(800), y.States[2].Margin())
	assert.Equal(t, int64(501), y.States[1].Votes(election.REP))
	assert.Equal(t, int64(0), y.States[1].Votes(election.None))
}

func TestVotesToFlip_CostModels(t *testing.T) {
	cases := []struct {
		name  string
		s     election.StateResult
		model election.CostModel
		want  int64
	}{
		{"turnout one vote margin", election.StateResult{DemVotes: 500, RepVotes: 501}, election.Turnout, 2},
		{"turnout tie", election.StateResult{DemVotes: 7, RepVotes: 7}, election.Turnout, 1},
		{"turnout wide", election.StateResult{DemVotes: 100, RepVotes: 200}, election.Turnout, 101},
		{"swing even margin", election.StateResult{DemVotes: 100, RepVotes: 200}, election.Swing, 51},
		{"swing odd margin", election.StateResult{DemVotes: 500, RepVotes: 501}, election.Swing, 1},
		{"swing tie", election.StateResult{DemVotes: 7, RepVotes: 7}, election.Swing, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, election.VotesToFlip(tc.s, tc.model))
		})
	}
}

func TestYear_Tally(t *testing.T) {
	tl := mkYear().Tally()
	assert.Equal(t, 25, tl.DemEV)
	assert.Equal(t, 30, tl.RepEV)
	assert.Equal(t, election.REP, tl.Winner)
	assert.Equal(t, election.DEM, tl.RunnerUp)
	assert.Equal(t, 25, tl.RunnerUpEV)
	assert.Equal(t, 30, tl.EV(election.REP))
	assert.Equal(t, 0, tl.EV(election.None))
}

func TestYear_Tally_EVTieGoesToREP(t *testing.T) {
	y := election.Year{States: []election.StateResult{
		{State: "AA", EV: 5, DemVotes: 2, RepVotes: 1},
		{State: "BB", EV: 5, DemVotes: 1, RepVotes: 2},
	}}
	tl := y.Tally()
	assert.Equal(t, election.REP, tl.Winner)
	assert.Equal(t, election.DEM, tl.RunnerUp)
	assert.Equal(t, 5, tl.RunnerUpEV)
}

func TestYear_LostBy(t *testing.T) {
	y := mkYear()
	lost := y.LostBy(election.DEM)
	require.Len(t, lost, 2)
	assert.Equal(t, "AA", lost[0].State)
	assert.Equal(t, "BB", lost[1].State)

	lost = y.LostBy(election.REP)
	require.Len(t, lost, 1)
	assert.Equal(t, "CC", lost[0].State)

	assert.Empty(t, y.LostBy(election.None))
	assert.Equal(t, 58, y.TotalEV())
	assert.Equal(t, "Bush", y.Candidate(election.REP))
	assert.Equal(t, "", y.Candidate(election.None))
}

func TestValidate(t *testing.T) {
	require.NoError(t, election.Validate(mkYear()))

	assert.ErrorIs(t, election.Validate(election.Year{}), election.ErrNoStates)

	y := mkYear()
	y.States[1].State = " "
	assert.ErrorIs(t, election.Validate(y), election.ErrEmptyState)

	y = mkYear()
	y.States[1].State = "AA"
	assert.ErrorIs(t, election.Validate(y), election.ErrDuplicateState)

	y = mkYear()
	y.States[2].EV = -1
	assert.ErrorIs(t, election.Validate(y), election.ErrNegativeEV)

	y = mkYear()
	y.States[3].RepVotes = -4
	assert.ErrorIs(t, election.Validate(y), election.ErrNegativeVotes)
}

func TestParse(t *testing.T) {
	p, err := election.ParseParty("D")
	require.NoError(t, err)
	assert.Equal(t, election.DEM, p)
	assert.Equal(t, election.REP, p.Other())
	assert.Equal(t, "REP", p.Other().String())

	_, err = election.ParseParty("GRN")
	assert.ErrorIs(t, err, election.ErrUnknownParty)

	m, err := election.ParseCostModel("swing")
	require.NoError(t, err)
	assert.Equal(t, election.Swing, m)
	assert.Equal(t, "swing", m.String())

	m, err = election.ParseCostModel("")
	require.NoError(t, err)
	assert.Equal(t, election.Turnout, m)

	_, err = election.ParseCostModel("bribery")
	assert.ErrorIs(t, err, election.ErrUnknownCostModel)
}
