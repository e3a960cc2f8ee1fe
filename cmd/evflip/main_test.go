package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/evflip/election"
	"github.com/katalvlaran/evflip/history"
	"github.com/katalvlaran/evflip/sheet"
)

func narrowYear(year int) election.Year {
	return election.Year{
		Year:         year,
		DemCandidate: "Gore",
		RepCandidate: "Bush",
		States: []election.StateResult{
			{State: "CA", EV: 267, DemVotes: 9_000_000, RepVotes: 4_000_000},
			{State: "FL", EV: 25, DemVotes: 2_912_253, RepVotes: 2_912_790},
			{State: "NH", EV: 4, DemVotes: 266_348, RepVotes: 273_559},
			{State: "NV", EV: 4, DemVotes: 279_978, RepVotes: 301_575},
			{State: "TX", EV: 238, DemVotes: 2_000_000, RepVotes: 7_000_000},
		},
	}
}

// workspace writes an input workbook and a quiet config into a temp dir.
func workspace(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	input := filepath.Join(dir, "election_data.xlsx")
	require.NoError(t, sheet.WriteYears(input, []election.Year{narrowYear(2000), narrowYear(2004)}))

	cfgPath = filepath.Join(dir, "evflip.toml")
	body := "input = " + `"` + filepath.ToSlash(input) + `"` + "\nyears = [2000]\n\n[log]\nlevel = \"error\"\nformat = \"json\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	return dir, cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()

	return out.String(), err
}

func TestSolve(t *testing.T) {
	dir, cfg := workspace(t)
	output := filepath.Join(dir, "out.xlsx")
	db := filepath.Join(dir, "runs.db")

	out, err := execute(t, "solve", "-c", cfg, "-o", output, "--years", "2000,2004", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Bush won the election")
	assert.Contains(t, out, "Chosen states: [FL]")
	_, runID, ok := strings.Cut(out, "recorded run ")
	require.True(t, ok)
	runID = strings.TrimSpace(runID)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"2000", "2004", sheet.SummarySheet}, f.GetSheetList())

	out, err = execute(t, "history", "-c", cfg, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "election_data.xlsx")
	assert.Contains(t, out, "1076", "538 votes in each of two years")

	out, err = execute(t, "history", "-c", cfg, "--db", db, "--run", runID, "--year", "2004")
	require.NoError(t, err)
	assert.Contains(t, out, "2004: Gore (DEM) needs 3 more electoral votes [turnout, optimal]")
	assert.Contains(t, out, "Chosen states: [FL]")

	_, err = execute(t, "history", "-c", cfg, "--db", db, "--run", runID, "--year", "2012")
	assert.ErrorIs(t, err, history.ErrNotFound)

	_, err = execute(t, "history", "-c", cfg, "--db", db, "--run", runID)
	assert.ErrorContains(t, err, "go together")
}

func TestSolve_QuietAllYearsSwing(t *testing.T) {
	dir, cfg := workspace(t)
	output := filepath.Join(dir, "out.xlsx")

	out, err := execute(t, "solve", "-c", cfg, "-o", output, "--years", "all", "-q",
		"--cost-model", "swing", "--algo", "bnb", "--bound", "lp", "--time-limit", "5s")
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("2004", "C2")
	require.NoError(t, err)
	assert.Equal(t, "269", v)
}

func TestSolve_Errors(t *testing.T) {
	dir, cfg := workspace(t)

	_, err := execute(t, "solve", "-c", cfg, "--years", "2008", "-o", filepath.Join(dir, "x.xlsx"))
	assert.ErrorIs(t, err, sheet.ErrSheetNotFound)

	_, err = execute(t, "solve", "-c", cfg, "--cost-model", "bribery")
	assert.ErrorIs(t, err, election.ErrUnknownCostModel)

	_, err = execute(t, "solve", "-c", cfg, "--years", "20x0")
	assert.ErrorContains(t, err, "bad year")

	_, err = execute(t, "solve", "-c", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "config load failed")
}

func TestShow(t *testing.T) {
	_, cfg := workspace(t)

	out, err := execute(t, "show", "2004", "-c", cfg, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Democratic candidate Gore won 267 electoral votes")
	assert.Contains(t, out, "needs 3 more electoral votes")
	assert.Contains(t, out, "Total flipped:")

	_, err = execute(t, "show", "two-thousand", "-c", cfg)
	assert.ErrorContains(t, err, "year")
}

func TestHistory_NoDB(t *testing.T) {
	_, cfg := workspace(t)

	_, err := execute(t, "history", "-c", cfg)
	assert.ErrorContains(t, err, "no database")
}
