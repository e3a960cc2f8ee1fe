// Package history keeps a SQLite log of closeness runs so results from
// different inputs, thresholds or cost models can be compared later.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/evflip/closeness"
	"github.com/katalvlaran/evflip/cover"
	"github.com/katalvlaran/evflip/election"
)

// ErrNotFound indicates no recorded outcome for the requested run and year.
var ErrNotFound = errors.New("history: not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	input      TEXT NOT NULL,
	threshold  INTEGER NOT NULL,
	cost_model TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS outcomes (
	run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	year          INTEGER NOT NULL,
	dem_candidate TEXT NOT NULL,
	rep_candidate TEXT NOT NULL,
	winner        TEXT NOT NULL,
	runner_up     TEXT NOT NULL,
	winner_ev     INTEGER NOT NULL,
	runner_up_ev  INTEGER NOT NULL,
	needed_ev     INTEGER NOT NULL,
	ev_flipped    INTEGER NOT NULL,
	votes_flipped INTEGER NOT NULL,
	status        TEXT NOT NULL,
	PRIMARY KEY (run_id, year)
);
CREATE TABLE IF NOT EXISTS flips (
	run_id          TEXT NOT NULL,
	year            INTEGER NOT NULL,
	state           TEXT NOT NULL,
	ev              INTEGER NOT NULL,
	votes           INTEGER NOT NULL,
	winner_after    INTEGER NOT NULL,
	runner_up_after INTEGER NOT NULL,
	PRIMARY KEY (run_id, year, state),
	FOREIGN KEY (run_id, year) REFERENCES outcomes(run_id, year) ON DELETE CASCADE
);`

// tsLayout is fixed-width so text ordering matches time ordering.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one invocation to be recorded.
type Run struct {
	ID        string // generated when empty
	CreatedAt time.Time
	Input     string
	Threshold int
	CostModel string
	Outcomes  []closeness.Outcome
}

// RunSummary is a row of Runs.
type RunSummary struct {
	ID           string
	CreatedAt    time.Time
	Input        string
	Threshold    int
	CostModel    string
	Years        int
	VotesFlipped int64
}

// Store is a SQLite-backed run log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// One connection: SQLite serializes writers anyway and :memory: databases
	// are per-connection.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: pragma: %w", err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores run and its outcomes in one transaction and returns the run id.
func (s *Store) Record(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("history: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, input, threshold, cost_model) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(tsLayout), run.Input, run.Threshold, run.CostModel,
	); err != nil {
		return "", fmt.Errorf("history: insert run: %w", err)
	}

	for _, o := range run.Outcomes {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO outcomes (run_id, year, dem_candidate, rep_candidate, winner, runner_up, winner_ev, runner_up_ev, needed_ev, ev_flipped, votes_flipped, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, o.Year, o.DemCandidate, o.RepCandidate, o.Tally.Winner.String(), o.Tally.RunnerUp.String(),
			o.Tally.EV(o.Tally.Winner), o.Tally.RunnerUpEV, o.NeededEV,
			o.EVFlipped, o.VotesFlipped, o.Status.String(),
		); err != nil {
			return "", fmt.Errorf("history: insert outcome %d: %w", o.Year, err)
		}
		for _, f := range o.Flips {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO flips (run_id, year, state, ev, votes, winner_after, runner_up_after) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				run.ID, o.Year, f.State, f.EV, f.VotesToFlip, f.WinnerVotesAfter, f.RunnerUpVotesAfter,
			); err != nil {
				return "", fmt.Errorf("history: insert flip %d/%s: %w", o.Year, f.State, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("history: commit: %w", err)
	}

	return run.ID, nil
}

// Runs lists the most recent runs first; limit ≤ 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	q := `SELECT r.id, r.created_at, r.input, r.threshold, r.cost_model,
	             COUNT(o.year), COALESCE(SUM(o.votes_flipped), 0)
	      FROM runs r LEFT JOIN outcomes o ON o.run_id = r.id
	      GROUP BY r.id
	      ORDER BY r.created_at DESC, r.id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			r  RunSummary
			ts string
		)
		if err = rows.Scan(&r.ID, &ts, &r.Input, &r.Threshold, &r.CostModel, &r.Years, &r.VotesFlipped); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(tsLayout, ts); err != nil {
			return nil, fmt.Errorf("history: run %s time: %w", r.ID, err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Flips returns the recorded flips of one run and year, ordered by state.
func (s *Store) Flips(ctx context.Context, runID string, year int) ([]closeness.Flip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT state, ev, votes, winner_after, runner_up_after FROM flips
		 WHERE run_id = ? AND year = ? ORDER BY state`, runID, year)
	if err != nil {
		return nil, fmt.Errorf("history: flips: %w", err)
	}
	defer rows.Close()

	var out []closeness.Flip
	for rows.Next() {
		var f closeness.Flip
		if err = rows.Scan(&f.State, &f.EV, &f.VotesToFlip, &f.WinnerVotesAfter, &f.RunnerUpVotesAfter); err != nil {
			return nil, fmt.Errorf("history: scan flip: %w", err)
		}
		out = append(out, f)
	}

	return out, rows.Err()
}

// Outcome rebuilds one recorded year with its flips. The solver statistics
// (LowerBound, Nodes) are not stored and come back zero.
func (s *Store) Outcome(ctx context.Context, runID string, year int) (closeness.Outcome, error) {
	var (
		o                 closeness.Outcome
		winner, runnerUp  string
		winnerEV          int
		status, costModel string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT o.dem_candidate, o.rep_candidate, o.winner, o.runner_up, o.winner_ev, o.runner_up_ev,
		        o.needed_ev, o.ev_flipped, o.votes_flipped, o.status, r.cost_model
		 FROM outcomes o JOIN runs r ON r.id = o.run_id
		 WHERE o.run_id = ? AND o.year = ?`, runID, year,
	).Scan(&o.DemCandidate, &o.RepCandidate, &winner, &runnerUp, &winnerEV, &o.Tally.RunnerUpEV,
		&o.NeededEV, &o.EVFlipped, &o.VotesFlipped, &status, &costModel)
	if errors.Is(err, sql.ErrNoRows) {
		return o, fmt.Errorf("history: run %s year %d: %w", runID, year, ErrNotFound)
	}
	if err != nil {
		return o, fmt.Errorf("history: outcome: %w", err)
	}

	o.Year = year
	if o.Tally.Winner, err = election.ParseParty(winner); err != nil {
		return o, fmt.Errorf("history: winner %q: %w", winner, err)
	}
	if o.Tally.RunnerUp, err = election.ParseParty(runnerUp); err != nil {
		return o, fmt.Errorf("history: runner-up %q: %w", runnerUp, err)
	}
	if o.Tally.Winner == election.DEM {
		o.Tally.DemEV, o.Tally.RepEV = winnerEV, o.Tally.RunnerUpEV
	} else {
		o.Tally.DemEV, o.Tally.RepEV = o.Tally.RunnerUpEV, winnerEV
	}
	if o.Status, err = cover.ParseStatus(status); err != nil {
		return o, fmt.Errorf("history: status %q: %w", status, err)
	}
	if o.CostModel, err = election.ParseCostModel(costModel); err != nil {
		return o, fmt.Errorf("history: cost model %q: %w", costModel, err)
	}

	if o.Flips, err = s.Flips(ctx, runID, year); err != nil {
		return o, err
	}

	return o, nil
}
