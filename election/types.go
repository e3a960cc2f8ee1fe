package election

import "errors"

// Sentinel errors returned by Validate and the party helpers.
var (
	// ErrNoStates indicates a Year without any state rows.
	ErrNoStates = errors.New("election: year has no states")

	// ErrEmptyState indicates a row whose state code is blank.
	ErrEmptyState = errors.New("election: empty state code")

	// ErrDuplicateState indicates the same state code appears twice.
	ErrDuplicateState = errors.New("election: duplicate state code")

	// ErrNegativeEV indicates a negative electoral-vote count.
	ErrNegativeEV = errors.New("election: negative electoral votes")

	// ErrNegativeVotes indicates a negative popular-vote total.
	ErrNegativeVotes = errors.New("election: negative popular votes")

	// ErrUnknownParty is returned when parsing an unrecognized party label.
	ErrUnknownParty = errors.New("election: unknown party")

	// ErrUnknownCostModel is returned when parsing an unrecognized cost model.
	ErrUnknownCostModel = errors.New("election: unknown cost model")
)

// Party identifies one of the two major parties.
type Party int

const (
	// None marks "no winner" (an exact tie in a state).
	None Party = iota
	// DEM is the Democratic Party.
	DEM
	// REP is the Republican Party.
	REP
)

// String returns the short label used in spreadsheets ("DEM", "REP", "-").
func (p Party) String() string {
	switch p {
	case DEM:
		return "DEM"
	case REP:
		return "REP"
	default:
		return "-"
	}
}

// Other returns the opposing party; None maps to None.
func (p Party) Other() Party {
	switch p {
	case DEM:
		return REP
	case REP:
		return DEM
	default:
		return None
	}
}

// ParseParty accepts "DEM"/"D" and "REP"/"R" (case-sensitive, as written in sheets).
func ParseParty(s string) (Party, error) {
	switch s {
	case "DEM", "D":
		return DEM, nil
	case "REP", "R":
		return REP, nil
	}

	return None, ErrUnknownParty
}

// CostModel decides how many popular votes it takes to flip a state.
//
//   - Turnout — the runner-up gains new votes: |D−R| + 1.
//   - Swing   — voters switch from winner to runner-up: ⌊|D−R|/2⌋ + 1.
type CostModel int

const (
	// Turnout counts additional runner-up votes (default).
	Turnout CostModel = iota
	// Swing counts voters changing sides; each one moves the margin by two.
	Swing
)

// String returns the lower-case name used by flags and config files.
func (m CostModel) String() string {
	if m == Swing {
		return "swing"
	}

	return "turnout"
}

// ParseCostModel parses "turnout" or "swing"; the empty string means Turnout.
func ParseCostModel(s string) (CostModel, error) {
	switch s {
	case "", "turnout":
		return Turnout, nil
	case "swing":
		return Swing, nil
	}

	return Turnout, ErrUnknownCostModel
}

// StateResult is one row of a year's results.
type StateResult struct {
	State    string // two-letter code, e.g. "FL"
	EV       int    // electoral votes
	DemVotes int64  // Democratic popular vote
	RepVotes int64  // Republican popular vote
}

// Year holds every state's result for one presidential election.
type Year struct {
	Year         int
	DemCandidate string
	RepCandidate string
	States       []StateResult
}

// Tally is the national Electoral College count derived from a Year.
type Tally struct {
	DemEV      int
	RepEV      int
	Winner     Party
	RunnerUp   Party
	RunnerUpEV int
}

// EV returns the electoral votes credited to p.
func (t Tally) EV(p Party) int {
	switch p {
	case DEM:
		return t.DemEV
	case REP:
		return t.RepEV
	default:
		return 0
	}
}
