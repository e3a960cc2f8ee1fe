// Package config loads evflip settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evflip/closeness"
	"github.com/katalvlaran/evflip/cover"
	"github.com/katalvlaran/evflip/election"
)

// Config holds all evflip settings.
type Config struct {
	Input     string `toml:"input" yaml:"input"`
	Output    string `toml:"output" yaml:"output"`
	Years     []int  `toml:"years" yaml:"years"`
	Threshold int    `toml:"threshold" yaml:"threshold"`
	CostModel string `toml:"cost_model" yaml:"cost_model"` // turnout, swing
	Workers   int    `toml:"workers" yaml:"workers"`
	MaxStates int    `toml:"max_states" yaml:"max_states"`
	DB        string `toml:"db" yaml:"db"` // empty disables run history

	Solver SolverConfig `toml:"solver" yaml:"solver"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// SolverConfig selects the exact solver.
type SolverConfig struct {
	Algo      string `toml:"algo" yaml:"algo"`             // auto, dp, bnb
	Bound     string `toml:"bound" yaml:"bound"`           // dantzig, none, lp
	TimeLimit string `toml:"time_limit" yaml:"time_limit"` // Go duration, "" = unlimited
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // json, console
}

// DefaultYears are the six elections of the classic analysis.
func DefaultYears() []int {
	return []int{2000, 2004, 2008, 2012, 2016, 2020}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:     "election_data.xlsx",
		Output:    "election_outputs.xlsx",
		Years:     DefaultYears(),
		Threshold: closeness.DefaultThreshold,
		CostModel: election.Turnout.String(),
		Workers:   4,
		MaxStates: 51,
		Solver:    SolverConfig{Algo: cover.Auto.String(), Bound: cover.DantzigBound.String()},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults; the format follows the extension
// (.toml, .yaml, .yml).
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that flags and files can get wrong.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input is required")
	}
	if len(c.Years) == 0 {
		return fmt.Errorf("at least one year is required")
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", c.Threshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("log format %q: want json or console", c.Log.Format)
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log level %q: %w", c.Log.Level, err)
		}
	}
	_, err := c.ClosenessOptions()

	return err
}

// ClosenessOptions converts the settings into analysis options.
func (c Config) ClosenessOptions() (closeness.Options, error) {
	opts := closeness.DefaultOptions()
	opts.Threshold = c.Threshold

	var err error
	if opts.CostModel, err = election.ParseCostModel(c.CostModel); err != nil {
		return opts, fmt.Errorf("cost_model %q: %w", c.CostModel, err)
	}
	if opts.Solver.Algo, err = cover.ParseAlgorithm(c.Solver.Algo); err != nil {
		return opts, fmt.Errorf("solver.algo %q: %w", c.Solver.Algo, err)
	}
	if opts.Solver.Bound, err = cover.ParseBound(c.Solver.Bound); err != nil {
		return opts, fmt.Errorf("solver.bound %q: %w", c.Solver.Bound, err)
	}
	if c.Solver.TimeLimit != "" {
		if opts.Solver.TimeLimit, err = time.ParseDuration(c.Solver.TimeLimit); err != nil {
			return opts, fmt.Errorf("solver.time_limit: %w", err)
		}
		if opts.Solver.TimeLimit < 0 {
			return opts, fmt.Errorf("solver.time_limit must not be negative")
		}
	}

	return opts, nil
}

// MaxYears caps how many years one ParseYears call may expand to.
const MaxYears = 1000

// ParseYears accepts a comma-separated list whose items are single years or
// ranges with an optional step: "2000,2004", "2000-2020/4", "1992-2000/4,2008".
func ParseYears(spec string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		step := 1
		if rng, st, ok := strings.Cut(part, "/"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(st))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("years %q: bad step %q", spec, st)
			}
			part, step = rng, n
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("years %q: bad year %q", spec, lo)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || to < from {
				return nil, fmt.Errorf("years %q: bad range %q", spec, part)
			}
		}
		n := (to-from)/step + 1
		if len(years)+n > MaxYears {
			return nil, fmt.Errorf("years %q: more than %d years", spec, MaxYears)
		}
		for k := 0; k < n; k++ {
			years = append(years, from+k*step)
		}
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("years %q: empty", spec)
	}

	return years, nil
}
