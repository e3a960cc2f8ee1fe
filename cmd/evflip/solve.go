package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/evflip/closeness"
	"github.com/katalvlaran/evflip/config"
	"github.com/katalvlaran/evflip/history"
	"github.com/katalvlaran/evflip/report"
	"github.com/katalvlaran/evflip/sheet"
)

// solveFlags override config values when set on the command line.
type solveFlags struct {
	input, output, years   string
	threshold              int
	costModel, algo, bound string
	timeLimit              time.Duration
	workers                int
	db                     string
	quiet                  bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every configured year and write the output workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.apply(cmd, &a.cfg); err != nil {
				return err
			}
			return a.solve(cmd.Context(), f.years == "all", f.quiet)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "input workbook")
	fl.StringVarP(&f.output, "output", "o", "", "output workbook")
	fl.StringVar(&f.years, "years", "", `years, e.g. "2000-2020/4,2024" or "all" for every year sheet`)
	fl.IntVar(&f.threshold, "threshold", 0, "electoral votes needed to win")
	fl.StringVar(&f.costModel, "cost-model", "", "turnout or swing")
	fl.StringVar(&f.algo, "algo", "", "auto, dp or bnb")
	fl.StringVar(&f.bound, "bound", "", "branch-and-bound lower bound: dantzig, none or lp")
	fl.DurationVar(&f.timeLimit, "time-limit", 0, "per-year branch-and-bound time limit")
	fl.IntVar(&f.workers, "workers", 0, "years solved concurrently")
	fl.StringVar(&f.db, "db", "", "record the run in this SQLite file")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "skip console reports")

	return cmd
}

func (f *solveFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = f.input
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("years") && f.years != "all" {
		years, err := config.ParseYears(f.years)
		if err != nil {
			return err
		}
		cfg.Years = years
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("cost-model") {
		cfg.CostModel = f.costModel
	}
	if changed("algo") {
		cfg.Solver.Algo = f.algo
	}
	if changed("bound") {
		cfg.Solver.Bound = f.bound
	}
	if changed("time-limit") {
		cfg.Solver.TimeLimit = f.timeLimit.String()
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("db") {
		cfg.DB = f.db
	}

	return cfg.Validate()
}

func (a *app) solve(ctx context.Context, allYears, quiet bool) error {
	cfg := a.cfg
	opts, err := cfg.ClosenessOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := sheet.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer r.Close()
	r.MaxStates = cfg.MaxStates

	years := cfg.Years
	if allYears {
		if years = r.Years(); len(years) == 0 {
			return fmt.Errorf("%s: no year sheets", cfg.Input)
		}
	}

	runner := closeness.NewRunner(r)
	runner.Options = opts
	runner.Workers = cfg.Workers
	runner.Logger = a.logger

	start := time.Now()
	outcomes, err := runner.Run(ctx, years)
	if err != nil {
		return err
	}
	a.logger.Info("run solved", zap.Int("years", len(outcomes)), zap.Duration("elapsed", time.Since(start)))

	if !quiet {
		for _, o := range outcomes {
			y, err := r.ReadYear(ctx, o.Year)
			if err != nil {
				return err
			}
			if err = report.Year(a.out, y, opts.CostModel); err != nil {
				return err
			}
			if err = report.Outcome(a.out, o); err != nil {
				return err
			}
		}
	}

	w, err := sheet.NewWriter()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, o := range outcomes {
		if err = w.AddOutcome(o); err != nil {
			return err
		}
	}
	if err = w.Save(cfg.Output); err != nil {
		return err
	}
	a.logger.Info("output written", zap.String("path", cfg.Output))

	if cfg.DB == "" {
		return nil
	}

	return a.record(ctx, cfg, opts, outcomes)
}

func (a *app) record(ctx context.Context, cfg config.Config, opts closeness.Options, outcomes []closeness.Outcome) error {
	store, err := history.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(ctx, history.Run{
		CreatedAt: time.Now(),
		Input:     cfg.Input,
		Threshold: opts.Threshold,
		CostModel: opts.CostModel.String(),
		Outcomes:  outcomes,
	})
	if err != nil {
		return err
	}
	a.logger.Info("run recorded", zap.String("run", id), zap.String("db", cfg.DB))
	_, err = fmt.Fprintf(a.out, "recorded run %s\n", id)

	return err
}
