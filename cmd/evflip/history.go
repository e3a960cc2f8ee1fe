package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evflip/history"
	"github.com/katalvlaran/evflip/report"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		db    string
		limit int
		runID string
		year  int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, or show one recorded year with --run and --year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("db") {
				a.cfg.DB = db
			}
			if a.cfg.DB == "" {
				return fmt.Errorf("history: no database; pass --db or set db in the config")
			}
			if (runID == "") != (year == 0) {
				return fmt.Errorf("history: --run and --year go together")
			}

			store, err := history.Open(cmd.Context(), a.cfg.DB)
			if err != nil {
				return err
			}
			defer store.Close()

			if runID != "" {
				o, err := store.Outcome(cmd.Context(), runID, year)
				if err != nil {
					return err
				}
				return report.Outcome(a.out, o)
			}

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			return report.Runs(a.out, runs)
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite run history")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "runs to list, 0 for all")
	cmd.Flags().StringVar(&runID, "run", "", "recorded run id")
	cmd.Flags().IntVar(&year, "year", 0, "year of the recorded run to show")

	return cmd
}
