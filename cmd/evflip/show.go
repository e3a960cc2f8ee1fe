package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evflip/closeness"
	"github.com/katalvlaran/evflip/report"
	"github.com/katalvlaran/evflip/sheet"
)

func newShowCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "show YEAR",
		Short: "Print one year's state table and its closest reversal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year %q: %w", args[0], err)
			}
			if cmd.Flags().Changed("input") {
				a.cfg.Input = input
			}
			opts, err := a.cfg.ClosenessOptions()
			if err != nil {
				return err
			}

			r, err := sheet.Open(a.cfg.Input)
			if err != nil {
				return err
			}
			defer r.Close()
			r.MaxStates = a.cfg.MaxStates

			y, err := r.ReadYear(cmd.Context(), year)
			if err != nil {
				return err
			}
			if err = report.Year(a.out, y, opts.CostModel); err != nil {
				return err
			}
			o, err := closeness.Analyze(y, opts)
			if err != nil {
				return err
			}

			return report.Outcome(a.out, o)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input workbook")

	return cmd
}
