// Command evflip finds, for each presidential election, the cheapest set of
// states whose popular vote would have to change to reverse the Electoral
// College result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/evflip/config"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "evflip",
		Short: "Smallest popular-vote shifts that reverse Electoral College results",
		Long: `evflip reads state-level results from an .xlsx workbook (one sheet per year),
solves a 0/1 covering knapsack per year and writes the cheapest set of state
flips that would have handed the election to the runner-up.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if a.configPath != "" {
				var err error
				if cfg, err = config.Load(a.configPath); err != nil {
					return err
				}
			}
			a.cfg = cfg

			logger, err := cfg.Log.Logger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("configuration loaded",
				zap.String("config", a.configPath),
				zap.String("input", cfg.Input),
				zap.Ints("years", cfg.Years))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (.toml, .yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newSolveCmd(a), newShowCmd(a), newHistoryCmd(a))

	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
