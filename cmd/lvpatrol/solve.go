package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/obstruction"
)

func newSolveCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print part A and part B for a lab map",
		Long: `Run the baseline patrol and the obstruction search.

Examples:
  # Solve a file
  lvpatrol solve input.txt

  # Solve from stdin with four workers
  cat input.txt | lvpatrol solve --workers 4 -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			log.Debug("grid loaded", zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()))

			rep, err := obstruction.Solve(cmd.Context(), g,
				obstruction.WithWorkers(cfg.Search.Workers),
				obstruction.WithLogger(log),
			)
			if errors.Is(err, obstruction.ErrDegenerateBaseline) {
				log.Warn("baseline patrol never leaves the map", zap.Stringer("start", rep.Start))
				fmt.Fprintf(cmd.OutOrStdout(), "part A: %d (loop)\n", rep.Visited)
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "part A: %d\npart B: %d\n", rep.Visited, rep.Obstructions)
			return nil
		},
	}
}
