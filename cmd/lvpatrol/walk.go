package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/grid"
	"github.com/katalvlaran/lvpatrol/obstruction"
)

func newWalkCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "walk [file|-]",
		Short: "Run only the baseline patrol and print its outcome",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			start, err := g.FindStart(grid.Start)
			if err != nil {
				return err
			}
			res, err := obstruction.Baseline(g, start)
			if err != nil {
				return err
			}
			log.Debug("baseline done", zap.Stringer("outcome", res.Outcome), zap.Int("steps", res.Steps))

			fmt.Fprintf(cmd.OutOrStdout(), "part A: %d\noutcome: %s\n", res.Visited.Len(), res.Outcome)
			return nil
		},
	}
}
