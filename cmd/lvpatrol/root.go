package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/grid"
	"github.com/katalvlaran/lvpatrol/internal/config"
	"github.com/katalvlaran/lvpatrol/internal/logging"
)

// flags shared by all subcommands.
type rootFlags struct {
	configPath string
	logLevel   string
	workers    int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "lvpatrol",
		Short: "Simulate a guard patrol and search for loop-inducing obstructions",
		Long: `lvpatrol reads a lab map ('#' obstacle, '^' guard facing up) and reports:
  part A: distinct cells the guard visits before leaving the map
  part B: cells where one extra obstacle traps the guard in a loop`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&f.workers, "workers", 0, "parallel candidate runs (0 = config or GOMAXPROCS)")

	root.AddCommand(newSolveCmd(f))
	root.AddCommand(newWalkCmd(f))

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (f *rootFlags) setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.workers > 0 {
		cfg.Search.Workers = f.workers
	}
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// readGrid parses the lab from a file path, or stdin when path is "-" or empty.
func readGrid(cmd *cobra.Command, args []string) (*grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return grid.Parse(string(data))
}
