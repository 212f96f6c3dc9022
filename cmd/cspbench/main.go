// Command cspbench is the benchmark harness: result-file creation and
// wall-clock timing stay out of pkg/csp itself, so this thin driver
// owns them instead, solving instances from the examples/nqueens and
// examples/sudoku packages and writing one
// "<elapsed_seconds> <backtrack_count>\n" line per solved instance to an
// output file truncated on start.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/examples/nqueens"
	"github.com/gitrdm/gocsp/examples/sudoku"
	"github.com/gitrdm/gocsp/internal/gridio"
	"github.com/gitrdm/gocsp/pkg/csp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		puzzleSet  string
		out        string
		queensN    int
		strategy   string
		savePuzzle string
		verbose    bool
	)

	log := logrus.New()

	root := &cobra.Command{
		Use:   "cspbench",
		Short: "Benchmark harness for the gocsp solving engine",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Solve one instance per requested puzzle kind and append timing/backtrack-count lines to --out",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts *csp.Options
			if verbose {
				log.SetLevel(logrus.DebugLevel)
				opts = &csp.Options{Logger: logrus.NewEntry(log)}
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("cspbench: opening %s: %w", out, err)
			}
			defer f.Close()

			strat, err := parseStrategy(strategy)
			if err != nil {
				return err
			}

			for _, kind := range strings.Split(puzzleSet, ",") {
				kind = strings.TrimSpace(kind)
				if kind == "" {
					continue
				}
				elapsed, backtracks, err := runInstance(kind, queensN, strat, savePuzzle, opts)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(f, "%f %d\n", elapsed.Seconds(), backtracks); err != nil {
					return fmt.Errorf("cspbench: writing %s: %w", out, err)
				}
				log.WithFields(logrus.Fields{
					"puzzle":     kind,
					"elapsed_s":  elapsed.Seconds(),
					"backtracks": backtracks,
				}).Info("solved instance")
			}
			return nil
		},
	}

	run.Flags().StringVar(&puzzleSet, "puzzle-set", "nqueens,sudoku", "comma-separated list of instances to solve: nqueens, sudoku")
	run.Flags().StringVar(&out, "out", "results.txt", "benchmark output file, truncated on start")
	run.Flags().IntVar(&queensN, "queens", 8, "board size for the nqueens instance")
	run.Flags().StringVar(&strategy, "strategy", "ovars", "search strategy: plain, fc, or ovars")
	run.Flags().StringVar(&savePuzzle, "save-puzzle", "", "write the generated sudoku instance to this file in the binary puzzle format")
	run.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level solver tracing")

	root.AddCommand(run)
	return root
}

func parseStrategy(s string) (int, error) {
	switch strings.ToLower(s) {
	case "plain":
		return strategyPlain, nil
	case "fc":
		return strategyFC, nil
	case "ovars":
		return strategyOVars, nil
	default:
		return 0, fmt.Errorf("cspbench: unknown strategy %q (want plain, fc, or ovars)", s)
	}
}

const (
	strategyPlain = iota
	strategyFC
	strategyOVars
)

func runInstance(kind string, queensN, strategy int, savePuzzle string, opts *csp.Options) (time.Duration, int, error) {
	switch kind {
	case "nqueens":
		start := time.Now()
		_, stats, ok := nqueens.Solve(queensN, nqueensStrategy(strategy), opts)
		elapsed := time.Since(start)
		if !ok {
			return elapsed, stats.Backtracks, fmt.Errorf("cspbench: nqueens n=%d has no solution", queensN)
		}
		return elapsed, stats.Backtracks, nil
	case "sudoku":
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		givens := sudoku.Generate(rng, sudoku.MinClues)
		if savePuzzle != "" {
			if err := writePuzzleFile(savePuzzle, givens); err != nil {
				return 0, 0, err
			}
		}
		pz := sudoku.Build(givens)
		start := time.Now()
		_, stats, ok := pz.Solve(sudokuStrategy(strategy), opts)
		elapsed := time.Since(start)
		if !ok {
			return elapsed, stats.Backtracks, fmt.Errorf("cspbench: generated sudoku puzzle has no solution")
		}
		return elapsed, stats.Backtracks, nil
	default:
		return 0, 0, fmt.Errorf("cspbench: unknown puzzle kind %q (want nqueens or sudoku)", kind)
	}
}

func writePuzzleFile(path string, givens sudoku.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cspbench: opening %s: %w", path, err)
	}
	defer f.Close()
	if err := gridio.WriteSudokuBinary(f, givens); err != nil {
		return fmt.Errorf("cspbench: writing %s: %w", path, err)
	}
	return nil
}

func nqueensStrategy(s int) nqueens.Strategy {
	switch s {
	case strategyFC:
		return nqueens.StrategyForwardCheck
	case strategyOVars:
		return nqueens.StrategyOVars
	default:
		return nqueens.StrategyPlain
	}
}

func sudokuStrategy(s int) sudoku.Strategy {
	switch s {
	case strategyFC:
		return sudoku.StrategyForwardCheck
	case strategyOVars:
		return sudoku.StrategyOVars
	default:
		return sudoku.StrategyPlain
	}
}
