package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerntune/kerntune/geometry"
	"github.com/kerntune/kerntune/search"
	"github.com/kerntune/kerntune/session"
)

func newRunCmd() *cobra.Command {
	var strategy string
	var fraction float64
	var seed uint64
	var matrixSize int
	var reportDir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a tuning session against the sample GEMM kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, eng, err := gemmParams()
			if err != nil {
				return err
			}

			geo := geometry.NewModel([]uint64{uint64(matrixSize), uint64(matrixSize)}, []uint64{1, 1})
			geo.AddModifier(geometry.Modifier{Target: geometry.Global, Axis: 0, Param: "WPT", Op: geometry.Divide})
			geo.AddModifier(geometry.Modifier{Target: geometry.Local, Axis: 0, Param: "TS", Op: geometry.Multiply})
			geo.AddModifier(geometry.Modifier{Target: geometry.Local, Axis: 1, Param: "TS", Op: geometry.Multiply})

			tag, opts, err := strategyOptions(strategy, fraction, seed)
			if err != nil {
				return err
			}

			sess, err := session.New(reg, eng, geo, tag, opts)
			if err != nil {
				return err
			}

			eval := newGEMMEvaluator(matrixSize, seed)
			report, err := sess.Run(context.Background(), eval)
			if err != nil {
				return err
			}

			fmt.Printf("session %s: visited %d/%d\n", report.SessionID, report.Visited, report.Budget)
			if report.Best != nil {
				cfg := sess.Space().At(report.Best.Index)
				fmt.Printf("best: index=%d cost=%.6fs TS=%d WPT=%d VW=%d\n",
					report.Best.Index, report.Best.Cost.Seconds,
					cfg.Value("TS"), cfg.Value("WPT"), cfg.Value("VW"))
			} else {
				fmt.Println("no feasible configuration found")
			}

			if reportDir != "" {
				path, err := report.WriteJSON(reportDir)
				if err != nil {
					return err
				}
				fmt.Printf("report written to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "full", "search strategy: full, random, annealing, pso")
	cmd.Flags().Float64Var(&fraction, "fraction", 0.25, "fraction of the space to sample (random/annealing/pso)")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "PRNG seed")
	cmd.Flags().IntVar(&matrixSize, "size", 128, "GEMM matrix dimension (size x size)")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "directory to write a JSON session report to, if set")
	return cmd
}

func strategyOptions(strategy string, fraction float64, seed uint64) (search.StrategyTag, search.Options, error) {
	switch strategy {
	case "full":
		return search.Full, search.FullOptions{}, nil
	case "random":
		return search.Random, search.RandomOptions{Fraction: fraction, Seed: seed}, nil
	case "annealing":
		return search.Annealing, search.AnnealingOptions{Fraction: fraction, MaxTemperature: 1.0, Seed: seed}, nil
	case "pso":
		return search.PSO, search.PSOOptions{Fraction: fraction, Swarms: 5, W: 0.5, C1: 1.5, C2: 1.5, Seed: seed}, nil
	default:
		return 0, nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}
