package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerntune/kerntune/constraint"
	"github.com/kerntune/kerntune/param"
	"github.com/kerntune/kerntune/space"
)

// gemmParams registers the sample parameter space shared by every
// subcommand: tile size, work-per-thread, and vector width for a tiled
// GEMM kernel, with the same divisibility constraint CLTune's own GEMM
// sample tuner applies (TS must be a multiple of WPT).
func gemmParams() (*param.Registry, *constraint.Engine, error) {
	reg := param.NewRegistry()
	if err := reg.Add("TS", []int64{16, 32, 64, 128}); err != nil {
		return nil, nil, err
	}
	if err := reg.Add("WPT", []int64{1, 2, 4, 8}); err != nil {
		return nil, nil, err
	}
	if err := reg.Add("VW", []int64{1, 2, 4}); err != nil {
		return nil, nil, err
	}

	eng := constraint.NewEngine(reg)
	if err := eng.Add([]string{"TS", "WPT"}, func(v []int64) bool {
		return v[0]%v[1] == 0
	}); err != nil {
		return nil, nil, err
	}
	if err := eng.Add([]string{"TS", "VW"}, func(v []int64) bool {
		return v[0]%v[1] == 0
	}); err != nil {
		return nil, nil, err
	}
	return reg, eng, nil
}

func newSpaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "space",
		Short: "Enumerate the sample GEMM tuning space and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, eng, err := gemmParams()
			if err != nil {
				return err
			}
			sp, err := space.Build(reg, eng)
			if err != nil {
				return err
			}
			fmt.Printf("%d feasible configurations\n", sp.Len())
			for i := 0; i < sp.Len(); i++ {
				cfg := sp.At(i)
				fmt.Printf("  [%3d] TS=%-4d WPT=%-2d VW=%-2d\n", i, cfg.Value("TS"), cfg.Value("WPT"), cfg.Value("VW"))
			}
			return nil
		},
	}
}
