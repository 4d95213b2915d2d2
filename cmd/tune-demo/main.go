// Command tune-demo exercises the tuning core end to end against the CPU
// GEMM stand-in in internal/kernel, standing in for an external GPU-API
// wrapper layer. It is a thin CLI, not part of the core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "tune-demo",
		Short: "Demo driver for the kernel auto-tuner core",
	}
	root.AddCommand(newSpaceCmd())
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
