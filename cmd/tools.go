package cmd

import (
	"github.com/nathanhack/lincode/cmd/internal/tools"
	"github.com/nathanhack/lincode/cmd/internal/tools/bsc"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for linear codes",
	Long:    `Tools for linear codes`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "A binary symmetric channel simulator",
	Long: `A binary symmetric channel simulator. It creates a random regular LDPC and decodes
random codewords sent over the channel with the gallager bit flipping algorithm.`,
	Args: cobra.NoArgs,
	Run:  bsc.BscRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsBscCmd)

	toolsBscCmd.Flags().UintVarP(&bsc.Bits, "bits", "b", 96, "the number of bits (columns of H)")
	toolsBscCmd.Flags().UintVarP(&bsc.Checks, "checks", "c", 48, "the number of checks (rows of H)")
	toolsBscCmd.Flags().UintVar(&bsc.BitDegree, "bit-degree", 3, "the number of checks per bit")
	toolsBscCmd.Flags().UintVar(&bsc.CheckDegree, "check-degree", 6, "the number of bits per check")
	toolsBscCmd.Flags().Int64Var(&bsc.Seed, "seed", 0, "random seed; note 0 means seed from the clock")
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "n", 10_000, "the number of trials per probability")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.01, 0.02, 0.05, 0.10}, "probability of crossover errors to test [0, 1]")
	toolsBscCmd.Flags().UintVar(&tools.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBscCmd.Flags().UintVarP(&bsc.MaxIter, "iters", "i", 20, "max number of iterations the bitflip algorithm is allowed")
	toolsBscCmd.Flags().BoolVar(&bsc.Progress, "progress", false, "show a progress bar")
}
