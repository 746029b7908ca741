package cmd

import (
	"github.com/nathanhack/lincode/cmd/internal/create/gallager"
	"github.com/nathanhack/lincode/cmd/internal/create/hamming"
	"github.com/nathanhack/lincode/cmd/internal/create/regular"
	"github.com/nathanhack/lincode/cmd/internal/create/repetition"
	"github.com/nathanhack/lincode/cmd/internal/tools"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new code",
	Long:    `create builds a code from the list of built-in codes and prints a JSON summary of its parameters.`,
}

// createlinearblockCmd represents the linearblock command
var createlinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "creates linearblock codes",
	Long:    `Creates linearblock codes.`,
}

// createldpcCmd represents the ldpc command
var createldpcCmd = &cobra.Command{
	Use:     "ldpc",
	Aliases: []string{"l"},
	Short:   "creates LDPC",
	Long:    `Creates linearblock codes known as Low Density Parity Check (LDPC)`,
}

// createGallagerCmd represents the gallager command
var createGallagerCmd = &cobra.Command{
	Use:     "gallager",
	Aliases: []string{"g"},
	Short:   "Creates a new Gallager LDPC",
	Long:    `Creates a new Gallager LDPC. Note a small cycle has a negative effect on the effectiveness of the LDPC.`,
	Args:    cobra.NoArgs,
	Run:     gallager.GallagerRun,
}

// createRegularCmd represents the regular command
var createRegularCmd = &cobra.Command{
	Use:     "regular",
	Aliases: []string{"r"},
	Short:   "Creates a random regular LDPC",
	Long:    `Creates a random regular LDPC by pairing bit and check stubs at random. Parallel edges are collapsed so degrees may be lower than requested.`,
	Args:    cobra.NoArgs,
	Run:     regular.RegularRun,
}

// createHammingCmd represents the Hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new Hamming code",
	Long:    `Creates a new Hamming code.`,
	Args:    cobra.NoArgs,
	Run:     hamming.HammingRun,
}

// createRepetitionCmd represents the repetition command
var createRepetitionCmd = &cobra.Command{
	Use:     "repetition",
	Aliases: []string{"rep"},
	Short:   "Creates a new repetition code",
	Long:    `Creates a new repetition code, the code whose only nonzero codeword is all ones.`,
	Args:    cobra.NoArgs,
	Run:     repetition.RepetitionRun,
}

func addSummaryFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&tools.Distance, "distance", "d", false, "compute the minimal distance (exhaustive, may be slow)")
	cmd.Flags().DurationVar(&tools.Timeout, "timeout", 0, "stop the minimal distance search after this long; note 0 means no limit")
	cmd.Flags().UintVarP(&tools.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	cmd.Flags().BoolVarP(&tools.Matrix, "matrix", "m", false, "include the parity check matrix in the summary")
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createlinearblockCmd)
	createlinearblockCmd.AddCommand(createldpcCmd)

	createldpcCmd.AddCommand(createGallagerCmd)
	createGallagerCmd.Flags().UintVarP(&gallager.Checks, "checks", "c", 30, "the number of checks (rows of H), a multiple of column")
	createGallagerCmd.Flags().UintVar(&gallager.Wc, "column", 3, "the column weight (number of ones in the H matrix column)")
	createGallagerCmd.Flags().UintVarP(&gallager.Wr, "row", "r", 4, "the row weight (number of ones in the H matrix row)")
	createGallagerCmd.Flags().UintVarP(&gallager.Smallest, "smallest", "s", 4, "the smallest allowed cycle: 4, 6, 8...")
	createGallagerCmd.Flags().UintVarP(&gallager.Iter, "iter", "i", 10000, "the number of iterations to try before terminating the search")
	createGallagerCmd.Flags().Int64Var(&gallager.Seed, "seed", 0, "random seed; note 0 means seed from the clock")
	addSummaryFlags(createGallagerCmd)

	createldpcCmd.AddCommand(createRegularCmd)
	createRegularCmd.Flags().UintVarP(&regular.Bits, "bits", "b", 12, "the number of bits (columns of H)")
	createRegularCmd.Flags().UintVarP(&regular.Checks, "checks", "c", 9, "the number of checks (rows of H)")
	createRegularCmd.Flags().UintVar(&regular.BitDegree, "bit-degree", 3, "the number of checks per bit")
	createRegularCmd.Flags().UintVar(&regular.CheckDegree, "check-degree", 4, "the number of bits per check")
	createRegularCmd.Flags().UintVar(&regular.Retries, "retries", 0, "reshuffles tried to avoid parallel edges before collapsing them")
	createRegularCmd.Flags().Int64Var(&regular.Seed, "seed", 0, "random seed; note 0 means seed from the clock")
	addSummaryFlags(createRegularCmd)

	createlinearblockCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParityBits, "parity", "p", 3, "the parity >=2, sets codeword size (cs) == 2^parity-1 and message size == cs-parity")
	addSummaryFlags(createHammingCmd)

	createlinearblockCmd.AddCommand(createRepetitionCmd)
	createRepetitionCmd.Flags().UintVarP(&repetition.Length, "length", "n", 5, "the block length >=1")
	addSummaryFlags(createRepetitionCmd)
}
