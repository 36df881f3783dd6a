package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <model>",
	Short: "Draws random samples from a built-in model",
	Long: `Evaluates a built-in model up to the depth bound, then draws random
samples from the resolved distribution and prints the observed frequencies.
Mass that is still unknown at the bound cannot be sampled and is reported
separately.

Examples:
  prob sample two-dice --draws 10000
  prob sample gamblers-ruin --seed 42`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		draws, _ := cmd.Flags().GetInt("draws")
		seed, _ := cmd.Flags().GetInt64("seed")

		if draws <= 0 {
			fmt.Fprintf(os.Stderr, "Error: --draws must be positive, got %d\n", draws)
			os.Exit(1)
		}
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		model, ok := findBuiltin(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: Unknown model '%s'. Valid models: %s\n",
				name, strings.Join(builtinNames(), ", "))
			os.Exit(1)
		}

		if err := model.Sample(resolveDepth(cmd), draws, seed); err != nil {
			fmt.Fprintf(os.Stderr, "Error sampling '%s': %v\n", name, err)
			os.Exit(1)
		}
	},
}

func init() {
	AddCommand(sampleCmd)
	sampleCmd.Flags().Int("draws", 1000, "Number of samples to draw")
	sampleCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
	addModelFlags(sampleCmd)
}
