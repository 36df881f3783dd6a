package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <model>",
	Short: "Evaluates a built-in model and prints its distribution",
	Long: `Evaluates one of the built-in models up to the depth bound and prints
the resulting distribution. Branches that do not resolve within the bound are
shown as a single "unknown" row.

Examples:
  prob run two-dice
  prob run first-heads --bias 0.3 --depth 20
  prob run monty-hall-switch --json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		outputJSON, _ := cmd.Flags().GetBool("json")

		model, ok := findBuiltin(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: Unknown model '%s'. Valid models: %s\n",
				name, strings.Join(builtinNames(), ", "))
			os.Exit(1)
		}

		if err := model.Evaluate(resolveDepth(cmd), outputJSON); err != nil {
			if errors.Is(err, prob.ErrAllPathsFailed) {
				fmt.Fprintf(os.Stderr, "Error: every path of '%s' failed an observation; there is no distribution to print\n", name)
			} else {
				fmt.Fprintf(os.Stderr, "Error evaluating '%s': %v\n", name, err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	AddCommand(runCmd)
	runCmd.Flags().Bool("json", false, "Output the distribution as JSON")
	addModelFlags(runCmd)
}
