package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
	"github.com/spf13/cobra"
)

// DefaultDepth bounds the search when neither the --depth flag nor the
// PROB_DEPTH env var is set.
const DefaultDepth = 50

// Build information, overridable via -ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// Global flags shared by the model commands.
var (
	searchDepth int
	noColor     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "prob",
	Short: "prob explores weighted nondeterministic models",
	Long: `prob evaluates probabilistic models built from weighted choice trees.
Each model is unfolded up to a depth bound; branches still unresolved at the
bound are reported as a single "unknown" share rather than silently dropped.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			prob.SetLogLevel(prob.LogLevelDebug)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&searchDepth, "depth", 0, "Search depth bound (default: PROB_DEPTH env var or 50)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// resolveDepth returns the effective search depth: the --depth flag when
// given, else PROB_DEPTH, else DefaultDepth.
func resolveDepth(cmd *cobra.Command) int {
	if cmd.Flags().Changed("depth") {
		return searchDepth
	}
	if v := os.Getenv("PROB_DEPTH"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "Warning: ignoring non-numeric PROB_DEPTH=%q\n", v)
	}
	return DefaultDepth
}
