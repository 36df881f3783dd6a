package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the built-in models",
	Long: `Lists the models that can be passed to the run and sample commands,
with a short description of each.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		outputJSON, _ := cmd.Flags().GetBool("json")

		if outputJSON {
			jsonData, err := json.MarshalIndent(builtinNames(), "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error marshalling to JSON: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(jsonData))
			return
		}

		width := 0
		for _, b := range builtins {
			if len(b.Name) > width {
				width = len(b.Name)
			}
		}
		fmt.Println("Built-in models:")
		for _, b := range builtins {
			fmt.Printf("  %-*s  %s\n", width, b.Name, b.Description)
		}
	},
}

func init() {
	AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Output the model names as JSON")
}
