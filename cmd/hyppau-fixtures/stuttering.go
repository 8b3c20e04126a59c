package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

var stutteringCmd = &cobra.Command{
	Use:   "stuttering",
	Short: "Generate a stuttering-robustness instance",
	Long: `Generates a stuttering-robustness instance over the cross product of the
given actions and outputs. The automaton tolerates arbitrary repetition of
announced symbols and accepts exactly when a confirmation carries a wrong
output for the announced action.`,
	Example: `  hyppau-fixtures stuttering --actions a b --outputs 0 1
  hyppau-fixtures stuttering --actions x y z --outputs 0 1 2 -o instance.json`,
	Run: func(cmd *cobra.Command, args []string) {
		actions, _ := cmd.Flags().GetStringSlice("actions")
		outputs, _ := cmd.Flags().GetIntSlice("outputs")
		outFile, _ := cmd.Flags().GetString("output-file")

		doc, err := generator.Stuttering(actions, outputs)
		if err != nil {
			fmt.Printf("Error generating instance: %v\n", err)
			os.Exit(1)
		}
		if err := writeDocument(doc, outFile); err != nil {
			fmt.Printf("Error writing instance: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stutteringCmd)
	stutteringCmd.Flags().StringSlice("actions", nil, "List of actions (e.g., a,b)")
	stutteringCmd.Flags().IntSlice("outputs", nil, "List of outputs (e.g., 0,1)")
	stutteringCmd.Flags().StringP("output-file", "o", "", "Output JSON file name (prints to stdout if omitted)")
	stutteringCmd.MarkFlagRequired("actions")
	stutteringCmd.MarkFlagRequired("outputs")
}
