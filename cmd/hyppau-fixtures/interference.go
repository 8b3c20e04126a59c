package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

var interferenceCmd = &cobra.Command{
	Use:     "interference",
	Short:   "Generate an action/output interference instance",
	Example: `  hyppau-fixtures interference --actions a b --outputs 0 1`,
	Run: func(cmd *cobra.Command, args []string) {
		actions, _ := cmd.Flags().GetStringSlice("actions")
		outputs, _ := cmd.Flags().GetIntSlice("outputs")
		outFile, _ := cmd.Flags().GetString("output-file")

		doc, err := generator.Interference(actions, outputs)
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
	rootCmd.AddCommand(interferenceCmd)
	interferenceCmd.Flags().StringSlice("actions", nil, "List of actions (e.g., a,b)")
	interferenceCmd.Flags().IntSlice("outputs", nil, "Two output values (e.g., 0,1)")
	interferenceCmd.Flags().StringP("output-file", "o", "", "Output JSON file name (prints to stdout if omitted)")
	interferenceCmd.MarkFlagRequired("actions")
	interferenceCmd.MarkFlagRequired("outputs")
}
