package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

var dimensionsCmd = &cobra.Command{
	Use:     "dimensions",
	Short:   "Generate a dimension-scaling instance",
	Example: `  hyppau-fixtures dimensions --dimensions 3`,
	Run: func(cmd *cobra.Command, args []string) {
		d, _ := cmd.Flags().GetInt("dimensions")
		outFile, _ := cmd.Flags().GetString("output-file")

		doc, err := generator.Dimensions(d)
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
	rootCmd.AddCommand(dimensionsCmd)
	dimensionsCmd.Flags().Int("dimensions", 0, "Number of dimensions of the instance")
	dimensionsCmd.Flags().StringP("output-file", "o", "", "Output JSON file name (prints to stdout if omitted)")
	dimensionsCmd.MarkFlagRequired("dimensions")
}
