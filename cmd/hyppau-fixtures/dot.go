package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MasWag/hyppau-fixtures/internal/render"
	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
)

var dotCmd = &cobra.Command{
	Use:   "dot [input]",
	Short: "Translate a JSON instance into Graphviz DOT",
	Long: `Reads an instance document (from the given file, or stdin) and writes the
equivalent Graphviz DOT graph. The document is validated first; malformed
documents produce no output.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outFile, _ := cmd.Flags().GetString("output")
		name, _ := cmd.Flags().GetString("name")

		var in io.Reader = os.Stdin
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				fmt.Printf("Error opening input: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			in = f
		}

		doc, err := automaton.Decode(in)
		if err != nil {
			fmt.Printf("Error parsing JSON: %v\n", err)
			os.Exit(1)
		}

		dot, err := render.DOT(doc, name)
		if err != nil {
			fmt.Printf("Error rendering graph: %v\n", err)
			os.Exit(1)
		}
		if err := writeText(dot, outFile); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotCmd.Flags().StringP("output", "o", "", "Write DOT output to this file (defaults to stdout)")
	dotCmd.Flags().String("name", "G", "Name of the DOT graph")
}
