package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyppau-fixtures",
	Short: "hyppau-fixtures generates benchmark automata for hyperproperty matchers",
	Long: `hyppau-fixtures generates synthetic transition systems (labeled automata)
used as benchmark fixtures for conformance and robustness checkers.
Each subcommand emits one instance family as a JSON document.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
