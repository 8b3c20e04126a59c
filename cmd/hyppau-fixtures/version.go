package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	hyppaufixtures "github.com/MasWag/hyppau-fixtures"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hyppau-fixtures",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hyppau-fixtures version %s\n", strings.TrimSpace(hyppaufixtures.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
