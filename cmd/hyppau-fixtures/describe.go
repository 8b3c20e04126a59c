package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// catalog documents the instance families. It is rendered with glamour
// on interactive terminals and printed raw otherwise.
const catalog = `# Instance families

## stuttering

Stuttering-robustness instances over the cross product of actions and
outputs (the alphabet, size A). Every symbol can be announced (phase 0)
and repeated freely; confirming it (phase 1) locks into the symbol's
lock-in state, from which every other symbol opens a chase chain with
the same announce/confirm discipline. A confirmation carrying a wrong
output for the announced action rejects into the single accepting trap
state. State count: 2A + A(A-1) + 2.

## dimensions

Dimension-scaling instances: a linear announce chain over d dimensions,
a rotation loop, and a final hop. State count: 2d + 2.

## interference

Action/output interference instances over the cross product of actions
and exactly two outputs: every correct confirmation meets in a hub
state, and a second round rejects to the accepting state on the flipped
output. State count: 2A + 3.
`

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the available instance families",
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")

		if plain || !term.IsTerminal(int(os.Stdout.Fd())) || termenv.ColorProfile() == termenv.Ascii {
			fmt.Print(catalog)
			return
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Detect light/dark background
		)
		if err != nil {
			fmt.Print(catalog)
			return
		}
		out, err := r.Render(catalog)
		if err != nil {
			fmt.Print(catalog)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("plain", false, "Print plain markdown without terminal styling")
}
