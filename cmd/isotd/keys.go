package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isotd/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the default key bindings",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) {
	bindings := input.NewMapper().Bindings()
	out := cmd.OutOrStdout()

	// Calculate column width
	maxLen := len("Action")
	for _, b := range bindings {
		if l := len(b.Action.String()); l > maxLen {
			maxLen = l
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Action", "Source")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "------", "------")
	for _, b := range bindings {
		src := b.Source.String()
		if b.Action == input.ActionExit {
			src = "ctrl+" + src
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, b.Action, src)
	}
}
