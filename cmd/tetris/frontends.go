package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available terminal frontends",
	Long:  `Shows the terminal frontends compiled into this binary.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play --frontend <id>' to use one.")
}
