package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long: `Prints the key bindings after the config file and flags are applied.

Pass --defaults to print the embedded default config instead, which is a
good starting point for ~/.tetris/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

var flagDefaults bool

func init() {
	keysCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config YAML")
}

func runKeys(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	printKeys(cmd.OutOrStdout(), cfg.Keys)
	return nil
}

func printKeys(w io.Writer, kb config.KeyBindings) {
	maxLen := len("Action")
	for _, a := range core.Actions() {
		maxLen = max(maxLen, len(a.String()))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "------", "----")
	for _, a := range core.Actions() {
		keys := kb.Keys(a)
		shown := "(unbound)"
		if len(keys) > 0 {
			shown = strings.Join(keys, ", ")
		}
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, a.String(), shown)
	}
}
