// tetris is a falling-piece puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play on the configured frontend
//	tetris frontends         - List available terminal frontends
//	tetris keys              - Show the effective key bindings
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Override tick rate (default from config: 30)
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--config <path>       - Use a specific config file
//	--frontend <id>       - Terminal frontend: tea or tcell
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination ("-" for stderr)
//	--sound               - Play audio cues
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagFrontend string
	flagLogLevel string
	flagLogFile  string
	flagSound    bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a falling-piece puzzle game played in the terminal.

Available commands:
  play       - Play a game (default)
  frontends  - Show available terminal frontends
  keys       - Show key bindings
  serve      - Start SSH server for remote play

Examples:
  tetris
  tetris play --frontend tcell
  tetris --seed 42 --fps 60
  tetris serve --ssh :2222`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "", "Terminal frontend (see 'tetris frontends')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (\"-\" for stderr)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play audio cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(serveCmd)
}
