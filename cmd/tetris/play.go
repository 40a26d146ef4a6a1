package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/sound"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// maxFPS is the highest accepted --fps value.
const maxFPS = 240

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the configured terminal frontend.

Default controls:
  A/Left, D/Right  - Move
  N/Up, M/Z        - Rotate clockwise / counterclockwise
  S/Down           - Drop one row
  Space            - Hard drop
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --frontend tcell --sound
  tetris play --seed 7 --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyOverrides(flags, &cfg)
	return cfg, cfg.Validate()
}

// applyOverrides copies explicitly set flags over cfg.
func applyOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("fps") && flagFPS > 0 {
		cfg.TickRate = core.Clamp(flagFPS, 1, maxFPS)
	}
	if flags.Changed("frontend") {
		cfg.Frontend = flagFrontend
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.Path = flagLogFile
	}
	if flags.Changed("sound") {
		cfg.Sound = flagSound
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	if !registry.Exists(cfg.Frontend) {
		return fmt.Errorf("unknown frontend %q (run 'tetris frontends' to see available ones)", cfg.Frontend)
	}

	logger, logCloser, err := logging.FromConfig(cfg.Log, "tetris")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < tetris.ViewWidth || height < tetris.ViewHeight {
		logger.Warn("terminal smaller than the playfield", "width", width, "height", height)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     seed,
	}

	frontend, err := registry.Create(cfg.Frontend)
	if err != nil {
		return err
	}
	session, err := frontend.Open(registry.Options{Runtime: rt, Keys: cfg.Keys, Logger: logger})
	if err != nil {
		return fmt.Errorf("open %s frontend: %w", frontend.ID(), err)
	}

	var display engine.Display = session
	if cfg.Sound {
		speaker, spErr := sound.NewSpeaker(sound.DefaultVolume)
		if spErr != nil {
			logger.Warn("sound disabled", "err", spErr)
		} else {
			defer speaker.Close()
			display = sound.Wrap(session, speaker)
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go func() {
		select {
		case <-session.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("starting game", "frontend", frontend.ID(), "seed", seed, "tick_rate", rt.TickRate)
	loop := engine.New(tetris.New(seed), session, display,
		engine.WithTickRate(rt.TickRate),
		engine.WithLogger(logger),
	)
	runErr := loop.Run(ctx)

	// Restore the terminal before anything is printed.
	closeErr := session.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("close %s frontend: %w", frontend.ID(), closeErr)
	}
	return nil
}
