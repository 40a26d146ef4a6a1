package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the built-in configuration. It mirrors defaults/tetris.yaml
// and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		TickRate: 30,
		Frontend: "tea",
		Sound:    false,
		Log: LogConfig{
			Path:  "~/.tetris/tetris.log",
			Level: "info",
		},
		Keys: KeyBindings{
			"quit":       {"ctrl+c", "q"},
			"rotate_cw":  {"n", "up"},
			"rotate_ccw": {"m", "z"},
			"move_left":  {"a", "left"},
			"move_right": {"d", "right"},
			"soft_drop":  {"s", "down"},
			"hard_drop":  {"space"},
			"restart":    {"r"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
