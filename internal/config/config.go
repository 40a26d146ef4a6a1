// Package config provides YAML-based configuration loading for the game:
// loop cadence, frontend choice, logging, and key bindings.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Config is the full application configuration.
type Config struct {
	TickRate int         `yaml:"tick_rate"`
	Frontend string      `yaml:"frontend"`
	Sound    bool        `yaml:"sound"`
	Log      LogConfig   `yaml:"log"`
	Keys     KeyBindings `yaml:"keys"`
}

// LogConfig defines where and how verbosely to log.
type LogConfig struct {
	Path  string `yaml:"path"`  // "-" for stderr
	Level string `yaml:"level"` // debug, info, warn, error
}

// KeyBindings maps action names (see core.ParseAction) to key names.
type KeyBindings map[string][]string

// Keys returns the key names bound to a.
func (k KeyBindings) Keys(a core.Action) []string {
	return k[a.String()]
}

// Lookup builds the reverse index key name -> action.
func (k KeyBindings) Lookup() (map[string]core.Action, error) {
	lookup := make(map[string]core.Action)

	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := core.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("config: keys: %w", err)
		}
		for _, key := range k[name] {
			if key == "" {
				return nil, fmt.Errorf("config: keys: empty key for %s", name)
			}
			if prev, dup := lookup[key]; dup && prev != action {
				return nil, fmt.Errorf("config: keys: %q bound to both %s and %s", key, prev, action)
			}
			lookup[key] = action
		}
	}
	return lookup, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Frontend == "" {
		errs = append(errs, errors.New("config: frontend must be set"))
	}
	if _, err := c.Keys.Lookup(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Keys.Keys(core.ActionQuit)) == 0 {
		errs = append(errs, errors.New("config: keys: quit must have at least one key"))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	return errors.Join(errs...)
}
