package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.tetris/config.yaml -> ./configs/tetris.yaml -> embedded default.
// Files found on the search path are layered over the defaults, so they may
// set only the fields they change.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "tetris.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := cfg
		if err := decode(data, &layered); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return layered, layered.Validate()
	}

	return cfg, cfg.Validate()
}

// decode unmarshals data over cfg. A keys section replaces the default
// bindings wholesale rather than merging per action.
func decode(data []byte, cfg *Config) error {
	var probe struct {
		Keys KeyBindings `yaml:"keys"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	keys := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if probe.Keys == nil {
		cfg.Keys = keys
	}
	return nil
}

// embeddedDefault parses the embedded YAML, falling back to Default.
func embeddedDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
