package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// cliConfig holds display preferences loadable from a hlslreflect.toml,
// the way surge.toml configures the surge CLI.
type cliConfig struct {
	Display struct {
		Color   bool `toml:"color"`
		Verbose bool `toml:"verbose"`
	} `toml:"display"`
}

func defaultConfig() cliConfig {
	var c cliConfig
	c.Display.Color = true
	return c
}

// loadConfig reads path if it exists, falling back to defaults otherwise;
// a missing config file is not an error.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		path = "hlslreflect.toml"
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
