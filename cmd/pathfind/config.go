package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/pathfind/search"
	"gopkg.in/yaml.v3"
)

// Config holds defaults that flags may override.
type Config struct {
	Algo          string  `yaml:"algo"`
	Scale         float64 `yaml:"scale"`
	MaxExpansions int     `yaml:"max_expansions"`
	DB            struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"db"`
	Log struct {
		Level string `yaml:"level"`
		JSON  bool   `yaml:"json"`
	} `yaml:"log"`
}

// defaultConfig is used when no --config file is given. A* stays opt-in:
// the Euclidean scale that keeps it optimal depends on the graph's units.
func defaultConfig() Config {
	var c Config
	c.Algo = "dijkstra"
	c.Scale = 1
	c.DB.Driver = "sqlite"
	c.Log.Level = "warn"

	return c
}

// loadConfig overlays the YAML file at path on the defaults.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

// validate rejects values the commands cannot use.
func (c Config) validate() error {
	if _, err := search.ParseMode(c.Algo); err != nil {
		return fmt.Errorf("invalid algo %q: want dijkstra or astar", c.Algo)
	}
	if c.Scale < 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("invalid scale %v: want a finite value >= 0", c.Scale)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("invalid max-expansions %d", c.MaxExpansions)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid log level %q", s)
	}

	return l, nil
}
