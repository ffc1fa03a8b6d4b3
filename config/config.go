package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"deepduck/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Depth       int               `yaml:"depth"`
	Seed        uint64            `yaml:"seed"`
	LogLevel    string            `yaml:"log_level"`
	Server      ServerConfig      `yaml:"server"`
	Experiments ExperimentsConfig `yaml:"experiments"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxSearches    int      `yaml:"max_searches"`
	MaxDepth       int      `yaml:"max_depth"`
}

type ExperimentsConfig struct {
	Games    int    `yaml:"games"`
	Depths   []int  `yaml:"depths"`
	MaxMoves int    `yaml:"max_moves"`
	OutDir   string `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		Depth:    meta.DEPTH,
		Seed:     meta.Seed,
		LogLevel: "info",
		Server: ServerConfig{
			Addr:           ":3000",
			AllowedOrigins: []string{"*"},
			MaxSearches:    meta.MAX_SEARCHES,
			MaxDepth:       meta.MAX_DEPTH,
		},
		Experiments: ExperimentsConfig{
			Games:    10,
			Depths:   []int{1, 2, 3},
			MaxMoves: meta.MAX_MOVES,
			OutDir:   "experiments",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if c.Server.MaxDepth < 1 {
		return fmt.Errorf("server.max_depth must be positive, got %d", c.Server.MaxDepth)
	}
	if c.Server.MaxSearches < 1 {
		return fmt.Errorf("server.max_searches must be positive, got %d", c.Server.MaxSearches)
	}
	for _, depth := range c.Experiments.Depths {
		if depth < 1 {
			return fmt.Errorf("experiments.depths must be positive, got %d", depth)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
