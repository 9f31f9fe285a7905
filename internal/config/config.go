// Package config provides the YAML configuration of the sparsepath demo.
//
// Every field is optional. Zero values for nodes, probability, origin and
// destination, and an absent print_graph, mean "ask on stdin".
//
// Config file locations (priority order):
//  1. the -config flag
//  2. $SPARSEPATH_CONFIG
//  3. ./sparsepath.yaml
//  4. $XDG_CONFIG_HOME/sparsepath/config.yaml or ~/.config/sparsepath/config.yaml
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsepath/dijkstra"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the demo configuration.
type Config struct {
	Nodes       int     `yaml:"nodes"`
	Probability int     `yaml:"probability"` // percent, 1..100
	Origin      uint64  `yaml:"origin"`
	Destination uint64  `yaml:"destination"`
	PrintGraph  *bool   `yaml:"print_graph,omitempty"`
	Seed        *int64  `yaml:"seed,omitempty"` // nil: seeded from the clock
	Sample      bool    `yaml:"sample"`         // use the six-node network instead of a random one
	Frontier    string  `yaml:"frontier"`       // linear | heap
	Log         Log     `yaml:"log"`
	Metrics     Metrics `yaml:"metrics"`
}

// Log configures the slog handler of the binary.
type Log struct {
	Level string `yaml:"level"` // debug | info | warn | error
	JSON  bool   `yaml:"json"`
}

// Metrics configures the Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr"`
}

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "SPARSEPATH_CONFIG"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "sparsepath.yaml"
	// ConfigDirName is the directory name under the XDG config home.
	ConfigDirName = "sparsepath"

	defaultFrontier = "linear"
	defaultLogLevel = "info"
)

// Default returns a config that prompts for everything.
func Default() *Config {
	return &Config{
		Frontier: defaultFrontier,
		Log:      Log{Level: defaultLogLevel},
	}
}

// Load reads path, or the first file FindConfigPath reports when path is
// empty. With no file at all it returns Default(). The second result is the
// file actually read ("" for defaults).
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return Default(), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, path, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyDefaults() {
	if c.Frontier == "" {
		c.Frontier = defaultFrontier
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}

// Validate checks every value that is set. Unset values are left for the
// interactive prompts.
func (c *Config) Validate() error {
	var errs []error
	if c.Nodes < 0 {
		errs = append(errs, fmt.Errorf("%w: nodes=%d must be ≥ 0", ErrInvalid, c.Nodes))
	}
	if c.Probability < 0 || c.Probability > 100 {
		errs = append(errs, fmt.Errorf("%w: probability=%d not in [1,100] (0 = ask)", ErrInvalid, c.Probability))
	}
	if c.Nodes > 0 && !c.Sample {
		if c.Origin > uint64(c.Nodes) {
			errs = append(errs, fmt.Errorf("%w: origin=%d not in [1,%d]", ErrInvalid, c.Origin, c.Nodes))
		}
		if c.Destination > uint64(c.Nodes) {
			errs = append(errs, fmt.Errorf("%w: destination=%d not in [1,%d]", ErrInvalid, c.Destination, c.Nodes))
		}
	}
	if _, err := c.FrontierKind(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// FrontierKind maps Frontier to the dijkstra open-set strategy.
func (c *Config) FrontierKind() (dijkstra.Frontier, error) {
	switch strings.ToLower(c.Frontier) {
	case "", dijkstra.FrontierLinear.String():
		return dijkstra.FrontierLinear, nil
	case dijkstra.FrontierHeap.String():
		return dijkstra.FrontierHeap, nil
	default:
		return dijkstra.FrontierLinear, fmt.Errorf("%w: frontier=%q (want linear or heap)", ErrInvalid, c.Frontier)
	}
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level=%q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		if path := filepath.Join(xdgHome, ConfigDirName, "config.yaml"); fileExists(path) {
			return path
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		if path := filepath.Join(home, ".config", ConfigDirName, "config.yaml"); fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
