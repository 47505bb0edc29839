// Package config provides configuration management for supersat.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $SUPERSAT_CONFIG
//  3. ./supersat.yaml
//  4. ~/.config/supersat/config.yaml
//
// Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/supersat-go/pkg/supersat/logging"
	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/render"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path
	EnvConfigPath = "SUPERSAT_CONFIG"
	// ConfigFileName is the config file name looked up in the working directory
	ConfigFileName = "supersat.yaml"
	// ConfigDirName is the config directory name under ~/.config
	ConfigDirName = "supersat"

	// DefaultLogFile is the log file used when none is configured
	DefaultLogFile = "log.dat"
)

// DefaultStartup lists the recipes drawn when a session starts.
var DefaultStartup = []string{"S_w1", "iso_S_w"}

// Config is the complete supersat configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Log     LogConfig     `yaml:"log"`
	Render  RenderConfig  `yaml:"render"`
	Session SessionConfig `yaml:"session"`
}

// GridConfig describes the shared temperature grid in K.
type GridConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

// LogConfig configures the session log.
type LogConfig struct {
	File         string `yaml:"file"`
	Level        string `yaml:"level"`
	ConsoleLevel string `yaml:"console_level"`
	TimeZone     string `yaml:"time_zone"`
}

// RenderConfig selects the diagram surfaces.
type RenderConfig struct {
	Backend   string `yaml:"backend"`
	OutputDir string `yaml:"output_dir"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

// SessionConfig configures the plotting session.
type SessionConfig struct {
	// Linked specifies whether the T_F(T) diagram is shown. If nil,
	// defaults to true.
	Linked *bool `yaml:"linked,omitempty"`
	// Startup recipes are drawn in order when the session starts. A nil
	// list means DefaultStartup; an empty list draws nothing.
	Startup []string `yaml:"startup"`
}

// candidate is one place a config file may live. Required candidates name a
// file the user asked for, so a missing file is an error instead of a miss.
type candidate struct {
	path     string
	required bool
}

// candidates lists config locations in priority order. The first entry that
// is non-empty and required wins outright.
func candidates(explicit string) []candidate {
	list := []candidate{
		{path: explicit, required: true},
		{path: os.Getenv(EnvConfigPath), required: true},
		{path: ConfigFileName},
	}
	if home, err := os.UserHomeDir(); err == nil {
		list = append(list, candidate{path: filepath.Join(home, ".config", ConfigDirName, "config.yaml")})
	}
	return list
}

// FindConfigPath resolves the config file to use. An explicit path (the
// --config flag) or $SUPERSAT_CONFIG must exist; the working directory and
// user config directory are searched quietly. It returns "" when nothing is
// found.
func FindConfigPath(explicit string) (string, error) {
	for _, c := range candidates(explicit) {
		if c.path == "" {
			continue
		}
		info, err := os.Stat(c.path)
		switch {
		case err == nil && !info.IsDir():
			if abs, err := filepath.Abs(c.path); err == nil {
				return abs, nil
			}
			return c.path, nil
		case c.required && err == nil:
			return "", fmt.Errorf("config %s is a directory", c.path)
		case c.required:
			return "", fmt.Errorf("config %s: %w", c.path, err)
		}
	}
	return "", nil
}

// Load resolves the config file with FindConfigPath and decodes it. Without
// a file it returns DefaultConfig. The returned path is the file used.
func Load(explicit string) (*Config, string, error) {
	path, err := FindConfigPath(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// DefaultConfig returns the configuration used without a config file
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Grid.Min == 0 && c.Grid.Max == 0 {
		c.Grid.Min = models.DefaultGridMin
		c.Grid.Max = models.DefaultGridMax
	}
	if c.Grid.Points == 0 {
		c.Grid.Points = models.DefaultGridPoints
	}

	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if c.Log.Level == "" {
		c.Log.Level = "debug"
	}
	if c.Log.ConsoleLevel == "" {
		c.Log.ConsoleLevel = "info"
	}
	if c.Log.TimeZone == "" {
		c.Log.TimeZone = logging.DefaultTimeZone
	}

	if c.Render.Backend == "" {
		c.Render.Backend = string(render.BackendPNG)
	}
	if c.Render.OutputDir == "" {
		c.Render.OutputDir = "."
	}
	if c.Render.Width == 0 {
		c.Render.Width = render.DefaultWidth
	}
	if c.Render.Height == 0 {
		c.Render.Height = render.DefaultHeight
	}

	if c.Session.Startup == nil {
		c.Session.Startup = append([]string(nil), DefaultStartup...)
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := models.NewGrid(c.Grid.Min, c.Grid.Max, c.Grid.Points); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.ConsoleLevel); err != nil {
		return fmt.Errorf("log.console_level: %w", err)
	}
	if _, err := render.ParseBackend(c.Render.Backend); err != nil {
		return fmt.Errorf("render.backend: %w", err)
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("render: invalid size %dx%d", c.Render.Width, c.Render.Height)
	}
	return nil
}

// Linked returns whether the secondary diagram is enabled.
func (c *Config) Linked() bool {
	if c.Session.Linked != nil {
		return *c.Session.Linked
	}
	return true
}

// RenderOptions converts the render section for render.New.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Backend:   render.Backend(c.Render.Backend),
		OutputDir: c.Render.OutputDir,
		Width:     c.Render.Width,
		Height:    c.Render.Height,
	}
}
