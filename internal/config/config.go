package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/angristan/frostlux/internal/models"
)

const (
	appName    = "frostlux"
	configFile = "config.yaml"
	// bundledFile is looked up in a config/ directory beside the binary
	bundledFile = "default.yaml"

	// DefaultHost is written into generated config files
	DefaultHost = "192.168.0.131"
)

// GatewayConfig stores connection details for a Trådfri gateway
type GatewayConfig struct {
	// IP address or hostname, optionally with a port
	Host string `yaml:"host"`
	// Identity created when pairing with the gateway
	Identity string `yaml:"identity"`
	// Pre-shared key belonging to the identity
	PSK string `yaml:"psk"`
}

// UIConfig controls the terminal interface
type UIConfig struct {
	// auto, light or dark
	Theme string `yaml:"theme"`
	// Seconds between background refreshes
	RefreshInterval int `yaml:"refresh_interval"`
}

// ScenesConfig lists lights that scenes leave alone
type ScenesConfig struct {
	// Light names excluded from every scene
	Exclude []string `yaml:"exclude"`
	// Light names excluded from one scene, keyed by scene key
	ExcludeByScene map[string][]string `yaml:"exclude_by_scene"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	// debug, info, warn or error
	Level string `yaml:"level"`
	// Log file path; empty uses the cache directory, "-" logs to stderr
	File string `yaml:"file"`
}

// Config stores all application configuration
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	UI      UIConfig      `yaml:"ui"`
	Scenes  ScenesConfig  `yaml:"scenes"`
	Logging LoggingConfig `yaml:"logging"`

	// Path the config was loaded from
	Path string `yaml:"-"`
	// Generated is set when Load wrote a fresh default file
	Generated bool `yaml:"-"`
}

var (
	ErrMissingCredentials = errors.New("gateway identity and psk are required")
	ErrMissingHost        = errors.New("gateway host is required")
)

// Default returns a Config with the built-in defaults
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Host: DefaultHost,
		},
		UI: UIConfig{
			Theme:           "auto",
			RefreshInterval: 5,
		},
		Scenes: ScenesConfig{
			Exclude:        []string{},
			ExcludeByScene: map[string][]string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// configDir returns the configuration directory path
func configDir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName), nil
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the full path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// SearchPaths lists where Load looks for a config file when none is given,
// in order: the XDG config dir, ~/.config, config/default.yaml next to the
// executable, then config/default.yaml in the working directory.
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName, configFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, configFile))
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "config", bundledFile))
	}
	return append(paths, filepath.Join("config", bundledFile))
}

// locate returns the first existing file from SearchPaths, or DefaultPath
// when there is none.
func locate() (string, error) {
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return DefaultPath()
}

// Load reads the configuration at path. An empty path searches
// SearchPaths. A missing file is created with commented defaults. Values
// from the environment (and a .env file in the working directory)
// override the file.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	if path == "" {
		p, err := locate()
		if err != nil {
			return nil, fmt.Errorf("locating config file: %w", err)
		}
		path = p
	}

	// Start with defaults
	cfg := Default()
	cfg.Path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeDefault(path); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
		cfg.Generated = true
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads .env from the working directory if there is one
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading .env file: %w", err)
}

const defaultTemplate = `# FrostLux configuration
# Edit this file with your gateway credentials.

gateway:
  host: %q
  identity: ""   # from gateway pairing
  psk: ""        # pre-shared key

ui:
  theme: auto    # auto, light, dark
  refresh_interval: 5

scenes:
  # Lights to exclude from all scene commands:
  # exclude: ["Bedroom", "Nursery"]
  exclude: []
  # Exclude only for specific scenes (keys: on, off, movie, bright,
  # cozy, night, evening, reading, morning):
  # exclude_by_scene:
  #   movie: ["TV"]
  #   night: ["Kitchen"]
  exclude_by_scene: {}

logging:
  level: info    # debug, info, warn, error
  file: ""       # empty logs to the cache directory, "-" to stderr
`

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, fmt.Appendf(nil, defaultTemplate, DefaultHost), 0600)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: FROSTLUX_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Gateway
	if v := os.Getenv("FROSTLUX_GATEWAY_HOST"); v != "" {
		cfg.Gateway.Host = v
	}
	if v := os.Getenv("FROSTLUX_GATEWAY_IDENTITY"); v != "" {
		cfg.Gateway.Identity = v
	}
	if v := os.Getenv("FROSTLUX_GATEWAY_PSK"); v != "" {
		cfg.Gateway.PSK = v
	}

	// UI
	if v := os.Getenv("FROSTLUX_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	// Logging
	if v := os.Getenv("FROSTLUX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the settings that do not depend on how the gateway is
// reached. Credentials are checked separately by GatewayConfig.Validate.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.UI.Theme) {
	case "auto", "light", "dark":
	default:
		errs = append(errs, fmt.Sprintf("ui.theme must be auto, light or dark (got %q)", c.UI.Theme))
	}

	if c.UI.RefreshInterval < 1 {
		errs = append(errs, "ui.refresh_interval must be at least 1 second")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be debug, info, warn or error (got %q)", c.Logging.Level))
	}

	for key := range c.Scenes.ExcludeByScene {
		if _, ok := models.ParseScene(key); !ok {
			errs = append(errs, fmt.Sprintf("scenes.exclude_by_scene has unknown scene %q", key))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Validate reports whether the gateway can be connected to
func (g GatewayConfig) Validate() error {
	if g.Host == "" {
		return ErrMissingHost
	}
	if g.Identity == "" || g.PSK == "" {
		return ErrMissingCredentials
	}
	return nil
}

// RefreshEvery returns the background refresh interval
func (c *Config) RefreshEvery() time.Duration {
	return time.Duration(c.UI.RefreshInterval) * time.Second
}

// IsExcluded reports whether scene should skip the light called name.
// Names are compared case-insensitively; scene keys may be aliases.
func (s ScenesConfig) IsExcluded(scene models.Scene, name string) bool {
	for _, e := range s.Exclude {
		if strings.EqualFold(e, name) {
			return true
		}
	}

	for key, names := range s.ExcludeByScene {
		if target, ok := models.ParseScene(key); !ok || target != scene {
			continue
		}
		for _, e := range names {
			if strings.EqualFold(e, name) {
				return true
			}
		}
	}
	return false
}
