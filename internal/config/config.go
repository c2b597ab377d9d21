// ABOUTME: CalorieTrack configuration management.
// ABOUTME: Handles the JSON config file, defaults, and typed getters.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied when a field is unset.
const (
	DefaultCalorieGoal        = 2000
	DefaultRecognitionDelay   = 1500 * time.Millisecond
	DefaultRecognitionTimeout = 10 * time.Second
	DefaultListen             = ":8080"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
	DefaultTimezone           = "Local"
)

// Config stores calorietrack configuration.
type Config struct {
	// CalorieGoal is the daily target in kcal. Defaults to 2000.
	CalorieGoal int `json:"calorie_goal,omitempty"`

	// RecognitionDelay is the simulated recognition latency, e.g. "1.5s".
	RecognitionDelay string `json:"recognition_delay,omitempty"`

	// RecognitionTimeout bounds every recognition call. "0s" disables it.
	RecognitionTimeout string `json:"recognition_timeout,omitempty"`

	// Listen is the HTTP listen address for serve.
	Listen string `json:"listen,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// LogFormat is "json" or "console".
	LogFormat string `json:"log_format,omitempty"`

	// Timezone names the IANA zone used for meal-type buckets and rollover.
	Timezone string `json:"timezone,omitempty"`

	// StartEmpty skips the demo meals when a session starts.
	StartEmpty bool `json:"start_empty,omitempty"`

	// Seed fixes the recognizer's random source. 0 means random.
	Seed uint64 `json:"seed,omitempty"`

	// ExportDir is where export writes files. Supports ~ expansion.
	ExportDir string `json:"export_dir,omitempty"`
}

// GetCalorieGoal returns the configured goal, defaulting to 2000.
func (c *Config) GetCalorieGoal() int {
	if c.CalorieGoal <= 0 {
		return DefaultCalorieGoal
	}
	return c.CalorieGoal
}

// GetRecognitionDelay parses the configured delay, defaulting to 1.5s.
func (c *Config) GetRecognitionDelay() (time.Duration, error) {
	return parseDuration("recognition_delay", c.RecognitionDelay, DefaultRecognitionDelay)
}

// GetRecognitionTimeout parses the configured timeout, defaulting to 10s.
func (c *Config) GetRecognitionTimeout() (time.Duration, error) {
	return parseDuration("recognition_timeout", c.RecognitionTimeout, DefaultRecognitionTimeout)
}

// GetListen returns the HTTP listen address.
func (c *Config) GetListen() string {
	if c.Listen == "" {
		return DefaultListen
	}
	return c.Listen
}

// GetLogLevel returns the log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.LogLevel)
}

// GetLogFormat returns the log encoding, defaulting to "json".
func (c *Config) GetLogFormat() string {
	if c.LogFormat == "" {
		return DefaultLogFormat
	}
	return strings.ToLower(c.LogFormat)
}

// GetLocation loads the configured time zone.
func (c *Config) GetLocation() (*time.Location, error) {
	name := c.Timezone
	if name == "" || name == DefaultTimezone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// GetExportDir returns the export directory with ~ expanded, defaulting to ".".
func (c *Config) GetExportDir() string {
	if c.ExportDir == "" {
		return "."
	}
	return ExpandPath(c.ExportDir)
}

// Validate checks that every field parses.
func (c *Config) Validate() error {
	if c.CalorieGoal < 0 {
		return fmt.Errorf("calorie_goal must be positive, got %d", c.CalorieGoal)
	}
	if _, err := c.GetRecognitionDelay(); err != nil {
		return err
	}
	if _, err := c.GetRecognitionTimeout(); err != nil {
		return err
	}
	if _, err := c.GetLocation(); err != nil {
		return err
	}
	switch c.GetLogFormat() {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log_format: %q", c.LogFormat)
	}
	return nil
}

func parseDuration(field, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", field, value)
	}
	return d, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path. CALORIETRACK_CONFIG wins over
// the XDG location.
func GetConfigPath() string {
	if override := os.Getenv("CALORIETRACK_CONFIG"); override != "" {
		return ExpandPath(override)
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "calorietrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
