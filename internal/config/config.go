// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/routine/internal/schedule"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Format   FormatConfig   `toml:"format"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// ScheduleConfig holds schedule editing settings.
type ScheduleConfig struct {
	Correction  string   `toml:"correction"`   // Go duration, e.g. "1h30m"
	DefaultDays []string `toml:"default_days"` // preselected days for new schedules
	WeekStart   string   `toml:"week_start"`   // "sunday" or "monday"
}

// FormatConfig holds strftime patterns used for display.
type FormatConfig struct {
	TimePattern string `toml:"time_pattern"` // e.g. "%I:%M %p"
	DatePattern string `toml:"date_pattern"` // e.g. "%a, %b %d"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Correction:  schedule.DefaultCorrection.String(),
			DefaultDays: []string{},
			WeekStart:   "sunday",
		},
		Format: FormatConfig{
			TimePattern: "%I:%M %p",
			DatePattern: "%a, %b %d",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "routine.db"
	}
	return filepath.Join(home, ".local", "share", "routine", "routine.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if v := os.Getenv("ROUTINE_CONFIG"); v != "" {
		return expandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "routine", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROUTINE_CORRECTION"); v != "" {
		cfg.Schedule.Correction = v
	}
	if v := os.Getenv("ROUTINE_DEFAULT_DAYS"); v != "" {
		cfg.Schedule.DefaultDays = strings.Split(v, ",")
	}
	if v := os.Getenv("ROUTINE_WEEK_START"); v != "" {
		cfg.Schedule.WeekStart = v
	}
	if v := os.Getenv("ROUTINE_TIME_PATTERN"); v != "" {
		cfg.Format.TimePattern = v
	}
	if v := os.Getenv("ROUTINE_DATE_PATTERN"); v != "" {
		cfg.Format.DatePattern = v
	}
	if v := os.Getenv("ROUTINE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("ROUTINE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.CorrectionDuration(); err != nil {
		return err
	}
	if _, err := c.DefaultDaySet(); err != nil {
		return err
	}
	switch strings.ToLower(c.Schedule.WeekStart) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("week_start must be sunday or monday, got %q", c.Schedule.WeekStart)
	}
	if strings.TrimSpace(c.Format.TimePattern) == "" {
		return errors.New("time_pattern must be set")
	}
	if strings.TrimSpace(c.Format.DatePattern) == "" {
		return errors.New("date_pattern must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// CorrectionDuration returns the parsed auto-correction delta.
func (c *Config) CorrectionDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Schedule.Correction)
	if err != nil {
		return 0, fmt.Errorf("correction must be a duration like 1h30m, got %q", c.Schedule.Correction)
	}
	if d < time.Minute || d >= 24*time.Hour {
		return 0, fmt.Errorf("correction must be between 1m and 24h, got %s", d)
	}
	return d, nil
}

// DefaultDaySet returns the configured default days as a set.
func (c *Config) DefaultDaySet() (schedule.DaySet, error) {
	set, err := schedule.ParseDaySet(strings.Join(c.Schedule.DefaultDays, ","))
	if err != nil {
		return schedule.DaySet{}, fmt.Errorf("invalid default_days: %w", err)
	}
	return set, nil
}

// WeekOrder returns the weekdays in display order.
func (c *Config) WeekOrder() []time.Weekday {
	order := make([]time.Weekday, 0, 7)
	first := time.Sunday
	if strings.EqualFold(c.Schedule.WeekStart, "monday") {
		first = time.Monday
	}
	for i := 0; i < 7; i++ {
		order = append(order, (first+time.Weekday(i))%7)
	}
	return order
}

// EditorOptions returns the schedule editor options derived from the config.
// The config is assumed to be validated.
func (c *Config) EditorOptions() []schedule.EditorOption {
	var opts []schedule.EditorOption
	if d, err := c.CorrectionDuration(); err == nil {
		opts = append(opts, schedule.WithCorrection(d))
	}
	if days, err := c.DefaultDaySet(); err == nil {
		opts = append(opts, schedule.WithDefaultDays(days))
	}
	return opts
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
